// Package audit renders the tax-year operations report as a PDF: portfolio,
// revenue, expense detail, Schedule E worksheets, the time log, and the
// supporting document inventory, in the order a preparer reads them.
package audit

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/hostledger/hostledger/internal/analytics"
	"github.com/hostledger/hostledger/internal/participation"
	"github.com/hostledger/hostledger/internal/store"
)

// Input carries everything the report draws from.
type Input struct {
	Properties  []store.Property
	Bookings    []store.Booking
	Expenses    []store.Expense
	TimeEntries []store.TimeEntry
	Documents   []store.Document
	Contacts    []store.Contact
	Maintenance []store.MaintenanceItem
	TaxYear     int
	Today       time.Time
}

type report struct {
	pdf *gofpdf.Fpdf
}

// Generate renders the full report and returns the PDF bytes.
func Generate(in Input) ([]byte, error) {
	if in.TaxYear == 0 {
		in.TaxYear = in.Today.Year()
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	r := &report{pdf: pdf}

	r.cover(in)
	r.properties(in.Properties)
	r.revenue(in)
	r.expenses(in)
	r.scheduleE(in)
	r.timeLog(in)
	r.participation(in)
	r.documents(in)
	r.maintenance(in)
	r.contacts(in.Contacts)
	r.disclaimer()

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render audit pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *report) header(title string) {
	r.pdf.SetFont("Helvetica", "B", 14)
	r.pdf.SetFillColor(30, 41, 59)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.CellFormat(0, 10, title, "", 1, "L", true, 0, "")
	r.pdf.SetTextColor(0, 0, 0)
	r.pdf.Ln(3)
}

func (r *report) labelValue(label, value string, bold bool) {
	r.pdf.SetFont("Helvetica", "", 9)
	r.pdf.CellFormat(55, 6, label, "", 0, "L", false, 0, "")
	style := ""
	if bold {
		style = "B"
	}
	r.pdf.SetFont("Helvetica", style, 9)
	r.pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

func (r *report) cover(in Input) {
	r.pdf.AddPage()
	r.pdf.SetFont("Helvetica", "B", 24)
	r.pdf.Ln(40)
	r.pdf.CellFormat(0, 15, "SHORT-TERM RENTAL", "", 1, "C", false, 0, "")
	r.pdf.CellFormat(0, 15, "OPERATIONS & TAX REPORT", "", 1, "C", false, 0, "")
	r.pdf.Ln(10)
	r.pdf.SetFont("Helvetica", "", 14)
	r.pdf.CellFormat(0, 10, fmt.Sprintf("Tax Year %d", in.TaxYear), "", 1, "C", false, 0, "")
	r.pdf.SetFont("Helvetica", "", 11)
	r.pdf.CellFormat(0, 8, "Prepared: "+in.Today.Format("January 2, 2006"), "", 1, "C", false, 0, "")
	r.pdf.CellFormat(0, 8, fmt.Sprintf("Properties: %d", len(in.Properties)), "", 1, "C", false, 0, "")
	r.pdf.Ln(20)
	r.pdf.SetFont("Helvetica", "I", 9)
	r.pdf.CellFormat(0, 6, "Generated by HostLedger STR Operations Platform", "", 1, "C", false, 0, "")
	r.pdf.CellFormat(0, 6, "For tax preparation and audit documentation purposes.", "", 1, "C", false, 0, "")
}

func (r *report) properties(props []store.Property) {
	r.pdf.AddPage()
	r.header("1. PROPERTY PORTFOLIO")
	for _, p := range props {
		r.pdf.SetFont("Helvetica", "B", 11)
		r.pdf.CellFormat(0, 7, displayName(p), "", 1, "L", false, 0, "")
		r.labelValue("Address:", p.Address, false)
		r.labelValue("City/State:", fmt.Sprintf("%s %s %s", p.City, p.State, p.Zip), false)
		r.labelValue("Purchase Price:", money0(p.PurchasePrice), false)
		r.labelValue("Mortgage:", money0(p.MortgageMonthly)+"/mo", false)
		r.pdf.Ln(5)
	}
}

func (r *report) revenue(in Input) {
	r.pdf.AddPage()
	r.header("2. REVENUE SUMMARY")
	start := time.Date(in.TaxYear, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(in.TaxYear, 12, 31, 0, 0, 0, 0, time.UTC)
	port := analytics.ComputePortfolioMetrics(in.Bookings, in.Properties, start, end)

	r.labelValue("Total Revenue:", money2(port.TotalRevenue), true)
	r.labelValue("Nights Booked:", fmt.Sprintf("%d", port.NightsBooked), false)
	r.labelValue("Avg Occupancy:", fmt.Sprintf("%.1f%%", port.AvgOccupancy), false)
	r.labelValue("Avg Nightly Rate:", money2(port.AvgNightly), false)
	r.labelValue("Total Bookings:", fmt.Sprintf("%d", port.TotalBookings), false)
	r.pdf.Ln(5)
	for _, p := range in.Properties {
		pm := port.PerProperty[p.ID]
		r.pdf.SetFont("Helvetica", "B", 10)
		r.pdf.CellFormat(0, 6, displayName(p), "", 1, "L", false, 0, "")
		r.labelValue("  Revenue:", money2(pm.TotalRevenue), false)
		r.labelValue("  Occupancy:", fmt.Sprintf("%.1f%%", pm.OccupancyRate), false)
		r.labelValue("  Nights:", fmt.Sprintf("%d", pm.NightsBooked), false)
	}
}

func (r *report) expenses(in Input) {
	r.pdf.AddPage()
	r.header("3. EXPENSE DETAIL")

	byCat := map[string][]store.Expense{}
	for _, e := range in.Expenses {
		if e.Date.Year() != in.TaxYear {
			continue
		}
		cat := e.Category
		if cat == "" {
			cat = "Other"
		}
		byCat[cat] = append(byCat[cat], e)
	}
	cats := make([]string, 0, len(byCat))
	for c := range byCat {
		cats = append(cats, c)
	}
	sort.Strings(cats)

	var total float64
	for _, cat := range cats {
		items := byCat[cat]
		sort.Slice(items, func(i, j int) bool { return items[i].Date.Before(items[j].Date) })
		var catTotal float64
		for _, e := range items {
			catTotal += e.Amount
		}
		total += catTotal
		r.pdf.SetFont("Helvetica", "B", 10)
		r.pdf.CellFormat(0, 6, fmt.Sprintf("%s: %s", cat, money2(catTotal)), "", 1, "L", false, 0, "")
		r.pdf.SetFont("Helvetica", "", 8)
		for _, e := range items {
			line := fmt.Sprintf("  %s - %s - %s", e.Date.Format("2006-01-02"), e.Description, money2(e.Amount))
			if e.Vendor != "" {
				line += " (" + e.Vendor + ")"
			}
			r.pdf.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
		}
		r.pdf.Ln(2)
	}
	r.pdf.SetFont("Helvetica", "B", 11)
	r.pdf.CellFormat(0, 8, "TOTAL: "+money2(total), "", 1, "L", false, 0, "")
}

func (r *report) scheduleE(in Input) {
	r.pdf.AddPage()
	r.header("4. SCHEDULE E PREPARATION")
	for _, p := range in.Properties {
		sched := analytics.ComputeScheduleE(p, in.Bookings, in.Expenses, in.TaxYear)
		r.pdf.SetFont("Helvetica", "B", 11)
		r.pdf.CellFormat(0, 7, displayName(p)+" - Schedule E", "", 1, "L", false, 0, "")
		r.labelValue("Address:", sched.PropertyAddress, false)
		r.labelValue("Rental Days:", fmt.Sprintf("%d", sched.FairRentalDays), false)
		r.labelValue("Line 3 Rents:", money2(sched.Rents), false)
		r.labelValue("Line 7 Cleaning:", money2(sched.Cleaning), false)
		r.labelValue("Line 9 Insurance:", money2(sched.Insurance), false)
		r.labelValue("Line 14 Repairs:", money2(sched.Repairs), false)
		r.labelValue("Line 15 Supplies:", money2(sched.Supplies), false)
		r.labelValue("Line 16 Taxes:", money2(sched.Taxes), false)
		r.labelValue("Line 17 Utilities:", money2(sched.Utilities), false)
		r.labelValue("Line 19 Other:", money2(sched.Other), false)
		r.labelValue("Total Expenses:", money2(sched.TotalExpenses), true)
		r.labelValue("Net Income:", money2(sched.NetIncome), true)
		r.pdf.Ln(8)
	}
}

func (r *report) timeLog(in Input) {
	r.pdf.AddPage()
	r.header("5. MATERIAL PARTICIPATION TIME LOG")

	entries := make([]store.TimeEntry, 0, len(in.TimeEntries))
	var total float64
	for _, e := range in.TimeEntries {
		if e.Date.Year() != in.TaxYear {
			continue
		}
		entries = append(entries, e)
		total += e.Hours
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date.Before(entries[j].Date) })

	r.pdf.SetFont("Helvetica", "B", 10)
	r.pdf.CellFormat(0, 6, fmt.Sprintf("Total Hours: %.2f | Entries: %d", total, len(entries)), "", 1, "L", false, 0, "")
	r.pdf.Ln(3)

	r.timeLogHead()
	for _, e := range entries {
		if r.pdf.GetY() > 260 {
			r.pdf.AddPage()
			r.timeLogHead()
		}
		r.pdf.CellFormat(22, 5, e.Date.Format("2006-01-02"), "1", 0, "L", false, 0, "")
		r.pdf.CellFormat(12, 5, fmt.Sprintf("%.2f", e.Hours), "1", 0, "L", false, 0, "")
		r.pdf.CellFormat(35, 5, truncate(e.Category, 25), "1", 0, "L", false, 0, "")
		r.pdf.CellFormat(0, 5, truncate(e.Description, 80), "1", 1, "L", false, 0, "")
	}
}

func (r *report) timeLogHead() {
	r.pdf.SetFont("Helvetica", "B", 7)
	r.pdf.CellFormat(22, 5, "Date", "1", 0, "L", false, 0, "")
	r.pdf.CellFormat(12, 5, "Hours", "1", 0, "L", false, 0, "")
	r.pdf.CellFormat(35, 5, "Category", "1", 0, "L", false, 0, "")
	r.pdf.CellFormat(0, 5, "Description", "1", 1, "L", false, 0, "")
	r.pdf.SetFont("Helvetica", "", 7)
}

func (r *report) participation(in Input) {
	r.pdf.AddPage()
	r.header("6. MATERIAL PARTICIPATION ANALYSIS")
	snap := participation.Compute(in.TimeEntries, nil, in.Today, in.TaxYear, participation.DefaultWeeksPerYear)

	r.labelValue("Total Hours:", fmt.Sprintf("%.2f", snap.TotalHours), false)
	r.labelValue("Total Entries:", fmt.Sprintf("%d", snap.TotalEntries), false)
	r.pdf.Ln(3)

	r.pdf.SetFont("Helvetica", "B", 10)
	r.pdf.CellFormat(0, 6, "IRS Test 1: 500-Hour Safe Harbor", "", 1, "L", false, 0, "")
	r.labelValue("  Status:", statusLabel(snap.Test1), false)
	r.labelValue("  Hours:", fmt.Sprintf("%.2f / %d", snap.TotalHours, participation.Test1Threshold), false)
	r.pdf.Ln(3)
	r.pdf.SetFont("Helvetica", "B", 10)
	r.pdf.CellFormat(0, 6, "IRS Test 3: 100+ Hours (Largest Participant)", "", 1, "L", false, 0, "")
	r.labelValue("  Status:", statusLabel(snap.Test3), false)
	r.labelValue("  Hours:", fmt.Sprintf("%.2f / %d", snap.TotalHours, participation.Test3Threshold), false)
	r.pdf.Ln(5)

	r.pdf.SetFont("Helvetica", "B", 10)
	r.pdf.CellFormat(0, 6, "Hours by Category:", "", 1, "L", false, 0, "")
	r.pdf.SetFont("Helvetica", "", 9)
	type catHours struct {
		cat   string
		hours float64
	}
	rows := make([]catHours, 0, len(snap.ByCategory))
	for c, h := range snap.ByCategory {
		rows = append(rows, catHours{c, h})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].hours != rows[j].hours {
			return rows[i].hours > rows[j].hours
		}
		return rows[i].cat < rows[j].cat
	})
	for _, row := range rows {
		r.pdf.CellFormat(0, 5, fmt.Sprintf("  %s: %.2f hrs", row.cat, row.hours), "", 1, "L", false, 0, "")
	}
}

func (r *report) documents(in Input) {
	r.pdf.AddPage()
	r.header("7. DOCUMENT & RECEIPT INVENTORY")

	docs := make([]store.Document, 0, len(in.Documents))
	for _, d := range in.Documents {
		if d.TaxYear == in.TaxYear || d.Date.Year() == in.TaxYear {
			docs = append(docs, d)
		}
	}
	if len(docs) == 0 {
		r.pdf.SetFont("Helvetica", "", 10)
		r.pdf.CellFormat(0, 6, "No documents logged.", "", 1, "L", false, 0, "")
		return
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Date.Before(docs[j].Date) })

	r.pdf.SetFont("Helvetica", "B", 7)
	r.pdf.CellFormat(22, 5, "Date", "1", 0, "L", false, 0, "")
	r.pdf.CellFormat(25, 5, "Type", "1", 0, "L", false, 0, "")
	r.pdf.CellFormat(50, 5, "Title", "1", 0, "L", false, 0, "")
	r.pdf.CellFormat(20, 5, "Amount", "1", 0, "L", false, 0, "")
	r.pdf.CellFormat(0, 5, "Vendor", "1", 1, "L", false, 0, "")
	r.pdf.SetFont("Helvetica", "", 7)
	for _, d := range docs {
		amount := ""
		if d.Amount > 0 {
			amount = money2(d.Amount)
		}
		r.pdf.CellFormat(22, 5, d.Date.Format("2006-01-02"), "1", 0, "L", false, 0, "")
		r.pdf.CellFormat(25, 5, truncate(d.Type, 18), "1", 0, "L", false, 0, "")
		r.pdf.CellFormat(50, 5, truncate(d.Title, 35), "1", 0, "L", false, 0, "")
		r.pdf.CellFormat(20, 5, amount, "1", 0, "L", false, 0, "")
		r.pdf.CellFormat(0, 5, truncate(d.Vendor, 25), "1", 1, "L", false, 0, "")
	}
}

func (r *report) maintenance(in Input) {
	r.header("8. MAINTENANCE LOG")
	names := map[string]string{}
	for _, p := range in.Properties {
		names[p.ID] = displayName(p)
	}
	for _, item := range in.Maintenance {
		r.pdf.SetFont("Helvetica", "B", 9)
		r.pdf.CellFormat(0, 5, item.Title+" - "+names[item.PropertyID], "", 1, "L", false, 0, "")
		r.pdf.SetFont("Helvetica", "", 8)
		line := fmt.Sprintf("  Priority: %s | Status: %s | Cost: %s", item.Priority, item.Status, money2(item.Cost))
		r.pdf.CellFormat(0, 4, line, "", 1, "L", false, 0, "")
		r.pdf.Ln(2)
	}
}

func (r *report) contacts(contacts []store.Contact) {
	r.pdf.AddPage()
	r.header("9. CONTACT DIRECTORY")
	for _, c := range contacts {
		r.pdf.SetFont("Helvetica", "B", 9)
		r.pdf.CellFormat(0, 5, c.Name+" - "+c.Role, "", 1, "L", false, 0, "")
		r.pdf.SetFont("Helvetica", "", 8)
		detail := ""
		for _, part := range []string{c.Phone, c.Email, c.Rate} {
			if part == "" {
				continue
			}
			if detail != "" {
				detail += " | "
			}
			detail += part
		}
		r.pdf.CellFormat(0, 4, "  "+detail, "", 1, "L", false, 0, "")
		r.pdf.Ln(1)
	}
}

func (r *report) disclaimer() {
	r.pdf.AddPage()
	r.header("DISCLAIMER")
	r.pdf.SetFont("Helvetica", "", 9)
	r.pdf.MultiCell(0, 5, "This report was generated by HostLedger for tax preparation and audit documentation. "+
		"Based on user-entered data, not independently verified. Does not constitute tax advice. "+
		"Consult a qualified CPA for guidance on material participation, passive activity rules, and Schedule E reporting. "+
		"The IRS requires contemporaneous records for material participation claims. Retain all original documents 7+ years.", "", "L", false)
}

func displayName(p store.Property) string {
	if p.Nickname != "" {
		return p.Nickname
	}
	return p.Name
}

func statusLabel(s participation.TestStatus) string {
	switch s {
	case participation.Qualified:
		return "MET"
	case participation.Indeterminate:
		return "INDETERMINATE (no co-participant data)"
	default:
		return "NOT YET MET"
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func money0(v float64) string { return fmt.Sprintf("$%.0f", v) }
func money2(v float64) string { return fmt.Sprintf("$%.2f", v) }
