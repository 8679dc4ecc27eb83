package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// propertyRepo implements PropertyRepository.
type propertyRepo struct {
	pool *pgxpool.Pool
}

const propertyColumns = `id, name, nickname, address, city, state, zip,
nightly_rate, cleaning_fee, max_guests, active,
purchase_price, mortgage_monthly, property_tax_annual, insurance_annual,
hoa_monthly, down_payment, closing_costs, furnishing_cost, startup_costs, created_at`

func scanProperty(row pgx.Row) (*Property, error) {
	var p Property
	err := row.Scan(&p.ID, &p.Name, &p.Nickname, &p.Address, &p.City, &p.State, &p.Zip,
		&p.NightlyRate, &p.CleaningFee, &p.MaxGuests, &p.Active,
		&p.PurchasePrice, &p.MortgageMonthly, &p.PropertyTaxAnnual, &p.InsuranceAnnual,
		&p.HOAMonthly, &p.DownPayment, &p.ClosingCosts, &p.FurnishingCost, &p.StartupCosts, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan property: %w", err)
	}
	return &p, nil
}

func (r *propertyRepo) Create(ctx context.Context, p Property) (*Property, error) {
	defer observeDB(ctx, "properties.create")()
	q := `INSERT INTO properties (id, name, nickname, address, city, state, zip,
nightly_rate, cleaning_fee, max_guests, active,
purchase_price, mortgage_monthly, property_tax_annual, insurance_annual,
hoa_monthly, down_payment, closing_costs, furnishing_cost, startup_costs)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)
RETURNING ` + propertyColumns
	return scanProperty(r.pool.QueryRow(ctx, q,
		p.ID, p.Name, p.Nickname, p.Address, p.City, p.State, p.Zip,
		p.NightlyRate, p.CleaningFee, p.MaxGuests, p.Active,
		p.PurchasePrice, p.MortgageMonthly, p.PropertyTaxAnnual, p.InsuranceAnnual,
		p.HOAMonthly, p.DownPayment, p.ClosingCosts, p.FurnishingCost, p.StartupCosts))
}

func (r *propertyRepo) GetByID(ctx context.Context, id string) (*Property, error) {
	defer observeDB(ctx, "properties.get")()
	q := `SELECT ` + propertyColumns + ` FROM properties WHERE id=$1`
	return scanProperty(r.pool.QueryRow(ctx, q, id))
}

func (r *propertyRepo) List(ctx context.Context) ([]Property, error) {
	defer observeDB(ctx, "properties.list")()
	q := `SELECT ` + propertyColumns + ` FROM properties ORDER BY created_at`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	var out []Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *propertyRepo) Update(ctx context.Context, p Property) error {
	defer observeDB(ctx, "properties.update")()
	q := `UPDATE properties SET name=$2, nickname=$3, address=$4, city=$5, state=$6, zip=$7,
nightly_rate=$8, cleaning_fee=$9, max_guests=$10, active=$11,
purchase_price=$12, mortgage_monthly=$13, property_tax_annual=$14, insurance_annual=$15,
hoa_monthly=$16, down_payment=$17, closing_costs=$18, furnishing_cost=$19, startup_costs=$20
WHERE id=$1`
	tag, err := r.pool.Exec(ctx, q,
		p.ID, p.Name, p.Nickname, p.Address, p.City, p.State, p.Zip,
		p.NightlyRate, p.CleaningFee, p.MaxGuests, p.Active,
		p.PurchasePrice, p.MortgageMonthly, p.PropertyTaxAnnual, p.InsuranceAnnual,
		p.HOAMonthly, p.DownPayment, p.ClosingCosts, p.FurnishingCost, p.StartupCosts)
	if err != nil {
		return fmt.Errorf("update property: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *propertyRepo) Delete(ctx context.Context, id string) error {
	defer observeDB(ctx, "properties.delete")()
	tag, err := r.pool.Exec(ctx, `DELETE FROM properties WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// bookingRepo implements BookingRepository.
type bookingRepo struct {
	pool *pgxpool.Pool
}

const bookingColumns = `id, property_id, guest_name, guest_phone, guests,
check_in, check_out, nights, platform, gross, platform_fee, net_payout,
status, source, needs_review, rating, notes, created_at`

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	err := row.Scan(&b.ID, &b.PropertyID, &b.GuestName, &b.GuestPhone, &b.Guests,
		&b.CheckIn, &b.CheckOut, &b.Nights, &b.Platform, &b.Gross, &b.PlatformFee, &b.NetPayout,
		&b.Status, &b.Source, &b.NeedsReview, &b.Rating, &b.Notes, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan booking: %w", err)
	}
	return &b, nil
}

func (r *bookingRepo) Create(ctx context.Context, b Booking) (*Booking, error) {
	defer observeDB(ctx, "bookings.create")()
	q := `INSERT INTO bookings (id, property_id, guest_name, guest_phone, guests,
check_in, check_out, nights, platform, gross, platform_fee, net_payout,
status, source, needs_review, rating, notes)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
RETURNING ` + bookingColumns
	return scanBooking(r.pool.QueryRow(ctx, q,
		b.ID, b.PropertyID, b.GuestName, b.GuestPhone, b.Guests,
		b.CheckIn, b.CheckOut, b.Nights, b.Platform, b.Gross, b.PlatformFee, b.NetPayout,
		b.Status, b.Source, b.NeedsReview, b.Rating, b.Notes))
}

// CreateBatch inserts imported bookings in one transaction so a failed run
// leaves no partial calendar.
func (r *bookingRepo) CreateBatch(ctx context.Context, bs []Booking) error {
	defer observeDB(ctx, "bookings.create_batch")()
	if len(bs) == 0 {
		return nil
	}
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin booking batch: %w", err)
	}
	q := `INSERT INTO bookings (id, property_id, guest_name, guest_phone, guests,
check_in, check_out, nights, platform, gross, platform_fee, net_payout,
status, source, needs_review, rating, notes)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`
	for _, b := range bs {
		if _, err := tx.Exec(ctx, q,
			b.ID, b.PropertyID, b.GuestName, b.GuestPhone, b.Guests,
			b.CheckIn, b.CheckOut, b.Nights, b.Platform, b.Gross, b.PlatformFee, b.NetPayout,
			b.Status, b.Source, b.NeedsReview, b.Rating, b.Notes); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("insert booking %s: %w", b.ID, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking batch: %w", err)
	}
	return nil
}

func (r *bookingRepo) GetByID(ctx context.Context, id string) (*Booking, error) {
	defer observeDB(ctx, "bookings.get")()
	q := `SELECT ` + bookingColumns + ` FROM bookings WHERE id=$1`
	return scanBooking(r.pool.QueryRow(ctx, q, id))
}

func (r *bookingRepo) ListByProperty(ctx context.Context, propertyID string) ([]Booking, error) {
	defer observeDB(ctx, "bookings.list_by_property")()
	q := `SELECT ` + bookingColumns + ` FROM bookings WHERE property_id=$1 ORDER BY check_in`
	return r.collect(ctx, q, propertyID)
}

func (r *bookingRepo) List(ctx context.Context) ([]Booking, error) {
	defer observeDB(ctx, "bookings.list")()
	q := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY check_in`
	return r.collect(ctx, q)
}

func (r *bookingRepo) ListInRange(ctx context.Context, from, to time.Time) ([]Booking, error) {
	defer observeDB(ctx, "bookings.list_in_range")()
	q := `SELECT ` + bookingColumns + ` FROM bookings
WHERE check_out > $1 AND check_in < $2 ORDER BY check_in`
	return r.collect(ctx, q, from, to)
}

func (r *bookingRepo) collect(ctx context.Context, q string, args ...any) ([]Booking, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	var out []Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

func (r *bookingRepo) Update(ctx context.Context, b Booking) error {
	defer observeDB(ctx, "bookings.update")()
	q := `UPDATE bookings SET guest_name=$2, guest_phone=$3, guests=$4,
check_in=$5, check_out=$6, nights=$7, platform=$8, gross=$9, platform_fee=$10,
net_payout=$11, status=$12, needs_review=$13, rating=$14, notes=$15
WHERE id=$1`
	tag, err := r.pool.Exec(ctx, q,
		b.ID, b.GuestName, b.GuestPhone, b.Guests,
		b.CheckIn, b.CheckOut, b.Nights, b.Platform, b.Gross, b.PlatformFee,
		b.NetPayout, b.Status, b.NeedsReview, b.Rating, b.Notes)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *bookingRepo) Delete(ctx context.Context, id string) error {
	defer observeDB(ctx, "bookings.delete")()
	tag, err := r.pool.Exec(ctx, `DELETE FROM bookings WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// timeEntryRepo implements TimeEntryRepository.
type timeEntryRepo struct {
	pool *pgxpool.Pool
}

const timeEntryColumns = `id, property_id, entry_date, category, hours, description, source, created_at`

func scanTimeEntry(row pgx.Row) (*TimeEntry, error) {
	var e TimeEntry
	err := row.Scan(&e.ID, &e.PropertyID, &e.Date, &e.Category, &e.Hours, &e.Description, &e.Source, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan time entry: %w", err)
	}
	return &e, nil
}

func (r *timeEntryRepo) Create(ctx context.Context, e TimeEntry) (*TimeEntry, error) {
	defer observeDB(ctx, "time_entries.create")()
	q := `INSERT INTO time_entries (id, property_id, entry_date, category, hours, description, source)
VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING ` + timeEntryColumns
	return scanTimeEntry(r.pool.QueryRow(ctx, q,
		e.ID, e.PropertyID, e.Date, e.Category, e.Hours, e.Description, e.Source))
}

func (r *timeEntryRepo) GetByID(ctx context.Context, id string) (*TimeEntry, error) {
	defer observeDB(ctx, "time_entries.get")()
	q := `SELECT ` + timeEntryColumns + ` FROM time_entries WHERE id=$1`
	return scanTimeEntry(r.pool.QueryRow(ctx, q, id))
}

func (r *timeEntryRepo) ListByYear(ctx context.Context, year int) ([]TimeEntry, error) {
	defer observeDB(ctx, "time_entries.list_by_year")()
	q := `SELECT ` + timeEntryColumns + ` FROM time_entries
WHERE EXTRACT(YEAR FROM entry_date) = $1 ORDER BY entry_date`
	return r.collect(ctx, q, year)
}

func (r *timeEntryRepo) List(ctx context.Context) ([]TimeEntry, error) {
	defer observeDB(ctx, "time_entries.list")()
	q := `SELECT ` + timeEntryColumns + ` FROM time_entries ORDER BY entry_date`
	return r.collect(ctx, q)
}

func (r *timeEntryRepo) collect(ctx context.Context, q string, args ...any) ([]TimeEntry, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query time entries: %w", err)
	}
	defer rows.Close()

	var out []TimeEntry
	for rows.Next() {
		e, err := scanTimeEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

// Update rewrites the recorded fields of an entry. created_at is never
// touched so the contemporaneous record keeps its original timestamp.
func (r *timeEntryRepo) Update(ctx context.Context, e TimeEntry) error {
	defer observeDB(ctx, "time_entries.update")()
	q := `UPDATE time_entries
SET property_id=$2, entry_date=$3, category=$4, hours=$5, description=$6, source=$7
WHERE id=$1`
	tag, err := r.pool.Exec(ctx, q, e.ID, e.PropertyID, e.Date, e.Category, e.Hours, e.Description, e.Source)
	if err != nil {
		return fmt.Errorf("update time entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *timeEntryRepo) Delete(ctx context.Context, id string) error {
	defer observeDB(ctx, "time_entries.delete")()
	tag, err := r.pool.Exec(ctx, `DELETE FROM time_entries WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete time entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// expenseRepo implements ExpenseRepository.
type expenseRepo struct {
	pool *pgxpool.Pool
}

const expenseColumns = `id, property_id, expense_date, category, description, amount, vendor, tax_deductible, created_at`

func scanExpense(row pgx.Row) (*Expense, error) {
	var e Expense
	err := row.Scan(&e.ID, &e.PropertyID, &e.Date, &e.Category, &e.Description, &e.Amount, &e.Vendor, &e.TaxDeductible, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan expense: %w", err)
	}
	return &e, nil
}

func (r *expenseRepo) Create(ctx context.Context, e Expense) (*Expense, error) {
	defer observeDB(ctx, "expenses.create")()
	q := `INSERT INTO expenses (id, property_id, expense_date, category, description, amount, vendor, tax_deductible)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING ` + expenseColumns
	return scanExpense(r.pool.QueryRow(ctx, q,
		e.ID, e.PropertyID, e.Date, e.Category, e.Description, e.Amount, e.Vendor, e.TaxDeductible))
}

func (r *expenseRepo) ListByYear(ctx context.Context, year int) ([]Expense, error) {
	defer observeDB(ctx, "expenses.list_by_year")()
	q := `SELECT ` + expenseColumns + ` FROM expenses
WHERE EXTRACT(YEAR FROM expense_date) = $1 ORDER BY expense_date`
	return r.collect(ctx, q, year)
}

func (r *expenseRepo) List(ctx context.Context) ([]Expense, error) {
	defer observeDB(ctx, "expenses.list")()
	q := `SELECT ` + expenseColumns + ` FROM expenses ORDER BY expense_date`
	return r.collect(ctx, q)
}

func (r *expenseRepo) collect(ctx context.Context, q string, args ...any) ([]Expense, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	var out []Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func (r *expenseRepo) Delete(ctx context.Context, id string) error {
	defer observeDB(ctx, "expenses.delete")()
	tag, err := r.pool.Exec(ctx, `DELETE FROM expenses WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// contactRepo implements ContactRepository.
type contactRepo struct {
	pool *pgxpool.Pool
}

const contactColumns = `id, name, role, company, phone, email, rate, notes, created_at`

func scanContact(row pgx.Row) (*Contact, error) {
	var c Contact
	err := row.Scan(&c.ID, &c.Name, &c.Role, &c.Company, &c.Phone, &c.Email, &c.Rate, &c.Notes, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan contact: %w", err)
	}
	return &c, nil
}

func (r *contactRepo) Create(ctx context.Context, c Contact) (*Contact, error) {
	defer observeDB(ctx, "contacts.create")()
	q := `INSERT INTO contacts (id, name, role, company, phone, email, rate, notes)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING ` + contactColumns
	return scanContact(r.pool.QueryRow(ctx, q,
		c.ID, c.Name, c.Role, c.Company, c.Phone, c.Email, c.Rate, c.Notes))
}

func (r *contactRepo) List(ctx context.Context) ([]Contact, error) {
	defer observeDB(ctx, "contacts.list")()
	rows, err := r.pool.Query(ctx, `SELECT `+contactColumns+` FROM contacts ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}
	defer rows.Close()

	var out []Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *contactRepo) Delete(ctx context.Context, id string) error {
	defer observeDB(ctx, "contacts.delete")()
	tag, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// documentRepo implements DocumentRepository.
type documentRepo struct {
	pool *pgxpool.Pool
}

const documentColumns = `id, property_id, doc_type, title, doc_date, amount, vendor, tax_year, created_at`

func scanDocument(row pgx.Row) (*Document, error) {
	var d Document
	err := row.Scan(&d.ID, &d.PropertyID, &d.Type, &d.Title, &d.Date, &d.Amount, &d.Vendor, &d.TaxYear, &d.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan document: %w", err)
	}
	return &d, nil
}

func (r *documentRepo) Create(ctx context.Context, d Document) (*Document, error) {
	defer observeDB(ctx, "documents.create")()
	q := `INSERT INTO documents (id, property_id, doc_type, title, doc_date, amount, vendor, tax_year)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING ` + documentColumns
	return scanDocument(r.pool.QueryRow(ctx, q,
		d.ID, d.PropertyID, d.Type, d.Title, d.Date, d.Amount, d.Vendor, d.TaxYear))
}

func (r *documentRepo) ListByTaxYear(ctx context.Context, year int) ([]Document, error) {
	defer observeDB(ctx, "documents.list_by_tax_year")()
	q := `SELECT ` + documentColumns + ` FROM documents
WHERE tax_year = $1 OR EXTRACT(YEAR FROM doc_date) = $1 ORDER BY doc_date`
	return r.collect(ctx, q, year)
}

func (r *documentRepo) List(ctx context.Context) ([]Document, error) {
	defer observeDB(ctx, "documents.list")()
	return r.collect(ctx, `SELECT `+documentColumns+` FROM documents ORDER BY doc_date`)
}

func (r *documentRepo) collect(ctx context.Context, q string, args ...any) ([]Document, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

func (r *documentRepo) Delete(ctx context.Context, id string) error {
	defer observeDB(ctx, "documents.delete")()
	tag, err := r.pool.Exec(ctx, `DELETE FROM documents WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// maintenanceRepo implements MaintenanceRepository.
type maintenanceRepo struct {
	pool *pgxpool.Pool
}

const maintenanceColumns = `id, property_id, title, priority, status, reported_at, cost, vendor`

func scanMaintenance(row pgx.Row) (*MaintenanceItem, error) {
	var m MaintenanceItem
	err := row.Scan(&m.ID, &m.PropertyID, &m.Title, &m.Priority, &m.Status, &m.ReportedAt, &m.Cost, &m.Vendor)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan maintenance item: %w", err)
	}
	return &m, nil
}

func (r *maintenanceRepo) Create(ctx context.Context, m MaintenanceItem) (*MaintenanceItem, error) {
	defer observeDB(ctx, "maintenance.create")()
	q := `INSERT INTO maintenance_items (id, property_id, title, priority, status, cost, vendor)
VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING ` + maintenanceColumns
	return scanMaintenance(r.pool.QueryRow(ctx, q,
		m.ID, m.PropertyID, m.Title, m.Priority, m.Status, m.Cost, m.Vendor))
}

func (r *maintenanceRepo) ListOpen(ctx context.Context) ([]MaintenanceItem, error) {
	defer observeDB(ctx, "maintenance.list_open")()
	q := `SELECT ` + maintenanceColumns + ` FROM maintenance_items
WHERE status IN ('open','in_progress') ORDER BY reported_at`
	return r.collect(ctx, q)
}

func (r *maintenanceRepo) List(ctx context.Context) ([]MaintenanceItem, error) {
	defer observeDB(ctx, "maintenance.list")()
	return r.collect(ctx, `SELECT `+maintenanceColumns+` FROM maintenance_items ORDER BY reported_at`)
}

func (r *maintenanceRepo) collect(ctx context.Context, q string, args ...any) ([]MaintenanceItem, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query maintenance items: %w", err)
	}
	defer rows.Close()

	var out []MaintenanceItem
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

func (r *maintenanceRepo) Update(ctx context.Context, m MaintenanceItem) error {
	defer observeDB(ctx, "maintenance.update")()
	q := `UPDATE maintenance_items SET title=$2, priority=$3, status=$4, cost=$5, vendor=$6 WHERE id=$1`
	tag, err := r.pool.Exec(ctx, q, m.ID, m.Title, m.Priority, m.Status, m.Cost, m.Vendor)
	if err != nil {
		return fmt.Errorf("update maintenance item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *maintenanceRepo) Delete(ctx context.Context, id string) error {
	defer observeDB(ctx, "maintenance.delete")()
	tag, err := r.pool.Exec(ctx, `DELETE FROM maintenance_items WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete maintenance item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
