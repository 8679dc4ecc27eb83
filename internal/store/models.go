package store

import "time"

// BookingStatus is the lifecycle state of a reservation.
type BookingStatus string

const (
	StatusConfirmed  BookingStatus = "confirmed"
	StatusCheckedIn  BookingStatus = "checked_in"
	StatusCheckedOut BookingStatus = "checked_out"
	StatusCancelled  BookingStatus = "cancelled"
	StatusBlocked    BookingStatus = "blocked"
)

// Platform identifies the booking channel a reservation came from.
type Platform string

const (
	PlatformAirbnb     Platform = "airbnb"
	PlatformVRBO       Platform = "vrbo"
	PlatformBookingCom Platform = "booking_com"
	PlatformUnknown    Platform = "unknown"
)

// BookingSource records how a booking entered the system.
type BookingSource string

const (
	SourceManual     BookingSource = "manual"
	SourceICalImport BookingSource = "ical_import"
)

// EntrySource records how a time entry was captured.
type EntrySource string

const (
	EntryTimer  EntrySource = "timer"
	EntryManual EntrySource = "manual"
)

// Property is a short-term rental unit in the owner's portfolio.
type Property struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Nickname          string    `json:"nickname,omitempty"`
	Address           string    `json:"address,omitempty"`
	City              string    `json:"city,omitempty"`
	State             string    `json:"state,omitempty"`
	Zip               string    `json:"zip,omitempty"`
	NightlyRate       float64   `json:"nightly_rate"`
	CleaningFee       float64   `json:"cleaning_fee"`
	MaxGuests         int       `json:"max_guests"`
	Active            bool      `json:"active"`
	PurchasePrice     float64   `json:"purchase_price,omitempty"`
	MortgageMonthly   float64   `json:"mortgage_monthly,omitempty"`
	PropertyTaxAnnual float64   `json:"property_tax_annual,omitempty"`
	InsuranceAnnual   float64   `json:"insurance_annual,omitempty"`
	HOAMonthly        float64   `json:"hoa_monthly,omitempty"`
	DownPayment       float64   `json:"down_payment,omitempty"`
	ClosingCosts      float64   `json:"closing_costs,omitempty"`
	FurnishingCost    float64   `json:"furnishing_cost,omitempty"`
	StartupCosts      float64   `json:"startup_costs,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// TotalInvestment is the cash basis used for cash-on-cash return.
func (p Property) TotalInvestment() float64 {
	return p.DownPayment + p.ClosingCosts + p.FurnishingCost + p.StartupCosts
}

// Booking is a reservation or owner block against a property.
type Booking struct {
	ID          string        `json:"id"`
	PropertyID  string        `json:"property_id"`
	GuestName   string        `json:"guest_name,omitempty"`
	GuestPhone  string        `json:"guest_phone,omitempty"`
	Guests      int           `json:"guests"`
	CheckIn     time.Time     `json:"check_in"`
	CheckOut    time.Time     `json:"check_out"`
	Nights      int           `json:"nights"`
	Platform    Platform      `json:"platform"`
	Gross       float64       `json:"gross"`
	PlatformFee float64       `json:"platform_fee"`
	NetPayout   float64       `json:"net_payout"`
	Status      BookingStatus `json:"status"`
	Source      BookingSource `json:"source"`
	NeedsReview bool          `json:"needs_review,omitempty"`
	Rating      int           `json:"rating,omitempty"`
	Notes       string        `json:"notes,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// ImportKey is the dedup identity: property plus exact stay dates. Guest
// names are unreliable across partial feed exports and are excluded.
func (b Booking) ImportKey() string {
	return b.PropertyID + "|" + b.CheckIn.Format("2006-01-02") + "|" + b.CheckOut.Format("2006-01-02")
}

// TimeEntry is one contemporaneous record in the material participation log.
type TimeEntry struct {
	ID          string      `json:"id"`
	PropertyID  string      `json:"property_id,omitempty"`
	Date        time.Time   `json:"date"`
	Category    string      `json:"category"`
	Hours       float64     `json:"hours"`
	Description string      `json:"description,omitempty"`
	Source      EntrySource `json:"source"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Expense is a deductible cost attributed to a property.
type Expense struct {
	ID            string    `json:"id"`
	PropertyID    string    `json:"property_id,omitempty"`
	Date          time.Time `json:"date"`
	Category      string    `json:"category"`
	Description   string    `json:"description,omitempty"`
	Amount        float64   `json:"amount"`
	Vendor        string    `json:"vendor,omitempty"`
	TaxDeductible bool      `json:"tax_deductible"`
	CreatedAt     time.Time `json:"created_at"`
}

// Contact is a vendor or service provider in the owner's directory.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role,omitempty"`
	Company   string    `json:"company,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Rate      string    `json:"rate,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Document is a stored receipt, permit or other audit artifact.
type Document struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"property_id,omitempty"`
	Type       string    `json:"type"`
	Title      string    `json:"title"`
	Date       time.Time `json:"date"`
	Amount     float64   `json:"amount,omitempty"`
	Vendor     string    `json:"vendor,omitempty"`
	TaxYear    int       `json:"tax_year"`
	CreatedAt  time.Time `json:"created_at"`
}

// MaintenanceItem tracks an open or resolved repair.
type MaintenanceItem struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"property_id,omitempty"`
	Title      string    `json:"title"`
	Priority   string    `json:"priority"`
	Status     string    `json:"status"`
	ReportedAt time.Time `json:"reported_at"`
	Cost       float64   `json:"cost,omitempty"`
	Vendor     string    `json:"vendor,omitempty"`
}
