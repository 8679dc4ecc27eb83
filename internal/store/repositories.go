package store

import (
	"context"
	"time"
)

// PropertyRepository defines persistence operations for properties.
type PropertyRepository interface {
	Create(ctx context.Context, p Property) (*Property, error)
	GetByID(ctx context.Context, id string) (*Property, error)
	List(ctx context.Context) ([]Property, error)
	Update(ctx context.Context, p Property) error
	Delete(ctx context.Context, id string) error
}

// BookingRepository handles the reservation calendar.
type BookingRepository interface {
	Create(ctx context.Context, b Booking) (*Booking, error)
	CreateBatch(ctx context.Context, bs []Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	ListByProperty(ctx context.Context, propertyID string) ([]Booking, error)
	List(ctx context.Context) ([]Booking, error)
	ListInRange(ctx context.Context, from, to time.Time) ([]Booking, error)
	Update(ctx context.Context, b Booking) error
	Delete(ctx context.Context, id string) error
}

// TimeEntryRepository handles the material participation ledger. Entries
// are append-only apart from Update, which exists for correction edits.
type TimeEntryRepository interface {
	Create(ctx context.Context, e TimeEntry) (*TimeEntry, error)
	GetByID(ctx context.Context, id string) (*TimeEntry, error)
	ListByYear(ctx context.Context, year int) ([]TimeEntry, error)
	List(ctx context.Context) ([]TimeEntry, error)
	Update(ctx context.Context, e TimeEntry) error
	Delete(ctx context.Context, id string) error
}

// ExpenseRepository handles deductible cost records.
type ExpenseRepository interface {
	Create(ctx context.Context, e Expense) (*Expense, error)
	ListByYear(ctx context.Context, year int) ([]Expense, error)
	List(ctx context.Context) ([]Expense, error)
	Delete(ctx context.Context, id string) error
}

// ContactRepository handles the vendor directory.
type ContactRepository interface {
	Create(ctx context.Context, c Contact) (*Contact, error)
	List(ctx context.Context) ([]Contact, error)
	Delete(ctx context.Context, id string) error
}

// DocumentRepository handles the audit document inventory.
type DocumentRepository interface {
	Create(ctx context.Context, d Document) (*Document, error)
	ListByTaxYear(ctx context.Context, year int) ([]Document, error)
	List(ctx context.Context) ([]Document, error)
	Delete(ctx context.Context, id string) error
}

// MaintenanceRepository handles the repair queue.
type MaintenanceRepository interface {
	Create(ctx context.Context, m MaintenanceItem) (*MaintenanceItem, error)
	ListOpen(ctx context.Context) ([]MaintenanceItem, error)
	List(ctx context.Context) ([]MaintenanceItem, error)
	Update(ctx context.Context, m MaintenanceItem) error
	Delete(ctx context.Context, id string) error
}
