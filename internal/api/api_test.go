package api

import (
	"context"
	"time"

	"github.com/hostledger/hostledger/internal/store"
)

// In-memory repositories for handler tests.

type fakeProperties struct {
	items map[string]store.Property
}

func (f *fakeProperties) Create(ctx context.Context, p store.Property) (*store.Property, error) {
	if f.items == nil {
		f.items = map[string]store.Property{}
	}
	f.items[p.ID] = p
	return &p, nil
}

func (f *fakeProperties) GetByID(ctx context.Context, id string) (*store.Property, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (f *fakeProperties) List(ctx context.Context) ([]store.Property, error) {
	var out []store.Property
	for _, p := range f.items {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProperties) Update(ctx context.Context, p store.Property) error {
	if _, ok := f.items[p.ID]; !ok {
		return store.ErrNotFound
	}
	f.items[p.ID] = p
	return nil
}

func (f *fakeProperties) Delete(ctx context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeBookings struct {
	items []store.Booking
}

func (f *fakeBookings) Create(ctx context.Context, b store.Booking) (*store.Booking, error) {
	f.items = append(f.items, b)
	return &b, nil
}

func (f *fakeBookings) CreateBatch(ctx context.Context, bs []store.Booking) error {
	f.items = append(f.items, bs...)
	return nil
}

func (f *fakeBookings) GetByID(ctx context.Context, id string) (*store.Booking, error) {
	for _, b := range f.items {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeBookings) ListByProperty(ctx context.Context, propertyID string) ([]store.Booking, error) {
	var out []store.Booking
	for _, b := range f.items {
		if b.PropertyID == propertyID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookings) List(ctx context.Context) ([]store.Booking, error) {
	return append([]store.Booking(nil), f.items...), nil
}

func (f *fakeBookings) ListInRange(ctx context.Context, from, to time.Time) ([]store.Booking, error) {
	var out []store.Booking
	for _, b := range f.items {
		if b.CheckOut.After(from) && b.CheckIn.Before(to) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookings) Update(ctx context.Context, b store.Booking) error {
	for i := range f.items {
		if f.items[i].ID == b.ID {
			f.items[i] = b
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeBookings) Delete(ctx context.Context, id string) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type fakeTimeEntries struct {
	items []store.TimeEntry
}

func (f *fakeTimeEntries) Create(ctx context.Context, e store.TimeEntry) (*store.TimeEntry, error) {
	f.items = append(f.items, e)
	return &e, nil
}

func (f *fakeTimeEntries) GetByID(ctx context.Context, id string) (*store.TimeEntry, error) {
	for _, e := range f.items {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeTimeEntries) ListByYear(ctx context.Context, year int) ([]store.TimeEntry, error) {
	var out []store.TimeEntry
	for _, e := range f.items {
		if e.Date.Year() == year {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeTimeEntries) List(ctx context.Context) ([]store.TimeEntry, error) {
	return append([]store.TimeEntry(nil), f.items...), nil
}

func (f *fakeTimeEntries) Update(ctx context.Context, e store.TimeEntry) error {
	for i := range f.items {
		if f.items[i].ID == e.ID {
			f.items[i] = e
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeTimeEntries) Delete(ctx context.Context, id string) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type fakeExpenses struct {
	items []store.Expense
}

func (f *fakeExpenses) Create(ctx context.Context, e store.Expense) (*store.Expense, error) {
	f.items = append(f.items, e)
	return &e, nil
}

func (f *fakeExpenses) ListByYear(ctx context.Context, year int) ([]store.Expense, error) {
	var out []store.Expense
	for _, e := range f.items {
		if e.Date.Year() == year {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeExpenses) List(ctx context.Context) ([]store.Expense, error) {
	return append([]store.Expense(nil), f.items...), nil
}

func (f *fakeExpenses) Delete(ctx context.Context, id string) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type fakeContacts struct {
	items []store.Contact
}

func (f *fakeContacts) Create(ctx context.Context, c store.Contact) (*store.Contact, error) {
	f.items = append(f.items, c)
	return &c, nil
}

func (f *fakeContacts) List(ctx context.Context) ([]store.Contact, error) {
	return append([]store.Contact(nil), f.items...), nil
}

func (f *fakeContacts) Delete(ctx context.Context, id string) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type fakeDocuments struct {
	items []store.Document
}

func (f *fakeDocuments) Create(ctx context.Context, d store.Document) (*store.Document, error) {
	f.items = append(f.items, d)
	return &d, nil
}

func (f *fakeDocuments) ListByTaxYear(ctx context.Context, year int) ([]store.Document, error) {
	var out []store.Document
	for _, d := range f.items {
		if d.TaxYear == year || d.Date.Year() == year {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDocuments) List(ctx context.Context) ([]store.Document, error) {
	return append([]store.Document(nil), f.items...), nil
}

func (f *fakeDocuments) Delete(ctx context.Context, id string) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type fakeMaintenance struct {
	items []store.MaintenanceItem
}

func (f *fakeMaintenance) Create(ctx context.Context, m store.MaintenanceItem) (*store.MaintenanceItem, error) {
	f.items = append(f.items, m)
	return &m, nil
}

func (f *fakeMaintenance) ListOpen(ctx context.Context) ([]store.MaintenanceItem, error) {
	var out []store.MaintenanceItem
	for _, m := range f.items {
		if m.Status == "open" || m.Status == "in_progress" {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMaintenance) List(ctx context.Context) ([]store.MaintenanceItem, error) {
	return append([]store.MaintenanceItem(nil), f.items...), nil
}

func (f *fakeMaintenance) Update(ctx context.Context, m store.MaintenanceItem) error {
	for i := range f.items {
		if f.items[i].ID == m.ID {
			f.items[i] = m
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeMaintenance) Delete(ctx context.Context, id string) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func newFakeStore() (*store.Store, *fakeProperties, *fakeBookings) {
	props := &fakeProperties{items: map[string]store.Property{}}
	bookings := &fakeBookings{}
	return &store.Store{
		Properties:  props,
		Bookings:    bookings,
		TimeEntries: &fakeTimeEntries{},
		Expenses:    &fakeExpenses{},
		Contacts:    &fakeContacts{},
		Documents:   &fakeDocuments{},
		Maintenance: &fakeMaintenance{},
	}, props, bookings
}
