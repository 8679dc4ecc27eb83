package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store aggregates repositories backed by PostgreSQL.
type Store struct {
	pool *pgxpool.Pool

	Properties  PropertyRepository
	Bookings    BookingRepository
	TimeEntries TimeEntryRepository
	Expenses    ExpenseRepository
	Contacts    ContactRepository
	Documents   DocumentRepository
	Maintenance MaintenanceRepository
}

// New wires concrete repository implementations with a shared connection pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{
		pool:        pool,
		Properties:  &propertyRepo{pool: pool},
		Bookings:    &bookingRepo{pool: pool},
		TimeEntries: &timeEntryRepo{pool: pool},
		Expenses:    &expenseRepo{pool: pool},
		Contacts:    &contactRepo{pool: pool},
		Documents:   &documentRepo{pool: pool},
		Maintenance: &maintenanceRepo{pool: pool},
	}
}

// HealthCheck verifies that the underlying database is reachable.
func (s *Store) HealthCheck(ctx context.Context) error {
	defer observeDB(ctx, "db.healthcheck")()
	return s.pool.Ping(ctx)
}
