package migrations

import (
	"strings"
	"testing"
)

func TestMigrationsEmbedded(t *testing.T) {
	data, err := Files.ReadFile("001_init.sql")
	if err != nil {
		t.Fatalf("expected embedded migration, got error: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("embedded migration is empty")
	}
	if !strings.Contains(string(data), "CREATE TABLE IF NOT EXISTS bookings") {
		t.Fatalf("initial migration does not create the bookings table")
	}
}
