package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/hostledger/hostledger/internal/ical"
	"github.com/hostledger/hostledger/internal/store"
)

// Report summarizes one import run. Every event lands in exactly one
// outcome bucket so silent data loss is observable; Inserted holds the new
// records for the caller to persist — the pipeline never writes.
type Report struct {
	Inserted      []store.Booking `json:"inserted"`
	Duplicates    int             `json:"skipped_duplicates"`
	Blocked       int             `json:"blocked"`
	NeedsReview   int             `json:"needs_review"`
	Invalid       int             `json:"invalid"`
	ParseFailures int             `json:"parse_failures"`
}

// Importer runs the tokenizer, extractor, normalizer and dedup engine over
// a feed. Fees and the fetcher are fixed at construction.
type Importer struct {
	fees    FeeSchedule
	fetcher *Fetcher
}

// NewImporter builds an importer; a nil fetcher disables URL mode.
func NewImporter(fees FeeSchedule, fetcher *Fetcher) *Importer {
	return &Importer{fees: fees, fetcher: fetcher}
}

// Import processes raw feed text against the existing booking collection.
// It is pure: the same text and existing state always produce the same
// report, and running the same feed twice inserts nothing the second time.
func (imp *Importer) Import(text string, prop store.Property, existing []store.Booking, today time.Time) Report {
	parsed := ical.Parse(text)
	report := Report{ParseFailures: parsed.ParseFailures}
	dedup := NewDeduper(existing)

	for _, ev := range parsed.Events {
		ex := Extract(ev)

		booking, err := Normalize(ex, prop, today, imp.fees)
		if err != nil {
			report.Invalid++
			continue
		}
		if dedup.Decide(booking) == SkipDuplicate {
			report.Duplicates++
			continue
		}

		switch ex.Kind {
		case KindBlocked:
			report.Blocked++
		case KindUnrecognized:
			report.NeedsReview++
		}
		report.Inserted = append(report.Inserted, booking)
	}
	return report
}

// ImportURL fetches a feed and imports it. A fetch failure aborts the whole
// run with no partial results, surfaced as a single error.
func (imp *Importer) ImportURL(ctx context.Context, url string, prop store.Property, existing []store.Booking, today time.Time) (Report, error) {
	if imp.fetcher == nil {
		return Report{}, fmt.Errorf("url import is not configured")
	}
	text, err := imp.fetcher.Fetch(ctx, url)
	if err != nil {
		return Report{}, fmt.Errorf("fetch feed: %w", err)
	}
	return imp.Import(text, prop, existing, today), nil
}
