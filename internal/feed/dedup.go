package feed

import "github.com/hostledger/hostledger/internal/store"

// Decision is the dedup engine's verdict for one candidate.
type Decision int

const (
	Insert Decision = iota
	SkipDuplicate
)

// Deduper suppresses re-import of reservations already known for a
// property. The key is (property, check-in, check-out); guest names are
// ignored since platforms redact or respell them between exports.
// Cancelled bookings do not block re-import of the same dates.
type Deduper struct {
	seen map[string]struct{}
}

// NewDeduper indexes the existing booking collection.
func NewDeduper(existing []store.Booking) *Deduper {
	d := &Deduper{seen: make(map[string]struct{}, len(existing))}
	for _, b := range existing {
		if b.Status == store.StatusCancelled {
			continue
		}
		d.seen[b.ImportKey()] = struct{}{}
	}
	return d
}

// Decide returns Insert for unseen candidates and records them, so a
// duplicate pair within one batch also collapses to a single insert.
func (d *Deduper) Decide(candidate store.Booking) Decision {
	key := candidate.ImportKey()
	if _, ok := d.seen[key]; ok {
		return SkipDuplicate
	}
	d.seen[key] = struct{}{}
	return Insert
}
