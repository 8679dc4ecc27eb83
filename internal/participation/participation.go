// Package participation aggregates the time ledger into the hour-based
// signals the IRS material participation tests look at: the 500-hour safe
// harbor (Test 1) and the 100-hours-and-largest-participant test (Test 3).
package participation

import (
	"time"

	"github.com/hostledger/hostledger/internal/store"
)

// Hour thresholds of the two tests.
const (
	Test1Threshold = 500
	Test3Threshold = 100
)

// DefaultWeeksPerYear drives the year-end projection. 53 for leap-week
// years; set by configuration, not derived from the calendar.
const DefaultWeeksPerYear = 52

// TestStatus is the three-valued outcome of an IRS test.
type TestStatus string

const (
	Qualified     TestStatus = "qualified"
	NotQualified  TestStatus = "not_qualified"
	Indeterminate TestStatus = "indeterminate"
)

// Participant is a co-participant's tracked hour total for the same
// activity, used by Test 3's largest-participant comparison.
type Participant struct {
	Name  string  `json:"name"`
	Hours float64 `json:"hours"`
}

// Snapshot is the derived participation report for one tax year. It is
// computed on demand from the full ledger and never persisted.
type Snapshot struct {
	Year         int                `json:"year"`
	TotalHours   float64            `json:"total_hours"`
	TotalEntries int                `json:"total_entries"`
	ByCategory   map[string]float64 `json:"hours_by_category"`
	ByMonth      map[int]float64    `json:"hours_by_month"`
	ByProperty   map[string]float64 `json:"hours_by_property"`

	PacePerWeek   float64 `json:"pace_per_week"`
	ProjectedYear float64 `json:"projected_year_end"`

	Test1 TestStatus `json:"test_1"`
	Test3 TestStatus `json:"test_3"`

	WeeksRemaining     float64 `json:"weeks_remaining"`
	NeededPerWeekTest1 float64 `json:"hours_per_week_for_500"`
	NeededPerWeekTest3 float64 `json:"hours_per_week_for_100"`
}

// Compute aggregates the ledger for the given tax year. Today must be
// injected by the caller; the engine never reads the system clock. Entries
// outside the year are ignored. All divisions guard zero denominators by
// substituting 1 rather than erroring.
func Compute(entries []store.TimeEntry, others []Participant, today time.Time, year, weeksPerYear int) Snapshot {
	if weeksPerYear <= 0 {
		weeksPerYear = DefaultWeeksPerYear
	}

	s := Snapshot{
		Year:       year,
		ByCategory: make(map[string]float64),
		ByMonth:    make(map[int]float64),
		ByProperty: make(map[string]float64),
	}

	for _, e := range entries {
		if e.Date.Year() != year {
			continue
		}
		s.TotalEntries++
		s.TotalHours += e.Hours
		cat := e.Category
		if cat == "" {
			cat = "Other Management Activity"
		}
		s.ByCategory[cat] += e.Hours
		s.ByMonth[int(e.Date.Month())] += e.Hours
		s.ByProperty[e.PropertyID] += e.Hours
	}

	elapsed, remaining := yearWeeks(today, year)
	s.WeeksRemaining = remaining
	s.PacePerWeek = s.TotalHours / nonZero(elapsed)
	s.ProjectedYear = s.PacePerWeek * float64(weeksPerYear)

	s.Test1 = NotQualified
	if s.TotalHours >= Test1Threshold {
		s.Test1 = Qualified
	}
	s.Test3 = test3(s.TotalHours, others)

	s.NeededPerWeekTest1 = neededPerWeek(Test1Threshold, s.TotalHours, remaining)
	s.NeededPerWeekTest3 = neededPerWeek(Test3Threshold, s.TotalHours, remaining)
	return s
}

// test3 applies the 100-hour floor first, then the strictly-greatest
// comparison against tracked co-participants. With no co-participant data
// the comparison cannot be made and the result is indeterminate; ties
// resolve to not qualifying, the conservative reading.
func test3(total float64, others []Participant) TestStatus {
	if total < Test3Threshold {
		return NotQualified
	}
	if len(others) == 0 {
		return Indeterminate
	}
	for _, p := range others {
		if p.Hours >= total {
			return NotQualified
		}
	}
	return Qualified
}

// yearWeeks returns elapsed full weeks since Jan 1 of the year through
// today, and the weeks remaining until Dec 31. A today outside the year
// means the year is either entirely elapsed or not started.
func yearWeeks(today time.Time, year int) (elapsed, remaining float64) {
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	switch {
	case today.Before(start):
		return 0, end.Sub(start).Hours() / 24 / 7
	case today.After(end):
		return end.Sub(start).Hours() / 24 / 7, 0
	default:
		elapsedDays := today.Sub(start).Hours()/24 + 1
		remainingDays := end.Sub(today).Hours() / 24
		return float64(int(elapsedDays / 7)), remainingDays / 7
	}
}

func neededPerWeek(threshold, total, weeksRemaining float64) float64 {
	gap := threshold - total
	if gap <= 0 {
		return 0
	}
	return gap / nonZero(weeksRemaining)
}

// nonZero floors a denominator to 1, the engine-wide division guard.
func nonZero(v float64) float64 {
	if v < 1 {
		return 1
	}
	return v
}
