// Package analytics derives revenue, occupancy and investment figures from
// the booking and expense collections. Everything here is a pure function
// of its inputs; the reporting window and "today" are always injected.
package analytics

import (
	"math"
	"time"

	"github.com/hostledger/hostledger/internal/store"
)

// PropertyMetrics summarizes one property over a date window.
type PropertyMetrics struct {
	TotalRevenue  float64 `json:"total_revenue"`
	NightsBooked  int     `json:"total_nights_booked"`
	WindowDays    int     `json:"total_days"`
	OccupancyRate float64 `json:"occupancy_rate"`
	AvgNightly    float64 `json:"avg_nightly_rate"`
	TotalBookings int     `json:"total_bookings"`
	AvgRating     float64 `json:"avg_rating"`
}

// PortfolioMetrics rolls property metrics up across the portfolio.
type PortfolioMetrics struct {
	TotalRevenue  float64                    `json:"total_revenue"`
	NightsBooked  int                        `json:"total_nights_booked"`
	AvgOccupancy  float64                    `json:"avg_occupancy"`
	AvgNightly    float64                    `json:"avg_nightly_rate"`
	TotalBookings int                        `json:"total_bookings"`
	PerProperty   map[string]PropertyMetrics `json:"per_property"`
}

// ComputePropertyMetrics prorates booking revenue into the window and
// counts the nights that fall inside it. Cancelled and blocked bookings
// are excluded.
func ComputePropertyMetrics(bookings []store.Booking, propertyID string, start, end time.Time) PropertyMetrics {
	windowDays := int(end.Sub(start).Hours() / 24)
	if windowDays < 1 {
		windowDays = 1
	}
	m := PropertyMetrics{WindowDays: windowDays}

	var ratingSum, ratingCount int
	for _, b := range bookings {
		if b.PropertyID != propertyID || b.Status == store.StatusCancelled || b.Status == store.StatusBlocked {
			continue
		}
		m.TotalBookings++
		if b.Rating > 0 {
			ratingSum += b.Rating
			ratingCount++
		}

		nights := overlapNights(b.CheckIn, b.CheckOut, start, end)
		if nights <= 0 {
			continue
		}
		m.NightsBooked += nights
		stayNights := int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
		if stayNights < 1 {
			stayNights = 1
		}
		m.TotalRevenue += b.NetPayout * float64(nights) / float64(stayNights)
	}

	m.TotalRevenue = round2(m.TotalRevenue)
	m.OccupancyRate = round1(float64(m.NightsBooked) / float64(windowDays) * 100)
	if m.NightsBooked > 0 {
		m.AvgNightly = round2(m.TotalRevenue / float64(m.NightsBooked))
	}
	if ratingCount > 0 {
		m.AvgRating = round1(float64(ratingSum) / float64(ratingCount))
	}
	return m
}

// ComputePortfolioMetrics aggregates every property's window metrics.
// Averages skip properties with no activity so an idle unit does not drag
// the portfolio figures to zero.
func ComputePortfolioMetrics(bookings []store.Booking, properties []store.Property, start, end time.Time) PortfolioMetrics {
	pm := PortfolioMetrics{PerProperty: make(map[string]PropertyMetrics, len(properties))}
	var occs, rates []float64
	for _, p := range properties {
		m := ComputePropertyMetrics(bookings, p.ID, start, end)
		pm.PerProperty[p.ID] = m
		pm.TotalRevenue += m.TotalRevenue
		pm.NightsBooked += m.NightsBooked
		pm.TotalBookings += m.TotalBookings
		if m.OccupancyRate > 0 {
			occs = append(occs, m.OccupancyRate)
		}
		if m.AvgNightly > 0 {
			rates = append(rates, m.AvgNightly)
		}
	}
	pm.TotalRevenue = round2(pm.TotalRevenue)
	pm.AvgOccupancy = round1(mean(occs))
	pm.AvgNightly = round2(mean(rates))
	return pm
}

// overlapNights counts the nights of [checkIn, checkOut) inside
// [start, end).
func overlapNights(checkIn, checkOut, start, end time.Time) int {
	from := checkIn
	if start.After(from) {
		from = start
	}
	to := checkOut
	if end.Before(to) {
		to = end
	}
	nights := int(to.Sub(from).Hours() / 24)
	if nights < 0 {
		return 0
	}
	return nights
}

func mean(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }
