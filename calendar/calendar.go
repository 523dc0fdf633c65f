// Package calendar turns vendor booking and rate intervals into per-day
// lookup structures for the availability calendar.
package calendar

import (
	"sort"
	"time"

	"t2gstays/models"
)

const dayLayout = "2006-01-02"

// DateSet is a set of calendar-day keys (YYYY-MM-DD) with O(1) membership.
type DateSet map[string]struct{}

func (s DateSet) Has(day string) bool {
	_, ok := s[day]
	return ok
}

// Days returns the blocked days in ascending order.
func (s DateSet) Days() []string {
	days := make([]string, 0, len(s))
	for d := range s {
		days = append(days, d)
	}
	sort.Strings(days)
	return days
}

// BlockedDates expands booking intervals into the set of occupied nights.
// Arrival is inclusive, departure exclusive: the checkout day is bookable by
// the next guest. Intervals with departure <= arrival, or with unparseable
// dates, contribute nothing. Overlaps are naturally idempotent.
//
// Dates are parsed as plain calendar dates, never as instants, so no timezone
// conversion can shift a night across midnight.
func BlockedDates(bookings []models.Booking) DateSet {
	blocked := make(DateSet)
	for _, b := range bookings {
		arrival, err := time.Parse(dayLayout, b.Arrival)
		if err != nil {
			continue
		}
		departure, err := time.Parse(dayLayout, b.Departure)
		if err != nil {
			continue
		}
		for d := arrival; d.Before(departure); d = d.AddDate(0, 0, 1) {
			blocked[d.Format(dayLayout)] = struct{}{}
		}
	}
	return blocked
}

// RateMap expands rate intervals into a per-day price lookup. From is
// inclusive, To exclusive. A day falling on Friday or Saturday takes the
// weekend rate when one is supplied. The first interval to claim a day wins;
// later intervals never overwrite it, so input order must be preserved.
func RateMap(intervals []models.RateInterval) map[string]float64 {
	rates := make(map[string]float64)
	for _, iv := range intervals {
		from, err := time.Parse(dayLayout, iv.From)
		if err != nil {
			continue
		}
		to, err := time.Parse(dayLayout, iv.To)
		if err != nil {
			continue
		}
		for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
			key := d.Format(dayLayout)
			if _, claimed := rates[key]; claimed {
				continue
			}
			if iv.WeekendRate != nil && isWeekendNight(d) {
				rates[key] = *iv.WeekendRate
			} else {
				rates[key] = iv.Rate
			}
		}
	}
	return rates
}

// Friday and Saturday nights carry the weekend price.
func isWeekendNight(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Friday || wd == time.Saturday
}
