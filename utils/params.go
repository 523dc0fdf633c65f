package utils

import (
	"net/http"
	"time"
)

const dayLayout = "2006-01-02"

// DateRange holds the optional from/to window on calendar-facing endpoints.
// Values are plain YYYY-MM-DD strings; anything unparseable is dropped rather
// than rejected, matching the vendor's lenient handling.
type DateRange struct {
	From string
	To   string
}

// ParseDateRange reads from/to query params, keeping only well-formed
// calendar dates.
func ParseDateRange(r *http.Request) DateRange {
	q := r.URL.Query()
	return DateRange{
		From: validDay(q.Get("from")),
		To:   validDay(q.Get("to")),
	}
}

func validDay(s string) string {
	if s == "" {
		return ""
	}
	if _, err := time.Parse(dayLayout, s); err != nil {
		return ""
	}
	return s
}
