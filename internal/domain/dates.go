package domain

import (
	"fmt"
	"time"
)

// The Warlon platform operates entirely on Jakarta local time (UTC+7, no
// DST). Raw timestamps arrive as absolute instants and must be converted
// here before taking a calendar date: a delivery logged near midnight UTC
// belongs to the following Jakarta day.
var Jakarta = time.FixedZone("Asia/Jakarta", 7*60*60)

const DateLayout = "2006-01-02"

// DateOf truncates an instant to midnight of its Jakarta calendar day.
func DateOf(t time.Time) time.Time {
	local := t.In(Jakarta)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, Jakarta)
}

// ParseDate parses a YYYY-MM-DD string as a Jakarta calendar day.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, s, Jakarta)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: want YYYY-MM-DD", s)
	}
	return d, nil
}

// Sundays are not a valid delivery day on this platform.
func IsDeliveryDay(d time.Time) bool {
	return d.Weekday() != time.Sunday
}

// NextDeliveryDay returns the first valid delivery day strictly after d.
func NextDeliveryDay(d time.Time) time.Time {
	d = d.AddDate(0, 0, 1)
	for !IsDeliveryDay(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// Today returns midnight of the current Jakarta calendar day.
func Today() time.Time {
	return DateOf(time.Now())
}
