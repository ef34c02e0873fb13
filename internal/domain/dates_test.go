package domain

import (
	"testing"
	"time"
)

func TestDateOfConvertsBeforeTakingCalendarDay(t *testing.T) {
	// 17:30 UTC is 00:30 the next day in Jakarta; the record belongs to
	// the Jakarta day, not the UTC one.
	instant := time.Date(2024, 1, 6, 17, 30, 0, 0, time.UTC)

	got := DateOf(instant)

	want := time.Date(2024, 1, 7, 0, 0, 0, 0, Jakarta)
	if !got.Equal(want) {
		t.Fatalf("DateOf = %v, want %v", got, want)
	}
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Fatalf("DateOf not truncated to midnight: %v", got)
	}
}

func TestDateOfSameDayStaysPut(t *testing.T) {
	instant := time.Date(2024, 1, 6, 3, 0, 0, 0, time.UTC) // 10:00 Jakarta

	got := DateOf(instant)

	want := time.Date(2024, 1, 6, 0, 0, 0, 0, Jakarta)
	if !got.Equal(want) {
		t.Fatalf("DateOf = %v, want %v", got, want)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-13")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Weekday() != time.Saturday {
		t.Fatalf("2024-01-13 should be Saturday, got %v", d.Weekday())
	}
	if _, off := d.Zone(); off != 7*60*60 {
		t.Fatalf("date not in Jakarta offset, got %d", off)
	}

	if _, err := ParseDate("13/01/2024"); err == nil {
		t.Fatal("expected error for non-ISO date")
	}
	if _, err := ParseDate(""); err == nil {
		t.Fatal("expected error for empty date")
	}
}

func TestNextDeliveryDaySkipsSunday(t *testing.T) {
	sat, _ := ParseDate("2024-01-13")

	got := NextDeliveryDay(sat)

	// 2024-01-14 is a Sunday, so the next delivery day is Monday the 15th.
	want, _ := ParseDate("2024-01-15")
	if !got.Equal(want) {
		t.Fatalf("NextDeliveryDay = %s, want %s", got.Format(DateLayout), want.Format(DateLayout))
	}
}

func TestNextDeliveryDayPlainWeekday(t *testing.T) {
	tue, _ := ParseDate("2024-01-09")

	got := NextDeliveryDay(tue)

	want, _ := ParseDate("2024-01-10")
	if !got.Equal(want) {
		t.Fatalf("NextDeliveryDay = %s, want %s", got.Format(DateLayout), want.Format(DateLayout))
	}
}
