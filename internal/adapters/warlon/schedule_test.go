package warlon

import (
	"testing"

	"warlon-catering-service/internal/domain"
)

func TestFlattenSchedulesConvertsToJakartaDay(t *testing.T) {
	schedules := []rawSchedule{
		{ID: 101, ScheduledDate: "2024-03-04T17:30:00Z", Groups: []rawGroup{
			{ID: 1, Type: "LUNCH", Status: "SCHEDULED"},
		}},
		{ID: 102, ScheduledDate: "2024-03-04T03:00:00Z", Groups: []rawGroup{
			{ID: 2, Type: "DINNER", Status: "SCHEDULED"},
		}},
	}

	deliveries, err := flattenSchedules(schedules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 17:30 UTC is 00:30 the next day in Jakarta; 03:00 UTC is still the
	// same day.
	if got := deliveries[0].Date.Format(domain.DateLayout); got != "2024-03-05" {
		t.Fatalf("late instant mapped to %s, want 2024-03-05", got)
	}
	if got := deliveries[1].Date.Format(domain.DateLayout); got != "2024-03-04" {
		t.Fatalf("morning instant mapped to %s, want 2024-03-04", got)
	}
}

func TestFlattenSchedulesBadTimestamp(t *testing.T) {
	_, err := flattenSchedules([]rawSchedule{{ID: 101, ScheduledDate: "04/03/2024"}})
	if err == nil {
		t.Fatal("expected error for unparseable timestamp")
	}
}

func TestResolveAddressPrefersIDReference(t *testing.T) {
	id := 7
	g := rawGroup{
		CustomerAddressID: &id,
		CustomerAddress:   &rawAddress{ID: 99, Address: "Jl. Thamrin 8"},
	}
	if got := resolveAddressID(g); got != 7 {
		t.Fatalf("address id %d, want the explicit reference 7", got)
	}
}

func TestResolveAddressFallsBackToEmbedded(t *testing.T) {
	g := rawGroup{CustomerAddress: &rawAddress{ID: 99, Address: "Jl. Thamrin 8"}}
	if got := resolveAddressID(g); got != 99 {
		t.Fatalf("address id %d, want the embedded 99", got)
	}
	if got := resolveAddress(g); got != "Jl. Thamrin 8" {
		t.Fatalf("address %q", got)
	}

	// Neither shape present.
	if got := resolveAddressID(rawGroup{}); got != 0 {
		t.Fatalf("address id %d, want 0", got)
	}
	if got := resolveAddress(rawGroup{Address: "Jl. Sudirman 1"}); got != "Jl. Sudirman 1" {
		t.Fatalf("address %q", got)
	}
}

func TestCollectNotesDropsEmpties(t *testing.T) {
	notes := collectNotes([]rawDetail{{Note: "no chili"}, {Note: ""}, {Note: "extra rice"}})
	if len(notes) != 2 || notes[0] != "no chili" || notes[1] != "extra rice" {
		t.Fatalf("notes = %v", notes)
	}
}

func TestOrderSummaryIDSpellings(t *testing.T) {
	if got := (rawOrderSummary{ID: 5}).orderID(); got != 5 {
		t.Fatalf("id %d, want 5", got)
	}
	if got := (rawOrderSummary{UserPackageOrderID: 7}).orderID(); got != 7 {
		t.Fatalf("id %d, want 7", got)
	}
}
