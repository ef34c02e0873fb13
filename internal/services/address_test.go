package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"warlon-catering-service/internal/domain"
)

func TestChangeAddressKeepsDates(t *testing.T) {
	mock := authedMock(testOrder())
	svc := newTestService(mock)

	res, err := svc.ChangeAddress(context.Background(), "s1", 42, 9,
		"2024-03-04", "", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.SuccessCount != 2 || res.FailedCount != 0 {
		t.Fatalf("got %d/%d success/failed, want 2/0", res.SuccessCount, res.FailedCount)
	}
	for _, upd := range mock.Updates {
		if upd.AddressID != 9 {
			t.Fatalf("group %d updated to address %d, want 9", upd.GroupID, upd.AddressID)
		}
		if got := upd.Date.Format(domain.DateLayout); got != "2024-03-04" {
			t.Fatalf("group %d date changed to %s; address change must keep dates", upd.GroupID, got)
		}
		if len(upd.Notes) != 0 {
			t.Fatalf("address change must not carry notes, got %v", upd.Notes)
		}
	}
	for _, c := range res.Changed {
		if c.AddressID != 9 {
			t.Fatalf("result reports address %d, want 9", c.AddressID)
		}
	}
}

func TestChangeAddressOverRange(t *testing.T) {
	mock := authedMock(testOrder())
	svc := newTestService(mock)

	res, err := svc.ChangeAddress(context.Background(), "s1", 42, 9,
		"", "2024-03-04", "2024-03-07", "dinner")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Only group 2 is an editable dinner in the range.
	if res.SuccessCount != 1 {
		t.Fatalf("got %d successes, want 1", res.SuccessCount)
	}
	if res.Changed[0].GroupID != 2 {
		t.Fatalf("changed group %d, want 2", res.Changed[0].GroupID)
	}
}

func TestChangeAddressIsIdempotent(t *testing.T) {
	mock := authedMock(testOrder())
	svc := newTestService(mock)

	first, err := svc.ChangeAddress(context.Background(), "s1", 42, 9,
		"2024-03-04", "", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.ChangeAddress(context.Background(), "s1", 42, 9,
		"2024-03-04", "", "", "")
	if err != nil {
		t.Fatalf("unexpected error on rerun: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("rerun diverged:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestChangeAddressRequiresDateOrRange(t *testing.T) {
	svc := newTestService(authedMock(testOrder()))

	cases := []struct {
		name                     string
		date, startDate, endDate string
	}{
		{"nothing", "", "", ""},
		{"start only", "", "2024-03-04", ""},
		{"end only", "", "", "2024-03-07"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ChangeAddress(context.Background(), "s1", 42, 9,
				tc.date, tc.startDate, tc.endDate, "")
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}
