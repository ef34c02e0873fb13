package services

import (
	"context"
	"testing"

	"warlon-catering-service/internal/domain"
)

func TestSkipDayAppendsAfterScheduleMax(t *testing.T) {
	mock := authedMock(testOrder())
	svc := newTestService(mock)

	// The latest date in the whole order is 2024-03-20 (Wednesday), so
	// the two skipped 03-04 deliveries land on 03-21 and 03-22, dinner
	// first by the (date, meal type) order.
	res, err := svc.SkipDay(context.Background(), "s1", 42, "2024-03-04", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.SuccessCount != 2 || res.FailedCount != 0 {
		t.Fatalf("got %d/%d success/failed, want 2/0", res.SuccessCount, res.FailedCount)
	}
	if res.Message != "skipped 2 deliveries from 2024-03-04" {
		t.Fatalf("unexpected message %q", res.Message)
	}

	if res.Rescheduled[0].GroupID != 2 || res.Rescheduled[1].GroupID != 1 {
		t.Fatalf("skip order = %d,%d, want dinner group 2 then lunch group 1",
			res.Rescheduled[0].GroupID, res.Rescheduled[1].GroupID)
	}
	if got := res.Rescheduled[0].To.Format(domain.DateLayout); got != "2024-03-21" {
		t.Fatalf("first skipped delivery -> %s, want 2024-03-21", got)
	}
	if got := res.Rescheduled[1].To.Format(domain.DateLayout); got != "2024-03-22" {
		t.Fatalf("second skipped delivery -> %s, want 2024-03-22", got)
	}
}

func TestSkipDaySpreadsAcrossSunday(t *testing.T) {
	order := testOrder()
	// Pull the schedule tail back so the append point is Friday 03-08:
	// successive targets must then be 03-09 and 03-11, never Sunday.
	order.Deliveries = order.Deliveries[:5]
	day, _ := domain.ParseDate("2024-03-08")
	order.Deliveries[4].Date = day

	mock := authedMock(order)
	svc := newTestService(mock)

	res, err := svc.SkipDay(context.Background(), "s1", 42, "2024-03-04", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := res.Rescheduled[0].To.Format(domain.DateLayout); got != "2024-03-09" {
		t.Fatalf("first target %s, want 2024-03-09", got)
	}
	if got := res.Rescheduled[1].To.Format(domain.DateLayout); got != "2024-03-11" {
		t.Fatalf("second target %s, want 2024-03-11 (Sunday skipped)", got)
	}
}

func TestSkipDayAdvancesTargetOnlyOnSuccess(t *testing.T) {
	mock := authedMock(testOrder())
	mock.FailGroups = map[int]string{2: "delivery locked"}
	svc := newTestService(mock)

	res, err := svc.SkipDay(context.Background(), "s1", 42, "2024-03-04", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.SuccessCount != 1 || res.FailedCount != 1 {
		t.Fatalf("got %d/%d success/failed, want 1/1", res.SuccessCount, res.FailedCount)
	}
	// Group 2 failed first, so group 1 takes the first free day.
	if got := res.Rescheduled[0].To.Format(domain.DateLayout); got != "2024-03-21" {
		t.Fatalf("surviving delivery -> %s, want 2024-03-21", got)
	}
}

func TestSkipDayNothingToSkip(t *testing.T) {
	mock := authedMock(testOrder())
	svc := newTestService(mock)

	// 2024-03-06 has no deliveries at all.
	res, err := svc.SkipDay(context.Background(), "s1", 42, "2024-03-06", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.SuccessCount != 0 || res.FailedCount != 0 {
		t.Fatalf("got %d/%d success/failed, want 0/0", res.SuccessCount, res.FailedCount)
	}
	if res.Message != "no editable deliveries found on 2024-03-06" {
		t.Fatalf("unexpected message %q", res.Message)
	}
	if len(mock.Updates) != 0 {
		t.Fatalf("no updates expected, got %d", len(mock.Updates))
	}
}

func TestSkipDayIgnoresNonEditable(t *testing.T) {
	mock := authedMock(testOrder())
	svc := newTestService(mock)

	// 03-05 has an editable lunch and a DELIVERED dinner; only the
	// lunch moves.
	res, err := svc.SkipDay(context.Background(), "s1", 42, "2024-03-05", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.SuccessCount != 1 {
		t.Fatalf("got %d successes, want 1", res.SuccessCount)
	}
	if res.Rescheduled[0].GroupID != 3 {
		t.Fatalf("moved group %d, want 3", res.Rescheduled[0].GroupID)
	}
}
