package services

import (
	"context"
	"fmt"
	"time"

	"warlon-catering-service/internal/domain"
	"warlon-catering-service/internal/ports"
)

// ScheduleEntry is one delivery in a rendered schedule.
type ScheduleEntry struct {
	Date     time.Time
	Day      string
	MealType domain.MealType
	GroupID  int
	Status   string
	Editable bool
}

// ScheduleView is the full delivery schedule for one order.
type ScheduleView struct {
	PackageName string
	Description string
	TotalDays   int
	LunchCount  int
	DinnerCount int
	Entries     []ScheduleEntry
}

// RangeView lists the deliveries inside an inclusive date range.
type RangeView struct {
	Start   time.Time
	End     time.Time
	Entries []ScheduleEntry
}

// MealTypeStats breaks one meal type down by schedule position relative
// to today.
type MealTypeStats struct {
	Total     int
	Remaining int
	Completed int
}

// DeliverySummary is the statistics view of one order's schedule.
type DeliverySummary struct {
	PackageName     string
	TotalDeliveries int
	Lunch           MealTypeStats
	Dinner          MealTypeStats
	EditableCount   int
	FirstDelivery   time.Time // zero when the schedule is empty
	LastDelivery    time.Time
}

func (s *Service) ListOrders(ctx context.Context, sessionKey string) ([]ports.OrderSummary, error) {
	client, err := s.authedClient(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	return client.ListOrders(ctx)
}

func (s *Service) OrderDetail(ctx context.Context, sessionKey string, orderID int) (*domain.PackageOrder, error) {
	client, err := s.authedClient(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	return client.GetOrder(ctx, orderID)
}

func (s *Service) Schedule(ctx context.Context, sessionKey string, orderID int) (*ScheduleView, error) {
	client, err := s.authedClient(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	order, err := client.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	deliveries := append([]domain.Delivery(nil), order.Deliveries...)
	domain.SortDeliveries(deliveries)

	return &ScheduleView{
		PackageName: order.PackageName,
		Description: order.PackageDescription,
		TotalDays:   order.TotalDays,
		LunchCount:  order.LunchAmount,
		DinnerCount: order.DinnerAmount,
		Entries:     toEntries(deliveries),
	}, nil
}

func (s *Service) DeliveriesInRange(ctx context.Context, sessionKey string, orderID int, startDate, endDate string) (*RangeView, error) {
	start, err := domain.ParseDate(startDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	end, err := domain.ParseDate(endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	client, err := s.authedClient(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	order, err := client.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	var inRange []domain.Delivery
	for _, d := range order.Deliveries {
		if withinRange(d.Date, start, end) {
			inRange = append(inRange, d)
		}
	}
	domain.SortDeliveries(inRange)

	return &RangeView{Start: start, End: end, Entries: toEntries(inRange)}, nil
}

func (s *Service) DeliverySummary(ctx context.Context, sessionKey string, orderID int) (*DeliverySummary, error) {
	client, err := s.authedClient(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	order, err := client.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	today := domain.Today()
	summary := &DeliverySummary{
		PackageName:     order.PackageName,
		TotalDeliveries: len(order.Deliveries),
	}
	for _, d := range order.Deliveries {
		stats := &summary.Lunch
		if d.MealType == domain.MealDinner {
			stats = &summary.Dinner
		}
		stats.Total++
		if !d.Date.Before(today) {
			stats.Remaining++
		}
		if d.Editable() {
			summary.EditableCount++
		}
		if summary.FirstDelivery.IsZero() || d.Date.Before(summary.FirstDelivery) {
			summary.FirstDelivery = d.Date
		}
		if d.Date.After(summary.LastDelivery) {
			summary.LastDelivery = d.Date
		}
	}
	summary.Lunch.Completed = summary.Lunch.Total - summary.Lunch.Remaining
	summary.Dinner.Completed = summary.Dinner.Total - summary.Dinner.Remaining

	return summary, nil
}

func (s *Service) ListAddresses(ctx context.Context, sessionKey string, orderID int) ([]domain.Address, error) {
	client, err := s.authedClient(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	order, err := client.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return order.Addresses, nil
}

func toEntries(deliveries []domain.Delivery) []ScheduleEntry {
	entries := make([]ScheduleEntry, 0, len(deliveries))
	for _, d := range deliveries {
		entries = append(entries, ScheduleEntry{
			Date:     d.Date,
			Day:      d.Date.Weekday().String(),
			MealType: d.MealType,
			GroupID:  d.GroupID,
			Status:   d.Status,
			Editable: d.Editable(),
		})
	}
	return entries
}
