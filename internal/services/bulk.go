package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"warlon-catering-service/internal/domain"
	"warlon-catering-service/internal/ports"
)

// BulkReschedule shifts every editable delivery inside an inclusive date
// range onto new days starting at the target date, preserving day
// grouping and relative order per the remapping algorithm.
func (s *Service) BulkReschedule(
	ctx context.Context,
	sessionKey string,
	orderID int,
	startDate, endDate, targetStartDate string,
	mealTypes string,
) (*BulkResult, error) {
	start, err := domain.ParseDate(startDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	end, err := domain.ParseDate(endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	target, err := domain.ParseDate(targetStartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !domain.IsDeliveryDay(target) {
		return nil, fmt.Errorf("%w: cannot start rescheduling on Sunday (%s)", ErrInvalidInput, targetStartDate)
	}
	types, err := domain.ParseMealTypes(mealTypes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	client, err := s.authedClient(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	res, err := s.rescheduleRange(ctx, client, orderID, start, end, target, types)
	if err != nil {
		return nil, err
	}

	s.log.Info("bulk reschedule finished",
		zap.Int("order_id", orderID),
		zap.Int("succeeded", res.SuccessCount),
		zap.Int("failed", res.FailedCount),
	)
	return res, nil
}

// HoldDeliveries pauses a date range: every editable delivery inside it
// moves to resume the day after the range ends. A Sunday resume day
// rolls forward to Monday since the anchor is derived, not caller
// supplied.
func (s *Service) HoldDeliveries(
	ctx context.Context,
	sessionKey string,
	orderID int,
	holdStart, holdEnd string,
	mealTypes string,
) (*HoldResult, error) {
	start, err := domain.ParseDate(holdStart)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	end, err := domain.ParseDate(holdEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	types, err := domain.ParseMealTypes(mealTypes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	client, err := s.authedClient(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	resume := domain.NextDeliveryDay(end)
	res, err := s.rescheduleRange(ctx, client, orderID, start, end, resume, types)
	if err != nil {
		return nil, err
	}

	s.log.Info("hold finished",
		zap.Int("order_id", orderID),
		zap.String("resume", resume.Format(domain.DateLayout)),
		zap.Int("succeeded", res.SuccessCount),
		zap.Int("failed", res.FailedCount),
	)
	return &HoldResult{ResumeDate: resume, BulkResult: *res}, nil
}

// rescheduleRange is the shared transactional shape: select candidates,
// map their days, then issue one independent update per record. Updates
// are not atomic across records; a failure is recorded and the batch
// moves on.
func (s *Service) rescheduleRange(
	ctx context.Context,
	client ports.CateringClient,
	orderID int,
	start, end, target time.Time,
	types []domain.MealType,
) (*BulkResult, error) {
	order, err := client.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("bulk reschedule: %w", err)
	}

	var candidates []domain.Delivery
	for _, d := range order.Deliveries {
		if d.Editable() && withinRange(d.Date, start, end) && d.MatchesMealTypes(types) {
			candidates = append(candidates, d)
		}
	}
	domain.SortDeliveries(candidates)

	sources := make([]time.Time, 0, len(candidates))
	for _, d := range candidates {
		sources = append(sources, d.Date)
	}
	mapping, err := MapDeliveryDates(sources, target)
	if err != nil {
		return nil, err
	}

	res := &BulkResult{}
	for _, d := range candidates {
		to, _ := mapping.Target(d.Date)

		upd := ports.DeliveryUpdate{
			OrderID:    orderID,
			ScheduleID: d.ScheduleID,
			GroupID:    d.GroupID,
			Date:       to,
			AddressID:  d.AddressID,
			MealType:   d.MealType,
			Notes:      d.Notes,
		}
		if err := client.UpdateDelivery(ctx, upd); err != nil {
			res.FailedCount++
			res.Failed = append(res.Failed, FailedDelivery{
				GroupID: d.GroupID,
				Date:    d.Date,
				Reason:  err.Error(),
			})
			continue
		}
		res.SuccessCount++
		res.Rescheduled = append(res.Rescheduled, RescheduledDelivery{
			GroupID:  d.GroupID,
			MealType: d.MealType,
			From:     d.Date,
			To:       to,
		})
	}
	return res, nil
}

func withinRange(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}
