package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"warlon-catering-service/internal/domain"
	"warlon-catering-service/internal/ports"
)

// SkipDay moves the editable deliveries of one calendar day to the end
// of the schedule. Unlike a bulk reschedule, each skipped delivery gets
// its own successive Sunday-free day after the current maximum scheduled
// date across the whole order, so skipped lunches and dinners spread out
// instead of piling onto one day.
func (s *Service) SkipDay(
	ctx context.Context,
	sessionKey string,
	orderID int,
	skipDate string,
	mealTypes string,
) (*SkipResult, error) {
	day, err := domain.ParseDate(skipDate)
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

	order, err := client.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("skip day: %w", err)
	}

	// The append point is the latest date among all records, editable or
	// not, so skipped deliveries land after everything already known.
	var maxDate, zero = day, true
	for _, d := range order.Deliveries {
		if zero || d.Date.After(maxDate) {
			maxDate = d.Date
			zero = false
		}
	}

	var toSkip []domain.Delivery
	for _, d := range order.Deliveries {
		if d.Editable() && d.Date.Equal(day) && d.MatchesMealTypes(types) {
			toSkip = append(toSkip, d)
		}
	}
	domain.SortDeliveries(toSkip)

	if len(toSkip) == 0 {
		return &SkipResult{
			Message: fmt.Sprintf("no editable deliveries found on %s", skipDate),
		}, nil
	}

	res := &SkipResult{}
	target := domain.NextDeliveryDay(maxDate)
	for _, d := range toSkip {
		upd := ports.DeliveryUpdate{
			OrderID:    orderID,
			ScheduleID: d.ScheduleID,
			GroupID:    d.GroupID,
			Date:       target,
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
			To:       target,
		})
		target = domain.NextDeliveryDay(target)
	}

	res.Message = fmt.Sprintf("skipped %d deliveries from %s", res.SuccessCount, skipDate)
	s.log.Info("skip day finished",
		zap.Int("order_id", orderID),
		zap.String("date", skipDate),
		zap.Int("succeeded", res.SuccessCount),
		zap.Int("failed", res.FailedCount),
	)
	return res, nil
}
