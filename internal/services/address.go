package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"warlon-catering-service/internal/domain"
	"warlon-catering-service/internal/ports"
)

// ChangeAddress switches the delivery address for editable deliveries on
// one date or within a range. Every update keeps the record's own date —
// no remapping happens — so re-running it with the same address id is a
// harmless no-op on already-changed records.
func (s *Service) ChangeAddress(
	ctx context.Context,
	sessionKey string,
	orderID int,
	newAddressID int,
	date, startDate, endDate string,
	mealTypes string,
) (*ChangeAddressResult, error) {
	var start, end time.Time
	var err error
	switch {
	case date != "":
		start, err = domain.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		end = start
	case startDate != "" && endDate != "":
		start, err = domain.ParseDate(startDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		end, err = domain.ParseDate(endDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	default:
		return nil, fmt.Errorf("%w: provide either date or both start_date and end_date", ErrInvalidInput)
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
		return nil, fmt.Errorf("change address: %w", err)
	}

	var candidates []domain.Delivery
	for _, d := range order.Deliveries {
		if d.Editable() && withinRange(d.Date, start, end) && d.MatchesMealTypes(types) {
			candidates = append(candidates, d)
		}
	}
	domain.SortDeliveries(candidates)

	res := &ChangeAddressResult{}
	for _, d := range candidates {
		upd := ports.DeliveryUpdate{
			OrderID:    orderID,
			ScheduleID: d.ScheduleID,
			GroupID:    d.GroupID,
			Date:       d.Date,
			AddressID:  newAddressID,
			MealType:   d.MealType,
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
		res.Changed = append(res.Changed, ChangedAddress{
			GroupID:   d.GroupID,
			Date:      d.Date,
			MealType:  d.MealType,
			AddressID: newAddressID,
		})
	}

	s.log.Info("change address finished",
		zap.Int("order_id", orderID),
		zap.Int("address_id", newAddressID),
		zap.Int("succeeded", res.SuccessCount),
		zap.Int("failed", res.FailedCount),
	)
	return res, nil
}
