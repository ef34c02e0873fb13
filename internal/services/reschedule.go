package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"warlon-catering-service/internal/domain"
	"warlon-catering-service/internal/ports"
)

// RescheduleDelivery moves one delivery to an explicit date, address and
// meal type. The live record set is re-fetched first: the remote edit
// endpoint addresses a record by schedule id plus group id, and only the
// platform knows the current schedule id.
func (s *Service) RescheduleDelivery(
	ctx context.Context,
	sessionKey string,
	orderID int,
	groupID int,
	newDate string,
	addressID int,
	mealType string,
) (*RescheduledDelivery, error) {
	day, err := domain.ParseDate(newDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !domain.IsDeliveryDay(day) {
		return nil, fmt.Errorf("%w: cannot schedule a delivery on Sunday (%s)", ErrInvalidInput, newDate)
	}

	mt := domain.MealType(strings.ToUpper(strings.TrimSpace(mealType)))
	if mt != domain.MealLunch && mt != domain.MealDinner {
		return nil, fmt.Errorf("%w: meal type must be LUNCH or DINNER", ErrInvalidInput)
	}

	client, err := s.authedClient(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	order, err := client.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("reschedule delivery: %w", err)
	}

	current, ok := order.Find(groupID)
	if !ok {
		return nil, fmt.Errorf("%w: delivery %d not found in order %d", ErrNotFound, groupID, orderID)
	}

	upd := ports.DeliveryUpdate{
		OrderID:    orderID,
		ScheduleID: current.ScheduleID,
		GroupID:    groupID,
		Date:       day,
		AddressID:  addressID,
		MealType:   mt,
	}
	if err := client.UpdateDelivery(ctx, upd); err != nil {
		return nil, fmt.Errorf("reschedule delivery: %w", err)
	}

	s.log.Info("delivery rescheduled",
		zap.Int("order_id", orderID),
		zap.Int("group_id", groupID),
		zap.String("to", day.Format(domain.DateLayout)),
	)

	return &RescheduledDelivery{
		GroupID:  groupID,
		MealType: mt,
		From:     current.Date,
		To:       day,
	}, nil
}
