package warlon

import (
	"context"
	"fmt"

	"warlon-catering-service/internal/domain"
	"warlon-catering-service/internal/ports"
)

// MockClient is an in-memory ports.CateringClient for service tests. It
// records every update it receives; individual updates can be made to
// fail by group id.
type MockClient struct {
	Authed       bool
	LoginErr     error
	Orders       []ports.OrderSummary
	OrderByID    map[int]*domain.PackageOrder
	GetOrderErr  error
	FailGroups   map[int]string // group id -> failure message
	Updates      []ports.DeliveryUpdate
	Available    []domain.Restriction
	Current      []domain.Restriction
	UpdatedIDs   []int
	RestrictsErr error
}

var _ ports.CateringClient = (*MockClient)(nil)

func (m *MockClient) Login(_ context.Context, _, _ string) error {
	if m.LoginErr != nil {
		return m.LoginErr
	}
	m.Authed = true
	return nil
}

func (m *MockClient) Authenticated() bool { return m.Authed }

func (m *MockClient) ListOrders(_ context.Context) ([]ports.OrderSummary, error) {
	if !m.Authed {
		return nil, ports.ErrNotAuthenticated
	}
	return m.Orders, nil
}

func (m *MockClient) GetOrder(_ context.Context, orderID int) (*domain.PackageOrder, error) {
	if !m.Authed {
		return nil, ports.ErrNotAuthenticated
	}
	if m.GetOrderErr != nil {
		return nil, m.GetOrderErr
	}
	order, ok := m.OrderByID[orderID]
	if !ok {
		return nil, fmt.Errorf("get order %d: unexpected status 404", orderID)
	}

	// Copy so callers mutating the result don't corrupt the fixture.
	cp := *order
	cp.Deliveries = append([]domain.Delivery(nil), order.Deliveries...)
	return &cp, nil
}

func (m *MockClient) UpdateDelivery(_ context.Context, upd ports.DeliveryUpdate) error {
	if !m.Authed {
		return ports.ErrNotAuthenticated
	}
	if msg, ok := m.FailGroups[upd.GroupID]; ok {
		return fmt.Errorf("update delivery %d: %s", upd.GroupID, msg)
	}
	m.Updates = append(m.Updates, upd)

	// Mirror the update into the fixture so follow-up reads observe it,
	// the way the live platform would.
	if order, ok := m.OrderByID[upd.OrderID]; ok {
		for i := range order.Deliveries {
			if order.Deliveries[i].GroupID == upd.GroupID {
				order.Deliveries[i].Date = upd.Date
				order.Deliveries[i].AddressID = upd.AddressID
				order.Deliveries[i].MealType = upd.MealType
			}
		}
	}
	return nil
}

func (m *MockClient) AvailableRestrictions(_ context.Context) ([]domain.Restriction, error) {
	if !m.Authed {
		return nil, ports.ErrNotAuthenticated
	}
	return m.Available, m.RestrictsErr
}

func (m *MockClient) UserRestrictions(_ context.Context) ([]domain.Restriction, error) {
	if !m.Authed {
		return nil, ports.ErrNotAuthenticated
	}
	return m.Current, m.RestrictsErr
}

func (m *MockClient) UpdateRestrictions(_ context.Context, ids []int) (ports.RestrictionUpdateResult, error) {
	if !m.Authed {
		return ports.RestrictionUpdateResult{}, ports.ErrNotAuthenticated
	}
	if m.RestrictsErr != nil {
		return ports.RestrictionUpdateResult{}, m.RestrictsErr
	}
	m.UpdatedIDs = ids
	return ports.RestrictionUpdateResult{
		Success:      true,
		Message:      "Restrictions updated",
		Restrictions: m.Current,
	}, nil
}
