package ports

import (
	"context"
	"errors"
	"time"

	"warlon-catering-service/internal/domain"
)

// ErrNotAuthenticated is returned by data operations on a handle whose
// session has no successful login yet.
var ErrNotAuthenticated = errors.New("not authenticated: login first")

// OrderSummary is the list-level view of a package order.
type OrderSummary struct {
	ID          int
	PackageName string
}

// DeliveryUpdate addresses one delivery for a remote edit. The platform
// couples the schedule id and group id into a single composite resource
// id, so both are required.
type DeliveryUpdate struct {
	OrderID    int
	ScheduleID int
	GroupID    int
	Date       time.Time
	AddressID  int
	MealType   domain.MealType
	Notes      []string
}

// RestrictionUpdateResult reports the outcome of replacing the user's
// dietary restrictions.
type RestrictionUpdateResult struct {
	Success      bool
	Message      string
	Restrictions []domain.Restriction
}

// Port: a boundary for the remote Warlon catering platform. One handle
// owns one authenticated remote session; implementations carry the
// session state (cookies) internally.
type CateringClient interface {
	Login(ctx context.Context, username, password string) error
	Authenticated() bool

	ListOrders(ctx context.Context) ([]OrderSummary, error)
	GetOrder(ctx context.Context, orderID int) (*domain.PackageOrder, error)
	UpdateDelivery(ctx context.Context, upd DeliveryUpdate) error

	AvailableRestrictions(ctx context.Context) ([]domain.Restriction, error)
	UserRestrictions(ctx context.Context) ([]domain.Restriction, error)
	UpdateRestrictions(ctx context.Context, ids []int) (RestrictionUpdateResult, error)
}
