package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"warlon-catering-service/internal/adapters/warlon"
	"warlon-catering-service/internal/domain"
	"warlon-catering-service/internal/ports"
)

// stubResolver hands the same client to every session key.
type stubResolver struct {
	client ports.CateringClient
}

func (r stubResolver) Resolve(_ context.Context, _ string) ports.CateringClient {
	return r.client
}

func newTestService(client ports.CateringClient) *Service {
	return New(stubResolver{client: client}, zap.NewNop())
}

// testOrder builds a small March 2024 schedule. 2024-03-04 is a Monday,
// 2024-03-10 the first Sunday after it.
//
//	group 1  2024-03-04  LUNCH   SCHEDULED  notes "no chili"
//	group 2  2024-03-04  DINNER  SCHEDULED
//	group 3  2024-03-05  LUNCH   SCHEDULED
//	group 4  2024-03-05  DINNER  DELIVERED
//	group 5  2024-03-07  LUNCH   SCHEDULED
//	group 6  2024-03-20  LUNCH   SCHEDULED
func testOrder() *domain.PackageOrder {
	day := func(s string) time.Time {
		d, err := domain.ParseDate(s)
		if err != nil {
			panic(err)
		}
		return d
	}
	return &domain.PackageOrder{
		ID:           42,
		PackageName:  "Healthy Weekly",
		TotalDays:    12,
		LunchAmount:  12,
		DinnerAmount: 6,
		Deliveries: []domain.Delivery{
			{GroupID: 1, ScheduleID: 101, Date: day("2024-03-04"), MealType: domain.MealLunch, Status: domain.StatusScheduled, AddressID: 7, Notes: []string{"no chili"}},
			{GroupID: 2, ScheduleID: 102, Date: day("2024-03-04"), MealType: domain.MealDinner, Status: domain.StatusScheduled, AddressID: 7},
			{GroupID: 3, ScheduleID: 103, Date: day("2024-03-05"), MealType: domain.MealLunch, Status: domain.StatusScheduled, AddressID: 7},
			{GroupID: 4, ScheduleID: 104, Date: day("2024-03-05"), MealType: domain.MealDinner, Status: "DELIVERED", AddressID: 7},
			{GroupID: 5, ScheduleID: 105, Date: day("2024-03-07"), MealType: domain.MealLunch, Status: domain.StatusScheduled, AddressID: 7},
			{GroupID: 6, ScheduleID: 106, Date: day("2024-03-20"), MealType: domain.MealLunch, Status: domain.StatusScheduled, AddressID: 7},
		},
		Addresses: []domain.Address{
			{ID: 7, Label: "Home", Address: "Jl. Sudirman 1"},
			{ID: 9, Label: "Office", Address: "Jl. Thamrin 8"},
		},
	}
}

func authedMock(order *domain.PackageOrder) *warlon.MockClient {
	return &warlon.MockClient{
		Authed:    true,
		OrderByID: map[int]*domain.PackageOrder{order.ID: order},
	}
}
