package warlon

import (
	"fmt"
	"time"

	"warlon-catering-service/internal/domain"
)

// Raw wire shapes for the order detail payload. The schedule data is
// nested three levels deep: day batches hold order groups hold details.

type rawOrderSummary struct {
	ID                 int      `json:"id"`
	UserPackageOrderID int      `json:"userPackageOrderId"`
	PackageName        string   `json:"packageName"`
	User               *rawUser `json:"user"`
}

// orderID tolerates both id spellings the list endpoint has used.
func (o rawOrderSummary) orderID() int {
	if o.ID != 0 {
		return o.ID
	}
	return o.UserPackageOrderID
}

type rawUser struct {
	Addresses    []rawAddress     `json:"addresses"`
	Restrictions []rawRestriction `json:"userPackageRestrictions"`
}

type rawRestriction struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Group string `json:"group"`
}

func (r rawRestriction) toDomain() domain.Restriction {
	return domain.Restriction{ID: r.ID, Name: r.Name, Group: r.Group}
}

type rawAddress struct {
	ID      int    `json:"id"`
	Label   string `json:"label"`
	Address string `json:"address"`
}

type rawOrderDetail struct {
	ID                 int           `json:"id"`
	UserID             int           `json:"userId"`
	PackageID          int           `json:"packageId"`
	PackageName        string        `json:"packageName"`
	PackageDescription string        `json:"packageDescription"`
	TotalDays          int           `json:"totalDays"`
	LunchAmount        int           `json:"lunchAmount"`
	DinnerAmount       int           `json:"dinnerAmount"`
	Schedules          []rawSchedule `json:"userPackageOrderSchedules"`
	User               *rawUser      `json:"user"`
}

type rawSchedule struct {
	ID            int        `json:"id"`
	ScheduledDate string     `json:"scheduledDate"`
	Groups        []rawGroup `json:"userPackageOrderGroups"`
}

type rawGroup struct {
	ID                int         `json:"id"`
	Type              string      `json:"type"`
	Status            string      `json:"status"`
	CustomerAddressID *int        `json:"customerAddressId"`
	CustomerAddress   *rawAddress `json:"customerAddress"`
	Address           string      `json:"address"`
	Details           []rawDetail `json:"userPackageOrderDetails"`
}

type rawDetail struct {
	Note string `json:"note"`
}

func (o rawOrderDetail) toDomain() (*domain.PackageOrder, error) {
	order := &domain.PackageOrder{
		ID:                 o.ID,
		UserID:             o.UserID,
		PackageID:          o.PackageID,
		PackageName:        o.PackageName,
		PackageDescription: o.PackageDescription,
		TotalDays:          o.TotalDays,
		LunchAmount:        o.LunchAmount,
		DinnerAmount:       o.DinnerAmount,
	}

	deliveries, err := flattenSchedules(o.Schedules)
	if err != nil {
		return nil, err
	}
	order.Deliveries = deliveries

	if o.User != nil {
		order.Addresses = make([]domain.Address, 0, len(o.User.Addresses))
		for _, a := range o.User.Addresses {
			order.Addresses = append(order.Addresses, domain.Address{
				ID:      a.ID,
				Label:   a.Label,
				Address: a.Address,
			})
		}
	}

	return order, nil
}

// flattenSchedules turns the nested day batches into a flat delivery
// list. The timestamp is converted to Jakarta before its calendar date
// is taken, and the two address shapes (id reference vs embedded object)
// are resolved once here; nothing downstream re-inspects them.
func flattenSchedules(schedules []rawSchedule) ([]domain.Delivery, error) {
	var deliveries []domain.Delivery
	for _, sched := range schedules {
		instant, err := time.Parse(time.RFC3339, sched.ScheduledDate)
		if err != nil {
			return nil, fmt.Errorf("parse scheduled date %q: %w", sched.ScheduledDate, err)
		}
		date := domain.DateOf(instant)

		for _, g := range sched.Groups {
			deliveries = append(deliveries, domain.Delivery{
				GroupID:    g.ID,
				ScheduleID: sched.ID,
				Date:       date,
				MealType:   domain.MealType(g.Type),
				Status:     g.Status,
				AddressID:  resolveAddressID(g),
				Address:    resolveAddress(g),
				Notes:      collectNotes(g.Details),
			})
		}
	}
	return deliveries, nil
}

func resolveAddressID(g rawGroup) int {
	if g.CustomerAddressID != nil {
		return *g.CustomerAddressID
	}
	if g.CustomerAddress != nil {
		return g.CustomerAddress.ID
	}
	return 0
}

func resolveAddress(g rawGroup) string {
	if g.CustomerAddress != nil {
		return g.CustomerAddress.Address
	}
	return g.Address
}

func collectNotes(details []rawDetail) []string {
	var notes []string
	for _, d := range details {
		if d.Note != "" {
			notes = append(notes, d.Note)
		}
	}
	return notes
}
