package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

type MealType string

const (
	MealLunch  MealType = "LUNCH"
	MealDinner MealType = "DINNER"
)

// StatusScheduled is the only status under which the platform accepts
// edits to a delivery.
const StatusScheduled = "SCHEDULED"

// Delivery is one scheduled meal drop: a single lunch or dinner on a
// single Jakarta calendar day within a package order.
type Delivery struct {
	GroupID    int
	ScheduleID int
	Date       time.Time // midnight, Jakarta
	MealType   MealType
	Status     string
	AddressID  int
	Address    string
	Notes      []string
}

// Editable is derived from Status on every call so it can never diverge
// from the platform's view of the record.
func (d Delivery) Editable() bool {
	return d.Status == StatusScheduled
}

// DeliveryWindow is the default delivery time slot the platform expects
// for the meal type when an update does not carry one.
func (m MealType) DeliveryWindow() string {
	if m == MealDinner {
		return "18:00 - 19:00"
	}
	return "12:00 - 13:00"
}

// ParseMealTypes parses an optional comma-separated filter such as
// "LUNCH,DINNER". An empty string means no filter (all meal types).
func ParseMealTypes(s string) ([]MealType, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var types []MealType
	for _, tok := range strings.Split(s, ",") {
		t := MealType(strings.ToUpper(strings.TrimSpace(tok)))
		switch t {
		case MealLunch, MealDinner:
			types = append(types, t)
		default:
			return nil, fmt.Errorf("invalid meal type %q: must be LUNCH or DINNER", strings.TrimSpace(tok))
		}
	}
	return types, nil
}

// MatchesMealTypes reports whether the delivery passes the filter; a nil
// filter matches everything.
func (d Delivery) MatchesMealTypes(types []MealType) bool {
	if len(types) == 0 {
		return true
	}
	for _, t := range types {
		if d.MealType == t {
			return true
		}
	}
	return false
}

// SortDeliveries orders deliveries by (date, meal type). Flattened
// schedule data carries no guaranteed order, so every caller that needs
// one sorts explicitly.
func SortDeliveries(ds []Delivery) {
	sort.Slice(ds, func(i, j int) bool {
		if !ds[i].Date.Equal(ds[j].Date) {
			return ds[i].Date.Before(ds[j].Date)
		}
		return ds[i].MealType < ds[j].MealType
	})
}
