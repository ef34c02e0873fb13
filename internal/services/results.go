package services

import (
	"time"

	"warlon-catering-service/internal/domain"
)

// RescheduledDelivery is one successfully moved record.
type RescheduledDelivery struct {
	GroupID  int
	MealType domain.MealType
	From     time.Time
	To       time.Time
}

// FailedDelivery is one record whose remote update failed. Failures are
// recorded, never fatal to the rest of the batch.
type FailedDelivery struct {
	GroupID int
	Date    time.Time
	Reason  string
}

// BulkResult aggregates the per-record outcomes of one bulk operation.
type BulkResult struct {
	SuccessCount int
	FailedCount  int
	Rescheduled  []RescheduledDelivery
	Failed       []FailedDelivery
}

// HoldResult is a bulk reschedule whose anchor was derived from the end
// of the held range.
type HoldResult struct {
	ResumeDate time.Time
	BulkResult
}

// SkipResult reports deliveries appended to the end of the schedule.
type SkipResult struct {
	Message string
	BulkResult
}

// ChangedAddress is one delivery whose address was switched in place.
type ChangedAddress struct {
	GroupID   int
	Date      time.Time
	MealType  domain.MealType
	AddressID int
}

// ChangeAddressResult aggregates a change-address batch.
type ChangeAddressResult struct {
	SuccessCount int
	FailedCount  int
	Changed      []ChangedAddress
	Failed       []FailedDelivery
}
