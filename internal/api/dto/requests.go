package dto

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RescheduleRequest struct {
	GroupID   int    `json:"group_id"`
	NewDate   string `json:"new_date"`
	AddressID int    `json:"address_id"`
	MealType  string `json:"meal_type"`
}

type BulkRescheduleRequest struct {
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	TargetStartDate string `json:"target_start_date"`
	MealTypes       string `json:"meal_types"`
}

type HoldRequest struct {
	HoldStart string `json:"hold_start"`
	HoldEnd   string `json:"hold_end"`
	MealTypes string `json:"meal_types"`
}

type SkipDayRequest struct {
	SkipDate  string `json:"skip_date"`
	MealTypes string `json:"meal_types"`
}

type ChangeAddressRequest struct {
	NewAddressID int    `json:"new_address_id"`
	Date         string `json:"date"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	MealTypes    string `json:"meal_types"`
}

type UpdateRestrictionsRequest struct {
	RestrictionIDs []int `json:"restriction_ids"`
}
