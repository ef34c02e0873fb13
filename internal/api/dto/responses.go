package dto

type LoginResponse struct {
	Message string `json:"message"`
}

type OrderSummaryResponse struct {
	OrderID     int    `json:"order_id"`
	PackageName string `json:"package_name"`
}

type ListOrdersResponse struct {
	Orders []OrderSummaryResponse `json:"orders"`
}

type OrderDetailResponse struct {
	OrderID            int    `json:"order_id"`
	PackageName        string `json:"package_name"`
	Description        string `json:"description"`
	TotalDays          int    `json:"total_days"`
	LunchDeliveries    int    `json:"lunch_deliveries"`
	DinnerDeliveries   int    `json:"dinner_deliveries"`
	AvailableAddresses int    `json:"available_addresses"`
}

type ScheduleEntryResponse struct {
	Date     string `json:"date"`
	Day      string `json:"day"`
	Type     string `json:"type"`
	GroupID  int    `json:"group_id"`
	Status   string `json:"status"`
	Editable bool   `json:"editable"`
}

type ScheduleResponse struct {
	PackageName string                  `json:"package_name"`
	Description string                  `json:"description"`
	TotalDays   int                     `json:"total_days"`
	LunchCount  int                     `json:"lunch_count"`
	DinnerCount int                     `json:"dinner_count"`
	Schedule    []ScheduleEntryResponse `json:"schedule"`
}

type DeliveriesResponse struct {
	StartDate  string                  `json:"start_date"`
	EndDate    string                  `json:"end_date"`
	Count      int                     `json:"count"`
	Deliveries []ScheduleEntryResponse `json:"deliveries"`
}

type MealTypeStatsResponse struct {
	Total     int `json:"total"`
	Remaining int `json:"remaining"`
	Completed int `json:"completed"`
}

type SummaryResponse struct {
	PackageName     string                `json:"package_name"`
	TotalDeliveries int                   `json:"total_deliveries"`
	Lunch           MealTypeStatsResponse `json:"lunch"`
	Dinner          MealTypeStatsResponse `json:"dinner"`
	EditableCount   int                   `json:"editable_count"`
	FirstDelivery   string                `json:"first_delivery,omitempty"`
	LastDelivery    string                `json:"last_delivery,omitempty"`
}

type AddressResponse struct {
	AddressID int    `json:"address_id"`
	Label     string `json:"label"`
	Address   string `json:"address"`
}

type ListAddressesResponse struct {
	Addresses []AddressResponse `json:"addresses"`
}

type RescheduledResponse struct {
	GroupID  int    `json:"group_id"`
	Type     string `json:"type"`
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

type FailedResponse struct {
	GroupID int    `json:"group_id"`
	Date    string `json:"date"`
	Reason  string `json:"reason"`
}

type BulkResultResponse struct {
	SuccessCount int                   `json:"success_count"`
	FailedCount  int                   `json:"failed_count"`
	Rescheduled  []RescheduledResponse `json:"rescheduled"`
	Failed       []FailedResponse      `json:"failed"`
}

type HoldResponse struct {
	ResumeDate string `json:"resume_date"`
	BulkResultResponse
}

type SkipDayResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	BulkResultResponse
}

type ChangedAddressResponse struct {
	GroupID      int    `json:"group_id"`
	Date         string `json:"date"`
	Type         string `json:"type"`
	NewAddressID int    `json:"new_address_id"`
}

type ChangeAddressResponse struct {
	Success      bool                     `json:"success"`
	Message      string                   `json:"message"`
	SuccessCount int                      `json:"success_count"`
	FailedCount  int                      `json:"failed_count"`
	Changed      []ChangedAddressResponse `json:"changed"`
	Failed       []FailedResponse         `json:"failed"`
}

type RestrictionResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Group string `json:"group,omitempty"`
}

type ListRestrictionsResponse struct {
	Restrictions []RestrictionResponse `json:"restrictions"`
}

type UpdateRestrictionsResponse struct {
	Success      bool                  `json:"success"`
	Message      string                `json:"message"`
	Restrictions []RestrictionResponse `json:"restrictions"`
}
