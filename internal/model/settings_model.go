package model

// DaySchedule is the opening window for a single weekday.
type DaySchedule struct {
	IsOpen bool   `json:"isOpen"`
	Open   string `json:"open"`
	Close  string `json:"close"`
}

// WeeklySchedule holds one DaySchedule per weekday.
type WeeklySchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// ClosedDate is an ad-hoc closure on top of the weekly schedule.
type ClosedDate struct {
	Date   string `json:"date"`
	Reason string `json:"reason,omitempty"`
}

// StoreSettings is the single settings row. Writers replace the whole record;
// readers treat each fetch as an immutable snapshot.
type StoreSettings struct {
	ID                string          `json:"id"`
	RestaurantName    string          `json:"restaurant_name"`
	BusinessPhone     string          `json:"business_phone,omitempty"`
	LogoURL           string          `json:"logo_url,omitempty"`
	WebhookURL        string          `json:"webhook_url,omitempty"`
	IsOpen            bool            `json:"is_open"`
	Schedule          *WeeklySchedule `json:"schedule,omitempty"`
	ClosedDates       []ClosedDate    `json:"closed_dates,omitempty"`
	IsDeliveryEnabled bool            `json:"is_delivery_enabled"`
	IsPickupEnabled   bool            `json:"is_pickup_enabled"`
	VATEnabled        bool            `json:"vat_enabled"`
	VATPercentage     float64         `json:"vat_percentage"`
}
