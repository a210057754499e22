// models/deal.go
package models

import "time"

// RawSheetRow is one line of the published sheet export, exactly as parsed.
// CSV tags match the sheet headers. Every field may be empty or malformed;
// the normalizer decides what survives.
type RawSheetRow struct {
	VenueName    string `csv:"venue_name"`
	Neighborhood string `csv:"neighborhood"`
	CuisineTags  string `csv:"cuisine_tags"`
	MenuURL      string `csv:"menu_url"`
	WebsiteURL   string `csv:"website_url"`
	DayOfWeek    string `csv:"day_of_week"`
	StartTime    string `csv:"start_time"`
	EndTime      string `csv:"end_time"`
	OpenTime     string `csv:"open_time"`
	CloseTime    string `csv:"close_time"`
	Type         string `csv:"type"`
	DealLabel    string `csv:"deal_label"`
	Notes        string `csv:"notes"`
	LastVerified string `csv:"last_verified"`
}

// Weekday is a day name as it appears in the sheet.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// WeekOrder lists the days in calendar order starting Sunday, matching
// time.Weekday numbering.
var WeekOrder = [7]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// WeekdayFromTime converts a time.Weekday to the sheet day name.
func WeekdayFromTime(d time.Weekday) Weekday {
	return WeekOrder[int(d)%7]
}

// Previous returns the preceding calendar day. Used for the after-midnight
// carry-over rule, where a deal stored on yesterday's row can still be active.
func (d Weekday) Previous() Weekday {
	for i, day := range WeekOrder {
		if day == d {
			return WeekOrder[(i+6)%7]
		}
	}
	return d
}

// DealType is the food/drink classification of a deal.
type DealType string

const (
	DealTypeFood  DealType = "Food"
	DealTypeDrink DealType = "Drink"
	DealTypeBoth  DealType = "Food and Drink"
)

// DealRecord is one validated venue-day-window combination produced by the
// normalizer. Records are immutable once built and replaced wholesale on the
// next normalization pass.
//
// StartTime/EndTime keep the sheet's notation: a literal "HH:MM" clock value,
// or the relative tokens "Open"/"Close" resolved against OpenTime/CloseTime.
// Windows that cross midnight are stored as-is; crossing is computed by the
// schedule package, never stored.
type DealRecord struct {
	ID           string   `json:"id"`
	VenueName    string   `json:"venue_name"`
	Neighborhood string   `json:"neighborhood,omitempty"`
	CuisineTags  []string `json:"cuisine_tags"`
	MenuURL      string   `json:"menu_url"`
	WebsiteURL   string   `json:"website_url,omitempty"`
	DayOfWeek    Weekday  `json:"day_of_week"`
	StartTime    string   `json:"start_time"`
	EndTime      string   `json:"end_time"`
	OpenTime     string   `json:"open_time,omitempty"`
	CloseTime    string   `json:"close_time,omitempty"`
	DealType     DealType `json:"type"`
	DealLabel    string   `json:"deal_label,omitempty"`
	Notes        string   `json:"notes,omitempty"`
	LastVerified string   `json:"last_verified,omitempty"`
}
