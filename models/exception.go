package models

import "time"

// Exception is a provider's time-off record. Scope is either recurring
// (DayOfWeek set) or a date range (StartDate/EndDate set, inclusive,
// "2006-01-02"). AllDay exceptions conceptually span 00:00-24:00 regardless
// of Start/End.
type Exception struct {
	ID         string    `bson:"id" json:"id"`
	ProviderID string    `bson:"provider_id" json:"providerId"`
	DayOfWeek  *int      `bson:"day_of_week,omitempty" json:"dayOfWeek,omitempty"`
	StartDate  string    `bson:"start_date,omitempty" json:"startDate,omitempty"`
	EndDate    string    `bson:"end_date,omitempty" json:"endDate,omitempty"`
	Start      int       `bson:"start" json:"start"`
	End        int       `bson:"end" json:"end"`
	AllDay     bool      `bson:"all_day" json:"allDay"`
	Reason     string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}

// IsRecurring reports whether the exception repeats weekly.
func (e Exception) IsRecurring() bool {
	return e.DayOfWeek != nil
}

// CreateExceptionRequest is the payload for carving out time off. Days and
// DateRanges are alternatives, each entry an independent scope unit.
type CreateExceptionRequest struct {
	Days       []int       `json:"days,omitempty"`
	DateRanges []DateRange `json:"dateRanges,omitempty"`
	Start      int         `json:"start"`
	End        int         `json:"end"`
	AllDay     bool        `json:"allDay"`
	Reason     string      `json:"reason,omitempty"`
}

// DateRange is an inclusive span of calendar dates.
type DateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}
