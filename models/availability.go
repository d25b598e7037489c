package models

import "time"

// AvailabilitySlot is a provider's published working window. Scope is either
// recurring (DayOfWeek set, 0 = Sunday) or specific-date (Date set,
// "2006-01-02"); never both. Start and End are minutes from midnight,
// half-open, End > Start. Slots are immutable: changing one means
// delete + recreate.
type AvailabilitySlot struct {
	ID         string    `bson:"id" json:"id"`
	ProviderID string    `bson:"provider_id" json:"providerId"`
	DayOfWeek  *int      `bson:"day_of_week,omitempty" json:"dayOfWeek,omitempty"`
	Date       string    `bson:"date,omitempty" json:"date,omitempty"`
	Start      int       `bson:"start" json:"start"`
	End        int       `bson:"end" json:"end"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}

// IsRecurring reports whether the slot applies weekly on a fixed day.
func (s AvailabilitySlot) IsRecurring() bool {
	return s.DayOfWeek != nil
}

// CreateAvailabilityRequest is the payload for publishing availability.
// Days and Dates are alternatives: a recurring request lists weekdays, a
// specific-date request lists calendar dates. Each entry is an independent
// scope unit on the write path.
type CreateAvailabilityRequest struct {
	Days  []int    `json:"days,omitempty"`
	Dates []string `json:"dates,omitempty"`
	Start int      `json:"start"`
	End   int      `json:"end"`
}
