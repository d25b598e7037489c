package schedule

import (
	"sort"

	"slotgrid/models"
)

// ResolveAvailability selects the availability slots in force on one date.
//
// Specific-date slots override: if any slot is pinned to the target date,
// the resolved set is exactly those slots and every matching-weekday
// recurring slot is suppressed, even where recurring hours are not covered
// by the specific-date ones. With no specific-date slot, all recurring
// slots for the weekday apply, subject to the activation-date cutoff: a
// recurring slot never shows on past dates earlier than its creation day.
func ResolveAvailability(slots []models.AvailabilitySlot, date string, weekday int, today string) []models.AvailabilitySlot {
	var specific []models.AvailabilitySlot
	for _, s := range slots {
		if !s.IsRecurring() && s.Date == date {
			specific = append(specific, s)
		}
	}
	if len(specific) > 0 {
		sortSlotsByStart(specific)
		return specific
	}

	var recurring []models.AvailabilitySlot
	for _, s := range slots {
		if s.IsRecurring() && *s.DayOfWeek == weekday && activeOn(s.CreatedAt, date, today) {
			recurring = append(recurring, s)
		}
	}
	sortSlotsByStart(recurring)
	return recurring
}

func sortSlotsByStart(slots []models.AvailabilitySlot) {
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Start < slots[j].Start
	})
}
