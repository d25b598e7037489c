package schedule

import (
	"testing"
	"time"

	"slotgrid/models"
)

func intPtr(d int) *int { return &d }

func recurringSlot(id string, day, start, end int, createdAt time.Time) models.AvailabilitySlot {
	return models.AvailabilitySlot{
		ID:        id,
		DayOfWeek: intPtr(day),
		Start:     start,
		End:       end,
		CreatedAt: createdAt,
	}
}

func dateSlot(id, date string, start, end int, createdAt time.Time) models.AvailabilitySlot {
	return models.AvailabilitySlot{
		ID:        id,
		Date:      date,
		Start:     start,
		End:       end,
		CreatedAt: createdAt,
	}
}

// 2026-03-02 is a Monday.
const (
	monday  = "2026-03-02"
	tuesday = "2026-03-03"
)

var createdLongAgo = time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

func TestResolveAvailability_RecurringOnly(t *testing.T) {
	slots := []models.AvailabilitySlot{
		recurringSlot("mon", 1, 540, 1020, createdLongAgo),
		recurringSlot("tue", 2, 540, 1020, createdLongAgo),
	}
	got := ResolveAvailability(slots, monday, 1, monday)
	if len(got) != 1 || got[0].ID != "mon" {
		t.Fatalf("expected only the Monday slot, got %v", got)
	}
}

func TestResolveAvailability_SpecificDateSuppressesRecurring(t *testing.T) {
	slots := []models.AvailabilitySlot{
		recurringSlot("mon", 1, 540, 1020, createdLongAgo),
		dateSlot("special", monday, 600, 720, createdLongAgo),
	}
	got := ResolveAvailability(slots, monday, 1, monday)
	if len(got) != 1 {
		t.Fatalf("expected exactly the specific-date slot, got %v", got)
	}
	if got[0].ID != "special" {
		t.Fatalf("expected specific-date slot to win, got %q", got[0].ID)
	}
}

func TestResolveAvailability_SpecificDateOnOtherDateIgnored(t *testing.T) {
	slots := []models.AvailabilitySlot{
		recurringSlot("mon", 1, 540, 1020, createdLongAgo),
		dateSlot("special", tuesday, 600, 720, createdLongAgo),
	}
	got := ResolveAvailability(slots, monday, 1, monday)
	if len(got) != 1 || got[0].ID != "mon" {
		t.Fatalf("expected the recurring slot, got %v", got)
	}
}

func TestResolveAvailability_ActivationCutoffPastDate(t *testing.T) {
	// Slot created 2026-03-10; the target Monday 2026-03-02 is in the past
	// relative to today 2026-03-20, and precedes the slot's creation.
	created := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	slots := []models.AvailabilitySlot{recurringSlot("mon", 1, 540, 1020, created)}

	if got := ResolveAvailability(slots, monday, 1, "2026-03-20"); len(got) != 0 {
		t.Fatalf("slot created after a past date must not appear there, got %v", got)
	}
}

func TestResolveAvailability_ActivationCutoffTodayAndFuture(t *testing.T) {
	created := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	slots := []models.AvailabilitySlot{recurringSlot("mon", 1, 540, 1020, created)}

	// Today: included regardless of creation time.
	if got := ResolveAvailability(slots, monday, 1, monday); len(got) != 1 {
		t.Fatalf("expected slot included for today, got %v", got)
	}
	// Future date: included as well. 2026-03-09 is a Monday.
	if got := ResolveAvailability(slots, "2026-03-09", 1, monday); len(got) != 1 {
		t.Fatalf("expected slot included for a future date, got %v", got)
	}
}

func TestResolveAvailability_PastDateAfterCreationIncluded(t *testing.T) {
	created := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	slots := []models.AvailabilitySlot{recurringSlot("mon", 1, 540, 1020, created)}

	// Target is past relative to today but after the slot was created.
	if got := ResolveAvailability(slots, monday, 1, "2026-03-20"); len(got) != 1 {
		t.Fatalf("expected slot included on past dates after its creation, got %v", got)
	}
}

func TestResolveAvailability_SortedByStart(t *testing.T) {
	slots := []models.AvailabilitySlot{
		recurringSlot("late", 1, 780, 1020, createdLongAgo),
		recurringSlot("early", 1, 540, 720, createdLongAgo),
	}
	got := ResolveAvailability(slots, monday, 1, monday)
	if len(got) != 2 || got[0].ID != "early" || got[1].ID != "late" {
		t.Fatalf("expected slots sorted by start, got %v", got)
	}
}
