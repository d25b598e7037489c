package schedule

import (
	"testing"

	"slotgrid/models"
)

func TestCheckSlotOverlap_NoConflict(t *testing.T) {
	existing := []models.AvailabilitySlot{recurringSlot("tue", 2, 600, 840, createdLongAgo)}
	// Touching end-to-start is not an overlap.
	res, err := CheckSlotOverlap(ScopeUnit{DayOfWeek: intPtr(2)}, Interval{840, 900}, existing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.HasOverlap {
		t.Fatalf("touching intervals must not conflict, got %+v", res)
	}
}

func TestCheckSlotOverlap_RecurringConflictWithMergeCandidate(t *testing.T) {
	// Existing Tuesday 10:00-14:00, propose Tuesday 09:00-12:00: conflict
	// with merge candidate 09:00-14:00.
	existing := []models.AvailabilitySlot{recurringSlot("tue", 2, 600, 840, createdLongAgo)}
	res, err := CheckSlotOverlap(ScopeUnit{DayOfWeek: intPtr(2)}, Interval{540, 720}, existing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.HasOverlap {
		t.Fatal("expected a conflict")
	}
	if len(res.Overlapping) != 1 || res.Overlapping[0].ID != "tue" {
		t.Fatalf("unexpected overlapping entries %v", res.Overlapping)
	}
	if res.ReplaceCandidate != (Interval{540, 720}) {
		t.Fatalf("replace candidate must be the proposal, got %v", res.ReplaceCandidate)
	}
	if res.MergeCandidate != (Interval{540, 840}) {
		t.Fatalf("expected merge candidate 09:00-14:00, got %v", res.MergeCandidate)
	}
}

func TestCheckSlotOverlap_MergeUsesFirstEntryOnly(t *testing.T) {
	existing := []models.AvailabilitySlot{
		recurringSlot("s1", 2, 600, 700, createdLongAgo),
		recurringSlot("s2", 2, 800, 1000, createdLongAgo),
	}
	res, err := CheckSlotOverlap(ScopeUnit{DayOfWeek: intPtr(2)}, Interval{650, 900}, existing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Overlapping) != 2 {
		t.Fatalf("all overlapping entries must be reported, got %v", res.Overlapping)
	}
	// Merge preview folds in s1 only; s2 is reported but ignored.
	if res.MergeCandidate != (Interval{600, 900}) {
		t.Fatalf("merge candidate must use the first entry only, got %v", res.MergeCandidate)
	}
}

func TestCheckSlotOverlap_DateUnitMatchesBothScopes(t *testing.T) {
	// 2026-03-03 is a Tuesday: a date unit collides with specific-date
	// records on that date and recurring records for that weekday.
	existing := []models.AvailabilitySlot{
		recurringSlot("rec", 2, 600, 840, createdLongAgo),
		dateSlot("dated", tuesday, 500, 560, createdLongAgo),
		dateSlot("other", "2026-03-10", 500, 560, createdLongAgo),
	}
	res, err := CheckSlotOverlap(ScopeUnit{Date: tuesday}, Interval{540, 660}, existing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Overlapping) != 2 {
		t.Fatalf("expected the recurring and same-date slots, got %v", res.Overlapping)
	}
}

func TestCheckSlotOverlap_WeekdayUnitIgnoresSpecificDates(t *testing.T) {
	existing := []models.AvailabilitySlot{dateSlot("dated", tuesday, 540, 660, createdLongAgo)}
	res, err := CheckSlotOverlap(ScopeUnit{DayOfWeek: intPtr(2)}, Interval{540, 660}, existing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.HasOverlap {
		t.Fatalf("a weekday unit is compared only against recurring records, got %+v", res)
	}
}

func TestCheckSlotOverlap_MissingScope(t *testing.T) {
	if _, err := CheckSlotOverlap(ScopeUnit{}, Interval{540, 660}, nil); ErrorCode(err) != CodeMissingScope {
		t.Fatalf("expected missingScope error, got %v", err)
	}
	bad := 9
	if _, err := CheckSlotOverlap(ScopeUnit{DayOfWeek: &bad}, Interval{540, 660}, nil); ErrorCode(err) != CodeMissingScope {
		t.Fatalf("expected missingScope for out-of-range weekday, got %v", err)
	}
}

func TestCheckExceptionOverlap_RangeUnit(t *testing.T) {
	existing := []models.Exception{
		oneTimeExc("trip", "2026-03-04", "2026-03-06", 540, 720),
		recurringExc("lunch", 5, 700, 760), // Friday
	}
	// Range Tue..Fri covers the trip's range and Friday's weekday.
	res, err := CheckExceptionOverlap(ScopeUnit{Date: tuesday, EndDate: "2026-03-06"}, Interval{600, 720}, existing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Overlapping) != 2 {
		t.Fatalf("expected both records to conflict, got %v", res.Overlapping)
	}
}

func TestCheckExceptionOverlap_AllDayBlocksEverything(t *testing.T) {
	existing := []models.Exception{{
		ID:        "vac",
		StartDate: tuesday,
		EndDate:   tuesday,
		AllDay:    true,
		CreatedAt: createdLongAgo,
	}}
	res, err := CheckExceptionOverlap(ScopeUnit{Date: tuesday}, Interval{540, 600}, existing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.HasOverlap {
		t.Fatal("an all-day record must conflict with any interval that day")
	}
	if res.MergeCandidate != (Interval{0, 1440}) {
		t.Fatalf("merging with an all-day record spans the day, got %v", res.MergeCandidate)
	}
}

func TestBuildSlotPlans(t *testing.T) {
	existing := []models.AvailabilitySlot{recurringSlot("tue", 2, 600, 840, createdLongAgo)}
	conflict, err := CheckSlotOverlap(ScopeUnit{DayOfWeek: intPtr(2)}, Interval{540, 720}, existing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	proposed := newSlot("prov", ScopeUnit{DayOfWeek: intPtr(2)}, Interval{540, 720})

	replace := BuildSlotReplacePlan(conflict, proposed)
	if len(replace.ToDelete) != 1 || replace.ToDelete[0] != "tue" {
		t.Fatalf("replace must delete every overlapping entry, got %v", replace.ToDelete)
	}
	if replace.ToInsert.Start != 540 || replace.ToInsert.End != 720 {
		t.Fatalf("replace must insert the proposal verbatim, got %+v", replace.ToInsert)
	}

	merge := BuildSlotMergePlan(conflict, proposed)
	if len(merge.ToDelete) != 1 || merge.ToDelete[0] != "tue" {
		t.Fatalf("merge must delete every overlapping entry, got %v", merge.ToDelete)
	}
	if merge.ToInsert.Start != 540 || merge.ToInsert.End != 840 {
		t.Fatalf("merge must insert the merged span, got %+v", merge.ToInsert)
	}
}
