package schedule

import (
	"time"

	"slotgrid/models"
	"slotgrid/utils"
)

// ScopeUnit is one independently-checked target of a write: a weekday
// (recurring), one calendar date, or an inclusive date range. A request
// spanning several weekdays or dates fans out into one unit per entry, and
// each unit commits or conflicts on its own.
type ScopeUnit struct {
	DayOfWeek *int   `json:"dayOfWeek,omitempty"`
	Date      string `json:"date,omitempty"`
	EndDate   string `json:"endDate,omitempty"` // set only for ranges
}

// SlotConflict is the outcome of an availability overlap check. When
// HasOverlap is set the caller must pick replace, merge or cancel; nothing
// was written. MergeCandidate spans the proposal and the FIRST overlapping
// entry only; further entries are reported but not folded into the merge
// preview.
type SlotConflict struct {
	HasOverlap       bool                      `json:"hasOverlap"`
	Overlapping      []models.AvailabilitySlot `json:"overlapping,omitempty"`
	ReplaceCandidate Interval                  `json:"replaceCandidate"`
	MergeCandidate   Interval                  `json:"mergeCandidate"`
}

// ExceptionConflict mirrors SlotConflict for time-off records.
type ExceptionConflict struct {
	HasOverlap       bool               `json:"hasOverlap"`
	Overlapping      []models.Exception `json:"overlapping,omitempty"`
	ReplaceCandidate Interval           `json:"replaceCandidate"`
	MergeCandidate   Interval           `json:"mergeCandidate"`
}

// unitWeekdays resolves the set of weekdays a unit can fall on. A weekday
// unit carries its day directly; a date unit contributes the weekday of
// each covered date (capped at a full week).
func unitWeekdays(unit ScopeUnit) (map[int]bool, error) {
	if unit.DayOfWeek != nil {
		d := *unit.DayOfWeek
		if d < 0 || d > 6 {
			return nil, ErrMissingScope()
		}
		return map[int]bool{d: true}, nil
	}
	if unit.Date == "" {
		return nil, ErrMissingScope()
	}

	start, err := time.Parse(utils.DateLayout, unit.Date)
	if err != nil {
		return nil, ErrInvalidDate(unit.Date)
	}
	end := start
	if unit.EndDate != "" {
		end, err = time.Parse(utils.DateLayout, unit.EndDate)
		if err != nil {
			return nil, ErrInvalidDate(unit.EndDate)
		}
		if end.Before(start) {
			return nil, ErrInvalidDate(unit.EndDate)
		}
	}

	days := map[int]bool{}
	for d := start; !d.After(end) && len(days) < 7; d = d.AddDate(0, 0, 1) {
		days[int(d.Weekday())] = true
	}
	return days, nil
}

func (u ScopeUnit) endDate() string {
	if u.EndDate != "" {
		return u.EndDate
	}
	return u.Date
}

// slotMatchesUnit applies the scope-matching rules: a date unit collides
// with specific-date records inside it and with recurring records for any
// weekday it covers; a weekday unit collides only with recurring records
// for the same weekday.
func slotMatchesUnit(s models.AvailabilitySlot, unit ScopeUnit, weekdays map[int]bool) bool {
	if s.IsRecurring() {
		return weekdays[*s.DayOfWeek]
	}
	if unit.Date == "" {
		return false
	}
	return unit.Date <= s.Date && s.Date <= unit.endDate()
}

func exceptionMatchesUnit(e models.Exception, unit ScopeUnit, weekdays map[int]bool) bool {
	if e.IsRecurring() {
		return weekdays[*e.DayOfWeek]
	}
	if unit.Date == "" {
		return false
	}
	return e.StartDate <= unit.endDate() && unit.Date <= e.EndDate
}

// CheckSlotOverlap runs the write-path guard for one availability unit.
// The existing collection is filtered to records sharing the unit's scope,
// then to those intersecting the proposed interval. Entry order follows
// the input collection.
func CheckSlotOverlap(unit ScopeUnit, proposed Interval, existing []models.AvailabilitySlot) (SlotConflict, error) {
	weekdays, err := unitWeekdays(unit)
	if err != nil {
		return SlotConflict{}, err
	}

	var overlapping []models.AvailabilitySlot
	for _, s := range existing {
		if !slotMatchesUnit(s, unit, weekdays) {
			continue
		}
		if Overlaps(proposed.Start, proposed.End, s.Start, s.End) {
			overlapping = append(overlapping, s)
		}
	}

	if len(overlapping) == 0 {
		return SlotConflict{HasOverlap: false}, nil
	}

	mergeStart, mergeEnd := Merge(proposed.Start, proposed.End, overlapping[0].Start, overlapping[0].End)
	return SlotConflict{
		HasOverlap:       true,
		Overlapping:      overlapping,
		ReplaceCandidate: proposed,
		MergeCandidate:   Interval{Start: mergeStart, End: mergeEnd},
	}, nil
}

// CheckExceptionOverlap runs the write-path guard for one time-off unit.
// All-day records collide on their effective full-day interval.
func CheckExceptionOverlap(unit ScopeUnit, proposed Interval, existing []models.Exception) (ExceptionConflict, error) {
	weekdays, err := unitWeekdays(unit)
	if err != nil {
		return ExceptionConflict{}, err
	}

	var overlapping []models.Exception
	for _, e := range existing {
		if !exceptionMatchesUnit(e, unit, weekdays) {
			continue
		}
		eiv := effectiveInterval(e)
		if Overlaps(proposed.Start, proposed.End, eiv.Start, eiv.End) {
			overlapping = append(overlapping, e)
		}
	}

	if len(overlapping) == 0 {
		return ExceptionConflict{HasOverlap: false}, nil
	}

	first := effectiveInterval(overlapping[0])
	mergeStart, mergeEnd := Merge(proposed.Start, proposed.End, first.Start, first.End)
	return ExceptionConflict{
		HasOverlap:       true,
		Overlapping:      overlapping,
		ReplaceCandidate: proposed,
		MergeCandidate:   Interval{Start: mergeStart, End: mergeEnd},
	}, nil
}
