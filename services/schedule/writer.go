package schedule

import (
	"context"

	"slotgrid/models"
	"slotgrid/utils"
)

// Conflict resolution actions.
const (
	ActionReplace = "replace"
	ActionMerge   = "merge"
	ActionCancel  = "cancel"
)

// Per-unit write statuses.
const (
	UnitCommitted = "committed"
	UnitConflict  = "conflict"
	UnitFailed    = "failed"
)

// SlotUnitResult reports the outcome of one scope unit of an availability
// write. Conflicting units are deferred, not written; the caller resolves
// them one by one.
type SlotUnitResult struct {
	Unit     ScopeUnit                `json:"unit"`
	Status   string                   `json:"status"`
	Slot     *models.AvailabilitySlot `json:"slot,omitempty"`
	Conflict *SlotConflict            `json:"conflict,omitempty"`
}

// AvailabilityWriteResult lists per-unit outcomes. Units are independent:
// committed units stay committed even when a later unit conflicts or fails.
type AvailabilityWriteResult struct {
	Units []SlotUnitResult `json:"units"`
}

// ExceptionUnitResult and ExceptionWriteResult mirror the slot variants.
type ExceptionUnitResult struct {
	Unit      ScopeUnit          `json:"unit"`
	Status    string             `json:"status"`
	Exception *models.Exception  `json:"exception,omitempty"`
	Conflict  *ExceptionConflict `json:"conflict,omitempty"`
}

type ExceptionWriteResult struct {
	Units []ExceptionUnitResult `json:"units"`
}

// ResolveSlotConflictRequest carries the caller's decision for one deferred
// availability unit.
type ResolveSlotConflictRequest struct {
	Unit   ScopeUnit `json:"unit"`
	Action string    `json:"action"`
	Start  int       `json:"start"`
	End    int       `json:"end"`
}

// ResolveExceptionConflictRequest carries the caller's decision for one
// deferred time-off unit.
type ResolveExceptionConflictRequest struct {
	Unit   ScopeUnit `json:"unit"`
	Action string    `json:"action"`
	Start  int       `json:"start"`
	End    int       `json:"end"`
	AllDay bool      `json:"allDay"`
	Reason string    `json:"reason,omitempty"`
}

// ResolutionOutcome reports exactly what a replace/merge execution did.
// On a persistence failure mid-sequence, Deleted holds the ids removed
// before the failure and Inserted stays false so the caller can reconcile.
type ResolutionOutcome struct {
	Action    string                   `json:"action"`
	Deleted   []string                 `json:"deleted"`
	Inserted  bool                     `json:"inserted"`
	Slot      *models.AvailabilitySlot `json:"slot,omitempty"`
	Exception *models.Exception        `json:"exception,omitempty"`
}

// validateInterval rejects malformed intervals before any resolution or
// overlap check runs.
func validateInterval(start, end int) error {
	if start < 0 || end > utils.MinutesPerDay || end <= start {
		return ErrInvalidInterval(start, end)
	}
	return nil
}

func newSlot(providerID string, unit ScopeUnit, iv Interval) models.AvailabilitySlot {
	s := models.AvailabilitySlot{
		ProviderID: providerID,
		Start:      iv.Start,
		End:        iv.End,
	}
	if unit.DayOfWeek != nil {
		d := *unit.DayOfWeek
		s.DayOfWeek = &d
	} else {
		s.Date = unit.Date
	}
	return s
}

func newException(providerID string, unit ScopeUnit, iv Interval, allDay bool, reason string) models.Exception {
	e := models.Exception{
		ProviderID: providerID,
		Start:      iv.Start,
		End:        iv.End,
		AllDay:     allDay,
		Reason:     reason,
	}
	if unit.DayOfWeek != nil {
		d := *unit.DayOfWeek
		e.DayOfWeek = &d
	} else {
		e.StartDate = unit.Date
		e.EndDate = unit.endDate()
	}
	return e
}

func availabilityUnits(req models.CreateAvailabilityRequest) ([]ScopeUnit, error) {
	var units []ScopeUnit
	for _, d := range req.Days {
		day := d
		units = append(units, ScopeUnit{DayOfWeek: &day})
	}
	for _, date := range req.Dates {
		units = append(units, ScopeUnit{Date: date})
	}
	if len(units) == 0 {
		return nil, ErrMissingScope()
	}
	return units, nil
}

func exceptionUnits(req models.CreateExceptionRequest) ([]ScopeUnit, error) {
	var units []ScopeUnit
	for _, d := range req.Days {
		day := d
		units = append(units, ScopeUnit{DayOfWeek: &day})
	}
	for _, r := range req.DateRanges {
		units = append(units, ScopeUnit{Date: r.StartDate, EndDate: r.EndDate})
	}
	if len(units) == 0 {
		return nil, ErrMissingScope()
	}
	return units, nil
}

// exceptionInterval normalizes the proposed time-off interval: all-day
// requests always span the whole day.
func exceptionInterval(start, end int, allDay bool) (Interval, error) {
	if allDay {
		return Interval{Start: 0, End: utils.MinutesPerDay}, nil
	}
	if err := validateInterval(start, end); err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: end}, nil
}

// CreateAvailability writes one availability interval across every
// requested scope unit. Each unit is checked independently: clean units
// commit immediately, conflicting units are deferred with replace and merge
// candidates for the caller. There is no cross-unit atomicity; a failure
// partway leaves earlier units committed and is reported as such.
func (s *DefaultScheduleService) CreateAvailability(ctx context.Context, providerID string, req models.CreateAvailabilityRequest) (*AvailabilityWriteResult, error) {
	if err := validateInterval(req.Start, req.End); err != nil {
		return nil, err
	}
	units, err := availabilityUnits(req)
	if err != nil {
		return nil, err
	}
	for _, u := range units {
		if _, err := unitWeekdays(u); err != nil {
			return nil, err
		}
	}

	existing, err := s.Availability.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, persistenceFailure("list availability", err)
	}

	proposed := Interval{Start: req.Start, End: req.End}
	result := &AvailabilityWriteResult{}
	committed := false

	for _, unit := range units {
		conflict, err := CheckSlotOverlap(unit, proposed, existing)
		if err != nil {
			return result, err
		}
		if conflict.HasOverlap {
			c := conflict
			result.Units = append(result.Units, SlotUnitResult{Unit: unit, Status: UnitConflict, Conflict: &c})
			continue
		}

		slot := newSlot(providerID, unit, proposed)
		slot.CreatedAt = s.now()
		if err := s.Availability.Insert(ctx, &slot); err != nil {
			result.Units = append(result.Units, SlotUnitResult{Unit: unit, Status: UnitFailed})
			if committed {
				s.invalidateTimelines(ctx, providerID)
			}
			return result, persistenceFailure("insert availability slot", err)
		}
		// Later units in this batch must see what this one just wrote.
		existing = append(existing, slot)
		committed = true
		inserted := slot
		result.Units = append(result.Units, SlotUnitResult{Unit: unit, Status: UnitCommitted, Slot: &inserted})
	}

	if committed {
		s.invalidateTimelines(ctx, providerID)
	}
	return result, nil
}

// CreateException writes one time-off interval across every requested
// scope unit, with the same per-unit commit/defer semantics as
// CreateAvailability.
func (s *DefaultScheduleService) CreateException(ctx context.Context, providerID string, req models.CreateExceptionRequest) (*ExceptionWriteResult, error) {
	proposed, err := exceptionInterval(req.Start, req.End, req.AllDay)
	if err != nil {
		return nil, err
	}
	units, err := exceptionUnits(req)
	if err != nil {
		return nil, err
	}
	for _, u := range units {
		if _, err := unitWeekdays(u); err != nil {
			return nil, err
		}
	}

	existing, err := s.Exceptions.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, persistenceFailure("list exceptions", err)
	}

	result := &ExceptionWriteResult{}
	committed := false

	for _, unit := range units {
		conflict, err := CheckExceptionOverlap(unit, proposed, existing)
		if err != nil {
			return result, err
		}
		if conflict.HasOverlap {
			c := conflict
			result.Units = append(result.Units, ExceptionUnitResult{Unit: unit, Status: UnitConflict, Conflict: &c})
			continue
		}

		exc := newException(providerID, unit, proposed, req.AllDay, req.Reason)
		exc.CreatedAt = s.now()
		if err := s.Exceptions.Insert(ctx, &exc); err != nil {
			result.Units = append(result.Units, ExceptionUnitResult{Unit: unit, Status: UnitFailed})
			if committed {
				s.invalidateTimelines(ctx, providerID)
			}
			return result, persistenceFailure("insert exception", err)
		}
		existing = append(existing, exc)
		committed = true
		inserted := exc
		result.Units = append(result.Units, ExceptionUnitResult{Unit: unit, Status: UnitCommitted, Exception: &inserted})
	}

	if committed {
		s.invalidateTimelines(ctx, providerID)
	}
	return result, nil
}

// ResolveSlotConflict executes the caller's decision for one deferred
// availability unit. The overlap check reruns against a fresh snapshot, so
// a conflict that has since evaporated degrades to a plain insert. Deletes
// are issued one at a time and each completes before the next call; the
// insert only starts after every delete succeeded.
func (s *DefaultScheduleService) ResolveSlotConflict(ctx context.Context, providerID string, req ResolveSlotConflictRequest) (*ResolutionOutcome, error) {
	if req.Action == ActionCancel {
		return &ResolutionOutcome{Action: ActionCancel}, nil
	}
	if req.Action != ActionReplace && req.Action != ActionMerge {
		return nil, ErrUnknownAction(req.Action)
	}
	if err := validateInterval(req.Start, req.End); err != nil {
		return nil, err
	}

	existing, err := s.Availability.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, persistenceFailure("list availability", err)
	}

	proposed := Interval{Start: req.Start, End: req.End}
	conflict, err := CheckSlotOverlap(req.Unit, proposed, existing)
	if err != nil {
		return nil, err
	}

	proposedSlot := newSlot(providerID, req.Unit, proposed)
	proposedSlot.CreatedAt = s.now()

	outcome := &ResolutionOutcome{Action: req.Action}

	if !conflict.HasOverlap {
		if err := s.Availability.Insert(ctx, &proposedSlot); err != nil {
			return outcome, persistenceFailure("insert availability slot", err)
		}
		outcome.Inserted = true
		outcome.Slot = &proposedSlot
		s.invalidateTimelines(ctx, providerID)
		return outcome, nil
	}

	var plan SlotWritePlan
	if req.Action == ActionReplace {
		plan = BuildSlotReplacePlan(conflict, proposedSlot)
	} else {
		plan = BuildSlotMergePlan(conflict, proposedSlot)
	}

	for _, id := range plan.ToDelete {
		if err := s.Availability.DeleteByID(ctx, providerID, id); err != nil {
			return outcome, persistenceFailure("delete availability slot "+id, err)
		}
		outcome.Deleted = append(outcome.Deleted, id)
	}

	toInsert := plan.ToInsert
	if err := s.Availability.Insert(ctx, &toInsert); err != nil {
		return outcome, persistenceFailure("insert availability slot", err)
	}
	outcome.Inserted = true
	outcome.Slot = &toInsert

	s.invalidateTimelines(ctx, providerID)
	return outcome, nil
}

// ResolveExceptionConflict executes the caller's decision for one deferred
// time-off unit, with the same ordering guarantees as ResolveSlotConflict.
func (s *DefaultScheduleService) ResolveExceptionConflict(ctx context.Context, providerID string, req ResolveExceptionConflictRequest) (*ResolutionOutcome, error) {
	if req.Action == ActionCancel {
		return &ResolutionOutcome{Action: ActionCancel}, nil
	}
	if req.Action != ActionReplace && req.Action != ActionMerge {
		return nil, ErrUnknownAction(req.Action)
	}
	proposed, err := exceptionInterval(req.Start, req.End, req.AllDay)
	if err != nil {
		return nil, err
	}

	existing, err := s.Exceptions.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, persistenceFailure("list exceptions", err)
	}

	conflict, err := CheckExceptionOverlap(req.Unit, proposed, existing)
	if err != nil {
		return nil, err
	}

	proposedExc := newException(providerID, req.Unit, proposed, req.AllDay, req.Reason)
	proposedExc.CreatedAt = s.now()

	outcome := &ResolutionOutcome{Action: req.Action}

	if !conflict.HasOverlap {
		if err := s.Exceptions.Insert(ctx, &proposedExc); err != nil {
			return outcome, persistenceFailure("insert exception", err)
		}
		outcome.Inserted = true
		outcome.Exception = &proposedExc
		s.invalidateTimelines(ctx, providerID)
		return outcome, nil
	}

	var plan ExceptionWritePlan
	if req.Action == ActionReplace {
		plan = BuildExceptionReplacePlan(conflict, proposedExc)
	} else {
		plan = BuildExceptionMergePlan(conflict, proposedExc)
	}

	for _, id := range plan.ToDelete {
		if err := s.Exceptions.DeleteByID(ctx, providerID, id); err != nil {
			return outcome, persistenceFailure("delete exception "+id, err)
		}
		outcome.Deleted = append(outcome.Deleted, id)
	}

	toInsert := plan.ToInsert
	if err := s.Exceptions.Insert(ctx, &toInsert); err != nil {
		return outcome, persistenceFailure("insert exception", err)
	}
	outcome.Inserted = true
	outcome.Exception = &toInsert

	s.invalidateTimelines(ctx, providerID)
	return outcome, nil
}

// DeleteAvailability removes one slot outright.
func (s *DefaultScheduleService) DeleteAvailability(ctx context.Context, providerID, slotID string) error {
	if err := s.Availability.DeleteByID(ctx, providerID, slotID); err != nil {
		return persistenceFailure("delete availability slot "+slotID, err)
	}
	s.invalidateTimelines(ctx, providerID)
	return nil
}

// DeleteException removes one time-off record outright.
func (s *DefaultScheduleService) DeleteException(ctx context.Context, providerID, exceptionID string) error {
	if err := s.Exceptions.DeleteByID(ctx, providerID, exceptionID); err != nil {
		return persistenceFailure("delete exception "+exceptionID, err)
	}
	s.invalidateTimelines(ctx, providerID)
	return nil
}
