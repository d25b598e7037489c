package schedule

import "slotgrid/models"

// SlotWritePlan is a pure resolution plan for an availability conflict:
// delete every listed record, then insert the one record. Execution is the
// store's job; deletes must complete before the insert begins so the new
// record is never checked against a record it supersedes.
type SlotWritePlan struct {
	ToDelete []string                `json:"toDelete"`
	ToInsert models.AvailabilitySlot `json:"toInsert"`
}

// ExceptionWritePlan mirrors SlotWritePlan for time-off records.
type ExceptionWritePlan struct {
	ToDelete []string         `json:"toDelete"`
	ToInsert models.Exception `json:"toInsert"`
}

// BuildSlotReplacePlan keeps the proposal verbatim and removes every
// overlapping record whole; records are never partially deleted.
func BuildSlotReplacePlan(c SlotConflict, proposed models.AvailabilitySlot) SlotWritePlan {
	return SlotWritePlan{
		ToDelete: slotIDs(c.Overlapping),
		ToInsert: proposed,
	}
}

// BuildSlotMergePlan removes every overlapping record and inserts a single
// record spanning the merge candidate.
func BuildSlotMergePlan(c SlotConflict, proposed models.AvailabilitySlot) SlotWritePlan {
	merged := proposed
	merged.Start = c.MergeCandidate.Start
	merged.End = c.MergeCandidate.End
	return SlotWritePlan{
		ToDelete: slotIDs(c.Overlapping),
		ToInsert: merged,
	}
}

// BuildExceptionReplacePlan keeps the proposal verbatim and removes every
// overlapping record whole.
func BuildExceptionReplacePlan(c ExceptionConflict, proposed models.Exception) ExceptionWritePlan {
	return ExceptionWritePlan{
		ToDelete: exceptionIDs(c.Overlapping),
		ToInsert: proposed,
	}
}

// BuildExceptionMergePlan removes every overlapping record and inserts a
// single record spanning the merge candidate.
func BuildExceptionMergePlan(c ExceptionConflict, proposed models.Exception) ExceptionWritePlan {
	merged := proposed
	merged.Start = c.MergeCandidate.Start
	merged.End = c.MergeCandidate.End
	return ExceptionWritePlan{
		ToDelete: exceptionIDs(c.Overlapping),
		ToInsert: merged,
	}
}

func slotIDs(slots []models.AvailabilitySlot) []string {
	ids := make([]string, len(slots))
	for i, s := range slots {
		ids[i] = s.ID
	}
	return ids
}

func exceptionIDs(exceptions []models.Exception) []string {
	ids := make([]string, len(exceptions))
	for i, e := range exceptions {
		ids[i] = e.ID
	}
	return ids
}
