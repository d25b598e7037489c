package schedule

import (
	"sort"

	"slotgrid/models"
	"slotgrid/utils"
)

// excCandidate is an exception that applies to the target date, with its
// effective interval already computed.
type excCandidate struct {
	exc     models.Exception
	iv      Interval
	oneTime bool
}

// effectiveInterval returns the minutes an exception actually blocks.
// All-day exceptions span the whole day regardless of stored times.
func effectiveInterval(e models.Exception) Interval {
	if e.AllDay {
		return Interval{Start: 0, End: utils.MinutesPerDay}
	}
	return Interval{Start: e.Start, End: e.End}
}

// ResolveExceptions computes the time-off blocks in force on one date.
//
// One-time (date-range) exceptions take precedence over recurring ones:
// candidates are processed one-time first, then by start ascending. A
// one-time exception is always accepted whole. A recurring exception fully
// covered by an already-accepted block contributes nothing and is dropped;
// one that partially overlaps is split around the accepted blocks and only
// its uncovered fragments survive, each keeping the original interval for
// traceability.
func ResolveExceptions(exceptions []models.Exception, date string, weekday int, today string) []models.TimeBlock {
	var candidates []excCandidate
	for _, e := range exceptions {
		if e.IsRecurring() {
			if *e.DayOfWeek == weekday && activeOn(e.CreatedAt, date, today) {
				candidates = append(candidates, excCandidate{exc: e, iv: effectiveInterval(e)})
			}
			continue
		}
		if e.StartDate <= date && date <= e.EndDate {
			candidates = append(candidates, excCandidate{exc: e, iv: effectiveInterval(e), oneTime: true})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].oneTime != candidates[j].oneTime {
			return candidates[i].oneTime
		}
		return candidates[i].iv.Start < candidates[j].iv.Start
	})

	var accepted []models.TimeBlock
	for _, c := range candidates {
		var overlapping []Interval
		covered := false
		for _, b := range accepted {
			biv := Interval{Start: b.Start, End: b.End}
			if !biv.Overlaps(c.iv) {
				continue
			}
			overlapping = append(overlapping, biv)
			if biv.Contains(c.iv) {
				covered = true
			}
		}

		switch {
		case len(overlapping) == 0 || c.oneTime:
			accepted = append(accepted, timeOffBlock(c.exc, c.iv, nil))
		case covered:
			// Nothing left of this recurring exception.
		default:
			sort.Slice(overlapping, func(i, j int) bool {
				return overlapping[i].Start < overlapping[j].Start
			})
			original := c.iv
			for _, seg := range SplitAround(c.iv, overlapping) {
				accepted = append(accepted, timeOffBlock(c.exc, seg, &original))
			}
		}
	}
	return accepted
}

// timeOffBlock builds a TimeOff block from its source exception. original
// is non-nil only for split fragments.
func timeOffBlock(e models.Exception, iv Interval, original *Interval) models.TimeBlock {
	b := models.TimeBlock{
		ID:       blockID(e.ID, iv),
		Kind:     models.BlockTimeOff,
		Start:    iv.Start,
		End:      iv.End,
		Reason:   e.Reason,
		SourceID: e.ID,
		AllDay:   e.AllDay,
	}
	if original != nil && *original != iv {
		b.OriginalStart = &original.Start
		b.OriginalEnd = &original.End
	}
	return b
}
