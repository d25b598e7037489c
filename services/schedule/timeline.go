package schedule

import (
	"sort"

	"slotgrid/models"
	"slotgrid/utils"
)

// kindPriority fixes the tie-break for blocks sharing a start minute:
// time off first, then availability, then appointments.
var kindPriority = map[string]int{
	models.BlockTimeOff:      0,
	models.BlockAvailability: 1,
	models.BlockAppointment:  2,
}

// ResolveTimeline produces the canonical timeline for one date: a sorted,
// non-overlapping-per-kind sequence of typed blocks rendered from the
// provider's raw records. today ("2006-01-02") anchors the activation-date
// cutoff for recurring records.
//
// The sequence always comes back whole; callers wanting all-day exceptions
// surfaced separately partition on the AllDay flag themselves.
func ResolveTimeline(date string, slots []models.AvailabilitySlot, exceptions []models.Exception, appointments []models.Appointment, today string) ([]models.TimeBlock, error) {
	weekday, err := weekdayOf(date)
	if err != nil {
		return nil, err
	}

	avail := ResolveAvailability(slots, date, weekday, today)
	timeOff := ResolveExceptions(exceptions, date, weekday, today)

	return ComposeTimeline(date, avail, timeOff, appointments), nil
}

// ComposeTimeline merges already-resolved availability and time off with
// the date's appointments. Availability is cut around time off; time off is
// never cut by availability; appointments pass through as reported by the
// booking subsystem, minus cancellations.
func ComposeTimeline(date string, avail []models.AvailabilitySlot, timeOff []models.TimeBlock, appointments []models.Appointment) []models.TimeBlock {
	blocks := make([]models.TimeBlock, 0, len(avail)+len(timeOff)+len(appointments))

	for _, a := range avail {
		base := Interval{Start: a.Start, End: a.End}

		var blockers []Interval
		for _, t := range timeOff {
			tiv := Interval{Start: t.Start, End: t.End}
			if tiv.Overlaps(base) {
				blockers = append(blockers, tiv)
			}
		}

		if len(blockers) == 0 {
			blocks = append(blocks, availabilityBlock(a, base, nil))
			continue
		}

		sort.Slice(blockers, func(i, j int) bool {
			return blockers[i].Start < blockers[j].Start
		})
		original := base
		for _, seg := range SplitAround(base, blockers) {
			blocks = append(blocks, availabilityBlock(a, seg, &original))
		}
	}

	blocks = append(blocks, timeOff...)

	for _, ap := range appointments {
		if ap.Status == models.AppointmentCancelled {
			continue
		}
		if ap.StartTime.Format(utils.DateLayout) != date {
			continue
		}
		iv := Interval{
			Start: minuteOfDay(ap.StartTime, date),
			End:   minuteOfDay(ap.EndTime, date),
		}
		blocks = append(blocks, models.TimeBlock{
			ID:         blockID(ap.ID, iv),
			Kind:       models.BlockAppointment,
			Start:      iv.Start,
			End:        iv.End,
			ClientName: ap.ClientName,
			SourceID:   ap.ID,
		})
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		if blocks[i].Start != blocks[j].Start {
			return blocks[i].Start < blocks[j].Start
		}
		return kindPriority[blocks[i].Kind] < kindPriority[blocks[j].Kind]
	})
	return blocks
}

func availabilityBlock(a models.AvailabilitySlot, iv Interval, original *Interval) models.TimeBlock {
	b := models.TimeBlock{
		ID:       blockID(a.ID, iv),
		Kind:     models.BlockAvailability,
		Start:    iv.Start,
		End:      iv.End,
		SourceID: a.ID,
	}
	if original != nil && *original != iv {
		b.OriginalStart = &original.Start
		b.OriginalEnd = &original.End
	}
	return b
}
