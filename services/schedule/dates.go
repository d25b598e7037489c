package schedule

import (
	"fmt"
	"time"

	"slotgrid/utils"
)

// weekdayOf returns the weekday (0 = Sunday) of a "2006-01-02" date.
func weekdayOf(date string) (int, error) {
	t, err := time.Parse(utils.DateLayout, date)
	if err != nil {
		return 0, ErrInvalidDate(date)
	}
	return int(t.Weekday()), nil
}

// activeOn applies the activation-date cutoff for recurring records: a
// record never appears on past dates that precede its creation day, but
// today and future dates always match. Dates in "2006-01-02" form compare
// correctly as strings.
func activeOn(createdAt time.Time, date, today string) bool {
	if date >= today {
		return true
	}
	return createdAt.Format(utils.DateLayout) < date
}

// minuteOfDay converts an absolute time to minutes from midnight on the
// given date. Times that spill past midnight clamp to the end of the day.
func minuteOfDay(t time.Time, date string) int {
	day := t.Format(utils.DateLayout)
	if day > date {
		return utils.MinutesPerDay
	}
	if day < date {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}

// blockID derives a stable identifier for a computed block, so resolving
// the same inputs twice yields identical output.
func blockID(sourceID string, iv Interval) string {
	return fmt.Sprintf("%s:%04d-%04d", sourceID, iv.Start, iv.End)
}
