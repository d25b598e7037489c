package schedule

// Interval is a half-open [Start, End) span, minutes from midnight.
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Overlaps reports whether two half-open intervals intersect. Touching
// endpoints (aEnd == bStart) do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// Overlaps reports whether iv intersects other.
func (iv Interval) Overlaps(other Interval) bool {
	return Overlaps(iv.Start, iv.End, other.Start, other.End)
}

// Contains reports whether iv fully covers other.
func (iv Interval) Contains(other Interval) bool {
	return iv.Start <= other.Start && other.End <= iv.End
}

// Merge returns the smallest interval containing both inputs.
func Merge(aStart, aEnd, bStart, bEnd int) (int, int) {
	start := aStart
	if bStart < start {
		start = bStart
	}
	end := aEnd
	if bEnd > end {
		end = bEnd
	}
	return start, end
}

// SplitAround cuts base into the segments not covered by any blocker.
// Blockers must be sorted by start; they may overlap each other, cover base
// partially or fully, or touch it exactly. An empty blocker list returns
// base itself as the single segment.
func SplitAround(base Interval, blockers []Interval) []Interval {
	var segments []Interval
	cursor := base.Start

	for _, b := range blockers {
		if cursor >= base.End {
			break
		}
		if b.Start > cursor {
			end := b.Start
			if end > base.End {
				end = base.End
			}
			segments = append(segments, Interval{Start: cursor, End: end})
		}
		if b.End > cursor {
			cursor = b.End
		}
	}

	if cursor < base.End {
		segments = append(segments, Interval{Start: cursor, End: base.End})
	}
	return segments
}
