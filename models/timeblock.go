package models

// TimeBlock kinds, in tie-break priority order: when two blocks share a
// start minute, time off sorts before availability, availability before
// appointments.
const (
	BlockTimeOff      = "time_off"
	BlockAvailability = "availability"
	BlockAppointment  = "appointment"
)

// TimeBlock is one typed interval in a resolved daily timeline. Blocks are
// computed per date and never persisted. SourceID points at the
// AvailabilitySlot, Exception or Appointment the block was derived from.
// OriginalStart/OriginalEnd are set only on split fragments and preserve
// the pre-split interval.
type TimeBlock struct {
	ID            string `json:"id"`
	Kind          string `json:"kind"`
	Start         int    `json:"start"`
	End           int    `json:"end"`
	Reason        string `json:"reason,omitempty"`
	ClientName    string `json:"clientName,omitempty"`
	SourceID      string `json:"sourceId"`
	AllDay        bool   `json:"allDay,omitempty"`
	OriginalStart *int   `json:"originalStart,omitempty"`
	OriginalEnd   *int   `json:"originalEnd,omitempty"`
}
