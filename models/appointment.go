package models

import "time"

// Appointment statuses produced by the booking subsystem. The timeline
// engine only reads them; cancelled appointments never reach a timeline.
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
	AppointmentNoShow    = "no_show"
)

// Appointment is a booked visit, owned by the external booking subsystem
// and read-only to this service. Times are absolute, not minute-of-day.
type Appointment struct {
	ID         string    `bson:"id" json:"id"`
	ProviderID string    `bson:"provider_id" json:"providerId"`
	StartTime  time.Time `bson:"start_time" json:"startTime"`
	EndTime    time.Time `bson:"end_time" json:"endTime"`
	Status     string    `bson:"status" json:"status"`
	ClientName string    `bson:"client_name,omitempty" json:"clientName,omitempty"`
}
