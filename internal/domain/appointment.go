package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// AppointmentDraft is built when a client selects a free slot; it becomes the booking request
// sent to the agenda API
type AppointmentDraft struct {
	Date      time.Time
	Time      types.LocalTime
	WorkerID  int64
	SiteID    int64
	ServiceID int64
	ClientID  int64
}

// StartsAt returns the absolute start of the appointment. Date and Time are the venue's wall clock,
// so they are placed in the venue location; nil means UTC.
func (d *AppointmentDraft) StartsAt(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, day := d.Date.Date()
	return d.Time.On(time.Date(y, m, day, 0, 0, 0, 0, loc))
}

// Appointment is the booking as acknowledged by the agenda API
type Appointment struct {
	ID        int64
	Status    string
	CreatedAt time.Time
	AppointmentDraft
}
