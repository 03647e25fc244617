package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// TimeSlot represents a half-open interval [Start, End) within a single day, in the venue's local time
type TimeSlot struct {
	Start types.LocalTime
	End   types.LocalTime
}

// IsValid returns true if the slot is non-empty and lies within a day
func (s TimeSlot) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid() && s.Start.Before(s.End)
}

// Duration returns the slot length
func (s TimeSlot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Overlaps reports whether two half-open intervals share any instant.
// [a0,a1) and [b0,b1) overlap iff a0 < b1 && b0 < a1, so touching boundaries do not overlap
// and containment in either direction does.
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	return s.Start.Before(other.End) && other.Start.Before(s.End)
}

func (s TimeSlot) String() string {
	return s.Start.String() + "-" + s.End.String()
}

// GridSlot is a generated fixed-size slot flagged free or occupied
type GridSlot struct {
	TimeSlot
	IsOccupied bool
}
