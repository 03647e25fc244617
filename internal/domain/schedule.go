package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

var (
	// ErrUnknownWeekday returned when a weekday name cannot be resolved
	ErrUnknownWeekday = errors.New("unknown weekday name")

	// ErrDuplicateWeekday returned when two schedule keys name the same weekday
	ErrDuplicateWeekday = errors.New("duplicate weekday in schedule")
)

// DaySchedule holds the declared working windows and the already booked intervals of one day
type DaySchedule struct {
	Available []TimeSlot
	Occupied  []TimeSlot
}

// WeeklySchedule represents a worker's availability for one displayed week.
// Schedule is keyed by weekday name as returned by the agenda API.
type WeeklySchedule struct {
	WorkerID  int64
	WeekStart time.Time
	WeekEnd   time.Time
	Schedule  map[string]DaySchedule
}

// Day returns the schedule of the given weekday. Canonical keys are looked up directly;
// other spellings are matched in sorted key order so the result does not depend on map iteration.
func (w *WeeklySchedule) Day(weekday time.Weekday) (DaySchedule, bool) {
	if day, ok := w.Schedule[WeekdayName(weekday)]; ok {
		return day, true
	}

	names := make([]string, 0, len(w.Schedule))
	for name := range w.Schedule {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		parsed, err := ParseWeekday(name)
		if err == nil && parsed == weekday {
			return w.Schedule[name], true
		}
	}
	return DaySchedule{}, false
}

// NormalizeSchedule rekeys a schedule by canonical English weekday names.
// Unrecognised keys are dropped; two keys naming the same weekday are an error.
func NormalizeSchedule(schedule map[string]DaySchedule) (map[string]DaySchedule, error) {
	result := make(map[string]DaySchedule, len(schedule))
	for name, day := range schedule {
		weekday, err := ParseWeekday(name)
		if err != nil {
			continue
		}
		key := WeekdayName(weekday)
		if _, exists := result[key]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateWeekday, key)
		}
		result[key] = day
	}
	return result, nil
}

// DateOf resolves the absolute calendar date of weekday inside the week starting at WeekStart
func (w *WeeklySchedule) DateOf(weekday time.Weekday) time.Time {
	return DateInWeek(w.WeekStart, weekday)
}

// DateInWeek returns the first date on or after weekStart that falls on weekday
func DateInWeek(weekStart time.Time, weekday time.Weekday) time.Time {
	offset := (int(weekday) - int(weekStart.Weekday()) + 7) % 7
	y, m, d := weekStart.Date()
	return time.Date(y, m, d+offset, 0, 0, 0, 0, weekStart.Location())
}

var accentReplacer = strings.NewReplacer("á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u")

var weekdayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
	"lunes":     time.Monday,
	"martes":    time.Tuesday,
	"miercoles": time.Wednesday,
	"jueves":    time.Thursday,
	"viernes":   time.Friday,
	"sabado":    time.Saturday,
	"domingo":   time.Sunday,
}

// ParseWeekday resolves English or Spanish weekday names, case- and accent-insensitive
func ParseWeekday(name string) (time.Weekday, error) {
	key := accentReplacer.Replace(strings.ToLower(strings.TrimSpace(name)))
	if weekday, ok := weekdayNames[key]; ok {
		return weekday, nil
	}
	return time.Sunday, fmt.Errorf("%w: %q", ErrUnknownWeekday, name)
}

// WeekdayName returns the canonical lower-case English name of weekday
func WeekdayName(weekday time.Weekday) string {
	return strings.ToLower(weekday.String())
}
