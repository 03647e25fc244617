package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

func lt(t *testing.T, s string) types.LocalTime {
	t.Helper()
	v, err := types.ParseLocalTime(s)
	require.NoError(t, err)
	return v
}

func ts(t *testing.T, start, end string) domain.TimeSlot {
	t.Helper()
	return domain.TimeSlot{Start: lt(t, start), End: lt(t, end)}
}

func TestGenerateSlots_Tiling(t *testing.T) {
	windows := []struct {
		start, end string
		duration   time.Duration
		wantCount  int
	}{
		{"09:00", "12:00", 30 * time.Minute, 6},
		{"09:00", "10:45", 30 * time.Minute, 3},
		{"08:15", "17:40", 45 * time.Minute, 12},
		{"00:00", "24:00", time.Hour, 24},
		{"09:00", "09:20", 30 * time.Minute, 0},
	}

	for _, w := range windows {
		start, end := lt(t, w.start), lt(t, w.end)
		slots := GenerateSlots(start, end, w.duration)

		require.Len(t, slots, w.wantCount, "%s-%s", w.start, w.end)
		for i, s := range slots {
			assert.Equal(t, w.duration, s.Duration(), "slot %d has wrong length", i)
			assert.False(t, s.Start.Before(start))
			assert.False(t, s.End.After(end), "slot %d exceeds window", i)
			if i > 0 {
				assert.Equal(t, slots[i-1].End, s.Start, "slots must be contiguous")
			}
		}
	}
}

func TestGenerateSlots_NoDegenerateTrailingSlot(t *testing.T) {
	slots := GenerateSlots(lt(t, "09:00"), lt(t, "10:00"), 30*time.Minute)

	require.Len(t, slots, 2)
	assert.Equal(t, "09:30", slots[1].Start.String())
	assert.Equal(t, "10:00", slots[1].End.String())
	for _, s := range slots {
		assert.NotEqual(t, "10:00", s.Start.String(), "no slot may start at the window end")
	}
}

func TestGenerateSlots_EmptyAndMalformed(t *testing.T) {
	assert.Empty(t, GenerateSlots(lt(t, "10:00"), lt(t, "10:00"), 30*time.Minute))
	assert.Empty(t, GenerateSlots(lt(t, "12:00"), lt(t, "09:00"), 30*time.Minute))
	assert.Empty(t, GenerateSlots(lt(t, "09:00"), lt(t, "12:00"), 0))
	assert.Empty(t, GenerateSlots(lt(t, "09:00"), lt(t, "12:00"), -time.Minute))
	assert.NotNil(t, GenerateSlots(lt(t, "12:00"), lt(t, "09:00"), 30*time.Minute))
}

func TestGenerateSlots_Idempotent(t *testing.T) {
	first := GenerateSlots(lt(t, "09:00"), lt(t, "18:00"), 30*time.Minute)
	second := GenerateSlots(lt(t, "09:00"), lt(t, "18:00"), 30*time.Minute)

	assert.Equal(t, first, second)
}

func TestIsOccupied(t *testing.T) {
	slot := ts(t, "11:30", "12:00")

	tests := []struct {
		name     string
		occupied []domain.TimeSlot
		want     bool
	}{
		{"no bookings", nil, false},
		{"partial left", []domain.TimeSlot{ts(t, "11:20", "11:40")}, true},
		{"partial right", []domain.TimeSlot{ts(t, "11:50", "12:20")}, true},
		{"booking inside slot", []domain.TimeSlot{ts(t, "11:40", "11:50")}, true},
		{"slot inside booking", []domain.TimeSlot{ts(t, "11:00", "13:00")}, true},
		{"exact match", []domain.TimeSlot{ts(t, "11:30", "12:00")}, true},
		{"ends at slot start", []domain.TimeSlot{ts(t, "11:00", "11:30")}, false},
		{"starts at slot end", []domain.TimeSlot{ts(t, "12:00", "12:30")}, false},
		{"second booking overlaps", []domain.TimeSlot{ts(t, "09:00", "10:00"), ts(t, "11:45", "11:55")}, true},
		{"all disjoint", []domain.TimeSlot{ts(t, "09:00", "10:00"), ts(t, "13:00", "14:00")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOccupied(slot, tt.occupied))
		})
	}
}

func TestBuildDayGrid_Scenario(t *testing.T) {
	day := domain.DaySchedule{
		Available: []domain.TimeSlot{ts(t, "09:00", "12:00")},
		Occupied:  []domain.TimeSlot{ts(t, "10:00", "10:30")},
	}

	grid := BuildDayGrid(day, 30*time.Minute)

	want := []struct {
		slot     string
		occupied bool
	}{
		{"09:00-09:30", false},
		{"09:30-10:00", false},
		{"10:00-10:30", true},
		{"10:30-11:00", false},
		{"11:00-11:30", false},
		{"11:30-12:00", false},
	}
	require.Len(t, grid, len(want))
	for i, w := range want {
		assert.Equal(t, w.slot, grid[i].String())
		assert.Equal(t, w.occupied, grid[i].IsOccupied, w.slot)
	}
}

func TestBuildDayGrid_MultipleWindowsAndMalformed(t *testing.T) {
	day := domain.DaySchedule{
		Available: []domain.TimeSlot{
			ts(t, "09:00", "10:00"),
			ts(t, "12:00", "11:00"), // некорректное окно пропускается
			ts(t, "14:00", "15:00"),
		},
		Occupied: []domain.TimeSlot{ts(t, "14:15", "14:45")},
	}

	grid := BuildDayGrid(day, 30*time.Minute)

	require.Len(t, grid, 4)
	assert.Equal(t, "14:00-14:30", grid[2].String())
	assert.True(t, grid[2].IsOccupied)
	assert.True(t, grid[3].IsOccupied)
	assert.False(t, grid[0].IsOccupied)
}

func TestBuildDayGrid_NoAvailability(t *testing.T) {
	grid := BuildDayGrid(domain.DaySchedule{}, 30*time.Minute)
	assert.NotNil(t, grid)
	assert.Empty(t, grid)
}
