package availability

import (
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// GenerateSlots разбивает окно [windowStart, windowEnd) на слоты фиксированной длительности.
// Слот добавляется только если целиком помещается в окно: хвост короче slotDuration отбрасывается,
// вырожденный слот на самой границе windowEnd не создается.
// Некорректное окно (start >= end) или slotDuration <= 0 дают пустой результат.
func GenerateSlots(windowStart, windowEnd types.LocalTime, slotDuration time.Duration) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0)
	if slotDuration < time.Second || !windowStart.Before(windowEnd) {
		return slots
	}

	for cursor := windowStart; !cursor.Add(slotDuration).After(windowEnd); cursor = cursor.Add(slotDuration) {
		slots = append(slots, domain.TimeSlot{
			Start: cursor,
			End:   cursor.Add(slotDuration),
		})
	}

	return slots
}

// IsOccupied проверяет, пересекается ли слот хотя бы с одним занятым интервалом.
// Интервалы полуоткрытые: слот 11:30-12:00 и бронирование 11:00-11:30 НЕ пересекаются,
// а бронирование 11:40-11:50 внутри слота или 11:00-13:00 вокруг слота - пересекаются.
func IsOccupied(slot domain.TimeSlot, occupied []domain.TimeSlot) bool {
	for _, busy := range occupied {
		if slot.Overlaps(busy) {
			return true
		}
	}
	return false
}

// BuildDayGrid строит сетку слотов дня по всем окнам доступности и помечает занятые.
// Окна обрабатываются в порядке, пришедшем из API; некорректные окна пропускаются.
func BuildDayGrid(day domain.DaySchedule, slotDuration time.Duration) []domain.GridSlot {
	grid := make([]domain.GridSlot, 0)

	for _, window := range day.Available {
		if !window.IsValid() {
			continue
		}
		for _, slot := range GenerateSlots(window.Start, window.End, slotDuration) {
			grid = append(grid, domain.GridSlot{
				TimeSlot:   slot,
				IsOccupied: IsOccupied(slot, day.Occupied),
			})
		}
	}

	return grid
}
