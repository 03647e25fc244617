package availability

import (
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// WeekGrid сетка слотов на отображаемую неделю
type WeekGrid struct {
	WorkerID  int64
	WeekStart time.Time
	WeekEnd   time.Time
	Available bool // false - расписание не загружено или недоступно
	Days      []DayGrid
}

// DayGrid слоты одного дня
type DayGrid struct {
	Weekday time.Weekday
	Date    time.Time
	Slots   []domain.GridSlot
}

// Selection идентификаторы, которые UI передает вместе с выбранным слотом
type Selection struct {
	SiteID    int64
	ServiceID int64
	ClientID  int64
}
