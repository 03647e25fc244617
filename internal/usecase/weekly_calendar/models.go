package weekly_calendar

import (
	"time"

	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// Request модель запроса недельной сетки слотов
type Request struct {
	WorkerID  int64     // ID работника
	WeekStart time.Time // Первый день отображаемой недели (без времени)
	SiteID    *int64    // Фильтр по филиалу (опционально)
	ServiceID *int64    // Фильтр по услуге (опционально)
}

// Response недельная сетка слотов
type Response struct {
	WorkerID          int64
	WeekStart         time.Time
	WeekEnd           time.Time
	ScheduleAvailable bool // false - расписание получить не удалось, Days пустой
	Days              []Day
}

// Day слоты одного дня недели
type Day struct {
	Weekday time.Weekday
	Date    time.Time
	Slots   []Slot
}

// Slot временной слот сетки
type Slot struct {
	Start      types.LocalTime
	End        types.LocalTime
	IsOccupied bool
}
