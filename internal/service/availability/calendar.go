package availability

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/internal/integrations/agendaapi"
)

const daysInWeek = 7

// Calendar состояние отображаемой недели работника.
// Жизненный цикл: Load -> (Refresh)* -> Dispose. Расписание живет только в памяти и не сохраняется.
type Calendar struct {
	mu sync.RWMutex

	provider     ScheduleProvider
	slotDuration time.Duration
	logger       Logger

	query    *agendaapi.ScheduleQuery
	schedule *domain.WeeklySchedule
}

// NewCalendar создает пустой календарь
func NewCalendar(provider ScheduleProvider, slotDuration time.Duration, logger Logger) *Calendar {
	if slotDuration <= 0 {
		slotDuration = domain.DefaultSlotDuration
	}
	return &Calendar{
		provider:     provider,
		slotDuration: slotDuration,
		logger:       logger,
	}
}

// Load загружает расписание недели. При ошибке календарь переходит в состояние
// "расписание недоступно": Grid вернет Available=false, SelectSlot будет отклонять выбор.
// Повторных попыток не делается.
func (c *Calendar) Load(ctx context.Context, q agendaapi.ScheduleQuery) error {
	schedule, err := c.provider.GetWeeklySchedule(ctx, q)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.query = &q
	if err != nil {
		c.schedule = nil
		c.logger.Warn("Calendar: schedule unavailable for worker_id=%d, week_start=%s: %v",
			q.WorkerID, q.WeekStart.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: %v", ErrScheduleUnavailable, err)
	}

	c.schedule = schedule
	return nil
}

// Refresh повторно загружает ту же неделю
func (c *Calendar) Refresh(ctx context.Context) error {
	c.mu.RLock()
	query := c.query
	c.mu.RUnlock()

	if query == nil {
		return ErrScheduleNotLoaded
	}
	return c.Load(ctx, *query)
}

// Dispose сбрасывает состояние календаря
func (c *Calendar) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.query = nil
	c.schedule = nil
}

// Loaded сообщает, есть ли загруженное расписание
func (c *Calendar) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.schedule != nil
}

// Grid пересчитывает сетку слотов по загруженному расписанию.
// Дни идут подряд начиная с WeekStart; дни без расписания возвращаются с пустым списком слотов.
func (c *Calendar) Grid() WeekGrid {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.schedule == nil {
		grid := WeekGrid{Available: false, Days: []DayGrid{}}
		if c.query != nil {
			grid.WorkerID = c.query.WorkerID
			grid.WeekStart = c.query.WeekStart
			grid.WeekEnd = c.query.WeekStart.AddDate(0, 0, daysInWeek-1)
		}
		return grid
	}

	days := make([]DayGrid, 0, daysInWeek)
	for i := 0; i < daysInWeek; i++ {
		weekday := time.Weekday((int(c.schedule.WeekStart.Weekday()) + i) % daysInWeek)

		slots := make([]domain.GridSlot, 0)
		if day, ok := c.schedule.Day(weekday); ok {
			slots = BuildDayGrid(day, c.slotDuration)
		}

		days = append(days, DayGrid{
			Weekday: weekday,
			Date:    c.schedule.DateOf(weekday),
			Slots:   slots,
		})
	}

	return WeekGrid{
		WorkerID:  c.schedule.WorkerID,
		WeekStart: c.schedule.WeekStart,
		WeekEnd:   c.schedule.WeekEnd,
		Available: true,
		Days:      days,
	}
}

// SelectSlot проверяет, что слот можно забронировать, и формирует черновик записи.
// Сам по себе сетевых запросов не делает.
func (c *Calendar) SelectSlot(dayName string, slot domain.TimeSlot, sel Selection) (*domain.AppointmentDraft, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.schedule == nil {
		return nil, ErrScheduleNotLoaded
	}

	weekday, err := domain.ParseWeekday(dayName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownDay, err)
	}

	if !slot.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSlot, slot)
	}

	day, _ := c.schedule.Day(weekday)
	if !withinAvailability(slot, day.Available) {
		return nil, fmt.Errorf("%w: %s %s", ErrSlotOutsideAvailability, domain.WeekdayName(weekday), slot)
	}

	if IsOccupied(slot, day.Occupied) {
		c.logger.Info("Calendar: slot %s on %s is occupied for worker_id=%d",
			slot, domain.WeekdayName(weekday), c.schedule.WorkerID)
		return nil, ErrSlotOccupied
	}

	return &domain.AppointmentDraft{
		Date:      c.schedule.DateOf(weekday),
		Time:      slot.Start,
		WorkerID:  c.schedule.WorkerID,
		SiteID:    sel.SiteID,
		ServiceID: sel.ServiceID,
		ClientID:  sel.ClientID,
	}, nil
}

// withinAvailability проверяет, что слот целиком лежит в одном из рабочих окон
func withinAvailability(slot domain.TimeSlot, windows []domain.TimeSlot) bool {
	for _, w := range windows {
		if !slot.Start.Before(w.Start) && !slot.End.After(w.End) {
			return true
		}
	}
	return false
}
