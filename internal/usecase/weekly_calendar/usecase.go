package weekly_calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/internal/integrations/agendaapi"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/availability"
)

// UseCase use case для получения недельной сетки слотов работника
type UseCase struct {
	provider     ScheduleProvider
	slotDuration time.Duration
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(provider ScheduleProvider, slotDuration time.Duration, logger Logger) *UseCase {
	return &UseCase{
		provider:     provider,
		slotDuration: slotDuration,
		logger:       logger,
	}
}

// Execute загружает расписание недели и строит сетку слотов.
// Недоступное расписание не ошибка: возвращается пустая сетка с ScheduleAvailable=false.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("WeeklyCalendar: worker=%d, week_start=%s", req.WorkerID, req.WeekStart.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("WeeklyCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем расписание в календарь
	cal := availability.NewCalendar(uc.provider, uc.slotDuration, uc.logger)
	defer cal.Dispose()

	query := agendaapi.ScheduleQuery{
		WorkerID:  req.WorkerID,
		WeekStart: req.WeekStart,
		SiteID:    req.SiteID,
		ServiceID: req.ServiceID,
	}
	if err := cal.Load(ctx, query); err != nil {
		uc.logger.Warn("WeeklyCalendar: showing placeholder for worker=%d: %v", req.WorkerID, err)
	}

	// 3. Строим сетку
	grid := cal.Grid()
	resp := &Response{
		WorkerID:          req.WorkerID,
		WeekStart:         req.WeekStart,
		WeekEnd:           req.WeekStart.AddDate(0, 0, 6),
		ScheduleAvailable: grid.Available,
		Days:              make([]Day, 0, len(grid.Days)),
	}
	if grid.Available && !grid.WeekEnd.IsZero() {
		resp.WeekEnd = grid.WeekEnd
	}

	total := 0
	for _, d := range grid.Days {
		slots := make([]Slot, 0, len(d.Slots))
		for _, s := range d.Slots {
			slots = append(slots, Slot{Start: s.Start, End: s.End, IsOccupied: s.IsOccupied})
		}
		total += len(slots)
		resp.Days = append(resp.Days, Day{Weekday: d.Weekday, Date: d.Date, Slots: slots})
	}

	uc.logger.Info("WeeklyCalendar: generated %d slots for worker=%d, available=%t", total, req.WorkerID, grid.Available)
	return resp, nil
}
