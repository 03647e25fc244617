package weekly_calendar

import (
	"context"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/internal/integrations/agendaapi"
)

// ScheduleProvider источник недельных расписаний работников
type ScheduleProvider interface {
	GetWeeklySchedule(ctx context.Context, q agendaapi.ScheduleQuery) (*domain.WeeklySchedule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
