package get_weekly_calendar

import (
	"context"

	weeklyCalendar "github.com/m04kA/SMC-SalonBookingService/internal/usecase/weekly_calendar"
)

type WeeklyCalendarUseCase interface {
	Execute(ctx context.Context, req *weeklyCalendar.Request) (*weeklyCalendar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
