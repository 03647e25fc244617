package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/internal/integrations/agendaapi"
)

// ScheduleProvider источник недельных расписаний работников
type ScheduleProvider interface {
	GetWeeklySchedule(ctx context.Context, q agendaapi.ScheduleQuery) (*domain.WeeklySchedule, error)
}

// AppointmentWriter отправляет запись во внешний бэкенд
type AppointmentWriter interface {
	CreateAppointment(ctx context.Context, draft *domain.AppointmentDraft) (*domain.Appointment, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
