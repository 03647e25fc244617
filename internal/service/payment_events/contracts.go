package payment_events

import (
	"context"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// EventRepository интерфейс журнала платежных событий
type EventRepository interface {
	GetWithFilter(ctx context.Context, filter domain.PaymentEventsFilter) ([]*domain.PaymentEvent, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
