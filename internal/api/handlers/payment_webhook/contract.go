package payment_webhook

import (
	"context"

	processPaymentEvent "github.com/m04kA/SMC-SalonBookingService/internal/usecase/process_payment_event"
)

type ProcessPaymentEventUseCase interface {
	Execute(ctx context.Context, req *processPaymentEvent.Request) (*processPaymentEvent.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
