package list_payment_events

import (
	"context"

	"github.com/m04kA/SMC-SalonBookingService/internal/service/payment_events/models"
)

type PaymentEventService interface {
	List(ctx context.Context, req *models.ListRequest) (*models.PaymentEventListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
