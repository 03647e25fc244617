package process_payment_event

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// BillingClient внешний бэкенд подписок и платежей
type BillingClient interface {
	ActivateSubscription(ctx context.Context, userID string, sub domain.Subscription) error
	RecordPayment(ctx context.Context, record domain.PaymentRecord) error
}

// Deduplicator отмечает доставку вебхука; first=false означает повторную доставку
type Deduplicator interface {
	MarkDelivered(ctx context.Context, transmissionID string) (first bool, err error)
}

// EventJournal журнал проверенных платежных событий
type EventJournal interface {
	Create(ctx context.Context, event *domain.PaymentEvent) (*domain.PaymentEvent, error)
}

// OutcomeRecorder учет исходов обработки в метриках
type OutcomeRecorder interface {
	ObserveWebhookEvent(kind, outcome string)
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
