package models

import (
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// ListRequest запрос журнала платежных событий
type ListRequest struct {
	Kind      *string    // SUB | SRV (опционально)
	Outcome   *string    // Исход обработки (опционально)
	Reference *string    // Точная ссылка транзакции (опционально)
	From      *time.Time // Начало периода включительно (опционально)
	To        *time.Time // Конец периода не включительно (опционально)
	Limit     int        // 0 - значение по умолчанию
}

// PaymentEventResponse запись журнала
type PaymentEventResponse struct {
	ID                string    `json:"id"`
	TransmissionID    string    `json:"transmissionId"`
	Event             string    `json:"event"`
	TransactionStatus string    `json:"transactionStatus"`
	Reference         string    `json:"reference"`
	Kind              string    `json:"kind,omitempty"`
	UserID            string    `json:"userId,omitempty"`
	ItemID            string    `json:"itemId,omitempty"`
	AmountInCents     int64     `json:"amountInCents"`
	Outcome           string    `json:"outcome"`
	Error             *string   `json:"error,omitempty"`
	ReceivedAt        time.Time `json:"receivedAt"`
}

// PaymentEventListResponse список записей журнала
type PaymentEventListResponse struct {
	Events []PaymentEventResponse `json:"events"`
	Total  int                    `json:"total"`
}

// FromDomainPaymentEvent конвертирует доменную запись в модель ответа
func FromDomainPaymentEvent(e *domain.PaymentEvent) PaymentEventResponse {
	return PaymentEventResponse{
		ID:                e.ID,
		TransmissionID:    e.TransmissionID,
		Event:             e.Event,
		TransactionStatus: e.TransactionStatus,
		Reference:         e.Reference,
		Kind:              string(e.Kind),
		UserID:            e.UserID,
		ItemID:            e.ItemID,
		AmountInCents:     e.AmountInCents,
		Outcome:           string(e.Outcome),
		Error:             e.Error,
		ReceivedAt:        e.ReceivedAt,
	}
}
