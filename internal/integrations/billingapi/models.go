package billingapi

import (
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// SubscriptionRequest тело PUT /users/{userId}/subscription
type SubscriptionRequest struct {
	Active     bool      `json:"active"`
	Type       string    `json:"type"`
	StartDate  time.Time `json:"startDate"`
	FinishDate time.Time `json:"finishDate"`
}

// PaymentRequest тело POST /payments
type PaymentRequest struct {
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	AppointmentID string  `json:"appointmentId"`
	CustomerEmail string  `json:"customerEmail"`
}

// FromSubscription конвертирует domain модель в тело запроса
func FromSubscription(s domain.Subscription) *SubscriptionRequest {
	return &SubscriptionRequest{
		Active:     s.Active,
		Type:       s.Type,
		StartDate:  s.StartDate,
		FinishDate: s.FinishDate,
	}
}

// FromPaymentRecord конвертирует domain модель в тело запроса
func FromPaymentRecord(p domain.PaymentRecord) *PaymentRequest {
	return &PaymentRequest{
		Amount:        p.Amount,
		PaymentMethod: p.PaymentMethod,
		AppointmentID: p.AppointmentID,
		CustomerEmail: p.CustomerEmail,
	}
}
