package payment_webhook

import (
	"net/http"

	processPaymentEvent "github.com/m04kA/SMC-SalonBookingService/internal/usecase/process_payment_event"
)

// HeaderNames имена заголовков подписи, которые использует платежный провайдер
type HeaderNames struct {
	Timestamp      string
	Nonce          string
	TransmissionID string
	Signature      string
}

// ToUseCaseRequest собирает запрос use case из заголовков и сырого тела
func ToUseCaseRequest(h http.Header, names HeaderNames, body []byte) *processPaymentEvent.Request {
	return &processPaymentEvent.Request{
		Timestamp:      h.Get(names.Timestamp),
		Nonce:          h.Get(names.Nonce),
		TransmissionID: h.Get(names.TransmissionID),
		Signature:      h.Get(names.Signature),
		Body:           body,
	}
}
