package process_payment_event

import (
	"github.com/goccy/go-json"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// Request входящая доставка вебхука: заголовки подписи и сырое тело
type Request struct {
	Timestamp      string
	Nonce          string
	TransmissionID string
	Signature      string
	Body           []byte
}

// Response результат обработки проверенного события
type Response struct {
	Outcome   domain.PaymentOutcome
	Kind      domain.PaymentKind
	Reference string
}

// eventPayload конверт события платежного шлюза.
// data разбирается только для transaction.updated: у остальных событий
// (например nequi_token.updated) в data другие поля.
type eventPayload struct {
	Event  string          `json:"event" validate:"required"`
	Data   json.RawMessage `json:"data" validate:"-"`
	SentAt string          `json:"sent_at"`
}

type transactionData struct {
	Transaction *transactionPayload `json:"transaction"`
}

type transactionPayload struct {
	ID                string `json:"id"`
	Reference         string `json:"reference" validate:"required"`
	Status            string `json:"status" validate:"required"`
	AmountInCents     int64  `json:"amount_in_cents" validate:"gte=0"`
	PaymentMethodType string `json:"payment_method_type"`
	CustomerEmail     string `json:"customer_email"` // передается как есть, на маршрутизацию не влияет
}

// toDomain конвертирует DTO в доменную транзакцию
func (t *transactionPayload) toDomain() domain.Transaction {
	return domain.Transaction{
		Reference:         t.Reference,
		Status:            t.Status,
		AmountInCents:     t.AmountInCents,
		PaymentMethodType: t.PaymentMethodType,
		CustomerEmail:     t.CustomerEmail,
	}
}
