package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrMalformedReference returned when a transaction reference is not <KIND>_<userId>_<itemId>_<originalReference>
	ErrMalformedReference = errors.New("malformed payment reference")
)

// PaymentKind discriminates which downstream update an approved payment triggers
type PaymentKind string

const (
	KindSubscription PaymentKind = "SUB"
	KindService      PaymentKind = "SRV"
)

// IsKnown returns true for kinds that have a routing target
func (k PaymentKind) IsKnown() bool {
	return k == KindSubscription || k == KindService
}

const (
	referenceSeparator = "_"
	referenceParts     = 4
)

// PaymentReference is the business intent encoded in the provider transaction reference
type PaymentReference struct {
	Kind              PaymentKind
	UserID            string
	ItemID            string
	OriginalReference string
}

// ParsePaymentReference splits a reference into exactly four non-empty parts.
// Underscores are not escaped, so an original reference that itself contains "_" is rejected.
func ParsePaymentReference(reference string) (PaymentReference, error) {
	parts := strings.Split(reference, referenceSeparator)
	if len(parts) != referenceParts {
		return PaymentReference{}, fmt.Errorf("%w: expected %d parts, got %d in %q",
			ErrMalformedReference, referenceParts, len(parts), reference)
	}
	for i, p := range parts {
		if p == "" {
			return PaymentReference{}, fmt.Errorf("%w: empty part %d in %q", ErrMalformedReference, i, reference)
		}
	}

	return PaymentReference{
		Kind:              PaymentKind(parts[0]),
		UserID:            parts[1],
		ItemID:            parts[2],
		OriginalReference: parts[3],
	}, nil
}

// String builds the reference back in wire format
func (r PaymentReference) String() string {
	return strings.Join([]string{string(r.Kind), r.UserID, r.ItemID, r.OriginalReference}, referenceSeparator)
}

// Subscription activation sent to the billing API
type Subscription struct {
	Active     bool
	Type       string
	StartDate  time.Time
	FinishDate time.Time
}

// NewSubscription activates plan from now: one month for the trial plan, one year otherwise
func NewSubscription(plan string, now time.Time) Subscription {
	finish := now.AddDate(1, 0, 0)
	if plan == TrialPlan {
		finish = now.AddDate(0, 1, 0)
	}
	return Subscription{
		Active:     true,
		Type:       plan,
		StartDate:  now,
		FinishDate: finish,
	}
}

// PaymentRecord of a paid service appointment sent to the billing API
type PaymentRecord struct {
	Amount        float64
	PaymentMethod string
	AppointmentID string
	CustomerEmail string
}

// AmountFromCents converts provider minor units to the currency amount
func AmountFromCents(cents int64) float64 {
	return float64(cents) / 100
}

// WebhookSignatureContext holds everything needed to authenticate one webhook delivery
type WebhookSignatureContext struct {
	Timestamp         string
	Nonce             string
	TransmissionID    string
	RawEventBody      []byte
	ProvidedSignature string
	SharedSecret      string
}

// WebhookEvent is the decoded payment provider event
type WebhookEvent struct {
	Event       string
	Transaction Transaction
}

// Transaction part of a provider event
type Transaction struct {
	Reference         string
	Status            string
	AmountInCents     int64
	PaymentMethodType string
	CustomerEmail     string
}

// IsRoutable returns true only for approved transaction updates
func (e *WebhookEvent) IsRoutable() bool {
	return e.Event == EventTransactionUpdated && e.Transaction.Status == TransactionApproved
}

// PaymentOutcome result of handling a verified webhook event
type PaymentOutcome string

const (
	OutcomeRouted      PaymentOutcome = "routed"
	OutcomeIgnored     PaymentOutcome = "ignored"
	OutcomeUnknownKind PaymentOutcome = "unknown_kind"
	OutcomeMalformed   PaymentOutcome = "malformed_reference"
	OutcomeFailed      PaymentOutcome = "downstream_failed"
	OutcomeDuplicate   PaymentOutcome = "duplicate"
)

// AllOutcomes список всех исходов, используется для валидации фильтров
var AllOutcomes = []PaymentOutcome{
	OutcomeRouted,
	OutcomeIgnored,
	OutcomeUnknownKind,
	OutcomeMalformed,
	OutcomeFailed,
	OutcomeDuplicate,
}

// PaymentEvent journal entry of a verified webhook delivery
type PaymentEvent struct {
	ID                string
	TransmissionID    string
	Event             string
	TransactionStatus string
	Reference         string
	Kind              PaymentKind
	UserID            string
	ItemID            string
	AmountInCents     int64
	Outcome           PaymentOutcome
	Error             *string
	ReceivedAt        time.Time
}

// PaymentEventsFilter фильтр журнала платежных событий
type PaymentEventsFilter struct {
	Kind      *PaymentKind    // Фильтр по типу (опционально)
	Outcome   *PaymentOutcome // Фильтр по исходу (опционально)
	Reference *string         // Точное совпадение ссылки (опционально)
	From      *time.Time      // Начало периода включительно (опционально)
	To        *time.Time      // Конец периода не включительно (опционально)
	Limit     int
}
