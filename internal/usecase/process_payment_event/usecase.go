package process_payment_event

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/pkg/ptr"
)

// UseCase use case проверки и маршрутизации платежных вебхуков
type UseCase struct {
	billing      BillingClient
	dedup        Deduplicator
	journal      EventJournal
	recorder     OutcomeRecorder
	secret       string
	validate     *validator.Validate
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	billing BillingClient,
	dedup Deduplicator,
	journal EventJournal,
	recorder OutcomeRecorder,
	secret string,
	logger Logger,
) *UseCase {
	return &UseCase{
		billing:      billing,
		dedup:        dedup,
		journal:      journal,
		recorder:     recorder,
		secret:       secret,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute проводит доставку по цепочке: заголовки -> подпись -> событие -> маршрутизация.
// Ошибка возвращается только для отклоненных доставок и внутренних сбоев;
// сбой записи во внешний бэкенд поглощается и отражается в Outcome.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Заголовки
	if err := validateHeaders(req); err != nil {
		uc.logger.Warn("ProcessPaymentEvent: %v", err)
		return nil, err
	}

	// 2. Подпись
	err := VerifySignature(domain.WebhookSignatureContext{
		Timestamp:         req.Timestamp,
		Nonce:             req.Nonce,
		TransmissionID:    req.TransmissionID,
		RawEventBody:      req.Body,
		ProvidedSignature: req.Signature,
		SharedSecret:      uc.secret,
	})
	if err != nil {
		uc.logger.Warn("ProcessPaymentEvent: transmission_id=%s rejected: %v", req.TransmissionID, err)
		return nil, err
	}

	// 3. Типизированное событие
	event, err := uc.decodeEvent(req.Body)
	if err != nil {
		uc.logger.Warn("ProcessPaymentEvent: transmission_id=%s: invalid event: %v", req.TransmissionID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}

	now := uc.timeProvider.Now()
	record := &domain.PaymentEvent{
		ID:                uuid.NewString(),
		TransmissionID:    req.TransmissionID,
		Event:             event.Event,
		TransactionStatus: event.Transaction.Status,
		Reference:         event.Transaction.Reference,
		AmountInCents:     event.Transaction.AmountInCents,
		ReceivedAt:        now,
	}

	// 4. Повторная доставка
	first, err := uc.dedup.MarkDelivered(ctx, req.TransmissionID)
	if err != nil {
		uc.logger.Error("ProcessPaymentEvent: transmission_id=%s: dedup check failed: %v", req.TransmissionID, err)
		return nil, fmt.Errorf("%w: dedup check failed: %v", ErrInternal, err)
	}
	if !first {
		uc.logger.Info("ProcessPaymentEvent: transmission_id=%s already delivered, skipping", req.TransmissionID)
		return uc.finish(ctx, record, domain.OutcomeDuplicate, nil), nil
	}

	// 5. Классификация
	if !event.IsRoutable() {
		uc.logger.Info("ProcessPaymentEvent: ignoring event=%s status=%s reference=%s",
			event.Event, event.Transaction.Status, event.Transaction.Reference)
		return uc.finish(ctx, record, domain.OutcomeIgnored, nil), nil
	}

	ref, err := domain.ParsePaymentReference(event.Transaction.Reference)
	if err != nil {
		uc.logger.Error("ProcessPaymentEvent: cannot route transmission_id=%s: %v", req.TransmissionID, err)
		return uc.finish(ctx, record, domain.OutcomeMalformed, err), nil
	}
	record.Kind = ref.Kind
	record.UserID = ref.UserID
	record.ItemID = ref.ItemID

	// 6. Маршрутизация: ровно одна запись во внешний бэкенд
	switch ref.Kind {
	case domain.KindSubscription:
		sub := domain.NewSubscription(ref.ItemID, now)
		err = uc.billing.ActivateSubscription(ctx, ref.UserID, sub)
	case domain.KindService:
		err = uc.billing.RecordPayment(ctx, domain.PaymentRecord{
			Amount:        domain.AmountFromCents(event.Transaction.AmountInCents),
			PaymentMethod: event.Transaction.PaymentMethodType,
			AppointmentID: ref.ItemID,
			CustomerEmail: event.Transaction.CustomerEmail,
		})
	default:
		uc.logger.Warn("ProcessPaymentEvent: unknown payment kind %q in reference %s", ref.Kind, ref)
		return uc.finish(ctx, record, domain.OutcomeUnknownKind, nil), nil
	}

	if err != nil {
		uc.logger.Error("ProcessPaymentEvent: downstream write failed for reference %s: %v", ref, err)
		return uc.finish(ctx, record, domain.OutcomeFailed, err), nil
	}

	uc.logger.Info("ProcessPaymentEvent: routed %s payment for user=%s item=%s", ref.Kind, ref.UserID, ref.ItemID)
	return uc.finish(ctx, record, domain.OutcomeRouted, nil), nil
}

// decodeEvent разбирает конверт события. Транзакция обязательна и валидируется
// только для transaction.updated; прочие события возвращаются без транзакции.
func (uc *UseCase) decodeEvent(body []byte) (domain.WebhookEvent, error) {
	var payload eventPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return domain.WebhookEvent{}, fmt.Errorf("decode event: %w", err)
	}
	if err := uc.validate.Struct(&payload); err != nil {
		return domain.WebhookEvent{}, err
	}

	event := domain.WebhookEvent{Event: payload.Event}
	if payload.Event != domain.EventTransactionUpdated {
		return event, nil
	}

	if len(payload.Data) == 0 {
		return domain.WebhookEvent{}, errors.New("data.transaction is required")
	}
	var data transactionData
	if err := json.Unmarshal(payload.Data, &data); err != nil {
		return domain.WebhookEvent{}, fmt.Errorf("decode transaction: %w", err)
	}
	if data.Transaction == nil {
		return domain.WebhookEvent{}, errors.New("data.transaction is required")
	}
	if err := uc.validate.Struct(data.Transaction); err != nil {
		return domain.WebhookEvent{}, err
	}

	event.Transaction = data.Transaction.toDomain()
	return event, nil
}

// finish пишет событие в журнал и метрики. Сбой журнала только логируется.
func (uc *UseCase) finish(ctx context.Context, record *domain.PaymentEvent, outcome domain.PaymentOutcome, cause error) *Response {
	record.Outcome = outcome
	if cause != nil {
		record.Error = ptr.Ptr(cause.Error())
	}

	if _, err := uc.journal.Create(ctx, record); err != nil {
		uc.logger.Error("ProcessPaymentEvent: failed to journal transmission_id=%s: %v", record.TransmissionID, err)
	}

	kind := string(record.Kind)
	if kind == "" {
		kind = "none"
	}
	uc.recorder.ObserveWebhookEvent(kind, string(outcome))

	return &Response{
		Outcome:   outcome,
		Kind:      record.Kind,
		Reference: record.Reference,
	}
}
