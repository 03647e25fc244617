package payment_webhook

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	processPaymentEvent "github.com/m04kA/SMC-SalonBookingService/internal/usecase/process_payment_event"
)

const (
	msgMissingHeaders   = "отсутствуют заголовки подписи"
	msgInvalidSignature = "неверная подпись"
	msgInvalidEvent     = "некорректное событие"
	msgUnreadableBody   = "не удалось прочитать тело запроса"
)

type Handler struct {
	useCase ProcessPaymentEventUseCase
	headers HeaderNames
	logger  Logger
}

func NewHandler(useCase ProcessPaymentEventUseCase, headers HeaderNames, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		headers: headers,
		logger:  logger,
	}
}

// Handle POST /api/v1/webhooks/payments
// Подпись проверяется по сырому телу, поэтому тело не декодируется до use case.
// Любое проверенное событие подтверждается 200, даже если маршрутизация не удалась.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := handlers.ReadBody(w, r)
	if err != nil {
		if errors.Is(err, handlers.ErrBodyTooLarge) {
			h.logger.Warn("POST /webhooks/payments - Body too large: remote=%s", r.RemoteAddr)
			handlers.RespondTooLarge(w)
			return
		}
		h.logger.Warn("POST /webhooks/payments - Failed to read body: %v", err)
		handlers.RespondBadRequest(w, msgUnreadableBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(r.Header, h.headers, body))
	if err != nil {
		switch {
		case errors.Is(err, processPaymentEvent.ErrMissingHeaders):
			h.logger.Warn("POST /webhooks/payments - Missing headers: %v", err)
			handlers.RespondBadRequest(w, msgMissingHeaders)

		case errors.Is(err, processPaymentEvent.ErrInvalidSignature):
			h.logger.Warn("POST /webhooks/payments - Invalid signature: remote=%s", r.RemoteAddr)
			handlers.RespondUnauthorized(w, msgInvalidSignature)

		case errors.Is(err, processPaymentEvent.ErrInvalidEvent):
			h.logger.Warn("POST /webhooks/payments - Invalid event: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEvent)

		default:
			h.logger.Error("POST /webhooks/payments - Failed to process event: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /webhooks/payments - Event processed: outcome=%s, kind=%s, reference=%s",
		result.Outcome, result.Kind, result.Reference)
	handlers.RespondOK(w)
}
