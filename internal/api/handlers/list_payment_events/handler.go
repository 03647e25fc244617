package list_payment_events

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	paymentEvents "github.com/m04kA/SMC-SalonBookingService/internal/service/payment_events"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
)

type Handler struct {
	service PaymentEventService
	logger  Logger
}

func NewHandler(service PaymentEventService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/payment-events
// Query params: kind, outcome, reference, from, to, limit (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	serviceReq, err := ToServiceRequest(
		q.Get("kind"),
		q.Get("outcome"),
		q.Get("reference"),
		q.Get("from"),
		q.Get("to"),
		q.Get("limit"),
	)
	if err != nil {
		h.logger.Warn("GET /payment-events - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, paymentEvents.ErrInvalidInput):
			h.logger.Warn("GET /payment-events - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /payment-events - Failed to list events: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /payment-events - Events retrieved successfully: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
