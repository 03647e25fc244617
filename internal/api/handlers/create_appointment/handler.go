package create_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBookingService/internal/api/middleware"
	createAppointment "github.com/m04kA/SMC-SalonBookingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidWorkerID     = "некорректный ID работника"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgInvalidFormat       = "некорректный формат: weekStart ожидается YYYY-MM-DD, время HH:MM"
	msgSlotOccupied        = "выбранный временной слот уже занят"
	msgScheduleUnavailable = "расписание работника сейчас недоступно"
	msgUnknownDay          = "неизвестный день недели"
	msgInvalidTimeSlot     = "слот вне рабочего времени работника"
	msgSlotInPast          = "нельзя записаться на прошедшее время"
	msgBookingRejected     = "запись отклонена сервисом расписаний"
	msgInvalidInput        = "некорректные данные записи"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/workers/{workerId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	workerID, err := strconv.ParseInt(mux.Vars(r)["workerId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /workers/{id}/appointments - Invalid worker ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkerID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /workers/{id}/appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(w, r, &req); err != nil {
		if errors.Is(err, handlers.ErrBodyTooLarge) {
			handlers.RespondTooLarge(w)
			return
		}
		h.logger.Warn("POST /workers/{id}/appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(clientID, workerID)
	if err != nil {
		h.logger.Warn("POST /workers/{id}/appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotOccupied):
			h.logger.Warn("POST /workers/{id}/appointments - Slot occupied: worker_id=%d, client_id=%d", workerID, clientID)
			handlers.RespondConflict(w, msgSlotOccupied)

		case errors.Is(err, createAppointment.ErrScheduleUnavailable):
			h.logger.Warn("POST /workers/{id}/appointments - Schedule unavailable: worker_id=%d", workerID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgScheduleUnavailable)

		case errors.Is(err, createAppointment.ErrUnknownDay):
			handlers.RespondBadRequest(w, msgUnknownDay)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrSlotInPast):
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrBookingRejected):
			h.logger.Warn("POST /workers/{id}/appointments - Rejected by backend: worker_id=%d, error=%v", workerID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgBookingRejected)

		default:
			h.logger.Error("POST /workers/{id}/appointments - Failed to create appointment: worker_id=%d, client_id=%d, error=%v",
				workerID, clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /workers/{id}/appointments - Appointment created: id=%d, worker_id=%d, client_id=%d",
		result.ID, workerID, clientID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
