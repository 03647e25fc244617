package get_weekly_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	weeklyCalendar "github.com/m04kA/SMC-SalonBookingService/internal/usecase/weekly_calendar"
)

const (
	msgInvalidWorkerID  = "некорректный ID работника"
	msgMissingWeekStart = "weekStart обязателен"
	msgInvalidParams    = "некорректные параметры запроса, weekStart ожидается в формате YYYY-MM-DD"
)

type Handler struct {
	useCase WeeklyCalendarUseCase
	logger  Logger
}

func NewHandler(useCase WeeklyCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/workers/{workerId}/weekly-calendar
// Query params: weekStart (required, YYYY-MM-DD), siteId, serviceId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	workerID, err := strconv.ParseInt(mux.Vars(r)["workerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /workers/{id}/weekly-calendar - Invalid worker ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkerID)
		return
	}

	query := r.URL.Query()
	weekStartStr := query.Get("weekStart")
	if weekStartStr == "" {
		h.logger.Warn("GET /workers/{id}/weekly-calendar - Missing weekStart")
		handlers.RespondBadRequest(w, msgMissingWeekStart)
		return
	}

	useCaseReq, err := ToUseCaseRequest(workerID, weekStartStr, query.Get("siteId"), query.Get("serviceId"))
	if err != nil {
		h.logger.Warn("GET /workers/{id}/weekly-calendar - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, weeklyCalendar.ErrInvalidInput):
			h.logger.Warn("GET /workers/{id}/weekly-calendar - Invalid input: worker_id=%d, error=%v", workerID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /workers/{id}/weekly-calendar - Failed to build calendar: worker_id=%d, error=%v", workerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /workers/{id}/weekly-calendar - Calendar built: worker_id=%d, schedule_available=%t",
		workerID, result.ScheduleAvailable)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
