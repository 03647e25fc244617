package agendaapi

import (
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// WeeklySchedule ответ GET /workers/{id}/weekly-schedule
type WeeklySchedule struct {
	WorkerID  int64                  `json:"workerId"`
	WeekStart string                 `json:"weekStart"` // "2025-03-10"
	WeekEnd   string                 `json:"weekEnd"`
	Schedule  map[string]DaySchedule `json:"schedule"` // ключ - день недели
}

// DaySchedule расписание одного дня
type DaySchedule struct {
	Available []TimeSlot `json:"available"`
	Occupied  []TimeSlot `json:"occupied"`
}

// TimeSlot интервал в формате "HH:mm:ss"
type TimeSlot struct {
	Start types.LocalTime `json:"start"`
	End   types.LocalTime `json:"end"`
}

// CreateAppointmentRequest тело POST /appointments
type CreateAppointmentRequest struct {
	Date      string `json:"date"` // "2025-03-12"
	Time      string `json:"time"` // "10:30"
	WorkerID  int64  `json:"workerId"`
	SiteID    int64  `json:"siteId"`
	ServiceID int64  `json:"serviceId"`
	ClientID  int64  `json:"clientId"`
}

// AppointmentResponse ответ на создание записи
type AppointmentResponse struct {
	ID        int64     `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ErrorResponse модель ошибки бэкенда
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует ответ API в domain модель
func (w *WeeklySchedule) ToDomain() (*domain.WeeklySchedule, error) {
	weekStart, err := time.Parse(domain.DateFormat, w.WeekStart)
	if err != nil {
		return nil, err
	}

	weekEnd := weekStart.AddDate(0, 0, 6)
	if w.WeekEnd != "" {
		weekEnd, err = time.Parse(domain.DateFormat, w.WeekEnd)
		if err != nil {
			return nil, err
		}
	}

	schedule := make(map[string]domain.DaySchedule, len(w.Schedule))
	for day, s := range w.Schedule {
		schedule[day] = domain.DaySchedule{
			Available: toDomainSlots(s.Available),
			Occupied:  toDomainSlots(s.Occupied),
		}
	}

	normalized, err := domain.NormalizeSchedule(schedule)
	if err != nil {
		return nil, err
	}

	return &domain.WeeklySchedule{
		WorkerID:  w.WorkerID,
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
		Schedule:  normalized,
	}, nil
}

func toDomainSlots(slots []TimeSlot) []domain.TimeSlot {
	result := make([]domain.TimeSlot, len(slots))
	for i, s := range slots {
		result[i] = domain.TimeSlot{Start: s.Start, End: s.End}
	}
	return result
}

// FromDraft формирует тело запроса на создание записи
func FromDraft(draft *domain.AppointmentDraft) *CreateAppointmentRequest {
	return &CreateAppointmentRequest{
		Date:      draft.Date.Format(domain.DateFormat),
		Time:      draft.Time.String(),
		WorkerID:  draft.WorkerID,
		SiteID:    draft.SiteID,
		ServiceID: draft.ServiceID,
		ClientID:  draft.ClientID,
	}
}
