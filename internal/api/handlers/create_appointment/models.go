package create_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	createAppointment "github.com/m04kA/SMC-SalonBookingService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	WeekStart string `json:"weekStart" validate:"required"` // "2025-03-10"
	Day       string `json:"day" validate:"required"`       // "tuesday" | "martes"
	StartTime string `json:"startTime" validate:"required"` // "10:30"
	EndTime   string `json:"endTime" validate:"required"`   // "11:00"
	SiteID    int64  `json:"siteId" validate:"gt=0"`
	ServiceID int64  `json:"serviceId" validate:"gt=0"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID        int64  `json:"id"`
	Status    string `json:"status,omitempty"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	WorkerID  int64  `json:"workerId"`
	SiteID    int64  `json:"siteId"`
	ServiceID int64  `json:"serviceId"`
	ClientID  int64  `json:"clientId"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(clientID, workerID int64) (*createAppointment.Request, error) {
	weekStart, err := time.Parse(domain.DateFormat, r.WeekStart)
	if err != nil {
		return nil, fmt.Errorf("weekStart: %w", err)
	}

	start, err := types.ParseLocalTime(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}

	end, err := types.ParseLocalTime(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("endTime: %w", err)
	}

	return &createAppointment.Request{
		ClientID:  clientID,
		WorkerID:  workerID,
		WeekStart: weekStart,
		Day:       r.Day,
		StartTime: start,
		EndTime:   end,
		SiteID:    r.SiteID,
		ServiceID: r.ServiceID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	out := &AppointmentResponse{
		ID:        resp.ID,
		Status:    resp.Status,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
		WorkerID:  resp.WorkerID,
		SiteID:    resp.SiteID,
		ServiceID: resp.ServiceID,
		ClientID:  resp.ClientID,
	}
	if !resp.CreatedAt.IsZero() {
		out.CreatedAt = resp.CreatedAt.Format(time.RFC3339)
	}
	return out
}
