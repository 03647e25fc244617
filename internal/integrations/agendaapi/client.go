package agendaapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с agenda API (расписания работников и записи)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента agenda API
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ScheduleQuery параметры запроса недельного расписания
type ScheduleQuery struct {
	WorkerID  int64
	WeekStart time.Time
	SiteID    *int64
	ServiceID *int64
}

// GetWeeklySchedule получает недельное расписание работника
func (c *Client) GetWeeklySchedule(ctx context.Context, q ScheduleQuery) (*domain.WeeklySchedule, error) {
	params := url.Values{}
	params.Set("weekStart", q.WeekStart.Format(domain.DateFormat))
	if q.SiteID != nil {
		params.Set("siteId", strconv.FormatInt(*q.SiteID, 10))
	}
	if q.ServiceID != nil {
		params.Set("serviceId", strconv.FormatInt(*q.ServiceID, 10))
	}
	endpoint := fmt.Sprintf("%s/workers/%d/weekly-schedule?%s", c.baseURL, q.WorkerID, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrScheduleNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var schedule WeeklySchedule
	if err := json.NewDecoder(resp.Body).Decode(&schedule); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	result, err := schedule.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid schedule: %v", ErrInvalidResponse, err)
	}
	if result.WorkerID == 0 {
		result.WorkerID = q.WorkerID
	}

	c.log.Info("Fetched weekly schedule for worker_id=%d, week_start=%s, days=%d",
		q.WorkerID, result.WeekStart.Format(domain.DateFormat), len(result.Schedule))
	return result, nil
}

// CreateAppointment отправляет запись на бэкенд.
// Любой статус кроме 2xx считается отказом и возвращается как ErrAppointmentRejected
func (c *Client) CreateAppointment(ctx context.Context, draft *domain.AppointmentDraft) (*domain.Appointment, error) {
	payload, err := json.Marshal(FromDraft(draft))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/appointments", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr ErrorResponse
		body, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("%w: status %d: %s", ErrAppointmentRejected, resp.StatusCode, apiErr.Message)
		}
		return nil, fmt.Errorf("%w: status %d: %s", ErrAppointmentRejected, resp.StatusCode, string(body))
	}

	appointment := &domain.Appointment{AppointmentDraft: *draft}

	var created AppointmentResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil && err != io.EOF {
		// Запись создана, но тело ответа не разобрано - не считаем это отказом
		c.log.Warn("Appointment created for worker_id=%d but response is not decodable: %v", draft.WorkerID, err)
		return appointment, nil
	}

	appointment.ID = created.ID
	appointment.Status = created.Status
	appointment.CreatedAt = created.CreatedAt

	c.log.Info("Appointment created: id=%d, worker_id=%d, date=%s, time=%s",
		created.ID, draft.WorkerID, draft.Date.Format(domain.DateFormat), draft.Time)
	return appointment, nil
}
