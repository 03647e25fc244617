package agendaapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/pkg/logger"
	"github.com/m04kA/SMC-SalonBookingService/pkg/ptr"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

const weeklyScheduleJSON = `{
  "workerId": 7,
  "weekStart": "2025-03-10",
  "weekEnd": "2025-03-16",
  "schedule": {
    "monday": {
      "available": [{"start": "09:00:00", "end": "12:00:00"}],
      "occupied": [{"start": "10:00:00", "end": "10:30:00"}]
    },
    "tuesday": {"available": [], "occupied": []}
  }
}`

func TestClient_GetWeeklySchedule(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/workers/7/weekly-schedule", r.URL.Path)
		assert.Equal(t, "2025-03-10", r.URL.Query().Get("weekStart"))
		assert.Equal(t, "3", r.URL.Query().Get("siteId"))
		assert.Empty(t, r.URL.Query().Get("serviceId"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(weeklyScheduleJSON))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, logger.NewNop())
	week, err := client.GetWeeklySchedule(context.Background(), ScheduleQuery{
		WorkerID:  7,
		WeekStart: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		SiteID:    ptr.Ptr(int64(3)),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), week.WorkerID)
	assert.Equal(t, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), week.WeekEnd)

	monday, ok := week.Day(time.Monday)
	require.True(t, ok)
	require.Len(t, monday.Available, 1)
	assert.Equal(t, "09:00", monday.Available[0].Start.String())
	assert.Equal(t, "12:00", monday.Available[0].End.String())
	require.Len(t, monday.Occupied, 1)
	assert.Equal(t, "10:30", monday.Occupied[0].End.String())
}

func TestWeeklySchedule_ToDomain_NormalizesDayNames(t *testing.T) {
	api := WeeklySchedule{
		WeekStart: "2025-03-10",
		Schedule: map[string]DaySchedule{
			"Miércoles": {Available: []TimeSlot{{Start: 9 * 3600, End: 12 * 3600}}},
			"SABADO":    {},
			"feriado":   {},
		},
	}

	week, err := api.ToDomain()
	require.NoError(t, err)

	assert.Len(t, week.Schedule, 2)
	assert.Contains(t, week.Schedule, "wednesday")
	assert.Contains(t, week.Schedule, "saturday")

	wednesday, ok := week.Day(time.Wednesday)
	require.True(t, ok)
	assert.Len(t, wednesday.Available, 1)
}

func TestWeeklySchedule_ToDomain_DuplicateDay(t *testing.T) {
	api := WeeklySchedule{
		WeekStart: "2025-03-10",
		Schedule:  map[string]DaySchedule{"monday": {}, "lunes": {}},
	}

	_, err := api.ToDomain()
	assert.ErrorIs(t, err, domain.ErrDuplicateWeekday)
}

func TestClient_GetWeeklySchedule_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"not found", http.StatusNotFound, `{}`, ErrScheduleNotFound},
		{"server error", http.StatusInternalServerError, `oops`, ErrInvalidResponse},
		{"bad json", http.StatusOK, `{"schedule": [`, ErrInvalidResponse},
		{"bad time", http.StatusOK, `{"weekStart":"2025-03-10","schedule":{"monday":{"available":[{"start":"9am","end":"12:00"}]}}}`, ErrInvalidResponse},
		{"bad week start", http.StatusOK, `{"weekStart":"10/03/2025","schedule":{}}`, ErrInvalidResponse},
		{"same day twice", http.StatusOK, `{"weekStart":"2025-03-10","schedule":{"monday":{"available":[]},"Lunes":{"available":[]}}}`, ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, time.Second, logger.NewNop())
			_, err := client.GetWeeklySchedule(context.Background(), ScheduleQuery{WorkerID: 1, WeekStart: time.Now()})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_CreateAppointment(t *testing.T) {
	var got CreateAppointmentRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/appointments", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 501, "status": "pending", "createdAt": "2025-03-09T12:00:00Z"}`))
	}))
	defer srv.Close()

	start, err := types.ParseLocalTime("10:30")
	require.NoError(t, err)

	client := NewClient(srv.URL, time.Second, logger.NewNop())
	appt, err := client.CreateAppointment(context.Background(), &domain.AppointmentDraft{
		Date:      time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		Time:      start,
		WorkerID:  7,
		SiteID:    3,
		ServiceID: 11,
		ClientID:  42,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(501), appt.ID)
	assert.Equal(t, "pending", appt.Status)
	assert.Equal(t, CreateAppointmentRequest{
		Date: "2025-03-12", Time: "10:30", WorkerID: 7, SiteID: 3, ServiceID: 11, ClientID: 42,
	}, got)
}

func TestClient_CreateAppointment_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"code": 409, "message": "slot taken"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, logger.NewNop())
	_, err := client.CreateAppointment(context.Background(), &domain.AppointmentDraft{WorkerID: 7})
	require.ErrorIs(t, err, ErrAppointmentRejected)
	assert.Contains(t, err.Error(), "slot taken")
}
