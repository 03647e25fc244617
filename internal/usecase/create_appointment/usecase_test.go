package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/internal/integrations/agendaapi"
	"github.com/m04kA/SMC-SalonBookingService/pkg/logger"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

type mockProvider struct {
	schedule *domain.WeeklySchedule
	err      error
}

func (m *mockProvider) GetWeeklySchedule(_ context.Context, _ agendaapi.ScheduleQuery) (*domain.WeeklySchedule, error) {
	return m.schedule, m.err
}

type mockWriter struct {
	drafts []*domain.AppointmentDraft
	err    error
}

func (m *mockWriter) CreateAppointment(_ context.Context, draft *domain.AppointmentDraft) (*domain.Appointment, error) {
	m.drafts = append(m.drafts, draft)
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Appointment{
		ID:               100,
		Status:           "scheduled",
		CreatedAt:        time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		AppointmentDraft: *draft,
	}, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var weekStart = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func lt(t *testing.T, s string) types.LocalTime {
	t.Helper()
	v, err := types.ParseLocalTime(s)
	require.NoError(t, err)
	return v
}

func newSchedule(t *testing.T) *domain.WeeklySchedule {
	return &domain.WeeklySchedule{
		WorkerID:  9,
		WeekStart: weekStart,
		WeekEnd:   weekStart.AddDate(0, 0, 6),
		Schedule: map[string]domain.DaySchedule{
			"martes": {
				Available: []domain.TimeSlot{{Start: lt(t, "09:00"), End: lt(t, "12:00")}},
				Occupied:  []domain.TimeSlot{{Start: lt(t, "10:00"), End: lt(t, "10:30")}},
			},
		},
	}
}

func newUseCase(p ScheduleProvider, w AppointmentWriter) *UseCase {
	uc := NewUseCase(p, w, 30*time.Minute, time.UTC, logger.NewNop())
	uc.timeProvider = fixedTime{now: time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)}
	return uc
}

func validRequest(t *testing.T) *Request {
	return &Request{
		ClientID:  42,
		WorkerID:  9,
		WeekStart: weekStart,
		Day:       "Tuesday",
		StartTime: lt(t, "10:30"),
		EndTime:   lt(t, "11:00"),
		SiteID:    3,
		ServiceID: 11,
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	writer := &mockWriter{}
	uc := newUseCase(&mockProvider{schedule: newSchedule(t)}, writer)

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), resp.Date)
	assert.Equal(t, "10:30", resp.StartTime.String())
	assert.Equal(t, "11:00", resp.EndTime.String())

	require.Len(t, writer.drafts, 1)
	draft := writer.drafts[0]
	assert.Equal(t, int64(9), draft.WorkerID)
	assert.Equal(t, int64(3), draft.SiteID)
	assert.Equal(t, int64(11), draft.ServiceID)
	assert.Equal(t, int64(42), draft.ClientID)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name     string
		provider *mockProvider
		writer   *mockWriter
		modify   func(r *Request)
		wantErr  error
	}{
		{
			name:     "occupied slot",
			provider: &mockProvider{schedule: newSchedule(t)},
			writer:   &mockWriter{},
			modify:   func(r *Request) { r.StartTime, r.EndTime = lt(t, "10:00"), lt(t, "10:30") },
			wantErr:  ErrSlotOccupied,
		},
		{
			name:     "schedule unavailable",
			provider: &mockProvider{err: errors.New("timeout")},
			writer:   &mockWriter{},
			wantErr:  ErrScheduleUnavailable,
		},
		{
			name:     "unknown day",
			provider: &mockProvider{schedule: newSchedule(t)},
			writer:   &mockWriter{},
			modify:   func(r *Request) { r.Day = "blursday" },
			wantErr:  ErrUnknownDay,
		},
		{
			name:     "outside working hours",
			provider: &mockProvider{schedule: newSchedule(t)},
			writer:   &mockWriter{},
			modify:   func(r *Request) { r.StartTime, r.EndTime = lt(t, "12:00"), lt(t, "12:30") },
			wantErr:  ErrInvalidTimeSlot,
		},
		{
			name:     "invalid input",
			provider: &mockProvider{schedule: newSchedule(t)},
			writer:   &mockWriter{},
			modify:   func(r *Request) { r.ClientID = 0 },
			wantErr:  ErrInvalidInput,
		},
		{
			name:     "backend rejected",
			provider: &mockProvider{schedule: newSchedule(t)},
			writer:   &mockWriter{err: fmt.Errorf("%w: status 409", agendaapi.ErrAppointmentRejected)},
			wantErr:  ErrBookingRejected,
		},
		{
			name:     "backend unreachable",
			provider: &mockProvider{schedule: newSchedule(t)},
			writer:   &mockWriter{err: fmt.Errorf("%w: dial tcp", agendaapi.ErrInternal)},
			wantErr:  ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(t)
			if tt.modify != nil {
				tt.modify(req)
			}

			_, err := newUseCase(tt.provider, tt.writer).Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUseCase_Execute_NoWriteOnRejectedSelection(t *testing.T) {
	writer := &mockWriter{}
	uc := newUseCase(&mockProvider{schedule: newSchedule(t)}, writer)

	req := validRequest(t)
	req.StartTime, req.EndTime = lt(t, "09:45"), lt(t, "10:15")

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrSlotOccupied)
	assert.Empty(t, writer.drafts)
}

func TestUseCase_Execute_SlotInPast(t *testing.T) {
	writer := &mockWriter{}
	uc := newUseCase(&mockProvider{schedule: newSchedule(t)}, writer)
	uc.timeProvider = fixedTime{now: time.Date(2025, 3, 11, 10, 45, 0, 0, time.UTC)}

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrSlotInPast)
	assert.Empty(t, writer.drafts)
}

func TestUseCase_Execute_SlotInPast_VenueTimezone(t *testing.T) {
	cot := time.FixedZone("COT", -5*3600)
	schedule := newSchedule(t)
	schedule.Schedule["miércoles"] = domain.DaySchedule{
		Available: []domain.TimeSlot{{Start: lt(t, "09:00"), End: lt(t, "20:00")}},
	}

	newVenueUseCase := func(w *mockWriter) *UseCase {
		uc := NewUseCase(&mockProvider{schedule: schedule}, w, 30*time.Minute, cot, logger.NewNop())
		// 16:00 по местному времени, 21:00 UTC
		uc.timeProvider = fixedTime{now: time.Date(2025, 3, 12, 16, 0, 0, 0, cot)}
		return uc
	}

	t.Run("later today in venue time", func(t *testing.T) {
		writer := &mockWriter{}
		req := validRequest(t)
		req.Day = "miercoles"
		req.StartTime, req.EndTime = lt(t, "18:00"), lt(t, "18:30")

		_, err := newVenueUseCase(writer).Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Len(t, writer.drafts, 1)
	})

	t.Run("earlier today in venue time", func(t *testing.T) {
		writer := &mockWriter{}
		req := validRequest(t)
		req.Day = "miercoles"
		req.StartTime, req.EndTime = lt(t, "15:30"), lt(t, "16:00")

		_, err := newVenueUseCase(writer).Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSlotInPast)
		assert.Empty(t, writer.drafts)
	})
}

func TestIsInPast_ComparesInstants(t *testing.T) {
	cot := time.FixedZone("COT", -5*3600)
	draft := &domain.AppointmentDraft{Date: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), Time: lt(t, "18:00")}
	now := time.Date(2025, 3, 12, 16, 0, 0, 0, cot)

	assert.False(t, isInPast(draft.StartsAt(cot), now))
	assert.True(t, isInPast(draft.StartsAt(cot), now.Add(2*time.Hour)))
	assert.True(t, isInPast(draft.StartsAt(time.UTC), now), "in UTC 18:00 is already before 21:00Z")
}
