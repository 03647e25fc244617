package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/internal/integrations/agendaapi"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/availability"
)

// UseCase use case для записи клиента на выбранный слот
type UseCase struct {
	provider     ScheduleProvider
	writer       AppointmentWriter
	slotDuration time.Duration
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	provider ScheduleProvider,
	writer AppointmentWriter,
	slotDuration time.Duration,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		provider:     provider,
		writer:       writer,
		slotDuration: slotDuration,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute проверяет слот по свежему расписанию недели и создает запись
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%d, worker=%d, week_start=%s, day=%s, slot=%s-%s",
		req.ClientID, req.WorkerID, req.WeekStart.Format(domain.DateFormat), req.Day, req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем расписание недели
	cal := availability.NewCalendar(uc.provider, uc.slotDuration, uc.logger)
	defer cal.Dispose()

	siteID, serviceID := req.SiteID, req.ServiceID
	query := agendaapi.ScheduleQuery{
		WorkerID:  req.WorkerID,
		WeekStart: req.WeekStart,
		SiteID:    &siteID,
		ServiceID: &serviceID,
	}
	if err := cal.Load(ctx, query); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScheduleUnavailable, err)
	}

	// 3. Проверяем слот и строим черновик записи
	slot := domain.TimeSlot{Start: req.StartTime, End: req.EndTime}
	draft, err := cal.SelectSlot(req.Day, slot, availability.Selection{
		SiteID:    req.SiteID,
		ServiceID: req.ServiceID,
		ClientID:  req.ClientID,
	})
	if err != nil {
		return nil, uc.mapSelectError(err)
	}

	// 4. Прошедшее время забронировать нельзя (слоты заданы в часовом поясе филиала)
	if isInPast(draft.StartsAt(uc.location), uc.timeProvider.Now()) {
		uc.logger.Warn("CreateAppointment: slot %s at %s is in the past", slot, draft.Date.Format(domain.DateFormat))
		return nil, ErrSlotInPast
	}

	// 5. Отправляем запись в бэкенд
	appointment, err := uc.writer.CreateAppointment(ctx, draft)
	if err != nil {
		if errors.Is(err, agendaapi.ErrAppointmentRejected) {
			uc.logger.Warn("CreateAppointment: backend rejected appointment: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrBookingRejected, err)
		}
		uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", appointment.ID)

	return &Response{
		ID:        appointment.ID,
		Status:    appointment.Status,
		Date:      appointment.Date,
		StartTime: slot.Start,
		EndTime:   slot.End,
		WorkerID:  appointment.WorkerID,
		SiteID:    appointment.SiteID,
		ServiceID: appointment.ServiceID,
		ClientID:  appointment.ClientID,
		CreatedAt: appointment.CreatedAt,
	}, nil
}

// mapSelectError переводит ошибки календаря в ошибки usecase
func (uc *UseCase) mapSelectError(err error) error {
	switch {
	case errors.Is(err, availability.ErrSlotOccupied):
		return ErrSlotOccupied
	case errors.Is(err, availability.ErrUnknownDay):
		uc.logger.Warn("CreateAppointment: %v", err)
		return fmt.Errorf("%w: %v", ErrUnknownDay, err)
	case errors.Is(err, availability.ErrInvalidSlot), errors.Is(err, availability.ErrSlotOutsideAvailability):
		uc.logger.Warn("CreateAppointment: %v", err)
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	case errors.Is(err, availability.ErrScheduleNotLoaded):
		return ErrScheduleUnavailable
	default:
		uc.logger.Error("CreateAppointment: failed to select slot: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
