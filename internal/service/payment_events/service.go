package payment_events

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/payment_events/models"
)

// Service сервис чтения журнала платежных событий
type Service struct {
	repo   EventRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(repo EventRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List возвращает события журнала по фильтру, новые первыми
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.PaymentEventListResponse, error) {
	filter, err := toFilter(req)
	if err != nil {
		s.logger.Warn("ListPaymentEvents: invalid filter: %v", err)
		return nil, err
	}

	events, err := s.repo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListPaymentEvents: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.PaymentEventListResponse{
		Events: make([]models.PaymentEventResponse, 0, len(events)),
		Total:  len(events),
	}
	for _, e := range events {
		resp.Events = append(resp.Events, models.FromDomainPaymentEvent(e))
	}

	s.logger.Info("ListPaymentEvents: returned %d events", resp.Total)
	return resp, nil
}

// toFilter валидирует запрос и строит доменный фильтр
func toFilter(req *models.ListRequest) (domain.PaymentEventsFilter, error) {
	filter := domain.PaymentEventsFilter{
		Reference: req.Reference,
		From:      req.From,
		To:        req.To,
		Limit:     req.Limit,
	}

	if req.Kind != nil {
		kind := domain.PaymentKind(*req.Kind)
		if !kind.IsKnown() {
			return filter, fmt.Errorf("%w: unknown kind %q", ErrInvalidInput, *req.Kind)
		}
		filter.Kind = &kind
	}

	if req.Outcome != nil {
		outcome, ok := parseOutcome(*req.Outcome)
		if !ok {
			return filter, fmt.Errorf("%w: unknown outcome %q", ErrInvalidInput, *req.Outcome)
		}
		filter.Outcome = &outcome
	}

	if req.From != nil && req.To != nil && !req.From.Before(*req.To) {
		return filter, fmt.Errorf("%w: from must be before to", ErrInvalidInput)
	}

	switch {
	case req.Limit < 0:
		return filter, fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	case req.Limit == 0:
		filter.Limit = domain.DefaultPaymentEventsLimit
	case req.Limit > domain.MaxPaymentEventsLimit:
		return filter, fmt.Errorf("%w: limit must not exceed %d", ErrInvalidInput, domain.MaxPaymentEventsLimit)
	}

	return filter, nil
}

func parseOutcome(s string) (domain.PaymentOutcome, bool) {
	for _, o := range domain.AllOutcomes {
		if string(o) == s {
			return o, true
		}
	}
	return "", false
}
