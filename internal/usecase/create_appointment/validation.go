package create_appointment

import (
	"fmt"
	"strings"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.WorkerID <= 0 {
		return fmt.Errorf("%w: workerID must be positive", ErrInvalidInput)
	}

	if req.SiteID <= 0 {
		return fmt.Errorf("%w: siteID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.WeekStart.IsZero() {
		return fmt.Errorf("%w: weekStart is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Day) == "" {
		return fmt.Errorf("%w: day is required", ErrInvalidInput)
	}

	if !req.StartTime.IsValid() || !req.EndTime.IsValid() {
		return fmt.Errorf("%w: invalid slot time", ErrInvalidInput)
	}

	return nil
}

// isInPast проверяет, что начало записи уже наступило
func isInPast(startsAt, now time.Time) bool {
	return !startsAt.After(now)
}
