package weekly_calendar

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.WorkerID <= 0 {
		return fmt.Errorf("%w: workerID must be positive", ErrInvalidInput)
	}

	if req.WeekStart.IsZero() {
		return fmt.Errorf("%w: weekStart is required", ErrInvalidInput)
	}

	if req.SiteID != nil && *req.SiteID <= 0 {
		return fmt.Errorf("%w: siteID must be positive", ErrInvalidInput)
	}

	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	return nil
}
