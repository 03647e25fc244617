package list_payment_events

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/payment_events/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(kindStr, outcomeStr, referenceStr, fromStr, toStr, limitStr string) (*models.ListRequest, error) {
	req := &models.ListRequest{}

	if kindStr != "" {
		req.Kind = &kindStr
	}
	if outcomeStr != "" {
		req.Outcome = &outcomeStr
	}
	if referenceStr != "" {
		req.Reference = &referenceStr
	}

	if fromStr != "" {
		from, err := parseBound(fromStr)
		if err != nil {
			return nil, fmt.Errorf("invalid from value: %w", err)
		}
		req.From = &from
	}

	if toStr != "" {
		to, err := parseBound(toStr)
		if err != nil {
			return nil, fmt.Errorf("invalid to value: %w", err)
		}
		req.To = &to
	}

	if limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return nil, fmt.Errorf("invalid limit value: %w", err)
		}
		req.Limit = limit
	}

	return req, nil
}

// parseBound принимает RFC3339 или дату YYYY-MM-DD (полночь UTC)
func parseBound(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(domain.DateFormat, s)
}
