package process_payment_event

import (
	"fmt"
	"strings"
)

// validateHeaders проверяет, что все четыре заголовка подписи переданы и не пустые
func validateHeaders(req *Request) error {
	missing := make([]string, 0, 4)
	if strings.TrimSpace(req.Timestamp) == "" {
		missing = append(missing, "timestamp")
	}
	if strings.TrimSpace(req.Nonce) == "" {
		missing = append(missing, "nonce")
	}
	if strings.TrimSpace(req.TransmissionID) == "" {
		missing = append(missing, "transmissionId")
	}
	if strings.TrimSpace(req.Signature) == "" {
		missing = append(missing, "signature")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingHeaders, strings.Join(missing, ", "))
	}
	return nil
}
