package process_payment_event

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

const canonicalSeparator = "."

// CanonicalString собирает строку для подписи: "<timestamp>.<nonce>.<transmissionId>.<json>".
// JSON берется из сырого тела без незначащих пробелов, порядок ключей сохраняется.
func CanonicalString(timestamp, nonce, transmissionID string, rawBody []byte) (string, error) {
	var body bytes.Buffer
	if err := json.Compact(&body, rawBody); err != nil {
		return "", err
	}
	return strings.Join([]string{timestamp, nonce, transmissionID, body.String()}, canonicalSeparator), nil
}

// ComputeSignature возвращает hex(HMAC-SHA256(secret, canonical))
func ComputeSignature(secret, canonical string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(canonical))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature проверяет подпись доставки. Чистая функция: без сети и побочных эффектов.
func VerifySignature(sc domain.WebhookSignatureContext) error {
	if sc.SharedSecret == "" {
		return fmt.Errorf("%w: shared secret is not configured", ErrInternal)
	}

	canonical, err := CanonicalString(sc.Timestamp, sc.Nonce, sc.TransmissionID, sc.RawEventBody)
	if err != nil {
		return fmt.Errorf("%w: body is not valid JSON: %v", ErrInvalidSignature, err)
	}

	provided, err := hex.DecodeString(strings.ToLower(strings.TrimSpace(sc.ProvidedSignature)))
	if err != nil {
		return fmt.Errorf("%w: signature is not hex", ErrInvalidSignature)
	}

	mac := hmac.New(sha256.New, []byte(sc.SharedSecret))
	mac.Write([]byte(canonical))
	if !hmac.Equal(mac.Sum(nil), provided) {
		return ErrInvalidSignature
	}
	return nil
}
