package billingapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
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

// Client клиент для записи подписок и платежей во внешний бэкенд
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента billing API
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ActivateSubscription активирует подписку пользователя
func (c *Client) ActivateSubscription(ctx context.Context, userID string, sub domain.Subscription) error {
	endpoint := fmt.Sprintf("%s/users/%s/subscription", c.baseURL, url.PathEscape(userID))

	if err := c.send(ctx, http.MethodPut, endpoint, FromSubscription(sub)); err != nil {
		return err
	}

	c.log.Info("Subscription activated: user_id=%s, type=%s, finish_date=%s",
		userID, sub.Type, sub.FinishDate.Format(domain.DateFormat))
	return nil
}

// RecordPayment сохраняет платеж за услугу
func (c *Client) RecordPayment(ctx context.Context, record domain.PaymentRecord) error {
	if err := c.send(ctx, http.MethodPost, c.baseURL+"/payments", FromPaymentRecord(record)); err != nil {
		return err
	}

	c.log.Info("Payment recorded: appointment_id=%s, amount=%.2f, method=%s",
		record.AppointmentID, record.Amount, record.PaymentMethod)
	return nil
}

func (c *Client) send(ctx context.Context, method, endpoint string, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %s %s: status %d: %s", ErrWriteFailed, method, endpoint, resp.StatusCode, string(respBody))
	}

	return nil
}
