package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const (
	msgInternalError = "внутренняя ошибка сервера"
	msgBodyTooLarge  = "слишком большое тело запроса"

	// maxBodyBytes ограничение размера тела запроса
	maxBodyBytes = 1 << 20
)

var (
	// ErrEmptyBody возвращается DecodeJSON для пустого тела
	ErrEmptyBody = errors.New("request body is empty")

	// ErrBodyTooLarge тело больше maxBodyBytes
	ErrBodyTooLarge = errors.New("request body too large")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrorResponse модель ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse модель ответа-подтверждения
type StatusResponse struct {
	Status string `json:"status"`
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + msgInternalError + `"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// RespondError отправляет ответ с ошибкой
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondOK отправляет {"status":"ok"}
func RespondOK(w http.ResponseWriter) {
	RespondJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

func RespondTooLarge(w http.ResponseWriter) {
	RespondError(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// DecodeJSON декодирует тело запроса и валидирует его по тегам validate
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	body, err := ReadBody(w, r)
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return ErrEmptyBody
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("validate body: %w", err)
	}
	return nil
}

// ReadBody читает сырое тело запроса целиком. Тело больше maxBodyBytes не обрезается,
// а отклоняется с ErrBodyTooLarge.
func ReadBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, fmt.Errorf("%w: limit %d bytes", ErrBodyTooLarge, maxErr.Limit)
		}
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}
