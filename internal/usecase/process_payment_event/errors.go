package process_payment_event

import "errors"

var (
	// ErrMissingHeaders возвращается, когда не передан один из заголовков подписи
	ErrMissingHeaders = errors.New("process_payment_event: missing required headers")

	// ErrInvalidSignature возвращается, когда подпись не совпала или тело нельзя канонизировать
	ErrInvalidSignature = errors.New("process_payment_event: invalid signature")

	// ErrInvalidEvent возвращается, когда тело события не проходит валидацию
	ErrInvalidEvent = errors.New("process_payment_event: invalid event")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("process_payment_event: internal error")
)
