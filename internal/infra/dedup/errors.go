package dedup

import "errors"

var (
	// ErrStoreUnavailable возвращается, когда Redis не ответил на проверку доставки
	ErrStoreUnavailable = errors.New("dedup: store unavailable")
)
