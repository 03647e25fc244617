package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	secondsPerDay = 24 * 60 * 60

	// EndOfDay соответствует "24:00" и используется как правая граница окна до полуночи
	EndOfDay LocalTime = secondsPerDay
)

var (
	// ErrInvalidLocalTime возвращается при некорректном формате времени
	ErrInvalidLocalTime = errors.New("invalid local time format")
)

// LocalTime время суток (wall-clock) без даты и часового пояса, в секундах от полуночи.
// Диапазон [00:00:00, 24:00:00]; значения вне диапазона не создаются через ParseLocalTime.
type LocalTime int

// ParseLocalTime разбирает строку "HH:MM" или "HH:MM:SS"
func ParseLocalTime(s string) (LocalTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLocalTime, s)
	}

	values := make([]int, 3)
	for i, p := range parts {
		if len(p) != 2 || !isDigit(p[0]) || !isDigit(p[1]) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidLocalTime, s)
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidLocalTime, s)
		}
		values[i] = v
	}

	h, m, sec := values[0], values[1], values[2]
	if m > 59 || sec > 59 || h > 24 || (h == 24 && (m != 0 || sec != 0)) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLocalTime, s)
	}

	return LocalTime(h*3600 + m*60 + sec), nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// NewLocalTime возвращает время суток из time.Time (дата и часовой пояс отбрасываются)
func NewLocalTime(t time.Time) LocalTime {
	return LocalTime(t.Hour()*3600 + t.Minute()*60 + t.Second())
}

// Add сдвигает время на d. Результат не нормализуется по модулю суток
func (t LocalTime) Add(d time.Duration) LocalTime {
	return t + LocalTime(d/time.Second)
}

// Sub возвращает длительность t - u
func (t LocalTime) Sub(u LocalTime) time.Duration {
	return time.Duration(t-u) * time.Second
}

// Before сообщает, что t строго раньше u
func (t LocalTime) Before(u LocalTime) bool {
	return t < u
}

// After сообщает, что t строго позже u
func (t LocalTime) After(u LocalTime) bool {
	return t > u
}

// IsValid проверяет, что время лежит в пределах суток
func (t LocalTime) IsValid() bool {
	return t >= 0 && t <= EndOfDay
}

// On возвращает момент времени t в дату date (в часовом поясе date)
func (t LocalTime) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, int(t)/3600, (int(t)%3600)/60, int(t)%60, 0, date.Location())
}

// String форматирует время как "HH:MM" или "HH:MM:SS", если есть секунды
func (t LocalTime) String() string {
	h := int(t) / 3600
	m := (int(t) % 3600) / 60
	s := int(t) % 60
	if s != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

// MarshalText реализует encoding.TextMarshaler
func (t LocalTime) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("%w: %d seconds", ErrInvalidLocalTime, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText реализует encoding.TextUnmarshaler
func (t *LocalTime) UnmarshalText(data []byte) error {
	parsed, err := ParseLocalTime(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
