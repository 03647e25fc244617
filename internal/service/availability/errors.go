package availability

import "errors"

var (
	// ErrScheduleNotLoaded возвращается при выборе слота до загрузки расписания
	ErrScheduleNotLoaded = errors.New("availability: schedule not loaded")

	// ErrScheduleUnavailable возвращается, когда расписание не удалось получить
	ErrScheduleUnavailable = errors.New("availability: schedule unavailable")

	// ErrUnknownDay возвращается при нераспознанном названии дня недели
	ErrUnknownDay = errors.New("availability: unknown day")

	// ErrInvalidSlot возвращается, когда слот пустой или выходит за пределы суток
	ErrInvalidSlot = errors.New("availability: invalid slot")

	// ErrSlotOutsideAvailability возвращается, когда слот не лежит целиком в рабочем окне дня
	ErrSlotOutsideAvailability = errors.New("availability: slot outside working hours")

	// ErrSlotOccupied возвращается, когда слот пересекается с существующей записью
	ErrSlotOccupied = errors.New("availability: slot occupied")
)
