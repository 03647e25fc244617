package create_appointment

import "errors"

var (
	// ErrScheduleUnavailable возвращается, когда расписание работника не удалось получить
	ErrScheduleUnavailable = errors.New("create_appointment: schedule unavailable")

	// ErrUnknownDay возвращается при нераспознанном названии дня недели
	ErrUnknownDay = errors.New("create_appointment: unknown day")

	// ErrInvalidTimeSlot возвращается, когда слот некорректен или вне рабочих часов
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot")

	// ErrSlotOccupied возвращается, когда слот пересекается с существующей записью
	ErrSlotOccupied = errors.New("create_appointment: slot occupied")

	// ErrSlotInPast возвращается при попытке записаться на уже прошедшее время
	ErrSlotInPast = errors.New("create_appointment: slot is in the past")

	// ErrBookingRejected возвращается, когда бэкенд отклонил запись
	ErrBookingRejected = errors.New("create_appointment: booking rejected")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
