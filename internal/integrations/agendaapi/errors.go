package agendaapi

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда у работника нет расписания на неделю
	ErrScheduleNotFound = errors.New("agendaapi client: schedule not found")

	// ErrAppointmentRejected возвращается, когда бэкенд отклонил запись (любой не-2xx ответ на создание)
	ErrAppointmentRejected = errors.New("agendaapi client: appointment rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("agendaapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("agendaapi client: invalid response")
)
