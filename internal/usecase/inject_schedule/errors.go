package inject_schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTime возвращается при некорректном формате времени или даты
	ErrInvalidTime = errors.New("invalid time or date format")

	// ErrInvalidRange возвращается, когда конец интервала не позже начала
	ErrInvalidRange = errors.New("invalid time range")

	// ErrConflict возвращается, когда интервал пересекается с существующим
	// занятием на уровне серьезности не ниже порога блокировки
	// Список конфликтов передается в Response рядом с ошибкой
	ErrConflict = errors.New("schedule conflicts with existing bookings")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
