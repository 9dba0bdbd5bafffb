package types

import "errors"

var (
	// ErrInvalidTimeFormat возвращается, когда строка времени не соответствует формату HH:MM
	ErrInvalidTimeFormat = errors.New("types: invalid time format, expected HH:MM")

	// ErrInvalidDateFormat возвращается, когда строка даты не является корректной датой YYYY-MM-DD
	ErrInvalidDateFormat = errors.New("types: invalid date format, expected YYYY-MM-DD")

	// ErrInvalidRange возвращается, когда конец интервала не позже его начала
	ErrInvalidRange = errors.New("types: invalid time range, end must be after start")

	// ErrOutOfDay возвращается, когда результат операции выходит за пределы суток
	ErrOutOfDay = errors.New("types: time is out of day bounds")
)
