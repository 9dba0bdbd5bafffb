package suggest_rooms

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTime возвращается при некорректном формате времени или даты
	ErrInvalidTime = errors.New("invalid time or date format")

	// ErrInvalidRange возвращается, когда конец интервала не позже начала
	// или запрошенный интервал выходит за рамки рабочих часов
	ErrInvalidRange = errors.New("invalid time range")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
