package reallocate

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTime возвращается при некорректном формате времени или даты
	ErrInvalidTime = errors.New("invalid time or date format")

	// ErrInvalidRange возвращается, когда конец интервала не позже начала
	ErrInvalidRange = errors.New("invalid time range")

	// ErrScheduleNotFound возвращается, когда цель переноса не найдена
	ErrScheduleNotFound = errors.New("schedule not found")

	// ErrAmbiguousMatch возвращается, когда критериям соответствует больше
	// одной записи. Кандидаты передаются в Response; движок никогда не
	// выбирает запись за пользователя
	ErrAmbiguousMatch = errors.New("criteria match more than one schedule")

	// ErrNewConflict возвращается, когда целевой интервал переноса
	// пересекается с другим занятием. Исходная запись остается нетронутой
	ErrNewConflict = errors.New("new span conflicts with existing bookings")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
