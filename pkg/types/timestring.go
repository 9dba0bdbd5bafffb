package types

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimeFormat формат времени, используемый во всех API сервиса
const TimeFormat = "15:04"

// DateFormat формат даты, используемый во всех API сервиса
const DateFormat = "2006-01-02"

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

var timeRe = regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d$`)

// TimeString represents a wall-clock time of day as an "HH:MM" string.
// The zero value is the empty string and is reported by IsZero.
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString валидирует строку и создает TimeString
// Возвращает ErrInvalidTimeFormat, если строка не соответствует HH:MM
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts.normalized(), nil
}

// NewTimeStringFromMinutes создает TimeString из минут с полуночи
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= MinutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrOutOfDay, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// String returns the "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the value is unset.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение соответствует формату HH:MM
func (t TimeString) Validate() error {
	if !timeRe.MatchString(string(t)) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return nil
}

// Minutes возвращает время в минутах с полуночи
// Для невалидного значения возвращает 0 - вызывающая сторона обязана
// провалидировать значение заранее
func (t TimeString) Minutes() int {
	parts := strings.SplitN(string(t), ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0
	}
	return h*60 + m
}

// IsBefore reports whether t is strictly earlier in the day than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед
// Возвращает ErrOutOfDay, если результат выходит за пределы суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total := t.Minutes() + minutes
	if total < 0 || total > MinutesPerDay {
		return "", fmt.Errorf("%w: %s + %d minutes", ErrOutOfDay, t, minutes)
	}
	if total == MinutesPerDay {
		// Конец суток непредставим как HH:MM, считаем выходом за границу
		return "", fmt.Errorf("%w: %s + %d minutes", ErrOutOfDay, t, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// normalized приводит значение к виду с ведущими нулями ("8:30" -> "08:30")
func (t TimeString) normalized() TimeString {
	parts := strings.SplitN(string(t), ":", 2)
	if len(parts) != 2 {
		return t
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return t
	}
	return TimeString(fmt.Sprintf("%02d:%s", h, parts[1]))
}

// NormalizeTimeString пытается привести строку времени из внешних источников
// к каноническому виду HH:MM. Исторические выгрузки расписаний содержат
// варианты вида "830", "8.30", "8 30", "8", а также склеенные интервалы
// "08:00–10:00", из которых берется время начала.
// Возвращает ErrInvalidTimeFormat, если строку не удалось распознать.
func NormalizeTimeString(raw string) (TimeString, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("%w: empty string", ErrInvalidTimeFormat)
	}
	switch strings.ToLower(s) {
	case "none", "null", "nan":
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, raw)
	}

	// Склеенный интервал - берем начало
	if strings.ContainsAny(s, "–-") {
		s = strings.ReplaceAll(s, "–", "-")
		if idx := strings.Index(s, "-"); idx > 0 {
			s = strings.TrimSpace(s[:idx])
		}
	}

	// Суффиксы часов из выгрузок ("14:00hrs", "9h")
	s = strings.TrimSuffix(s, "hrs")
	s = strings.TrimSuffix(s, "hr")
	s = strings.TrimSuffix(s, "h")
	s = strings.TrimSpace(s)

	// Точки и пробелы как разделители
	s = strings.ReplaceAll(s, ".", ":")
	if fields := strings.Fields(s); len(fields) == 2 && isDigits(fields[0]) && isDigits(fields[1]) {
		s = fields[0] + ":" + fields[1]
	}

	// Форматы без разделителя: "8", "14", "830", "1430"
	if !strings.Contains(s, ":") && isDigits(s) {
		switch len(s) {
		case 1, 2:
			s = s + ":00"
		case 3:
			s = s[:1] + ":" + s[1:]
		case 4:
			s = s[:2] + ":" + s[2:]
		}
	}

	return NewTimeStringFromString(s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ParseDate парсит дату в формате YYYY-MM-DD
// Возвращает ErrInvalidDateFormat для некорректных календарных дат
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return d, nil
}
