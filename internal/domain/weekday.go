package domain

import (
	"fmt"
	"strings"
	"time"
)

// Weekday represents a day of week used as the primary scheduling key.
// Calendar dates are a fallback only (recurring weekly timetable).
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Weekdays список всех допустимых дней недели в порядке следования
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseWeekday парсит день недели без учета регистра
func ParseWeekday(s string) (Weekday, error) {
	for _, d := range Weekdays {
		if strings.EqualFold(s, string(d)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("invalid day %q, must be one of Monday..Sunday", s)
}

// WeekdayFromDate возвращает день недели для календарной даты
// Используется как fallback, когда день не указан в запросе явно
func WeekdayFromDate(t time.Time) Weekday {
	return Weekday(t.Weekday().String())
}

// Valid reports whether the value is one of Monday..Sunday.
func (d Weekday) Valid() bool {
	for _, v := range Weekdays {
		if d == v {
			return true
		}
	}
	return false
}

// String returns the English day name.
func (d Weekday) String() string {
	return string(d)
}
