package types

import "fmt"

// TimeSpan is a half-open interval [Start, End) in minutes since midnight.
// Invariant: 0 <= Start < End <= MinutesPerDay. Immutable value type.
type TimeSpan struct {
	Start int
	End   int
}

// NewTimeSpan создает интервал из двух TimeString
// Возвращает ErrInvalidRange, если end <= start
func NewTimeSpan(start, end TimeString) (TimeSpan, error) {
	if err := start.Validate(); err != nil {
		return TimeSpan{}, err
	}
	if err := end.Validate(); err != nil {
		return TimeSpan{}, err
	}
	s, e := start.Minutes(), end.Minutes()
	if e <= s {
		return TimeSpan{}, fmt.Errorf("%w: %s-%s", ErrInvalidRange, start, end)
	}
	return TimeSpan{Start: s, End: e}, nil
}

// NewTimeSpanFromStrings создает интервал из строк "HH:MM"
func NewTimeSpanFromStrings(start, end string) (TimeSpan, error) {
	s, err := NewTimeStringFromString(start)
	if err != nil {
		return TimeSpan{}, err
	}
	e, err := NewTimeStringFromString(end)
	if err != nil {
		return TimeSpan{}, err
	}
	return NewTimeSpan(s, e)
}

// NewTimeSpanFromLenientStrings создает интервал из строк времени во внешних
// форматах ("830", "8.30", "8 30"), пропуская каждую границу через
// NormalizeTimeString. Используется на входе API: исторические расписания
// приходят в этих формах
func NewTimeSpanFromLenientStrings(start, end string) (TimeSpan, error) {
	s, err := NormalizeTimeString(start)
	if err != nil {
		return TimeSpan{}, err
	}
	e, err := NormalizeTimeString(end)
	if err != nil {
		return TimeSpan{}, err
	}
	return NewTimeSpan(s, e)
}

// DurationMinutes returns the span length in minutes.
func (s TimeSpan) DurationMinutes() int {
	return s.End - s.Start
}

// Overlaps reports whether the two half-open spans intersect.
// Back-to-back spans (s.End == other.Start) do not overlap.
func (s TimeSpan) Overlaps(other TimeSpan) bool {
	return s.Start < other.End && other.Start < s.End
}

// Intersect возвращает пересечение интервалов и признак его существования
func (s TimeSpan) Intersect(other TimeSpan) (TimeSpan, bool) {
	if !s.Overlaps(other) {
		return TimeSpan{}, false
	}
	start := s.Start
	if other.Start > start {
		start = other.Start
	}
	end := s.End
	if other.End < end {
		end = other.End
	}
	return TimeSpan{Start: start, End: end}, true
}

// Contains reports whether other lies fully inside s.
func (s TimeSpan) Contains(other TimeSpan) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// ClipTo обрезает интервал границами window
// Второе значение false, если интервал целиком вне окна
func (s TimeSpan) ClipTo(window TimeSpan) (TimeSpan, bool) {
	return window.Intersect(s)
}

// Equal reports whether both spans cover the same interval.
func (s TimeSpan) Equal(other TimeSpan) bool {
	return s.Start == other.Start && s.End == other.End
}

// StartTime возвращает начало интервала как TimeString
func (s TimeSpan) StartTime() TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", s.Start/60, s.Start%60))
}

// EndTime возвращает конец интервала как TimeString
func (s TimeSpan) EndTime() TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", s.End/60, s.End%60))
}

// String returns the "HH:MM-HH:MM" representation.
func (s TimeSpan) String() string {
	return fmt.Sprintf("%s-%s", s.StartTime(), s.EndTime())
}

// FormatDuration форматирует длительность в минутах в человекочитаемый вид ("1h 30m")
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}
