package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default configuration values
const (
	DefaultOperatingStart = "08:00"
	DefaultOperatingEnd   = "20:00"
	DefaultStatus         = "Booked"
	DefaultPageSize       = 10
	MaxPageSize           = 50
)

// Severity classification thresholds
const (
	// HighOverlapRatioPercent порог High: пересечение > 50% длительности более короткого занятия
	HighOverlapRatioPercent = 50
	// MediumOverlapMinutes порог Medium: пересечение >= 15 минут
	MediumOverlapMinutes = 15
)
