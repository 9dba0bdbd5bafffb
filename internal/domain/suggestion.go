package domain

import "github.com/m04kA/EDU-SchedulingService/pkg/types"

// FreeSlot represents a continuous window not covered by any booking,
// bounded by the operating-hours window. Derived, never persisted.
type FreeSlot struct {
	Start           types.TimeString
	End             types.TimeString
	DurationMinutes int
}

// Duration returns the formatted slot length ("2h 30m").
func (f FreeSlot) Duration() string {
	return types.FormatDuration(f.DurationMinutes)
}

// RoomStatus доступность комнаты относительно запрошенного интервала
type RoomStatus string

const (
	RoomAvailable  RoomStatus = "Available"
	RoomConflicted RoomStatus = "Conflicted"
)

// ConflictingSchedule занятие, мешающее запрошенному интервалу
type ConflictingSchedule struct {
	Course     string
	Department string
	StartTime  types.TimeString
	EndTime    types.TimeString
}

// TimeSlot returns the "HH:MM-HH:MM" representation.
func (c ConflictingSchedule) TimeSlot() string {
	return string(c.StartTime) + "-" + string(c.EndTime)
}

// RoomSuggestion is a per-room evaluation against a suggestion request.
// Score is the total free minutes in the day; ties break by ascending RoomID.
type RoomSuggestion struct {
	RoomID           string
	Department       string
	Status           RoomStatus
	FreeSlots        []FreeSlot
	TotalFreeMinutes int
	TotalSchedules   int
	Conflict         *ConflictingSchedule // Заполнен только для Conflicted
}
