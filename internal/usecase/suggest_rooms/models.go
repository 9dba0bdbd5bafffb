package suggest_rooms

import (
	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	"github.com/m04kA/EDU-SchedulingService/pkg/types"
)

// Request модель запроса на подбор комнат
type Request struct {
	Day        string  // День недели; может быть пустым, если указана дата
	Date       *string // Дата "YYYY-MM-DD" (опционально, для вывода дня недели)
	Start      string  // Начало запрашиваемого интервала "HH:MM"
	End        string  // Конец запрашиваемого интервала "HH:MM"
	Department *string // Фильтр по факультету (опционально)
	RoomID     *string // Ограничение одной комнатой (опционально)
	Page       int     // Номер страницы (с 1)
	PerPage    int     // Размер страницы
}

// Response модель ответа с ранжированным списком комнат
type Response struct {
	Day             string               // День недели (возможно, выведенный из даты)
	Start           string               // Запрошенный интервал
	End             string               //
	Suggestions     []SuggestionInfo     // Подходящие комнаты, по убыванию свободного времени
	ConflictedRooms []ConflictedRoomInfo // Комнаты, где интервал не помещается
	Page            int
	PerPage         int
	TotalItems      int // Всего подходящих комнат до пагинации
	TotalPages      int
}

// SuggestionInfo подходящая комната
type SuggestionInfo struct {
	RoomID           string
	Department       string
	FreeSlots        []SlotInfo
	TotalFreeMinutes int
	TotalFreeTime    string // "4h 30m"
	TotalSchedules   int
}

// ConflictedRoomInfo комната, где запрошенный интервал не помещается
type ConflictedRoomInfo struct {
	RoomID     string
	Department string
	Conflict   ConflictingScheduleInfo
}

// ConflictingScheduleInfo занятие, мешающее запрошенному интервалу
type ConflictingScheduleInfo struct {
	Course     string
	Department string
	TimeSlot   string // "09:00-10:30"
}

// SlotInfo описание свободного окна
type SlotInfo struct {
	Start           string
	End             string
	DurationMinutes int
	Duration        string
}

// fromDomainSuggestion конвертирует подходящую комнату в DTO
func fromDomainSuggestion(s domain.RoomSuggestion) SuggestionInfo {
	slots := make([]SlotInfo, 0, len(s.FreeSlots))
	for _, f := range s.FreeSlots {
		slots = append(slots, SlotInfo{
			Start:           f.Start.String(),
			End:             f.End.String(),
			DurationMinutes: f.DurationMinutes,
			Duration:        f.Duration(),
		})
	}

	return SuggestionInfo{
		RoomID:           s.RoomID,
		Department:       s.Department,
		FreeSlots:        slots,
		TotalFreeMinutes: s.TotalFreeMinutes,
		TotalFreeTime:    types.FormatDuration(s.TotalFreeMinutes),
		TotalSchedules:   s.TotalSchedules,
	}
}

// fromDomainConflicted конвертирует конфликтную комнату в DTO
func fromDomainConflicted(s domain.RoomSuggestion) ConflictedRoomInfo {
	info := ConflictedRoomInfo{
		RoomID:     s.RoomID,
		Department: s.Department,
	}
	if s.Conflict != nil {
		info.Conflict = ConflictingScheduleInfo{
			Course:     s.Conflict.Course,
			Department: s.Conflict.Department,
			TimeSlot:   s.Conflict.TimeSlot(),
		}
	}
	return info
}
