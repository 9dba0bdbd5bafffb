package check_overlap

import (
	checkOverlap "github.com/m04kA/EDU-SchedulingService/internal/usecase/check_overlap"
)

// CheckOverlapRequest HTTP request model
type CheckOverlapRequest struct {
	Date  *string `json:"date,omitempty"`  // "2026-09-01"
	Start *string `json:"start,omitempty"` // "10:00"
	End   *string `json:"end,omitempty"`   // "11:00"
}

// CheckOverlapResponse HTTP response model
type CheckOverlapResponse struct {
	RoomID             string         `json:"roomId"`
	Day                string         `json:"day"`
	TotalSchedules     int            `json:"totalSchedules"`
	Conflicts          []ConflictInfo `json:"conflicts"`
	CandidateConflicts []ConflictInfo `json:"candidateConflicts,omitempty"`
	FreeSlots          []SlotInfo     `json:"freeSlots"`
	TotalFreeMinutes   int            `json:"totalFreeMinutes"`
	UtilizationPercent float64        `json:"utilizationPercent"`
}

// ConflictInfo описание конфликта в HTTP ответе
type ConflictInfo struct {
	Type            string `json:"type"`
	Severity        string `json:"severity"`
	FirstCourse     string `json:"firstCourse"`
	FirstSlot       string `json:"firstSlot"`
	SecondCourse    string `json:"secondCourse"`
	SecondSlot      string `json:"secondSlot"`
	OverlapPeriod   string `json:"overlapPeriod"`
	OverlapMinutes  int    `json:"overlapMinutes"`
	OverlapDuration string `json:"overlapDuration"`
}

// SlotInfo описание свободного окна в HTTP ответе
type SlotInfo struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	DurationMinutes int    `json:"durationMinutes"`
	Duration        string `json:"duration"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckOverlapRequest) ToUseCaseRequest(roomID, day string) *checkOverlap.Request {
	return &checkOverlap.Request{
		RoomID: roomID,
		Day:    day,
		Date:   r.Date,
		Start:  r.Start,
		End:    r.End,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkOverlap.Response) *CheckOverlapResponse {
	return &CheckOverlapResponse{
		RoomID:             resp.RoomID,
		Day:                resp.Day,
		TotalSchedules:     resp.TotalSchedules,
		Conflicts:          conflictInfos(resp.Conflicts),
		CandidateConflicts: conflictInfos(resp.CandidateConflicts),
		FreeSlots:          slotInfos(resp.FreeSlots),
		TotalFreeMinutes:   resp.TotalFreeMinutes,
		UtilizationPercent: resp.UtilizationPercent,
	}
}

func conflictInfos(conflicts []checkOverlap.ConflictInfo) []ConflictInfo {
	result := make([]ConflictInfo, 0, len(conflicts))
	for _, c := range conflicts {
		result = append(result, ConflictInfo{
			Type:            c.Type,
			Severity:        c.Severity,
			FirstCourse:     c.FirstCourse,
			FirstSlot:       c.FirstSlot,
			SecondCourse:    c.SecondCourse,
			SecondSlot:      c.SecondSlot,
			OverlapPeriod:   c.OverlapPeriod,
			OverlapMinutes:  c.OverlapMinutes,
			OverlapDuration: c.OverlapDuration,
		})
	}
	return result
}

func slotInfos(slots []checkOverlap.SlotInfo) []SlotInfo {
	result := make([]SlotInfo, 0, len(slots))
	for _, s := range slots {
		result = append(result, SlotInfo{
			Start:           s.Start,
			End:             s.End,
			DurationMinutes: s.DurationMinutes,
			Duration:        s.Duration,
		})
	}
	return result
}
