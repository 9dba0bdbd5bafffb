package suggest_rooms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
)

func suggestion(roomID, department string, freeMinutes int) domain.RoomSuggestion {
	return domain.RoomSuggestion{
		RoomID:           roomID,
		Department:       department,
		TotalFreeMinutes: freeMinutes,
		Status:           domain.RoomAvailable,
	}
}

func roomIDs(items []domain.RoomSuggestion) []string {
	ids := make([]string, 0, len(items))
	for _, s := range items {
		ids = append(ids, s.RoomID)
	}
	return ids
}

func TestResultSet_DefaultOrdering(t *testing.T) {
	rs := NewResultSet([]domain.RoomSuggestion{
		suggestion("R1", "Mathematics", 300),
		suggestion("R3", "Physics", 480),
		suggestion("R2", "Mathematics", 480),
	}, 10)

	// Свободное время по убыванию, при равенстве - room_id по возрастанию
	assert.Equal(t, []string{"R2", "R3", "R1"}, roomIDs(rs.Page()))
}

func TestResultSet_Filter(t *testing.T) {
	rs := NewResultSet([]domain.RoomSuggestion{
		suggestion("R1", "Mathematics", 300),
		suggestion("R2", "Physics", 480),
		suggestion("LAB-1", "Physics", 200),
	}, 10)

	rs.Filter("physics")
	assert.Equal(t, []string{"R2", "LAB-1"}, roomIDs(rs.Page()))

	rs.Filter("lab")
	assert.Equal(t, []string{"LAB-1"}, roomIDs(rs.Page()))

	// Пустой запрос восстанавливает полный набор
	rs.Filter("")
	assert.Equal(t, 3, rs.TotalItems())
}

func TestResultSet_FilterResetsPage(t *testing.T) {
	items := make([]domain.RoomSuggestion, 0, 6)
	for _, id := range []string{"R1", "R2", "R3", "R4", "R5", "R6"} {
		items = append(items, suggestion(id, "", 100))
	}

	rs := NewResultSet(items, 2)
	rs.SetPage(3)
	require.Equal(t, 3, rs.PageNumber())

	rs.Filter("R")
	assert.Equal(t, 1, rs.PageNumber())
}

func TestResultSet_SortBy(t *testing.T) {
	rs := NewResultSet([]domain.RoomSuggestion{
		suggestion("R2", "Physics", 300),
		suggestion("R1", "Mathematics", 480),
		suggestion("R3", "Chemistry", 200),
	}, 10)

	rs.SortBy(SortByRoomID)
	assert.Equal(t, []string{"R1", "R2", "R3"}, roomIDs(rs.Page()))

	rs.SortBy(SortByDepartment)
	assert.Equal(t, []string{"R3", "R1", "R2"}, roomIDs(rs.Page()))

	// Неизвестное поле игнорируется
	rs.SortBy(SortField("capacity"))
	assert.Equal(t, []string{"R3", "R1", "R2"}, roomIDs(rs.Page()))
}

func TestResultSet_Pagination(t *testing.T) {
	items := make([]domain.RoomSuggestion, 0, 5)
	for _, id := range []string{"R1", "R2", "R3", "R4", "R5"} {
		items = append(items, suggestion(id, "", 100))
	}

	rs := NewResultSet(items, 2)
	assert.Equal(t, 5, rs.TotalItems())
	assert.Equal(t, 3, rs.TotalPages())
	assert.Equal(t, []string{"R1", "R2"}, roomIDs(rs.Page()))

	rs.SetPage(3)
	assert.Equal(t, []string{"R5"}, roomIDs(rs.Page()))

	// Страница за пределами набора - no-op
	rs.SetPage(7)
	assert.Equal(t, 3, rs.PageNumber())
	assert.Equal(t, []string{"R5"}, roomIDs(rs.Page()))

	rs.SetPage(0)
	assert.Equal(t, 3, rs.PageNumber())
}

func TestResultSet_EmptySet(t *testing.T) {
	rs := NewResultSet(nil, 10)

	assert.Equal(t, 0, rs.TotalItems())
	assert.Equal(t, 0, rs.TotalPages())
	assert.Empty(t, rs.Page())

	rs.SetPage(2)
	assert.Equal(t, 1, rs.PageNumber())
}
