package suggest_rooms

import (
	"sort"
	"strings"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
)

// SortField поле сортировки результирующего набора
type SortField string

const (
	SortByRoomID     SortField = "room_id"
	SortByFreeSlots  SortField = "free_slots"
	SortByDepartment SortField = "department"
)

// ResultSet чистое, повторяемое преобразование уже полученного набора
// подсказок: повторная фильтрация, пересортировка и пагинация без
// обращения к источнику данных. Исходный набор не изменяется
type ResultSet struct {
	source  []domain.RoomSuggestion // Полный набор, как получен
	view    []domain.RoomSuggestion // Текущее представление (после фильтра и сортировки)
	page    int
	perPage int
}

// NewResultSet создает результирующий набор с сортировкой по умолчанию:
// свободное время по убыванию, при равенстве - room_id по возрастанию
func NewResultSet(suggestions []domain.RoomSuggestion, perPage int) *ResultSet {
	if perPage < 1 {
		perPage = domain.DefaultPageSize
	}

	rs := &ResultSet{
		source:  suggestions,
		view:    make([]domain.RoomSuggestion, len(suggestions)),
		page:    1,
		perPage: perPage,
	}
	copy(rs.view, suggestions)
	rs.sortView(SortByFreeSlots)
	return rs
}

// Filter повторно фильтрует набор по подстроке в room_id или факультете
// (без учета регистра). Пустой запрос восстанавливает полный набор.
// Текущая страница сбрасывается на первую
func (rs *ResultSet) Filter(query string) {
	rs.view = rs.view[:0]

	if query == "" {
		rs.view = append(rs.view, rs.source...)
	} else {
		q := strings.ToLower(query)
		for _, s := range rs.source {
			if strings.Contains(strings.ToLower(s.RoomID), q) ||
				strings.Contains(strings.ToLower(s.Department), q) {
				rs.view = append(rs.view, s)
			}
		}
	}

	rs.sortView(SortByFreeSlots)
	rs.page = 1
}

// SortBy пересортировывает текущее представление
// Неизвестное поле сортировки игнорируется
func (rs *ResultSet) SortBy(field SortField) {
	switch field {
	case SortByRoomID, SortByFreeSlots, SortByDepartment:
		rs.sortView(field)
	}
}

// SetPage переходит на страницу n
// Запрос страницы за пределами набора - no-op, текущая страница сохраняется
func (rs *ResultSet) SetPage(n int) {
	if n < 1 || n > rs.TotalPages() {
		return
	}
	rs.page = n
}

// Page возвращает элементы текущей страницы
func (rs *ResultSet) Page() []domain.RoomSuggestion {
	start := (rs.page - 1) * rs.perPage
	if start >= len(rs.view) {
		return nil
	}
	end := start + rs.perPage
	if end > len(rs.view) {
		end = len(rs.view)
	}
	return rs.view[start:end]
}

// PageNumber возвращает номер текущей страницы
func (rs *ResultSet) PageNumber() int {
	return rs.page
}

// TotalItems возвращает размер текущего представления
func (rs *ResultSet) TotalItems() int {
	return len(rs.view)
}

// TotalPages возвращает количество страниц текущего представления
func (rs *ResultSet) TotalPages() int {
	if len(rs.view) == 0 {
		return 0
	}
	return (len(rs.view) + rs.perPage - 1) / rs.perPage
}

// sortView сортирует представление детерминированно:
// при любом поле сортировки равные элементы упорядочиваются по room_id
func (rs *ResultSet) sortView(field SortField) {
	sort.SliceStable(rs.view, func(i, j int) bool {
		a, b := rs.view[i], rs.view[j]
		switch field {
		case SortByFreeSlots:
			if a.TotalFreeMinutes != b.TotalFreeMinutes {
				return a.TotalFreeMinutes > b.TotalFreeMinutes
			}
		case SortByDepartment:
			if a.Department != b.Department {
				return a.Department < b.Department
			}
		}
		return a.RoomID < b.RoomID
	})
}
