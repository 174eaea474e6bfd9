package paging

const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// Page описывает одну страницу элементов.
type Page[T any] struct {
	Items    []T  `json:"items"`     // элементы на текущей странице
	Page     int  `json:"page"`      // номер страницы (с 1)
	PageSize int  `json:"page_size"` // количество элементов на странице
	HasNext  bool `json:"has_next"`
	HasPrev  bool `json:"has_prev"`
	Total    int  `json:"total"` // общее количество элементов
}

// Normalize приводит номер страницы и размер к допустимым: page >= 1,
// size в [1, MaxPageSize], 0 и меньше — DefaultPageSize.
func Normalize(page, pageSize int) (int, int) {
	if page <= 0 {
		page = 1
	}
	switch {
	case pageSize <= 0:
		pageSize = DefaultPageSize
	case pageSize > MaxPageSize:
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// Offset для LIMIT/OFFSET запроса.
func Offset(page, pageSize int) int {
	return (page - 1) * pageSize
}

// New собирает страницу из уже выбранных из БД элементов.
func New[T any](items []T, page, pageSize int, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	end := Offset(page, pageSize) + len(items)
	return Page[T]{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		HasNext:  int64(end) < total,
		HasPrev:  page > 1,
		Total:    int(total),
	}
}
