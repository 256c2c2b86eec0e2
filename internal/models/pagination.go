package models

type PaginatedResponse struct {
	Data     any `json:"data"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// Paginate returns the page of items and the total before slicing.
func Paginate[T any](items []T, page, pageSize int) ([]T, int) {
	total := len(items)

	start := (page - 1) * pageSize
	if start >= total || start < 0 {
		return []T{}, total
	}

	end := min(start+pageSize, total)

	return items[start:end], total
}
