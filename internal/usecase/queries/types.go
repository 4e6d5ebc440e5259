package queries

// Pagination mirrors the list response envelope used by every collection
// endpoint: {items, pagination{total, page, limit, totalPages}}.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// NormalizePage clamps page/limit and returns the SQL offset alongside the
// normalized values.
func NormalizePage(page, limit int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit, (page - 1) * limit
}

func NewPagination(total int64, page, limit int) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages < 1 {
		totalPages = 1
	}
	return Pagination{Total: total, Page: page, Limit: limit, TotalPages: totalPages}
}
