package domain

// PaginationParams is a 1-based page request for list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the number of rows to skip.
func (p PaginationParams) Offset() int {
	if p.Page < 1 || p.PageSize < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// TotalPages returns how many pages total rows span; zero when PageSize is unset.
func (p PaginationParams) TotalPages(total int) int {
	if p.PageSize < 1 || total < 1 {
		return 0
	}
	return (total + p.PageSize - 1) / p.PageSize
}
