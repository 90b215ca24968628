package repository

// PageRequest is the page/limit pair accepted by paginated endpoints.
// Validation tags keep limit within the API window; the repository's
// own clamp still applies underneath.
type PageRequest struct {
	Page  int `json:"page" query:"page" validate:"omitempty,min=1"`
	Limit int `json:"limit" query:"limit" validate:"omitempty,min=1,max=100"`
}

// Normalize fills in defaults for zero values: page 1, limit 10.
func (p *PageRequest) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
}

// Skip converts the 1-based page into a row offset.
func (p PageRequest) Skip() int {
	return (p.Page - 1) * p.Limit
}

// PaginationInfo describes a result page for clients.
type PaginationInfo struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// NewPaginationInfo derives page metadata from a total row count.
// An empty result set has zero total pages and neither direction set.
func NewPaginationInfo(total int64, page, limit int) PaginationInfo {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return PaginationInfo{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
