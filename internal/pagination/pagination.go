// Package pagination provides fixed-size page slicing over in-memory
// snapshots, with page numbers clamped into range rather than rejected.
package pagination

import "math"

// PageRequest holds pagination parameters.
type PageRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// Defaults fills in default values when page or page_size are not provided.
func (p *PageRequest) Defaults() {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.PageSize == 0 {
		p.PageSize = 20
	}
}

// TotalPages returns the page count for totalItems items.
func (p PageRequest) TotalPages(totalItems int) int {
	return int(math.Ceil(float64(totalItems) / float64(p.PageSize)))
}

// Clamp pins the requested page into [1, totalPages]. A page below 1 becomes
// 1; a page past the end becomes the last page, or 1 when there are no pages
// at all. Clamp runs on every computation, not only on navigation, so a
// shrinking result set can never leave a caller on a page that no longer
// exists.
func (p PageRequest) Clamp(totalItems int) PageRequest {
	totalPages := p.TotalPages(totalItems)
	out := p
	if out.Page < 1 {
		out.Page = 1
	}
	if totalPages > 0 && out.Page > totalPages {
		out.Page = totalPages
	}
	if totalPages == 0 {
		out.Page = 1
	}
	return out
}

// Slice returns the items of the requested page, preserving order. The
// request must already be clamped; an empty input yields an empty page.
func Slice[T any](items []T, p PageRequest) []T {
	start := (p.Page - 1) * p.PageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + p.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// PageResponse wraps a paginated list of items with metadata.
type PageResponse[T any] struct {
	Data       []T `json:"data"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// NewPageResponse creates a PageResponse from the given data and total count.
func NewPageResponse[T any](data []T, page, pageSize, totalItems int) PageResponse[T] {
	totalPages := int(math.Ceil(float64(totalItems) / float64(pageSize)))
	if data == nil {
		data = []T{}
	}
	return PageResponse[T]{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
