package pagination

import "fmt"

// Meta contains metadata about one page of a result set.
type Meta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	FirstItem   int  `json:"first_item"   yaml:"first_item"`
	LastItem    int  `json:"last_item"    yaml:"last_item"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// TotalPages returns ceil(totalItems/pageSize), with an empty set counted as one
// (empty) page so that page 1 is always valid.
func TotalPages(totalItems, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	pages := totalItems / pageSize
	if totalItems%pageSize > 0 {
		pages++
	}
	if pages < 1 {
		return 1
	}
	return pages
}

// Bounds returns the half-open index range [start, end) of page within totalItems.
// Pages past the end yield an empty range at totalItems.
//
//nolint:nonamedreturns // Named returns document which bound is which.
func Bounds(page, pageSize, totalItems int) (start, end int) {
	if page < MinPage {
		page = MinPage
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	start = (page - 1) * pageSize
	if start > totalItems {
		start = totalItems
	}
	end = start + pageSize
	if end > totalItems {
		end = totalItems
	}
	return start, end
}

// NewMeta creates pagination metadata for page of a set of totalItems.
func NewMeta(page, pageSize, totalItems int) Meta {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < MinPage {
		page = MinPage
	}
	totalPages := TotalPages(totalItems, pageSize)
	start, end := Bounds(page, pageSize, totalItems)

	first := 0
	if end > start {
		first = start + 1
	}

	return Meta{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		FirstItem:   first,
		LastItem:    end,
		HasPrevious: page > 1,
		HasNext:     page < totalPages,
	}
}

// IsFirst reports whether the metadata describes the first page.
func (m Meta) IsFirst() bool {
	return !m.HasPrevious
}

// IsLast reports whether the metadata describes the last page.
func (m Meta) IsLast() bool {
	return !m.HasNext
}

// RangeSummary describes which items are shown, e.g. "Showing 21-25 of 25 products".
func (m Meta) RangeSummary() string {
	return fmt.Sprintf("Showing %d-%d of %d products", m.FirstItem, m.LastItem, m.TotalItems)
}

// PageLabel is the current-of-total label, e.g. "3 / 5".
func (m Meta) PageLabel() string {
	return fmt.Sprintf("%d / %d", m.CurrentPage, m.TotalPages)
}
