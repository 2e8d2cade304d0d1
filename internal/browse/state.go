// Package browse holds the catalog working set and the state transitions driven by
// user intents: search, sort, page-size change, and page navigation.
//
// State is an immutable value. Every transition returns a new State and leaves the
// receiver untouched, so handlers can be tested without any rendering surface.
package browse

import (
	"strings"

	"github.com/rshade/catalogview/internal/catalog"
	"github.com/rshade/catalogview/internal/pagination"
)

// State is the catalog view state.
type State struct {
	all      []catalog.Product
	filtered []catalog.Product
	query    string
	page     int
	pageSize int
	sort     pagination.SortState
}

// New creates the initial state for a loaded catalog: everything visible, unsorted,
// on page 1. A non-positive pageSize selects pagination.DefaultPageSize.
func New(products []catalog.Product, pageSize int) State {
	if pageSize < pagination.MinPageSize {
		pageSize = pagination.DefaultPageSize
	}
	all := make([]catalog.Product, len(products))
	copy(all, products)
	return State{
		all:      all,
		filtered: all,
		page:     pagination.DefaultPage,
		pageSize: pageSize,
	}
}

// All returns the full loaded catalog.
func (s State) All() []catalog.Product { return s.all }

// Filtered returns the working set in display order.
func (s State) Filtered() []catalog.Product { return s.filtered }

// Query returns the normalized search query.
func (s State) Query() string { return s.query }

// Page returns the current 1-based page.
func (s State) Page() int { return s.page }

// PageSize returns the number of products per page.
func (s State) PageSize() int { return s.pageSize }

// SortState returns the active sort selection.
func (s State) SortState() pagination.SortState { return s.sort }

// TotalPages returns the page count of the working set; an empty set has one page.
func (s State) TotalPages() int {
	return pagination.TotalPages(len(s.filtered), s.pageSize)
}

// PageItems returns the products on the current page.
func (s State) PageItems() []catalog.Product {
	start, end := pagination.Bounds(s.page, s.pageSize, len(s.filtered))
	return s.filtered[start:end:end]
}

// Meta returns pagination metadata for the current page.
func (s State) Meta() pagination.Meta {
	return pagination.NewMeta(s.page, s.pageSize, len(s.filtered))
}

// NormalizeQuery trims and case-folds a raw search query.
func NormalizeQuery(raw string) string {
	return catalog.Fold(strings.TrimSpace(raw))
}

// Search filters the catalog to products whose title contains query, ignoring case,
// in catalog order, and returns to page 1. An empty query restores the full catalog.
// The sort selection is kept but not re-applied.
func (s State) Search(query string) State {
	q := NormalizeQuery(query)
	s.query = q
	s.page = pagination.DefaultPage

	if q == "" {
		s.filtered = s.all
		return s
	}

	filtered := make([]catalog.Product, 0, len(s.all))
	for _, p := range s.all {
		if strings.Contains(p.FoldedTitle(), q) {
			filtered = append(filtered, p)
		}
	}
	s.filtered = filtered
	return s
}

// Sort applies a click on field's sort control and returns to page 1.
// Invalid fields return the state unchanged.
func (s State) Sort(field pagination.SortField) State {
	if !field.Valid() {
		return s
	}
	s.sort = s.sort.Toggle(field)
	s.filtered = pagination.NewProductSorter().Sort(s.filtered, s.sort)
	s.page = pagination.DefaultPage
	return s
}

// SetPageSize changes the page size and returns to page 1.
// Sizes below pagination.MinPageSize return the state unchanged.
func (s State) SetPageSize(size int) State {
	if size < pagination.MinPageSize {
		return s
	}
	s.pageSize = size
	s.page = pagination.DefaultPage
	return s
}

// CanGoTo reports whether page is within [1, TotalPages()].
func (s State) CanGoTo(page int) bool {
	return page >= pagination.MinPage && page <= s.TotalPages()
}

// GoToPage moves to page. Pages outside [1, TotalPages()] return the state unchanged.
func (s State) GoToPage(page int) State {
	if !s.CanGoTo(page) {
		return s
	}
	s.page = page
	return s
}

// Navigate moves relative to the current page.
func (s State) Navigate(nav Nav) State {
	return s.GoToPage(nav.Target(s.page, s.TotalPages()))
}
