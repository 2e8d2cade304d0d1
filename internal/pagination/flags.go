package pagination

import (
	"errors"
	"fmt"
	"strings"
)

// Paging defaults and validation limits.
const (
	DefaultPageSize = 10
	MinPageSize     = 1
	MaxPageSize     = 1000
	DefaultPage     = 1
	MinPage         = 1
)

// Common validation errors.
var (
	ErrInvalidPageSize   = errors.New("page-size must be between 1 and 1000")
	ErrInvalidPage       = errors.New("page must be >= 1")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'price:desc')")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
	ErrInvalidSortField  = errors.New("invalid sort field")
)

// PageSizeOptions are the page sizes offered for selection, in ascending order.
//
//nolint:gochecknoglobals // Read-only option list.
var PageSizeOptions = []int{5, 10, 20, 50}

// Params holds paging and sorting flag values.
type Params struct {
	// Page is the 1-based page number.
	Page int

	// PageSize is the number of products per page.
	PageSize int

	// Sort is the raw sort expression ("price", "title:desc", or empty).
	Sort string
}

// NewParams creates Params with default values.
func NewParams() *Params {
	return &Params{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}
}

// Validate checks the bounds of the page values and the sort expression.
func (p Params) Validate() error {
	if p.Page < MinPage {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.Page)
	}
	if p.PageSize < MinPageSize || p.PageSize > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
	}
	if _, _, err := ParseSort(p.Sort); err != nil {
		return err
	}
	return nil
}

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// ParseSort parses a sort string in the format "field" or "field:order".
// Examples: "price", "price:desc", "title:asc". An empty string means unsorted.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(sortStr string) (field SortField, order SortOrder, err error) {
	if strings.TrimSpace(sortStr) == "" {
		return SortNone, SortAsc, nil
	}

	parts := strings.Split(sortStr, ":")
	var rawField, rawOrder string
	switch len(parts) {
	case 1:
		rawField = strings.TrimSpace(parts[0])
		rawOrder = string(SortAsc)
	case sortPartsMax:
		rawField = strings.TrimSpace(parts[0])
		rawOrder = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return SortNone, SortAsc, fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	if rawField == "" {
		return SortNone, SortAsc, ErrEmptySortField
	}

	field = SortField(strings.ToLower(rawField))
	if !field.Valid() {
		return SortNone, SortAsc, fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSortField, rawField,
			strings.Join(ValidSortFields(), ", "))
	}

	order = SortOrder(rawOrder)
	if order != SortAsc && order != SortDesc {
		return SortNone, SortAsc, fmt.Errorf("%w: got %q", ErrInvalidSortOrder, rawOrder)
	}

	return field, order, nil
}

// NextPageSize returns the option after current, wrapping to the smallest.
// A current value that is not an option snaps to the first option above it.
// options must be ascending; when empty, PageSizeOptions is used.
func NextPageSize(current int, options ...int) int {
	if len(options) == 0 {
		options = PageSizeOptions
	}
	for _, size := range options {
		if size > current {
			return size
		}
	}
	return options[0]
}

// PrevPageSize returns the option before current, wrapping to the largest.
func PrevPageSize(current int, options ...int) int {
	if len(options) == 0 {
		options = PageSizeOptions
	}
	for i := len(options) - 1; i >= 0; i-- {
		if options[i] < current {
			return options[i]
		}
	}
	return options[len(options)-1]
}
