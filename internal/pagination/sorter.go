package pagination

import (
	"slices"
	"strings"

	"github.com/rshade/catalogview/internal/catalog"
)

// SortField names a sortable product column.
type SortField string

// Sortable fields.
const (
	SortNone  SortField = ""
	SortPrice SortField = "price"
	SortTitle SortField = "title"
)

// Valid reports whether f is a sortable field.
func (f SortField) Valid() bool {
	return f == SortPrice || f == SortTitle
}

// ValidSortFields returns the sortable field names in display order.
func ValidSortFields() []string {
	return []string{string(SortPrice), string(SortTitle)}
}

// SortOrder is the sort direction.
type SortOrder string

// Sort directions.
const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Indicators shown next to the active sort control.
const (
	IndicatorAsc  = "▲"
	IndicatorDesc = "▼"
)

// SortState is the active sort selection. The zero value means unsorted.
type SortState struct {
	Field SortField `json:"field,omitempty"`
	Order SortOrder `json:"order,omitempty"`
}

// Toggle applies a click on field's sort control: the active field flips direction,
// any other field becomes active ascending. Invalid fields leave the state unchanged.
func (s SortState) Toggle(field SortField) SortState {
	if !field.Valid() {
		return s
	}
	if s.Field == field {
		if s.Order == SortAsc {
			return SortState{Field: field, Order: SortDesc}
		}
		return SortState{Field: field, Order: SortAsc}
	}
	return SortState{Field: field, Order: SortAsc}
}

// Active reports whether a field is selected.
func (s SortState) Active() bool {
	return s.Field.Valid()
}

// Indicator returns the marker for field's control; only the active field has one.
func (s SortState) Indicator(field SortField) string {
	if !s.Active() || s.Field != field {
		return ""
	}
	if s.Order == SortDesc {
		return IndicatorDesc
	}
	return IndicatorAsc
}

// String renders the state as a sort expression ("price:asc"), or "" when unsorted.
func (s SortState) String() string {
	if !s.Active() {
		return ""
	}
	return string(s.Field) + ":" + string(s.Order)
}

// ProductSorter orders products by a SortState.
type ProductSorter struct{}

// NewProductSorter creates a ProductSorter.
func NewProductSorter() *ProductSorter {
	return &ProductSorter{}
}

// Sort returns a new slice ordered by state; the input is not modified.
// Equal keys compare equal and keep their relative order. Descending uses the exact
// reverse comparison, so for distinct keys it is the reverse of ascending.
// An inactive state returns an unmodified copy.
func (s *ProductSorter) Sort(products []catalog.Product, state SortState) []catalog.Product {
	if !state.Active() {
		return slices.Clone(products)
	}

	// Fold each title once rather than on every comparison.
	folded := make([]string, len(products))
	if state.Field == SortTitle {
		for i := range products {
			folded[i] = products[i].FoldedTitle()
		}
	}

	idx := make([]int, len(products))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		c := compareProducts(products[a], products[b], folded[a], folded[b], state.Field)
		if state.Order == SortDesc {
			return -c
		}
		return c
	})

	sorted := make([]catalog.Product, len(products))
	for i, j := range idx {
		sorted[i] = products[j]
	}
	return sorted
}

func compareProducts(a, b catalog.Product, titleA, titleB string, field SortField) int {
	switch field {
	case SortPrice:
		return a.Price.Cmp(b.Price)
	case SortTitle:
		return strings.Compare(titleA, titleB)
	default:
		return 0
	}
}
