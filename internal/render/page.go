package render

import (
	"github.com/rshade/catalogview/internal/browse"
	"github.com/rshade/catalogview/internal/catalog"
	"github.com/rshade/catalogview/internal/pagination"
)

// Page is everything a writer needs to draw one page of the catalog, or the load
// error shown in its place.
type Page struct {
	Rows     []Row
	Controls Controls
	Meta     pagination.Meta
	Sort     pagination.SortState
	Query    string
	Summary  string
	Err      error
}

// FromState builds the current page of s.
func FromState(s browse.State, policy catalog.ImagePolicy) Page {
	meta := s.Meta()
	return Page{
		Rows:     BuildRows(s.PageItems(), policy),
		Controls: BuildControls(meta),
		Meta:     meta,
		Sort:     s.SortState(),
		Query:    s.Query(),
		Summary:  Summary(meta),
	}
}

// ErrorPage builds a page that shows err instead of the table.
func ErrorPage(err error) Page {
	return Page{Err: err}
}

// Empty reports whether the page has no rows to show.
func (p Page) Empty() bool {
	return len(p.Rows) == 0
}

// ErrorText returns the message displayed in place of the table, or "" when the page
// has no error.
func (p Page) ErrorText() string {
	if p.Err == nil {
		return ""
	}
	return "Error: " + p.Err.Error()
}

// Header returns the column header for col with the sort indicator appended when the
// column is the active sort field.
func (p Page) Header(col string) string {
	var field pagination.SortField
	switch col {
	case "Title":
		field = pagination.SortTitle
	case "Price":
		field = pagination.SortPrice
	default:
		return col
	}
	if ind := p.Sort.Indicator(field); ind != "" {
		return col + " " + ind
	}
	return col
}
