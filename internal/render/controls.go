package render

import "github.com/rshade/catalogview/internal/pagination"

// Pagination button labels.
const (
	LabelFirst = "« First"
	LabelPrev  = "‹ Prev"
	LabelNext  = "Next ›"
	LabelLast  = "Last »"
)

// Button is one pagination control. Target is the page it navigates to; the
// current-page indicator targets its own page and is never disabled.
type Button struct {
	Label    string
	Target   int
	Disabled bool
	Current  bool
}

// Controls is the pagination strip: first, prev, current-of-total, next, last.
type Controls struct {
	First   Button
	Prev    Button
	Current Button
	Next    Button
	Last    Button
}

// Buttons returns the controls in display order.
func (c Controls) Buttons() []Button {
	return []Button{c.First, c.Prev, c.Current, c.Next, c.Last}
}

// BuildControls derives the pagination strip from page metadata. First and prev are
// disabled on page 1, next and last on the last page.
func BuildControls(meta pagination.Meta) Controls {
	onFirst := meta.IsFirst()
	onLast := meta.IsLast()
	return Controls{
		First:   Button{Label: LabelFirst, Target: 1, Disabled: onFirst},
		Prev:    Button{Label: LabelPrev, Target: meta.CurrentPage - 1, Disabled: onFirst},
		Current: Button{Label: meta.PageLabel(), Target: meta.CurrentPage, Current: true},
		Next:    Button{Label: LabelNext, Target: meta.CurrentPage + 1, Disabled: onLast},
		Last:    Button{Label: LabelLast, Target: meta.TotalPages, Disabled: onLast},
	}
}

// Summary returns the item-range summary, e.g. "Showing 21-25 of 25 products".
func Summary(meta pagination.Meta) string {
	return meta.RangeSummary()
}
