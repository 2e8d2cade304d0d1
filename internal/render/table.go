package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"
)

// tabwriterPadding is the minimum padding between table columns.
const tabwriterPadding = 2

// descriptionWidth caps the description column of the text table.
const descriptionWidth = 60

// truncateMinLen is the width below which no ellipsis is added.
const truncateMinLen = 3

// RenderTable writes page as an aligned text table followed by the pagination strip
// and range summary.
func RenderTable(w io.Writer, page Page) error {
	if page.Err != nil {
		if _, err := fmt.Fprintln(w, page.ErrorText()); err != nil {
			return fmt.Errorf("writing error: %w", err)
		}
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	headers := make([]string, len(Columns))
	rules := make([]string, len(Columns))
	for i, col := range Columns {
		headers[i] = page.Header(col)
		rules[i] = strings.Repeat("-", utf8.RuneCountInString(headers[i]))
	}
	if _, err := fmt.Fprintln(tw, strings.Join(headers, "\t")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, strings.Join(rules, "\t")); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}

	if page.Empty() {
		if _, err := fmt.Fprintln(tw, NoResultsMessage); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	for _, row := range page.Rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			row.ID, row.Image, cell(row.Title, 0), row.Price, row.Category,
			cell(row.Description, descriptionWidth),
		); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	if _, err := fmt.Fprintf(w, "\n%s\n%s\n", ControlStrip(page.Controls), page.Summary); err != nil {
		return fmt.Errorf("writing pagination: %w", err)
	}
	return nil
}

// ControlStrip renders the pagination buttons on one line. Enabled buttons are
// bracketed, disabled ones parenthesized.
func ControlStrip(c Controls) string {
	parts := make([]string, 0, len(c.Buttons()))
	for _, b := range c.Buttons() {
		switch {
		case b.Current:
			parts = append(parts, b.Label)
		case b.Disabled:
			parts = append(parts, "("+b.Label+")")
		default:
			parts = append(parts, "["+b.Label+"]")
		}
	}
	return strings.Join(parts, " ")
}

// cell flattens s onto one line and truncates it to maxLen runes; maxLen 0 keeps the
// full text.
func cell(s string, maxLen int) string {
	s = strings.Join(strings.Fields(s), " ")
	if maxLen == 0 || utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if maxLen <= truncateMinLen {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
