package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/catalogview/internal/render"
)

// Column widths for the catalog table. Description takes whatever is left.
const (
	colWidthID          = 5
	colWidthImage       = 28
	colWidthTitle       = 26
	colWidthPrice       = 10
	colWidthCategory    = 14
	minDescriptionWidth = 20

	// cellPadding is the horizontal padding the table style adds around each cell.
	cellPadding = 2
)

// View renders the current view (Bubble Tea interface).
func (m CatalogModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateError:
		return m.renderErrorView()
	case ViewStateLoading:
		return m.renderLoadingView()
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}

func (m CatalogModel) renderLoadingView() string {
	if m.loadingState == nil {
		return "Loading...\n"
	}
	return m.loadingState.View() + "\n"
}

func (m CatalogModel) renderErrorView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		CriticalStyle.Render(render.ErrorPage(m.err).ErrorText()),
		SubtleStyle.Render("Press q to quit."),
	) + "\n"
}

func (m CatalogModel) renderListView() string {
	page := m.Page()
	sections := []string{m.renderTitle()}

	if m.searching || m.view.Query() != "" {
		sections = append(sections, m.search.View())
	}

	sections = append(sections, m.table.View())

	sections = append(sections,
		m.renderControls(page.Controls),
		m.renderStatusBar(page),
		m.help.View(m.keys),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m CatalogModel) renderTitle() string {
	title := HeaderStyle.Render("PRODUCT CATALOG")
	if q := m.view.Query(); q != "" {
		title += InfoStyle.Render(fmt.Sprintf("  %d of %d match %q",
			len(m.view.Filtered()), len(m.view.All()), q))
	}
	return title
}

// renderControls draws the pagination strip with disabled buttons dimmed.
func (m CatalogModel) renderControls(c render.Controls) string {
	parts := make([]string, 0, len(c.Buttons()))
	for _, b := range c.Buttons() {
		switch {
		case b.Current:
			parts = append(parts, ButtonActiveStyle.Render(b.Label))
		case b.Disabled:
			parts = append(parts, ButtonDisabledStyle.Render(b.Label))
		default:
			parts = append(parts, ButtonStyle.Render(b.Label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m CatalogModel) renderStatusBar(page render.Page) string {
	status := []string{page.Summary, fmt.Sprintf("Per page: %d", m.view.PageSize())}
	if s := page.Sort.String(); s != "" {
		status = append(status, "Sort: "+s)
	}
	return SubtleStyle.Render(strings.Join(status, " | "))
}

// rebuildTable reconstructs the table for the current page and window size.
func (m *CatalogModel) rebuildTable() {
	page := m.Page()

	used := colWidthID + colWidthImage + colWidthTitle + colWidthPrice + colWidthCategory +
		cellPadding*len(render.Columns)
	descWidth := m.width - used
	if descWidth < minDescriptionWidth {
		descWidth = minDescriptionWidth
	}
	widths := []int{colWidthID, colWidthImage, colWidthTitle, colWidthPrice, colWidthCategory, descWidth}

	columns := make([]table.Column, len(render.Columns))
	for i, col := range render.Columns {
		columns[i] = table.Column{Title: page.Header(col), Width: widths[i]}
	}

	rows := make([]table.Row, len(page.Rows))
	for i, r := range page.Rows {
		rows[i] = table.Row{r.ID, r.Image, r.Title, r.Price, r.Category, oneLine(r.Description)}
	}
	if page.Empty() {
		rows = []table.Row{noResultsRow(widths)}
	}

	availableHeight := m.height - chromeHeight
	if m.help.ShowAll {
		availableHeight -= len(m.keys.FullHelp())
	}
	if availableHeight < minHeight {
		availableHeight = minHeight
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(availableHeight),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	m.table = t
}

// noResultsRow is the single row shown for an empty page. The message goes in the
// first column wide enough to hold it.
func noResultsRow(widths []int) table.Row {
	row := make(table.Row, len(widths))
	for i, w := range widths {
		if w >= len(render.NoResultsMessage) {
			row[i] = render.NoResultsMessage
			return row
		}
	}
	row[len(row)-1] = render.NoResultsMessage
	return row
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
