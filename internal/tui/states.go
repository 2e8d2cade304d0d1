package tui

// ViewState is the screen the catalog model is showing.
type ViewState int

// View states.
const (
	ViewStateLoading ViewState = iota
	ViewStateList
	ViewStateError
	ViewStateQuitting
)

// String returns the state name.
func (s ViewState) String() string {
	switch s {
	case ViewStateLoading:
		return "loading"
	case ViewStateList:
		return "list"
	case ViewStateError:
		return "error"
	case ViewStateQuitting:
		return "quitting"
	default:
		return "unknown"
	}
}

// Layout constants.
const (
	defaultWidth  = 120
	defaultHeight = 30
	minHeight     = 5

	// chromeHeight covers the lines drawn around the table: title, search line,
	// pagination strip, summary and help.
	chromeHeight = 8
)
