package browse

import (
	"errors"
	"fmt"

	"github.com/rshade/catalogview/internal/pagination"
)

// Dispatch errors. The returned state is always the unchanged input state.
var (
	ErrUnknownIntent    = errors.New("unknown intent")
	ErrPageOutOfRange   = errors.New("page out of range")
	ErrInvalidPageSize  = errors.New("page size must be positive")
	ErrInvalidSortField = errors.New("invalid sort field")
)

// Nav is a relative page navigation request.
type Nav int

// Navigation targets.
const (
	NavFirst Nav = iota + 1
	NavPrev
	NavNext
	NavLast
)

// String returns the navigation name.
func (n Nav) String() string {
	switch n {
	case NavFirst:
		return "first"
	case NavPrev:
		return "prev"
	case NavNext:
		return "next"
	case NavLast:
		return "last"
	default:
		return fmt.Sprintf("Nav(%d)", int(n))
	}
}

// Target resolves n to an absolute page. The result may be out of range; GoToPage
// decides whether it is accepted.
func (n Nav) Target(current, totalPages int) int {
	switch n {
	case NavFirst:
		return 1
	case NavPrev:
		return current - 1
	case NavNext:
		return current + 1
	case NavLast:
		return totalPages
	default:
		return 0
	}
}

// IntentKind identifies a user intent.
type IntentKind int

// Intent kinds.
const (
	IntentSearch IntentKind = iota + 1
	IntentSort
	IntentSetPageSize
	IntentGoToPage
	IntentNavigate
)

// String returns the intent name.
func (k IntentKind) String() string {
	switch k {
	case IntentSearch:
		return "search"
	case IntentSort:
		return "sort"
	case IntentSetPageSize:
		return "set-page-size"
	case IntentGoToPage:
		return "go-to-page"
	case IntentNavigate:
		return "navigate"
	default:
		return fmt.Sprintf("IntentKind(%d)", int(k))
	}
}

// Intent is a user action decoupled from whatever surface produced it.
// Only the field matching Kind is read.
type Intent struct {
	Kind  IntentKind
	Query string
	Field pagination.SortField
	Size  int
	Page  int
	Nav   Nav
}

// SearchFor builds a search intent.
func SearchFor(query string) Intent { return Intent{Kind: IntentSearch, Query: query} }

// SortBy builds a sort intent.
func SortBy(field pagination.SortField) Intent { return Intent{Kind: IntentSort, Field: field} }

// PageSize builds a page-size intent.
func PageSize(size int) Intent { return Intent{Kind: IntentSetPageSize, Size: size} }

// GoTo builds an absolute navigation intent.
func GoTo(page int) Intent { return Intent{Kind: IntentGoToPage, Page: page} }

// Move builds a relative navigation intent.
func Move(nav Nav) Intent { return Intent{Kind: IntentNavigate, Nav: nav} }

type handler func(State, Intent) (State, error)

// handlers maps each intent kind to its state transition.
//
//nolint:gochecknoglobals // Static dispatch table.
var handlers = map[IntentKind]handler{
	IntentSearch: func(s State, in Intent) (State, error) {
		return s.Search(in.Query), nil
	},
	IntentSort: func(s State, in Intent) (State, error) {
		if !in.Field.Valid() {
			return s, fmt.Errorf("%w: %q", ErrInvalidSortField, in.Field)
		}
		return s.Sort(in.Field), nil
	},
	IntentSetPageSize: func(s State, in Intent) (State, error) {
		if in.Size < pagination.MinPageSize {
			return s, fmt.Errorf("%w: got %d", ErrInvalidPageSize, in.Size)
		}
		return s.SetPageSize(in.Size), nil
	},
	IntentGoToPage: func(s State, in Intent) (State, error) {
		return goTo(s, in.Page)
	},
	IntentNavigate: func(s State, in Intent) (State, error) {
		return goTo(s, in.Nav.Target(s.page, s.TotalPages()))
	},
}

func goTo(s State, page int) (State, error) {
	if !s.CanGoTo(page) {
		return s, fmt.Errorf("%w: %d not in [1, %d]", ErrPageOutOfRange, page, s.TotalPages())
	}
	return s.GoToPage(page), nil
}

// Dispatch applies intent to s. Rejected intents return s unchanged with an error
// describing why; callers that treat rejection as a silent no-op may ignore it.
func Dispatch(s State, intent Intent) (State, error) {
	h, ok := handlers[intent.Kind]
	if !ok {
		return s, fmt.Errorf("%w: %s", ErrUnknownIntent, intent.Kind)
	}
	return h(s, intent)
}
