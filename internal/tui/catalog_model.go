package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/catalogview/internal/browse"
	"github.com/rshade/catalogview/internal/catalog"
	"github.com/rshade/catalogview/internal/logging"
	"github.com/rshade/catalogview/internal/pagination"
	"github.com/rshade/catalogview/internal/render"
)

// searchCharLimit bounds the search box input.
const searchCharLimit = 100

// Fetcher loads the catalog. *catalog.Loader's Load method satisfies it.
type Fetcher func(ctx context.Context) ([]catalog.Product, error)

// ProductsLoadedMsg carries the result of the catalog fetch.
type ProductsLoadedMsg struct {
	Products []catalog.Product
	Err      error
}

// CatalogModel is the Bubble Tea model for the interactive catalog view. It holds
// no catalog logic of its own: every key that changes what is shown is translated
// into a browse.Intent and applied with browse.Dispatch.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type CatalogModel struct {
	ctx    context.Context
	fetch  Fetcher
	policy catalog.ImagePolicy

	state     ViewState
	view      browse.State
	pageSize  int
	pageSizes []int

	table     table.Model
	search    textinput.Model
	searching bool
	keys      keyMap
	help      help.Model

	width  int
	height int

	loadingState *LoadingState
	err          error
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search by title..."
	ti.Prompt = "/ "
	ti.CharLimit = searchCharLimit
	return ti
}

func newHelp() help.Model {
	h := help.New()
	h.Styles.ShortKey = HelpKeyStyle
	h.Styles.ShortDesc = HelpDescStyle
	h.Styles.FullKey = HelpKeyStyle
	h.Styles.FullDesc = HelpDescStyle
	h.Styles.ShortSeparator = SubtleStyle
	h.Styles.FullSeparator = SubtleStyle
	return h
}

func newCatalogModel(ctx context.Context, pageSize int, policy catalog.ImagePolicy) CatalogModel {
	if pageSize < pagination.MinPageSize {
		pageSize = pagination.DefaultPageSize
	}
	return CatalogModel{
		ctx:      ctx,
		policy:   policy,
		pageSize: pageSize,
		view:     browse.New(nil, pageSize),
		search:   newSearchInput(),
		keys:     defaultKeyMap(),
		help:     newHelp(),
		width:    TerminalWidth(),
		height:   defaultHeight,
	}
}

// NewCatalogModel creates a model over an already loaded catalog.
func NewCatalogModel(
	ctx context.Context,
	products []catalog.Product,
	pageSize int,
	policy catalog.ImagePolicy,
) CatalogModel {
	m := newCatalogModel(ctx, pageSize, policy)
	m.state = ViewStateList
	m.view = browse.New(products, m.pageSize)
	m.rebuildTable()
	return m
}

// NewCatalogModelWithLoading creates a model that shows a spinner and runs fetch
// once from Init.
func NewCatalogModelWithLoading(
	ctx context.Context,
	fetch Fetcher,
	pageSize int,
	policy catalog.ImagePolicy,
) CatalogModel {
	m := newCatalogModel(ctx, pageSize, policy)
	m.state = ViewStateLoading
	m.fetch = fetch
	m.loadingState = NewLoadingState()
	m.rebuildTable()
	return m
}

// WithPageSizes sets the page sizes cycled by the +/- keys. sizes must be ascending;
// an empty list keeps pagination.PageSizeOptions.
func (m CatalogModel) WithPageSizes(sizes []int) CatalogModel {
	m.pageSizes = sizes
	return m
}

// Init starts the spinner and the catalog fetch (Bubble Tea interface).
func (m CatalogModel) Init() tea.Cmd {
	if m.state != ViewStateLoading || m.fetch == nil {
		return nil
	}
	return tea.Batch(m.loadingState.Init(), m.fetchCmd())
}

func (m CatalogModel) fetchCmd() tea.Cmd {
	ctx, fetch := m.ctx, m.fetch
	return func() tea.Msg {
		products, err := fetch(ctx)
		return ProductsLoadedMsg{Products: products, Err: err}
	}
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m CatalogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.rebuildTable()
		return m, nil

	case ProductsLoadedMsg:
		return m.handleProductsLoaded(msg)

	case spinner.TickMsg:
		if m.state == ViewStateLoading && m.loadingState != nil {
			return m, m.loadingState.Update(msg)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m CatalogModel) handleProductsLoaded(msg ProductsLoadedMsg) (tea.Model, tea.Cmd) {
	log := logging.FromContext(m.ctx)
	if msg.Err != nil {
		log.Error().Ctx(m.ctx).Err(msg.Err).Msg("catalog load failed")
		m.state = ViewStateError
		m.err = msg.Err
		return m, nil
	}

	log.Debug().Ctx(m.ctx).Int("product_count", len(msg.Products)).Msg("catalog loaded")
	m.state = ViewStateList
	m.view = browse.New(msg.Products, m.pageSize)
	m.rebuildTable()
	return m, nil
}

func (m CatalogModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.state = ViewStateQuitting
		return m, tea.Quit
	}

	switch m.state {
	case ViewStateLoading, ViewStateError:
		if key.Matches(msg, m.keys.Quit) {
			m.state = ViewStateQuitting
			return m, tea.Quit
		}
		return m, nil
	case ViewStateList:
		if m.searching {
			return m.handleSearchKey(msg)
		}
		return m.handleListKey(msg)
	case ViewStateQuitting:
		return m, nil
	default:
		return m, nil
	}
}

func (m CatalogModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Accept):
		m.searching = false
		m.search.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.dispatch(browse.SearchFor(""))
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.dispatch(browse.SearchFor(m.search.Value()))
	}
	return m, cmd
}

func (m CatalogModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.state = ViewStateQuitting
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.rebuildTable()
		return m, nil
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.SortPrice):
		m.dispatch(browse.SortBy(pagination.SortPrice))
	case key.Matches(msg, m.keys.SortTitle):
		m.dispatch(browse.SortBy(pagination.SortTitle))
	case key.Matches(msg, m.keys.Prev):
		m.dispatch(browse.Move(browse.NavPrev))
	case key.Matches(msg, m.keys.Next):
		m.dispatch(browse.Move(browse.NavNext))
	case key.Matches(msg, m.keys.First):
		m.dispatch(browse.Move(browse.NavFirst))
	case key.Matches(msg, m.keys.Last):
		m.dispatch(browse.Move(browse.NavLast))
	case key.Matches(msg, m.keys.PageSizeUp):
		m.dispatch(browse.PageSize(pagination.NextPageSize(m.view.PageSize(), m.pageSizes...)))
	case key.Matches(msg, m.keys.PageSizeDown):
		m.dispatch(browse.PageSize(pagination.PrevPageSize(m.view.PageSize(), m.pageSizes...)))
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// dispatch applies intent to the view state. Rejected intents leave the view as it
// was; out-of-range navigation is an expected no-op and is not logged.
func (m *CatalogModel) dispatch(intent browse.Intent) {
	next, err := browse.Dispatch(m.view, intent)
	if err != nil {
		if !errors.Is(err, browse.ErrPageOutOfRange) {
			logging.FromContext(m.ctx).Debug().Ctx(m.ctx).Err(err).
				Str("intent", intent.Kind.String()).Msg("intent rejected")
		}
		return
	}
	m.view = next
	m.pageSize = next.PageSize()
	m.rebuildTable()
}

// State returns the current catalog view state.
func (m CatalogModel) State() browse.State {
	return m.view
}

// ViewState returns which screen the model is showing.
func (m CatalogModel) ViewState() ViewState {
	return m.state
}

// Err returns the load error, if the fetch failed.
func (m CatalogModel) Err() error {
	return m.err
}

// Page returns the render model of the current page.
func (m CatalogModel) Page() render.Page {
	if m.err != nil {
		return render.ErrorPage(m.err)
	}
	return render.FromState(m.view, m.policy)
}
