package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/catalogview/internal/browse"
	"github.com/rshade/catalogview/internal/catalog"
	"github.com/rshade/catalogview/internal/config"
	"github.com/rshade/catalogview/internal/pagination"
	"github.com/rshade/catalogview/internal/render"
)

// listOptions are the flag values of the list command.
type listOptions struct {
	search string
	params *pagination.Params
	output string
}

// NewListCmd creates the list command, which prints one page of the catalog.
func NewListCmd() *cobra.Command {
	opts := listOptions{params: pagination.NewParams()}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of the product catalog",
		Long: `Fetches the product list and prints a single page of it.

The search is a case-insensitive substring match on product titles. Sorting
accepts "price" or "title", optionally followed by ":asc" or ":desc".`,
		Example: `  # First page with the configured page size
  catalogview list

  # Third page of 5, most expensive first
  catalogview list --sort price:desc --page 3 --page-size 5

  # Search and export as JSON
  catalogview list --search chair --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())
			if !cmd.Flags().Changed("page-size") {
				opts.params.PageSize = cfg.Display.PageSize
			}
			return runList(cmd.Context(), cmd.OutOrStdout(), cfg, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.search, "search", "", "case-insensitive title filter")
	f.StringVar(&opts.params.Sort, "sort", "", "sort by price or title, e.g. price:desc")
	f.IntVar(&opts.params.Page, "page", pagination.DefaultPage, "page number (1-based)")
	f.IntVar(&opts.params.PageSize, "page-size", pagination.DefaultPageSize, "products per page (default from config)")
	f.StringVarP(&opts.output, "output", "o", string(render.OutputTable),
		"output format: "+strings.Join(render.SupportedFormats(), ", "))

	return cmd
}

// runList loads the catalog and renders the requested page to w.
func runList(ctx context.Context, w io.Writer, cfg *config.Config, opts listOptions) error {
	if err := opts.params.Validate(); err != nil {
		return err
	}
	format, err := render.ParseFormat(opts.output)
	if err != nil {
		return err
	}

	loader := catalog.NewLoader(cfg.Source.Endpoint, catalog.WithTimeout(cfg.Source.Timeout))
	products, err := loader.Load(ctx)
	if err != nil {
		logger.Error().Ctx(ctx).Err(err).Str("endpoint", loader.Endpoint()).Msg("product load failed")
		if format != render.OutputTable {
			if renderErr := render.Render(w, format, render.ErrorPage(err)); renderErr != nil {
				return renderErr
			}
		}
		return &ExitError{Code: ExitLoadFailure, Err: err}
	}

	state, err := applyListOptions(browse.New(products, opts.params.PageSize), opts)
	if err != nil {
		return err
	}

	logger.Debug().Ctx(ctx).
		Int("total", len(products)).
		Int("matches", len(state.Filtered())).
		Int("page", state.Page()).
		Str("format", string(format)).
		Msg("rendering catalog page")

	return render.Render(w, format, render.FromState(state, cfg.ImagePolicy()))
}

// applyListOptions replays the flag values as intents: search, sort, then page.
func applyListOptions(state browse.State, opts listOptions) (browse.State, error) {
	field, order, err := pagination.ParseSort(opts.params.Sort)
	if err != nil {
		return state, err
	}

	intents := []browse.Intent{browse.SearchFor(opts.search)}
	if field != pagination.SortNone {
		intents = append(intents, browse.SortBy(field))
		if order == pagination.SortDesc {
			intents = append(intents, browse.SortBy(field))
		}
	}
	intents = append(intents, browse.GoTo(opts.params.Page))

	for _, intent := range intents {
		next, dispatchErr := browse.Dispatch(state, intent)
		if dispatchErr != nil {
			if errors.Is(dispatchErr, browse.ErrPageOutOfRange) {
				return state, fmt.Errorf("invalid --page: %w", dispatchErr)
			}
			return state, dispatchErr
		}
		state = next
	}
	return state, nil
}
