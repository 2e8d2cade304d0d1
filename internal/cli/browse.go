package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/catalogview/internal/catalog"
	"github.com/rshade/catalogview/internal/config"
	"github.com/rshade/catalogview/internal/pagination"
	"github.com/rshade/catalogview/internal/render"
	"github.com/rshade/catalogview/internal/tui"
)

// NewBrowseCmd creates the browse command, which opens the interactive catalog view.
// Without a terminal it prints the first page as a plain table instead.
func NewBrowseCmd() *cobra.Command {
	var (
		plain    bool
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the product catalog interactively",
		Long: `Opens a full-screen view of the product catalog with live search, sorting
and pagination.

Keys: / search, p/t sort by price/title, ←/→ previous/next page, home/end
first/last page, +/- page size, ? help, q quit.

When stdout is not a terminal, or with --plain, the first page is printed as a
table and the command exits.`,
		Example: `  # Open the catalog view
  catalogview browse

  # Start with 20 products per page
  catalogview browse --page-size 20

  # Print the first page without the interactive view
  catalogview browse --plain`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationInteractive: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			if !cmd.Flags().Changed("page-size") {
				pageSize = cfg.Display.PageSize
			}

			mode := tui.DetectOutputMode(plain)
			logger.Debug().Ctx(ctx).Str("mode", mode.String()).Int("page_size", pageSize).Msg("browse mode selected")

			if mode == tui.OutputModePlain {
				params := pagination.NewParams()
				params.PageSize = pageSize
				return runList(ctx, cmd.OutOrStdout(), cfg, listOptions{
					params: params,
					output: string(render.OutputTable),
				})
			}

			loader := catalog.NewLoader(cfg.Source.Endpoint, catalog.WithTimeout(cfg.Source.Timeout))
			model := tui.NewCatalogModelWithLoading(ctx, loader.Load, pageSize, cfg.ImagePolicy()).
				WithPageSizes(cfg.PageSizeOptions())

			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("failed to run interactive TUI: %w", err)
			}
			if m, ok := final.(tui.CatalogModel); ok && m.Err() != nil {
				return &ExitError{Code: ExitLoadFailure, Err: m.Err()}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print a plain table instead of the interactive view")
	cmd.Flags().IntVar(&pageSize, "page-size", pagination.DefaultPageSize, "initial products per page (default from config)")

	return cmd
}
