package cli

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/cardlist/internal/catalog"
	"github.com/rshade/cardlist/internal/listview"
	"github.com/rshade/cardlist/internal/logging"
	"github.com/rshade/cardlist/internal/tui"
)

// NewBrowseCmd creates the browse command, an interactive search-as-you-type
// view over one or more catalog files. Without a terminal it prints the
// first page instead.
func NewBrowseCmd() *cobra.Command {
	var (
		catalogs catalogFlags
		display  displayFlags
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse a catalog interactively",
		Long: `Opens an interactive list of catalog items. Typing filters items by tag
title (case-insensitive substring) and returns to the first page. Use
←/→ or PgUp/PgDn to change pages, Tab to move between the search box and
the list, Esc to clear the search and r to reload the files.

When stdout is not a terminal the first page is printed instead.`,
		Example: `  # Browse a single catalog
  cardlist browse --data products.json

  # Browse two catalogs as one list
  cardlist browse --data fruit.yaml --data vegetables.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := configFromCommand(cmd)
			if err != nil {
				return err
			}
			paths, err := catalogs.paths(cfg)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			loader := catalog.FileLoader(paths)

			mode := tui.DetectOutputMode(false, display.noColor, display.plain)
			logging.FromContext(ctx).Debug().Ctx(ctx).
				Str("operation", "browse").
				Strs("paths", paths).
				Stringer("mode", mode).
				Msg("starting browse")

			if mode == tui.OutputModeInteractive {
				return runBrowseTUI(ctx, loader, cfg.TUI.AltScreen)
			}
			return printFirstPage(ctx, cmd.OutOrStdout(), loader, mode)
		},
	}

	addCatalogFlags(cmd.Flags(), &catalogs)
	addDisplayFlags(cmd.Flags(), &display)

	return cmd
}

func runBrowseTUI(ctx context.Context, loader catalog.Loader, altScreen bool) error {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if altScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	model := tui.NewBrowseModelWithLoader(ctx, loader)
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	return model.Err()
}

func printFirstPage(ctx context.Context, w io.Writer, loader catalog.Loader, mode tui.OutputMode) error {
	items, err := loader(ctx)
	if err != nil {
		return err
	}

	controller := listview.New[catalog.Item](listview.WithObserver(listview.LogObserver(*logging.FromContext(ctx))))
	page := controller.ComputeVisiblePage(items)

	if mode == tui.OutputModeStyled {
		_, err = fmt.Fprintln(w, tui.RenderStyled(page, tui.TerminalWidth()))
		return err
	}
	_, err = fmt.Fprint(w, tui.RenderPlain(page))
	return err
}
