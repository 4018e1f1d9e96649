package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/cardlist/internal/catalog"
	"github.com/rshade/cardlist/internal/config"
	"github.com/rshade/cardlist/internal/listview"
	"github.com/rshade/cardlist/internal/logging"
	"github.com/rshade/cardlist/internal/pagination"
	"github.com/rshade/cardlist/internal/tui"
)

// PageOutput is the structured form of one page.
type PageOutput struct {
	SearchTerm string          `json:"search_term" yaml:"search_term"`
	Items      []catalog.Item  `json:"items"       yaml:"items"`
	Pagination pagination.Meta `json:"pagination"  yaml:"pagination"`
}

// NewPageCmd creates the page command, which prints one page of the filtered
// catalog.
func NewPageCmd() *cobra.Command {
	var (
		catalogs catalogFlags
		display  displayFlags
		flags    pageFlags
	)

	cmd := &cobra.Command{
		Use:   "page",
		Short: "Print one page of a catalog",
		Long: `Filters catalog items by tag title and prints a single page of ten items
together with its pagination state. A page past the end prints an empty page.`,
		Example: `  # First page of everything
  cardlist page --data products.json

  # Third page of items tagged with something containing "red"
  cardlist page --data products.json --search red --page 3

  # Structured output
  cardlist page --data products.yaml --output yaml`,
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
			format, err := flags.outputFormat(cfg)
			if err != nil {
				return err
			}
			offset, err := pagination.OffsetForPage(flags.page, pagination.DefaultPageSize)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			items, err := catalog.LoadFiles(ctx, paths)
			if err != nil {
				return err
			}

			page := computePage(ctx, items, flags.search, offset)
			logging.FromContext(ctx).Debug().Ctx(ctx).
				Str("operation", "page").
				Int("page", flags.page).
				Int("items", len(page.Items)).
				Msg("page computed")

			return renderPage(cmd.OutOrStdout(), format, display, page)
		},
	}

	addCatalogFlags(cmd.Flags(), &catalogs)
	addDisplayFlags(cmd.Flags(), &display)
	addPageFlags(cmd.Flags(), &flags)

	return cmd
}

// computePage drives a controller the way an interactive session would:
// enter the search term, then page forward toward offset. Paging stops at
// the first page past the matches, so an offset beyond the end yields that
// empty page.
func computePage(ctx context.Context, items []catalog.Item, search string, offset int) listview.Page[catalog.Item] {
	observer := listview.LogObserver(*logging.FromContext(ctx))
	controller := listview.New[catalog.Item](listview.WithObserver(observer))
	controller.SetSearchTerm(search)

	matched := len(listview.Filter(items, search))
	for state := controller.State(); state.Offset < offset && state.Offset < matched; state = controller.State() {
		controller.Paginate(listview.Forward)
	}
	return controller.ComputeVisiblePage(items)
}

func renderPage(w io.Writer, format string, display displayFlags, page listview.Page[catalog.Item]) error {
	out := PageOutput{
		SearchTerm: page.SearchTerm,
		Items:      page.Items,
		Pagination: page.Meta(),
	}

	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	default:
		mode := tui.DetectOutputMode(false, display.noColor, display.plain)
		if mode == tui.OutputModePlain {
			_, err := fmt.Fprint(w, tui.RenderPlain(page))
			return err
		}
		_, err := fmt.Fprintln(w, tui.RenderStyled(page, tui.TerminalWidth()))
		return err
	}
}
