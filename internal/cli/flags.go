package cli

import (
	"errors"

	"github.com/spf13/pflag"

	"github.com/rshade/cardlist/internal/config"
)

// ErrNoCatalog is returned when neither --data nor catalog.paths names a file.
var ErrNoCatalog = errors.New("no catalog files: pass --data or set catalog.paths in the config file")

// catalogFlags selects the catalog files to load.
type catalogFlags struct {
	data []string
}

func addCatalogFlags(fs *pflag.FlagSet, f *catalogFlags) {
	fs.StringArrayVar(&f.data, "data", nil,
		"catalog file (.json, .jsonc, .yaml, .yml); repeat to concatenate files")
}

// paths returns --data when given, else the configured catalog paths.
func (f *catalogFlags) paths(cfg *config.Config) ([]string, error) {
	if len(f.data) > 0 {
		return f.data, nil
	}
	if paths := cfg.CatalogPaths(); len(paths) > 0 {
		return paths, nil
	}
	return nil, ErrNoCatalog
}

// displayFlags control styling of non-JSON output.
type displayFlags struct {
	plain   bool
	noColor bool
}

func addDisplayFlags(fs *pflag.FlagSet, f *displayFlags) {
	fs.BoolVar(&f.plain, "plain", false, "plain text output without styling")
	fs.BoolVar(&f.noColor, "no-color", false, "disable colors (also honours NO_COLOR)")
}

// pageFlags select one page of the filtered catalog.
type pageFlags struct {
	search string
	page   int
	output string
}

func addPageFlags(fs *pflag.FlagSet, f *pageFlags) {
	fs.StringVar(&f.search, "search", "", "case-insensitive substring matched against tag titles")
	fs.IntVar(&f.page, "page", 1, "1-based page number")
	fs.StringVar(&f.output, "output", "", "output format: table, json or yaml (default from config)")
}

// outputFormat returns --output, or the configured default when unset.
func (f *pageFlags) outputFormat(cfg *config.Config) (string, error) {
	format := f.output
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	if err := config.ValidateOutputFormat(format); err != nil {
		return "", err
	}
	return format, nil
}
