package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rshade/cardlist/internal/cli"
	"github.com/rshade/cardlist/internal/config"
	"github.com/rshade/cardlist/internal/pagination"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev" //nolint:gochecknoglobals // Set by the linker.

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := cli.NewRootCmd(version)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}
	_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitCode(err)
}

// exitCode maps invalid invocations to exitUsage and everything else to
// exitError.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, cli.ErrNoCatalog),
		errors.Is(err, config.ErrInvalidOutputFormat),
		errors.Is(err, pagination.ErrInvalidPage):
		return exitUsage
	default:
		return exitError
	}
}
