package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode is how results are presented on the terminal.
type OutputMode int

const (
	// OutputModePlain is unstyled text, for pipes and NO_COLOR.
	OutputModePlain OutputMode = iota
	// OutputModeStyled is lipgloss-styled, non-interactive output.
	OutputModeStyled
	// OutputModeInteractive runs the Bubble Tea program.
	OutputModeInteractive
)

// EnvNoColor disables styling when set to any non-empty value.
const EnvNoColor = "NO_COLOR"

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// DetectOutputMode chooses an output mode from flags, the environment and
// whether stdout is a terminal.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	return detectOutputMode(forceColor, noColor, plain, os.LookupEnv, stdoutIsTerminal())
}

func detectOutputMode(
	forceColor, noColor, plain bool,
	lookupEnv func(string) (string, bool),
	isTTY bool,
) OutputMode {
	if plain || noColor {
		return OutputModePlain
	}
	if v, ok := lookupEnv(EnvNoColor); ok && v != "" {
		return OutputModePlain
	}
	if forceColor {
		if isTTY {
			return OutputModeInteractive
		}
		return OutputModeStyled
	}
	if !isTTY {
		return OutputModePlain
	}
	if v, ok := lookupEnv("TERM"); ok && v == "dumb" {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalWidth returns the width of stdout, or a default when stdout is not
// a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	if width < minWidth {
		return minWidth
	}
	return width
}
