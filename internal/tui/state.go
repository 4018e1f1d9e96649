package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewState is the screen an interactive model is showing.
type ViewState int

const (
	// ViewStateLoading indicates data is being fetched.
	ViewStateLoading ViewState = iota
	// ViewStateList shows the list.
	ViewStateList
	// ViewStateQuitting indicates the application is exiting.
	ViewStateQuitting
	// ViewStateError indicates loading failed.
	ViewStateError
)

// String returns the state name, used in logs.
func (s ViewState) String() string {
	switch s {
	case ViewStateLoading:
		return "loading"
	case ViewStateList:
		return "list"
	case ViewStateQuitting:
		return "quitting"
	case ViewStateError:
		return "error"
	default:
		return "unknown"
	}
}

// Default terminal dimensions before the first WindowSizeMsg.
const (
	defaultWidth  = 80
	defaultHeight = 24
	minWidth      = 40
)

// LoadingState holds the spinner shown while a loader runs.
type LoadingState struct {
	spinner spinner.Model
	message string
}

// NewLoadingState creates a loading state with the default message.
func NewLoadingState() *LoadingState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = HeaderStyle
	return &LoadingState{spinner: s, message: "Loading items..."}
}

// Init starts the spinner.
func (l *LoadingState) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner.
func (l *LoadingState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

// RenderLoading renders the spinner and its message.
func RenderLoading(loading *LoadingState) string {
	if loading == nil {
		return InfoStyle.Render("Loading...")
	}
	return loading.spinner.View() + " " + LabelStyle.Render(loading.message)
}
