package tui

import "github.com/charmbracelet/bubbles/key"

// Key strings as reported by tea.KeyMsg.String().
const (
	keyQuit  = "q"
	keyCtrlC = "ctrl+c"
	keyEsc   = "esc"
	keyTab   = "tab"
)

// KeyMap holds the key bindings of the browse view.
type KeyMap struct {
	PrevPage    key.Binding
	NextPage    key.Binding
	FocusToggle key.Binding
	ClearSearch key.Binding
	Reload      key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

// DefaultKeyMap returns the browse view bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevPage: key.NewBinding(
			key.WithKeys("left", "pgup"),
			key.WithHelp("←/pgup", "previous"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "pgdown"),
			key.WithHelp("→/pgdn", "next"),
		),
		FocusToggle: key.NewBinding(
			key.WithKeys(keyTab),
			key.WithHelp("tab", "search/list"),
		),
		ClearSearch: key.NewBinding(
			key.WithKeys(keyEsc),
			key.WithHelp("esc", "clear"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys(keyQuit),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys(keyCtrlC),
		),
	}
}

// ShortHelp returns the bindings listed in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevPage, k.NextPage, k.FocusToggle, k.ClearSearch, k.Reload, k.Quit}
}
