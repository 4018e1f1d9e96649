package list

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultEmptyMessage is rendered when the list has no rows.
const DefaultEmptyMessage = "No items"

// RenderFunc renders one row. The selected parameter indicates whether this
// row is currently selected.
type RenderFunc[T any] func(item T, selected bool) string

// KeyFunc returns the identity of an item. Keys should be unique per row set.
type KeyFunc[T any] func(item T) string

//nolint:gochecknoglobals // Shared style for the empty state.
var emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)

// Model is a keyed list of rows with a single selection.
type Model[T any] struct {
	// items contains the current rows
	items []T

	// keyOf identifies each row
	keyOf KeyFunc[T]

	// renderFunc renders a single row
	renderFunc RenderFunc[T]

	// selected is the currently selected row index (0-based)
	selected int

	// emptyMessage is shown when items is empty
	emptyMessage string
}

// NewModel creates a list with the given rows.
func NewModel[T any](items []T, keyOf KeyFunc[T], renderFunc RenderFunc[T]) *Model[T] {
	return &Model[T]{
		items:        items,
		keyOf:        keyOf,
		renderFunc:   renderFunc,
		emptyMessage: DefaultEmptyMessage,
	}
}

// SetEmptyMessage changes the empty-state text.
func (m *Model[T]) SetEmptyMessage(msg string) {
	m.emptyMessage = msg
}

// SetItems replaces the rows. The selection stays on the same key when that
// key is still present and resets to the first row otherwise.
func (m *Model[T]) SetItems(items []T) {
	key, hadSelection := m.SelectedKey()
	m.items = items
	m.selected = 0

	if !hadSelection {
		return
	}
	for idx, item := range items {
		if m.keyOf(item) == key {
			m.selected = idx
			return
		}
	}
}

// Init initializes the model (required for tea.Model interface).
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles selection keys.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.items) == 0 {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.items)-1 {
			m.selected++
		}
	case "home", "g":
		m.selected = 0
	case "end", "G":
		m.selected = len(m.items) - 1
	}

	return m, nil
}

// View renders one line per row, or the empty-state message.
func (m *Model[T]) View() string {
	if len(m.items) == 0 {
		return emptyStyle.Render(m.emptyMessage)
	}

	var sb strings.Builder
	for idx, item := range m.items {
		if idx > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(m.renderFunc(item, idx == m.selected))
	}
	return sb.String()
}

// SelectedItem returns the selected row, or nil when the list is empty.
func (m *Model[T]) SelectedItem() *T {
	if m.selected < 0 || m.selected >= len(m.items) {
		return nil
	}
	return &m.items[m.selected]
}

// SelectedKey returns the key of the selected row.
func (m *Model[T]) SelectedKey() (string, bool) {
	item := m.SelectedItem()
	if item == nil {
		return "", false
	}
	return m.keyOf(*item), true
}
