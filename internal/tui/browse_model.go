package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/rshade/cardlist/internal/catalog"
	"github.com/rshade/cardlist/internal/listview"
	"github.com/rshade/cardlist/internal/logging"
	"github.com/rshade/cardlist/internal/pagination"
	"github.com/rshade/cardlist/internal/tui/list"
)

const (
	searchInputCharLimit = 100
	searchInputWidth     = 40
)

// Focus is the component receiving key input.
type Focus int

const (
	// FocusSearch sends keys to the search input.
	FocusSearch Focus = iota
	// FocusList sends keys to the row list.
	FocusList
)

// ItemsMsg replaces the browsed collection. The current search term and
// offset are kept.
type ItemsMsg struct {
	Items []catalog.Item
}

// itemsLoadedMsg is sent when the loader finishes.
type itemsLoadedMsg struct {
	items []catalog.Item
	err   error
}

// BrowseModel is the Bubble Tea model for browsing a catalog page by page.
type BrowseModel struct {
	ctx    context.Context
	logger zerolog.Logger

	// View state
	state ViewState
	focus Focus
	items []catalog.Item
	page  listview.Page[catalog.Item]

	// Core
	controller *listview.Controller[catalog.Item]

	// Interactive components
	rows   *list.Model[catalog.Item]
	search textinput.Model
	dots   paginator.Model
	help   help.Model
	keys   KeyMap

	// Loading
	loader  catalog.Loader
	loading *LoadingState

	width  int
	height int
	err    error
}

// NewBrowseModel creates a model browsing a fixed collection.
func NewBrowseModel(ctx context.Context, items []catalog.Item) *BrowseModel {
	m := newBrowseModel(ctx)
	m.state = ViewStateList
	m.setItems(items)
	return m
}

// NewBrowseModelWithLoader creates a model that starts in the loading state
// and fetches its collection from loader. The r key reloads.
func NewBrowseModelWithLoader(ctx context.Context, loader catalog.Loader) *BrowseModel {
	m := newBrowseModel(ctx)
	m.state = ViewStateLoading
	m.loader = loader
	m.loading = NewLoadingState()
	m.recompute()
	return m
}

func newBrowseModel(ctx context.Context) *BrowseModel {
	base := *logging.FromContext(ctx)
	logger := logging.SubsystemLogger(base, "tui")

	search := textinput.New()
	search.Placeholder = "Search tags..."
	search.Prompt = "Search: "
	search.CharLimit = searchInputCharLimit
	search.Width = searchInputWidth
	search.Focus()

	dots := paginator.New()
	dots.Type = paginator.Dots
	dots.PerPage = pagination.DefaultPageSize
	dots.ActiveDot = HeaderStyle.Render("•")
	dots.InactiveDot = SubtleStyle.Render("•")

	rows := list.NewModel(nil, func(item catalog.Item) string { return item.Key() }, RenderItemRow)
	rows.SetEmptyMessage(EmptyMessage)

	return &BrowseModel{
		ctx:        ctx,
		logger:     logger,
		focus:      FocusSearch,
		controller: listview.New[catalog.Item](listview.WithObserver(listview.LogObserver(base))),
		rows:       rows,
		search:     search,
		dots:       dots,
		help:       help.New(),
		keys:       DefaultKeyMap(),
		width:      defaultWidth,
		height:     defaultHeight,
	}
}

// Page returns the page currently shown.
func (m *BrowseModel) Page() listview.Page[catalog.Item] {
	return m.page
}

// ViewState returns the current screen.
func (m *BrowseModel) ViewState() ViewState {
	return m.state
}

// Focus returns the component receiving key input.
func (m *BrowseModel) Focus() Focus {
	return m.focus
}

// Err returns the last loading error.
func (m *BrowseModel) Err() error {
	return m.err
}

// SelectedItem returns the highlighted row, or nil on an empty page.
func (m *BrowseModel) SelectedItem() *catalog.Item {
	return m.rows.SelectedItem()
}

// Init starts loading or the cursor blink.
func (m *BrowseModel) Init() tea.Cmd {
	if m.state == ViewStateLoading {
		return tea.Batch(m.loading.Init(), m.fetchCmd())
	}
	return textinput.Blink
}

func (m *BrowseModel) fetchCmd() tea.Cmd {
	loader := m.loader
	ctx := m.ctx
	return func() tea.Msg {
		items, err := loader(ctx)
		return itemsLoadedMsg{items: items, err: err}
	}
}

// Update handles messages and updates the model state.
func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case itemsLoadedMsg:
		return m.handleLoaded(msg)
	case ItemsMsg:
		m.setItems(msg.Items)
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.ForceQuit) {
		m.state = ViewStateQuitting
		return m, tea.Quit
	}

	switch m.state {
	case ViewStateLoading:
		return m, m.loading.Update(msg)
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateError:
		return m.handleErrorUpdate(msg)
	case ViewStateQuitting:
		return m, nil
	default:
		return m, nil
	}
}

func (m *BrowseModel) handleLoaded(msg itemsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.err = msg.err
		m.state = ViewStateError
		m.logger.Error().Ctx(m.ctx).Err(msg.err).Msg("loading items failed")
		return m, nil
	}
	m.err = nil
	m.state = ViewStateList
	m.setItems(msg.items)
	return m, textinput.Blink
}

func (m *BrowseModel) handleErrorUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.state = ViewStateQuitting
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Reload):
		return m, m.reload()
	}
	return m, nil
}

func (m *BrowseModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.forward(msg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.FocusToggle):
		m.toggleFocus()
		return m, nil
	case key.Matches(keyMsg, m.keys.ClearSearch):
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.setSearchTerm("")
		}
		return m, nil
	case keyMsg.Type == tea.KeyPgUp, m.focus == FocusList && key.Matches(keyMsg, m.keys.PrevPage):
		m.paginate(listview.Backward)
		return m, nil
	case keyMsg.Type == tea.KeyPgDown, m.focus == FocusList && key.Matches(keyMsg, m.keys.NextPage):
		m.paginate(listview.Forward)
		return m, nil
	}

	if m.focus == FocusList {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.state = ViewStateQuitting
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Reload):
			return m, m.reload()
		}
	}

	return m.forward(msg)
}

// forward sends msg to the focused component.
func (m *BrowseModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.focus == FocusList {
		_, cmd := m.rows.Update(msg)
		return m, cmd
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if after := m.search.Value(); after != before {
		m.setSearchTerm(after)
	}
	return m, cmd
}

func (m *BrowseModel) toggleFocus() {
	if m.focus == FocusSearch {
		m.focus = FocusList
		m.search.Blur()
		return
	}
	m.focus = FocusSearch
	m.search.Focus()
}

func (m *BrowseModel) reload() tea.Cmd {
	if m.loader == nil {
		return nil
	}
	if m.loading == nil {
		m.loading = NewLoadingState()
	}
	m.state = ViewStateLoading
	return tea.Batch(m.loading.Init(), m.fetchCmd())
}

func (m *BrowseModel) setSearchTerm(term string) {
	m.controller.SetSearchTerm(term)
	m.recompute()
}

// paginate moves one page when the current page allows it.
func (m *BrowseModel) paginate(d listview.Direction) {
	if d == listview.Backward && !m.page.CanGoPrevious {
		return
	}
	if d == listview.Forward && !m.page.CanGoNext {
		return
	}
	m.controller.Paginate(d)
	m.recompute()
}

func (m *BrowseModel) setItems(items []catalog.Item) {
	m.items = catalog.Normalize(items)
	m.recompute()
}

func (m *BrowseModel) recompute() {
	m.page = m.controller.ComputeVisiblePage(m.items)
	m.rows.SetItems(m.page.Items)

	meta := m.page.Meta()
	// SetTotalPages ignores an empty collection, so set the count directly.
	m.dots.TotalPages = max(1, meta.TotalPages)
	m.dots.Page = meta.CurrentPage - 1
}

// View renders the current view.
func (m *BrowseModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateLoading:
		return RenderLoading(m.loading)
	case ViewStateError:
		return ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n" +
			SubtleStyle.Render("[r] Retry  [q] Quit")
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}

func (m *BrowseModel) renderListView() string {
	header := HeaderStyle.Render("ITEMS") + "  " + LabelStyle.Render(pageSummary(m.page))

	headerLine := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		BorderBottom(true).
		Width(max(minWidth, m.width-borderPadding)).
		Render(header)

	var footer strings.Builder
	footer.WriteString(RenderButtons(m.page.CanGoPrevious, m.page.CanGoNext))
	if m.dots.TotalPages > 1 {
		footer.WriteString("  ")
		footer.WriteString(m.dots.View())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		headerLine,
		m.search.View(),
		"",
		m.rows.View(),
		"",
		footer.String(),
		m.help.ShortHelpView(m.keys.ShortHelp()),
	)
}
