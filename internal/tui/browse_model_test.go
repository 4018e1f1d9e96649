package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/cardlist/internal/catalog"
)

// redBlueItems returns ten items tagged red followed by five tagged blue.
func redBlueItems() []catalog.Item {
	items := make([]catalog.Item, 0, 15)
	for i := range 15 {
		color := "red"
		if i >= 10 {
			color = "blue"
		}
		items = append(items, catalog.Item{
			ID:         fmt.Sprintf("item-%02d", i),
			Tags:       []catalog.Tag{{Title: color}, {Title: "sale"}},
			Attributes: map[string]any{"name": fmt.Sprintf("Product %d", i)},
		})
	}
	return items
}

func typeText(m *BrowseModel, text string) {
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func press(m *BrowseModel, keyType tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: keyType})
	return cmd
}

func TestNewBrowseModel(t *testing.T) {
	m := NewBrowseModel(context.Background(), redBlueItems())

	assert.Equal(t, ViewStateList, m.ViewState())
	assert.Equal(t, FocusSearch, m.Focus())

	page := m.Page()
	assert.Len(t, page.Items, 10)
	assert.Equal(t, 15, page.FilteredCount)
	assert.False(t, page.CanGoPrevious)
	assert.True(t, page.CanGoNext)
	assert.NotNil(t, m.Init())

	selected := m.SelectedItem()
	require.NotNil(t, selected)
	assert.Equal(t, "item-00", selected.ID)
}

func TestBrowseModel_SearchOnEveryKeystroke(t *testing.T) {
	m := NewBrowseModel(context.Background(), redBlueItems())

	typeText(m, "b")
	assert.Equal(t, "b", m.Page().SearchTerm)
	assert.Equal(t, 5, m.Page().FilteredCount)

	typeText(m, "lue")
	assert.Equal(t, "blue", m.Page().SearchTerm)
	assert.Equal(t, 5, m.Page().FilteredCount)

	press(m, tea.KeyBackspace)
	assert.Equal(t, "blu", m.Page().SearchTerm)
}

func TestBrowseModel_RedScenario(t *testing.T) {
	m := NewBrowseModel(context.Background(), redBlueItems())

	typeText(m, "RED")
	page := m.Page()
	assert.Len(t, page.Items, 10)
	assert.Equal(t, 10, page.FilteredCount)
	assert.False(t, page.CanGoNext)

	// Next is disabled, so the key does nothing.
	press(m, tea.KeyPgDown)
	assert.Equal(t, 0, m.Page().Offset)
	assert.Len(t, m.Page().Items, 10)
}

func TestBrowseModel_Pagination(t *testing.T) {
	m := NewBrowseModel(context.Background(), redBlueItems())

	press(m, tea.KeyPgUp)
	assert.Equal(t, 0, m.Page().Offset)

	press(m, tea.KeyPgDown)
	page := m.Page()
	assert.Equal(t, 10, page.Offset)
	assert.Len(t, page.Items, 5)
	assert.True(t, page.CanGoPrevious)
	assert.False(t, page.CanGoNext)

	press(m, tea.KeyPgDown)
	assert.Equal(t, 10, m.Page().Offset)

	press(m, tea.KeyPgUp)
	assert.Equal(t, 0, m.Page().Offset)
}

func TestBrowseModel_ArrowsPaginateOnlyWithListFocus(t *testing.T) {
	m := NewBrowseModel(context.Background(), redBlueItems())

	press(m, tea.KeyRight)
	assert.Equal(t, 0, m.Page().Offset, "right arrow moves the search cursor")

	press(m, tea.KeyTab)
	require.Equal(t, FocusList, m.Focus())

	press(m, tea.KeyRight)
	assert.Equal(t, 10, m.Page().Offset)

	press(m, tea.KeyLeft)
	assert.Equal(t, 0, m.Page().Offset)
}

func TestBrowseModel_SearchResetsOffset(t *testing.T) {
	m := NewBrowseModel(context.Background(), redBlueItems())

	press(m, tea.KeyPgDown)
	require.Equal(t, 10, m.Page().Offset)

	typeText(m, "sale")
	assert.Equal(t, 0, m.Page().Offset)
	assert.Equal(t, 15, m.Page().FilteredCount)
}

func TestBrowseModel_EscClearsSearch(t *testing.T) {
	m := NewBrowseModel(context.Background(), redBlueItems())

	typeText(m, "nothing-matches")
	assert.True(t, m.Page().Empty())
	assert.Contains(t, m.View(), EmptyMessage)

	press(m, tea.KeyEsc)
	assert.Empty(t, m.Page().SearchTerm)
	assert.Equal(t, 15, m.Page().FilteredCount)
}

func TestBrowseModel_QuitKeys(t *testing.T) {
	t.Run("q is typed while searching", func(t *testing.T) {
		m := NewBrowseModel(context.Background(), redBlueItems())
		typeText(m, "q")
		assert.Equal(t, ViewStateList, m.ViewState())
		assert.Equal(t, "q", m.Page().SearchTerm)
	})

	t.Run("q quits from the list", func(t *testing.T) {
		m := NewBrowseModel(context.Background(), redBlueItems())
		press(m, tea.KeyTab)
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		assert.NotNil(t, cmd)
		assert.Equal(t, ViewStateQuitting, m.ViewState())
		assert.Empty(t, m.View())
	})

	t.Run("ctrl+c always quits", func(t *testing.T) {
		m := NewBrowseModel(context.Background(), redBlueItems())
		cmd := press(m, tea.KeyCtrlC)
		assert.NotNil(t, cmd)
		assert.Equal(t, ViewStateQuitting, m.ViewState())
	})
}

func TestBrowseModel_ListNavigation(t *testing.T) {
	m := NewBrowseModel(context.Background(), redBlueItems())
	press(m, tea.KeyTab)

	press(m, tea.KeyDown)
	press(m, tea.KeyDown)
	selected := m.SelectedItem()
	require.NotNil(t, selected)
	assert.Equal(t, "item-02", selected.ID)

	press(m, tea.KeyTab)
	assert.Equal(t, FocusSearch, m.Focus())
}

func TestBrowseModel_ItemsMsgKeepsState(t *testing.T) {
	m := NewBrowseModel(context.Background(), redBlueItems())
	press(m, tea.KeyPgDown)
	require.Equal(t, 10, m.Page().Offset)

	more := append(redBlueItems(), redBlueItems()...)
	_, _ = m.Update(ItemsMsg{Items: more})

	page := m.Page()
	assert.Equal(t, 10, page.Offset)
	assert.Equal(t, 30, page.FilteredCount)
	assert.True(t, page.CanGoNext)
}

func TestBrowseModel_Loader(t *testing.T) {
	m := NewBrowseModelWithLoader(context.Background(), catalog.StaticLoader(redBlueItems()))
	assert.Equal(t, ViewStateLoading, m.ViewState())
	assert.NotNil(t, m.Init())
	assert.True(t, m.Page().Empty())

	_, _ = m.Update(m.fetchCmd()())
	assert.Equal(t, ViewStateList, m.ViewState())
	assert.Equal(t, 15, m.Page().FilteredCount)

	press(m, tea.KeyTab)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	assert.NotNil(t, cmd)
	assert.Equal(t, ViewStateLoading, m.ViewState())
}

func TestBrowseModel_ReloadKeepsSelectionWithoutIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.yaml")
	data := "- name: first\n  tags: [{title: red}]\n- name: second\n  tags: [{title: red}]\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	m := NewBrowseModelWithLoader(context.Background(), catalog.FileLoader([]string{path}))
	_, _ = m.Update(m.fetchCmd()())
	require.Equal(t, ViewStateList, m.ViewState())

	press(m, tea.KeyTab)
	press(m, tea.KeyDown)
	before := m.SelectedItem()
	require.NotNil(t, before)
	assert.Equal(t, "items.yaml#2", before.ID)

	_, _ = m.Update(m.fetchCmd()())
	after := m.SelectedItem()
	require.NotNil(t, after)
	assert.Equal(t, before.Key(), after.Key())
	assert.Equal(t, "second", after.Attribute("name"))
}

func TestBrowseModel_DuplicateIDsGetDistinctRows(t *testing.T) {
	items := []catalog.Item{{ID: "dup"}, {ID: "dup"}, {ID: "dup"}}
	m := NewBrowseModel(context.Background(), items)
	press(m, tea.KeyTab)

	press(m, tea.KeyDown)
	selected := m.SelectedItem()
	require.NotNil(t, selected)
	assert.Equal(t, "dup~2", selected.Key())

	press(m, tea.KeyDown)
	selected = m.SelectedItem()
	require.NotNil(t, selected)
	assert.Equal(t, "dup~3", selected.Key())
}

func TestBrowseModel_EmptySearchResetsPageDots(t *testing.T) {
	m := NewBrowseModel(context.Background(), redBlueItems())
	require.Equal(t, 2, m.dots.TotalPages)

	typeText(m, "zzz")
	assert.True(t, m.Page().Empty())
	assert.LessOrEqual(t, m.dots.TotalPages, 1)
	assert.Equal(t, 0, m.dots.Page)

	press(m, tea.KeyEsc)
	assert.Equal(t, 2, m.dots.TotalPages)
}

func TestBrowseModel_LoaderError(t *testing.T) {
	loadErr := errors.New("disk on fire")
	m := NewBrowseModelWithLoader(context.Background(), func(context.Context) ([]catalog.Item, error) {
		return nil, loadErr
	})

	_, _ = m.Update(m.fetchCmd()())
	assert.Equal(t, ViewStateError, m.ViewState())
	require.ErrorIs(t, m.Err(), loadErr)
	assert.Contains(t, m.View(), "disk on fire")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	assert.NotNil(t, cmd)
	assert.Equal(t, ViewStateLoading, m.ViewState())
}

func TestBrowseModel_View(t *testing.T) {
	m := NewBrowseModel(context.Background(), redBlueItems())
	_, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	view := m.View()
	assert.Contains(t, view, "Product 0")
	assert.Contains(t, view, "Previous")
	assert.Contains(t, view, "Next")
	assert.Contains(t, view, "Page 1 of 2")
	assert.NotContains(t, view, "Product 10")
}
