package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/cardlist/internal/catalog"
	"github.com/rshade/cardlist/internal/listview"
)

// EmptyMessage is shown when a page has no items.
const EmptyMessage = "No products found"

// Row layout.
const (
	colWidthName  = 32
	tagSeparator  = ", "
	borderPadding = 2
)

// Attribute names tried, in order, for a row's display name.
//
//nolint:gochecknoglobals // Read-only lookup order.
var nameAttributes = []string{"name", "title", "label"}

//nolint:gochecknoglobals // Printer is safe for concurrent use.
var printer = message.NewPrinter(language.English)

// FormatCount formats n with thousands separators followed by noun,
// pluralised with a trailing "s" when n != 1.
func FormatCount(n int, noun string) string {
	if n != 1 {
		noun += "s"
	}
	return printer.Sprintf("%d %s", n, noun)
}

// DisplayName returns the name shown for item: the first present name
// attribute, falling back to the ID.
func DisplayName(item catalog.Item) string {
	for _, attr := range nameAttributes {
		if v := strings.TrimSpace(item.Attribute(attr)); v != "" {
			return v
		}
	}
	return item.ID
}

// TagLine joins the non-empty tag titles of item.
func TagLine(item catalog.Item) string {
	titles := item.TagTitles()
	parts := make([]string, 0, len(titles))
	for _, title := range titles {
		if t := strings.TrimSpace(title); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, tagSeparator)
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

// RenderItemRow renders one list row.
func RenderItemRow(item catalog.Item, selected bool) string {
	name := truncate(DisplayName(item), colWidthName)
	padded := name + strings.Repeat(" ", max(0, colWidthName-lipgloss.Width(name)))

	if selected {
		return SelectedRowStyle.Render("> " + padded + "  " + TagLine(item))
	}
	return "  " + ValueStyle.Render(padded) + "  " + TagStyle.Render(TagLine(item))
}

// pageSummary is the "Page X of Y" line shared by plain and styled output.
func pageSummary(page listview.Page[catalog.Item]) string {
	meta := page.Meta()
	total := meta.TotalPages
	if total == 0 {
		total = 1
	}
	summary := printer.Sprintf("Page %d of %d", meta.CurrentPage, total)
	summary += " (" + FormatCount(page.FilteredCount, "item") + ")"
	if page.SearchTerm != "" {
		summary += " matching \"" + page.SearchTerm + "\""
	}
	return summary
}

// RenderPlain renders a page as unstyled text.
func RenderPlain(page listview.Page[catalog.Item]) string {
	var sb strings.Builder
	sb.WriteString(pageSummary(page))
	sb.WriteByte('\n')

	if page.Empty() {
		sb.WriteString(EmptyMessage)
		sb.WriteByte('\n')
		return sb.String()
	}

	for _, item := range page.Items {
		name := truncate(DisplayName(item), colWidthName)
		sb.WriteString(name)
		if tags := TagLine(item); tags != "" {
			sb.WriteString(strings.Repeat(" ", max(0, colWidthName-lipgloss.Width(name))+2))
			sb.WriteString(tags)
		}
		sb.WriteByte('\n')
	}

	var nav []string
	if page.CanGoPrevious {
		nav = append(nav, "previous: page "+printer.Sprintf("%d", page.Meta().CurrentPage-1))
	}
	if page.CanGoNext {
		nav = append(nav, "next: page "+printer.Sprintf("%d", page.Meta().CurrentPage+1))
	}
	if len(nav) > 0 {
		sb.WriteString(strings.Join(nav, ", "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderButtons renders the Previous and Next controls, disabled when the
// page cannot move in that direction.
func RenderButtons(canGoPrevious, canGoNext bool) string {
	prev := DisabledButtonStyle.Render("◀ Previous")
	if canGoPrevious {
		prev = ButtonStyle.Render("◀ Previous")
	}
	next := DisabledButtonStyle.Render("Next ▶")
	if canGoNext {
		next = ButtonStyle.Render("Next ▶")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, prev, " ", next)
}

// RenderStyled renders a page inside a bordered box sized to width.
func RenderStyled(page listview.Page[catalog.Item], width int) string {
	if width < minWidth {
		width = minWidth
	}

	var content strings.Builder
	content.WriteString(HeaderStyle.Render("ITEMS"))
	content.WriteString("  ")
	content.WriteString(LabelStyle.Render(pageSummary(page)))
	content.WriteString("\n\n")

	if page.Empty() {
		content.WriteString(InfoStyle.Render(EmptyMessage))
	} else {
		rows := make([]string, len(page.Items))
		for idx, item := range page.Items {
			rows[idx] = RenderItemRow(item, false)
		}
		content.WriteString(strings.Join(rows, "\n"))
	}

	content.WriteString("\n\n")
	content.WriteString(RenderButtons(page.CanGoPrevious, page.CanGoNext))

	return BoxStyle.Width(width - borderPadding).Render(content.String())
}
