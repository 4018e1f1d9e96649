// Package list provides a keyed row list for Bubble Tea TUI applications.
//
// The list renders every row it is given, one line per item, and tracks a
// selection by item key rather than by index. When the rows are replaced
// (a new page, a new search) the selection follows its item if the item is
// still present and otherwise returns to the first row. An empty row set
// renders a configurable empty-state message.
package list
