// Package listview implements the list-view controller behind the card list:
// it owns a search term and a pagination offset and turns a caller-supplied
// collection into the currently visible page.
//
// The controller is synchronous and holds no reference to the collection.
// Hosts call ComputeVisiblePage whenever the term, the offset, or the
// collection snapshot changes, and render the returned Page. A Page also
// carries CanGoPrevious and CanGoNext, which hosts use to enable or disable
// their paging controls.
//
// Matching is a case-insensitive substring test against each tag title,
// after the title is trimmed of surrounding whitespace. An empty search term
// matches every item.
package listview
