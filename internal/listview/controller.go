package listview

import (
	"github.com/rshade/cardlist/internal/pagination"
)

// Direction is a paging direction.
type Direction int

const (
	// Backward moves one page toward the start.
	Backward Direction = -1
	// Forward moves one page toward the end.
	Forward Direction = 1
)

// State is the controller's mutable view state.
type State struct {
	SearchTerm string
	Offset     int
}

// Page is the visible slice of the filtered collection plus the state it was
// computed from.
type Page[T any] struct {
	// Items is the visible page, at most PageSize long. Never nil.
	Items []T

	SearchTerm string
	Offset     int
	PageSize   int

	// FilteredCount is the number of items matching SearchTerm.
	FilteredCount int

	CanGoPrevious bool
	CanGoNext     bool
}

// Empty reports whether the page has no items to show.
func (p Page[T]) Empty() bool {
	return len(p.Items) == 0
}

// Meta returns the pagination metadata of the page.
func (p Page[T]) Meta() pagination.Meta {
	return pagination.NewMeta(pagination.Window{Offset: p.Offset, PageSize: p.PageSize}, p.FilteredCount)
}

// ComputeVisiblePage filters items by state.SearchTerm and returns the page
// starting at state.Offset. It is a pure function of its arguments.
// Offsets outside the filtered collection, negative ones included, give an
// empty page.
func ComputeVisiblePage[T Tagged](items []T, state State, pageSize int) Page[T] {
	filtered := Filter(items, state.SearchTerm)

	return Page[T]{
		Items:         pagination.Slice(filtered, state.Offset, pageSize),
		SearchTerm:    state.SearchTerm,
		Offset:        state.Offset,
		PageSize:      pageSize,
		FilteredCount: len(filtered),
		CanGoPrevious: state.Offset != 0,
		CanGoNext:     state.Offset+pageSize < len(filtered),
	}
}

// Option configures a Controller.
type Option func(*options)

type options struct {
	observer Observer
}

// WithObserver registers an observer notified after every computation.
func WithObserver(o Observer) Option {
	return func(opts *options) {
		opts.observer = o
	}
}

// Controller owns the search term and pagination window of one list view.
// It is not safe for concurrent use; hosts drive it from their event loop.
type Controller[T Tagged] struct {
	window     pagination.Window
	searchTerm string
	observer   Observer
}

// New creates a controller on the first page with an empty search term.
func New[T Tagged](opts ...Option) *Controller[T] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	return &Controller[T]{
		window:   pagination.NewWindow(),
		observer: o.observer,
	}
}

// SetSearchTerm replaces the search term. A new search always starts on the
// first page.
func (c *Controller[T]) SetSearchTerm(term string) {
	c.searchTerm = term
	c.window = c.window.Reset()
}

// Paginate moves one page in the sign of d; zero is a no-op.
// Moving backward from the first page leaves the offset at zero. There is no
// upper bound: paging past the end produces an empty page.
func (c *Controller[T]) Paginate(d Direction) {
	switch {
	case d > 0:
		c.window = c.window.Advance(1)
	case d < 0:
		c.window = c.window.Advance(-1)
	}
}

// State returns the current search term and offset.
func (c *Controller[T]) State() State {
	return State{SearchTerm: c.searchTerm, Offset: c.window.Offset}
}

// PageSize returns the number of items per page.
func (c *Controller[T]) PageSize() int {
	return c.window.PageSize
}

// ComputeVisiblePage returns the visible page of items for the current state.
func (c *Controller[T]) ComputeVisiblePage(items []T) Page[T] {
	page := ComputeVisiblePage(items, c.State(), c.window.PageSize)
	if c.observer != nil {
		c.observer.PageComputed(page.SearchTerm, page.Offset, page.FilteredCount)
	}
	return page
}
