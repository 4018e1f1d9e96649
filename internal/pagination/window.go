package pagination

import (
	"errors"
	"fmt"
	"math"
)

// Pagination defaults.
const (
	DefaultPageSize = 10
	DefaultOffset   = 0
	MinPage         = 1
)

// Common validation errors.
var (
	ErrInvalidPage     = errors.New("page must be >= 1")
	ErrInvalidPageSize = errors.New("page size must be > 0")
)

// Window is a page-aligned view into a collection. Offset only ever moves by
// whole pages and never drops below zero.
type Window struct {
	// Offset is the zero-based index of the first item on the page.
	Offset int

	// PageSize is the number of items per page.
	PageSize int
}

// NewWindow returns a window at the first page with DefaultPageSize.
func NewWindow() Window {
	return Window{Offset: DefaultOffset, PageSize: DefaultPageSize}
}

// Advance moves the window by steps pages (negative steps move backward).
// The resulting offset is clamped to zero.
func (w Window) Advance(steps int) Window {
	w.Offset += steps * w.PageSize
	if w.Offset < 0 {
		w.Offset = 0
	}
	return w
}

// Reset returns the window moved back to the first page.
func (w Window) Reset() Window {
	w.Offset = DefaultOffset
	return w
}

// Page returns the 1-based page number of the window.
func (w Window) Page() int {
	if w.PageSize <= 0 || w.Offset < 0 {
		return MinPage
	}
	return w.Offset/w.PageSize + 1
}

// OffsetForPage converts a 1-based page number into an offset.
func OffsetForPage(page, pageSize int) (int, error) {
	if page < MinPage {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidPage, page)
	}
	if pageSize <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidPageSize, pageSize)
	}
	if page-1 > math.MaxInt/pageSize {
		return 0, fmt.Errorf("%w: page %d overflows the offset", ErrInvalidPage, page)
	}
	return (page - 1) * pageSize, nil
}

// Slice returns items[offset:min(offset+limit, len(items))].
// An offset outside [0, len(items)) yields an empty, non-nil slice.
// A limit of zero or less means "no limit". The result's capacity is capped
// so appending to it never writes into items.
func Slice[T any](items []T, offset, limit int) []T {
	if offset < 0 || offset >= len(items) {
		return []T{}
	}

	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return items[offset:end:end]
}
