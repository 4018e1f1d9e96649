package pagination

// Meta contains metadata about a page of results.
type Meta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	Offset      int  `json:"offset"       yaml:"offset"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewMeta creates page metadata from a window and the size of the collection
// the window slices.
//
// HasNext compares against the total rather than checking whether the current
// page is full, so an exactly full last page does not advertise a next page.
func NewMeta(w Window, totalCount int) Meta {
	totalPages := 0
	if w.PageSize > 0 && totalCount > 0 {
		totalPages = totalCount / w.PageSize
		if totalCount%w.PageSize > 0 {
			totalPages++
		}
	}

	return Meta{
		CurrentPage: w.Page(),
		PageSize:    w.PageSize,
		Offset:      w.Offset,
		TotalPages:  totalPages,
		TotalItems:  totalCount,
		HasPrevious: w.Offset != 0,
		HasNext:     w.Offset+w.PageSize < totalCount,
	}
}
