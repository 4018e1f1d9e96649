// Package pagination provides offset-window primitives shared by the list view
// controller and the command line.
//
// This package contains:
//   - Window: an offset/page-size pair that only moves by whole pages
//   - Slice: bounded slicing of a filtered collection
//   - Meta: page metadata (current page, totals, previous/next availability)
//
// All helpers are pure; nothing here owns a collection.
package pagination
