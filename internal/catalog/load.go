package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/cardlist/internal/logging"
)

// Loader produces a fresh snapshot of the item collection.
type Loader func(ctx context.Context) ([]Item, error)

// ReadFile reads and parses one catalog file, choosing the format from the
// file extension.
func ReadFile(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// LoadFiles reads every path concurrently and concatenates their items in
// argument order. The first failure cancels the remaining reads.
func LoadFiles(ctx context.Context, paths []string) ([]Item, error) {
	log := logging.FromContext(ctx)
	docs := make([]*Document, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for idx, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			doc, err := ReadFile(path)
			if err != nil {
				return err
			}
			fillMissingIDs(doc.Items, filepath.Base(path))
			docs[idx] = doc
			log.Debug().Ctx(gCtx).
				Str("subsystem", "catalog").
				Str("operation", "load_file").
				Str("path", path).
				Str("schema_version", doc.SchemaVersion).
				Int("items", len(doc.Items)).
				Msg("loaded catalog file")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, doc := range docs {
		total += len(doc.Items)
	}
	items := make([]Item, 0, total)
	for _, doc := range docs {
		items = append(items, doc.Items...)
	}

	return Normalize(items), nil
}

// FileLoader returns a Loader that re-reads paths on every call.
func FileLoader(paths []string) Loader {
	return func(ctx context.Context) ([]Item, error) {
		return LoadFiles(ctx, paths)
	}
}

// StaticLoader returns a Loader that always yields items.
func StaticLoader(items []Item) Loader {
	return func(context.Context) ([]Item, error) {
		return items, nil
	}
}

// fillMissingIDs names every item without an ID after its file and 1-based
// position, so reloading an unchanged file yields the same IDs.
func fillMissingIDs(items []Item, source string) {
	for idx := range items {
		if items[idx].ID == "" {
			items[idx].ID = source + "#" + strconv.Itoa(idx+1)
		}
	}
}

// Normalize returns a copy of items in which every item has an ID and a
// unique Key. Items without an ID are named after their position. Repeated
// IDs get keys suffixed with their occurrence number ("a", "a~2", ...).
// The result depends only on the input order, so keys survive a reload.
func Normalize(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	fillMissingIDs(out, "")

	taken := make(map[string]bool, len(out))
	for idx := range out {
		out[idx].key = ""
		taken[out[idx].ID] = true
	}

	seen := make(map[string]int, len(out))
	for idx := range out {
		id := out[idx].ID
		seen[id]++
		if seen[id] == 1 {
			continue
		}
		key := id + "~" + strconv.Itoa(seen[id])
		for taken[key] {
			seen[id]++
			key = id + "~" + strconv.Itoa(seen[id])
		}
		taken[key] = true
		out[idx].key = key
	}
	return out
}
