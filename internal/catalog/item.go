package catalog

import (
	"encoding/json"
	"fmt"
)

// Tag is a label attached to an item. Title is kept as decoded: usually a
// string, but numbers, booleans and nil all occur in real catalogs.
type Tag struct {
	Title any `json:"title" yaml:"title"`
}

// Text returns the title as a string. A missing title is "".
func (t Tag) Text() string {
	switch v := t.Title.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Item is one record of a catalog.
type Item struct {
	ID   string
	Tags []Tag

	// Attributes holds every other field of the record.
	Attributes map[string]any

	// key is set by Normalize.
	key string
}

// Key identifies the item within its collection. It is the ID unless
// Normalize had to disambiguate a repeated ID.
func (i Item) Key() string {
	if i.key != "" {
		return i.key
	}
	return i.ID
}

// TagTitles returns the text of each tag, in order.
func (i Item) TagTitles() []string {
	titles := make([]string, len(i.Tags))
	for idx, tag := range i.Tags {
		titles[idx] = tag.Text()
	}
	return titles
}

// Attribute returns a pass-through field rendered as a string, or "" when
// the item does not have it.
func (i Item) Attribute(name string) string {
	v, ok := i.Attributes[name]
	if !ok {
		return ""
	}
	return Tag{Title: v}.Text()
}

// record flattens the item back into a single map.
func (i Item) record() map[string]any {
	out := make(map[string]any, len(i.Attributes)+2)
	for k, v := range i.Attributes {
		out[k] = v
	}
	out[fieldID] = i.ID
	tags := i.Tags
	if tags == nil {
		tags = []Tag{}
	}
	out[fieldTags] = tags
	return out
}

// MarshalJSON writes the item as a flat object.
func (i Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.record())
}

// MarshalYAML writes the item as a flat mapping.
func (i Item) MarshalYAML() (any, error) {
	return i.record(), nil
}
