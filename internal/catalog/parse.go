package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Format is a catalog file encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// SupportedSchema is the semver constraint a document's schema_version must
// satisfy.
const SupportedSchema = "^1.0.0"

const (
	fieldID            = "id"
	fieldTags          = "tags"
	fieldTitle         = "title"
	fieldSchemaVersion = "schema_version"
	fieldItems         = "items"
)

// Common catalog errors.
var (
	ErrUnknownFormat     = errors.New("unknown catalog format")
	ErrUnsupportedSchema = errors.New("unsupported catalog schema version")
	ErrMalformed         = errors.New("malformed catalog")
)

// Document is a parsed catalog file.
type Document struct {
	SchemaVersion string `json:"schema_version,omitempty" yaml:"schema_version,omitempty"`
	Items         []Item `json:"items"                    yaml:"items"`
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Parse decodes a catalog document.
func Parse(data []byte, format Format) (*Document, error) {
	var raw any

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("parsing catalog JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing catalog YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return documentFromRaw(raw)
}

// CheckSchemaVersion accepts an empty version or one satisfying
// SupportedSchema.
func CheckSchemaVersion(version string) error {
	if version == "" {
		return nil
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedSchema, version, err)
	}

	constraint, err := semver.NewConstraint(SupportedSchema)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedSchema, v, SupportedSchema)
	}

	return nil
}

func documentFromRaw(raw any) (*Document, error) {
	if list, ok := raw.([]any); ok {
		items, err := itemsFromRaw(list)
		if err != nil {
			return nil, err
		}
		return &Document{Items: items}, nil
	}

	envelope, ok := asMap(raw)
	if !ok {
		return nil, fmt.Errorf("%w: expected a list of items or an object with %q", ErrMalformed, fieldItems)
	}

	doc := &Document{}
	if v, present := envelope[fieldSchemaVersion]; present {
		doc.SchemaVersion = Tag{Title: v}.Text()
	}
	if err := CheckSchemaVersion(doc.SchemaVersion); err != nil {
		return nil, err
	}

	rawItems, present := envelope[fieldItems]
	if !present {
		return nil, fmt.Errorf("%w: missing %q", ErrMalformed, fieldItems)
	}
	if rawItems == nil {
		doc.Items = []Item{}
		return doc, nil
	}
	list, ok := rawItems.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q must be a list", ErrMalformed, fieldItems)
	}

	items, err := itemsFromRaw(list)
	if err != nil {
		return nil, err
	}
	doc.Items = items
	return doc, nil
}

func itemsFromRaw(list []any) ([]Item, error) {
	items := make([]Item, 0, len(list))
	for idx, v := range list {
		fields, ok := asMap(v)
		if !ok {
			return nil, fmt.Errorf("%w: item %d is not an object", ErrMalformed, idx)
		}
		items = append(items, itemFromFields(fields))
	}
	return items, nil
}

// itemFromFields never fails: anything that is not a usable id or tag list
// is treated as absent.
func itemFromFields(fields map[string]any) Item {
	item := Item{}

	for key, v := range fields {
		switch key {
		case fieldID:
			item.ID = Tag{Title: v}.Text()
		case fieldTags:
			item.Tags = tagsFromRaw(v)
		default:
			if item.Attributes == nil {
				item.Attributes = make(map[string]any, len(fields))
			}
			item.Attributes[key] = v
		}
	}

	return item
}

func tagsFromRaw(v any) []Tag {
	list, ok := v.([]any)
	if !ok {
		return nil
	}

	tags := make([]Tag, len(list))
	for idx, rawTag := range list {
		if fields, isMap := asMap(rawTag); isMap {
			tags[idx] = Tag{Title: fields[fieldTitle]}
		}
	}
	return tags
}

// asMap accepts both decoded map shapes. YAML mappings with non-string keys
// decode as map[any]any.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}
