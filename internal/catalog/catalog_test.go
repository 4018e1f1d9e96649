package catalog_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rshade/cardlist/internal/catalog"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestTag_Text(t *testing.T) {
	tests := []struct {
		name  string
		title any
		want  string
	}{
		{name: "nil", title: nil, want: ""},
		{name: "string", title: " red ", want: " red "},
		{name: "json number", title: json.Number("12.50"), want: "12.50"},
		{name: "int", title: 7, want: "7"},
		{name: "float", title: 1.5, want: "1.5"},
		{name: "bool", title: true, want: "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.Tag{Title: tt.title}.Text())
		})
	}
}

func TestParse_JSONList(t *testing.T) {
	data := []byte(`[
		// products
		{"id": 1, "name": "Lamp", "price": 19.99, "tags": [{"title": "Red"}, {"title": 42}]},
		{"id": "b", "tags": "not-a-list"},
		{"name": "untagged"},
		{"id": 3, "tags": [{"label": "no title"}, "bare", {"title": null}]},
	]`)

	doc, err := catalog.Parse(data, catalog.FormatJSON)
	require.NoError(t, err)
	require.Len(t, doc.Items, 4)

	lamp := doc.Items[0]
	assert.Equal(t, "1", lamp.ID)
	assert.Equal(t, []string{"Red", "42"}, lamp.TagTitles())
	assert.Equal(t, "Lamp", lamp.Attribute("name"))
	assert.Equal(t, "19.99", lamp.Attribute("price"))
	assert.Equal(t, "", lamp.Attribute("missing"))

	assert.Equal(t, "b", doc.Items[1].ID)
	assert.Empty(t, doc.Items[1].Tags)

	assert.Equal(t, "", doc.Items[2].ID)
	assert.Nil(t, doc.Items[2].Tags)

	assert.Equal(t, []string{"", "", ""}, doc.Items[3].TagTitles())
}

func TestParse_YAMLEnvelope(t *testing.T) {
	data := []byte(`
schema_version: 1.2.0
items:
  - id: 10
    name: Mug
    tags:
      - title: blue
      - title: 3
  - id: 11
`)

	doc, err := catalog.Parse(data, catalog.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "1.2.0", doc.SchemaVersion)
	require.Len(t, doc.Items, 2)
	assert.Equal(t, "10", doc.Items[0].ID)
	assert.Equal(t, []string{"blue", "3"}, doc.Items[0].TagTitles())
	assert.Equal(t, "Mug", doc.Items[0].Attribute("name"))
	assert.Empty(t, doc.Items[1].TagTitles())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format catalog.Format
		target error
	}{
		{name: "unknown format", data: `[]`, format: "toml", target: catalog.ErrUnknownFormat},
		{name: "scalar document", data: `42`, format: catalog.FormatJSON, target: catalog.ErrMalformed},
		{name: "envelope without items", data: `{"schema_version": "1.0.0"}`, format: catalog.FormatJSON, target: catalog.ErrMalformed},
		{name: "items not a list", data: `{"items": {"a": 1}}`, format: catalog.FormatJSON, target: catalog.ErrMalformed},
		{name: "item not an object", data: `[1, 2]`, format: catalog.FormatJSON, target: catalog.ErrMalformed},
		{name: "future schema", data: `{"schema_version": "2.0.0", "items": []}`, format: catalog.FormatJSON, target: catalog.ErrUnsupportedSchema},
		{name: "bad schema", data: "schema_version: banana\nitems: []\n", format: catalog.FormatYAML, target: catalog.ErrUnsupportedSchema},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(tt.data), tt.format)
			require.ErrorIs(t, err, tt.target)
		})
	}

	_, err := catalog.Parse([]byte(`{"items": [`), catalog.FormatJSON)
	require.Error(t, err)
}

func TestParse_NullItems(t *testing.T) {
	doc, err := catalog.Parse([]byte(`{"items": null}`), catalog.FormatJSON)
	require.NoError(t, err)
	assert.Empty(t, doc.Items)
}

func TestCheckSchemaVersion(t *testing.T) {
	assert.NoError(t, catalog.CheckSchemaVersion(""))
	assert.NoError(t, catalog.CheckSchemaVersion("1.0.0"))
	assert.NoError(t, catalog.CheckSchemaVersion("1.9.3"))
	assert.ErrorIs(t, catalog.CheckSchemaVersion("0.9.0"), catalog.ErrUnsupportedSchema)
	assert.ErrorIs(t, catalog.CheckSchemaVersion("2.0.0"), catalog.ErrUnsupportedSchema)
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]catalog.Format{
		"a.json":  catalog.FormatJSON,
		"a.JSONC": catalog.FormatJSON,
		"a.yaml":  catalog.FormatYAML,
		"a.yml":   catalog.FormatYAML,
	} {
		got, err := catalog.FormatFromPath(path)
		require.NoError(t, err)
		assert.Equal(t, want, got, path)
	}

	_, err := catalog.FormatFromPath("a.csv")
	assert.ErrorIs(t, err, catalog.ErrUnknownFormat)
}

func TestItem_MarshalRoundTripsAttributes(t *testing.T) {
	item := catalog.Item{
		ID:         "7",
		Tags:       []catalog.Tag{{Title: "red"}},
		Attributes: map[string]any{"name": "Lamp"},
	}

	out, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"7","name":"Lamp","tags":[{"title":"red"}]}`, string(out))

	y, err := yaml.Marshal(catalog.Item{ID: "8"})
	require.NoError(t, err)
	assert.Contains(t, string(y), "id: \"8\"")
	assert.Contains(t, string(y), "tags: []")
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "first.jsonc", `[{"id": 1, "tags": [{"title": "red"}]}, {"id": 2},]`)
	second := writeFile(t, dir, "second.yaml", "items:\n  - id: 3\n  - name: no id\n")

	items, err := catalog.LoadFiles(context.Background(), []string{first, second})
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "2", items[1].ID)
	assert.Equal(t, "3", items[2].ID)
	assert.Equal(t, "second.yaml#2", items[3].ID)

	again, err := catalog.LoadFiles(context.Background(), []string{first, second})
	require.NoError(t, err)
	assert.Equal(t, items, again)
}

func TestLoadFiles_DuplicateIDsAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "a.json", `[{"id": 1}, {"name": "anon"}]`)
	second := writeFile(t, dir, "b.json", `[{"id": 1}, {"name": "anon"}]`)

	items, err := catalog.LoadFiles(context.Background(), []string{first, second})
	require.NoError(t, err)
	require.Len(t, items, 4)

	keys := make([]string, 0, len(items))
	for _, item := range items {
		keys = append(keys, item.Key())
	}
	assert.Equal(t, []string{"1", "a.json#2", "1~2", "b.json#2"}, keys)
	assert.Equal(t, "1", items[2].ID)
}

func TestLoadFiles_Errors(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", `[]`)

	_, err := catalog.LoadFiles(context.Background(), []string{good, filepath.Join(dir, "missing.json")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.json")

	bad := writeFile(t, dir, "bad.txt", `[]`)
	_, err = catalog.LoadFiles(context.Background(), []string{bad})
	require.ErrorIs(t, err, catalog.ErrUnknownFormat)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = catalog.LoadFiles(ctx, []string{good})
	require.ErrorIs(t, err, context.Canceled)
}

func TestLoadFiles_Empty(t *testing.T) {
	items, err := catalog.LoadFiles(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestLoaders(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "c.json", `[{"id": "x"}]`)

	items, err := catalog.FileLoader([]string{path})(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "x", items[0].ID)

	static := []catalog.Item{{ID: "s"}}
	items, err = catalog.StaticLoader(static)(context.Background())
	require.NoError(t, err)
	assert.Equal(t, static, items)
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	in := []catalog.Item{{ID: ""}, {ID: "keep"}}
	out := catalog.Normalize(in)
	assert.Equal(t, "", in[0].ID)
	assert.Equal(t, "#1", out[0].ID)
	assert.Equal(t, "keep", out[1].ID)
	assert.Equal(t, "keep", out[1].Key())
}

func TestNormalize_Deterministic(t *testing.T) {
	in := []catalog.Item{{ID: "a"}, {}, {ID: "a"}, {ID: "b"}, {ID: "a"}}

	out := catalog.Normalize(in)
	keys := make([]string, 0, len(out))
	for _, item := range out {
		keys = append(keys, item.Key())
	}
	assert.Equal(t, []string{"a", "#2", "a~2", "b", "a~3"}, keys)
	assert.Equal(t, out, catalog.Normalize(in))
	assert.Equal(t, out, catalog.Normalize(out))
}

func TestNormalize_SuffixAvoidsExistingIDs(t *testing.T) {
	out := catalog.Normalize([]catalog.Item{{ID: "a"}, {ID: "a~2"}, {ID: "a"}})
	assert.Equal(t, "a", out[0].Key())
	assert.Equal(t, "a~2", out[1].Key())
	assert.Equal(t, "a~3", out[2].Key())
}

func TestItem_KeyDefaultsToID(t *testing.T) {
	assert.Equal(t, "x", catalog.Item{ID: "x"}.Key())
}
