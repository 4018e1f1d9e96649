// Package catalog loads the item collections shown by the card list.
//
// Catalog files are JSON (comments and trailing commas allowed) or YAML. A
// file holds either a bare list of items or an envelope with a schema
// version:
//
//	{
//	  "schema_version": "1.0.0",
//	  "items": [
//	    {"id": 1, "name": "Lamp", "tags": [{"title": "red"}]},
//	  ],
//	}
//
// Only "id" and "tags" are interpreted. Every other field is kept in
// Item.Attributes and written back out unchanged. Missing or malformed tags
// never fail a load; they simply never match a search.
package catalog
