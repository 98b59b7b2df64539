package app

import (
	"encoding/json"
	"fmt"
)

// FieldPath addresses a value on the provider's response document: either a
// top-level field (Object empty) or one field inside a sub-object.
type FieldPath struct {
	Object string
	Field  string
}

// FieldMap maps caller-chosen local names to field paths on the provider's
// response. It is configured once at startup and read-only afterwards.
type FieldMap map[string]FieldPath

// DefaultFieldMap maps the local "id" to the provider's primary identifier.
func DefaultFieldMap() FieldMap {
	return FieldMap{"id": {Field: "id"}}
}

// ParseFieldMap parses the configured JSON field map, e.g.
//
//	{"total": "amount", "cardBrand": {"source": "brand"}}
//
// A string value names a top-level provider field; an object value names one
// field inside one sub-object. An empty input yields DefaultFieldMap.
func ParseFieldMap(raw string) (FieldMap, error) {
	if raw == "" {
		return DefaultFieldMap(), nil
	}
	var entries map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("invalid field map JSON: %w", err)
	}
	fm := make(FieldMap, len(entries))
	for local, v := range entries {
		switch value := v.(type) {
		case string:
			fm[local] = FieldPath{Field: value}
		case map[string]interface{}:
			if len(value) != 1 {
				return nil, fmt.Errorf("field map entry %q must name exactly one sub-object field", local)
			}
			for object, field := range value {
				name, ok := field.(string)
				if !ok {
					return nil, fmt.Errorf("field map entry %q: sub-object field must be a string", local)
				}
				fm[local] = FieldPath{Object: object, Field: name}
			}
		default:
			return nil, fmt.Errorf("field map entry %q must be a string or a one-field object", local)
		}
	}
	return fm, nil
}

// Project extracts the mapped fields from a provider response document. This is
// a projection, not a serialization: provider fields outside the map are
// dropped, and mapped fields absent from the document are skipped silently.
func (fm FieldMap) Project(doc map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fm))
	for local, path := range fm {
		source := doc
		if path.Object != "" {
			nested, ok := doc[path.Object].(map[string]interface{})
			if !ok {
				continue
			}
			source = nested
		}
		if value, ok := source[path.Field]; ok {
			out[local] = value
		}
	}
	return out
}
