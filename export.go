package satchel

import (
	"bytes"
	"fmt"

	gojson "github.com/goccy/go-json"
)

// ToMap returns a top-level copy of the stored map. No accessor resolution
// or date coercion applies; nested values are shared with the store.
func (c *Container) ToMap() map[string]any {
	return c.store.snapshot()
}

// ToJSON encodes the raw stored map as UTF-8 JSON. Like ToMap, the
// projection bypasses accessors and coercion.
func (c *Container) ToJSON() ([]byte, error) {
	return gojson.Marshal(c.store.data)
}

// MakeJSON decodes a JSON object and constructs a container from it.
// Numbers decode as json.Number so rule predicates see full precision.
func (t *Type) MakeJSON(data []byte) (*Container, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("satchel: decode json: %w", err)
	}
	return t.Make(m)
}
