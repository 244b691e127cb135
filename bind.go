package satchel

import (
	"github.com/mitchellh/mapstructure"
)

// Bind decodes the stored map into out, a pointer to a struct or map.
// Fields match by `satchel` tag, then by name; weakly typed conversion is on
// so json.Number values land in plain numeric fields.
func (c *Container) Bind(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "satchel",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(c.ToMap())
}
