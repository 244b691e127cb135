// Package schemafile compiles declarative YAML container-type definitions
// into satchel types.
//
// A schema document names the type and its rule set:
//
//	type: User
//	rules:
//	  email: [required, email]
//	  age: ["int", "greaterThanEqual:0"]
//	  deleted_at: nullable
//	dates: [deleted_at]
//
// Rule lists use the same mini-language as satchel.NewType. A field may
// declare a single rule as a plain scalar. Multi-document streams compile to
// one type per document.
package schemafile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	satchel "github.com/satchel-dev/satchel"
)

// Options controls how loaded documents compile into types.
type Options struct {
	// Rules is the registry the compiled types resolve rule names against.
	// Nil means the process-wide default registry.
	Rules *satchel.RuleRegistry
	// Macros is the registry the compiled types dispatch dynamic calls
	// through. Nil means the process-wide default registry.
	Macros *satchel.MacroRegistry
}

// document is the on-disk schema shape. Unknown keys are decode errors.
type document struct {
	Type  string               `yaml:"type"`
	Rules map[string]ruleSpecs `yaml:"rules"`
	Dates []string             `yaml:"dates"`
}

func (d document) empty() bool {
	return d.Type == "" && len(d.Rules) == 0 && len(d.Dates) == 0
}

// ruleSpecs accepts either a scalar ("required") or a sequence of scalars.
type ruleSpecs []string

func (r *ruleSpecs) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*r = nil
			return nil
		}
		*r = ruleSpecs{value.Value}
		return nil
	case yaml.SequenceNode:
		out := make(ruleSpecs, 0, len(value.Content))
		for _, n := range value.Content {
			if n.Kind != yaml.ScalarNode {
				return fmt.Errorf("schemafile: rule entry must be a string at line %d", n.Line)
			}
			out = append(out, n.Value)
		}
		*r = out
		return nil
	}
	return fmt.Errorf("schemafile: rules for a field must be a string or a list of strings at line %d", value.Line)
}

// Load compiles the first schema document in data. Empty documents are
// skipped; a stream with no schema document is an error.
func Load(data []byte, opts Options) (*satchel.Type, error) {
	types, err := LoadAll(data, opts)
	if err != nil {
		return nil, err
	}
	if len(types) == 0 {
		return nil, errors.New("schemafile: no schema document found")
	}
	return types[0], nil
}

// LoadAll compiles every schema document in a multi-document stream, in
// order. Documents decode strictly: unknown keys are errors.
func LoadAll(data []byte, opts Options) ([]*satchel.Type, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var out []*satchel.Type
	for {
		var doc document
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("schemafile: decode schema document: %w", err)
		}
		if doc.empty() {
			continue
		}
		t, err := compile(doc, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// LoadFile reads path and compiles its first schema document.
func LoadFile(path string, opts Options) (*satchel.Type, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schemafile: read %s: %w", path, err)
	}
	t, err := Load(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%w (in %s)", err, path)
	}
	return t, nil
}

// compile turns one decoded document into a type. Rule names resolve at
// validation time, so a document may reference rules registered later.
func compile(doc document, opts Options) (*satchel.Type, error) {
	b := satchel.NewType(doc.Type)
	for field, specs := range doc.Rules {
		b.Field(field, specs...)
	}
	b.Date(doc.Dates...)
	if opts.Rules != nil {
		b.WithRules(opts.Rules)
	}
	if opts.Macros != nil {
		b.WithMacros(opts.Macros)
	}
	t, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("schemafile: compile type %q: %w", doc.Type, err)
	}
	return t, nil
}
