package satchel

import (
	"fmt"
	"sort"

	"github.com/satchel-dev/satchel/internal/strcase"
)

// Accessor computes a field's value from the container, overriding whatever
// the store holds for that field.
type Accessor func(c *Container) any

// fieldRules is one field's compiled rule list with its applicability flags
// lifted out, so required/nullable act first regardless of declaration order.
type fieldRules struct {
	rules    []Rule
	required bool
	nullable bool
}

// Type describes one container type: its rule set, its date-coerced fields
// and its computed-accessor bindings. Types are built once, are immutable
// afterwards, and are shared by every container constructed from them.
type Type struct {
	name      string
	fields    map[string]fieldRules
	order     []string // declared rule fields, sorted
	dates     map[string]struct{}
	accessors map[string]Accessor // by field name
	methods   map[string]Accessor // by Get<Pascal(field)> form
	registry  *RuleRegistry
	macros    *MacroRegistry
}

// emptyType backs containers constructed without a declared type: a pure
// dynamic bag with no rules, no dates and no accessors.
var emptyType = &Type{
	name:      "Container",
	fields:    map[string]fieldRules{},
	dates:     map[string]struct{}{},
	accessors: map[string]Accessor{},
	methods:   map[string]Accessor{},
}

// Name returns the container type name used in dispatch errors.
func (t *Type) Name() string { return t.name }

// Make validates data against the type's rule set and returns a filled
// container. Construction either fully succeeds or fails as a whole.
func (t *Type) Make(data map[string]any) (*Container, error) {
	return New(t, data)
}

// MustMake is Make for static data known to pass; it panics on error.
func (t *Type) MustMake(data map[string]any) *Container {
	c, err := t.Make(data)
	if err != nil {
		panic(err)
	}
	return c
}

// Fields returns the rule-declared field names in sorted order.
func (t *Type) Fields() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Rules returns a copy of the compiled rule list declared for field.
func (t *Type) Rules(field string) []Rule {
	fr, ok := t.fields[field]
	if !ok {
		return nil
	}
	out := make([]Rule, len(fr.rules))
	copy(out, fr.rules)
	return out
}

// Dates returns the date-coerced field names in sorted order.
func (t *Type) Dates() []string {
	out := make([]string, 0, len(t.dates))
	for name := range t.dates {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Accessors returns the fields with computed-accessor bindings in sorted
// order.
func (t *Type) Accessors() []string {
	out := make([]string, 0, len(t.accessors))
	for name := range t.accessors {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (t *Type) isDate(name string) bool {
	_, ok := t.dates[name]
	return ok
}

func (t *Type) accessor(name string) (Accessor, bool) {
	fn, ok := t.accessors[name]
	return fn, ok
}

// methodAccessor resolves a dynamic method name against the accessor
// bindings, matching case-insensitively on the Get<Pascal(field)> form.
func (t *Type) methodAccessor(method string) (Accessor, bool) {
	fn, ok := t.methods[strcase.Pascal(method)]
	return fn, ok
}

func (t *Type) ruleRegistry() *RuleRegistry {
	if t.registry != nil {
		return t.registry
	}
	return defaultRules
}

func (t *Type) macroRegistry() *MacroRegistry {
	if t.macros != nil {
		return t.macros
	}
	return defaultMacros
}

// accessorMethodName is the dynamic method form a field resolves through:
// "display_name" reads via GetDisplayName.
func accessorMethodName(field string) string {
	return "Get" + strcase.Pascal(field)
}

// TypeBuilder assembles a Type. Declaration methods chain; Build compiles
// the declarations into an immutable Type.
type TypeBuilder struct {
	name      string
	rules     map[string][]Rule
	dates     map[string]struct{}
	accessors map[string]Accessor
	registry  *RuleRegistry
	macros    *MacroRegistry
	err       error
}

// NewType starts a builder for a container type with the given name.
func NewType(name string) *TypeBuilder {
	if name == "" {
		name = "Container"
	}
	return &TypeBuilder{
		name:      name,
		rules:     map[string][]Rule{},
		dates:     map[string]struct{}{},
		accessors: map[string]Accessor{},
	}
}

// Field appends mini-language rule specs to the field's rule list. Calling
// Field again for the same name appends, preserving declaration order.
func (b *TypeBuilder) Field(name string, specs ...string) *TypeBuilder {
	if name == "" {
		b.fail(fmt.Errorf("satchel: empty field name"))
		return b
	}
	b.rules[name] = append(b.rules[name], ParseRules(specs...)...)
	return b
}

// Predicate appends an opaque predicate rule to the field's rule list.
func (b *TypeBuilder) Predicate(name string, fn func(value any) bool) *TypeBuilder {
	if fn == nil {
		b.fail(fmt.Errorf("satchel: nil predicate for field %q", name))
		return b
	}
	b.rules[name] = append(b.rules[name], RuleFunc(fn))
	return b
}

// Date marks fields for read-time date coercion.
func (b *TypeBuilder) Date(names ...string) *TypeBuilder {
	for _, n := range names {
		b.dates[n] = struct{}{}
	}
	return b
}

// Accessor binds a computed accessor to a field. The binding wins over both
// same-named macros and the stored value on the get path.
func (b *TypeBuilder) Accessor(field string, fn Accessor) *TypeBuilder {
	if fn == nil {
		b.fail(fmt.Errorf("satchel: nil accessor for field %q", field))
		return b
	}
	b.accessors[field] = fn
	return b
}

// WithRules injects the rule registry the type resolves named rules against.
// Types without one share the process-wide default registry.
func (b *TypeBuilder) WithRules(reg *RuleRegistry) *TypeBuilder {
	b.registry = reg
	return b
}

// WithMacros injects the macro registry the type dispatches through. Types
// without one share the process-wide default registry.
func (b *TypeBuilder) WithMacros(reg *MacroRegistry) *TypeBuilder {
	b.macros = reg
	return b
}

func (b *TypeBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Build compiles the declarations into a Type.
func (b *TypeBuilder) Build() (*Type, error) {
	if b.err != nil {
		return nil, b.err
	}
	t := &Type{
		name:      b.name,
		fields:    make(map[string]fieldRules, len(b.rules)),
		order:     make([]string, 0, len(b.rules)),
		dates:     make(map[string]struct{}, len(b.dates)),
		accessors: make(map[string]Accessor, len(b.accessors)),
		methods:   make(map[string]Accessor, len(b.accessors)),
		registry:  b.registry,
		macros:    b.macros,
	}
	for name, rules := range b.rules {
		fr := fieldRules{rules: rules}
		for _, r := range rules {
			switch r.Name() {
			case ruleRequired:
				fr.required = true
			case ruleNullable:
				fr.nullable = true
			}
		}
		t.fields[name] = fr
		t.order = append(t.order, name)
	}
	sort.Strings(t.order)
	for name := range b.dates {
		t.dates[name] = struct{}{}
	}
	for field, fn := range b.accessors {
		t.accessors[field] = fn
		t.methods[accessorMethodName(field)] = fn
	}
	return t, nil
}

// MustBuild is Build for declarations known to be well formed; it panics on
// error.
func (b *TypeBuilder) MustBuild() *Type {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}
