package satchel

import (
	"errors"
	"fmt"
	"time"

	"github.com/satchel-dev/satchel/codec"
)

// Container holds a dynamic set of named field values gated by its type's
// rule set. Reads resolve through the type's computed accessors and the
// macro registry before falling back to the store; writes through Set are
// unvalidated, validation runs on Fill, Merge and construction.
//
// A container is not safe for concurrent mutation; the holder of the
// reference owns it.
type Container struct {
	ty    *Type
	store store
}

// New validates data against t's rule set and returns a filled container.
// A nil type yields a plain dynamic bag with no rules. Construction either
// fully succeeds or fails as a whole; no partial container escapes.
func New(t *Type, data map[string]any) (*Container, error) {
	if t == nil {
		t = emptyType
	}
	c := &Container{ty: t, store: newStore()}
	if err := c.Fill(data); err != nil {
		return nil, err
	}
	return c, nil
}

// Type returns the container's type descriptor.
func (c *Container) Type() *Type { return c.ty }

// Fill validates every declared field against data, required checks
// included, then writes every key of data into the store. Keys absent from
// the rule set are written unvalidated. On failure nothing is written.
func (c *Container) Fill(data map[string]any) error {
	if err := validate(c.ty, data); err != nil {
		return err
	}
	for k, v := range data {
		c.store.set(k, v)
	}
	return nil
}

// Merge fills from the other container's stored map: validation re-runs and
// conflicting keys are overwritten.
func (c *Container) Merge(other *Container) error {
	if other == nil {
		return nil
	}
	return c.Fill(other.ToMap())
}

// Get resolves a field read. First match wins: the type's computed accessor
// for the field, a macro under the field's Get<Pascal> method form, then the
// store, where declared date fields coerce on every read and absent fields
// read as nil. Get never writes.
func (c *Container) Get(name string) any {
	if fn, ok := c.ty.accessor(name); ok {
		return fn(c)
	}
	if fn, ok := c.ty.macroRegistry().Resolve(accessorMethodName(name)); ok {
		return fn(c)
	}
	v, ok := c.store.get(name)
	if !ok {
		return nil
	}
	if c.ty.isDate(name) {
		if t, err := coerceDate(v); err == nil {
			return t
		}
	}
	return v
}

// Set unconditionally writes the entry and returns the container for
// chaining. No validation runs here.
func (c *Container) Set(name string, v any) *Container {
	c.store.set(name, v)
	return c
}

// Has reports whether name holds a non-null value.
func (c *Container) Has(name string) bool { return c.store.has(name) }

// DoesNotHave is the negation of Has.
func (c *Container) DoesNotHave(name string) bool { return !c.Has(name) }

// Forget removes the entry if present and returns the container for
// chaining. Forgetting an absent field is a no-op.
func (c *Container) Forget(name string) *Container {
	c.store.forget(name)
	return c
}

// Raw reads the stored value without accessor resolution or coercion. The
// second result distinguishes a stored null from an absent field.
func (c *Container) Raw(name string) (any, bool) {
	return c.store.get(name)
}

// Date is the explicit derived view of a stored value as a date, with the
// parse error Get's coercion swallows.
func (c *Container) Date(name string) (time.Time, error) {
	v, ok := c.store.get(name)
	if !ok {
		return time.Time{}, fmt.Errorf("satchel: no value stored for field %q", name)
	}
	return coerceDate(v)
}

// Call dispatches a dynamic method: accessor bindings first, under their
// Get<Pascal(field)> form, then the macro registry with the container as
// implicit first argument.
func (c *Container) Call(method string, args ...any) (any, error) {
	if fn, ok := c.ty.methodAccessor(method); ok {
		return fn(c), nil
	}
	return c.ty.macroRegistry().Invoke(c, method, args...)
}

func coerceDate(v any) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return d, nil
	case *time.Time:
		if d != nil {
			return *d, nil
		}
		return time.Time{}, errors.New("satchel: nil time value")
	case string:
		return codec.Parse(d)
	}
	return time.Time{}, fmt.Errorf("satchel: cannot coerce %T to date", v)
}
