package satchel

import (
	"github.com/satchel-dev/satchel/internal/strcase"
)

// Macro is a runtime-registered callable invocable through any container's
// dynamic method path, receiving the container as its first argument.
type Macro func(c *Container, args ...any) any

// MacroRegistry maps method names to macros. Names normalize to their Pascal
// form, so "getDomain" and "GetDomain" address the same entry.
//
// Like RuleRegistry, it has no internal locking: register macros before
// containers start dispatching through the registry, and synchronize
// externally if registration and use overlap across goroutines.
type MacroRegistry struct {
	macros map[string]Macro
}

// NewMacroRegistry returns an empty registry.
func NewMacroRegistry() *MacroRegistry {
	return &MacroRegistry{macros: map[string]Macro{}}
}

// defaultMacros is shared by every container whose type does not inject its
// own registry. Entries persist until process exit.
var defaultMacros = NewMacroRegistry()

// DefaultMacros returns the process-wide registry.
func DefaultMacros() *MacroRegistry { return defaultMacros }

// RegisterMacro registers fn under name at process scope, for every
// container of every type. Registering a name again overwrites it.
func RegisterMacro(name string, fn Macro) { defaultMacros.Register(name, fn) }

// Register adds fn under the normalized form of name; the last registration
// wins. Entries are never removed.
func (m *MacroRegistry) Register(name string, fn Macro) {
	m.macros[strcase.Pascal(name)] = fn
}

// Has reports whether name resolves to a macro.
func (m *MacroRegistry) Has(name string) bool {
	_, ok := m.macros[strcase.Pascal(name)]
	return ok
}

// Resolve returns the macro registered under name.
func (m *MacroRegistry) Resolve(name string) (Macro, bool) {
	fn, ok := m.macros[strcase.Pascal(name)]
	return fn, ok
}

// Invoke calls the macro registered under name with the container as its
// first argument. A miss is an UnknownMethodError naming the method as
// called and the container's type.
func (m *MacroRegistry) Invoke(c *Container, name string, args ...any) (any, error) {
	fn, ok := m.Resolve(name)
	if !ok {
		return nil, &UnknownMethodError{Method: name, Type: c.ty.Name()}
	}
	return fn(c, args...), nil
}
