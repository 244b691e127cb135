package satchel

import (
	"sort"

	"github.com/satchel-dev/satchel/internal/strcase"
)

// RuleRegistry resolves rule names to predicates. Lookup normalizes names to
// their Pascal form, so "date_format", "dateFormat" and "DateFormat" address
// the same entry.
//
// A registry has no internal locking. Register every rule before types that
// use it start validating; if registration must overlap with use across
// goroutines, synchronize externally. Resolving against a registry that is
// not being mutated is safe from any number of goroutines.
type RuleRegistry struct {
	rules map[string]Predicate
}

// NewRuleRegistry returns an empty registry.
func NewRuleRegistry() *RuleRegistry {
	return &RuleRegistry{rules: map[string]Predicate{}}
}

// BuiltinRules returns a fresh registry preloaded with the built-in rules.
func BuiltinRules() *RuleRegistry {
	r := NewRuleRegistry()
	registerBuiltins(r)
	return r
}

// defaultRules is shared by every container type that does not inject its
// own registry. It lives for the whole process.
var defaultRules = BuiltinRules()

// DefaultRules returns the process-wide registry.
func DefaultRules() *RuleRegistry { return defaultRules }

// RegisterRule adds a predicate to the process-wide registry.
func RegisterRule(name string, p Predicate) { defaultRules.Register(name, p) }

// Register adds a predicate under the normalized form of name. The last
// registration for a name wins; entries are never removed.
func (r *RuleRegistry) Register(name string, p Predicate) {
	r.rules[strcase.Pascal(name)] = p
}

// Has reports whether name resolves to a predicate.
func (r *RuleRegistry) Has(name string) bool {
	_, ok := r.rules[strcase.Pascal(name)]
	return ok
}

// Resolve returns the predicate registered under name.
func (r *RuleRegistry) Resolve(name string) (Predicate, bool) {
	p, ok := r.rules[strcase.Pascal(name)]
	return p, ok
}

// Names returns the registered rule names in sorted order.
func (r *RuleRegistry) Names() []string {
	out := make([]string, 0, len(r.rules))
	for name := range r.rules {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
