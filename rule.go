package satchel

import (
	"strings"

	"github.com/satchel-dev/satchel/internal/strcase"
)

// Reserved rule names in canonical form. They steer applicability only and
// are never executed as predicates.
const (
	ruleRequired = "Required"
	ruleNullable = "Nullable"
)

// Predicate is the signature named rules resolve to: it receives the
// candidate value and the rule's arguments and reports whether the value
// passes. Arguments arrive as strings; predicates own any further coercion.
type Predicate func(value any, args []string) bool

// Rule is one validation rule attached to a field: a named rule with ordered
// string arguments, parsed once from the "name" / "name:a1,a2" mini-language,
// or an opaque predicate supplied as a function.
type Rule struct {
	name string   // canonical Pascal form; "" for predicate rules
	raw  string   // name as declared, recorded in violations
	args []string // ordered, possibly empty
	fn   func(value any) bool
}

// ParseRule parses a mini-language spec into a Rule. The text before the
// first ':' is the rule name; the remainder splits on ',' into the ordered
// argument list.
func ParseRule(spec string) Rule {
	name := spec
	var args []string
	if i := strings.IndexByte(spec, ':'); i >= 0 {
		name = spec[:i]
		args = strings.Split(spec[i+1:], ",")
	}
	return Rule{name: strcase.Pascal(name), raw: name, args: args}
}

// ParseRules parses each spec in order.
func ParseRules(specs ...string) []Rule {
	out := make([]Rule, 0, len(specs))
	for _, s := range specs {
		out = append(out, ParseRule(s))
	}
	return out
}

// RuleFunc wraps an opaque predicate as a Rule. Violations produced by it
// carry the generic CustomRule label.
func RuleFunc(fn func(value any) bool) Rule {
	return Rule{raw: CustomRule, fn: fn}
}

// Name returns the canonical rule name, or CustomRule for predicate rules.
func (r Rule) Name() string {
	if r.fn != nil {
		return CustomRule
	}
	return r.name
}

// Args returns a copy of the ordered argument list.
func (r Rule) Args() []string {
	if len(r.args) == 0 {
		return nil
	}
	out := make([]string, len(r.args))
	copy(out, r.args)
	return out
}

// String renders the rule back into mini-language form.
func (r Rule) String() string {
	if r.fn != nil {
		return CustomRule
	}
	if len(r.args) == 0 {
		return r.raw
	}
	return r.raw + ":" + strings.Join(r.args, ",")
}

// reserved reports whether the rule is required or nullable.
func (r Rule) reserved() bool {
	return r.fn == nil && (r.name == ruleRequired || r.name == ruleNullable)
}
