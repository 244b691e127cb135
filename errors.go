package satchel

import (
	"errors"
	"fmt"
	"strings"
)

// Violation codes (exported consts for IDE completion and type safety by convention)
const (
	CodeRequired   = "required"
	CodeRuleFailed = "rule_failed"
)

// CustomRule is the generic rule label recorded in violations produced by
// opaque predicate rules, which have no registry name of their own.
const CustomRule = "custom"

// Violation represents a single validation failure for one field.
type Violation struct {
	Field   string // Field name the rule was declared for.
	Rule    string // Rule name ("required", "email", ...) or CustomRule.
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
	Value   any    // Candidate value that failed, nil for required violations.
	// Params carries structured parameters (e.g., {"args": ["a","b"]})
	// for i18n and observability.
	Params map[string]any
}

// Violations is a collection of validation failures that implements error.
// Fill and Make stop at the first failing field, so a returned slice holds a
// single entry today; the type leaves room for an accumulating mode.
type Violations []Violation

// Error summarizes the first few violations.
func (vs Violations) Error() string {
	if len(vs) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(vs)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := vs[i]
		// e.g. required at /name
		fmt.Fprintf(b, "%s at /%s", it.Rule, it.Field)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendViolations appends violations to the destination, initializing the
// slice when needed.
func AppendViolations(dst Violations, more ...Violation) Violations {
	if dst == nil {
		dst = Violations{}
	}
	dst = append(dst, more...)
	return dst
}

// AsViolations extracts Violations from an error using errors.As internally.
func AsViolations(err error) (Violations, bool) {
	if err == nil {
		return nil, false
	}
	var vs Violations
	if errors.As(err, &vs) {
		return vs, true
	}
	return nil, false
}

// UnknownRuleError reports a rule name that does not resolve in the rule
// registry. It is a configuration error, not a per-record validation failure,
// and aborts the whole call that hit it.
type UnknownRuleError struct {
	Name string
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("satchel: unknown rule %q", e.Name)
}

// UnknownMethodError reports a dynamic call that names neither a declared
// accessor nor a registered macro.
type UnknownMethodError struct {
	Method string
	Type   string
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("satchel: unknown method %s on container type %s", e.Method, e.Type)
}
