package satchel

import (
	"github.com/satchel-dev/satchel/i18n"
)

// validate runs the rule engine for every declared field against the
// incoming data, absent fields included so required violations surface.
// The walk is in sorted field order and stops at the first failing field;
// evaluation within a field stops at its first failing rule.
//
// Applicability per field:
//   - absent and not required: skipped
//   - absent and required: required violation
//   - present, nullable, null: skipped
//   - otherwise: rules evaluated against the value, null included
func validate(t *Type, data map[string]any) error {
	for _, name := range t.order {
		fr := t.fields[name]
		v, present := data[name]
		switch {
		case !present && !fr.required:
			continue
		case !present:
			return Violations{requiredViolation(name)}
		case fr.nullable && isNull(v):
			continue
		}
		if err := evalRules(t, name, fr.rules, v); err != nil {
			return err
		}
	}
	return nil
}

// evalRules evaluates a field's rule list in declaration order, skipping the
// reserved applicability rules. Named rules resolve through the type's
// registry at evaluation time; an unresolved name is a configuration error
// that aborts the whole call.
func evalRules(t *Type, field string, rules []Rule, v any) error {
	reg := t.ruleRegistry()
	for _, r := range rules {
		if r.reserved() {
			continue
		}
		if r.fn != nil {
			if !r.fn(v) {
				return Violations{ruleViolation(field, CustomRule, v, nil)}
			}
			continue
		}
		p, ok := reg.Resolve(r.name)
		if !ok {
			return &UnknownRuleError{Name: r.raw}
		}
		if !p(v, r.args) {
			return Violations{ruleViolation(field, r.raw, v, r.args)}
		}
	}
	return nil
}

func requiredViolation(field string) Violation {
	return Violation{
		Field:   field,
		Rule:    "required",
		Code:    CodeRequired,
		Message: i18n.T(CodeRequired, nil),
		Hint:    "required property missing",
		Params:  map[string]any{"rule": "required"},
	}
}

func ruleViolation(field, rule string, v any, args []string) Violation {
	params := map[string]any{"rule": rule}
	if len(args) > 0 {
		params["args"] = args
	}
	return Violation{
		Field:   field,
		Rule:    rule,
		Code:    CodeRuleFailed,
		Message: i18n.T(CodeRuleFailed, map[string]string{"rule": rule}),
		Value:   v,
		Params:  params,
	}
}
