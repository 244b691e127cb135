package satchel

import (
	"encoding/json"
	"math"
	"net/mail"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/satchel-dev/satchel/codec"
)

// registerBuiltins loads the built-in rule set into r.
func registerBuiltins(r *RuleRegistry) {
	r.Register("numeric", func(v any, _ []string) bool { return isNumeric(v) })
	r.Register("int", func(v any, _ []string) bool { return isInt(v) })
	r.Register("notNull", func(v any, _ []string) bool { return !isNull(v) })
	r.Register("notEmpty", func(v any, _ []string) bool { return isNotEmpty(v) })
	r.Register("date", func(v any, _ []string) bool { return isDate(v) })
	r.Register("dateFormat", matchesDateFormat)
	r.Register("string", func(v any, _ []string) bool { _, ok := v.(string); return ok })
	r.Register("email", func(v any, _ []string) bool { return isEmail(v) })
	r.Register("in", looseIn)
	r.Register("greaterThan", compareRule(func(a, b float64) bool { return a > b }))
	r.Register("greaterThanEqual", compareRule(func(a, b float64) bool { return a >= b }))
	r.Register("lessThan", compareRule(func(a, b float64) bool { return a < b }))
	r.Register("lessThanEqual", compareRule(func(a, b float64) bool { return a <= b }))
	r.Register("uuid", func(v any, _ []string) bool { return isUUID(v) })
}

// isNull reports whether v is the absent/null marker. Typed nils count.
func isNull(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func isNotEmpty(v any) bool {
	if isNull(v) {
		return false
	}
	if s, ok := v.(string); ok && s == "" {
		return false
	}
	return true
}

// numericValue extracts a float64 from number kinds, json.Number and strings
// fully parseable as numbers.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	}
	return 0, false
}

func isNumeric(v any) bool {
	_, ok := numericValue(v)
	return ok
}

// isInt reports whether v is an integer, or a value whose round-trip through
// integer conversion equals itself ("5" and 5.0 pass, "05" and 5.5 do not).
func isInt(v any) bool {
	switch n := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float32:
		f := float64(n)
		return !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f)
	case float64:
		return !math.IsInf(n, 0) && !math.IsNaN(n) && n == math.Trunc(n)
	case json.Number:
		_, err := strconv.ParseInt(n.String(), 10, 64)
		return err == nil
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return err == nil && strconv.FormatInt(i, 10) == n
	}
	return false
}

func isDate(v any) bool {
	switch d := v.(type) {
	case time.Time:
		return true
	case *time.Time:
		return d != nil
	case string:
		_, err := codec.Parse(d)
		return err == nil
	}
	return false
}

// matchesDateFormat is strict: the value must parse under the format and
// re-format to exactly the original input, so "2021-10-01" fails "Y-n-j"
// even though the unpadded layout parses it.
func matchesDateFormat(v any, args []string) bool {
	if len(args) == 0 {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	t, err := codec.ParseFormat(args[0], s)
	if err != nil {
		return false
	}
	out, err := codec.Format(t, args[0])
	return err == nil && out == s
}

func isEmail(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// looseIn compares the value's textual representation against the argument
// strings, so 1, 1.0 and "1" all match the argument "1".
func looseIn(v any, args []string) bool {
	s := looseString(v)
	for _, a := range args {
		if a == s {
			return true
		}
	}
	return false
}

func looseString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case json.Number:
		// integers keep their exact text; fractional forms normalize so
		// json.Number("1.0") and float64(1) render alike
		if _, err := strconv.ParseInt(x.String(), 10, 64); err == nil {
			return x.String()
		}
		if f, err := x.Float64(); err == nil {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
		return x.String()
	}
	if f, ok := numericValue(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String()
	}
	return ""
}

// compareRule builds a numeric comparison predicate. Both operands must be
// numeric, otherwise the rule fails rather than erroring.
func compareRule(op func(a, b float64) bool) Predicate {
	return func(v any, args []string) bool {
		if len(args) == 0 {
			return false
		}
		a, ok := numericValue(v)
		if !ok {
			return false
		}
		b, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
		if err != nil {
			return false
		}
		return op(a, b)
	}
}

// isUUID accepts only the canonical 8-4-4-4-12 grouping; urn: and braced
// forms that uuid.Parse tolerates are rejected up front.
func isUUID(v any) bool {
	s, ok := v.(string)
	if !ok || len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
