// Package codec converts between textual date representations and time.Time.
// Formats use PHP-style date tokens ("Y-m-d H:i:s"), the notation rule
// arguments are written in; Layout translates them to Go reference layouts.
package codec

import (
	"fmt"
	"strings"
	"time"
)

// layoutTokens maps a format token to its Go reference-layout fragment.
// Unlisted letters that are not PHP date tokens pass through as literals.
var layoutTokens = map[byte]string{
	'Y': "2006", 'y': "06",
	'm': "01", 'n': "1",
	'd': "02", 'j': "2",
	'D': "Mon", 'l': "Monday",
	'M': "Jan", 'F': "January",
	'H': "15", 'h': "03", 'g': "3",
	'i': "04", 's': "05",
	'u': "000000", 'v': "000",
	'a': "pm", 'A': "PM",
	'T': "MST", 'O': "-0700", 'P': "-07:00",
	'c': "2006-01-02T15:04:05-07:00",
	'r': "Mon, 02 Jan 2006 15:04:05 -0700",
}

// unsupportedTokens are PHP date tokens with no Go layout equivalent.
// Treating them as literals would mis-validate, so Layout rejects them.
const unsupportedTokens = "NSwzWtLoBGeIZUxXp"

// parseLayouts are tried in order by Parse. Day-first dashed and US slashed
// forms come after ISO so unambiguous inputs resolve the same way every time.
var parseLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
	"01/02/2006",
	"02.01.2006",
	"15:04:05",
	"15:04",
}

// Layout translates a PHP-style date format into a Go reference layout.
// Backslash escapes the next character as a literal.
func Layout(format string) (string, error) {
	var b strings.Builder
	b.Grow(len(format) + 8)
	for i := 0; i < len(format); i++ {
		ch := format[i]
		if ch == '\\' && i+1 < len(format) {
			i++
			b.WriteByte(format[i])
			continue
		}
		if frag, ok := layoutTokens[ch]; ok {
			b.WriteString(frag)
			continue
		}
		if strings.IndexByte(unsupportedTokens, ch) >= 0 {
			return "", fmt.Errorf("codec: unsupported date format token %q", string(ch))
		}
		b.WriteByte(ch)
	}
	return b.String(), nil
}

// ParseFormat parses value according to the PHP-style format.
func ParseFormat(format, value string) (time.Time, error) {
	layout, err := Layout(format)
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(layout, value)
}

// Format renders t according to the PHP-style format.
func Format(t time.Time, format string) (string, error) {
	layout, err := Layout(format)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}

// Parse parses value against the common layouts, first match wins.
func Parse(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, fmt.Errorf("codec: cannot parse empty string as date")
	}
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("codec: cannot parse %q as date", value)
}
