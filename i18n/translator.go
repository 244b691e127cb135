package i18n

// Translator retrieves localized messages for Violation codes.
// data provides optional metadata to embed in the message (for example,
// "rule" or "field").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "required":
			return "必須プロパティが不足しています"
		case "rule_failed":
			if r := data["rule"]; r != "" {
				return "値がルール " + r + " に違反しています"
			}
			return "値がルールに違反しています"
		}
	default: // "en"
		switch code {
		case "required":
			return "required property missing"
		case "rule_failed":
			if r := data["rule"]; r != "" {
				return "value violates rule " + r
			}
			return "value violates rule"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
