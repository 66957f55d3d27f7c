package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "name").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var msg string
	switch t.lang {
	case "ja":
		switch code {
		case "parse_failure":
			msg = "属性を解析できません: キー/値ペアのリストが必要です"
		case "invalid_item_shape":
			msg = "対象が不正です: 構造体が必要です"
		case "missing_attribute":
			msg = "属性 '{name}' は必須です"
		case "missing_argument":
			msg = "引数 '{name}' は必須です"
		case "invalid_type":
			msg = "型が不正です: {expected} が必要です"
		case "duplicate_argument":
			msg = "引数が重複しています"
		case "unrecognized_argument":
			msg = "未知の引数です"
		}
	default: // "en"
		switch code {
		case "parse_failure":
			msg = "failed to parse attribute: expected a list of key/value pairs"
		case "invalid_item_shape":
			msg = "invalid item: expected a struct"
		case "missing_attribute":
			msg = "attribute '{name}' is required"
		case "missing_argument":
			msg = "argument '{name}' is required"
		case "invalid_type":
			msg = "invalid type: expected {expected}"
		case "duplicate_argument":
			msg = "duplicate argument"
		case "unrecognized_argument":
			msg = "unrecognized argument"
		}
	}
	if msg == "" {
		return code
	}
	return interpolate(msg, data)
}

// interpolate substitutes {key} placeholders from data; placeholders
// with no data entry are left verbatim.
func interpolate(msg string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	out := msg
	for k, v := range data {
		out = strings.ReplaceAll(out, "{"+k+"}", v)
	}
	return out
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
