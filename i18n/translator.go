package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "label").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_descriptor":
			return "型記述子が不正です"
		case "ambiguous_union":
			return "ユニオンのラベルが一意ではありません"
		case "type_mismatch":
			return "値の型が記述子と一致しません"
		case "malformed_primitive":
			return "プリミティブ値の形が不正です"
		case "unknown_union_label":
			return "未知のユニオンラベルです"
		case "missing_field":
			return "必須フィールドが不足しています"
		case "unexpected_field":
			return "未知のフィールドです"
		case "unknown_enum_member":
			return "未知の列挙メンバーです"
		}
	default: // "en"
		switch code {
		case "invalid_descriptor":
			return "invalid descriptor"
		case "ambiguous_union":
			return "ambiguous union label"
		case "type_mismatch":
			return "type mismatch"
		case "malformed_primitive":
			return "malformed primitive"
		case "unknown_union_label":
			return "unknown union label"
		case "missing_field":
			return "required field missing"
		case "unexpected_field":
			return "unexpected field"
		case "unknown_enum_member":
			return "unknown enumeration member"
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
