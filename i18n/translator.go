package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dict = map[string]map[string]string{
	"en": {
		"invalid_type":    "invalid type, expected {expected}",
		"required":        "required property missing",
		"unknown_key":     "unknown key {key}",
		"too_small":       "must be at least {min}",
		"too_big":         "must be at most {max}",
		"too_short":       "must contain at least {min} item(s) or character(s)",
		"too_long":        "must contain at most {max} item(s) or character(s)",
		"pattern":         "does not match pattern {pattern}",
		"invalid_enum":    "must be one of {values}",
		"invalid_literal": "must equal {expected}",
		"invalid_format":  "invalid {format}",
		"invalid_union":   "no union member matched",
		"parse_error":     "parse error",
		"custom":          "invalid value",
	},
	"ja": {
		"invalid_type":    "型が不正です（期待: {expected}）",
		"required":        "必須プロパティが不足しています",
		"unknown_key":     "未知のキーです: {key}",
		"too_small":       "{min} 以上である必要があります",
		"too_big":         "{max} 以下である必要があります",
		"too_short":       "短すぎます",
		"too_long":        "長すぎます",
		"pattern":         "パターンに一致しません",
		"invalid_enum":    "許可されていない値です",
		"invalid_literal": "値が一致しません",
		"invalid_format":  "形式が不正です",
		"invalid_union":   "いずれの候補にも一致しません",
		"parse_error":     "解析エラー",
		"custom":          "不正な値です",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dict[t.lang][code]
	if !ok {
		return code
	}
	for k, v := range data {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return msg
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
