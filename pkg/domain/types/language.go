package types

import "github.com/m-mizutani/goerr/v2"

// Language is a display locale for static UI text
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageSpanish Language = "es"

	DefaultLanguage = LanguageEnglish
)

// AllLanguages returns the supported languages
func AllLanguages() []Language {
	return []Language{LanguageEnglish, LanguageSpanish}
}

// IsValid checks if the language is supported
func (l Language) IsValid() bool {
	switch l {
	case LanguageEnglish, LanguageSpanish:
		return true
	default:
		return false
	}
}

// Toggle returns the other supported language
func (l Language) Toggle() Language {
	if l == LanguageEnglish {
		return LanguageSpanish
	}
	return LanguageEnglish
}

func (l Language) String() string {
	return string(l)
}

// ParseLanguage parses a string into a Language
func ParseLanguage(s string) (Language, error) {
	lang := Language(s)
	if !lang.IsValid() {
		return "", goerr.New("unsupported language", goerr.V("language", s))
	}
	return lang, nil
}
