// Package i18n holds the static two-locale string table of the UI and the
// helpers resolving keys, enum labels and dates against a locale.
package i18n

import (
	"strings"
	"time"

	"github.com/secmon-lab/riskmatrix/pkg/domain/types"
	"golang.org/x/text/language"
)

// T returns the string for key in lang. Unsupported languages resolve
// against the default language. An undeclared key returns the key itself so
// the gap is visible on the page.
func T(lang types.Language, key Key) string {
	table, ok := catalog[lang]
	if !ok {
		table = catalog[types.DefaultLanguage]
	}
	if s, ok := table[key]; ok {
		return s
	}
	return string(key)
}

// Has reports whether key is declared and translated in every language
func Has(key Key) bool {
	for _, lang := range types.AllLanguages() {
		if _, ok := catalog[lang][key]; !ok {
			return false
		}
	}
	return true
}

// Translator resolves keys against one language
type Translator func(key Key) string

// For returns the Translator of lang
func For(lang types.Language) Translator {
	return func(key Key) string {
		return T(lang, key)
	}
}

// LevelKey returns the label key of a risk level
func LevelKey(level types.RiskLevel) Key {
	switch level {
	case types.RiskLevelHigh:
		return KeyHigh
	case types.RiskLevelMedium:
		return KeyMedium
	default:
		return KeyLow
	}
}

// FrequencyKey returns the label key of a control frequency
func FrequencyKey(freq types.Frequency) Key {
	switch freq {
	case types.FrequencyDaily:
		return KeyDaily
	case types.FrequencyWeekly:
		return KeyWeekly
	case types.FrequencyQuarterly:
		return KeyQuarterly
	case types.FrequencyYearly:
		return KeyYearly
	default:
		return KeyMonthly
	}
}

// FormatDate renders a date the way each locale writes short dates
func FormatDate(lang types.Language, t time.Time) string {
	if lang == types.LanguageSpanish {
		return t.Format("2/1/2006")
	}
	return t.Format("1/2/2006")
}

var supportedTags = []language.Tag{
	language.English,
	language.Spanish,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Negotiate picks the supported language that best matches an
// Accept-Language header value, falling back to the default language.
func Negotiate(acceptLanguage string) types.Language {
	accept := strings.TrimSpace(acceptLanguage)
	if accept == "" {
		return types.DefaultLanguage
	}

	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return types.DefaultLanguage
	}

	_, idx, conf := tagMatcher.Match(tags...)
	if conf == language.No {
		return types.DefaultLanguage
	}

	base, _ := supportedTags[idx].Base()
	lang, err := types.ParseLanguage(base.String())
	if err != nil {
		return types.DefaultLanguage
	}
	return lang
}
