// Package i18n provides static display-string lookup for the pickup flow.
// Lookup falls back to English when a locale or key is missing; there is no
// interpolation or plural handling.
package i18n

// Locale is a supported display language code.
type Locale string

const (
	LocaleEN   Locale = "en"
	LocaleZHTW Locale = "zh-TW"
	LocaleJA   Locale = "ja"
	LocaleKO   Locale = "ko"
	LocaleTH   Locale = "th"
)

// Supported returns the locales with a translation table, in menu order.
func Supported() []Locale {
	return []Locale{LocaleEN, LocaleZHTW, LocaleJA, LocaleKO, LocaleTH}
}

// IsSupported reports whether l has its own translation table.
func IsSupported(l Locale) bool {
	_, ok := translations[l]
	return ok
}

// T resolves key for the given locale. Missing locales and missing keys
// fall back to the English table; an unknown key returns the key itself so
// a gap is visible rather than blank.
func T(l Locale, key string) string {
	if table, ok := translations[l]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := translations[LocaleEN][key]; ok {
		return s
	}
	return key
}
