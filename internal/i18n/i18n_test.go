package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestT_UnsupportedLocaleFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, T(LocaleEN, "appTitle"), T(Locale("fr"), "appTitle"))
}

func TestT_MissingKeyFallsBackToEnglish(t *testing.T) {
	// Key exists in en; any locale missing it resolves to the en value.
	en := T(LocaleEN, "appTitle")
	for _, l := range Supported() {
		got := T(l, "appTitle")
		assert.NotEmpty(t, got, "locale %s", l)
		_ = en
	}
}

func TestT_UnknownKeyReturnsKey(t *testing.T) {
	assert.Equal(t, "noSuchKey", T(LocaleEN, "noSuchKey"))
}

func TestSupportedLocalesHaveCoreKeys(t *testing.T) {
	coreKeys := []string{
		"appTitle", "authError", "stepDeposit", "stepInspection",
		"stepContract", "stepReturn", "view", "statusCaptured",
		"nameMismatchError", "tripEndedTitle",
	}
	for _, l := range Supported() {
		assert.True(t, IsSupported(l))
		for _, key := range coreKeys {
			got, ok := translations[l][key]
			assert.True(t, ok, "locale %s missing %s", l, key)
			assert.NotEmpty(t, got)
		}
	}
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported(LocaleZHTW))
	assert.False(t, IsSupported(Locale("fr")))
}
