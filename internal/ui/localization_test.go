package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/yt-transcript-qa/internal/viewer"
)

func TestLocalization_DefaultsToEnglish(t *testing.T) {
	l := NewLocalization()

	assert.Equal(t, "en", l.GetCurrentLanguage())
	assert.Equal(t, "Extract Transcript", l.GetText(KeyExtract))
	assert.Equal(t, "Extracting...", l.GetText(KeyExtracting))
	assert.Equal(t, "Getting AI answer...", l.GetText(KeyThinkingOverlay))
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	assert.Equal(t, "ru", l.GetCurrentLanguage())
	assert.Equal(t, "Настройки", l.GetText(KeySettings))

	// Unknown languages are ignored
	l.SetLanguage("xx")
	assert.Equal(t, "ru", l.GetCurrentLanguage())

	l.SetLanguage("system")
	assert.Equal(t, "en", l.GetCurrentLanguage())
}

func TestLocalization_FallsBackToKey(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("pt")

	assert.Equal(t, "no_such_key", l.GetText("no_such_key"))
}

func TestLocalization_CoversControllerMessages(t *testing.T) {
	l := NewLocalization()

	for lang := range l.GetAvailableLanguages() {
		texts := l.texts[lang]
		for _, key := range viewer.MessageKeys() {
			assert.NotEmpty(t, texts[key], "language %s misses %s", lang, key)
		}
	}

	// English must match the controller defaults exactly
	for _, key := range viewer.MessageKeys() {
		assert.Equal(t, viewer.DefaultText(key), l.texts["en"][key], key)
	}
}

func TestLocalization_LanguagesHaveSameKeys(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for lang, texts := range l.texts {
		assert.Len(t, texts, len(english), "language %s", lang)
		for key := range english {
			_, ok := texts[key]
			assert.True(t, ok, "language %s misses %s", lang, key)
		}
	}
}
