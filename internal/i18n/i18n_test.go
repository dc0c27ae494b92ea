package i18n

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/notepad/internal/timeline"
)

func TestLanguages(t *testing.T) {
	assert.Equal(t, []string{"en", "fr"}, Languages())
}

func TestNew(t *testing.T) {
	tr, err := New("", nil)
	require.NoError(t, err)
	assert.Equal(t, "en", tr.Lang())

	tr, err = New("fr-FR", nil)
	require.NoError(t, err)
	assert.Equal(t, "fr", tr.Lang())

	_, err = New("de", nil)
	assert.Error(t, err)
	_, err = New("not a tag!", nil)
	assert.Error(t, err)
}

func TestFormatMonth(t *testing.T) {
	en, err := New("en", nil)
	require.NoError(t, err)
	fr, err := New("fr", nil)
	require.NoError(t, err)

	k := timeline.MonthKey{Month: time.October, Year: 2024}
	assert.Equal(t, "October 2024", k.Label(en))
	assert.Equal(t, k.Label(timeline.EnglishMonths), k.Label(en))
	assert.Equal(t, "octobre 2024", k.Label(fr))

	var nilTr *Translator
	assert.Equal(t, "October 2024", nilTr.FormatMonth(time.October, 2024))
}

func TestShortMonth(t *testing.T) {
	en, _ := New("en", nil)
	for m := time.January; m <= time.December; m++ {
		assert.Equal(t, m.String()[:3], en.ShortMonth(m))
	}
}

func TestPlural(t *testing.T) {
	en, _ := New("en", nil)
	assert.Equal(t, "Tue Oct 15 2024: 1 contribution",
		en.Plural(MsgDayTooltip, 1, map[string]any{"Day": "Tue Oct 15 2024"}))
	assert.Equal(t, "Tue Oct 15 2024: 2 contributions",
		en.Plural(MsgDayTooltip, 2, map[string]any{"Day": "Tue Oct 15 2024"}))
}

func TestMissingKeyFallsBackToID(t *testing.T) {
	en, _ := New("en", nil)
	assert.Equal(t, "NoSuchKey", en.T("NoSuchKey"))
}

// Every locale must carry every key the English bundle has.
func TestLocaleIntegrity(t *testing.T) {
	load := func(name string) map[string]any {
		b, err := localeFS.ReadFile("locales/" + name)
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(b, &m))
		return m
	}
	en := load("active.en.json")
	for _, lang := range Languages() {
		other := load("active." + lang + ".json")
		for k := range en {
			assert.Contains(t, other, k, "locale %s missing %s", lang, k)
		}
	}
}
