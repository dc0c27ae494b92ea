// Package i18n loads the embedded message bundles and hands out translators
// for UI labels and month names.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/idilsaglam/notepad/internal/timeline"
)

//go:embed locales/*.json
var localeFS embed.FS

// Message ids used across the UI.
const (
	MsgExplorer          = "Explorer"
	MsgSearchPlaceholder = "SearchPlaceholder"
	MsgGridView          = "GridView"
	MsgTimelineView      = "TimelineView"
	MsgProfile           = "Profile"
	MsgAbout             = "About"
	MsgLogin             = "Login"
	MsgLess              = "Less"
	MsgMore              = "More"
	MsgClose             = "Close"
	MsgNoCards           = "NoCards"
	MsgProfileStatus     = "ProfileStatus"
	MsgLoginStatus       = "LoginStatus"
	MsgAboutBody         = "AboutBody"
	MsgReloaded          = "Reloaded"
	MsgDayTooltip        = "DayTooltip"
	msgMonthHeading      = "MonthHeading"
)

const DefaultLanguage = "en"

// Translator resolves message ids for one language. A nil *Translator
// falls back to returning ids and English month names.
type Translator struct {
	lang string
	loc  *goi18n.Localizer
	log  *zap.Logger
}

var bundle, languages = loadBundle()

func loadBundle() (*goi18n.Bundle, []string) {
	b := goi18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		panic(fmt.Sprintf("embedded locales: %v", err))
	}
	var langs []string
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			continue
		}
		if _, err := b.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			panic(fmt.Sprintf("locale %s: %v", name, err))
		}
		langs = append(langs, strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json"))
	}
	sort.Strings(langs)
	return b, langs
}

// Languages lists the embedded locales.
func Languages() []string { return append([]string(nil), languages...) }

// New returns a translator for lang. Unknown languages are an error so a
// typo in the config does not silently render English.
func New(lang string, log *zap.Logger) (*Translator, error) {
	if lang == "" {
		lang = DefaultLanguage
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("locale %q: %w", lang, err)
	}
	base, _ := tag.Base()
	found := false
	for _, l := range languages {
		if l == base.String() {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("locale %q: not available (have %s)", lang, strings.Join(languages, ", "))
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Translator{lang: base.String(), loc: goi18n.NewLocalizer(bundle, tag.String()), log: log}, nil
}

func (t *Translator) Lang() string {
	if t == nil {
		return DefaultLanguage
	}
	return t.lang
}

func (t *Translator) localize(cfg *goi18n.LocalizeConfig) string {
	if t == nil {
		return cfg.MessageID
	}
	msg, err := t.loc.Localize(cfg)
	if err != nil {
		t.log.Debug("missing translation", zap.String("key", cfg.MessageID), zap.String("lang", t.lang), zap.Error(err))
		return cfg.MessageID
	}
	return msg
}

// T translates a plain message.
func (t *Translator) T(id string) string {
	return t.localize(&goi18n.LocalizeConfig{MessageID: id})
}

// Tf translates a templated message.
func (t *Translator) Tf(id string, data map[string]any) string {
	return t.localize(&goi18n.LocalizeConfig{MessageID: id, TemplateData: data})
}

// Plural translates a message with plural forms selected by count.
func (t *Translator) Plural(id string, count int, data map[string]any) string {
	if data == nil {
		data = map[string]any{}
	}
	data["Count"] = count
	return t.localize(&goi18n.LocalizeConfig{MessageID: id, TemplateData: data, PluralCount: count})
}

// MonthName is the full month name, e.g. "October".
func (t *Translator) MonthName(m time.Month) string {
	if t == nil {
		return m.String()
	}
	return t.T(fmt.Sprintf("Month%d", int(m)))
}

// ShortMonth is the abbreviated month used by heatmap headers.
func (t *Translator) ShortMonth(m time.Month) string {
	if t == nil {
		return m.String()[:3]
	}
	return t.T(fmt.Sprintf("MonthShort%d", int(m)))
}

// FormatMonth satisfies timeline.MonthFormatter.
func (t *Translator) FormatMonth(m time.Month, year int) string {
	if t == nil {
		return timeline.EnglishMonths.FormatMonth(m, year)
	}
	return t.Tf(msgMonthHeading, map[string]any{
		"Month": t.MonthName(m),
		"Year":  fmt.Sprintf("%04d", year),
	})
}

var _ timeline.MonthFormatter = (*Translator)(nil)
