package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Translations wraps the go-i18n bundle with the message catalogue used for
// everything the program shows to a human: CLI usage, embed titles, the
// quiet-day message and the generation fallback.
type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations builds the bundle from the embedded English defaults plus
// any locales/active.*.toml overrides found under localesPath (defaults to
// "locales" when empty).
func NewTranslations(defaultLang string, localesPath string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	if localesPath == "" {
		localesPath = "locales"
	}
	files, err := filepath.Glob(filepath.Join(localesPath, "active.*.toml"))
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}
	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}

	return &Translations{
		bundle:   bundle,
		localize: i18n.NewLocalizer(bundle, defaultLang),
	}, nil
}

// SetLanguage switches the active locale; the language must be present in
// the bundle.
func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "Post a daily digest of your GitHub activity to Discord"

	[app_description]
	other = "Fetches your recent GitHub events, summarizes them with Gemini and publishes the digest to a Discord webhook. Meant to run once per day from cron or CI."

	[report_quiet_day]
	other = "Today was a day of planning and quiet reflection on the code."

	[report_fallback]
	one = "Working on interesting projects today! {{.Count}} activity on GitHub."
	other = "Working on interesting projects today! {{.Count}} activities on GitHub."

	[embed_title]
	other = "GitHub Daily"

	[embed_footer]
	other = "GitHub Daily Reporter"

	[embed_error_title]
	other = "GitHub Daily Reporter - Error"

	[embed_error_body]
	other = "Error occurred: {{.Error}}"
	`
