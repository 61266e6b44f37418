// Package locale provides the translated status strings of a list.
package locale

import (
	"embed"
	"fmt"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var messageFiles embed.FS

// Message IDs known to the translator.
const (
	MessageLoading    = "loading"
	MessageRetry      = "retry"
	MessageLoadMore   = "load_more"
	MessageLoadFailed = "load_failed"
	MessageEndOfList  = "end_of_list"
	MessageEmpty      = "empty"
	MessageItemCount  = "item_count"
)

// Translator looks up status strings for a preferred language. English is
// the fallback for missing languages and messages.
type Translator struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	tag       language.Tag
}

// New returns a translator for the first supported language in langs. The
// entries may be tags ("de-AT") or Accept-Language values.
func New(langs ...string) (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := messageFiles.ReadDir("messages")
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if _, err := bundle.LoadMessageFileFS(messageFiles, path.Join("messages", entry.Name())); err != nil {
			return nil, fmt.Errorf("locale: %s: %w", entry.Name(), err)
		}
	}

	t := &Translator{bundle: bundle}
	t.setLanguages(langs...)
	return t, nil
}

// English returns the English translator. It panics only if the embedded
// message files are broken.
func English() *Translator {
	t, err := New("en")
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Translator) setLanguages(langs ...string) {
	matcher := language.NewMatcher(t.bundle.LanguageTags())
	t.tag = language.English
	for _, lang := range langs {
		desired, _, err := language.ParseAcceptLanguage(lang)
		if err != nil || len(desired) == 0 {
			continue
		}
		tag, _, confidence := matcher.Match(desired...)
		if confidence == language.No {
			continue
		}
		base, _ := tag.Base()
		t.tag = language.Make(base.String())
		break
	}
	t.localizer = i18n.NewLocalizer(t.bundle, t.tag.String(), language.English.String())
}

// SetLanguage switches the preferred language.
func (t *Translator) SetLanguage(langs ...string) {
	t.setLanguages(langs...)
}

// Language returns the matched language.
func (t *Translator) Language() language.Tag {
	return t.tag
}

// AddMessages merges messages for lang into the bundle. Existing IDs are
// replaced, which lets an application reword the defaults.
func (t *Translator) AddMessages(lang string, messages ...*i18n.Message) error {
	tag, err := language.Parse(lang)
	if err != nil {
		return fmt.Errorf("locale: %w", err)
	}
	if err := t.bundle.AddMessages(tag, messages...); err != nil {
		return err
	}
	t.setLanguages(t.tag.String())
	return nil
}

// Localize returns the message id, or id itself when it is unknown.
func (t *Translator) Localize(id string, data map[string]any, count any) string {
	cfg := &i18n.LocalizeConfig{MessageID: id, TemplateData: data}
	if count != nil {
		cfg.PluralCount = count
	}
	msg, err := t.localizer.Localize(cfg)
	if err != nil {
		return id
	}
	return msg
}

func (t *Translator) Loading() string {
	return t.Localize(MessageLoading, nil, nil)
}

func (t *Translator) Retry() string {
	return t.Localize(MessageRetry, nil, nil)
}

func (t *Translator) LoadMore() string {
	return t.Localize(MessageLoadMore, nil, nil)
}

func (t *Translator) Empty() string {
	return t.Localize(MessageEmpty, nil, nil)
}

// LoadFailed describes a failed page.
func (t *Translator) LoadFailed(page int, err error) string {
	return t.Localize(MessageLoadFailed, map[string]any{"Page": page, "Error": err.Error()}, nil)
}

// EndOfList is shown once all pages are loaded.
func (t *Translator) EndOfList(count int) string {
	return t.Localize(MessageEndOfList, map[string]any{"Count": count}, count)
}

// ItemCount formats count with the plural rules of the language.
func (t *Translator) ItemCount(count int) string {
	return t.Localize(MessageItemCount, map[string]any{"Count": count}, count)
}
