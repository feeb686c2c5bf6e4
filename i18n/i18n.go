// Package i18n provides a compact translation layer for validation
// messages. Translations are keyed by the English message template, so the
// default messages double as translation keys:
//
//	translator := i18n.New(i18n.Translations{
//	    "fr": {
//	        "Invalid value": "Valeur invalide",
//	        "Enter a value between {{min}} and {{max}}": "Entrez une valeur entre {{min}} et {{max}}",
//	    },
//	})
//	set := validate.NewSet(colors, validate.WithSetTranslator(translator.For("fr")))
//
// Lookup falls back to the default language, then to the message itself, so
// an incomplete table never breaks validation output.
package i18n

import "sync"

// DefaultLanguage is used when no language is detected or configured.
const DefaultLanguage = "en"

// Translations maps language code to message template to localized
// template.
type Translations map[string]map[string]string

// Translator resolves message templates per language.
type Translator struct {
	mu           sync.RWMutex
	translations Translations
	defaultLang  string
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the fallback language. Defaults to "en".
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) { t.defaultLang = lang }
}

// New creates a Translator over the given tables.
func New(translations Translations, opts ...Option) *Translator {
	t := &Translator{
		translations: translations,
		defaultLang:  DefaultLanguage,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// T translates a message template into the given language, falling back to
// the default language and finally to the message itself.
func (t *Translator) T(lang, message string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if m, ok := t.translations[lang]; ok {
		if translated, ok := m[message]; ok {
			return translated
		}
	}
	if lang != t.defaultLang {
		if m, ok := t.translations[t.defaultLang]; ok {
			if translated, ok := m[message]; ok {
				return translated
			}
		}
	}
	return message
}

// Add merges translations for a language into the table.
func (t *Translator) Add(lang string, messages map[string]string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.translations == nil {
		t.translations = make(Translations)
	}
	if t.translations[lang] == nil {
		t.translations[lang] = make(map[string]string, len(messages))
	}
	for k, v := range messages {
		t.translations[lang][k] = v
	}
}

// SupportedLanguages lists the languages with a translation table.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	return langs
}

// For returns a translation hook bound to a language, in the shape consumed
// by the validators (validate.TranslateFunc).
func (t *Translator) For(lang string) func(string) string {
	return func(message string) string {
		return t.T(lang, message)
	}
}
