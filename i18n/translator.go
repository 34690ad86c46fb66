package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Translator resolves message keys for one locale
type Translator struct {
	bundle  *Bundle
	locale  string
	printer *message.Printer
	base    *message.Printer
}

// NewTranslator binds bundle to locale; unknown locales use the base locale
func NewTranslator(bundle *Bundle, locale string) *Translator {
	if !bundle.HasLocale(locale) {
		locale = BaseLocale
	}
	cat := message.Catalog(bundle.builder)
	return &Translator{
		bundle:  bundle,
		locale:  locale,
		printer: message.NewPrinter(language.MustParse(locale), cat),
		base:    message.NewPrinter(language.MustParse(BaseLocale), cat),
	}
}

// Locale returns the resolved locale
func (t *Translator) Locale() string {
	return t.locale
}

// Text returns the message for key, falling back to the base locale and then to the key itself
func (t *Translator) Text(key string, args ...any) string {
	if _, ok := t.bundle.locales[t.locale][key]; ok {
		return t.printer.Sprintf(key, args...)
	}
	if _, ok := t.bundle.Message(BaseLocale, key); ok {
		return t.base.Sprintf(key, args...)
	}
	return key
}
