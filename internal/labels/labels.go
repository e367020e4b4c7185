// Package labels resolves the display strings a grid shows around its
// system messages, backed by a golang.org/x/text message catalog.
package labels

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
	"golang.org/x/text/unicode/norm"
)

// SystemMessage is the caption of the system-message box.
const SystemMessage = "SystemMessage"

var builtin = map[language.Tag]map[string]string{
	language.English:         {SystemMessage: "System message"},
	language.Norwegian:       {SystemMessage: "Systemmelding"},
	language.MustParse("nb"): {SystemMessage: "Systemmelding"},
	language.German:          {SystemMessage: "Systemmeldung"},
}

// Catalog looks up labels for one locale. Labels are literal text: nothing
// in a value is treated as a format verb or substitution.
type Catalog struct {
	tag       language.Tag
	builtin   *catalog.Builder
	overrides map[string]string
}

// New builds a catalog for locale. Overrides replace built-in labels of the
// matched language and are NFC-normalised. An empty or unsupported locale
// means English.
func New(locale string, overrides map[string]string) (*Catalog, error) {
	tag := language.English
	if locale != "" {
		parsed, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
		}
		tag = parsed
	}

	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for lang, entries := range builtin {
		for key, val := range entries {
			if err := b.SetString(lang, key, val); err != nil {
				return nil, fmt.Errorf("label %s/%s: %w", lang, key, err)
			}
		}
	}

	langs := b.Languages()
	matched := language.English
	if _, idx, conf := language.NewMatcher(langs).Match(tag); conf != language.No {
		matched = langs[idx]
	}

	c := &Catalog{tag: matched, builtin: b, overrides: make(map[string]string, len(overrides))}
	for key, val := range overrides {
		c.overrides[key] = norm.NFC.String(val)
	}
	return c, nil
}

// Label returns the localized string for key, or key itself when unknown.
func (c *Catalog) Label(key string) string {
	if c == nil {
		return key
	}
	if val, ok := c.overrides[key]; ok {
		return val
	}
	if val, ok := c.lookup(c.tag, key); ok {
		return val
	}
	if val, ok := c.lookup(language.English, key); ok {
		return val
	}
	return key
}

// lookup executes the built-in message without a printf pass.
func (c *Catalog) lookup(tag language.Tag, key string) (string, bool) {
	var r literal
	if err := c.builtin.Context(tag, &r).Execute(key); err != nil {
		return "", false
	}
	return r.String(), true
}

// literal collects rendered message text verbatim.
type literal struct{ strings.Builder }

func (l *literal) Render(s string) { l.WriteString(s) }

func (l *literal) Arg(int) interface{} { return nil }

// Language returns the matched catalog language.
func (c *Catalog) Language() language.Tag {
	return c.tag
}
