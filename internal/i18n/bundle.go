// Package i18n provides translation bundles for label resolution.
// A Bundle holds one message catalog per locale; a Locale satisfies the
// filters.Translator capability and carries the locale's short date layout.
package i18n

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"sigs.k8s.io/yaml"
)

// DefaultDateLayout is used when a locale file declares no layout.
// It matches the en-US short date format.
const DefaultDateLayout = "1/2/2006"

// Locale holds the messages and formatting conventions of one language tag.
// Locales are immutable after construction and safe for concurrent use.
type Locale struct {
	tag        language.Tag
	dateLayout string
	messages   map[string]string
}

// NewLocale creates a locale from a BCP 47 tag string.
func NewLocale(tag, dateLayout string, messages map[string]string) (*Locale, error) {
	parsed, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("parse locale tag %q: %w", tag, err)
	}
	if dateLayout == "" {
		dateLayout = DefaultDateLayout
	}
	if messages == nil {
		messages = map[string]string{}
	}
	return &Locale{tag: parsed, dateLayout: dateLayout, messages: messages}, nil
}

// Tag returns the locale's language tag.
func (l *Locale) Tag() language.Tag { return l.tag }

// DateLayout returns the locale's short date layout.
func (l *Locale) DateLayout() string { return l.dateLayout }

// HasKey reports whether the catalog defines key.
func (l *Locale) HasKey(key string) bool {
	_, ok := l.messages[key]
	return ok
}

// Translate renders the message for key, substituting {param} placeholders
// from params. An undefined key echoes the key itself so a missing
// translation degrades visibly instead of failing.
func (l *Locale) Translate(key string, params map[string]string) string {
	msg, ok := l.messages[key]
	if !ok {
		return key
	}
	for name, value := range params {
		msg = strings.ReplaceAll(msg, "{"+name+"}", value)
	}
	return msg
}

// Bundle is a set of locales with Accept-Language negotiation. The first
// locale added is the fallback. Bundles are loaded once at startup and
// read-only afterwards.
type Bundle struct {
	locales map[language.Tag]*Locale
	tags    []language.Tag
	matcher language.Matcher
}

// NewBundle creates an empty bundle.
func NewBundle() *Bundle {
	return &Bundle{locales: make(map[language.Tag]*Locale)}
}

// Add registers a locale. Re-adding a tag replaces its messages.
func (b *Bundle) Add(loc *Locale) {
	if _, exists := b.locales[loc.tag]; !exists {
		b.tags = append(b.tags, loc.tag)
	}
	b.locales[loc.tag] = loc
	b.matcher = language.NewMatcher(b.tags)
}

// Default returns the fallback locale, or nil for an empty bundle.
func (b *Bundle) Default() *Locale {
	if len(b.tags) == 0 {
		return nil
	}
	return b.locales[b.tags[0]]
}

// Match negotiates the best locale for the given preferences
// (Accept-Language values). Falls back to the default locale.
func (b *Bundle) Match(preferred ...string) *Locale {
	if len(b.tags) == 0 {
		return nil
	}
	// The matched tag can carry region and extensions from the preferred
	// side, so it is not usable as a map key; the index always points into
	// the supported list.
	_, idx := language.MatchStrings(b.matcher, preferred...)
	return b.locales[b.tags[idx]]
}

// localeFile is the YAML shape of a locale catalog.
type localeFile struct {
	Locale     string            `json:"locale"`
	DateLayout string            `json:"dateLayout,omitempty"`
	Messages   map[string]string `json:"messages"`
}

// LoadDir loads every *.yaml / *.yml file in dir as a locale catalog.
func (b *Bundle) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read locale dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		if err := b.LoadFile(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile loads a single locale catalog file.
func (b *Bundle) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read locale file %s: %w", path, err)
	}

	var file localeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse locale file %s: %w", path, err)
	}
	if file.Locale == "" {
		return fmt.Errorf("locale file %s: missing locale tag", path)
	}

	loc, err := NewLocale(file.Locale, file.DateLayout, file.Messages)
	if err != nil {
		return fmt.Errorf("locale file %s: %w", path, err)
	}
	b.Add(loc)
	return nil
}
