package i18n

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strings"
)

// DefaultLanguage is used when no other default is configured.
const DefaultLanguage = "en"

//go:embed locales/*.yaml
var builtinLocales embed.FS

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when the requested one lacks a key.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey controls whether T returns the key when nothing matches.
// Default is true.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) { t.fallbackToKey = fallback }
}

// WithLogger logs missing translations at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// Translator resolves keys against immutable translations; safe for concurrent use.
type Translator struct {
	translations  map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
	logger        *slog.Logger
}

// NewTranslator builds a Translator from already parsed translations.
func NewTranslator(translations map[string]map[string]any, opts ...Option) (*Translator, error) {
	if len(translations) == 0 {
		return nil, ErrNoTranslations
	}
	for lang, m := range translations {
		if lang == "" || m == nil {
			return nil, fmt.Errorf("%w: empty language %q", ErrInvalidStructure, lang)
		}
	}

	t := &Translator{
		translations:  translations,
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Default returns a Translator over the built-in locales.
func Default(ctx context.Context, opts ...Option) (*Translator, error) {
	translations, err := LoadFS(ctx, builtinLocales, "locales")
	if err != nil {
		return nil, err
	}
	return NewTranslator(translations, opts...)
}

// LoadFS parses every JSON and YAML file in dir and merges them per language.
// Later files override earlier keys at the top level of a language.
func LoadFS(ctx context.Context, fsys fs.FS, dir string) (map[string]map[string]any, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	result := make(map[string]map[string]any)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		parser := NewParserForFile(entry.Name())
		if parser == nil {
			continue
		}
		content, err := fs.ReadFile(fsys, dir+"/"+entry.Name())
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		parsed, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		for lang, m := range parsed {
			if result[lang] == nil {
				result[lang] = make(map[string]any, len(m))
			}
			maps.Copy(result[lang], m)
		}
	}

	if len(result) == 0 {
		return nil, ErrNoTranslations
	}
	return result, nil
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	return slices.Sorted(maps.Keys(t.translations))
}

// HasTranslation reports whether lang itself defines key.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key for lang, substituting %{name} placeholders from the
// name/value pairs in args. An odd trailing argument is ignored.
//
//	tr.T("en", "validation.credit_card_brand", "field", "card", "brands", "Visa")
func (t *Translator) T(lang, key string, args ...string) string {
	tmpl, ok := t.lookup(lang, key)
	if !ok && lang != t.defaultLang {
		tmpl, ok = t.lookup(t.defaultLang, key)
	}
	if !ok {
		t.logger.Debug("translation not found", slog.String("lang", lang), slog.String("key", key))
		if !t.fallbackToKey {
			return ""
		}
		tmpl = key
	}
	return substitute(tmpl, args)
}

// lookup walks the dot-separated key through nested maps.
func (t *Translator) lookup(lang, key string) (string, bool) {
	current, ok := t.translations[lang]
	if !ok {
		return "", false
	}

	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := val.(string)
			return s, ok
		}
		if current, ok = val.(map[string]any); !ok {
			return "", false
		}
	}
	return "", false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders; unknown names are left as-is.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
