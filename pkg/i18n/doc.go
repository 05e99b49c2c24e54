// Package i18n translates dot-separated message keys, such as the
// "validation.*" keys carried by validator.ValidationError, into localised
// text.
//
// Translations are nested maps keyed by language code and loaded from YAML or
// JSON files. Placeholders use the %{name} syntax and are filled from
// key/value argument pairs:
//
//	tr, err := i18n.Default(ctx)
//	if err != nil {
//		return err
//	}
//	msg := tr.T("de", "validation.ipv4", "field", "gateway")
//
// Lookup falls back to the default language when the requested language or
// key is missing, and finally to the key itself unless WithFallbackToKey(false)
// is set.
//
// Match negotiates a supported language from an Accept-Language list or a
// POSIX locale using golang.org/x/text/language.
//
// The built-in locales cover every validation key in English and German.
// Additional files can be merged with LoadFS.
package i18n
