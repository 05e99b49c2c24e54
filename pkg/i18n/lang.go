package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Match returns the supported language closest to preference, or the default
// language when nothing is close. preference may be an Accept-Language list
// ("de-AT,de;q=0.9,en;q=0.5") or a POSIX locale ("de_DE.UTF-8").
func (t *Translator) Match(preference string) string {
	tags, _, err := language.ParseAcceptLanguage(posixToBCP47(preference))
	if err != nil || len(tags) == 0 {
		return t.defaultLang
	}

	// The matcher falls back to its first entry, so the default goes first.
	candidates := []string{t.defaultLang}
	for _, lang := range t.SupportedLanguages() {
		if lang != t.defaultLang {
			candidates = append(candidates, lang)
		}
	}
	supported := make([]language.Tag, len(candidates))
	for i, lang := range candidates {
		supported[i] = language.Make(lang)
	}

	_, idx, conf := language.NewMatcher(supported).Match(tags...)
	if conf == language.No {
		return t.defaultLang
	}
	return candidates[idx]
}

// posixToBCP47 turns "de_DE.UTF-8@euro" into "de-DE". "C" and "POSIX" carry
// no language.
func posixToBCP47(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "C" || s == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(s, "_", "-")
}
