package classify

import (
	"strings"
	"unicode/utf8"

	"github.com/abadojack/whatlanggo"
)

const defaultLanguage = "en"

// Language returns the ISO 639-1 code of the dominant language in text. Inputs
// of ten characters or fewer carry too little signal and always come back "en",
// as does any unreliable or failed detection. The gate counts runes, not
// bytes, so short non-Latin input stays inside it.
func Language(text string) string {
	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) <= 10 {
		return defaultLanguage
	}
	info := whatlanggo.Detect(trimmed)
	if !info.IsReliable() {
		return defaultLanguage
	}
	code := info.Lang.Iso6391()
	if code == "" {
		return defaultLanguage
	}
	return code
}
