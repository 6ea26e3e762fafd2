package translation

import "strings"

// GlossaryKeySeparator joins the two languages of a glossary key
const GlossaryKeySeparator = "-"

// GlossaryKey returns the internal key of a source/target pair, e.g. "EN-DE".
// The key is order sensitive: GlossaryKey("en", "de") != GlossaryKey("de", "en").
func GlossaryKey(source, target string) string {
	return strings.ToUpper(source) + GlossaryKeySeparator + strings.ToUpper(target)
}

// ParseGlossaryKey splits a key produced by GlossaryKey on the first separator
func ParseGlossaryKey(key string) (source, target string, err error) {
	source, target, found := strings.Cut(key, GlossaryKeySeparator)
	if !found {
		return "", "", &MalformedKeyError{Key: key}
	}
	return source, target, nil
}

// PrimarySubtag returns the language part of a code, e.g. "EN" for "EN-US".
//
// The translate endpoint accepts regional variants while glossaries are keyed by plain languages.
func PrimarySubtag(code string) string {
	primary, _, _ := strings.Cut(code, "-")
	return primary
}
