package translation

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	ignoreOpenTag  = "<ignore>"
	ignoreCloseTag = "</ignore>"
)

// ignoreTags matches open and close markers independently, so unbalanced or nested markers
// are stripped as well.
var ignoreTags = regexp.MustCompile(`(?i)(<ignore>|</ignore>)`)

// TermMasker wraps protected terms in ignore markers so the provider leaves them untranslated
type TermMasker struct {
	pattern *regexp.Regexp
}

// NewTermMasker compiles the ignored term patterns into a single case-insensitive alternation.
//
// Patterns use regular expression syntax. Blank patterns are skipped; with no patterns left
// the masker is a no-op.
func NewTermMasker(patterns []string) (*TermMasker, error) {
	terms := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if strings.TrimSpace(p) != "" {
			terms = append(terms, p)
		}
	}
	if len(terms) == 0 {
		return &TermMasker{}, nil
	}

	pattern, err := regexp.Compile(`(?i)(` + strings.Join(terms, "|") + `)`)
	if err != nil {
		return nil, fmt.Errorf("invalid ignored term pattern: %w", err)
	}
	return &TermMasker{pattern: pattern}, nil
}

// Mask wraps every match of the ignored terms in ignore markers.
// Matches are found left to right; the first alternative that matches wins.
func (m *TermMasker) Mask(text string) string {
	if m == nil || m.pattern == nil {
		return text
	}
	return m.pattern.ReplaceAllString(text, ignoreOpenTag+"${1}"+ignoreCloseTag)
}

// Unmask strips every ignore marker from text
func Unmask(text string) string {
	return ignoreTags.ReplaceAllString(text, "")
}
