package models

import "strings"

// LanguagePair represents an ordered source/target combination of language codes
//
// EN→DE and DE→EN are different pairs. Comparison ignores case.
type LanguagePair struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Equal reports whether both pairs have the same source and target, ignoring case
func (p LanguagePair) Equal(other LanguagePair) bool {
	return strings.EqualFold(p.Source, other.Source) && strings.EqualFold(p.Target, other.Target)
}

// String returns the pair in "SOURCE → TARGET" form
func (p LanguagePair) String() string {
	return p.Source + " → " + p.Target
}

// LanguagePairsResponse represents the usable language pairs and the (possibly expanded) language filter
type LanguagePairsResponse struct {
	LanguagePairs []LanguagePair `json:"languagePairs"`
	Languages     []string       `json:"languages,omitempty"`
}
