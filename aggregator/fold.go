package aggregator

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/wordagg/aggerrors"
)

// FoldMode selects how words are lowercased before deduplication.
type FoldMode string

const (
	// FoldLower applies the full Unicode lowercase mapping of the root
	// locale, including the Greek final sigma rule. This is the default.
	FoldLower FoldMode = "lower"
	// FoldSimple applies the per-rune simple lowercase mapping (strings.ToLower).
	FoldSimple FoldMode = "simple"
	// FoldASCII lowercases A-Z only and leaves every other byte untouched.
	FoldASCII FoldMode = "ascii"
	// FoldUnicode applies full Unicode case folding, so "Straße" and
	// "STRASSE" both become "strasse".
	FoldUnicode FoldMode = "fold"
)

// FoldModes returns the valid fold mode names.
func FoldModes() []string {
	return []string{string(FoldLower), string(FoldSimple), string(FoldASCII), string(FoldUnicode)}
}

// ParseFoldMode returns the FoldMode named by s. The empty string selects FoldLower.
func ParseFoldMode(s string) (FoldMode, error) {
	switch m := FoldMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return FoldLower, nil
	case FoldLower, FoldSimple, FoldASCII, FoldUnicode:
		return m, nil
	default:
		return "", &aggerrors.ConfigError{
			Option:  "fold",
			Value:   s,
			Message: "must be one of " + strings.Join(FoldModes(), ", "),
		}
	}
}

// Folder returns a function applying the mode to one word.
// The returned function is not safe for concurrent use.
func (m FoldMode) Folder() func(string) string {
	switch m {
	case FoldSimple:
		return strings.ToLower
	case FoldASCII:
		return asciiLower
	case FoldUnicode:
		c := cases.Fold()
		return c.String
	default:
		c := cases.Lower(language.Und)
		return c.String
	}
}

func asciiLower(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
