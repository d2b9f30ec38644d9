package aggregator

import "unicode/utf8"

// Filter drops words from the final list. The zero value keeps everything.
type Filter struct {
	// ASCIIOnly keeps only words made of 7-bit ASCII bytes.
	ASCIIOnly bool
	// Length keeps only words with exactly this many runes; 0 disables the check.
	Length int
}

// Active reports whether the filter can drop any word.
func (f Filter) Active() bool {
	return f.ASCIIOnly || f.Length > 0
}

// Keep reports whether word passes the filter.
func (f Filter) Keep(word string) bool {
	if f.ASCIIOnly && !isASCII(word) {
		return false
	}
	if f.Length > 0 && utf8.RuneCountInString(word) != f.Length {
		return false
	}
	return true
}

// Apply returns the words that pass the filter, preserving order.
func (f Filter) Apply(words []string) []string {
	if !f.Active() {
		return words
	}
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if f.Keep(w) {
			kept = append(kept, w)
		}
	}
	return kept
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
