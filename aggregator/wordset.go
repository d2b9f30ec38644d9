package aggregator

import "github.com/erraggy/wordagg/internal/maputil"

// WordSet accumulates words with exact-duplicate removal.
// The zero value is ready to use.
type WordSet struct {
	words map[string]struct{}
}

// NewWordSet returns a WordSet holding words.
func NewWordSet(words ...string) *WordSet {
	s := &WordSet{words: make(map[string]struct{}, len(words))}
	s.AddAll(words...)
	return s
}

// Add inserts word and reports whether it was not already present.
func (s *WordSet) Add(word string) bool {
	if s.words == nil {
		s.words = make(map[string]struct{})
	}
	if _, ok := s.words[word]; ok {
		return false
	}
	s.words[word] = struct{}{}
	return true
}

// AddAll inserts every word.
func (s *WordSet) AddAll(words ...string) {
	for _, w := range words {
		s.Add(w)
	}
}

// Contains reports whether word is in the set.
func (s *WordSet) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of distinct words.
func (s *WordSet) Len() int {
	return len(s.words)
}

// Sorted returns the words in ascending byte order, which for valid UTF-8
// is code point order.
func (s *WordSet) Sorted() []string {
	return maputil.SortedKeys(s.words)
}
