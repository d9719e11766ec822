// Package lexicon provides the word → pronunciation-candidate store.
//
// A lexicon key maps to an ordered list of candidates. Storage rank is an
// explicit field on each candidate: downstream disambiguation uses it as
// the final tie-break, so it must survive any reordering a future storage
// engine might introduce.
package lexicon

import (
	"strings"
)

// Candidate is one possible phonetic rendering of a word.
type Candidate struct {
	// Phonemes is the ordered phoneme sequence; order is phonetically
	// significant and preserved verbatim from storage.
	Phonemes []string

	// Preferred maps feature names to required values. An empty map means
	// no preference: always eligible.
	Preferred map[string]string

	// Rank is the 0-based original storage position among this word's
	// candidates.
	Rank int
}

// Resolver looks up the candidate pronunciations for a word.
// An empty result is not an error; it signals fallback prediction.
// Implementations must be safe for concurrent reads and must return
// candidates in stored rank order, unmodified.
type Resolver interface {
	Resolve(word string) []Candidate
}

// Memory is an in-process Resolver backed by a map. Keys fold case unless
// case sensitivity is requested. Writes (Add) must complete before
// concurrent reads begin.
type Memory struct {
	caseSensitive bool
	entries       map[string][]Candidate
}

// NewMemory returns an empty in-memory lexicon. With caseSensitive false
// (the default policy), keys are folded to lower case on both store and
// lookup while stored phonemes are returned untouched.
func NewMemory(caseSensitive bool) *Memory {
	return &Memory{
		caseSensitive: caseSensitive,
		entries:       make(map[string][]Candidate),
	}
}

// Add appends one candidate for word, assigning the next storage rank.
func (m *Memory) Add(word string, phonemes []string, preferred map[string]string) {
	key := m.key(word)
	cand := Candidate{
		Phonemes:  append([]string(nil), phonemes...),
		Preferred: make(map[string]string, len(preferred)),
		Rank:      len(m.entries[key]),
	}
	for k, v := range preferred {
		cand.Preferred[k] = v
	}
	m.entries[key] = append(m.entries[key], cand)
}

// Resolve returns the stored candidates for word in rank order, or nil
// when the word is unknown.
func (m *Memory) Resolve(word string) []Candidate {
	return m.entries[m.key(word)]
}

// Len reports the number of distinct keys.
func (m *Memory) Len() int {
	return len(m.entries)
}

func (m *Memory) key(word string) string {
	if m.caseSensitive {
		return word
	}
	return strings.ToLower(word)
}
