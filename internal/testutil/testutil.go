// Package testutil provides shared fixtures for pipeline tests.
package testutil

import (
	"strings"
	"testing"

	"github.com/example/go-phonemize/internal/lexicon"
	"github.com/example/go-phonemize/internal/text"
)

// Entry is one lexicon line for fixture building: phonemes are space
// separated, preferences optional.
type Entry struct {
	Word      string
	Phonemes  string
	Preferred map[string]string
}

// Lexicon builds an in-memory lexicon from entries in order, so storage
// ranks match the slice order.
func Lexicon(tb testing.TB, entries []Entry) *lexicon.Memory {
	tb.Helper()

	m := lexicon.NewMemory(false)
	for _, e := range entries {
		m.Add(e.Word, strings.Fields(e.Phonemes), e.Preferred)
	}
	return m
}

// Tokenizer builds a tokenizer with the default English ruleset, failing
// the test on a malformed table.
func Tokenizer(tb testing.TB, opts text.Options) *text.Tokenizer {
	tb.Helper()

	tok, err := text.NewTokenizer(opts)
	if err != nil {
		tb.Fatalf("NewTokenizer: %v", err)
	}
	return tok
}

// WordTexts flattens a sentence's word-token surface strings.
func WordTexts(s *text.Sentence) []string {
	words := s.Words()
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Text
	}
	return out
}
