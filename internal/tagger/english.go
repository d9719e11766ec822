package tagger

import (
	"context"
	"strings"

	"github.com/example/go-phonemize/internal/text"
)

// English is a heuristic part-of-speech tagger. It runs two passes over a
// sentence: a baseline of closed-class lookup plus suffix heuristics, then
// contextual correction rules that use the neighboring tags.
type English struct {
	closed map[string]string
}

// NewEnglish returns the built-in English tagger.
func NewEnglish() *English {
	return &English{closed: englishClosedClass()}
}

func (e *English) Tag(_ context.Context, s *text.Sentence) error {
	words := s.Words()
	tags := make([]string, len(words))

	// Pass 1: baseline from closed-class words and suffix shape.
	for i, w := range words {
		tags[i] = e.baseline(w.Text)
	}

	// Pass 2: contextual correction.
	for i := range tags {
		prev := ""
		if i > 0 {
			prev = tags[i-1]
		}

		// Determiner or adjective before a verb-shaped word: it is a noun
		// ("the wound", "a fast run").
		if (prev == "det" || prev == "adj") && tags[i] == "verb" {
			tags[i] = "noun"
			continue
		}

		// Modal or pronoun before a noun-shaped word: it is a verb
		// ("can run", "he wound").
		if (prev == "modal" || prev == "pron") && tags[i] == "noun" {
			tags[i] = "verb"
			continue
		}
	}

	for i, w := range words {
		w.SetFeature(FeaturePOS, tags[i])
	}

	return nil
}

func (e *English) baseline(word string) string {
	lower := strings.ToLower(word)
	if tag, ok := e.closed[lower]; ok {
		return tag
	}

	switch {
	case strings.HasSuffix(lower, "ing"), strings.HasSuffix(lower, "ize"),
		strings.HasSuffix(lower, "ise"), strings.HasSuffix(lower, "ate"):
		return "verb"
	case strings.HasSuffix(lower, "ly"):
		return "adv"
	case strings.HasSuffix(lower, "ful"), strings.HasSuffix(lower, "ous"),
		strings.HasSuffix(lower, "ive"), strings.HasSuffix(lower, "able"),
		strings.HasSuffix(lower, "ible"):
		return "adj"
	case strings.HasSuffix(lower, "ness"), strings.HasSuffix(lower, "ment"),
		strings.HasSuffix(lower, "tion"), strings.HasSuffix(lower, "sion"),
		strings.HasSuffix(lower, "ity"), strings.HasSuffix(lower, "er"),
		strings.HasSuffix(lower, "ist"):
		return "noun"
	case strings.HasSuffix(lower, "ed"):
		return "verb"
	}

	return "noun"
}

func englishClosedClass() map[string]string {
	return map[string]string{
		"the": "det", "a": "det", "an": "det", "this": "det", "that": "det",
		"these": "det", "those": "det", "his": "det", "her": "det",
		"its": "det", "their": "det", "my": "det", "your": "det", "our": "det",

		"i": "pron", "you": "pron", "he": "pron", "she": "pron", "it": "pron",
		"we": "pron", "they": "pron", "me": "pron", "him": "pron",
		"us": "pron", "them": "pron", "who": "pron", "what": "pron",

		"is": "verb", "am": "verb", "are": "verb", "was": "verb",
		"were": "verb", "be": "verb", "been": "verb", "being": "verb",
		"have": "verb", "has": "verb", "had": "verb", "do": "verb",
		"does": "verb", "did": "verb", "go": "verb", "goes": "verb",
		"went": "verb", "say": "verb", "says": "verb", "said": "verb",

		"will": "modal", "would": "modal", "can": "modal", "could": "modal",
		"shall": "modal", "should": "modal", "may": "modal", "might": "modal",
		"must": "modal",

		"in": "prep", "on": "prep", "at": "prep", "by": "prep", "to": "prep",
		"of": "prep", "for": "prep", "with": "prep", "from": "prep",
		"about": "prep", "around": "prep", "over": "prep", "under": "prep",
		"into": "prep", "through": "prep", "after": "prep", "before": "prep",

		"and": "conj", "or": "conj", "but": "conj", "nor": "conj",
		"so": "conj", "yet": "conj", "because": "conj", "if": "conj",

		"not": "adv", "very": "adv", "too": "adv", "also": "adv",
		"here": "adv", "there": "adv", "now": "adv", "then": "adv",
	}
}
