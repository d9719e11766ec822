// Package text turns raw input text into sentences of annotated tokens.
//
// The tokenizer normalizes whitespace and Unicode form, expands
// abbreviations and numbers into spoken words, marks sentence and clause
// boundaries, and parses the word_N explicit-pronunciation convention.
// Tokens produced here flow through the rest of the pipeline unchanged in
// count and order; later stages only enrich them.
package text

// BreakType classifies the prosodic boundary carried by a punctuation
// token or terminating a sentence.
type BreakType int

const (
	BreakNone BreakType = iota
	BreakMinor
	BreakMajor
)

func (b BreakType) String() string {
	switch b {
	case BreakMinor:
		return "minor"
	case BreakMajor:
		return "major"
	default:
		return "none"
	}
}

// Token is one normalized unit of text: a word or a retained punctuation
// marker. Tokens are created by the Tokenizer and enriched in place by the
// feature tagger and the phonemizer; they are never shared across sentences.
type Token struct {
	// Text is the normalized surface string, cleared of any word_N suffix.
	Text string

	// Index is the 0-based position within the sentence, stable across
	// all pipeline stages.
	Index int

	// Features holds linguistic annotations (e.g. "pos") written by the
	// feature tagger. Nil until the first write.
	Features map[string]string

	// IsWord is false for retained punctuation tokens, which bypass
	// phonemization but keep their prosodic break marker.
	IsWord bool

	// Break is the prosodic marker for non-word tokens; BreakNone for words.
	Break BreakType

	// PronIndex is the 1-based explicit pronunciation index parsed from a
	// word_N suffix, or 0 when the input carried no explicit choice.
	PronIndex int

	// Phonemes is the resolved pronunciation, attached after
	// disambiguation or fallback prediction. An empty non-nil slice marks
	// a word whose prediction failed.
	Phonemes []string

	// Guessed is true when Phonemes came from the fallback predictor
	// rather than the lexicon.
	Guessed bool

	// Failed is true when the fallback predictor errored or timed out and
	// the word degraded to an empty pronunciation.
	Failed bool
}

// SetFeature records one feature value, allocating the map on first use.
func (t *Token) SetFeature(name, value string) {
	if t.Features == nil {
		t.Features = make(map[string]string)
	}
	t.Features[name] = value
}

// Feature returns the named feature value, or "" when unset.
func (t *Token) Feature(name string) string {
	return t.Features[name]
}

// Sentence is an ordered run of tokens plus its terminal boundary marker.
// Token indexes are contiguous starting at 0.
type Sentence struct {
	Tokens []*Token
	Break  BreakType

	// Raw is the slice of cleaned input text this sentence came from,
	// kept for diagnostics and logging.
	Raw string
}

// Words returns the word tokens in order, skipping punctuation markers.
func (s *Sentence) Words() []*Token {
	out := make([]*Token, 0, len(s.Tokens))
	for _, t := range s.Tokens {
		if t.IsWord {
			out = append(out, t)
		}
	}
	return out
}
