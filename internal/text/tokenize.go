package text

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// CasePolicy controls surface-text casing applied after number expansion
// and before feature tagging.
type CasePolicy int

const (
	CaseKeep CasePolicy = iota
	CaseLower
	CaseUpper
)

// Options configures a Tokenizer. The zero value plus withDefaults gives
// the built-in English ruleset.
type Options struct {
	// Abbreviations maps surface forms ("Dr.") to their spoken expansion
	// ("Doctor"). Expansions may be multi-word and may chain through other
	// keys, but never cyclically.
	Abbreviations map[string]string

	// Casing is applied to every word token's text.
	Casing CasePolicy

	// Currencies maps currency symbols to spoken unit names. Nil selects
	// the built-in table; an empty map disables currency expansion.
	Currencies map[string]CurrencyNames

	// NumberLang is the number-to-words language code ("en" when empty).
	NumberLang string

	// MinorBreaks and MajorBreaks list the punctuation runes that mark
	// clause and sentence boundaries. Empty strings select the defaults
	// ",;:" and ".!?".
	MinorBreaks string
	MajorBreaks string
}

func (o Options) withDefaults() Options {
	if o.Currencies == nil {
		o.Currencies = DefaultCurrencies()
	}
	if o.MinorBreaks == "" {
		o.MinorBreaks = ",;:"
	}
	if o.MajorBreaks == "" {
		o.MajorBreaks = ".!?"
	}
	return o
}

// Tokenizer segments cleaned text into sentences of tokens.
// It is stateless after construction and safe for concurrent use.
type Tokenizer struct {
	opts Options
}

// NewTokenizer validates the abbreviation table and returns a Tokenizer.
// A malformed table (self-referential expansion) is the only error case.
func NewTokenizer(opts Options) (*Tokenizer, error) {
	if err := validateAbbreviations(opts.Abbreviations); err != nil {
		return nil, err
	}
	return &Tokenizer{opts: opts.withDefaults()}, nil
}

// pronIndexPattern matches the word_N explicit-pronunciation convention.
var pronIndexPattern = regexp.MustCompile(`^(.+)_([0-9]+)$`)

// Tokenize splits input into sentences of annotated tokens. Malformed
// input never fails: unparseable numeric-looking chunks degrade to literal
// word tokens and unrecognized punctuation is dropped.
func (t *Tokenizer) Tokenize(input string) []*Sentence {
	cleaned := Clean(input)
	if cleaned == "" {
		return nil
	}

	b := &sentenceBuilder{}
	for _, chunk := range strings.Fields(cleaned) {
		t.consumeChunk(b, chunk)
	}
	b.finish(BreakNone)

	return b.sentences
}

// consumeChunk turns one whitespace-delimited chunk into word and break
// tokens, closing the current sentence on an unquoted major break.
func (t *Tokenizer) consumeChunk(b *sentenceBuilder, chunk string) {
	b.raw(chunk)

	// Whole-chunk abbreviation match wins before any punctuation peeling,
	// so "Dr." expands instead of ending the sentence.
	if words, ok := t.expandAbbreviation(chunk); ok {
		t.emitWords(b, words)
		return
	}

	core, leading, trailing := t.peel(chunk)

	for _, r := range leading {
		t.emitPunct(b, r)
	}

	if core != "" {
		if words, ok := t.expandAbbreviation(core); ok {
			t.emitWords(b, words)
		} else if words, rest, ok := t.expandPeeledAbbreviation(core, trailing); ok {
			t.emitWords(b, words)
			trailing = rest
		} else if words, ok := t.expandDate(core); ok {
			t.emitWords(b, words)
		} else if words, ok := t.expandNumber(core); ok {
			t.emitWords(b, words)
		} else if hasAlnum(core) {
			t.emitWord(b, core)
		} else {
			// Pure symbol runs: keep recognized breaks, drop the rest.
			for _, r := range core {
				if t.isBreak(r) {
					t.emitBreak(b, r)
				}
			}
		}
	}

	for _, r := range trailing {
		t.emitPunct(b, r)
	}
}

// expandPeeledAbbreviation retries the abbreviation lookup for a core
// whose trailing punctuation was stripped by peel: keys like "Dr." embed
// a period that peel cannot distinguish from a sentence break. The
// longest key wins; runes not consumed by the key come back as the new
// trailing set.
func (t *Tokenizer) expandPeeledAbbreviation(core string, trailing []rune) (words []string, rest []rune, ok bool) {
	for i := len(trailing); i >= 1; i-- {
		if words, ok := t.expandAbbreviation(core + string(trailing[:i])); ok {
			return words, trailing[i:], true
		}
	}
	return nil, trailing, false
}

// peel strips enclosing punctuation runes from a chunk without emitting
// anything: the stripped runes come back in text order so quote state and
// break markers are handled in the order they occur. Interior periods
// (decimals, dotted abbreviations) are never stripped, only enclosing
// runs.
func (t *Tokenizer) peel(chunk string) (core string, leading, trailing []rune) {
	runes := []rune(chunk)

	start := 0
	for start < len(runes) && t.isEnclosing(runes[start]) {
		leading = append(leading, runes[start])
		start++
	}

	end := len(runes)
	for end > start && t.isEnclosing(runes[end-1]) {
		trailing = append([]rune{runes[end-1]}, trailing...)
		end--
	}

	return string(runes[start:end]), leading, trailing
}

// emitPunct handles one stripped punctuation rune: quotes toggle the
// quoted-span state, recognized breaks become tokens, everything else is
// dropped.
func (t *Tokenizer) emitPunct(b *sentenceBuilder, r rune) {
	switch {
	case isQuote(r):
		b.inQuote = !b.inQuote
	case t.isBreak(r):
		t.emitBreak(b, r)
	}
}

func (t *Tokenizer) isEnclosing(r rune) bool {
	return isQuote(r) || isBracket(r) || t.isBreak(r)
}

// emitWords appends one word token per expanded surface word.
func (t *Tokenizer) emitWords(b *sentenceBuilder, words []string) {
	for _, w := range words {
		t.emitWord(b, w)
	}
}

// emitWord parses the word_N convention, applies the casing policy, and
// appends a word token.
func (t *Tokenizer) emitWord(b *sentenceBuilder, word string) {
	pronIndex := 0
	if m := pronIndexPattern.FindStringSubmatch(word); m != nil {
		if n, err := strconv.Atoi(m[2]); err == nil && n > 0 {
			word = m[1]
			pronIndex = n
		}
	}

	switch t.opts.Casing {
	case CaseLower:
		word = strings.ToLower(word)
	case CaseUpper:
		word = strings.ToUpper(word)
	}

	b.append(&Token{Text: word, IsWord: true, PronIndex: pronIndex})
}

// emitBreak appends a punctuation token and, for an unquoted major break,
// closes the current sentence.
func (t *Tokenizer) emitBreak(b *sentenceBuilder, r rune) {
	brk := BreakMinor
	if strings.ContainsRune(t.opts.MajorBreaks, r) {
		brk = BreakMajor
	}
	b.append(&Token{Text: string(r), Break: brk})

	if brk == BreakMajor && !b.inQuote {
		b.finish(BreakMajor)
	}
}

func (t *Tokenizer) isBreak(r rune) bool {
	return strings.ContainsRune(t.opts.MinorBreaks, r) || strings.ContainsRune(t.opts.MajorBreaks, r)
}

func isQuote(r rune) bool {
	switch r {
	case '"', '“', '”', '«', '»':
		return true
	}
	return false
}

func isBracket(r rune) bool {
	switch r {
	case '(', ')', '[', ']', '{', '}':
		return true
	}
	return false
}

func hasAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// sentenceBuilder accumulates tokens for the sentence in progress and
// tracks the quoted-span state across chunks.
type sentenceBuilder struct {
	sentences []*Sentence
	tokens    []*Token
	rawParts  []string
	inQuote   bool
}

func (b *sentenceBuilder) append(tok *Token) {
	tok.Index = len(b.tokens)
	b.tokens = append(b.tokens, tok)
}

func (b *sentenceBuilder) raw(chunk string) {
	b.rawParts = append(b.rawParts, chunk)
}

// finish closes the sentence in progress, setting its boundary marker
// exactly once. A builder with no tokens produces nothing.
func (b *sentenceBuilder) finish(brk BreakType) {
	if len(b.tokens) == 0 {
		b.rawParts = b.rawParts[:0]
		return
	}
	b.sentences = append(b.sentences, &Sentence{
		Tokens: b.tokens,
		Break:  brk,
		Raw:    strings.Join(b.rawParts, " "),
	})
	b.tokens = nil
	b.rawParts = nil
}
