package text

import (
	"errors"
	"reflect"
	"testing"
)

func mustTokenizer(t *testing.T, opts Options) *Tokenizer {
	t.Helper()
	tok, err := NewTokenizer(opts)
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}
	return tok
}

func wordTexts(s *Sentence) []string {
	var out []string
	for _, tok := range s.Words() {
		out = append(out, tok.Text)
	}
	return out
}

func TestTokenizeSentenceSplitting(t *testing.T) {
	tok := mustTokenizer(t, Options{})

	sentences := tok.Tokenize("This is one. This is two! And three?")
	if len(sentences) != 3 {
		t.Fatalf("got %d sentences, want 3", len(sentences))
	}
	for i, s := range sentences {
		if s.Break != BreakMajor {
			t.Errorf("sentence %d break = %v, want major", i, s.Break)
		}
	}
}

func TestTokenizeTrailingTextWithoutTerminator(t *testing.T) {
	tok := mustTokenizer(t, Options{})

	sentences := tok.Tokenize("no terminator here")
	if len(sentences) != 1 {
		t.Fatalf("got %d sentences, want 1", len(sentences))
	}
	if sentences[0].Break != BreakNone {
		t.Errorf("break = %v, want none", sentences[0].Break)
	}
	if got := wordTexts(sentences[0]); !reflect.DeepEqual(got, []string{"no", "terminator", "here"}) {
		t.Errorf("words = %v", got)
	}
}

func TestTokenizeIndexesContiguous(t *testing.T) {
	tok := mustTokenizer(t, Options{})

	sentences := tok.Tokenize("Hello, world. Second one.")
	for _, s := range sentences {
		for i, token := range s.Tokens {
			if token.Index != i {
				t.Errorf("token %q index = %d, want %d", token.Text, token.Index, i)
			}
		}
	}
}

func TestTokenizeRetainsPunctuationMarkers(t *testing.T) {
	tok := mustTokenizer(t, Options{})

	sentences := tok.Tokenize("Hello, world.")
	if len(sentences) != 1 {
		t.Fatalf("got %d sentences, want 1", len(sentences))
	}
	tokens := sentences[0].Tokens
	if len(tokens) != 4 {
		t.Fatalf("got %d tokens, want 4: %+v", len(tokens), tokens)
	}

	comma := tokens[1]
	if comma.IsWord || comma.Break != BreakMinor || comma.Text != "," {
		t.Errorf("comma token = %+v, want minor break", comma)
	}
	period := tokens[3]
	if period.IsWord || period.Break != BreakMajor {
		t.Errorf("period token = %+v, want major break", period)
	}
}

func TestTokenizeDropsUnrecognizedPunctuation(t *testing.T) {
	tok := mustTokenizer(t, Options{})

	sentences := tok.Tokenize("ests (aside) -- done")
	if len(sentences) != 1 {
		t.Fatalf("got %d sentences, want 1", len(sentences))
	}
	for _, token := range sentences[0].Tokens {
		if !token.IsWord {
			t.Errorf("unexpected non-word token %q", token.Text)
		}
	}
	if got := wordTexts(sentences[0]); !reflect.DeepEqual(got, []string{"ests", "aside", "done"}) {
		t.Errorf("words = %v", got)
	}
}

func TestTokenizeQuotedSpanDoesNotSplitSentence(t *testing.T) {
	tok := mustTokenizer(t, Options{})

	sentences := tok.Tokenize(`She said "Stop. Go on." and left.`)
	if len(sentences) != 1 {
		t.Fatalf("got %d sentences, want 1: %+v", len(sentences), sentences)
	}
	if sentences[0].Break != BreakMajor {
		t.Errorf("break = %v, want major", sentences[0].Break)
	}
}

func TestTokenizeAbbreviationExpansion(t *testing.T) {
	tok := mustTokenizer(t, Options{Abbreviations: DefaultAbbreviations()})

	sentences := tok.Tokenize("Dr. Jones met Mr. Smith.")
	if len(sentences) != 1 {
		t.Fatalf("got %d sentences, want 1", len(sentences))
	}
	got := wordTexts(sentences[0])
	want := []string{"Doctor", "Jones", "met", "Mister", "Smith"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("words = %v, want %v", got, want)
	}
}

func TestTokenizeAbbreviationAdjacentToPunctuation(t *testing.T) {
	tok := mustTokenizer(t, Options{Abbreviations: DefaultAbbreviations()})

	t.Run("parenthesized", func(t *testing.T) {
		sentences := tok.Tokenize("(Dr.) Smith agreed.")
		if len(sentences) != 1 {
			t.Fatalf("got %d sentences, want 1: %+v", len(sentences), sentences)
		}
		got := wordTexts(sentences[0])
		want := []string{"Doctor", "Smith", "agreed"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("words = %v, want %v", got, want)
		}
	})

	t.Run("followed by comma", func(t *testing.T) {
		sentences := tok.Tokenize("Ask Dr., not me.")
		if len(sentences) != 1 {
			t.Fatalf("got %d sentences, want 1: %+v", len(sentences), sentences)
		}
		got := wordTexts(sentences[0])
		want := []string{"Ask", "Doctor", "not", "me"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("words = %v, want %v", got, want)
		}

		var minors int
		for _, token := range sentences[0].Tokens {
			if !token.IsWord && token.Break == BreakMinor {
				minors++
			}
		}
		if minors != 1 {
			t.Errorf("minor break tokens = %d, want 1 (the comma)", minors)
		}
	})
}

func TestTokenizeMultiWordAbbreviation(t *testing.T) {
	tok := mustTokenizer(t, Options{Abbreviations: map[string]string{"e.g.": "for example"}})

	sentences := tok.Tokenize("Fruit, e.g. apples.")
	got := wordTexts(sentences[0])
	want := []string{"Fruit", "for", "example", "apples"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("words = %v, want %v", got, want)
	}
}

func TestTokenizeExplicitPronunciationIndex(t *testing.T) {
	tok := mustTokenizer(t, Options{})

	tests := []struct {
		name      string
		input     string
		wantText  string
		wantIndex int
	}{
		{name: "valid index", input: "wound_2", wantText: "wound", wantIndex: 2},
		{name: "index one", input: "read_1", wantText: "read", wantIndex: 1},
		{name: "zero index is literal", input: "wound_0", wantText: "wound_0", wantIndex: 0},
		{name: "non-numeric suffix is literal", input: "wound_x", wantText: "wound_x", wantIndex: 0},
		{name: "plain word", input: "wound", wantText: "wound", wantIndex: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sentences := tok.Tokenize(tt.input)
			if len(sentences) != 1 || len(sentences[0].Tokens) != 1 {
				t.Fatalf("unexpected tokenization of %q: %+v", tt.input, sentences)
			}
			token := sentences[0].Tokens[0]
			if token.Text != tt.wantText || token.PronIndex != tt.wantIndex {
				t.Errorf("got (%q, %d), want (%q, %d)", token.Text, token.PronIndex, tt.wantText, tt.wantIndex)
			}
		})
	}
}

func TestTokenizeCasingPolicy(t *testing.T) {
	tests := []struct {
		name   string
		casing CasePolicy
		want   []string
	}{
		{name: "keep", casing: CaseKeep, want: []string{"Hello", "World"}},
		{name: "lower", casing: CaseLower, want: []string{"hello", "world"}},
		{name: "upper", casing: CaseUpper, want: []string{"HELLO", "WORLD"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := mustTokenizer(t, Options{Casing: tt.casing})
			sentences := tok.Tokenize("Hello World")
			if got := wordTexts(sentences[0]); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("words = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	tok := mustTokenizer(t, Options{})

	if got := tok.Tokenize("   "); got != nil {
		t.Errorf("Tokenize(blank) = %+v, want nil", got)
	}
}

func TestNewTokenizerRejectsSelfReferentialAbbreviation(t *testing.T) {
	_, err := NewTokenizer(Options{Abbreviations: map[string]string{"etc.": "etc. and more"}})
	var bad *ErrBadAbbreviation
	if !errors.As(err, &bad) {
		t.Fatalf("err = %v, want ErrBadAbbreviation", err)
	}
}

func TestNewTokenizerRejectsAbbreviationCycle(t *testing.T) {
	_, err := NewTokenizer(Options{Abbreviations: map[string]string{
		"a.": "b.",
		"b.": "a.",
	}})
	var bad *ErrBadAbbreviation
	if !errors.As(err, &bad) {
		t.Fatalf("err = %v, want ErrBadAbbreviation", err)
	}
}

func TestNewTokenizerAllowsAcyclicAbbreviationChain(t *testing.T) {
	tok := mustTokenizer(t, Options{Abbreviations: map[string]string{
		"No.": "Number",
		"Nr.": "No.",
	}})

	sentences := tok.Tokenize("Nr. five")
	got := wordTexts(sentences[0])
	if !reflect.DeepEqual(got, []string{"Number", "five"}) {
		t.Errorf("words = %v", got)
	}
}
