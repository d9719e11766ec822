package text

import (
	"reflect"
	"testing"
)

func TestTokenizeNumberExpansion(t *testing.T) {
	tok := mustTokenizer(t, Options{})

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "currency default english rules",
			input: "$10",
			want:  []string{"ten", "dollars"},
		},
		{
			name:  "singular currency unit",
			input: "$1",
			want:  []string{"one", "dollar"},
		},
		{
			name:  "currency with minor units",
			input: "$10.50",
			want:  []string{"ten", "dollars", "fifty", "cents"},
		},
		{
			name:  "plain integer",
			input: "100",
			want:  []string{"one", "hundred"},
		},
		{
			name:  "decimal reads point and digits",
			input: "3.14",
			want:  []string{"three", "point", "one", "four"},
		},
		{
			name:  "negative number",
			input: "-5",
			want:  []string{"minus", "five"},
		},
		{
			name:  "thousands separators",
			input: "1,000",
			want:  []string{"one", "thousand"},
		},
		{
			name:  "euro symbol",
			input: "€2",
			want:  []string{"two", "euros"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sentences := tok.Tokenize(tt.input)
			if len(sentences) != 1 {
				t.Fatalf("got %d sentences, want 1", len(sentences))
			}
			got := wordTexts(sentences[0])
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("words = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTokenizeMalformedNumbersDegradeToLiteral(t *testing.T) {
	tok := mustTokenizer(t, Options{})

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "digits with letters", input: "12ab", want: []string{"12ab"}},
		{name: "double decimal point", input: "1.2.3", want: []string{"1.2.3"}},
		{name: "lone currency symbol", input: "$x", want: []string{"$x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sentences := tok.Tokenize(tt.input)
			if len(sentences) != 1 {
				t.Fatalf("got %d sentences, want 1", len(sentences))
			}
			got := wordTexts(sentences[0])
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("words = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTokenizeDecimalAtSentenceEnd(t *testing.T) {
	tok := mustTokenizer(t, Options{})

	sentences := tok.Tokenize("Pi is 3.14.")
	if len(sentences) != 1 {
		t.Fatalf("got %d sentences, want 1", len(sentences))
	}
	got := wordTexts(sentences[0])
	want := []string{"Pi", "is", "three", "point", "one", "four"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("words = %v, want %v", got, want)
	}
	if sentences[0].Break != BreakMajor {
		t.Errorf("break = %v, want major", sentences[0].Break)
	}
}

func TestTokenizeNumberLocaleFallsBackToEnglish(t *testing.T) {
	tok := mustTokenizer(t, Options{
		NumberLang: "fr",
		Currencies: map[string]CurrencyNames{
			"€": {Singular: "euro", Plural: "euros", MinorSingular: "centime", MinorPlural: "centimes"},
		},
	})

	sentences := tok.Tokenize("10")
	if len(sentences) != 1 {
		t.Fatalf("got %d sentences, want 1", len(sentences))
	}
	got := wordTexts(sentences[0])
	if reflect.DeepEqual(got, []string{"10"}) {
		t.Fatalf("number stayed a literal digit token: %v", got)
	}

	sentences = tok.Tokenize("€2")
	got = wordTexts(sentences[0])
	if len(got) < 2 || got[len(got)-1] != "euros" {
		t.Fatalf("currency words = %v, want amount words ending in euros", got)
	}
	for _, w := range got {
		if w == "2" {
			t.Errorf("currency amount stayed a literal digit: %v", got)
		}
	}
}

func TestTokenizeNumberAtSentenceEnd(t *testing.T) {
	tok := mustTokenizer(t, Options{})

	sentences := tok.Tokenize("It costs $10.")
	if len(sentences) != 1 {
		t.Fatalf("got %d sentences, want 1", len(sentences))
	}
	got := wordTexts(sentences[0])
	want := []string{"It", "costs", "ten", "dollars"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("words = %v, want %v", got, want)
	}
	if sentences[0].Break != BreakMajor {
		t.Errorf("break = %v, want major", sentences[0].Break)
	}
}
