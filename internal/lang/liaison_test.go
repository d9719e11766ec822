package lang

import (
	"reflect"
	"testing"

	"github.com/example/go-phonemize/internal/text"
)

func word(s string, phonemes ...string) *text.Token {
	return &text.Token{Text: s, IsWord: true, Phonemes: phonemes}
}

func punct(s string, br text.BreakType) *text.Token {
	return &text.Token{Text: s, Break: br}
}

func TestLiaisonAppendsLinkingConsonant(t *testing.T) {
	tests := []struct {
		name string
		toks []*text.Token
		want [][]string
	}{
		{
			name: "s before vowel links z",
			toks: []*text.Token{
				word("les", "l", "e"),
				word("amis", "a", "m", "i"),
			},
			want: [][]string{{"l", "e", "z"}, {"a", "m", "i"}},
		},
		{
			name: "t before vowel links t",
			toks: []*text.Token{
				word("petit", "p", "ə", "t", "i"),
				word("ami", "a", "m", "i"),
			},
			want: [][]string{{"p", "ə", "t", "i", "t"}, {"a", "m", "i"}},
		},
		{
			name: "n before vowel links n",
			toks: []*text.Token{
				word("un", "œ̃"),
				word("ami", "a", "m", "i"),
			},
			want: [][]string{{"œ̃", "n"}, {"a", "m", "i"}},
		},
		{
			name: "no liaison before consonant",
			toks: []*text.Token{
				word("les", "l", "e"),
				word("chats", "ʃ", "a"),
			},
			want: [][]string{{"l", "e"}, {"ʃ", "a"}},
		},
		{
			name: "no liaison without latent consonant",
			toks: []*text.Token{
				word("ami", "a", "m", "i"),
				word("ici", "i", "s", "i"),
			},
			want: [][]string{{"a", "m", "i"}, {"i", "s", "i"}},
		},
		{
			name: "stressed vowel still counts",
			toks: []*text.Token{
				word("les", "l", "e"),
				word("autres", "ˈo", "t", "ʁ"),
			},
			want: [][]string{{"l", "e", "z"}, {"ˈo", "t", "ʁ"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &text.Sentence{Tokens: tt.toks}
			Liaison{}.Process(s)
			for i, tok := range s.Tokens {
				if !reflect.DeepEqual(tok.Phonemes, tt.want[i]) {
					t.Errorf("token %d phonemes = %v, want %v", i, tok.Phonemes, tt.want[i])
				}
			}
		})
	}
}

func TestLiaisonBlockedByBreak(t *testing.T) {
	s := &text.Sentence{Tokens: []*text.Token{
		word("les", "l", "e"),
		punct(",", text.BreakMinor),
		word("amis", "a", "m", "i"),
	}}
	Liaison{}.Process(s)

	if got := s.Tokens[0].Phonemes; !reflect.DeepEqual(got, []string{"l", "e"}) {
		t.Errorf("phonemes across break = %v, want unchanged", got)
	}
}

func TestLiaisonIdempotent(t *testing.T) {
	s := &text.Sentence{Tokens: []*text.Token{
		word("les", "l", "e"),
		word("amis", "a", "m", "i"),
	}}

	Liaison{}.Process(s)
	once := append([]string(nil), s.Tokens[0].Phonemes...)
	Liaison{}.Process(s)

	if !reflect.DeepEqual(s.Tokens[0].Phonemes, once) {
		t.Errorf("second pass changed phonemes: %v, want %v", s.Tokens[0].Phonemes, once)
	}
}

func TestLiaisonSkipsEmptyPronunciations(t *testing.T) {
	s := &text.Sentence{Tokens: []*text.Token{
		word("les"),
		word("amis", "a", "m", "i"),
	}}
	Liaison{}.Process(s)

	if len(s.Tokens[0].Phonemes) != 0 {
		t.Errorf("empty pronunciation gained phonemes: %v", s.Tokens[0].Phonemes)
	}
}
