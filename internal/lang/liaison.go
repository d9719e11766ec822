package lang

import (
	"strings"

	"github.com/example/go-phonemize/internal/text"
)

// Liaison is the French post-processing rule: when a word ends in a
// latent consonant letter and the next word begins with a vowel sound,
// the linking consonant phoneme is appended to the current word.
//
// The rule only looks at a token and its immediate right neighbor and
// never appends a consonant the pronunciation already ends with, which
// makes it idempotent.
type Liaison struct{}

func (Liaison) Process(s *text.Sentence) {
	for i := 0; i+1 < len(s.Tokens); i++ {
		cur, next := s.Tokens[i], s.Tokens[i+1]
		if !cur.IsWord || !next.IsWord {
			// A break between the words blocks liaison.
			continue
		}
		if len(cur.Phonemes) == 0 || len(next.Phonemes) == 0 {
			continue
		}

		cons := liaisonConsonant(cur.Text)
		if cons == "" {
			continue
		}
		if !startsWithVowel(next.Phonemes[0]) {
			continue
		}
		if cur.Phonemes[len(cur.Phonemes)-1] == cons {
			continue
		}

		cur.Phonemes = append(cur.Phonemes, cons)
	}
}

// liaisonConsonant maps a word's final letter to its linking phoneme, or
// "" when the word carries no latent consonant.
func liaisonConsonant(word string) string {
	if word == "" {
		return ""
	}
	switch word[len(word)-1] {
	case 's', 'x', 'z', 'S', 'X', 'Z':
		return "z"
	case 't', 'd', 'T', 'D':
		return "t"
	case 'n', 'N':
		return "n"
	}
	return ""
}

// ipaVowels covers the vowel symbols produced by the lexicons and
// predictors wired into this pipeline.
const ipaVowels = "aeiouyɑɐɒæɛəɚɜɝɞɪɨɔœøɵoʊuʉʌʏɤɯː"

// startsWithVowel reports whether a phoneme begins with a vowel sound,
// ignoring a leading stress mark.
func startsWithVowel(phoneme string) bool {
	trimmed := strings.TrimLeft(phoneme, "ˈˌ")
	if trimmed == "" {
		return false
	}
	for _, r := range trimmed {
		return strings.ContainsRune(ipaVowels, r)
	}
	return false
}
