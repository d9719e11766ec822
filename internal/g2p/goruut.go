package g2p

import (
	"context"
	"fmt"
	"unicode"

	"github.com/neurlang/goruut/lib"
	"github.com/neurlang/goruut/models/requests"
)

// Goruut wraps the goruut statistical phonemizer as a fallback oracle.
// The engine itself is language-polymorphic; Language selects the model
// by goruut's own naming ("English", "French", ...).
type Goruut struct {
	p        *lib.Phonemizer
	language string
}

// NewGoruut constructs a goruut-backed oracle for one language.
func NewGoruut(language string) *Goruut {
	return &Goruut{
		p:        lib.NewPhonemizer(nil),
		language: language,
	}
}

func (g *Goruut) Predict(ctx context.Context, word string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp := g.p.Sentence(requests.PhonemizeSentence{
		Language: g.language,
		Sentence: word,
	})
	if len(resp.Words) == 0 {
		return nil, fmt.Errorf("goruut %s: %w", g.language, ErrNoPrediction)
	}

	phonemes := SplitIPA(resp.Words[0].Phonetic)
	if len(phonemes) == 0 {
		return nil, fmt.Errorf("goruut %s: %w", g.language, ErrNoPrediction)
	}
	return phonemes, nil
}

// SplitIPA splits an IPA string into per-phoneme symbols. Combining
// marks, length marks, and tie bars attach to the preceding base symbol;
// stress marks attach to the following one.
func SplitIPA(s string) []string {
	var out []string
	pending := ""
	tie := false

	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			continue
		case r == 'ˈ' || r == 'ˌ':
			pending += string(r)
		case r == '͡' || r == '͜':
			tie = true
			if n := len(out); n > 0 {
				out[n-1] += string(r)
			}
		case unicode.Is(unicode.Mn, r) || r == 'ː' || r == 'ˑ':
			if n := len(out); n > 0 {
				out[n-1] += string(r)
			}
		default:
			if tie {
				tie = false
				if n := len(out); n > 0 {
					out[n-1] += string(r)
					continue
				}
			}
			out = append(out, pending+string(r))
			pending = ""
		}
	}

	return out
}
