package g2p

import (
	"context"
	"strings"
)

// Rules is a rule-based English grapheme-to-phoneme oracle. It scans the
// word left to right, matching the longest known grapheme sequence (up to
// four letters) before falling back to single letters. Letters with no
// rule (silent clusters) contribute nothing.
type Rules struct{}

// NewRules returns the built-in English rule oracle.
func NewRules() *Rules { return &Rules{} }

func (*Rules) Predict(_ context.Context, word string) ([]string, error) {
	lower := strings.ToLower(word)

	var phonemes []string
	i := 0
	for i < len(lower) {
		matched := false
		for length := 4; length >= 2; length-- {
			if i+length > len(lower) {
				continue
			}
			if ph, ok := englishRules[lower[i:i+length]]; ok {
				phonemes = append(phonemes, ph...)
				i += length
				matched = true
				break
			}
		}
		if !matched {
			if ph, ok := englishRules[lower[i:i+1]]; ok {
				phonemes = append(phonemes, ph...)
			}
			i++
		}
	}

	if len(phonemes) == 0 {
		return nil, ErrNoPrediction
	}
	return phonemes, nil
}

// englishRules maps grapheme sequences to IPA phonemes, longest first.
var englishRules = map[string][]string{
	"tion": {"ʃ", "ə", "n"},
	"sion": {"ʒ", "ə", "n"},
	"ight": {"aɪ", "t"},
	"ture": {"tʃ", "ɚ"},
	"ould": {"ʊ", "d"},
	"ound": {"aʊ", "n", "d"},
	"ence": {"ə", "n", "s"},
	"ance": {"ə", "n", "s"},
	"ment": {"m", "ə", "n", "t"},
	"ness": {"n", "ə", "s"},
	"able": {"ə", "b", "ə", "l"},
	"ible": {"ə", "b", "ə", "l"},

	"ful": {"f", "ə", "l"},
	"ing": {"ɪ", "ŋ"},
	"ght": {"t"},
	"tch": {"tʃ"},
	"dge": {"dʒ"},
	"sch": {"s", "k"},
	"que": {"k"},

	"ph": {"f"},
	"th": {"θ"},
	"sh": {"ʃ"},
	"ch": {"tʃ"},
	"wh": {"w"},
	"wr": {"ɹ"},
	"kn": {"n"},
	"gn": {"n"},
	"ck": {"k"},
	"ng": {"ŋ"},
	"gh": {},
	"ee": {"i"},
	"ea": {"i"},
	"oo": {"u"},
	"ou": {"aʊ"},
	"ow": {"oʊ"},
	"ai": {"eɪ"},
	"ay": {"eɪ"},
	"oi": {"ɔɪ"},
	"oy": {"ɔɪ"},
	"au": {"ɔ"},
	"aw": {"ɔ"},
	"er": {"ɚ"},
	"ir": {"ɝ"},
	"ur": {"ɝ"},
	"ar": {"ɑ", "ɹ"},
	"or": {"ɔ", "ɹ"},
	"qu": {"k", "w"},

	"a": {"æ"},
	"b": {"b"},
	"c": {"k"},
	"d": {"d"},
	"e": {"ɛ"},
	"f": {"f"},
	"g": {"ɡ"},
	"h": {"h"},
	"i": {"ɪ"},
	"j": {"dʒ"},
	"k": {"k"},
	"l": {"l"},
	"m": {"m"},
	"n": {"n"},
	"o": {"ɑ"},
	"p": {"p"},
	"q": {"k"},
	"r": {"ɹ"},
	"s": {"s"},
	"t": {"t"},
	"u": {"ʌ"},
	"v": {"v"},
	"w": {"w"},
	"x": {"k", "s"},
	"y": {"j"},
	"z": {"z"},
}
