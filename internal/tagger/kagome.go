package tagger

import (
	"context"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/example/go-phonemize/internal/text"
)

// Kagome tags Japanese sentences using the kagome morphological analyzer
// with the bundled IPA dictionary. It writes "pos" (mapped to the shared
// coarse tag set) and "reading" (katakana) features.
type Kagome struct {
	tok *tokenizer.Tokenizer
}

// NewKagome builds the analyzer. Dictionary construction can fail, which
// surfaces as a language configuration error at startup.
func NewKagome() (*Kagome, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Kagome{tok: t}, nil
}

func (k *Kagome) Tag(ctx context.Context, s *text.Sentence) error {
	for _, w := range s.Words() {
		if err := ctx.Err(); err != nil {
			return err
		}

		morphs := k.tok.Tokenize(w.Text)
		if len(morphs) == 0 {
			continue
		}

		// The first morpheme's POS stands for the whole surface form;
		// readings concatenate across morphemes.
		if pos := morphs[0].POS(); len(pos) > 0 {
			w.SetFeature(FeaturePOS, mapKagomePOS(pos[0]))
		}

		var reading strings.Builder
		for _, m := range morphs {
			r, ok := m.Reading()
			if !ok {
				continue
			}
			reading.WriteString(r)
		}
		if reading.Len() > 0 {
			w.SetFeature(FeatureReading, reading.String())
		}
	}
	return nil
}

// mapKagomePOS folds kagome's IPA-dictionary POS labels into the coarse
// tag set shared with the other taggers.
func mapKagomePOS(pos string) string {
	switch pos {
	case "名詞", "代名詞":
		return "noun"
	case "動詞":
		return "verb"
	case "形容詞", "連体詞":
		return "adj"
	case "副詞":
		return "adv"
	case "助詞", "助動詞":
		return "prep"
	case "接続詞":
		return "conj"
	default:
		return "other"
	}
}
