// Package tagger assigns linguistic features to tokens.
//
// Taggers see a whole sentence at once because context decides tags like
// part-of-speech. They write into token feature maps and must not change
// surface text or token count. Tagging is best-effort: a failed sentence
// degrades to empty features upstream, never aborting the pipeline.
package tagger

import (
	"context"

	"github.com/example/go-phonemize/internal/text"
)

// FeaturePOS is the part-of-speech feature name written by the built-in
// taggers and consumed by lexicon feature preferences.
const FeaturePOS = "pos"

// FeatureReading carries a phonetic reading hint for languages whose
// tagger produces one (e.g. katakana readings for Japanese).
const FeatureReading = "reading"

// Tagger enriches a sentence's word tokens with features in place.
type Tagger interface {
	Tag(ctx context.Context, s *text.Sentence) error
}

// Noop leaves all features empty. It is the default capability for
// languages without a tagger.
type Noop struct{}

func (Noop) Tag(context.Context, *text.Sentence) error { return nil }
