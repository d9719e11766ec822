package phonemize

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/example/go-phonemize/internal/tagger"
	"github.com/example/go-phonemize/internal/testutil"
	"github.com/example/go-phonemize/internal/text"
)

type countingPredictor struct {
	calls    atomic.Int64
	phonemes []string
	err      error
}

func (p *countingPredictor) Predict(context.Context, string) ([]string, error) {
	p.calls.Add(1)
	if p.err != nil {
		return nil, p.err
	}
	return p.phonemes, nil
}

type failingTagger struct{}

func (failingTagger) Tag(context.Context, *text.Sentence) error {
	return errors.New("model unavailable")
}

func homographLexicon(t *testing.T) *Service {
	t.Helper()

	lex := testutil.Lexicon(t, []testutil.Entry{
		{Word: "wound", Phonemes: "w aʊ n d", Preferred: map[string]string{"pos": "verb"}},
		{Word: "wound", Phonemes: "w u n d", Preferred: map[string]string{"pos": "noun"}},
		{Word: "he", Phonemes: "h i"},
		{Word: "it", Phonemes: "ɪ t"},
		{Word: "around", Phonemes: "ə ɹ aʊ n d"},
		{Word: "the", Phonemes: "ð ə"},
	})
	tok := testutil.Tokenizer(t, text.Options{})

	return NewService(tok, lex, WithTagger(tagger.NewEnglish()))
}

func TestPhonemizeDisambiguatesHomographs(t *testing.T) {
	svc := homographLexicon(t)

	res, err := svc.Phonemize(context.Background(), "He wound it around the wound.")
	require.NoError(t, err)
	require.Len(t, res.Sentences, 1)
	require.Empty(t, res.Warnings)

	words := res.Sentences[0].Words()
	require.Len(t, words, 6)

	first, second := words[1], words[5]
	require.Equal(t, "wound", first.Text)
	require.Equal(t, "wound", second.Text)
	require.Equal(t, []string{"w", "aʊ", "n", "d"}, first.Phonemes, "verb reading")
	require.Equal(t, []string{"w", "u", "n", "d"}, second.Phonemes, "noun reading")

	// All other words resolve via their single no-preference candidate.
	for _, w := range []*text.Token{words[0], words[2], words[3], words[4]} {
		require.NotEmpty(t, w.Phonemes, "word %q", w.Text)
		require.False(t, w.Guessed)
	}
}

func TestPhonemizeDeterministic(t *testing.T) {
	input := "He wound it around the wound."

	first, err := homographLexicon(t).Phonemize(context.Background(), input)
	require.NoError(t, err)
	second, err := homographLexicon(t).Phonemize(context.Background(), input)
	require.NoError(t, err)

	require.Equal(t, len(first.Sentences), len(second.Sentences))
	for i := range first.Sentences {
		a, b := first.Sentences[i].Words(), second.Sentences[i].Words()
		require.Equal(t, len(a), len(b))
		for j := range a {
			require.Equal(t, a[j].Phonemes, b[j].Phonemes)
		}
	}
}

func TestPhonemizeFallbackInvokedOncePerMissingWord(t *testing.T) {
	lex := testutil.Lexicon(t, []testutil.Entry{
		{Word: "the", Phonemes: "ð ə"},
	})
	pred := &countingPredictor{phonemes: []string{"z", "iː", "b", "ɹ", "ə"}}
	svc := NewService(testutil.Tokenizer(t, text.Options{}), lex, WithPredictor(pred))

	res, err := svc.Phonemize(context.Background(), "the zebra")
	require.NoError(t, err)
	require.EqualValues(t, 1, pred.calls.Load(), "one call for the one missing word")

	words := res.Sentences[0].Words()
	require.False(t, words[0].Guessed)
	require.True(t, words[1].Guessed)
	require.Equal(t, []string{"z", "iː", "b", "ɹ", "ə"}, words[1].Phonemes)
	require.False(t, words[1].Failed)
}

func TestPhonemizeExplicitIndexSkipsFeatureMatch(t *testing.T) {
	svc := homographLexicon(t)

	res, err := svc.Phonemize(context.Background(), "the wound_1")
	require.NoError(t, err)

	words := res.Sentences[0].Words()
	// Index 1 selects the verb-preferring candidate even though the
	// tagger marks this occurrence as a noun.
	require.Equal(t, []string{"w", "aʊ", "n", "d"}, words[1].Phonemes)
}

func TestPhonemizeGracefulDegradationOnFailedOracle(t *testing.T) {
	lex := testutil.Lexicon(t, []testutil.Entry{
		{Word: "the", Phonemes: "ð ə"},
		{Word: "cat", Phonemes: "k æ t"},
	})
	pred := &countingPredictor{err: errors.New("model crashed")}
	svc := NewService(testutil.Tokenizer(t, text.Options{}), lex, WithPredictor(pred))

	res, err := svc.Phonemize(context.Background(), "the qwxyz cat blorp")
	require.NoError(t, err, "oracle failure is never fatal to the sentence")

	words := res.Sentences[0].Words()
	require.Len(t, words, 4)

	require.False(t, words[0].Failed)
	require.NotEmpty(t, words[0].Phonemes)
	require.False(t, words[2].Failed)
	require.NotEmpty(t, words[2].Phonemes)

	for _, w := range []*text.Token{words[1], words[3]} {
		require.True(t, w.Failed, "word %q", w.Text)
		require.NotNil(t, w.Phonemes, "degraded word keeps an explicit empty pronunciation")
		require.Empty(t, w.Phonemes)
	}

	require.Len(t, res.Warnings, 2)
	require.Equal(t, 1, res.Warnings[0].Word)
	require.Equal(t, 3, res.Warnings[1].Word)
}

func TestPhonemizeNoPredictorDegrades(t *testing.T) {
	lex := testutil.Lexicon(t, nil)
	svc := NewService(testutil.Tokenizer(t, text.Options{}), lex)

	res, err := svc.Phonemize(context.Background(), "hello")
	require.NoError(t, err)

	word := res.Sentences[0].Words()[0]
	require.True(t, word.Failed)
	require.Empty(t, word.Phonemes)
	require.Len(t, res.Warnings, 1)
}

func TestPhonemizeTaggerFailureDegradesSentence(t *testing.T) {
	lex := testutil.Lexicon(t, []testutil.Entry{
		{Word: "hello", Phonemes: "h ə l oʊ"},
	})
	svc := NewService(testutil.Tokenizer(t, text.Options{}), lex, WithTagger(failingTagger{}))

	res, err := svc.Phonemize(context.Background(), "hello")
	require.NoError(t, err, "tagging failure is recoverable")

	word := res.Sentences[0].Words()[0]
	require.Equal(t, []string{"h", "ə", "l", "oʊ"}, word.Phonemes)
	require.Len(t, res.Warnings, 1)
	require.Equal(t, -1, res.Warnings[0].Word)
}

func TestPhonemizeHonorsCancellation(t *testing.T) {
	svc := homographLexicon(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Phonemize(ctx, "He wound it.")
	require.ErrorIs(t, err, context.Canceled)
}

func TestPhonemizeNonWordTokensBypassResolution(t *testing.T) {
	lex := testutil.Lexicon(t, []testutil.Entry{
		{Word: "hello", Phonemes: "h ə l oʊ"},
	})
	pred := &countingPredictor{phonemes: []string{"x"}}
	svc := NewService(testutil.Tokenizer(t, text.Options{}), lex, WithPredictor(pred))

	res, err := svc.Phonemize(context.Background(), "hello, hello.")
	require.NoError(t, err)
	require.EqualValues(t, 0, pred.calls.Load(), "punctuation never reaches the predictor")

	for _, tok := range res.Sentences[0].Tokens {
		if !tok.IsWord {
			require.Empty(t, tok.Phonemes)
		}
	}
}
