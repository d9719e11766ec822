// Package phonemize runs the tokenization-to-pronunciation pipeline:
// normalize → tag features → resolve lexicon candidates → disambiguate or
// fall back to prediction → post-process.
//
// Failures scope to the smallest unit: a failed tag degrades one sentence
// to empty features, a failed prediction degrades one word to an empty
// pronunciation. The pipeline always returns a result for every sentence
// and word; degraded entries are flagged, never omitted.
package phonemize

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/example/go-phonemize/internal/g2p"
	"github.com/example/go-phonemize/internal/lexicon"
	"github.com/example/go-phonemize/internal/tagger"
	"github.com/example/go-phonemize/internal/text"
)

// Warning reports a recoverable degradation for one sentence or word.
type Warning struct {
	Sentence int
	Word     int // token index within the sentence; -1 for sentence-level
	Message  string
}

func (w Warning) String() string {
	if w.Word < 0 {
		return fmt.Sprintf("sentence %d: %s", w.Sentence, w.Message)
	}
	return fmt.Sprintf("sentence %d word %d: %s", w.Sentence, w.Word, w.Message)
}

// Result is the output of one pipeline run: every input sentence with
// resolved pronunciations attached to its word tokens, plus any
// recoverable warnings raised along the way.
type Result struct {
	Sentences []*text.Sentence
	Warnings  []Warning
}

// Service wires the pipeline stages together. All stages are read-only
// with respect to shared state, so one Service may phonemize independent
// texts concurrently.
type Service struct {
	tokenizer *text.Tokenizer
	tagger    tagger.Tagger
	resolver  lexicon.Resolver
	predictor g2p.Predictor
	post      PostProcessor
	log       *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithTagger sets the feature tagger (default: none).
func WithTagger(t tagger.Tagger) Option {
	return func(s *Service) { s.tagger = t }
}

// WithPredictor sets the fallback pronunciation oracle (default: none;
// out-of-lexicon words then degrade to empty pronunciations).
func WithPredictor(p g2p.Predictor) Option {
	return func(s *Service) { s.predictor = p }
}

// WithPostProcessor sets the pronunciation post-processor.
func WithPostProcessor(p PostProcessor) Option {
	return func(s *Service) { s.post = p }
}

// WithLogger sets the slog.Logger used for recoverable conditions.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// NewService builds a pipeline around a tokenizer and a lexicon resolver.
func NewService(tok *text.Tokenizer, resolver lexicon.Resolver, opts ...Option) *Service {
	s := &Service{
		tokenizer: tok,
		tagger:    tagger.Noop{},
		resolver:  resolver,
		post:      Identity{},
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tokenize runs only the normalization stage.
func (s *Service) Tokenize(input string) []*text.Sentence {
	return s.tokenizer.Tokenize(input)
}

// Phonemize runs the full pipeline over input. The returned error is
// reserved for context cancellation; linguistic failures degrade in place
// and surface as Result.Warnings.
func (s *Service) Phonemize(ctx context.Context, input string) (*Result, error) {
	res := &Result{Sentences: s.tokenizer.Tokenize(input)}

	for si, sentence := range res.Sentences {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.processSentence(ctx, si, sentence, res); err != nil {
			return nil, err
		}
	}

	return res, nil
}

func (s *Service) processSentence(ctx context.Context, si int, sentence *text.Sentence, res *Result) error {
	if err := s.tagger.Tag(ctx, sentence); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		// Recoverable: continue with whatever features were written.
		res.Warnings = append(res.Warnings, Warning{
			Sentence: si,
			Word:     -1,
			Message:  "feature tagging failed: " + err.Error(),
		})
		s.log.Warn("feature tagging failed",
			slog.Int("sentence", si),
			slog.String("error", err.Error()),
		)
	}

	for _, tok := range sentence.Tokens {
		if !tok.IsWord {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		s.resolveToken(ctx, si, tok, res)
	}

	s.post.Process(sentence)
	return nil
}

// resolveToken attaches exactly one pronunciation to a word token.
func (s *Service) resolveToken(ctx context.Context, si int, tok *text.Token, res *Result) {
	candidates := s.resolver.Resolve(tok.Text)
	if len(candidates) > 0 {
		cand := selectCandidate(tok, candidates)
		tok.Phonemes = append([]string(nil), cand.Phonemes...)
		return
	}

	// Lexicon miss: the fallback oracle is the single source of the
	// pronunciation, wrapped as a preference-free synthetic candidate.
	phonemes, err := s.predict(ctx, tok.Text)
	if err != nil {
		tok.Phonemes = []string{}
		tok.Failed = true
		res.Warnings = append(res.Warnings, Warning{
			Sentence: si,
			Word:     tok.Index,
			Message:  "fallback prediction failed: " + err.Error(),
		})
		s.log.Warn("fallback prediction failed",
			slog.Int("sentence", si),
			slog.String("word", tok.Text),
			slog.String("error", err.Error()),
		)
		return
	}

	synthetic := lexicon.Candidate{Phonemes: phonemes, Preferred: map[string]string{}}
	tok.Phonemes = append([]string(nil), synthetic.Phonemes...)
	tok.Guessed = true
}

func (s *Service) predict(ctx context.Context, word string) ([]string, error) {
	if s.predictor == nil {
		return nil, g2p.ErrNoPrediction
	}
	return s.predictor.Predict(ctx, word)
}
