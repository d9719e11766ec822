// Package g2p provides fallback grapheme-to-phoneme prediction for words
// absent from the lexicon.
//
// Predictors are opaque oracles: a statistical model, a rule table, or a
// fixed lookup. The pipeline only depends on the Predict contract and
// wraps every oracle in a timeout so a slow model degrades to a failed
// prediction instead of stalling a sentence.
package g2p

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNoPrediction is returned when an oracle has no pronunciation for a
// word. Callers treat it as a recoverable per-word failure.
var ErrNoPrediction = errors.New("no prediction for word")

// Predictor guesses a phoneme sequence for a single word.
// Implementations must be safe for concurrent use.
type Predictor interface {
	Predict(ctx context.Context, word string) ([]string, error)
}

// Adapter enforces a deadline around an arbitrary oracle. The oracle runs
// in its own goroutine so even a non-context-aware implementation cannot
// block the caller past the timeout.
type Adapter struct {
	oracle  Predictor
	timeout time.Duration
}

// NewAdapter wraps oracle with a per-word timeout. A non-positive timeout
// disables the deadline.
func NewAdapter(oracle Predictor, timeout time.Duration) *Adapter {
	return &Adapter{oracle: oracle, timeout: timeout}
}

type prediction struct {
	phonemes []string
	err      error
}

func (a *Adapter) Predict(ctx context.Context, word string) ([]string, error) {
	if a.oracle == nil {
		return nil, ErrNoPrediction
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	done := make(chan prediction, 1)
	go func() {
		phonemes, err := a.oracle.Predict(ctx, word)
		done <- prediction{phonemes: phonemes, err: err}
	}()

	select {
	case p := <-done:
		if p.err != nil {
			return nil, p.err
		}
		if len(p.phonemes) == 0 {
			return nil, ErrNoPrediction
		}
		return p.phonemes, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("predict %q: %w", word, ctx.Err())
	}
}

// Table is a fixed word → phonemes oracle, useful for tests and for
// languages whose fallback is a plain pronunciation table.
type Table map[string][]string

func (t Table) Predict(_ context.Context, word string) ([]string, error) {
	phonemes, ok := t[word]
	if !ok {
		return nil, ErrNoPrediction
	}
	return append([]string(nil), phonemes...), nil
}
