package phonemize

import "github.com/example/go-phonemize/internal/text"

// PostProcessor rewrites resolved pronunciations within one sentence.
// Implementations may inspect a token's features and its immediate
// neighbors but must never change token count or order, and must be
// idempotent: applying twice equals applying once.
type PostProcessor interface {
	Process(s *text.Sentence)
}

// Identity is the default post-processor: no change.
type Identity struct{}

func (Identity) Process(*text.Sentence) {}
