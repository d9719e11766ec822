package phonemize

import (
	"github.com/example/go-phonemize/internal/lexicon"
	"github.com/example/go-phonemize/internal/text"
)

// selectCandidate picks exactly one pronunciation from a non-empty
// candidate list. The priority order is fixed:
//
//  1. An explicit word_N index within [1, len] wins outright.
//  2. Otherwise the candidate whose feature preferences are all satisfied
//     by the token's features and which satisfies the most of them; ties
//     break by storage rank.
//  3. Otherwise the first stored candidate.
func selectCandidate(tok *text.Token, candidates []lexicon.Candidate) lexicon.Candidate {
	if tok.PronIndex >= 1 && tok.PronIndex <= len(candidates) {
		return candidates[tok.PronIndex-1]
	}

	best := -1
	bestScore := -1
	for i, cand := range candidates {
		score, ok := featureScore(tok, cand)
		if !ok {
			continue
		}
		if score > bestScore {
			best = i
			bestScore = score
		}
	}
	if best >= 0 {
		return candidates[best]
	}

	return candidates[0]
}

// featureScore counts the preference keys satisfied by the token. A
// candidate with any contradicted or missing key is ineligible for the
// feature branch; an empty preference map is eligible with score zero.
func featureScore(tok *text.Token, cand lexicon.Candidate) (int, bool) {
	score := 0
	for k, want := range cand.Preferred {
		got, ok := tok.Features[k]
		if !ok || got != want {
			return 0, false
		}
		score++
	}
	return score, true
}
