package deck

import (
	"inkforge/internal/card"
)

// Rand is the source of uniform draws in [0,1). *math/rand/v2.Rand
// satisfies it; tests substitute a fixed sequence to make sampling
// reproducible.
type Rand interface {
	Float64() float64
}

// Candidate pairs a pool card with its weight against the current deck.
type Candidate struct {
	Card   *card.Card
	Weight float64
}

// Candidates scores the pool against the deck and returns only the
// pickable entries: positive weight, not at the copy cap (Weight already
// returns 0 for capped printings).
func Candidates(cfg Config, pool, deck []*card.Card) []Candidate {
	var out []Candidate
	for _, c := range pool {
		if w := Weight(cfg, c, deck); w > 0 {
			out = append(out, Candidate{Card: c, Weight: w})
		}
	}
	return out
}

// Sample picks one candidate with probability proportional to its weight:
// a draw uniform over the total-weight range, resolved by accumulating
// weights in pool order until the running sum reaches the draw. Callers
// must not invoke it on an empty or zero-weight candidate list; doing so
// is a contract violation, not a runtime condition.
func Sample(rng Rand, cands []Candidate) Candidate {
	total := 0.0
	for _, cd := range cands {
		total += cd.Weight
	}
	if len(cands) == 0 || total <= 0 {
		panic("deck: Sample invoked with no pickable candidates")
	}

	draw := rng.Float64() * total
	acc := 0.0
	for _, cd := range cands {
		acc += cd.Weight
		if acc >= draw {
			return cd
		}
	}
	// Rounding left the accumulator just short; the draw belongs to the
	// final candidate.
	return cands[len(cands)-1]
}
