package deck

import (
	"math/rand/v2"
	"slices"

	"inkforge/internal/card"
	"inkforge/internal/trace"
)

// DefaultRetries is the default regeneration budget.
const DefaultRetries = 10

// Composer drives repeated sampling to reach a full deck, fixpoint repair
// of unmet requirements, and bounded retry-with-regeneration. One Build
// call runs synchronously to completion; the in-progress deck is owned
// exclusively by that call.
type Composer struct {
	Catalog *card.Catalog
	Config  Config
	Rand    Rand
	Log     trace.Logger
	Retries int
}

// NewComposer returns a composer with the default tuning, retry budget,
// process-seeded randomness, and an in-memory trace.
func NewComposer(catalog *card.Catalog) *Composer {
	return &Composer{
		Catalog: catalog,
		Config:  DefaultConfig(),
		Rand:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		Log:     trace.NewMemoryLogger(),
		Retries: DefaultRetries,
	}
}

// Build composes a deck restricted to the given inks, optionally seeded
// with a continuation deck. It returns a full deck on success, or whatever
// deck survived once the retry budget ran out; a requested color set
// matching zero catalog cards yields the seed unchanged (an empty deck for
// a fresh request) with no retries consumed. Callers interpret a short
// deck as a soft failure.
func (cp *Composer) Build(inks []card.Ink, seed []*card.Card) []*card.Card {
	deck := slices.Clone(seed)
	retries := cp.Retries
	pass := 0

	for {
		pass++
		pool := cp.Catalog.ByInks(inks)
		if len(pool) == 0 {
			cp.Log.Log(trace.NewPoolEmptyEvent(pass, len(deck)))
			return deck
		}

		deck = cp.fill(pass, pool, deck)
		deck = cp.repair(pass, deck)

		if len(deck) >= cp.Config.DeckSize || retries <= 0 {
			cp.Log.Log(trace.NewCompleteEvent(pass, len(deck)))
			return deck
		}

		retries--
		// Regenerate from the survivors, narrowed to the inks actually
		// still present. A fully wiped deck keeps the requested inks,
		// since there is nothing left to narrow to.
		if len(deck) > 0 {
			inks = inksPresent(deck, inks)
		}
		cp.Log.Log(trace.NewRetryEvent(pass, retries, len(deck)))
	}
}

// fill appends one sampled card per iteration until the deck reaches the
// target size, or until nothing in the pool is pickable.
func (cp *Composer) fill(pass int, pool, deck []*card.Card) []*card.Card {
	for len(deck) < cp.Config.DeckSize {
		cands := Candidates(cp.Config, pool, deck)
		if len(cands) == 0 {
			cp.Log.Log(trace.NewPoolEmptyEvent(pass, len(deck)))
			return deck
		}
		pick := Sample(cp.Rand, cands)
		deck = append(deck, pick.Card)
		cp.Log.Log(trace.NewPickEvent(pass, pick.Card.String(), pick.Weight, len(deck)))
	}
	return deck
}

// repair removes every copy of each identity whose requirements the deck
// does not meet, rescanning until a full pass removes nothing. Removing
// one card can invalidate another's previously-satisfied requirement, so
// a single pass is not enough.
func (cp *Composer) repair(pass int, deck []*card.Card) []*card.Card {
	for {
		unmet := make(map[int]bool)
		seen := make(map[int]bool)
		for _, c := range deck {
			if seen[c.ID] {
				continue
			}
			seen[c.ID] = true
			if !Satisfied(c, deck) {
				unmet[c.ID] = true
				cp.Log.Log(trace.NewRemoveEvent(pass, c.String(), len(deck)))
			}
		}
		if len(unmet) == 0 {
			return deck
		}

		next := make([]*card.Card, 0, len(deck))
		for _, c := range deck {
			if !unmet[c.ID] {
				next = append(next, c)
			}
		}
		cp.Log.Log(trace.NewRepairPassEvent(pass, len(deck)-len(next), len(next)))
		deck = next
	}
}

// inksPresent filters the requested inks down to those still represented
// in the deck, preserving request order.
func inksPresent(deck []*card.Card, requested []card.Ink) []card.Ink {
	var out []card.Ink
	for _, ink := range requested {
		for _, c := range deck {
			if c.Ink == ink {
				out = append(out, ink)
				break
			}
		}
	}
	return out
}
