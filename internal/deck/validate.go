package deck

import (
	"fmt"

	"inkforge/internal/card"
)

// Validate checks the structural invariants of a produced deck: no more
// than the copy cap per printing, every ink within the allowed set, and
// size not exceeding the target. A short deck is not an error here; it is
// the exhausted-retries soft failure the caller surfaces.
func Validate(cfg Config, d []*card.Card, inks []card.Ink) error {
	if len(d) > cfg.DeckSize {
		return fmt.Errorf("deck has %d cards, limit %d", len(d), cfg.DeckSize)
	}
	counts := make(map[int]int)
	for _, c := range d {
		counts[c.ID]++
		if counts[c.ID] > cfg.MaxCopies {
			return fmt.Errorf("more than %d copies of %s (id %d)", cfg.MaxCopies, c, c.ID)
		}
		ok := false
		for _, ink := range inks {
			if c.Ink == ink {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("%s has ink %s outside the allowed set", c, c.Ink)
		}
	}
	return nil
}
