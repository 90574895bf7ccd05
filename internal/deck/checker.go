package deck

import (
	"strings"

	"inkforge/internal/card"
)

// Satisfied reports whether the deck supports every dependency the card
// declares: its derived required sets plus the shift-anchor and
// sing-threshold side conditions. A card never satisfies its own
// requirements; another copy of the same printing does not count either.
func Satisfied(c *card.Card, deck []*card.Card) bool {
	return keywordsMet(c, deck) &&
		classificationsMet(c, deck) &&
		typesMet(c, deck) &&
		namesMet(c, deck) &&
		shiftMet(c, deck) &&
		singMet(c, deck)
}

// Each dimension is unconstrained when its required set is empty, and is
// satisfied when any required tag is exhibited by any other-identity card.

func keywordsMet(c *card.Card, deck []*card.Card) bool {
	if len(c.RequiredKeywords) == 0 {
		return true
	}
	for _, o := range deck {
		if o.ID == c.ID {
			continue
		}
		for _, kw := range c.RequiredKeywords {
			if o.HasKeyword(kw) {
				return true
			}
		}
	}
	return false
}

func classificationsMet(c *card.Card, deck []*card.Card) bool {
	if len(c.RequiredClassifications) == 0 {
		return true
	}
	for _, o := range deck {
		if o.ID == c.ID {
			continue
		}
		for _, cl := range c.RequiredClassifications {
			if o.HasClassification(cl) {
				return true
			}
		}
	}
	return false
}

func typesMet(c *card.Card, deck []*card.Card) bool {
	if len(c.RequiredTypes) == 0 {
		return true
	}
	for _, o := range deck {
		if o.ID == c.ID {
			continue
		}
		for _, t := range c.RequiredTypes {
			if o.HasType(t) {
				return true
			}
		}
	}
	return false
}

func namesMet(c *card.Card, deck []*card.Card) bool {
	if len(c.RequiredCardNames) == 0 {
		return true
	}
	for _, o := range deck {
		if o.ID == c.ID {
			continue
		}
		for _, part := range o.NameParts() {
			part = strings.ToLower(part)
			for _, want := range c.RequiredCardNames {
				if part == want {
					return true
				}
			}
		}
	}
	return false
}

// shiftMet holds when a shift card has a strictly cheaper same-named
// printing in the deck, or the universal wildcard.
func shiftMet(c *card.Card, deck []*card.Card) bool {
	if !c.CanShift {
		return true
	}
	for _, o := range deck {
		if o.ID == c.ID {
			continue
		}
		if strings.EqualFold(o.Name, card.ShiftWildcard) {
			return true
		}
		if o.Cost < c.Cost && sharesName(c, o) {
			return true
		}
	}
	return false
}

// singMet holds when a singer has at least one song at or under its
// threshold. A singer keyword without a parsed threshold imposes nothing.
func singMet(c *card.Card, deck []*card.Card) bool {
	if c.SingCost <= 0 {
		return true
	}
	for _, o := range deck {
		if o.ID == c.ID {
			continue
		}
		if o.IsSong() && o.Cost <= c.SingCost {
			return true
		}
	}
	return false
}

// sharesName reports whether two cards share any identity half
// (case-insensitive).
func sharesName(a, b *card.Card) bool {
	for _, ap := range a.NameParts() {
		for _, bp := range b.NameParts() {
			if strings.EqualFold(ap, bp) {
				return true
			}
		}
	}
	return false
}
