package deck

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"inkforge/internal/card"
)

var (
	drawRE     = regexp.MustCompile(`draws? (a|\d+) cards?`)
	banishRE   = regexp.MustCompile(`\bbanish\b`)
	bounceRE   = regexp.MustCompile(`return[^.]*to (?:their|its|your) [^.]*hand`)
	gainLoreRE = regexp.MustCompile(`gains? (\d+) lore`)
)

const banishAllPhrase = "banish all"
const rampPhrase = "into your inkwell"

// secondaryTypes are the types with soft quotas.
var secondaryTypes = []card.Type{card.TypeSong, card.TypeItem, card.TypeLocation, card.TypeAction}

// Weight scores a candidate's desirability against the current partial
// deck. It is pure: no randomness, no state beyond its arguments. A result
// of zero means the card is not currently pickable; the result is never
// negative.
func Weight(cfg Config, c *card.Card, deck []*card.Card) float64 {
	copies := CountCopies(deck, c.ID)
	if copies >= cfg.MaxCopies {
		return 0
	}

	// Base components: cheap, inkable, high-lore cards with real ability
	// text start ahead.
	w := cfg.BaseWeight / math.Pow(float64(c.Cost+1), cfg.CostExponent)
	if c.Inkwell {
		w *= cfg.InkwellBonus
	}
	if c.Lore > 0 {
		w *= math.Pow(cfg.LoreBase, float64(c.Lore))
	}
	if c.SanitizedText != "" {
		w *= cfg.TextBonus
	} else {
		w *= cfg.NoTextPenalty
	}
	w *= cfg.typeFactor(c)

	// Soft quotas: under the ceiling, a secondary type is boosted in
	// proportion to how many deck cards declare it as a requirement.
	for _, t := range secondaryTypes {
		if !c.HasType(t) {
			continue
		}
		quota, ok := cfg.quotaFor(t)
		if !ok || countType(deck, t) >= quota {
			continue
		}
		if demand := typeDemand(deck, t, c.ID); demand > 0 {
			w *= math.Pow(cfg.TypeNeedBase, float64(demand))
		}
	}

	// Cross-synergy: each requirement dimension already covered by the
	// deck compounds multiplicatively.
	if len(c.RequiredKeywords) > 0 && keywordsMet(c, deck) {
		w *= cfg.KeywordSynergy
	}
	if len(c.RequiredClassifications) > 0 && classificationsMet(c, deck) {
		w *= cfg.ClassificationSynergy
	}
	if len(c.RequiredTypes) > 0 && typesMet(c, deck) {
		w *= cfg.TypeSynergy
	}
	if len(c.RequiredCardNames) > 0 && namesMet(c, deck) {
		w *= cfg.NameSynergy
	}

	// Late-deck tightening: stop seeding unresolved dependencies near 60.
	if len(deck) >= cfg.LateDeckSize && !Satisfied(c, deck) {
		w *= cfg.UnmetLatePenalty
	}

	// Shift shaping.
	if anchorsShift(c, deck) {
		w *= cfg.ShiftAnchorBoost
	}
	if c.CanShift && shiftMet(c, deck) {
		w *= cfg.ShiftReadyBoost
	}

	// Singer/song shaping.
	if c.IsSong() {
		w *= songBoost(cfg, c, deck)
	}

	// Repeat-count shaping: ((K-N)/K)^2, strictly decreasing toward the
	// copy cap.
	if copies > 0 {
		k := cfg.CopyCurveBase
		f := (k - float64(copies)) / k
		w *= f * f
	}

	// Known-good phrase bonuses.
	text := c.SanitizedText
	if qty := drawQuantity(text); qty > 0 {
		w *= cfg.DrawBonus * float64(qty)
	}
	if strings.Contains(text, banishAllPhrase) {
		w *= cfg.BanishAllBonus
	} else if banishRE.MatchString(text) {
		w *= cfg.BanishBonus
	}
	if bounceRE.MatchString(text) {
		w *= cfg.BounceBonus
	}
	if strings.Contains(text, rampPhrase) {
		w *= cfg.RampBonus
	}

	// The lore numeral term is the one additive component.
	if m := gainLoreRE.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		w += cfg.LorePointBonus * float64(n)
	}

	if w < 0 {
		w = 0
	}
	return w
}

// anchorsShift reports whether the candidate would serve as a lower-cost
// same-name anchor for a shift card already in the deck. The wildcard
// anchors every shift card.
func anchorsShift(c *card.Card, deck []*card.Card) bool {
	wildcard := strings.EqualFold(c.Name, card.ShiftWildcard)
	for _, o := range deck {
		if !o.CanShift || o.ID == c.ID {
			continue
		}
		if wildcard {
			return true
		}
		if c.Cost < o.Cost && sharesName(c, o) {
			return true
		}
	}
	return false
}

// songBoost favors songs that singers in the deck can actually perform,
// growing while the deck holds fewer songs than singers.
func songBoost(cfg Config, c *card.Card, deck []*card.Card) float64 {
	singers, songs := 0, 0
	exact, under := false, false
	for _, o := range deck {
		if o.ID == c.ID {
			continue
		}
		if o.IsSong() {
			songs++
		}
		if o.IsSinger() {
			singers++
			if o.SingCost == c.Cost {
				exact = true
			} else if o.SingCost > c.Cost {
				under = true
			}
		}
	}
	switch {
	case exact:
		f := cfg.SingerSongBoost
		if songs < singers {
			f *= float64(1 + singers - songs)
		}
		return f
	case under:
		// Still usable if a cheaper singer is swapped in later.
		return cfg.CheapSongBoost
	default:
		return 1.0
	}
}

// drawQuantity returns the number of cards drawn by a draw phrase, or 0.
func drawQuantity(text string) int {
	m := drawRE.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	if m[1] == "a" {
		return 1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// CountCopies counts deck entries with the given printing id.
func CountCopies(deck []*card.Card, id int) int {
	n := 0
	for _, c := range deck {
		if c.ID == id {
			n++
		}
	}
	return n
}

func countType(deck []*card.Card, t card.Type) int {
	n := 0
	for _, c := range deck {
		if c.HasType(t) {
			n++
		}
	}
	return n
}

// typeDemand counts deck cards of another identity that declare t as a
// required type.
func typeDemand(deck []*card.Card, t card.Type, excludeID int) int {
	n := 0
	for _, c := range deck {
		if c.ID == excludeID {
			continue
		}
		for _, rt := range c.RequiredTypes {
			if rt == t {
				n++
				break
			}
		}
	}
	return n
}
