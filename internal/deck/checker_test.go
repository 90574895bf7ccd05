package deck

import (
	"testing"

	"inkforge/internal/card"
)

func TestSatisfiedEmptyRequirements(t *testing.T) {
	c := vanillaCard(1, "Plain Character", 2, card.InkAmber)
	if !Satisfied(c, nil) {
		t.Error("card with no requirements should be satisfied by an empty deck")
	}
}

func TestKeywordRequirement(t *testing.T) {
	c := vanillaCard(1, "Evasive Fan", 2, card.InkAmber)
	c.RequiredKeywords = []string{"evasive"}

	if Satisfied(c, []*card.Card{c}) {
		t.Error("requirement should not be satisfied by the card itself")
	}

	flier := vanillaCard(2, "Flier", 3, card.InkAmber)
	flier.Keywords = []string{"Evasive"}
	if !Satisfied(c, []*card.Card{c, flier}) {
		t.Error("another card bearing the keyword should satisfy the requirement")
	}
}

func TestSameIdentityDoesNotSatisfy(t *testing.T) {
	c := vanillaCard(1, "Loner", 2, card.InkAmber)
	c.Keywords = []string{"Ward"}
	c.RequiredKeywords = []string{"ward"}

	// Four copies of the same printing; no other identity bears Ward.
	deck := []*card.Card{c, c, c, c}
	if Satisfied(c, deck) {
		t.Error("copies of the same printing must not satisfy their own requirement")
	}
}

func TestClassificationAndTypeRequirements(t *testing.T) {
	c := vanillaCard(1, "Pirate Captain", 4, card.InkRuby)
	c.RequiredClassifications = []string{"pirate"}
	c.RequiredTypes = []card.Type{card.TypeSong}

	crew := vanillaCard(2, "Deckhand", 1, card.InkRuby)
	crew.Classifications = []string{"Pirate"}
	tune := songCard(3, "Sea Shanty", 2, card.InkRuby)

	if Satisfied(c, []*card.Card{c, crew}) {
		t.Error("type requirement should still be unmet")
	}
	if !Satisfied(c, []*card.Card{c, crew, tune}) {
		t.Error("both dimensions covered, requirement should hold")
	}
}

func TestNameRequirementMatchesDualNameHalves(t *testing.T) {
	c := vanillaCard(1, "Ursula", 5, card.InkEmerald)
	c.RequiredCardNames = []string{"flotsam"}

	eels := vanillaCard(2, "Flotsam & Jetsam", 4, card.InkEmerald)
	if !Satisfied(c, []*card.Card{c, eels}) {
		t.Error("a dual-named card should satisfy a requirement on either half")
	}
}

func TestShiftRequiresCheaperAnchor(t *testing.T) {
	shifted := shiftCard(1, "Elsa", 6, card.InkAmethyst)

	cheap := vanillaCard(2, "Elsa", 3, card.InkAmethyst)
	expensive := vanillaCard(3, "Elsa", 7, card.InkAmethyst)
	unrelated := vanillaCard(4, "Olaf", 1, card.InkAmethyst)

	if shiftMet(shifted, []*card.Card{shifted, unrelated}) {
		t.Error("no same-named card: shift requirement must fail")
	}
	if shiftMet(shifted, []*card.Card{shifted, expensive}) {
		t.Error("same name but not cheaper: shift requirement must fail")
	}
	if !shiftMet(shifted, []*card.Card{shifted, cheap}) {
		t.Error("cheaper same-named printing should anchor the shift")
	}
}

func TestShiftWildcardAnchorsAnything(t *testing.T) {
	shifted := shiftCard(1, "Elsa", 6, card.InkAmethyst)
	morph := vanillaCard(2, card.ShiftWildcard, 2, card.InkAmethyst)

	if !shiftMet(shifted, []*card.Card{shifted, morph}) {
		t.Error("the wildcard should anchor any shift card")
	}
}

func TestSingThreshold(t *testing.T) {
	singer := vanillaCard(1, "Ariel", 3, card.InkAmber)
	singer.Keywords = []string{card.KeywordSinger}
	singer.SingCost = 5

	costly := songCard(2, "Grand Aria", 6, card.InkAmber)
	fitting := songCard(3, "Part of Your World", 5, card.InkAmber)

	if singMet(singer, []*card.Card{singer, costly}) {
		t.Error("a song above the threshold must not satisfy the singer")
	}
	if !singMet(singer, []*card.Card{singer, fitting}) {
		t.Error("a song at the threshold should satisfy the singer")
	}

	mute := vanillaCard(4, "Quiet One", 2, card.InkAmber)
	if !singMet(mute, nil) {
		t.Error("a non-singer imposes no sing requirement")
	}
}
