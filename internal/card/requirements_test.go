package card

import (
	"testing"
)

func character(id int, name string, keywords ...string) *Card {
	return &Card{
		ID:       id,
		Name:     name,
		Title:    name,
		Cost:     3,
		Ink:      InkAmber,
		Inkwell:  true,
		Lore:     1,
		Types:    []Type{TypeCharacter},
		Keywords: keywords,
	}
}

func hasString(set []string, want string) bool {
	for _, s := range set {
		if s == want {
			return true
		}
	}
	return false
}

func TestSanitizeText(t *testing.T) {
	got := SanitizeText("  Chosen   Character\n\tgets +2 Strength. ")
	want := "chosen character gets +2 strength."
	if got != want {
		t.Errorf("SanitizeText = %q, want %q", got, want)
	}
}

func TestKeywordReferenceBecomesRequirement(t *testing.T) {
	fan := character(1, "Evasive Fan")
	fan.Text = "Whenever one of your characters with Evasive quests, draw a card."
	flier := character(2, "Flier", "Evasive")

	NewCatalog([]*Card{fan, flier})

	if !hasString(fan.RequiredKeywords, "evasive") {
		t.Errorf("expected an evasive requirement, got %v", fan.RequiredKeywords)
	}
}

func TestGrantPhraseDoesNotBecomeRequirement(t *testing.T) {
	granter := character(1, "Fairy Godmother")
	granter.Text = "Chosen character gains Evasive until the start of your next turn."
	flier := character(2, "Flier", "Evasive")

	NewCatalog([]*Card{granter, flier})

	if hasString(granter.RequiredKeywords, "evasive") {
		t.Errorf("granting a keyword must not register it as a requirement: %v", granter.RequiredKeywords)
	}
}

func TestOwnKeywordIsNotARequirement(t *testing.T) {
	singer := character(1, "Ariel", "Singer")
	singer.Text = "Singer 5 (This character counts as cost 5 to sing songs.)"

	NewCatalog([]*Card{singer})

	if hasString(singer.RequiredKeywords, "singer") {
		t.Errorf("a card's own keyword reminder text is not a dependency: %v", singer.RequiredKeywords)
	}
	if singer.SingCost != 5 {
		t.Errorf("SingCost = %d, want 5", singer.SingCost)
	}
}

func TestCharacterTypeIsExempt(t *testing.T) {
	c := character(1, "Challenger")
	c.Text = "Chosen character can't quest during their next turn."

	NewCatalog([]*Card{c})

	if len(c.RequiredTypes) != 0 {
		t.Errorf("the character type must never register as a requirement: %v", c.RequiredTypes)
	}
}

func TestTypeReferenceBecomesRequirement(t *testing.T) {
	c := character(1, "Conductor")
	c.Text = "Whenever you play a song, gain 1 lore."

	NewCatalog([]*Card{c})

	if len(c.RequiredTypes) != 1 || c.RequiredTypes[0] != TypeSong {
		t.Errorf("expected a song type requirement, got %v", c.RequiredTypes)
	}
}

func TestNameReferenceBecomesRequirement(t *testing.T) {
	mickey := character(1, "Mickey Mouse")
	fan := character(2, "Pluto")
	fan.Text = "If you have a character named Mickey Mouse in play, this character gets +2 strength."

	NewCatalog([]*Card{mickey, fan})

	if !hasString(fan.RequiredCardNames, "mickey mouse") {
		t.Errorf("expected a name requirement on mickey mouse, got %v", fan.RequiredCardNames)
	}
}

func TestShiftAddsOwnDualNames(t *testing.T) {
	eels := character(1, "Flotsam & Jetsam", "Shift")
	eels.Text = "Shift 4"

	NewCatalog([]*Card{eels})

	if !eels.CanShift {
		t.Fatal("shift keyword should set CanShift")
	}
	if !hasString(eels.RequiredCardNames, "flotsam") || !hasString(eels.RequiredCardNames, "jetsam") {
		t.Errorf("each dual-identity half should be required individually, got %v", eels.RequiredCardNames)
	}
}

func TestEmptyTextYieldsEmptySets(t *testing.T) {
	c := character(1, "Blank")
	other := character(2, "Other", "Ward")

	NewCatalog([]*Card{c, other})

	if len(c.RequiredKeywords)+len(c.RequiredClassifications)+len(c.RequiredTypes)+len(c.RequiredCardNames) != 0 {
		t.Error("a card with no text must have no requirements")
	}
}

func TestRequiredSetsAreDeduplicated(t *testing.T) {
	crew := character(1, "Bosun")
	crew.Classifications = []string{"Pirate"}
	c := character(2, "Captain")
	c.Text = "Your Pirate characters get +1 strength. Whenever a Pirate quests, draw a card."

	NewCatalog([]*Card{crew, c})

	count := 0
	for _, cl := range c.RequiredClassifications {
		if cl == "pirate" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("pirate should appear once, got %v", c.RequiredClassifications)
	}
}
