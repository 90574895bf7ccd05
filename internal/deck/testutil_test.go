package deck

import (
	"fmt"

	"inkforge/internal/card"
)

// fixedRand feeds Sample a predetermined cycle of draw values so tests are
// reproducible.
type fixedRand struct {
	vals []float64
	pos  int
}

func newFixedRand(vals ...float64) *fixedRand {
	if len(vals) == 0 {
		vals = []float64{0.5}
	}
	return &fixedRand{vals: vals}
}

func (r *fixedRand) Float64() float64 {
	v := r.vals[r.pos%len(r.vals)]
	r.pos++
	return v
}

// --- Card builders ---

// vanillaCard is a plain character with no text and no dependencies.
func vanillaCard(id int, name string, cost int, ink card.Ink) *card.Card {
	return &card.Card{
		ID:      id,
		Name:    name,
		Title:   name,
		Cost:    cost,
		Ink:     ink,
		Inkwell: true,
		Lore:    1,
		Types:   []card.Type{card.TypeCharacter},
	}
}

func songCard(id int, name string, cost int, ink card.Ink) *card.Card {
	c := vanillaCard(id, name, cost, ink)
	c.Types = []card.Type{card.TypeAction, card.TypeSong}
	c.Lore = 0
	return c
}

func singerCard(id int, name string, cost, singCost int, ink card.Ink) *card.Card {
	c := vanillaCard(id, name, cost, ink)
	c.Keywords = []string{card.KeywordSinger}
	c.Text = fmt.Sprintf("Singer %d (This character counts as cost %d to sing songs.)", singCost, singCost)
	return c
}

func shiftCard(id int, name string, cost int, ink card.Ink) *card.Card {
	c := vanillaCard(id, name, cost, ink)
	c.Keywords = []string{card.KeywordShift}
	c.CanShift = true
	return c
}

// catalogOf finalizes the given cards into a catalog, running the same
// derivation pass production uses.
func catalogOf(cards ...*card.Card) *card.Catalog {
	return card.NewCatalog(cards)
}

// twoInkPool builds n vanilla cards per ink with sequential ids starting
// at base.
func twoInkPool(base, n int, inks ...card.Ink) []*card.Card {
	var cards []*card.Card
	id := base
	for _, ink := range inks {
		for i := 0; i < n; i++ {
			cards = append(cards, vanillaCard(id, fmt.Sprintf("%s Scout %d", ink, i+1), 1+i%5, ink))
			id++
		}
	}
	return cards
}

func countID(d []*card.Card, id int) int {
	n := 0
	for _, c := range d {
		if c.ID == id {
			n++
		}
	}
	return n
}

func containsID(d []*card.Card, id int) bool {
	return countID(d, id) > 0
}
