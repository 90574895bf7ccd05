package card

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Catalog is the full set of available printings, indexed for lookup. It is
// read-only after Finalize.
type Catalog struct {
	Cards []*Card

	byID   map[int]*Card
	byName map[string][]*Card
}

// cardJSON is the on-disk catalog record.
type cardJSON struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Title           string   `json:"title"`
	Cost            int      `json:"cost"`
	Ink             string   `json:"ink"`
	Inkwell         bool     `json:"inkwell"`
	Lore            int      `json:"lore"`
	Types           []string `json:"types"`
	Keywords        []string `json:"keywords,omitempty"`
	Classifications []string `json:"classifications,omitempty"`
	Text            string   `json:"text,omitempty"`
}

// LoadCatalog reads a JSON catalog dump and finalizes it.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []cardJSON
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse catalog JSON: %w", err)
	}

	cards := make([]*Card, 0, len(records))
	for _, rec := range records {
		c, err := rec.toCard()
		if err != nil {
			return nil, fmt.Errorf("card %d (%s): %w", rec.ID, rec.Name, err)
		}
		cards = append(cards, c)
	}
	return NewCatalog(cards), nil
}

func (rec cardJSON) toCard() (*Card, error) {
	ink, err := ParseInk(rec.Ink)
	if err != nil {
		return nil, err
	}
	c := &Card{
		ID:              rec.ID,
		Name:            rec.Name,
		Title:           rec.Title,
		Cost:            rec.Cost,
		Ink:             ink,
		Inkwell:         rec.Inkwell,
		Lore:            rec.Lore,
		Keywords:        rec.Keywords,
		Classifications: rec.Classifications,
		Text:            rec.Text,
	}
	for _, ts := range rec.Types {
		t, err := ParseType(ts)
		if err != nil {
			return nil, err
		}
		c.Types = append(c.Types, t)
	}
	return c, nil
}

// NewCatalog builds a finalized catalog from in-memory cards.
func NewCatalog(cards []*Card) *Catalog {
	ct := &Catalog{Cards: cards}
	ct.Finalize()
	return ct
}

// Finalize runs the one-time derivation pass: text sanitization, mechanical
// flags, required sets, and lookup indexes. Cards are never mutated after
// this returns.
func (ct *Catalog) Finalize() {
	for _, c := range ct.Cards {
		deriveFlags(c)
	}
	u := buildUniverse(ct.Cards)
	ct.byID = make(map[int]*Card, len(ct.Cards))
	ct.byName = make(map[string][]*Card)
	for _, c := range ct.Cards {
		deriveRequirements(c, u)
		ct.byID[c.ID] = c
		key := strings.ToLower(c.Name)
		ct.byName[key] = append(ct.byName[key], c)
	}
}

// ByID returns the printing with the given id, or nil.
func (ct *Catalog) ByID(id int) *Card {
	return ct.byID[id]
}

// ByName returns every printing sharing the given base name
// (case-insensitive).
func (ct *Catalog) ByName(name string) []*Card {
	return ct.byName[strings.ToLower(name)]
}

// ByInks returns the cards whose ink is in the given set, in catalog order.
func (ct *Catalog) ByInks(inks []Ink) []*Card {
	var out []*Card
	for _, c := range ct.Cards {
		for _, ink := range inks {
			if c.Ink == ink {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

func (ct *Catalog) Len() int { return len(ct.Cards) }
