package lorcast

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"inkforge/internal/card"
)

// Set is a released card set.
type Set struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// APICard is the raw card record returned by the catalog API.
type APICard struct {
	Name            string   `json:"name"`
	Version         string   `json:"version"`
	Cost            int      `json:"cost"`
	Ink             string   `json:"ink"`
	Inkwell         bool     `json:"inkwell"`
	Lore            int      `json:"lore"`
	Type            []string `json:"type"`
	Keywords        []string `json:"keywords"`
	Classifications []string `json:"classifications"`
	Text            string   `json:"text"`
}

// toCard maps an API record into a catalog card. Records with unknown inks
// or types (promo oddities) are reported, not silently dropped.
func (ac APICard) toCard(id int) (*card.Card, error) {
	ink, err := card.ParseInk(ac.Ink)
	if err != nil {
		return nil, err
	}
	c := &card.Card{
		ID:              id,
		Name:            ac.Name,
		Title:           ac.Name,
		Cost:            ac.Cost,
		Ink:             ink,
		Inkwell:         ac.Inkwell,
		Lore:            ac.Lore,
		Keywords:        ac.Keywords,
		Classifications: ac.Classifications,
		Text:            ac.Text,
	}
	if ac.Version != "" {
		c.Title = ac.Name + " - " + ac.Version
	}
	for _, ts := range ac.Type {
		t, err := card.ParseType(ts)
		if err != nil {
			return nil, err
		}
		c.Types = append(c.Types, t)
	}
	return c, nil
}

// FetchAll downloads every set and returns a finalized catalog. Printings
// get sequential ids in fetch order; the API keys printings by set and
// collector number, which the composer never needs.
func (c *Client) FetchAll(ctx context.Context) (*card.Catalog, error) {
	sets, err := c.Sets(ctx)
	if err != nil {
		return nil, err
	}

	var cards []*card.Card
	nextID := 1
	for _, set := range sets {
		apiCards, err := c.CardsInSet(ctx, set.Code)
		if err != nil {
			return nil, err
		}
		for _, ac := range apiCards {
			cc, err := ac.toCard(nextID)
			if err != nil {
				return nil, fmt.Errorf("set %s, card %q: %w", set.Code, ac.Name, err)
			}
			cards = append(cards, cc)
			nextID++
		}
	}
	return card.NewCatalog(cards), nil
}

// WriteCatalog writes a catalog as the JSON dump LoadCatalog reads.
func WriteCatalog(path string, catalog *card.Catalog) error {
	type rec struct {
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

	records := make([]rec, 0, catalog.Len())
	for _, cc := range catalog.Cards {
		r := rec{
			ID:              cc.ID,
			Name:            cc.Name,
			Title:           cc.Title,
			Cost:            cc.Cost,
			Ink:             cc.Ink.String(),
			Inkwell:         cc.Inkwell,
			Lore:            cc.Lore,
			Keywords:        cc.Keywords,
			Classifications: cc.Classifications,
			Text:            cc.Text,
		}
		for _, t := range cc.Types {
			r.Types = append(r.Types, t.String())
		}
		records = append(records, r)
	}

	var sb strings.Builder
	enc := json.NewEncoder(&sb)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(sb.String()), 0o644)
}
