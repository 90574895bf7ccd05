package deck

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"inkforge/internal/card"
)

// DeckFile represents the top-level YAML structure.
type DeckFile struct {
	Decks []DeckEntry `yaml:"decks"`
}

// DeckEntry represents a single deck in the YAML file.
type DeckEntry struct {
	Name  string      `yaml:"name"`
	Inks  []string    `yaml:"inks,omitempty"`
	Cards []CardEntry `yaml:"cards"`
}

// CardEntry represents a printing and its count in a deck.
type CardEntry struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// Summarize groups a deck into per-printing entries, preserving first-seen
// order.
func Summarize(d []*card.Card) []CardEntry {
	var entries []CardEntry
	index := make(map[int]int)
	for _, c := range d {
		if i, ok := index[c.ID]; ok {
			entries[i].Count++
			continue
		}
		index[c.ID] = len(entries)
		entries = append(entries, CardEntry{ID: c.ID, Name: c.String(), Count: 1})
	}
	return entries
}

// WriteDeckFile appends a deck under the given name to a YAML deck file,
// creating the file if needed.
func WriteDeckFile(path, name string, inks []card.Ink, d []*card.Card) error {
	var df DeckFile
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &df); err != nil {
			return fmt.Errorf("parse deck YAML: %w", err)
		}
	}

	entry := DeckEntry{Name: name, Cards: Summarize(d)}
	for _, ink := range inks {
		entry.Inks = append(entry.Inks, ink.String())
	}
	df.Decks = append(df.Decks, entry)

	out, err := yaml.Marshal(df)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o644)
}

// ParseDeckFile parses a YAML deck file and returns a map of deck name →
// card slice, resolving printings against the catalog.
func ParseDeckFile(path string, catalog *card.Catalog) (map[string][]*card.Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parse deck YAML: %w", err)
	}

	decks := make(map[string][]*card.Card)
	for _, entry := range df.Decks {
		var cards []*card.Card
		for _, ce := range entry.Cards {
			c := catalog.ByID(ce.ID)
			if c == nil {
				return nil, fmt.Errorf("deck %q: unknown printing id %d (%s)", entry.Name, ce.ID, ce.Name)
			}
			for i := 0; i < ce.Count; i++ {
				cards = append(cards, c)
			}
		}
		decks[entry.Name] = cards
	}
	return decks, nil
}
