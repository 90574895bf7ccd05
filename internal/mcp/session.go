package mcp

import (
	"encoding/json"
	"sync"

	"inkforge/internal/card"
	"inkforge/internal/deck"
	"inkforge/internal/trace"
)

// Session holds the catalog and the most recent generation result for one
// stdio process.
type Session struct {
	mu sync.Mutex

	catalogPath string
	catalog     *card.Catalog
	config      deck.Config

	lastDeck  []*card.Card
	lastInks  []card.Ink
	lastTrace *trace.MemoryLogger
}

// activeSession is the singleton session (one per stdio process).
var activeSession = &Session{config: deck.DefaultConfig()}

// SetCatalogFile sets the path to the catalog JSON dump, loaded lazily on
// first tool use.
func SetCatalogFile(path string) {
	activeSession.catalogPath = path
}

// SetConfig overrides the default weight tuning.
func SetConfig(cfg deck.Config) {
	activeSession.config = cfg
}

// loadCatalog loads and caches the catalog.
func (s *Session) loadCatalog() (*card.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.catalog != nil {
		return s.catalog, nil
	}
	ct, err := card.LoadCatalog(s.catalogPath)
	if err != nil {
		return nil, err
	}
	s.catalog = ct
	return ct, nil
}

// DeckView is the JSON envelope returned by generate_deck and get_deck.
type DeckView struct {
	Inks     []string         `json:"inks"`
	Size     int              `json:"size"`
	Complete bool             `json:"complete"`
	Cards    []deck.CardEntry `json:"cards"`
	Trace    []string         `json:"trace,omitempty"`
}

// CardView is the JSON envelope returned by card_info.
type CardView struct {
	ID                      int      `json:"id"`
	Title                   string   `json:"title"`
	Cost                    int      `json:"cost"`
	Ink                     string   `json:"ink"`
	Inkwell                 bool     `json:"inkwell"`
	Lore                    int      `json:"lore"`
	Types                   []string `json:"types"`
	Keywords                []string `json:"keywords,omitempty"`
	Classifications         []string `json:"classifications,omitempty"`
	Text                    string   `json:"text,omitempty"`
	RequiredKeywords        []string `json:"required_keywords,omitempty"`
	RequiredClassifications []string `json:"required_classifications,omitempty"`
	RequiredTypes           []string `json:"required_types,omitempty"`
	RequiredCardNames       []string `json:"required_card_names,omitempty"`
}

func (s *Session) deckView(withTrace bool) DeckView {
	s.mu.Lock()
	defer s.mu.Unlock()
	view := DeckView{
		Size:     len(s.lastDeck),
		Complete: len(s.lastDeck) == s.config.DeckSize,
		Cards:    deck.Summarize(s.lastDeck),
	}
	for _, ink := range s.lastInks {
		view.Inks = append(view.Inks, ink.String())
	}
	if withTrace && s.lastTrace != nil {
		for _, e := range s.lastTrace.Events() {
			view.Trace = append(view.Trace, trace.FormatEvent(e))
		}
	}
	return view
}

func cardView(c *card.Card) CardView {
	view := CardView{
		ID:                      c.ID,
		Title:                   c.String(),
		Cost:                    c.Cost,
		Ink:                     c.Ink.String(),
		Inkwell:                 c.Inkwell,
		Lore:                    c.Lore,
		Keywords:                c.Keywords,
		Classifications:         c.Classifications,
		Text:                    c.Text,
		RequiredKeywords:        c.RequiredKeywords,
		RequiredClassifications: c.RequiredClassifications,
		RequiredCardNames:       c.RequiredCardNames,
	}
	for _, t := range c.Types {
		view.Types = append(view.Types, t.String())
	}
	for _, t := range c.RequiredTypes {
		view.RequiredTypes = append(view.RequiredTypes, t.String())
	}
	return view
}

func respondJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return `{"error": "failed to marshal response"}`
	}
	return string(data)
}
