package web

import (
	"encoding/json"
	"net/http"
	"os"

	"gopkg.in/yaml.v3"

	"inkforge/internal/deck"
)

// DeckInfo is the JSON representation of a saved deck for /api/decks.
type DeckInfo struct {
	Number int              `json:"number"`
	Name   string           `json:"name"`
	Inks   []string         `json:"inks,omitempty"`
	Cards  []deck.CardEntry `json:"cards"`
}

func (s *Server) handleDecks(w http.ResponseWriter, r *http.Request) {
	data, err := os.ReadFile(s.decksFile)
	if err != nil {
		http.Error(w, "could not read decks file", http.StatusInternalServerError)
		return
	}

	var df deck.DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		http.Error(w, "could not parse decks file", http.StatusInternalServerError)
		return
	}

	var decks []DeckInfo
	for i, d := range df.Decks {
		decks = append(decks, DeckInfo{
			Number: i + 1,
			Name:   d.Name,
			Inks:   d.Inks,
			Cards:  d.Cards,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(decks)
}
