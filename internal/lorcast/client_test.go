package lorcast

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"inkforge/internal/card"
)

func newTestAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /sets", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"code":"1","name":"The First Chapter"}]}`))
	})
	mux.HandleFunc("GET /sets/1/cards", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"name":"Ariel","version":"Spectacular Singer","cost":3,"ink":"Amber","inkwell":true,"lore":1,
			 "type":["Character"],"keywords":["Singer"],"classifications":["Princess"],
			 "text":"Singer 5 (This character counts as cost 5 to sing songs.)"},
			{"name":"Part of Your World","version":"","cost":3,"ink":"Amber","inkwell":false,"lore":0,
			 "type":["Action","Song"],"text":"Return a character card from your discard to your hand."}
		]`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchAll(t *testing.T) {
	srv := newTestAPI(t)
	client := NewClientWithBaseURL(srv.URL)

	catalog, err := client.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if catalog.Len() != 2 {
		t.Fatalf("expected 2 printings, got %d", catalog.Len())
	}

	ariel := catalog.ByID(1)
	if ariel == nil || ariel.Name != "Ariel" {
		t.Fatalf("printing 1 wrong: %+v", ariel)
	}
	if ariel.Title != "Ariel - Spectacular Singer" {
		t.Errorf("Title = %q", ariel.Title)
	}
	if ariel.Ink != card.InkAmber || !ariel.Inkwell {
		t.Errorf("ink fields wrong: %+v", ariel)
	}
	// The fetched catalog arrives finalized.
	if ariel.SingCost != 5 {
		t.Errorf("SingCost = %d, want 5", ariel.SingCost)
	}

	song := catalog.ByID(2)
	if !song.HasType(card.TypeSong) {
		t.Errorf("printing 2 should be a song: %v", song.Types)
	}
}

func TestClientReportsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL)
	if _, err := client.Sets(context.Background()); err == nil {
		t.Error("expected an error for a 404 response")
	}
}
