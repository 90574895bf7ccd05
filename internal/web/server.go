package web

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"inkforge/internal/card"
	"inkforge/internal/deck"
	"inkforge/internal/trace"
)

//go:embed static
var staticFiles embed.FS

// CardInfo is the JSON representation of a card for the /api/cards endpoint.
type CardInfo struct {
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

	RequiredKeywords        []string `json:"requiredKeywords,omitempty"`
	RequiredClassifications []string `json:"requiredClassifications,omitempty"`
	RequiredTypes           []string `json:"requiredTypes,omitempty"`
	RequiredCardNames       []string `json:"requiredCardNames,omitempty"`
}

// GenerateRequest is the body of POST /api/generate.
type GenerateRequest struct {
	Inks    []string `json:"inks"`
	Retries *int     `json:"retries,omitempty"`
}

// DeckCard is one deck entry plus its weight against the finished deck,
// for diagnostic display.
type DeckCard struct {
	ID     int     `json:"id"`
	Title  string  `json:"title"`
	Ink    string  `json:"ink"`
	Cost   int     `json:"cost"`
	Count  int     `json:"count"`
	Weight float64 `json:"weight"`
}

// GenerateResponse is the result of a generation run.
type GenerateResponse struct {
	RequestID string     `json:"requestId"`
	Inks      []string   `json:"inks"`
	Size      int        `json:"size"`
	Complete  bool       `json:"complete"`
	Deck      []DeckCard `json:"deck"`
}

// Server is the inkforge web UI server.
type Server struct {
	catalog   *card.Catalog
	config    deck.Config
	decksFile string
	mux       *http.ServeMux
}

// NewServer creates a new web server over a finalized catalog. decksFile
// is the saved-decks YAML file served by /api/decks.
func NewServer(catalog *card.Catalog, cfg deck.Config, decksFile string) *Server {
	s := &Server{
		catalog:   catalog,
		config:    cfg,
		decksFile: decksFile,
		mux:       http.NewServeMux(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Embedded static files
	staticFS, _ := fs.Sub(staticFiles, "static")

	// Serve index.html at root
	s.mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		f, err := staticFS.Open("index.html")
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer f.Close()
		io.Copy(w, f)
	})

	// Static CSS/JS
	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// API endpoints
	s.mux.HandleFunc("GET /api/cards", s.handleCards)
	s.mux.HandleFunc("GET /api/inks", s.handleInks)
	s.mux.HandleFunc("GET /api/decks", s.handleDecks)
	s.mux.HandleFunc("POST /api/generate", s.handleGenerate)

	// Live generation feed
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
}

func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	cards := make([]CardInfo, 0, s.catalog.Len())
	for _, c := range s.catalog.Cards {
		cards = append(cards, cardInfo(c))
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cards)
}

func (s *Server) handleInks(w http.ResponseWriter, r *http.Request) {
	var inks []string
	for _, ink := range card.Inks {
		inks = append(inks, ink.String())
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(inks)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request body", http.StatusBadRequest)
		return
	}
	inks, err := parseInkList(req.Inks)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cp := deck.NewComposer(s.catalog)
	cp.Config = s.config
	if req.Retries != nil {
		cp.Retries = *req.Retries
	}

	d := cp.Build(inks, nil)
	resp := buildResponse(uuid.NewString(), s.config, inks, d)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// wsMessage is the envelope for every websocket frame we send.
type wsMessage struct {
	Type  string            `json:"type"` // "event", "done", "error"
	Event *trace.BuildEvent `json:"event,omitempty"`
	Deck  *GenerateResponse `json:"deck,omitempty"`
	Error string            `json:"error,omitempty"`
}

// handleWebSocket runs one generation per connection, streaming build
// events as they happen and the finished deck at the end.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Allow connections from any origin
	})
	if err != nil {
		log.Printf("WebSocket accept error: %v", err)
		return
	}
	defer wsConn.CloseNow()

	ctx := r.Context()

	// Read the generate request from the browser
	_, reqData, err := wsConn.Read(ctx)
	if err != nil {
		log.Printf("WebSocket read request: %v", err)
		return
	}

	var genMsg struct {
		Type    string   `json:"type"`
		Inks    []string `json:"inks"`
		Retries *int     `json:"retries,omitempty"`
	}
	if err := json.Unmarshal(reqData, &genMsg); err != nil || genMsg.Type != "generate" {
		wsConn.Close(websocket.StatusPolicyViolation, "expected generate message")
		return
	}

	inks, err := parseInkList(genMsg.Inks)
	if err != nil {
		writeWS(ctx, wsConn, wsMessage{Type: "error", Error: err.Error()})
		wsConn.Close(websocket.StatusNormalClosure, "bad request")
		return
	}

	events := make(chan trace.BuildEvent, 64)
	cp := deck.NewComposer(s.catalog)
	cp.Config = s.config
	cp.Log = trace.NewChannelLogger(events)
	if genMsg.Retries != nil {
		cp.Retries = *genMsg.Retries
	}

	done := make(chan []*card.Card, 1)
	go func() {
		d := cp.Build(inks, nil)
		close(events)
		done <- d
	}()

	for ev := range events {
		ev := ev
		if err := writeWS(ctx, wsConn, wsMessage{Type: "event", Event: &ev}); err != nil {
			log.Printf("WebSocket write error: %v", err)
			// Drain so the composer goroutine is not blocked on the channel.
			for range events {
			}
			<-done
			return
		}
	}

	d := <-done
	resp := buildResponse(uuid.NewString(), s.config, inks, d)
	writeWS(ctx, wsConn, wsMessage{Type: "done", Deck: &resp})
	wsConn.Close(websocket.StatusNormalClosure, "generation finished")
}

func writeWS(ctx context.Context, conn *websocket.Conn, msg wsMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return conn.Write(ctx, websocket.MessageText, data)
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}

// Handler exposes the mux for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func parseInkList(names []string) ([]card.Ink, error) {
	if len(names) != 2 {
		return nil, fmt.Errorf("exactly two inks required, got %d", len(names))
	}
	var inks []card.Ink
	for _, n := range names {
		ink, err := card.ParseInk(n)
		if err != nil {
			return nil, err
		}
		inks = append(inks, ink)
	}
	return inks, nil
}

func cardInfo(c *card.Card) CardInfo {
	ci := CardInfo{
		ID:              c.ID,
		Name:            c.Name,
		Title:           c.Title,
		Cost:            c.Cost,
		Ink:             c.Ink.String(),
		Inkwell:         c.Inkwell,
		Lore:            c.Lore,
		Keywords:        c.Keywords,
		Classifications: c.Classifications,
		Text:            c.Text,

		RequiredKeywords:        c.RequiredKeywords,
		RequiredClassifications: c.RequiredClassifications,
		RequiredCardNames:       c.RequiredCardNames,
	}
	for _, t := range c.Types {
		ci.Types = append(ci.Types, t.String())
	}
	for _, t := range c.RequiredTypes {
		ci.RequiredTypes = append(ci.RequiredTypes, t.String())
	}
	return ci
}

// buildResponse summarizes a finished deck, attaching each printing's
// weight against the final deck for diagnostic display.
func buildResponse(requestID string, cfg deck.Config, inks []card.Ink, d []*card.Card) GenerateResponse {
	resp := GenerateResponse{
		RequestID: requestID,
		Size:      len(d),
		Complete:  len(d) == cfg.DeckSize,
	}
	for _, ink := range inks {
		resp.Inks = append(resp.Inks, ink.String())
	}
	seen := make(map[int]int)
	for _, c := range d {
		if i, ok := seen[c.ID]; ok {
			resp.Deck[i].Count++
			continue
		}
		seen[c.ID] = len(resp.Deck)
		resp.Deck = append(resp.Deck, DeckCard{
			ID:     c.ID,
			Title:  c.String(),
			Ink:    c.Ink.String(),
			Cost:   c.Cost,
			Count:  1,
			Weight: deck.Weight(cfg, c, d),
		})
	}
	return resp
}
