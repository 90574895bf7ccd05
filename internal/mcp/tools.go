package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"inkforge/internal/card"
	"inkforge/internal/deck"
	"inkforge/internal/trace"
)

// RegisterTools adds all deck-generation tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(generateDeckTool(), handleGenerateDeck)
	s.AddTool(getDeckTool(), handleGetDeck)
	s.AddTool(cardInfoTool(), handleCardInfo)
	s.AddTool(listInksTool(), handleListInks)
}

// --- Tool definitions ---

func generateDeckTool() mcp.Tool {
	return mcp.NewTool("generate_deck",
		mcp.WithDescription("Generate a 60-card two-ink deck from the card catalog using weighted synergy "+
			"sampling. Returns the deck list; a size under 60 means the retry budget ran out before every "+
			"card's in-deck prerequisites could be satisfied."),
		mcp.WithString("inks", mcp.Required(), mcp.Description("Comma-separated pair of ink colors, e.g. 'Amber,Steel'")),
		mcp.WithNumber("retries", mcp.Description("Regeneration budget when repair shrinks the deck (default 10)")),
	)
}

func getDeckTool() mcp.Tool {
	return mcp.NewTool("get_deck",
		mcp.WithDescription("Return the most recently generated deck along with its composition trace "+
			"(picks, removals, retries). Read-only."),
	)
}

func cardInfoTool() mcp.Tool {
	return mcp.NewTool("card_info",
		mcp.WithDescription("Look up every printing of a card by base name, including the derived "+
			"requirement sets the generator uses for synergy scoring."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Card base name, e.g. 'Mickey Mouse'")),
	)
}

func listInksTool() mcp.Tool {
	return mcp.NewTool("list_inks",
		mcp.WithDescription("List the six ink colors a deck can be built from."),
	)
}

// --- Tool handlers ---

func handleGenerateDeck(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession

	inks, err := card.ParseInks(request.GetString("inks", ""))
	if err != nil {
		return mcp.NewToolResultErrorf("Invalid inks: %v", err), nil
	}
	if len(inks) != 2 {
		return mcp.NewToolResultErrorf("Exactly two inks required, got %d.", len(inks)), nil
	}

	catalog, err := sess.loadCatalog()
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to load catalog: %v", err), nil
	}

	logger := trace.NewMemoryLogger()
	cp := deck.NewComposer(catalog)
	cp.Config = sess.config
	cp.Log = logger
	if retries := request.GetInt("retries", -1); retries >= 0 {
		cp.Retries = retries
	}

	d := cp.Build(inks, nil)

	sess.mu.Lock()
	sess.lastDeck = d
	sess.lastInks = inks
	sess.lastTrace = logger
	sess.mu.Unlock()

	return mcp.NewToolResultText(respondJSON(sess.deckView(false))), nil
}

func handleGetDeck(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	sess.mu.Lock()
	empty := sess.lastDeck == nil
	sess.mu.Unlock()
	if empty {
		return mcp.NewToolResultError("No deck has been generated yet. Use generate_deck first."), nil
	}
	return mcp.NewToolResultText(respondJSON(sess.deckView(true))), nil
}

func handleCardInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	name := request.GetString("name", "")
	if name == "" {
		return mcp.NewToolResultError("name is required."), nil
	}

	catalog, err := sess.loadCatalog()
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to load catalog: %v", err), nil
	}

	printings := catalog.ByName(name)
	if len(printings) == 0 {
		return mcp.NewToolResultErrorf("No printings found for %q.", name), nil
	}

	views := make([]CardView, 0, len(printings))
	for _, c := range printings {
		views = append(views, cardView(c))
	}
	return mcp.NewToolResultText(respondJSON(views)), nil
}

func handleListInks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var inks []string
	for _, ink := range card.Inks {
		inks = append(inks, ink.String())
	}
	return mcp.NewToolResultText(respondJSON(inks)), nil
}
