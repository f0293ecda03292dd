package mcp

import (
	"context"
	"encoding/json"

	"github.com/juneparke/civsim/internal/log"
	"github.com/juneparke/civsim/internal/sim"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// activeWorld is the singleton world (one per stdio process).
var activeWorld = NewWorld()

// RegisterTools adds all simulation tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(foundCivilizationTool(), handleFoundCivilization)
	s.AddTool(listCardsTool(), handleListCards)
	s.AddTool(grantCardTool(), handleGrantCard)
	s.AddTool(playCardTool(), handlePlayCard)
	s.AddTool(applyModifierTool(), handleApplyModifier)
	s.AddTool(advanceTurnTool(), handleAdvanceTurn)
	s.AddTool(getStateTool(), handleGetState)
}

// --- Tool definitions ---

func foundCivilizationTool() mcp.Tool {
	return mcp.NewTool("found_civilization",
		mcp.WithDescription("Found a new civilization with the standard starting stats (Survival 50 / Tech 10 / Faith 50). Returns its id and state."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Civilization name")),
		mcp.WithString("personality", mcp.Description("Free-text personality; opaque to the engine")),
	)
}

func listCardsTool() mcp.Tool {
	return mcp.NewTool("list_cards",
		mcp.WithDescription("List the card catalog: id, name, category (PlayerPower or FactionAction), description, and the ordered stat modifiers. Read-only."),
	)
}

func grantCardTool() mcp.Tool {
	return mcp.NewTool("grant_card",
		mcp.WithDescription("Grant a card (by name) to a civilization's held set without playing it."),
		mcp.WithString("civ_id", mcp.Required(), mcp.Description("Civilization id from found_civilization")),
		mcp.WithString("card", mcp.Required(), mcp.Description("Card name from list_cards")),
	)
}

func playCardTool() mcp.Tool {
	return mcp.NewTool("play_card",
		mcp.WithDescription("Play a held card: its modifiers apply in order, each step clamped to [0,100]. Survival hitting 0 makes the civilization permanently extinct. Playing onto an extinct civilization is allowed."),
		mcp.WithString("civ_id", mcp.Required(), mcp.Description("Civilization id")),
		mcp.WithString("card", mcp.Required(), mcp.Description("Held card name")),
	)
}

func applyModifierTool() mcp.Tool {
	return mcp.NewTool("apply_modifier",
		mcp.WithDescription("Apply a single raw stat modifier outside any card. Never fails: out-of-range deltas are absorbed by clamping."),
		mcp.WithString("civ_id", mcp.Required(), mcp.Description("Civilization id")),
		mcp.WithString("stat", mcp.Required(), mcp.Description("One of: survival, tech, faith")),
		mcp.WithNumber("delta", mcp.Required(), mcp.Description("Signed integer delta")),
	)
}

func advanceTurnTool() mcp.Tool {
	return mcp.NewTool("advance_turn",
		mcp.WithDescription("Advance the turn counter by one."),
	)
}

func getStateTool() mcp.Tool {
	return mcp.NewTool("get_state",
		mcp.WithDescription("Get the current turn, every civilization's stats, alive flag and held cards, and the most recent events. Read-only."),
	)
}

// --- JSON response shapes ---

type civState struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Personality string   `json:"personality,omitempty"`
	Survival    int      `json:"survival"`
	Tech        int      `json:"tech"`
	Faith       int      `json:"faith"`
	Alive       bool     `json:"alive"`
	Cards       []string `json:"cards,omitempty"`
}

type cardInfo struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Modifiers   []modifier `json:"modifiers"`
}

type modifier struct {
	Stat  string `json:"stat"`
	Delta int    `json:"delta"`
}

type stateResponse struct {
	Turn   int        `json:"turn"`
	Civs   []civState `json:"civilizations"`
	Events []string   `json:"recent_events,omitempty"`
}

func civToState(civ *sim.Civilization) civState {
	return civState{
		ID:          civ.ID,
		Name:        civ.Name,
		Personality: civ.Personality,
		Survival:    civ.Survival,
		Tech:        civ.Tech,
		Faith:       civ.Faith,
		Alive:       civ.Alive,
		Cards:       civ.CardNames(),
	}
}

func respondJSON(v interface{}) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return `{"error": "failed to marshal response"}`
	}
	return string(data)
}

// --- Tool handlers ---

func handleFoundCivilization(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := request.GetString("name", "")
	if name == "" {
		return mcp.NewToolResultError("name must not be empty"), nil
	}
	personality := request.GetString("personality", "")

	civ := activeWorld.Found(name, personality)
	return mcp.NewToolResultText(respondJSON(civToState(civ))), nil
}

func handleListCards(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var cards []cardInfo
	for _, name := range sim.CardNames() {
		card := sim.MustCard(name)
		info := cardInfo{
			ID:          card.ID,
			Name:        card.Name,
			Category:    card.Category.String(),
			Description: card.Description,
			Modifiers:   []modifier{},
		}
		for _, m := range card.Modifiers {
			info.Modifiers = append(info.Modifiers, modifier{Stat: m.Stat.String(), Delta: m.Delta})
		}
		cards = append(cards, info)
	}
	return mcp.NewToolResultText(respondJSON(cards)), nil
}

func handleGrantCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	civID := request.GetString("civ_id", "")
	card := request.GetString("card", "")

	if err := activeWorld.Grant(civID, card); err != nil {
		return mcp.NewToolResultErrorf("Grant failed: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(currentState(0))), nil
}

func handlePlayCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	civID := request.GetString("civ_id", "")
	card := request.GetString("card", "")

	if err := activeWorld.Play(civID, card); err != nil {
		return mcp.NewToolResultErrorf("Play failed: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(currentState(10))), nil
}

func handleApplyModifier(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	civID := request.GetString("civ_id", "")
	stat := request.GetString("stat", "")
	delta := request.GetInt("delta", 0)

	if err := activeWorld.ApplyModifier(civID, stat, delta); err != nil {
		return mcp.NewToolResultErrorf("Apply failed: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(currentState(10))), nil
}

func handleAdvanceTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	turn := activeWorld.AdvanceTurn()
	return mcp.NewToolResultText(respondJSON(map[string]int{"turn": turn})), nil
}

func handleGetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(respondJSON(currentState(25))), nil
}

// currentState snapshots the world, including up to recentEvents
// formatted event lines.
func currentState(recentEvents int) stateResponse {
	resp := stateResponse{Turn: activeWorld.Turn()}
	for _, civ := range activeWorld.Civs() {
		resp.Civs = append(resp.Civs, civToState(civ))
	}
	if recentEvents > 0 {
		for _, e := range activeWorld.RecentEvents(recentEvents) {
			resp.Events = append(resp.Events, log.FormatEvent(e))
		}
	}
	return resp
}
