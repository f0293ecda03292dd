package mcp

import (
	"fmt"
	"sync"

	"github.com/juneparke/civsim/internal/log"
	"github.com/juneparke/civsim/internal/sim"
)

// World holds one interactive simulation: a roster of civilizations, the
// stat engine, and the accumulated event log. The MCP layer is the
// external driver here, so it owns held-card membership (grant before
// play, remove after) and turn advancement; the engine owns all stat
// mutation and extinction logic.
type World struct {
	mu     sync.Mutex
	engine *sim.Engine
	logger *log.MemoryLogger
	civs   map[string]*sim.Civilization
	order  []string // founding order, for stable listings
	turn   int
}

// NewWorld creates an empty world at turn 1.
func NewWorld() *World {
	logger := log.NewMemoryLogger()
	engine := sim.NewEngine(logger)
	engine.Turn = 1
	return &World{
		engine: engine,
		logger: logger,
		civs:   make(map[string]*sim.Civilization),
		turn:   1,
	}
}

// Found creates a civilization with the standard starting stats.
func (w *World) Found(name, personality string) *sim.Civilization {
	w.mu.Lock()
	defer w.mu.Unlock()

	civ := sim.NewCivilization(name, personality)
	w.civs[civ.ID] = civ
	w.order = append(w.order, civ.ID)
	w.logger.Log(log.NewCivFoundedEvent(w.turn, civ.Name, civ.Survival, civ.Tech, civ.Faith))
	return civ
}

// AdvanceTurn increments the turn counter and returns the new turn.
func (w *World) AdvanceTurn() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.turn++
	w.engine.Turn = w.turn
	w.logger.Log(log.NewTurnEvent(w.turn))
	return w.turn
}

// Grant adds the named card to the civilization's held set.
func (w *World) Grant(civID, cardName string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	civ, err := w.civ(civID)
	if err != nil {
		return err
	}
	card, err := sim.LookupCard(cardName)
	if err != nil {
		return err
	}
	civ.GrantCard(card)
	w.logger.Log(log.NewCardGrantedEvent(w.turn, civ.Name, card.Name))
	return nil
}

// Play plays a held copy of the named card through the engine, then
// removes it from the held set.
func (w *World) Play(civID, cardName string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	civ, err := w.civ(civID)
	if err != nil {
		return err
	}
	card, err := sim.LookupCard(cardName)
	if err != nil {
		return err
	}
	if !civ.HoldsCard(card.ID) {
		return fmt.Errorf("%s does not hold %q (grant it first)", civ.Name, card.Name)
	}

	w.engine.ApplyCard(civ, card)
	civ.RemoveCard(card)
	return nil
}

// ApplyModifier applies a raw stat delta outside any card.
func (w *World) ApplyModifier(civID, stat string, delta int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	civ, err := w.civ(civID)
	if err != nil {
		return err
	}
	dim, err := sim.ParseStatDimension(stat)
	if err != nil {
		return err
	}

	w.engine.ApplyModifier(civ, sim.StatModifier{Stat: dim, Delta: delta})
	return nil
}

// Civs returns all civilizations in founding order.
func (w *World) Civs() []*sim.Civilization {
	w.mu.Lock()
	defer w.mu.Unlock()

	result := make([]*sim.Civilization, 0, len(w.order))
	for _, id := range w.order {
		result = append(result, w.civs[id])
	}
	return result
}

// Turn returns the current turn.
func (w *World) Turn() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.turn
}

// RecentEvents returns up to n most recent events.
func (w *World) RecentEvents(n int) []log.SimEvent {
	w.mu.Lock()
	defer w.mu.Unlock()

	events := w.logger.Events()
	if len(events) > n {
		events = events[len(events)-n:]
	}
	return events
}

func (w *World) civ(id string) (*sim.Civilization, error) {
	civ, ok := w.civs[id]
	if !ok {
		return nil, fmt.Errorf("no civilization with id %q", id)
	}
	return civ, nil
}
