package sim

import (
	"context"
	"fmt"

	"github.com/juneparke/civsim/internal/log"
)

// SessionConfig holds configuration for creating a new session.
type SessionConfig struct {
	Scenario *Scenario
	Logger   log.EventLogger
	MaxTurns int // stop after this many turns (0 = run the full script)
}

// Session drives a scripted scenario through the stat engine, one turn
// at a time. The session is the external driver: it owns the held-card
// collections (granting a card before play, removing it after), while
// the engine owns all stat mutation and extinction logic.
type Session struct {
	Scenario *Scenario
	Engine   *Engine
	Logger   log.EventLogger

	Turn   int
	Over   bool
	Result string

	maxTurns int
}

// NewSession creates a session from the given config.
func NewSession(cfg SessionConfig) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}

	maxTurns := cfg.MaxTurns
	if maxTurns == 0 || maxTurns > len(cfg.Scenario.Turns) {
		maxTurns = len(cfg.Scenario.Turns)
	}

	return &Session{
		Scenario: cfg.Scenario,
		Engine:   NewEngine(logger),
		Logger:   logger,
		maxTurns: maxTurns,
	}
}

// Run executes the scenario. The run ends when the script is exhausted,
// the turn limit is reached, or every civilization is extinct.
func (s *Session) Run(ctx context.Context) error {
	for _, civ := range s.Scenario.Civs {
		s.Logger.Log(log.NewCivFoundedEvent(s.Turn, civ.Name, civ.Survival, civ.Tech, civ.Faith))
	}

	for s.Turn < s.maxTurns && !s.Over {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.runTurn()
	}

	if !s.Over {
		s.Over = true
		s.Result = fmt.Sprintf("Scenario complete after %d turns (%d civilizations surviving)", s.Turn, len(s.LivingCivs()))
		s.Logger.Log(log.NewSimOverEvent(s.Turn, s.Result))
	}

	return nil
}

// runTurn plays one turn of the script. Plays targeting an extinct
// civilization are not skipped: applying a card to an extinct
// civilization is permitted and only re-clamps its stats.
func (s *Session) runTurn() {
	s.Turn++
	s.Engine.Turn = s.Turn
	s.Logger.Log(log.NewTurnEvent(s.Turn))

	for _, play := range s.Scenario.Turns[s.Turn-1] {
		play.Civ.GrantCard(play.Card)
		s.Logger.Log(log.NewCardGrantedEvent(s.Turn, play.Civ.Name, play.Card.Name))

		s.Engine.ApplyCard(play.Civ, play.Card)
		play.Civ.RemoveCard(play.Card)
	}

	if len(s.LivingCivs()) == 0 {
		s.Over = true
		s.Result = fmt.Sprintf("All civilizations extinct on turn %d", s.Turn)
		s.Logger.Log(log.NewSimOverEvent(s.Turn, s.Result))
	}
}

// LivingCivs returns the civilizations that are still alive.
func (s *Session) LivingCivs() []*Civilization {
	var living []*Civilization
	for _, civ := range s.Scenario.Civs {
		if civ.Alive {
			living = append(living, civ)
		}
	}
	return living
}
