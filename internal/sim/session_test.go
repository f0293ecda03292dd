package sim

import (
	"context"
	"testing"

	"github.com/juneparke/civsim/internal/log"
)

// runScenario runs a scenario to completion and returns the session and
// logger for inspection.
func runScenario(t *testing.T, yaml string) (*Session, *log.MemoryLogger) {
	t.Helper()
	sc, err := ParseScenario([]byte(yaml))
	if err != nil {
		t.Fatalf("ParseScenario: %v", err)
	}

	logger := log.NewMemoryLogger()
	sess := NewSession(SessionConfig{Scenario: sc, Logger: logger})
	if err := sess.Run(context.Background()); err != nil {
		t.Logf("Event log:\n%s", log.FormatAll(logger.Events()))
		t.Fatalf("Session error: %v", err)
	}

	t.Logf("Result: %s", sess.Result)
	t.Logf("Event log:\n%s", log.FormatAll(logger.Events()))
	return sess, logger
}

// TestSessionFullScript: a benign script runs every turn and everyone
// survives.
func TestSessionFullScript(t *testing.T) {
	sess, logger := runScenario(t, `
civilizations:
  - name: Aurelia
turns:
  - plays:
      - {civ: Aurelia, card: Bountiful Harvest}
  - plays:
      - {civ: Aurelia, card: Golden Age}
`)

	if !sess.Over {
		t.Error("Expected session to be over")
	}
	if sess.Turn != 2 {
		t.Errorf("Expected 2 turns, got %d", sess.Turn)
	}
	if len(sess.LivingCivs()) != 1 {
		t.Errorf("Expected 1 survivor, got %d", len(sess.LivingCivs()))
	}

	aurelia := sess.Scenario.Civs[0]
	// 50 +15 +10 = 75 survival; 10 +10 = 20 tech; 50 +10 = 60 faith
	if aurelia.Survival != 75 || aurelia.Tech != 20 || aurelia.Faith != 60 {
		t.Errorf("Expected 75/20/60, got %d/%d/%d", aurelia.Survival, aurelia.Tech, aurelia.Faith)
	}

	turns := logger.EventsOfType(log.EventNewTurn)
	if len(turns) != 2 {
		t.Errorf("Expected 2 turn events, got %d", len(turns))
	}
	if logger.LastEvent().Type != log.EventSimOver {
		t.Errorf("Expected final event SimOver, got %s", logger.LastEvent().Type)
	}
}

// TestSessionEndsWhenAllExtinct: the run stops early once the last
// civilization goes extinct, even with script remaining.
func TestSessionEndsWhenAllExtinct(t *testing.T) {
	sess, logger := runScenario(t, `
civilizations:
  - name: Kharesh
turns:
  - plays:
      - {civ: Kharesh, card: Plague}
      - {civ: Kharesh, card: Plague}
  - plays:
      - {civ: Kharesh, card: Golden Age}
  - plays:
      - {civ: Kharesh, card: Golden Age}
`)

	if sess.Turn != 1 {
		t.Errorf("Expected run to end on turn 1, got %d", sess.Turn)
	}
	if len(sess.LivingCivs()) != 0 {
		t.Error("Expected no survivors")
	}
	if got := len(logger.EventsOfType(log.EventExtinction)); got != 1 {
		t.Errorf("Expected 1 extinction event, got %d", got)
	}
}

// TestSessionPlaysOnExtinctCiv: a scripted play targeting an extinct
// civilization is still applied — stats re-clamp, liveness never reverts.
func TestSessionPlaysOnExtinctCiv(t *testing.T) {
	sess, logger := runScenario(t, `
civilizations:
  - name: Kharesh
  - name: Aurelia
turns:
  - plays:
      - {civ: Kharesh, card: Plague}
      - {civ: Kharesh, card: Plague}
  - plays:
      - {civ: Kharesh, card: Bountiful Harvest}
`)

	kharesh := sess.Scenario.Civs[0]
	if kharesh.Alive {
		t.Error("Expected Kharesh extinct")
	}
	if kharesh.Survival != 15 {
		t.Errorf("Expected survival restored to 15 after the posthumous harvest, got %d", kharesh.Survival)
	}

	// The turn-2 play must still have been logged.
	plays := logger.EventsOfType(log.EventCardPlayed)
	if len(plays) != 3 {
		t.Errorf("Expected 3 card plays, got %d", len(plays))
	}
}

// TestSessionPyrrhicConquest: the canonical order-sensitive card, driven
// through a full session. Extinct on the intermediate 0, final survival 10.
func TestSessionPyrrhicConquest(t *testing.T) {
	sess, logger := runScenario(t, `
civilizations:
  - name: Aurelia
turns:
  - plays:
      - {civ: Aurelia, card: Pyrrhic Conquest}
`)

	aurelia := sess.Scenario.Civs[0]
	if aurelia.Survival != 10 {
		t.Errorf("Expected survival 10, got %d", aurelia.Survival)
	}
	if aurelia.Alive {
		t.Error("Expected extinction")
	}

	// Two stat changes (50→0, 0→10) around a single extinction.
	changes := logger.EventsOfType(log.EventStatChange)
	if len(changes) != 2 {
		t.Fatalf("Expected 2 stat change events, got %d", len(changes))
	}
	if got := len(logger.EventsOfType(log.EventExtinction)); got != 1 {
		t.Errorf("Expected 1 extinction event, got %d", got)
	}
}

// TestSessionMaxTurns: the turn limit truncates the script.
func TestSessionMaxTurns(t *testing.T) {
	sc, err := ParseScenario([]byte(`
civilizations:
  - name: Aurelia
turns:
  - plays: [{civ: Aurelia, card: Quiet Century}]
  - plays: [{civ: Aurelia, card: Quiet Century}]
  - plays: [{civ: Aurelia, card: Quiet Century}]
`))
	if err != nil {
		t.Fatalf("ParseScenario: %v", err)
	}

	sess := NewSession(SessionConfig{Scenario: sc, MaxTurns: 2})
	if err := sess.Run(context.Background()); err != nil {
		t.Fatalf("Session error: %v", err)
	}

	if sess.Turn != 2 {
		t.Errorf("Expected run truncated at turn 2, got %d", sess.Turn)
	}
}
