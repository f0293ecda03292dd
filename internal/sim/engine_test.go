package sim

import (
	"math/rand"
	"testing"

	"github.com/juneparke/civsim/internal/log"
)

// TestConstructionDefaults: a fresh civilization starts at 50/10/50 and alive.
func TestConstructionDefaults(t *testing.T) {
	civ := NewCivilization("Aurelia", "proud and pious")

	if civ.Survival != 50 || civ.Tech != 10 || civ.Faith != 50 {
		t.Errorf("Expected stats 50/10/50, got %d/%d/%d", civ.Survival, civ.Tech, civ.Faith)
	}
	if !civ.Alive {
		t.Error("Expected a fresh civilization to be alive")
	}
	if civ.ID == "" {
		t.Error("Expected a non-empty ID")
	}
}

// TestConstructionTechPinned: the tech argument is discarded; starting tech
// is always 10. Survival and faith use the supplied values.
func TestConstructionTechPinned(t *testing.T) {
	civ := NewCivilizationWithStats("Vessara", "restless", 70, 90, 30)

	if civ.Survival != 70 {
		t.Errorf("Expected survival 70, got %d", civ.Survival)
	}
	if civ.Tech != 10 {
		t.Errorf("Expected tech pinned to 10, got %d", civ.Tech)
	}
	if civ.Faith != 30 {
		t.Errorf("Expected faith 30, got %d", civ.Faith)
	}
}

// TestConstructionAliveEvenAtZeroSurvival: alive is always true at
// construction; extinction is only set by the engine.
func TestConstructionAliveEvenAtZeroSurvival(t *testing.T) {
	civ := NewCivilizationWithStats("Kharesh", "doomed", 0, 0, 0)

	if !civ.Alive {
		t.Error("Expected civilization constructed at survival=0 to still be alive")
	}
}

// TestClampUpperBound: a huge positive delta clamps to 100.
func TestClampUpperBound(t *testing.T) {
	engine := NewEngine(nil)
	civ := NewCivilization("Aurelia", "")

	engine.ApplyModifier(civ, StatModifier{Stat: StatTech, Delta: 1000})

	if civ.Tech != 100 {
		t.Errorf("Expected tech clamped to 100, got %d", civ.Tech)
	}
	if !civ.Alive {
		t.Error("Clamping tech must not affect liveness")
	}
}

// TestClampLowerBoundExtinction: a huge negative survival delta clamps to 0
// and makes the civilization extinct.
func TestClampLowerBoundExtinction(t *testing.T) {
	logger := log.NewMemoryLogger()
	engine := NewEngine(logger)
	civ := NewCivilization("Aurelia", "")

	engine.ApplyModifier(civ, StatModifier{Stat: StatSurvival, Delta: -1000})

	if civ.Survival != 0 {
		t.Errorf("Expected survival clamped to 0, got %d", civ.Survival)
	}
	if civ.Alive {
		t.Error("Expected civilization to be extinct")
	}
	extinctions := logger.EventsOfType(log.EventExtinction)
	if len(extinctions) != 1 {
		t.Fatalf("Expected exactly 1 extinction event, got %d", len(extinctions))
	}
	if extinctions[0].Civ != "Aurelia" {
		t.Errorf("Expected extinction event for Aurelia, got %q", extinctions[0].Civ)
	}
}

// TestExtinctionIsTerminal: a later positive survival delta restores the
// stat but never revives, and emits no second extinction event.
func TestExtinctionIsTerminal(t *testing.T) {
	logger := log.NewMemoryLogger()
	engine := NewEngine(logger)
	civ := NewCivilization("Aurelia", "")

	engine.ApplyModifier(civ, StatModifier{Stat: StatSurvival, Delta: -60})
	if civ.Alive {
		t.Fatal("Expected extinction at survival 0")
	}

	engine.ApplyModifier(civ, StatModifier{Stat: StatSurvival, Delta: 40})
	if civ.Survival != 40 {
		t.Errorf("Expected survival restored to 40, got %d", civ.Survival)
	}
	if civ.Alive {
		t.Error("Extinction must be terminal")
	}

	// Driving survival to 0 again must not emit another extinction event.
	engine.ApplyModifier(civ, StatModifier{Stat: StatSurvival, Delta: -40})
	if got := len(logger.EventsOfType(log.EventExtinction)); got != 1 {
		t.Errorf("Expected exactly 1 extinction event, got %d", got)
	}
}

// TestOrderSensitivity: [(Survival,-60),(Survival,+10)] from 50 ends at 10
// and extinct; the reversed order ends at 0 and extinct. Deltas must be
// applied in listed order, never aggregated first.
func TestOrderSensitivity(t *testing.T) {
	engine := NewEngine(nil)

	civ := NewCivilization("Aurelia", "")
	engine.ApplyCard(civ, PyrrhicConquest()) // -60 then +10
	if civ.Survival != 10 {
		t.Errorf("Expected survival 10 after -60/+10 from 50, got %d", civ.Survival)
	}
	if civ.Alive {
		t.Error("Expected extinction from the intermediate 0")
	}

	reversed := &Card{
		ID:   "reversed",
		Name: "Reversed",
		Modifiers: []StatModifier{
			{Stat: StatSurvival, Delta: 10},
			{Stat: StatSurvival, Delta: -60},
		},
	}
	civ2 := NewCivilization("Vessara", "")
	engine.ApplyCard(civ2, reversed)
	if civ2.Survival != 0 {
		t.Errorf("Expected survival 0 after +10/-60 from 50, got %d", civ2.Survival)
	}
	if civ2.Alive {
		t.Error("Expected extinction")
	}
}

// TestNoCrossContamination: a tech modifier touches nothing but tech.
func TestNoCrossContamination(t *testing.T) {
	engine := NewEngine(nil)
	civ := NewCivilization("Aurelia", "")

	engine.ApplyModifier(civ, StatModifier{Stat: StatTech, Delta: -1000})

	if civ.Tech != 0 {
		t.Errorf("Expected tech 0, got %d", civ.Tech)
	}
	if civ.Survival != 50 || civ.Faith != 50 {
		t.Errorf("Expected survival/faith untouched at 50/50, got %d/%d", civ.Survival, civ.Faith)
	}
	if !civ.Alive {
		t.Error("Tech reaching 0 must not flip liveness")
	}
}

// TestNoOpCard: a card with no modifiers changes nothing.
func TestNoOpCard(t *testing.T) {
	logger := log.NewMemoryLogger()
	engine := NewEngine(logger)
	civ := NewCivilization("Aurelia", "")

	engine.ApplyCard(civ, QuietCentury())

	if civ.Survival != 50 || civ.Tech != 10 || civ.Faith != 50 {
		t.Errorf("Expected stats unchanged, got %d/%d/%d", civ.Survival, civ.Tech, civ.Faith)
	}
	if !civ.Alive {
		t.Error("Expected civilization still alive")
	}
	if got := len(logger.EventsOfType(log.EventStatChange)); got != 0 {
		t.Errorf("Expected no stat change events, got %d", got)
	}
	if got := len(logger.EventsOfType(log.EventCardPlayed)); got != 1 {
		t.Errorf("Expected the play itself to be logged once, got %d", got)
	}
}

// TestBoundInvariant: stats stay within [0,100] after every call across a
// long sequence of arbitrary deltas.
func TestBoundInvariant(t *testing.T) {
	engine := NewEngine(nil)
	civ := NewCivilization("Aurelia", "")
	rng := rand.New(rand.NewSource(1))
	dims := []StatDimension{StatSurvival, StatTech, StatFaith}

	for i := 0; i < 2000; i++ {
		mod := StatModifier{
			Stat:  dims[rng.Intn(len(dims))],
			Delta: rng.Intn(501) - 250,
		}
		engine.ApplyModifier(civ, mod)

		for _, dim := range dims {
			v := civ.Stat(dim)
			if v < 0 || v > 100 {
				t.Fatalf("Step %d: %s out of bounds: %d", i, dim, v)
			}
		}
	}
}

// TestOnExtinctionCallback: the callback fires once, at the transition.
func TestOnExtinctionCallback(t *testing.T) {
	engine := NewEngine(nil)
	civ := NewCivilization("Aurelia", "")

	var calls int
	engine.OnExtinction = func(c *Civilization) {
		calls++
		if c.Name != "Aurelia" {
			t.Errorf("Callback got %q", c.Name)
		}
	}

	engine.ApplyModifier(civ, StatModifier{Stat: StatSurvival, Delta: -50})
	engine.ApplyModifier(civ, StatModifier{Stat: StatSurvival, Delta: 20})
	engine.ApplyModifier(civ, StatModifier{Stat: StatSurvival, Delta: -20})

	if calls != 1 {
		t.Errorf("Expected callback exactly once, got %d calls", calls)
	}
}

// TestEngineNeverTouchesHeldCards: applying a card leaves the held-card
// collection alone — membership is owned by the driving layer.
func TestEngineNeverTouchesHeldCards(t *testing.T) {
	engine := NewEngine(nil)
	civ := NewCivilization("Aurelia", "")
	civ.GrantCard(Plague())
	civ.GrantCard(Plague()) // duplicates are permitted

	engine.ApplyCard(civ, Plague())

	if len(civ.Cards) != 2 {
		t.Errorf("Expected 2 held cards after engine call, got %d", len(civ.Cards))
	}
}
