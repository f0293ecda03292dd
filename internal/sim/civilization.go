package sim

import "github.com/google/uuid"

const (
	MinStat = 0
	MaxStat = 100

	InitialSurvival = 50
	InitialTech     = 10
	InitialFaith    = 50
)

// Civilization is the mutable runtime entity the stat engine operates
// on. Stats stay within [MinStat, MaxStat] after every operation.
type Civilization struct {
	ID          string
	Name        string
	Personality string // opaque to the engine

	Survival int
	Tech     int
	Faith    int

	// Cards currently held. Order is irrelevant and duplicates are
	// permitted. Owned by the driving layer (session, MCP world); the
	// stat engine never reads or mutates it.
	Cards []*Card

	Alive bool
}

// NewCivilization creates a civilization with the standard starting
// stats and Alive set to true.
func NewCivilization(name, personality string) *Civilization {
	return &Civilization{
		ID:          uuid.NewString(),
		Name:        name,
		Personality: personality,
		Survival:    InitialSurvival,
		Tech:        InitialTech,
		Faith:       InitialFaith,
		Alive:       true,
	}
}

// NewCivilizationWithStats creates a civilization with explicit starting
// survival and faith. The tech argument is accepted for symmetry but the
// starting tech is always InitialTech. Alive is true regardless of the
// supplied stats, even survival=0: extinction is only ever set by the
// engine as a side effect of applying a modifier.
func NewCivilizationWithStats(name, personality string, survival, tech, faith int) *Civilization {
	c := NewCivilization(name, personality)
	c.Survival = clampStat(survival)
	c.Tech = InitialTech
	c.Faith = clampStat(faith)
	return c
}

// Stat returns the current value of the given dimension.
func (c *Civilization) Stat(dim StatDimension) int {
	switch dim {
	case StatSurvival:
		return c.Survival
	case StatTech:
		return c.Tech
	case StatFaith:
		return c.Faith
	default:
		return 0
	}
}

func (c *Civilization) setStat(dim StatDimension, v int) {
	switch dim {
	case StatSurvival:
		c.Survival = v
	case StatTech:
		c.Tech = v
	case StatFaith:
		c.Faith = v
	}
}

// --- Held cards (driver-owned; the engine never calls these) ---

// GrantCard adds a card to the civilization's held set.
func (c *Civilization) GrantCard(card *Card) {
	c.Cards = append(c.Cards, card)
}

// RemoveCard removes one held copy of the card by ID. It is a no-op if
// the civilization does not hold the card.
func (c *Civilization) RemoveCard(card *Card) {
	for i, held := range c.Cards {
		if held.ID == card.ID {
			c.Cards = append(c.Cards[:i], c.Cards[i+1:]...)
			return
		}
	}
}

// HoldsCard reports whether at least one copy of the card is held.
func (c *Civilization) HoldsCard(cardID string) bool {
	for _, held := range c.Cards {
		if held.ID == cardID {
			return true
		}
	}
	return false
}

// CardNames returns the names of all held cards, in held order.
func (c *Civilization) CardNames() []string {
	names := make([]string, 0, len(c.Cards))
	for _, held := range c.Cards {
		names = append(names, held.Name)
	}
	return names
}
