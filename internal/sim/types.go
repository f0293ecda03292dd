package sim

import "fmt"

// --- Enums ---

// StatDimension identifies one of the three bounded resources a
// civilization tracks. The set is closed: no other dimensions exist.
type StatDimension int

const (
	StatSurvival StatDimension = iota
	StatTech
	StatFaith
)

func (s StatDimension) String() string {
	switch s {
	case StatSurvival:
		return "Survival"
	case StatTech:
		return "Tech"
	case StatFaith:
		return "Faith"
	default:
		return "Unknown"
	}
}

// ParseStatDimension converts a stat name (case-sensitive, as it appears
// in scenario files and tool calls) to a StatDimension.
func ParseStatDimension(name string) (StatDimension, error) {
	switch name {
	case "Survival", "survival":
		return StatSurvival, nil
	case "Tech", "tech":
		return StatTech, nil
	case "Faith", "faith":
		return StatFaith, nil
	default:
		return 0, fmt.Errorf("unknown stat dimension %q", name)
	}
}

// CardCategory splits the catalog for external collaborators. The stat
// engine never inspects it.
type CardCategory int

const (
	PlayerPower CardCategory = iota
	FactionAction
)

func (c CardCategory) String() string {
	if c == PlayerPower {
		return "PlayerPower"
	}
	return "FactionAction"
}

// --- Stat Modifiers ---

// StatModifier represents "add Delta to Stat". Delta may be negative.
// Modifiers carry no identity of their own; they are always read from
// a Card.
type StatModifier struct {
	Stat  StatDimension
	Delta int
}

func (m StatModifier) String() string {
	return fmt.Sprintf("%+d %s", m.Delta, m.Stat)
}

// --- Card definition (static, from the catalog) ---

// Card is an immutable bundle of stat modifiers plus descriptive
// metadata. Modifier order matters: modifiers are applied in sequence,
// each seeing the clamped result of the previous one. Cards are shared
// read-only reference data and are never mutated at runtime.
type Card struct {
	ID          string // stable identifier, e.g. "bountiful-harvest"
	Name        string
	Description string
	Category    CardCategory
	Modifiers   []StatModifier
}

func (c *Card) String() string {
	return c.Name
}

// IsNoOp reports whether the card carries no modifiers. A no-op card
// is valid and leaves every stat unchanged when played.
func (c *Card) IsNoOp() bool {
	return len(c.Modifiers) == 0
}
