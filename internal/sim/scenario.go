package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScenarioFile represents the top-level YAML structure.
type ScenarioFile struct {
	Name          string      `yaml:"name"`
	Civilizations []CivEntry  `yaml:"civilizations"`
	Turns         []TurnEntry `yaml:"turns"`
}

// CivEntry represents one civilization in the roster. Survival and
// faith may override the defaults; tech is accepted but ignored, since
// the starting tech is fixed (see NewCivilizationWithStats).
type CivEntry struct {
	Name        string `yaml:"name"`
	Personality string `yaml:"personality"`
	Survival    *int   `yaml:"survival"`
	Tech        *int   `yaml:"tech"`
	Faith       *int   `yaml:"faith"`
}

// TurnEntry is one turn's ordered list of card plays.
type TurnEntry struct {
	Plays []PlayEntry `yaml:"plays"`
}

// PlayEntry names a civilization and the card it plays.
type PlayEntry struct {
	Civ  string `yaml:"civ"`
	Card string `yaml:"card"`
}

// Play is a resolved card play.
type Play struct {
	Civ  *Civilization
	Card *Card
}

// Scenario is a fully resolved scenario: the civilization roster and
// the scripted plays for each turn.
type Scenario struct {
	Name  string
	Civs  []*Civilization
	Turns [][]Play
}

// ParseScenario parses scenario YAML and resolves every civilization
// and card reference.
func ParseScenario(data []byte) (*Scenario, error) {
	var sf ScenarioFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scenario YAML: %w", err)
	}
	if len(sf.Civilizations) == 0 {
		return nil, fmt.Errorf("scenario has no civilizations")
	}

	sc := &Scenario{Name: sf.Name}
	byName := make(map[string]*Civilization)
	for _, entry := range sf.Civilizations {
		if entry.Name == "" {
			return nil, fmt.Errorf("civilization with empty name")
		}
		if _, dup := byName[entry.Name]; dup {
			return nil, fmt.Errorf("duplicate civilization %q", entry.Name)
		}
		civ := buildCiv(entry)
		byName[entry.Name] = civ
		sc.Civs = append(sc.Civs, civ)
	}

	for i, turn := range sf.Turns {
		var plays []Play
		for _, p := range turn.Plays {
			civ, ok := byName[p.Civ]
			if !ok {
				return nil, fmt.Errorf("turn %d: unknown civilization %q", i+1, p.Civ)
			}
			card, err := LookupCard(p.Card)
			if err != nil {
				return nil, fmt.Errorf("turn %d: %w", i+1, err)
			}
			plays = append(plays, Play{Civ: civ, Card: card})
		}
		sc.Turns = append(sc.Turns, plays)
	}

	return sc, nil
}

// ParseScenarioFile reads and parses a scenario YAML file.
func ParseScenarioFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func buildCiv(entry CivEntry) *Civilization {
	if entry.Survival == nil && entry.Tech == nil && entry.Faith == nil {
		return NewCivilization(entry.Name, entry.Personality)
	}
	survival := InitialSurvival
	if entry.Survival != nil {
		survival = *entry.Survival
	}
	tech := InitialTech
	if entry.Tech != nil {
		tech = *entry.Tech
	}
	faith := InitialFaith
	if entry.Faith != nil {
		faith = *entry.Faith
	}
	return NewCivilizationWithStats(entry.Name, entry.Personality, survival, tech, faith)
}
