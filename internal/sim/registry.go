package sim

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// CardRegistry maps card names to their constructor functions.
var CardRegistry = map[string]func() *Card{
	"Bountiful Harvest":  BountifulHarvest,
	"Spark of Invention": SparkOfInvention,
	"Divine Inspiration": DivineInspiration,
	"Plague":             Plague,
	"Earthquake":         Earthquake,
	"Great Flood":        GreatFlood,
	"Golden Age":         GoldenAge,
	"Dark Age":           DarkAge,
	"Quiet Century":      QuietCentury,
	"Crusade":            Crusade,
	"Industrial Leap":    IndustrialLeap,
	"Great Library":      GreatLibrary,
	"Reformation":        Reformation,
	"Pyrrhic Conquest":   PyrrhicConquest,
	"Harvest Festival":   HarvestFestival,
	"Mass Exodus":        MassExodus,
}

// LookupCard looks up a card by name and returns a new instance. An
// unknown name yields an error that suggests the nearest known card.
func LookupCard(name string) (*Card, error) {
	ctor, ok := CardRegistry[name]
	if !ok {
		if near := nearestCardName(name); near != "" {
			return nil, fmt.Errorf("unknown card %q (did you mean %q?)", name, near)
		}
		return nil, fmt.Errorf("unknown card %q", name)
	}
	return ctor(), nil
}

// MustCard looks up a card by name and panics if it is not in the
// registry. For use with known-good names (built-in scenarios, tests).
func MustCard(name string) *Card {
	card, err := LookupCard(name)
	if err != nil {
		panic(fmt.Sprintf("card not found in registry: %q", name))
	}
	return card
}

// CardNames returns all registry names, sorted.
func CardNames() []string {
	names := make([]string, 0, len(CardRegistry))
	for name := range CardRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// nearestCardName returns the registry name closest to the input, or ""
// when nothing is within a distance proportional to the candidate's
// length (so short names don't match everything).
func nearestCardName(name string) string {
	best := ""
	bestDist := -1
	lower := strings.ToLower(name)
	for _, cand := range CardNames() {
		dist := levenshtein.ComputeDistance(lower, strings.ToLower(cand))
		if dist > len(cand)/2 {
			continue
		}
		if bestDist == -1 || dist < bestDist {
			best = cand
			bestDist = dist
		}
	}
	return best
}
