package sim

// --- Player powers ---

// BountifulHarvest — PlayerPower. +15 Survival.
func BountifulHarvest() *Card {
	return &Card{
		ID:          "bountiful-harvest",
		Name:        "Bountiful Harvest",
		Description: "The granaries overflow. Your people eat well this season.",
		Category:    PlayerPower,
		Modifiers: []StatModifier{
			{Stat: StatSurvival, Delta: 15},
		},
	}
}

// SparkOfInvention — PlayerPower. +15 Tech.
func SparkOfInvention() *Card {
	return &Card{
		ID:          "spark-of-invention",
		Name:        "Spark of Invention",
		Description: "A tinkerer's accident becomes a breakthrough overnight.",
		Category:    PlayerPower,
		Modifiers: []StatModifier{
			{Stat: StatTech, Delta: 15},
		},
	}
}

// DivineInspiration — PlayerPower. +20 Faith.
func DivineInspiration() *Card {
	return &Card{
		ID:          "divine-inspiration",
		Name:        "Divine Inspiration",
		Description: "A prophet walks out of the desert with fire in their eyes.",
		Category:    PlayerPower,
		Modifiers: []StatModifier{
			{Stat: StatFaith, Delta: 20},
		},
	}
}

// Plague — PlayerPower. -30 Survival.
func Plague() *Card {
	return &Card{
		ID:          "plague",
		Name:        "Plague",
		Description: "Sickness spreads through the cities faster than word of it.",
		Category:    PlayerPower,
		Modifiers: []StatModifier{
			{Stat: StatSurvival, Delta: -30},
		},
	}
}

// Earthquake — PlayerPower. -20 Survival, then -10 Tech as workshops fall.
func Earthquake() *Card {
	return &Card{
		ID:          "earthquake",
		Name:        "Earthquake",
		Description: "The ground opens. What took generations to build takes a morning to bury.",
		Category:    PlayerPower,
		Modifiers: []StatModifier{
			{Stat: StatSurvival, Delta: -20},
			{Stat: StatTech, Delta: -10},
		},
	}
}

// GreatFlood — PlayerPower. -25 Survival, then +10 Faith; disaster breeds devotion.
func GreatFlood() *Card {
	return &Card{
		ID:          "great-flood",
		Name:        "Great Flood",
		Description: "The rivers rise and do not stop. The survivors pray harder.",
		Category:    PlayerPower,
		Modifiers: []StatModifier{
			{Stat: StatSurvival, Delta: -25},
			{Stat: StatFaith, Delta: 10},
		},
	}
}

// GoldenAge — PlayerPower. +10 to all three stats.
func GoldenAge() *Card {
	return &Card{
		ID:          "golden-age",
		Name:        "Golden Age",
		Description: "For one shining era, everything works.",
		Category:    PlayerPower,
		Modifiers: []StatModifier{
			{Stat: StatSurvival, Delta: 10},
			{Stat: StatTech, Delta: 10},
			{Stat: StatFaith, Delta: 10},
		},
	}
}

// DarkAge — PlayerPower. -10 Tech, -15 Faith.
func DarkAge() *Card {
	return &Card{
		ID:          "dark-age",
		Name:        "Dark Age",
		Description: "The libraries burn, and no one remembers why they mattered.",
		Category:    PlayerPower,
		Modifiers: []StatModifier{
			{Stat: StatTech, Delta: -10},
			{Stat: StatFaith, Delta: -15},
		},
	}
}

// QuietCentury — PlayerPower. No modifiers; a no-op card.
func QuietCentury() *Card {
	return &Card{
		ID:          "quiet-century",
		Name:        "Quiet Century",
		Description: "Nothing of note happens. Historians will skip this chapter.",
		Category:    PlayerPower,
	}
}

// --- Faction actions ---

// Crusade — FactionAction. -20 Survival, +25 Faith.
func Crusade() *Card {
	return &Card{
		ID:          "crusade",
		Name:        "Crusade",
		Description: "The banners march. Many do not come home, but the temples fill.",
		Category:    FactionAction,
		Modifiers: []StatModifier{
			{Stat: StatSurvival, Delta: -20},
			{Stat: StatFaith, Delta: 25},
		},
	}
}

// IndustrialLeap — FactionAction. +25 Tech, -10 Faith.
func IndustrialLeap() *Card {
	return &Card{
		ID:          "industrial-leap",
		Name:        "Industrial Leap",
		Description: "Smokestacks rise where shrines once stood.",
		Category:    FactionAction,
		Modifiers: []StatModifier{
			{Stat: StatTech, Delta: 25},
			{Stat: StatFaith, Delta: -10},
		},
	}
}

// GreatLibrary — FactionAction. +15 Tech, +5 Faith.
func GreatLibrary() *Card {
	return &Card{
		ID:          "great-library",
		Name:        "Great Library",
		Description: "Scholars and priests argue under the same roof, and both leave sharper.",
		Category:    FactionAction,
		Modifiers: []StatModifier{
			{Stat: StatTech, Delta: 15},
			{Stat: StatFaith, Delta: 5},
		},
	}
}

// Reformation — FactionAction. -15 Faith, +10 Tech.
func Reformation() *Card {
	return &Card{
		ID:          "reformation",
		Name:        "Reformation",
		Description: "The old rites are questioned; the printing presses do not sleep.",
		Category:    FactionAction,
		Modifiers: []StatModifier{
			{Stat: StatFaith, Delta: -15},
			{Stat: StatTech, Delta: 10},
		},
	}
}

// PyrrhicConquest — FactionAction. -60 Survival, then +10 Survival from
// the spoils. The loss lands first: a civilization at 50 Survival is
// driven to 0 — and extinction — before the spoils arrive.
func PyrrhicConquest() *Card {
	return &Card{
		ID:          "pyrrhic-conquest",
		Name:        "Pyrrhic Conquest",
		Description: "The enemy's fields are yours now. So are their graves, and most of yours.",
		Category:    FactionAction,
		Modifiers: []StatModifier{
			{Stat: StatSurvival, Delta: -60},
			{Stat: StatSurvival, Delta: 10},
		},
	}
}

// HarvestFestival — FactionAction. +10 Survival, +5 Faith.
func HarvestFestival() *Card {
	return &Card{
		ID:          "harvest-festival",
		Name:        "Harvest Festival",
		Description: "A week of feasting, and thanks given to whoever is listening.",
		Category:    FactionAction,
		Modifiers: []StatModifier{
			{Stat: StatSurvival, Delta: 10},
			{Stat: StatFaith, Delta: 5},
		},
	}
}

// MassExodus — FactionAction. -35 Survival, +15 Tech brought home by
// those who return.
func MassExodus() *Card {
	return &Card{
		ID:          "mass-exodus",
		Name:        "Mass Exodus",
		Description: "Half the city leaves chasing rumors of a better land.",
		Category:    FactionAction,
		Modifiers: []StatModifier{
			{Stat: StatSurvival, Delta: -35},
			{Stat: StatTech, Delta: 15},
		},
	}
}
