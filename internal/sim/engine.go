package sim

import "github.com/juneparke/civsim/internal/log"

// Engine is the sole authority for mutating a civilization's stats and
// deciding extinction. It is single-threaded: callers must not invoke
// ApplyModifier/ApplyCard concurrently on the same civilization.
type Engine struct {
	Logger log.EventLogger

	// OnExtinction, if set, is called exactly once per civilization, at
	// the moment it transitions from alive to extinct.
	OnExtinction func(*Civilization)

	// Turn is stamped onto emitted events. The driving layer advances it.
	Turn int
}

// NewEngine creates an engine emitting events to the given logger.
// A nil logger falls back to an in-memory one.
func NewEngine(logger log.EventLogger) *Engine {
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	return &Engine{Logger: logger}
}

// ApplyModifier adds the modifier's delta to the targeted stat and
// clamps the result to [MinStat, MaxStat]. It is total: out-of-range
// deltas are absorbed by clamping, never rejected.
//
// If the target is Survival and the clamped result is 0 while the
// civilization is alive, the civilization becomes extinct. Extinction
// is terminal: later positive modifiers may raise Survival above 0
// again, but never revive. Applying a modifier to an already-extinct
// civilization is permitted and simply re-clamps.
func (e *Engine) ApplyModifier(civ *Civilization, mod StatModifier) {
	oldVal := civ.Stat(mod.Stat)
	newVal := clampStat(oldVal + mod.Delta)
	civ.setStat(mod.Stat, newVal)

	if newVal != oldVal {
		e.emit(log.NewStatChangeEvent(e.Turn, civ.Name, mod.Stat.String(), oldVal, newVal))
	}

	if mod.Stat == StatSurvival && newVal == MinStat && civ.Alive {
		civ.Alive = false
		e.emit(log.NewExtinctionEvent(e.Turn, civ.Name))
		if e.OnExtinction != nil {
			e.OnExtinction(civ)
		}
	}
}

// ApplyCard applies every modifier on the card to the civilization, in
// listed order, via repeated ApplyModifier calls. Each step clamps
// independently; deltas are never aggregated first.
func (e *Engine) ApplyCard(civ *Civilization, card *Card) {
	e.emit(log.NewCardPlayedEvent(e.Turn, civ.Name, card.Name))
	for _, mod := range card.Modifiers {
		e.ApplyModifier(civ, mod)
	}
}

func (e *Engine) emit(ev log.SimEvent) {
	if e.Logger != nil {
		e.Logger.Log(ev)
	}
}

func clampStat(v int) int {
	if v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}
