// Package builds implements the weapon build optimizer: it folds mod effects
// into stat totals, derives damage and crit quantities, scores every candidate
// combination and ranks the best ones.
package builds

import (
	"errors"
	"maps"
	"slices"

	"github.com/vkarev/modopt/internal/model"
)

// DefaultTopN is how many ranked builds Search returns when the caller does
// not ask for a specific count.
const DefaultTopN = 3

// ErrTooManyFixedMods is returned by Search when the fixed mods alone exceed
// the slot capacity. The search aborts before enumerating any candidate.
var ErrTooManyFixedMods = errors.New("fixed mods exceed slot capacity")

// Arcanes holds the arcane toggles that alter crit derivation.
type Arcanes struct {
	Avenger      bool    // adds AvengerBonus flat to crit chance
	AvengerBonus float64 // typical: 0.45
	Fury         bool    // multiplies the crit chance multiplier by FuryCritMul
	FuryCritMul  float64 // typical: 2.8
}

// Settings is the per-optimizer configuration: slot capacity, arcane toggles
// and faction scoring. Fixed for the lifetime of an Optimizer, never read
// from ambient process state.
type Settings struct {
	MaxSlots int
	Arcanes  Arcanes

	// FactionMod enables the faction damage multiplier. The multiplier
	// kicks in when more than one fixed mod is equipped: faction builds
	// carry at least two faction-specific fixed mods.
	FactionMod   bool
	FactionBonus float64
}

// Optimizer searches mod combinations for a single weapon. Safe for
// concurrent use: all search state is local to one call.
type Optimizer struct {
	weapon    model.WeaponStats
	fixed     map[string]model.Mod
	available map[string]model.Mod
	settings  Settings

	// sorted name lists, so enumeration order and contribution order are
	// deterministic regardless of map iteration
	fixedOrder []string
	poolOrder  []string
}

// NewOptimizer builds an Optimizer over the given weapon, mandatory mods and
// optional mod pool. The mod maps are cloned; later caller mutation does not
// affect the optimizer.
func NewOptimizer(weapon model.WeaponStats, fixed, available map[string]model.Mod, settings Settings) *Optimizer {
	return &Optimizer{
		weapon:     weapon,
		fixed:      maps.Clone(fixed),
		available:  maps.Clone(available),
		settings:   settings,
		fixedOrder: sortedModNames(fixed),
		poolOrder:  sortedModNames(available),
	}
}

// sortedModNames returns the map's keys in ascending order.
func sortedModNames(mods map[string]model.Mod) []string {
	names := make([]string, 0, len(mods))
	for name := range mods {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// FreeSlots returns how many optional mod slots remain after the fixed mods.
// Negative means the configuration is invalid and Search will refuse it.
func (o *Optimizer) FreeSlots() int {
	return o.settings.MaxSlots - len(o.fixed)
}
