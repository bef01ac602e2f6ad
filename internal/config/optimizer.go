package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vkarev/modopt/internal/data"
	"github.com/vkarev/modopt/internal/game/builds"
	"github.com/vkarev/modopt/internal/model"
)

// WeaponConfig holds the intrinsic weapon stats.
type WeaponConfig struct {
	Name             string  `yaml:"name"`
	BaseDamage       float64 `yaml:"base_damage"`
	BaseImpact       float64 `yaml:"base_impact"`
	BasePuncture     float64 `yaml:"base_puncture"`
	BaseStatusChance float64 `yaml:"base_status_chance"`
	BaseCritChance   float64 `yaml:"base_crit_chance"`
	BaseCritDamage   float64 `yaml:"base_crit_damage"`
}

// ArcanesConfig holds the arcane toggles and their bonus constants.
type ArcanesConfig struct {
	Avenger      bool    `yaml:"avenger"`
	AvengerBonus float64 `yaml:"avenger_bonus"`
	Fury         bool    `yaml:"fury"`
	FuryCritMul  float64 `yaml:"fury_crit_mul"`
}

// FactionConfig holds the faction damage multiplier toggle.
type FactionConfig struct {
	Enabled bool    `yaml:"enabled"`
	Bonus   float64 `yaml:"bonus"`
}

// Optimizer holds the full configuration for a build search.
type Optimizer struct {
	Weapon  WeaponConfig  `yaml:"weapon"`
	Arcanes ArcanesConfig `yaml:"arcanes"`
	Faction FactionConfig `yaml:"faction"`

	MaxSlots int `yaml:"max_slots"`
	TopN     int `yaml:"top_n"`

	// Workers > 1 fans the search out across goroutines.
	Workers int `yaml:"workers"`

	// Mod tables: name -> channel -> effect value.
	FixedMods map[string]model.Mod `yaml:"fixed_mods"`
	Mods      map[string]model.Mod `yaml:"mods"`
}

// DefaultOptimizer returns the stock Ceramic Dagger setup: no fixed mods, the
// standard 14-mod pool, both arcanes and the faction multiplier enabled.
func DefaultOptimizer() Optimizer {
	weapon := data.CeramicDagger()
	return Optimizer{
		Weapon: WeaponConfig{
			Name:             weapon.Name,
			BaseDamage:       weapon.BaseDamage,
			BaseImpact:       weapon.BaseImpact,
			BasePuncture:     weapon.BasePuncture,
			BaseStatusChance: weapon.BaseStatusChance,
			BaseCritChance:   weapon.BaseCritChance,
			BaseCritDamage:   weapon.BaseCritDamage,
		},
		Arcanes: ArcanesConfig{
			Avenger:      true,
			AvengerBonus: 0.45,
			Fury:         true,
			FuryCritMul:  2.8,
		},
		Faction: FactionConfig{
			Enabled: true,
			Bonus:   1.5,
		},
		MaxSlots:  8,
		TopN:      builds.DefaultTopN,
		FixedMods: map[string]model.Mod{},
		Mods:      data.StockMods(),
	}
}

// LoadOptimizer loads optimizer config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadOptimizer(path string) (Optimizer, error) {
	cfg := DefaultOptimizer()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	// yaml merges into pre-populated maps; a mod table in the file must
	// replace the stock table, not extend it.
	var tables struct {
		FixedMods map[string]model.Mod `yaml:"fixed_mods"`
		Mods      map[string]model.Mod `yaml:"mods"`
	}
	if err := yaml.Unmarshal(raw, &tables); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if tables.FixedMods != nil {
		cfg.FixedMods = tables.FixedMods
	}
	if tables.Mods != nil {
		cfg.Mods = tables.Mods
	}

	return cfg, nil
}

// WeaponStats converts the weapon section to the model type.
func (c Optimizer) WeaponStats() model.WeaponStats {
	return model.WeaponStats{
		Name:             c.Weapon.Name,
		BaseDamage:       c.Weapon.BaseDamage,
		BaseImpact:       c.Weapon.BaseImpact,
		BasePuncture:     c.Weapon.BasePuncture,
		BaseStatusChance: c.Weapon.BaseStatusChance,
		BaseCritChance:   c.Weapon.BaseCritChance,
		BaseCritDamage:   c.Weapon.BaseCritDamage,
	}
}

// Settings converts the search sections to optimizer settings.
func (c Optimizer) Settings() builds.Settings {
	return builds.Settings{
		MaxSlots: c.MaxSlots,
		Arcanes: builds.Arcanes{
			Avenger:      c.Arcanes.Avenger,
			AvengerBonus: c.Arcanes.AvengerBonus,
			Fury:         c.Arcanes.Fury,
			FuryCritMul:  c.Arcanes.FuryCritMul,
		},
		FactionMod:   c.Faction.Enabled,
		FactionBonus: c.Faction.Bonus,
	}
}
