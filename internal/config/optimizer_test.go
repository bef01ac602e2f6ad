package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkarev/modopt/internal/model"
)

func TestDefaultOptimizer(t *testing.T) {
	cfg := DefaultOptimizer()

	assert.Equal(t, "Ceramic Dagger", cfg.Weapon.Name)
	assert.Equal(t, 140.0, cfg.Weapon.BaseDamage)
	assert.Equal(t, 8, cfg.MaxSlots)
	assert.Equal(t, 3, cfg.TopN)
	assert.Empty(t, cfg.FixedMods)
	assert.Len(t, cfg.Mods, 14)

	assert.True(t, cfg.Arcanes.Avenger)
	assert.Equal(t, 0.45, cfg.Arcanes.AvengerBonus)
	assert.True(t, cfg.Arcanes.Fury)
	assert.Equal(t, 2.8, cfg.Arcanes.FuryCritMul)
	assert.True(t, cfg.Faction.Enabled)
	assert.Equal(t, 1.5, cfg.Faction.Bonus)
}

func TestLoadOptimizerMissingFile(t *testing.T) {
	cfg, err := LoadOptimizer(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultOptimizer(), cfg)
}

func TestLoadOptimizerOverrides(t *testing.T) {
	raw := `
weapon:
  name: "Kronen Prime"
  base_damage: 94
  base_impact: 14.1
  base_puncture: 9.4
  base_status_chance: 0.34
  base_crit_chance: 0.30
  base_crit_damage: 2.0
arcanes:
  fury: false
faction:
  bonus: 1.3
max_slots: 6
top_n: 5
workers: 4
fixed_mods:
  Primed Smite Grineer:
    faction_damage: 0.55
mods:
  Blood Rush:
    crit_chance: 4.4
  Jugulus Barbs:
    puncture: 0.9
    status_chance: 0.6
`
	path := filepath.Join(t.TempDir(), "optimizer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := LoadOptimizer(path)
	require.NoError(t, err)

	assert.Equal(t, "Kronen Prime", cfg.Weapon.Name)
	assert.Equal(t, 94.0, cfg.Weapon.BaseDamage)
	assert.False(t, cfg.Arcanes.Fury)
	// untouched keys keep their defaults
	assert.True(t, cfg.Arcanes.Avenger)
	assert.Equal(t, 0.45, cfg.Arcanes.AvengerBonus)
	assert.Equal(t, 1.3, cfg.Faction.Bonus)
	assert.Equal(t, 6, cfg.MaxSlots)
	assert.Equal(t, 5, cfg.TopN)
	assert.Equal(t, 4, cfg.Workers)

	require.Contains(t, cfg.FixedMods, "Primed Smite Grineer")
	require.Len(t, cfg.Mods, 2)
	assert.Equal(t, model.Mod{"crit_chance": 4.4}, cfg.Mods["Blood Rush"])
	assert.Equal(t, model.Mod{"puncture": 0.9, "status_chance": 0.6}, cfg.Mods["Jugulus Barbs"])
}

func TestLoadOptimizerBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "optimizer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("weapon: ["), 0o644))

	_, err := LoadOptimizer(path)
	require.Error(t, err)
}

func TestSettingsConversion(t *testing.T) {
	cfg := DefaultOptimizer()
	settings := cfg.Settings()

	assert.Equal(t, cfg.MaxSlots, settings.MaxSlots)
	assert.Equal(t, cfg.Arcanes.AvengerBonus, settings.Arcanes.AvengerBonus)
	assert.Equal(t, cfg.Faction.Enabled, settings.FactionMod)
	assert.Equal(t, cfg.Faction.Bonus, settings.FactionBonus)

	weapon := cfg.WeaponStats()
	assert.Equal(t, cfg.Weapon.BaseDamage, weapon.BaseDamage)
	assert.Equal(t, cfg.Weapon.BaseCritDamage, weapon.BaseCritDamage)
}
