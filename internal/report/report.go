// Package report renders scored builds into human-readable breakdowns.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/vkarev/modopt/internal/game/builds"
	"github.com/vkarev/modopt/internal/model"
)

// StatLine is one row of a build report: a labelled value with its base
// stat, the per-mod contributions and any free-form notes.
type StatLine struct {
	Label         string
	Value         float64
	Base          float64
	Contributions []model.Contribution
	Plain         bool // render as a plain number instead of a percentage
	Notes         []string
}

func (l StatLine) formatValue(v float64) string {
	if l.Plain {
		return fmt.Sprintf("%.2f", v)
	}
	return fmt.Sprintf("%.2f%%", v*100)
}

func (l StatLine) String() string {
	var parts []string
	if l.Base != 0 {
		parts = append(parts, "Base "+l.formatValue(l.Base))
	}
	if len(l.Contributions) > 0 {
		terms := make([]string, len(l.Contributions))
		for i, c := range l.Contributions {
			terms[i] = fmt.Sprintf("%.2f%% from %s", c.Value*100, c.Mod)
		}
		parts = append(parts, "("+strings.Join(terms, " + ")+")")
	}
	for _, note := range l.Notes {
		if note != "" {
			parts = append(parts, note)
		}
	}
	return fmt.Sprintf("  %s: %s %s", l.Label, l.formatValue(l.Value), strings.Join(parts, " * "))
}

// Render writes the full breakdown of one scored build: header, stat lines
// with contributions, and the damage type block.
func Render(w io.Writer, weapon model.WeaponStats, arcanes builds.Arcanes, build model.Build) {
	stats := build.Stats

	mods := make([]string, 0, len(build.FixedMods)+len(build.VariableMods))
	mods = append(mods, build.FixedMods...)
	mods = append(mods, build.VariableMods...)
	fmt.Fprintf(w, "Build: %s\n", strings.Join(mods, ", "))
	fmt.Fprintf(w, "Total Damage: %.2f\n", stats.TotalDamage)
	fmt.Fprintln(w, "Details:")

	var furyNote, avengerNote string
	if arcanes.Fury {
		furyNote = fmt.Sprintf("%.0f%% from Arcane Fury", (arcanes.FuryCritMul-1)*100)
	}
	if arcanes.Avenger {
		avengerNote = fmt.Sprintf("%.0f%% flat from Arcane Avenger", arcanes.AvengerBonus*100)
	}

	lines := []StatLine{
		{
			Label:         "Weapon Damage",
			Value:         stats.WeaponDamage,
			Contributions: stats.Contributions[model.ChannelBaseDamage],
			Plain:         true,
		},
		{
			Label:         "Critical Chance",
			Value:         stats.CritChance,
			Base:          weapon.BaseCritChance,
			Contributions: stats.Contributions[model.ChannelCritChance],
			Notes:         []string{furyNote, avengerNote},
		},
		{
			Label:         "Critical Damage",
			Value:         stats.CritDamage,
			Base:          weapon.BaseCritDamage,
			Contributions: stats.Contributions[model.ChannelCritDamage],
			Notes:         []string{fmt.Sprintf("Doughty Bonus %.2f", stats.CritDamageBonus)},
		},
		{
			Label:         "Status Chance",
			Value:         stats.StatusChance,
			Base:          weapon.BaseStatusChance,
			Contributions: stats.Contributions[model.ChannelStatusChance],
		},
		{
			Label:         "Puncture Chance",
			Value:         stats.PunctureShare,
			Base:          weapon.BasePuncture / weapon.BaseDamage,
			Contributions: stats.Contributions[model.ChannelPuncture],
		},
	}
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}

	fmt.Fprintf(w, "  Doughty Bonus: %.2f\n", stats.CritDamageBonus)

	state := "inactive"
	if stats.FactionDamageBonus != 1.0 {
		state = "applied"
	}
	fmt.Fprintf(w, "  Damage Type Bonus Against Faction: %g (%s)\n", stats.FactionDamageBonus, state)

	fmt.Fprintln(w, "  Damage Multipliers:")
	fmt.Fprintf(w, "    Impact: %.2f\n", stats.DamageTypes.Impact)
	fmt.Fprintf(w, "    Puncture: %.2f\n", stats.DamageTypes.Puncture)
	if stats.DamageTypes.Element != 0 {
		fmt.Fprintf(w, "    Additional Element Type: %.2f\n", stats.DamageTypes.Element*weapon.BaseDamage)
	}
	fmt.Fprintln(w)
}
