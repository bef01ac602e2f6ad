package builds

import (
	"math"
	"slices"

	"github.com/vkarev/modopt/internal/model"
)

// flatDamageBonus is a flat additive term in the total damage formula,
// calibrated for this weapon class baseline.
const flatDamageBonus = 144.0

// score combines derived stats into the scalar total damage.
func (o *Optimizer) score(d derived) float64 {
	factionMul := 1.0
	if o.settings.FactionMod && len(o.fixed) > 1 {
		factionMul = o.settings.FactionBonus
	}

	// Crit chance over 100% pays out an extra 0.5 per point.
	critMul := 1.0 + d.critChance*(d.critDamage-1.0) + math.Max(0, d.critChance-1.0)*0.5

	raw := o.weapon.BaseDamage*(1.0+d.elementBonus+d.punctureBonus)*(1.0+d.damageBonus) + flatDamageBonus
	return raw * critMul * factionMul
}

// Evaluate scores one candidate: the fixed mods plus the given variable mods.
// Pure: the same mod set always yields the same breakdown, and the variable
// mod order only affects the contribution sequence.
func (o *Optimizer) Evaluate(variable []string) model.Build {
	t, contribs := o.aggregate(variable)
	d := o.derive(t)
	total := o.score(d)

	return model.Build{
		FixedMods:    slices.Clone(o.fixedOrder),
		VariableMods: slices.Clone(variable),
		Stats: model.Breakdown{
			TotalDamage:     round2(total),
			WeaponDamage:    round2(d.weaponDamage),
			CritChance:      d.critChance,
			CritDamage:      d.critDamage,
			StatusChance:    d.statusChance,
			PunctureShare:   d.punctureShare,
			CritDamageBonus: d.critDamageBonus,
			DamageTypes: model.DamageTypes{
				Impact:   round2(o.weapon.BaseImpact),
				Puncture: round2(d.punctureDamage),
				Element:  d.elementBonus,
			},
			FactionDamageBonus: o.factionDamageBonus(contribs),
			Contributions:      contribs,
		},
	}
}

// factionDamageBonus reports the element damage type bonus against the target
// faction: active when more than one mod contributed to the element channel.
func (o *Optimizer) factionDamageBonus(contribs map[string][]model.Contribution) float64 {
	if len(contribs[model.ChannelElement]) > 1 {
		return o.settings.FactionBonus
	}
	return 1.0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
