package builds

import "github.com/vkarev/modopt/internal/model"

// derived holds the intermediate quantities computed from base weapon stats
// and accumulated channel totals.
type derived struct {
	elementBonus    float64 // additive elemental damage fraction
	punctureBonus   float64 // 1 + sum of puncture terms
	damageBonus     float64 // base damage multiplier minus 1
	punctureDamage  float64
	weaponDamage    float64
	statusChance    float64
	punctureShare   float64 // fraction of weapon damage that is puncture
	critChance      float64
	critDamage      float64
	critDamageBonus float64 // Doughty: puncture share × status chance × 10
}

// derive computes all intermediate stats for one candidate. Pure function of
// the weapon, the totals and the arcane settings.
func (o *Optimizer) derive(t totals) derived {
	w := o.weapon
	var d derived

	d.elementBonus = t.value(model.ChannelElement)
	d.punctureBonus = 1.0 + t.termSum(model.ChannelPuncture)
	d.damageBonus = t.value(model.ChannelBaseDamage) - 1.0

	d.punctureDamage = w.BasePuncture * d.punctureBonus
	d.weaponDamage = w.BaseDamage + d.punctureDamage + d.elementBonus*w.BaseDamage

	d.statusChance = w.BaseStatusChance * t.value(model.ChannelStatusChance)
	d.punctureShare = d.punctureDamage / d.weaponDamage

	furyMul := 1.0
	if o.settings.Arcanes.Fury {
		furyMul = o.settings.Arcanes.FuryCritMul
	}
	d.critChance = w.BaseCritChance * (t.value(model.ChannelCritChance) * furyMul)
	if o.settings.Arcanes.Avenger {
		d.critChance += o.settings.Arcanes.AvengerBonus
	}

	// Arcane Doughty: status procs on the puncture share convert into bonus
	// crit damage at a 10x rate.
	d.critDamageBonus = d.punctureShare * d.statusChance * 10
	d.critDamage = w.BaseCritDamage*t.value(model.ChannelCritDamage) + d.critDamageBonus

	return d
}
