// Package data holds the stock in-memory tables: the reference weapon and the
// mod catalog the optimizer ships with. Callers with other weapons supply
// their own tables through config.
package data

import "github.com/vkarev/modopt/internal/model"

// CeramicDagger returns the base stats of the reference weapon.
func CeramicDagger() model.WeaponStats {
	return model.WeaponStats{
		Name:             "Ceramic Dagger",
		BaseDamage:       140,
		BaseImpact:       14,
		BasePuncture:     126,
		BaseStatusChance: 0.20,
		BaseCritChance:   0.40,
		BaseCritDamage:   1.5,
	}
}

// StockMods returns the standard melee mod catalog used as the default
// optional pool. Values are fractional bonuses (1.65 = +165%).
func StockMods() map[string]model.Mod {
	return map[string]model.Mod{
		"Weeping Wounds":        {model.ChannelStatusChance: 4.40},
		"Blood Rush":            {model.ChannelCritChance: 4.40},
		"Jugulus Barbs":         {model.ChannelPuncture: 0.90, model.ChannelStatusChance: 0.60},
		"Auger Strike":          {model.ChannelPuncture: 1.20},
		"Primed Pressure Point": {model.ChannelBaseDamage: 1.65},
		"Spoiled Strike":        {model.ChannelBaseDamage: 1.00},
		"60/60":                 {model.ChannelElement: 0.60, model.ChannelStatusChance: 0.60},
		"60/60 2":               {model.ChannelElement: 0.60, model.ChannelStatusChance: 0.60},
		"Primed Fever Strike":   {model.ChannelElement: 1.65},
		"Shocking Touch":        {model.ChannelElement: 0.90},
		"Melee Prowess":         {model.ChannelStatusChance: 0.90},
		"Sacrificial Steel":     {model.ChannelCritChance: 2.20},
		"Organ Shatter":         {model.ChannelCritDamage: 0.90},
		"Gladiator Might":       {model.ChannelCritDamage: 0.60},
	}
}
