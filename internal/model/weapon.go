package model

// WeaponStats holds the intrinsic stats of a weapon. Values are supplied once
// when the optimizer is built and never change during a search.
//
// BaseDamage must be positive: derived puncture share divides by the modded
// weapon damage, which stays nonzero as long as the base damage is.
type WeaponStats struct {
	Name             string
	BaseDamage       float64
	BaseImpact       float64
	BasePuncture     float64
	BaseStatusChance float64
	BaseCritChance   float64
	BaseCritDamage   float64
}
