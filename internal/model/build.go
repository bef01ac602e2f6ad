package model

// DamageTypes splits the modded weapon damage into its physical parts plus
// the elemental bonus fraction, for display.
type DamageTypes struct {
	Impact   float64
	Puncture float64
	Element  float64
}

// Breakdown is the full stat report for one scored build. Display values
// (TotalDamage, WeaponDamage, damage type amounts) are rounded to two
// decimals; chances and multipliers are kept raw.
type Breakdown struct {
	TotalDamage     float64
	WeaponDamage    float64
	CritChance      float64
	CritDamage      float64
	StatusChance    float64
	PunctureShare   float64
	CritDamageBonus float64
	DamageTypes     DamageTypes

	// FactionDamageBonus is the faction bonus constant when more than one
	// mod contributed to the element channel, 1.0 otherwise.
	FactionDamageBonus float64

	// Contributions lists the per-channel audit trail: which mod added how
	// much, in application order (fixed mods first).
	Contributions map[string][]Contribution
}

// Build is the immutable result of scoring one mod combination.
type Build struct {
	FixedMods    []string
	VariableMods []string
	Stats        Breakdown
}
