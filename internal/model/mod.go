package model

// Stat channels a mod effect can target. Each channel has its own stacking
// rule, attached in the builds package.
const (
	ChannelBaseDamage   = "base_damage"
	ChannelPuncture     = "puncture"
	ChannelElement      = "element"
	ChannelStatusChance = "status_chance"
	ChannelCritChance   = "crit_chance"
	ChannelCritDamage   = "crit_damage"
)

// Channels is the fixed processing order for mod effects. Aggregation walks
// this list, so effect keys outside it are never consulted: mod definitions
// may carry effects a weapon class does not use without causing errors.
var Channels = []string{
	ChannelBaseDamage,
	ChannelPuncture,
	ChannelElement,
	ChannelStatusChance,
	ChannelCritChance,
	ChannelCritDamage,
}

// Mod maps channel names to effect values. A mod may touch any number of
// channels at once; values are fractional bonuses (1.65 = +165%).
type Mod map[string]float64

// Contribution records which named mod supplied how much effect to a channel.
// Recorded once per candidate build and never mutated afterwards.
type Contribution struct {
	Mod   string
	Value float64
}
