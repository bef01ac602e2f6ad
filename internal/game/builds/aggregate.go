package builds

import "github.com/vkarev/modopt/internal/model"

// combineRule tells the aggregator how effects on a channel stack.
type combineRule uint8

const (
	// combineBonus: accumulator starts at 1.0 and effects add on top, so the
	// stored value is the final multiplier (1 + sum of bonuses).
	combineBonus combineRule = iota
	// combineAdd: accumulator starts at 0.0 and effects add.
	combineAdd
	// combineTerms: effects collect as independent terms; derivation turns
	// them into a multiplier as 1 + sum(terms).
	combineTerms
)

// channelRules attaches a stacking rule to every recognized channel.
var channelRules = map[string]combineRule{
	model.ChannelBaseDamage:   combineBonus,
	model.ChannelPuncture:     combineTerms,
	model.ChannelElement:      combineAdd,
	model.ChannelStatusChance: combineBonus,
	model.ChannelCritChance:   combineBonus,
	model.ChannelCritDamage:   combineBonus,
}

// accumulator is the working state for one channel.
type accumulator struct {
	rule  combineRule
	value float64
	terms []float64
}

// totals holds one accumulator per recognized channel.
type totals map[string]*accumulator

func newTotals() totals {
	t := make(totals, len(channelRules))
	for channel, rule := range channelRules {
		acc := &accumulator{rule: rule}
		if rule == combineBonus {
			acc.value = 1.0
		}
		t[channel] = acc
	}
	return t
}

// value returns the scalar accumulator for a channel.
func (t totals) value(channel string) float64 {
	return t[channel].value
}

// termSum returns the sum of collected terms for a combineTerms channel.
func (t totals) termSum(channel string) float64 {
	var sum float64
	for _, term := range t[channel].terms {
		sum += term
	}
	return sum
}

// aggregate folds the fixed mods and then the given variable mods into channel
// totals, recording a per-channel audit trail. Numeric results do not depend
// on mod order; only the contribution sequence does.
func (o *Optimizer) aggregate(variable []string) (totals, map[string][]model.Contribution) {
	t := newTotals()
	contribs := make(map[string][]model.Contribution, len(channelRules))
	for channel := range channelRules {
		contribs[channel] = nil
	}

	for _, name := range o.fixedOrder {
		applyMod(t, contribs, name, o.fixed[name])
	}
	for _, name := range variable {
		applyMod(t, contribs, name, o.available[name])
	}
	return t, contribs
}

// applyMod walks the recognized channels in fixed order. Effect keys outside
// the channel set are never consulted, so mods may declare effects this
// weapon class does not use.
func applyMod(t totals, contribs map[string][]model.Contribution, name string, mod model.Mod) {
	for _, channel := range model.Channels {
		value, ok := mod[channel]
		if !ok {
			continue
		}
		acc := t[channel]
		if acc.rule == combineTerms {
			acc.terms = append(acc.terms, value)
		} else {
			acc.value += value
		}
		contribs[channel] = append(contribs[channel], model.Contribution{Mod: name, Value: value})
	}
}
