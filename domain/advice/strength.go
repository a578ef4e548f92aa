// Package advice turns a hand evaluation into qualitative guidance: a strength
// tier and a static action recommendation. Everything here is a pure lookup.
package advice

import "github.com/sandeepkvelagam/oddside/domain/hands"

// Tier is a qualitative label for hand strength
type Tier string

const (
	Monster    Tier = "Monster"
	VeryStrong Tier = "Very Strong"
	Strong     Tier = "Strong"
	Good       Tier = "Good"
	Decent     Tier = "Decent"
	Marginal   Tier = "Marginal"
	Weak       Tier = "Weak"
	VeryWeak   Tier = "Very Weak"
)

// tierThresholds are checked in order; the first threshold the category reaches wins
var tierThresholds = [...]struct {
	min  hands.Category
	tier Tier
}{
	{hands.StraightFlush, Monster},
	{hands.FullHouse, VeryStrong},
	{hands.Flush, Strong},
	{hands.Straight, Good},
	{hands.ThreeOfAKind, Decent},
	{hands.TwoPair, Marginal},
	{hands.OnePair, Weak},
}

// Classify maps a hand category to its strength tier
func Classify(category hands.Category) Tier {
	for _, t := range tierThresholds {
		if category >= t.min {
			return t.tier
		}
	}
	return VeryWeak
}
