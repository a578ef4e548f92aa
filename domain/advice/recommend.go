package advice

import (
	"fmt"

	"github.com/sandeepkvelagam/oddside/domain/hands"
)

// Action is a suggested betting action
type Action string

const (
	Raise Action = "RAISE"
	Call  Action = "CALL"
	Check Action = "CHECK"
	Fold  Action = "FOLD"
)

// Potential is the qualitative upside of a hand
type Potential string

const (
	High   Potential = "High"
	Medium Potential = "Medium"
	Low    Potential = "Low"
)

// Stage is the betting round. Values are matched exactly, including case.
type Stage string

const (
	Preflop Stage = "Preflop"
	Flop    Stage = "Flop"
	Turn    Stage = "Turn"
	River   Stage = "River"
)

// Valid reports whether s is one of the four betting stages
func (s Stage) Valid() bool {
	switch s {
	case Preflop, Flop, Turn, River:
		return true
	}
	return false
}

// Recommendation is the suggested action for a hand
type Recommendation struct {
	Action    Action    `json:"action"`
	Potential Potential `json:"potential"`
	Reasoning string    `json:"reasoning"`
}

type rule struct {
	min       hands.Category
	action    Action
	potential Potential
	reasoning string // format verbs: category name, description
}

// rules are checked in order; the first rule the category reaches applies
var rules = [...]rule{
	{hands.FullHouse, Raise, High, "%s (%s) is a premium made hand. Raise to build the pot."},
	{hands.Straight, Raise, High, "%s (%s) is a strong made hand. Raise for value."},
	{hands.ThreeOfAKind, Call, Medium, "%s (%s) is solid but can be outdrawn. Call and keep the pot controlled."},
	{hands.TwoPair, Call, Medium, "%s (%s) is a reasonable holding. Call and re-evaluate on the next card."},
}

const (
	pairOnFlop = "%s (%s) is marginal. Check on the flop and see another card cheaply."
	pairLater  = "%s (%s) is unlikely to hold up this late. Fold to pressure."
	nothing    = "%s (%s) has little showdown value. Fold unless you can check for free."
)

// Recommend suggests an action for an evaluated hand at the given stage
func Recommend(result hands.Result, stage Stage) Recommendation {
	for _, r := range rules {
		if result.Category >= r.min {
			return recommendation(r.action, r.potential, r.reasoning, result)
		}
	}

	if result.Category >= hands.OnePair {
		if stage == Flop {
			return recommendation(Check, Low, pairOnFlop, result)
		}
		return recommendation(Fold, Low, pairLater, result)
	}

	return recommendation(Fold, Low, nothing, result)
}

func recommendation(action Action, potential Potential, format string, result hands.Result) Recommendation {
	return Recommendation{
		Action:    action,
		Potential: potential,
		Reasoning: fmt.Sprintf(format, result.Name, result.Description),
	}
}
