package hands

import (
	"fmt"

	"github.com/sandeepkvelagam/oddside/cards"
)

// Evaluate finds the best five-card hand from a player's hole cards and the
// community cards. Neither slice is modified.
func Evaluate(hole, community cards.Stack) Result {
	pool := make(cards.Stack, 0, len(hole)+len(community))
	pool = append(pool, hole...)
	pool = append(pool, community...)
	return EvaluatePool(pool)
}

// EvaluatePool evaluates a combined card pool. Pools with fewer than five
// cards produce an "Incomplete Hand" result rather than an error.
func EvaluatePool(pool cards.Stack) Result {
	if len(pool) < 5 {
		return incomplete(pool)
	}

	a := Analyze(pool)
	for _, d := range detectors {
		if d.matches(a) {
			return d.build(a)
		}
	}

	// unreachable: the high card detector always matches
	return buildHighCard(a)
}

func incomplete(pool cards.Stack) Result {
	used := make(cards.Stack, len(pool))
	copy(used, pool)

	return Result{
		Category:    HighCard,
		Name:        IncompleteName,
		Description: fmt.Sprintf("Only %d of 5 required cards available", len(pool)),
		CardsUsed:   used,
		Kickers:     cards.Stack{},
		Ranks:       ranksOf(used.SortedByRank()),
	}
}
