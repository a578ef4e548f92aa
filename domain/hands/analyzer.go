package hands

import (
	"sort"

	"github.com/sandeepkvelagam/oddside/cards"
)

// Analysis holds the rank and suit frequency tables of a card pool
type Analysis struct {
	Cards      cards.Stack // pool ordered by rank, highest first
	RankCounts map[cards.Rank]int
	SuitCounts map[cards.Suit]int

	flushSuit cards.Suit // empty when no suit has five or more cards
}

// Analyze builds the frequency tables for a pool of any size
func Analyze(pool cards.Stack) *Analysis {
	a := &Analysis{
		Cards:      pool.SortedByRank(),
		RankCounts: make(map[cards.Rank]int, len(pool)),
		SuitCounts: make(map[cards.Suit]int, len(cards.Suits)),
	}

	for _, c := range pool {
		a.RankCounts[c.Rank]++
		a.SuitCounts[c.Suit]++
	}

	for _, suit := range cards.Suits {
		if a.SuitCounts[suit] >= 5 {
			a.flushSuit = suit
			break
		}
	}

	return a
}

// FlushSuit returns the suit holding five or more cards, if any
func (a *Analysis) FlushSuit() (cards.Suit, bool) {
	return a.flushSuit, a.flushSuit != ""
}

// ranksWithCount returns the ranks that occur exactly n times, highest first
func (a *Analysis) ranksWithCount(n int) []cards.Rank {
	var ranks []cards.Rank
	for rank, count := range a.RankCounts {
		if count == n {
			ranks = append(ranks, rank)
		}
	}
	sortRanksDesc(ranks)
	return ranks
}

// ofRank returns up to limit cards of the given rank
func (a *Analysis) ofRank(rank cards.Rank, limit int) cards.Stack {
	result := cards.Stack{}
	for _, c := range a.Cards {
		if len(result) == limit {
			break
		}
		if c.Rank == rank {
			result = append(result, c)
		}
	}
	return result
}

// ofSuit returns every card of the given suit, highest first
func (a *Analysis) ofSuit(suit cards.Suit) cards.Stack {
	result := cards.Stack{}
	for _, c := range a.Cards {
		if c.Suit == suit {
			result = append(result, c)
		}
	}
	return result
}

// excluding returns up to limit cards whose rank is not in ranks, highest first
func (a *Analysis) excluding(limit int, ranks ...cards.Rank) cards.Stack {
	result := cards.Stack{}
	for _, c := range a.Cards {
		if len(result) == limit {
			break
		}
		if !containsRank(ranks, c.Rank) {
			result = append(result, c)
		}
	}
	return result
}

// straightHigh finds the highest five consecutive ranks among stack.
// The wheel (A-2-3-4-5) counts with a high card of 5.
func straightHigh(stack cards.Stack) (cards.Rank, bool) {
	present := make(map[cards.Rank]bool, len(stack))
	for _, c := range stack {
		present[c.Rank] = true
	}

	for high := cards.Ace; high >= cards.Six; high-- {
		if present[high] && present[high-1] && present[high-2] && present[high-3] && present[high-4] {
			return high, true
		}
	}

	if present[cards.Ace] && present[cards.Two] && present[cards.Three] && present[cards.Four] && present[cards.Five] {
		return cards.Five, true
	}

	return 0, false
}

// straightWindow lists the ranks of the straight topped by high, highest first
func straightWindow(high cards.Rank) []cards.Rank {
	if high == cards.Five {
		return []cards.Rank{cards.Five, cards.Four, cards.Three, cards.Two, cards.Ace}
	}
	return []cards.Rank{high, high - 1, high - 2, high - 3, high - 4}
}

func sortRanksDesc(ranks []cards.Rank) {
	sort.Slice(ranks, func(i, j int) bool {
		return ranks[i] > ranks[j]
	})
}

func containsRank(ranks []cards.Rank, rank cards.Rank) bool {
	for _, r := range ranks {
		if r == rank {
			return true
		}
	}
	return false
}

func ranksOf(stack cards.Stack) []cards.Rank {
	ranks := make([]cards.Rank, len(stack))
	for i, c := range stack {
		ranks[i] = c.Rank
	}
	return ranks
}
