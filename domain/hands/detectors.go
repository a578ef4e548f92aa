package hands

import (
	"fmt"

	"github.com/sandeepkvelagam/oddside/cards"
)

// detector pairs a category test with the builder that assembles its result
type detector struct {
	category Category
	matches  func(a *Analysis) bool
	build    func(a *Analysis) Result
}

// detectors are evaluated top to bottom and the first match wins.
// The order is part of the contract and must stay strongest first.
var detectors = [...]detector{
	{RoyalFlush, isRoyalFlush, buildRoyalFlush},
	{StraightFlush, isStraightFlush, buildStraightFlush},
	{FourOfAKind, isFourOfAKind, buildFourOfAKind},
	{FullHouse, isFullHouse, buildFullHouse},
	{Flush, isFlush, buildFlush},
	{Straight, isStraight, buildStraight},
	{ThreeOfAKind, isThreeOfAKind, buildThreeOfAKind},
	{TwoPair, isTwoPair, buildTwoPair},
	{OnePair, isOnePair, buildOnePair},
	{HighCard, isHighCard, buildHighCard},
}

func newResult(category Category, description string, used, kickers cards.Stack, ranks []cards.Rank) Result {
	return Result{
		Category:    category,
		Name:        category.String(),
		Description: description,
		CardsUsed:   used,
		Kickers:     kickers,
		Ranks:       ranks,
	}
}

// flushStraightHigh looks for a straight inside the flush suit
func flushStraightHigh(a *Analysis) (cards.Rank, bool) {
	suit, ok := a.FlushSuit()
	if !ok {
		return 0, false
	}
	return straightHigh(a.ofSuit(suit))
}

// topOfFlushSuit returns the five highest cards of the flush suit. For straight
// flushes this is not rebuilt from the matched straight window.
func topOfFlushSuit(a *Analysis) cards.Stack {
	suit, _ := a.FlushSuit()
	return a.ofSuit(suit)[:5]
}

func isRoyalFlush(a *Analysis) bool {
	high, ok := flushStraightHigh(a)
	return ok && high == cards.Ace
}

func buildRoyalFlush(a *Analysis) Result {
	suit, _ := a.FlushSuit()
	return newResult(RoyalFlush,
		fmt.Sprintf("Royal flush in %s", suit),
		topOfFlushSuit(a), cards.Stack{}, []cards.Rank{cards.Ace})
}

func isStraightFlush(a *Analysis) bool {
	_, ok := flushStraightHigh(a)
	return ok
}

func buildStraightFlush(a *Analysis) Result {
	high, _ := flushStraightHigh(a)
	return newResult(StraightFlush,
		fmt.Sprintf("%s-high straight flush", high.Name()),
		topOfFlushSuit(a), cards.Stack{}, []cards.Rank{high})
}

func isFourOfAKind(a *Analysis) bool {
	return len(a.ranksWithCount(4)) > 0
}

func buildFourOfAKind(a *Analysis) Result {
	quad := a.ranksWithCount(4)[0]
	kicker := a.excluding(1, quad)

	used := append(a.ofRank(quad, 4), kicker...)
	return newResult(FourOfAKind,
		fmt.Sprintf("Four %s", quad.Plural()),
		used, kicker, append([]cards.Rank{quad}, ranksOf(kicker)...))
}

// fullHouseRanks picks the highest trips and the best remaining pair,
// where a second set of trips may play as the pair
func fullHouseRanks(a *Analysis) (trip, pair cards.Rank, ok bool) {
	trips := a.ranksWithCount(3)
	if len(trips) == 0 {
		return 0, 0, false
	}

	candidates := append([]cards.Rank{}, trips[1:]...)
	candidates = append(candidates, a.ranksWithCount(2)...)
	if len(candidates) == 0 {
		return 0, 0, false
	}
	sortRanksDesc(candidates)

	return trips[0], candidates[0], true
}

func isFullHouse(a *Analysis) bool {
	_, _, ok := fullHouseRanks(a)
	return ok
}

func buildFullHouse(a *Analysis) Result {
	trip, pair, _ := fullHouseRanks(a)

	used := append(a.ofRank(trip, 3), a.ofRank(pair, 2)...)
	return newResult(FullHouse,
		fmt.Sprintf("%s full of %s", trip.Plural(), pair.Plural()),
		used, cards.Stack{}, []cards.Rank{trip, pair})
}

func isFlush(a *Analysis) bool {
	_, ok := a.FlushSuit()
	return ok
}

func buildFlush(a *Analysis) Result {
	used := topOfFlushSuit(a)
	return newResult(Flush,
		fmt.Sprintf("%s-high flush", used[0].Rank.Name()),
		used, cards.Stack{}, ranksOf(used))
}

func isStraight(a *Analysis) bool {
	_, ok := straightHigh(a.Cards)
	return ok
}

func buildStraight(a *Analysis) Result {
	high, _ := straightHigh(a.Cards)

	used := cards.Stack{}
	for _, rank := range straightWindow(high) {
		used = append(used, a.ofRank(rank, 1)...)
	}

	return newResult(Straight,
		fmt.Sprintf("%s-high straight", high.Name()),
		used, cards.Stack{}, []cards.Rank{high})
}

func isThreeOfAKind(a *Analysis) bool {
	return len(a.ranksWithCount(3)) > 0
}

func buildThreeOfAKind(a *Analysis) Result {
	trip := a.ranksWithCount(3)[0]
	kickers := a.excluding(2, trip)

	used := append(a.ofRank(trip, 3), kickers...)
	return newResult(ThreeOfAKind,
		fmt.Sprintf("Three %s", trip.Plural()),
		used, kickers, append([]cards.Rank{trip}, ranksOf(kickers)...))
}

func isTwoPair(a *Analysis) bool {
	return len(a.ranksWithCount(2)) >= 2
}

func buildTwoPair(a *Analysis) Result {
	pairs := a.ranksWithCount(2)
	high, low := pairs[0], pairs[1]
	kicker := a.excluding(1, high, low)

	used := append(a.ofRank(high, 2), a.ofRank(low, 2)...)
	used = append(used, kicker...)
	return newResult(TwoPair,
		fmt.Sprintf("%s and %s", high.Plural(), low.Plural()),
		used, kicker, append([]cards.Rank{high, low}, ranksOf(kicker)...))
}

func isOnePair(a *Analysis) bool {
	return len(a.ranksWithCount(2)) > 0
}

func buildOnePair(a *Analysis) Result {
	pair := a.ranksWithCount(2)[0]
	kickers := a.excluding(3, pair)

	used := append(a.ofRank(pair, 2), kickers...)
	return newResult(OnePair,
		fmt.Sprintf("Pair of %s", pair.Plural()),
		used, kickers, append([]cards.Rank{pair}, ranksOf(kickers)...))
}

func isHighCard(*Analysis) bool {
	return true
}

func buildHighCard(a *Analysis) Result {
	used := make(cards.Stack, 5)
	copy(used, a.Cards[:5])

	kickers := make(cards.Stack, 4)
	copy(kickers, used[1:])

	return newResult(HighCard,
		fmt.Sprintf("%s high", used[0].Rank.Name()),
		used, kickers, ranksOf(used))
}
