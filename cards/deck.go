package cards

import (
	"math/rand"
)

// NewDeck creates a standard deck of 52 cards, ordered by suit then rank
func NewDeck() Stack {
	deck := make(Stack, 0, 52)
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			deck = append(deck, Card{Rank: rank, Suit: suit})
		}
	}
	return deck
}

// Shuffle returns a shuffled copy of the cards using r
func Shuffle(cards Stack, r *rand.Rand) Stack {
	shuffled := make(Stack, len(cards))
	copy(shuffled, cards)

	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled
}

// DealCards deals count cards and returns them with the remaining deck
func DealCards(deck Stack, count int) (Stack, Stack) {
	if count > len(deck) {
		count = len(deck)
	}

	dealt := make(Stack, count)
	copy(dealt, deck[:count])

	return dealt, deck[count:]
}
