package cards

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	deck := NewDeck()

	require.Len(t, deck, 52)
	assert.Empty(t, deck.Duplicates(), "a fresh deck has no duplicate cards")
	assert.Equal(t, Card{Rank: Two, Suit: Hearts}, deck[0])
	assert.Equal(t, Card{Rank: Ace, Suit: Spades}, deck[51])
}

func TestShuffle(t *testing.T) {
	original := NewDeck()
	shuffled := Shuffle(original, rand.New(rand.NewSource(42)))

	require.Len(t, shuffled, len(original))
	assert.ElementsMatch(t, original, shuffled)
	assert.NotEqual(t, original, shuffled, "shuffled deck is identical to the original")
	assert.Equal(t, NewDeck(), original, "shuffle must not modify its input")

	again := Shuffle(original, rand.New(rand.NewSource(42)))
	assert.Equal(t, shuffled, again, "same seed gives the same order")
}

func TestDealCards(t *testing.T) {
	deck := NewDeck()

	dealt, rest := DealCards(deck, 5)
	assert.Len(t, dealt, 5)
	assert.Len(t, rest, 47)
	for _, c := range dealt {
		assert.False(t, rest.Contains(c), "dealt card %s still in deck", c)
	}

	all, empty := DealCards(rest, 100)
	assert.Len(t, all, 47)
	assert.Empty(t, empty)
}
