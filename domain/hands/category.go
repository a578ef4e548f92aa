package hands

import "github.com/sandeepkvelagam/oddside/cards"

// Category represents the class of a poker hand. Higher values are stronger.
type Category int

const (
	HighCard Category = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

var categoryNames = [...]string{
	HighCard:      "High Card",
	OnePair:       "One Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
	RoyalFlush:    "Royal Flush",
}

// Valid reports whether c is one of the ten categories
func (c Category) Valid() bool {
	return c >= HighCard && c <= RoyalFlush
}

// String returns the display name of the category
func (c Category) String() string {
	if !c.Valid() {
		return "Unknown"
	}
	return categoryNames[c]
}

// IncompleteName is the result name used when fewer than five cards are available
const IncompleteName = "Incomplete Hand"

// Result is the evaluation of a card pool
type Result struct {
	Category    Category     `json:"category"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	CardsUsed   cards.Stack  `json:"cards_used"`
	Kickers     cards.Stack  `json:"kickers"`
	Ranks       []cards.Rank `json:"ranks"` // tie-break vector, most significant first
}

// Incomplete reports whether the result was built from fewer than five cards
func (r Result) Incomplete() bool {
	return r.Name == IncompleteName
}
