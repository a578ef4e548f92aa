package cards

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Suit represents a card suit
type Suit string

const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
)

// Suits lists the four suits in a fixed order used wherever iteration must be deterministic.
var Suits = [...]Suit{Hearts, Diamonds, Clubs, Spades}

var suitLetters = map[Suit]string{
	Hearts:   "h",
	Diamonds: "d",
	Clubs:    "c",
	Spades:   "s",
}

// Rank is a card rank on the 2..14 scale, Ace high
type Rank int

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

var rankSymbols = map[Rank]string{
	Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7", Eight: "8",
	Nine: "9", Ten: "10", Jack: "J", Queen: "Q", King: "K", Ace: "A",
}

var rankNames = map[Rank]string{
	Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7", Eight: "8",
	Nine: "9", Ten: "10", Jack: "Jack", Queen: "Queen", King: "King", Ace: "Ace",
}

// Valid reports whether r is one of the thirteen ranks
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Symbol returns the short notation of the rank ("10", "J", "A")
func (r Rank) Symbol() string {
	if s, ok := rankSymbols[r]; ok {
		return s
	}
	return "?"
}

// Name returns the display name used in hand descriptions ("7", "Queen")
func (r Rank) Name() string {
	if s, ok := rankNames[r]; ok {
		return s
	}
	return "?"
}

// Plural returns the plural display name ("7s", "Queens")
func (r Rank) Plural() string {
	return r.Name() + "s"
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	_, ok := suitLetters[s]
	return ok
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// New creates a card from a rank and a suit
func New(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the compact notation of a card, e.g. "10h" or "As"
func (c Card) String() string {
	return c.Rank.Symbol() + suitLetters[c.Suit]
}

// Equals checks if two cards are equal
func (c Card) Equals(other Card) bool {
	return c == other
}

type cardJSON struct {
	Rank string `json:"rank"`
	Suit Suit   `json:"suit"`
}

// MarshalJSON encodes the card as {"rank": "A", "suit": "hearts"}
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(cardJSON{Rank: c.Rank.Symbol(), Suit: c.Suit})
}

// UnmarshalJSON accepts the object form produced by MarshalJSON
func (c *Card) UnmarshalJSON(data []byte) error {
	var raw cardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := Parse(raw.Rank + " of " + string(raw.Suit))
	if err != nil {
		return fmt.Errorf("decode card: %w", err)
	}
	*c = parsed
	return nil
}

// Stack represents multiple cards
type Stack []Card

// NewStack creates a new stack from the given cards
func NewStack(cards ...Card) Stack {
	return Stack(cards)
}

// String joins the compact notation of every card with spaces
func (s Stack) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Contains reports whether the stack holds the given card
func (s Stack) Contains(card Card) bool {
	for _, c := range s {
		if c == card {
			return true
		}
	}
	return false
}

// SortedByRank returns a copy of the stack ordered by rank, highest first.
// Equal ranks keep their original relative order.
func (s Stack) SortedByRank() Stack {
	result := make(Stack, len(s))
	copy(result, s)

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Rank > result[j].Rank
	})

	return result
}

// Duplicates returns every card that appears more than once, in first-seen order
func (s Stack) Duplicates() Stack {
	seen := make(map[Card]int, len(s))
	var dups Stack
	for _, c := range s {
		seen[c]++
		if seen[c] == 2 {
			dups = append(dups, c)
		}
	}
	return dups
}
