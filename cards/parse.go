package cards

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrMalformed   = errors.New("malformed card")
	ErrInvalidRank = errors.New("invalid card rank")
	ErrInvalidSuit = errors.New("invalid card suit")
)

// ParseError reports a card token that could not be parsed
type ParseError struct {
	Token  string
	Reason error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %q", e.Reason, e.Token)
}

func (e *ParseError) Unwrap() error {
	return e.Reason
}

// rank tokens after lower-casing
var rankTokens = map[string]Rank{
	"2": Two, "3": Three, "4": Four, "5": Five, "6": Six, "7": Seven, "8": Eight,
	"9": Nine, "10": Ten,
	"j": Jack, "q": Queen, "k": King, "a": Ace,
	"jack": Jack, "queen": Queen, "king": King, "ace": Ace,
	"1": Ace,
}

var suitNames = map[string]Suit{
	"hearts":   Hearts,
	"diamonds": Diamonds,
	"clubs":    Clubs,
	"spades":   Spades,
}

var suitShorthands = map[string]Suit{
	"h": Hearts, "♥": Hearts,
	"d": Diamonds, "♦": Diamonds,
	"c": Clubs, "♣": Clubs,
	"s": Spades, "♠": Spades,
}

// Parse converts a card token into a Card.
//
// Two notations are accepted, both case-insensitive:
//
//	"10 of spades", "Queen of Hearts"
//	"10s", "Qh", "A♠"
func Parse(token string) (Card, error) {
	s := strings.ToLower(strings.TrimSpace(token))
	if s == "" {
		return Card{}, &ParseError{Token: token, Reason: ErrMalformed}
	}

	var rankPart, suitPart string
	var suits map[string]Suit
	if before, after, found := strings.Cut(s, " of "); found {
		rankPart = strings.TrimSpace(before)
		suitPart = strings.TrimSpace(after)
		suits = suitNames
	} else {
		_, size := utf8.DecodeLastRuneInString(s)
		if len(s) <= size {
			return Card{}, &ParseError{Token: token, Reason: ErrMalformed}
		}
		rankPart = s[:len(s)-size]
		suitPart = s[len(s)-size:]
		suits = suitShorthands
	}

	rank, ok := rankTokens[rankPart]
	if !ok {
		return Card{}, &ParseError{Token: token, Reason: ErrInvalidRank}
	}
	suit, ok := suits[suitPart]
	if !ok {
		return Card{}, &ParseError{Token: token, Reason: ErrInvalidSuit}
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and fixtures.
func MustParse(token string) Card {
	c, err := Parse(token)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseAll parses tokens in order and stops at the first invalid one
func ParseAll(tokens []string) (Stack, error) {
	stack := make(Stack, 0, len(tokens))
	for _, t := range tokens {
		c, err := Parse(t)
		if err != nil {
			return nil, err
		}
		stack = append(stack, c)
	}
	return stack, nil
}

// MustParseAll parses space separated tokens in compact notation, panicking on error
func MustParseAll(tokens string) Stack {
	stack, err := ParseAll(strings.Fields(tokens))
	if err != nil {
		panic(err)
	}
	return stack
}
