package hands

import (
	"cmp"
	"sort"

	"github.com/sandeepkvelagam/oddside/cards"
)

// Compare compares two results and returns:
// -1 if a is worse than b
// 0 if the hands tie
// 1 if a is better than b
//
// Categories are compared first, then the tie-break ranks in order.
// Suits never take part.
func Compare(a, b Result) int {
	if c := cmp.Compare(a.Category, b.Category); c != 0 {
		return c
	}

	for i := 0; i < len(a.Ranks) && i < len(b.Ranks); i++ {
		if c := cmp.Compare(a.Ranks[i], b.Ranks[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(a.Ranks), len(b.Ranks))
}

// Standing is one player's place in a showdown
type Standing struct {
	PlayerID string `json:"player_id"`
	Result   Result `json:"result"`
	IsWinner bool   `json:"is_winner"`
	Place    int    `json:"place"` // 0 for first place, 1 for second place, etc.
}

// Showdown evaluates each player's pool and orders the players best first.
// Tied players share a place index and every player tied for first is a winner.
// Players tied on strength are listed by player ID.
func Showdown(pools map[string]cards.Stack) []Standing {
	if len(pools) == 0 {
		return nil
	}

	standings := make([]Standing, 0, len(pools))
	for playerID, pool := range pools {
		standings = append(standings, Standing{
			PlayerID: playerID,
			Result:   EvaluatePool(pool),
		})
	}

	sort.Slice(standings, func(i, j int) bool {
		if c := Compare(standings[i].Result, standings[j].Result); c != 0 {
			return c > 0
		}
		return standings[i].PlayerID < standings[j].PlayerID
	})

	place := 0
	for i := range standings {
		if i > 0 && Compare(standings[i].Result, standings[i-1].Result) != 0 {
			place = i
		}
		standings[i].Place = place
		standings[i].IsWinner = place == 0
	}

	return standings
}
