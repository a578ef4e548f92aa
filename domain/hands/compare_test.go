package hands

import (
	"testing"

	"github.com/sandeepkvelagam/oddside/cards"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"category decides", "2h 2d 7c 9s Jd", "Ah Kd 9c 7s 4h", 1},
		{"higher pair", "Ah Ad 7c 9s Jd", "Kh Kd Ac 9s Jd", 1},
		{"pair kicker", "Ah Ad 7c 9s Qd", "As Ac 7d 9h Jd", 1},
		{"suits never matter", "Ah Kh Qh Jh 9d", "As Ks Qs Js 9c", 0},
		{"wheel loses to six high", "Ah 2d 3c 4s 5h", "2h 3d 4c 5s 6h", -1},
		{"full house trips first", "3h 3d 3c 2s 2h", "2d 2c 2h As Ad", 1},
		{"two pair kicker", "Kh Kd 4c 4s 9h", "Ks Kc 4d 4h 8h", 1},
		{"royal beats king high straight flush", "Ah Kh Qh Jh 10h", "Ks Qs Js 10s 9s", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := EvaluatePool(cards.MustParseAll(tt.a))
			b := EvaluatePool(cards.MustParseAll(tt.b))

			assert.Equal(t, tt.want, Compare(a, b))
			assert.Equal(t, -tt.want, Compare(b, a))
		})
	}
}

func TestShowdown_EmptyInput(t *testing.T) {
	assert.Nil(t, Showdown(map[string]cards.Stack{}))
}

func TestShowdown_SinglePlayer(t *testing.T) {
	result := Showdown(map[string]cards.Stack{
		"player1": cards.MustParseAll("Ah Kh Qh Jh 10h"),
	})

	require.Len(t, result, 1)
	assert.Equal(t, "player1", result[0].PlayerID)
	assert.Equal(t, RoyalFlush, result[0].Result.Category)
	assert.True(t, result[0].IsWinner)
	assert.Equal(t, 0, result[0].Place)
}

func TestShowdown_MultiplePlayersWithClearWinner(t *testing.T) {
	result := Showdown(map[string]cards.Stack{
		"player1": cards.MustParseAll("Ah Kh Qh Jh 10h"),
		"player2": cards.MustParseAll("9s 8s 7s 6s 5s"),
		"player3": cards.MustParseAll("7h 7d 7c 7s Kh"),
	})

	require.Len(t, result, 3)

	assert.Equal(t, "player1", result[0].PlayerID)
	assert.Equal(t, RoyalFlush, result[0].Result.Category)
	assert.True(t, result[0].IsWinner)
	assert.Equal(t, 0, result[0].Place)

	assert.Equal(t, "player2", result[1].PlayerID)
	assert.Equal(t, StraightFlush, result[1].Result.Category)
	assert.False(t, result[1].IsWinner)
	assert.Equal(t, 1, result[1].Place)

	assert.Equal(t, "player3", result[2].PlayerID)
	assert.Equal(t, FourOfAKind, result[2].Result.Category)
	assert.False(t, result[2].IsWinner)
	assert.Equal(t, 2, result[2].Place)
}

func TestShowdown_TiedPlayers(t *testing.T) {
	board := "Qc 8d 5s 3h 2c"
	result := Showdown(map[string]cards.Stack{
		"player1": cards.MustParseAll("Ah Kh " + board),
		"player2": cards.MustParseAll("As Kd " + board),
		"player3": cards.MustParseAll("Ad Jd " + board),
	})

	require.Len(t, result, 3)

	assert.Equal(t, "player1", result[0].PlayerID)
	assert.Equal(t, "player2", result[1].PlayerID)
	assert.Equal(t, 0, result[0].Place)
	assert.Equal(t, 0, result[1].Place, "tied players share a place")
	assert.True(t, result[0].IsWinner)
	assert.True(t, result[1].IsWinner)

	assert.Equal(t, "player3", result[2].PlayerID)
	assert.Equal(t, 2, result[2].Place)
	assert.False(t, result[2].IsWinner)
}
