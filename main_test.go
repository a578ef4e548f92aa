package main

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeepkvelagam/oddside/poker"
)

func TestEvalCmd(t *testing.T) {
	svc := poker.NewService()
	ctx := context.Background()

	t.Run("styled summary", func(t *testing.T) {
		var out bytes.Buffer
		cmd := EvalCmd{Hole: []string{"Ah", "Kh"}, Board: []string{"Qh", "Jh", "10h"}, Stage: "Flop"}

		require.NoError(t, cmd.run(ctx, &out, svc))
		assert.Contains(t, out.String(), "Royal Flush")
		assert.Contains(t, out.String(), "Royal flush in hearts")
		assert.Contains(t, out.String(), "RAISE")
	})

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		cmd := EvalCmd{Hole: []string{"7c", "7d"}, Board: []string{"2h", "9s", "Kd"}, JSON: true}

		require.NoError(t, cmd.run(ctx, &out, svc))

		var resp poker.Response
		require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
		assert.Equal(t, "Pair of 7s", resp.Result.Description)
	})

	t.Run("dump", func(t *testing.T) {
		var out bytes.Buffer
		cmd := EvalCmd{Hole: []string{"7c", "7d"}, Dump: true}

		require.NoError(t, cmd.run(ctx, &out, svc))
		assert.Contains(t, out.String(), "Incomplete Hand")
	})

	t.Run("bad card", func(t *testing.T) {
		var out bytes.Buffer
		cmd := EvalCmd{Hole: []string{"7c", "Qx"}}

		err := cmd.run(ctx, &out, svc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"Qx"`)
		assert.Contains(t, out.String(), "Error:")
	})
}

func TestDealCmd(t *testing.T) {
	svc := poker.NewService()

	var out bytes.Buffer
	cmd := DealCmd{Players: 3, Board: 5}
	require.NoError(t, cmd.run(context.Background(), &out, svc, rand.New(rand.NewSource(1))))

	text := out.String()
	for _, id := range []string{"player-1", "player-2", "player-3", "board:", "Showdown"} {
		assert.Contains(t, text, id)
	}
	assert.Equal(t, 3, strings.Count(text, ". player-"))

	// same seed, same deal
	var again bytes.Buffer
	require.NoError(t, cmd.run(context.Background(), &again, svc, rand.New(rand.NewSource(1))))
	assert.Equal(t, text, again.String())

	for _, bad := range []DealCmd{{Players: 0, Board: 5}, {Players: 2, Board: 6}, {Players: 25, Board: 5}} {
		assert.Error(t, bad.run(context.Background(), &out, svc, rand.New(rand.NewSource(1))))
	}
}
