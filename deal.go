package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/sandeepkvelagam/oddside/cards"
	"github.com/sandeepkvelagam/oddside/poker"
)

var errTooManyPlayers = errors.New("not enough cards for that many players")

// DealCmd deals hole cards to each player from a shuffled deck plus a board,
// then ranks the players
type DealCmd struct {
	Players int    `short:"p" default:"2" help:"Number of players"`
	Board   int    `short:"b" default:"5" help:"Community cards to deal (0-5)"`
	Seed    *int64 `help:"Random seed for reproducible deals"`
}

func (c *DealCmd) Run() error {
	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}
	return c.run(context.Background(), os.Stdout, poker.NewService(), rand.New(rand.NewSource(seed)))
}

func (c *DealCmd) run(ctx context.Context, w io.Writer, svc *poker.Service, rng *rand.Rand) error {
	if c.Players < 1 {
		return fmt.Errorf("players must be at least 1, got %d", c.Players)
	}
	if c.Board < 0 || c.Board > 5 {
		return fmt.Errorf("board must be between 0 and 5 cards, got %d", c.Board)
	}
	if c.Players*2+c.Board > 52 {
		return errTooManyPlayers
	}

	deck := cards.Shuffle(cards.NewDeck(), rng)

	players := make(map[string][]string, c.Players)
	for i := 1; i <= c.Players; i++ {
		var hole cards.Stack
		hole, deck = cards.DealCards(deck, 2)
		id := fmt.Sprintf("player-%d", i)
		players[id] = tokens(hole)
		fmt.Fprintf(w, "%s %s\n", headerStyle.Render(id+":"), cardStyle.Render(hole.String()))
	}

	board, _ := cards.DealCards(deck, c.Board)
	fmt.Fprintf(w, "%s %s\n\n", headerStyle.Render("board:"), cardStyle.Render(board.String()))

	resp, err := svc.Showdown(ctx, poker.ShowdownRequest{
		Community: tokens(board),
		Players:   players,
	})
	if err != nil {
		return err
	}

	renderShowdown(w, resp)
	return nil
}

func tokens(stack cards.Stack) []string {
	result := make([]string, len(stack))
	for i, c := range stack {
		result[i] = c.String()
	}
	return result
}
