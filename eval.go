package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sanity-io/litter"

	"github.com/sandeepkvelagam/oddside/domain/advice"
	"github.com/sandeepkvelagam/oddside/poker"
)

// EvalCmd evaluates a single hand from the command line
type EvalCmd struct {
	Hole  []string `short:"H" required:"" help:"Hole cards, e.g. --hole Ah,Kd"`
	Board []string `short:"b" help:"Community cards, e.g. --board Qh,Jh,10h"`
	Stage string   `short:"s" help:"Betting stage for advice: Preflop, Flop, Turn or River"`
	JSON  bool     `xor:"format" help:"Print the response as JSON"`
	Dump  bool     `xor:"format" help:"Print a debug dump of the response"`
}

func (c *EvalCmd) Run() error {
	return c.run(context.Background(), os.Stdout, poker.NewService())
}

func (c *EvalCmd) run(ctx context.Context, w io.Writer, svc *poker.Service) error {
	resp, err := svc.Evaluate(ctx, poker.Request{
		Hole:      c.Hole,
		Community: c.Board,
		Stage:     advice.Stage(c.Stage),
	})
	if err != nil {
		return err
	}

	switch {
	case c.JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("encode response: %w", err)
		}
	case c.Dump:
		fmt.Fprintln(w, litter.Sdump(resp))
	default:
		renderResponse(w, resp)
	}

	if !resp.OK() {
		return fmt.Errorf("cannot evaluate hand: %s", resp.Error.Message)
	}
	return nil
}

// VersionCmd prints the build version
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(version)
	return nil
}
