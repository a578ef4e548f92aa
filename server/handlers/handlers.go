package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/sandeepkvelagam/oddside/domain/advice"
	"github.com/sandeepkvelagam/oddside/domain/commands"
	"github.com/sandeepkvelagam/oddside/poker"
	"github.com/sandeepkvelagam/oddside/server/connection"
	"github.com/sandeepkvelagam/oddside/server/events"
)

// Reply names sent back to the client that issued a command
const (
	ReplyEvaluation = "evaluation"
	ReplyShowdown   = "showdown"
	ReplyHistory    = "history"
	ReplyWatching   = "watching"
	ReplyError      = "error"
)

var (
	ErrUnknownCommand = errors.New("unknown command type")
	ErrNoSession      = errors.New("no session given or watched")
)

// ErrorReply is the payload of an error envelope
type ErrorReply struct {
	Message string `json:"message"`
}

// CommandRouter routes incoming commands to the appropriate handler
type CommandRouter struct {
	svc     *poker.Service
	connMgr *connection.Manager
	logger  *log.Logger
}

// NewCommandRouter creates a new command router
func NewCommandRouter(svc *poker.Service, connMgr *connection.Manager, logger *log.Logger) *CommandRouter {
	return &CommandRouter{
		svc:     svc,
		connMgr: connMgr,
		logger:  logger,
	}
}

// HandleCommand processes an incoming command message. Any error is also
// reported to the client as an error envelope.
func (r *CommandRouter) HandleCommand(ctx context.Context, client *connection.Client, message []byte) error {
	err := r.route(ctx, client, message)
	if err != nil {
		r.reply(client, ReplyError, ErrorReply{Message: err.Error()})
	}
	return err
}

func (r *CommandRouter) route(ctx context.Context, client *connection.Client, message []byte) error {
	// First determine command type
	var baseCmd struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(message, &baseCmd); err != nil {
		return fmt.Errorf("decode command: %w", err)
	}

	// Route to appropriate handler based on command type
	switch baseCmd.Name {
	case commands.EvaluateHand{}.Name():
		var cmd commands.EvaluateHand
		if err := json.Unmarshal(message, &cmd); err != nil {
			return fmt.Errorf("decode %s: %w", baseCmd.Name, err)
		}
		return r.handleEvaluateHand(ctx, client, cmd)

	case commands.RankShowdown{}.Name():
		var cmd commands.RankShowdown
		if err := json.Unmarshal(message, &cmd); err != nil {
			return fmt.Errorf("decode %s: %w", baseCmd.Name, err)
		}
		return r.handleRankShowdown(ctx, client, cmd)

	case commands.LoadHistory{}.Name():
		var cmd commands.LoadHistory
		if err := json.Unmarshal(message, &cmd); err != nil {
			return fmt.Errorf("decode %s: %w", baseCmd.Name, err)
		}
		return r.handleLoadHistory(client, cmd)

	case commands.WatchSession{}.Name():
		var cmd commands.WatchSession
		if err := json.Unmarshal(message, &cmd); err != nil {
			return fmt.Errorf("decode %s: %w", baseCmd.Name, err)
		}
		return r.handleWatchSession(client, cmd)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, baseCmd.Name)
	}
}

func (r *CommandRouter) handleEvaluateHand(ctx context.Context, client *connection.Client, cmd commands.EvaluateHand) error {
	resp, err := r.svc.Evaluate(ctx, poker.Request{
		SessionID: r.sessionFor(client, cmd.SessionID),
		Hole:      cmd.Hole,
		Community: cmd.Community,
		Stage:     advice.Stage(cmd.Stage),
	})
	if err != nil {
		return err
	}

	r.reply(client, ReplyEvaluation, resp)
	return nil
}

func (r *CommandRouter) handleRankShowdown(ctx context.Context, client *connection.Client, cmd commands.RankShowdown) error {
	resp, err := r.svc.Showdown(ctx, poker.ShowdownRequest{
		SessionID: r.sessionFor(client, cmd.SessionID),
		Community: cmd.Community,
		Players:   cmd.Players,
	})
	if err != nil {
		return err
	}

	r.reply(client, ReplyShowdown, resp)
	return nil
}

func (r *CommandRouter) handleLoadHistory(client *connection.Client, cmd commands.LoadHistory) error {
	sessionID := r.sessionFor(client, cmd.SessionID)
	if sessionID == "" {
		return ErrNoSession
	}

	history, err := r.svc.History(sessionID)
	if err != nil {
		return err
	}

	r.reply(client, ReplyHistory, events.NewHistory(history))
	return nil
}

func (r *CommandRouter) handleWatchSession(client *connection.Client, cmd commands.WatchSession) error {
	if cmd.SessionID == "" {
		return ErrNoSession
	}
	if !r.connMgr.WatchSession(client.ID, cmd.SessionID) {
		return fmt.Errorf("client %s is not connected", client.ID)
	}

	r.reply(client, ReplyWatching, cmd)
	return nil
}

// sessionFor prefers the session named in the command over the watched one
func (r *CommandRouter) sessionFor(client *connection.Client, sessionID string) string {
	if sessionID != "" {
		return sessionID
	}
	return r.connMgr.SessionOf(client.ID)
}

func (r *CommandRouter) reply(client *connection.Client, name string, payload any) {
	data, err := events.Encode(name, payload)
	if err != nil {
		r.logger.Error("failed to encode reply", "reply", name, "err", err)
		return
	}
	if !r.connMgr.SendToClient(client.ID, data) {
		r.logger.Warn("reply dropped", "client", client.ID, "reply", name)
	}
}
