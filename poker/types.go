package poker

import (
	"github.com/sandeepkvelagam/oddside/domain/advice"
	"github.com/sandeepkvelagam/oddside/domain/hands"
)

// Request asks for the evaluation of one player's cards
type Request struct {
	SessionID string       `json:"session_id,omitempty"`
	Hole      []string     `json:"hole"`
	Community []string     `json:"community"`
	Stage     advice.Stage `json:"stage,omitempty"`
}

// Response is the answer to a Request. Exactly one of Result and Error is set.
type Response struct {
	RequestID      string                 `json:"request_id"`
	SessionID      string                 `json:"session_id,omitempty"`
	Result         *hands.Result          `json:"result,omitempty"`
	Tier           advice.Tier            `json:"tier,omitempty"`
	Recommendation *advice.Recommendation `json:"recommendation,omitempty"`
	Error          *ErrorPayload          `json:"error,omitempty"`
}

// OK reports whether the request was evaluated
func (r Response) OK() bool {
	return r.Error == nil
}

// ShowdownRequest ranks several players sharing the same community cards
type ShowdownRequest struct {
	SessionID string              `json:"session_id,omitempty"`
	Community []string            `json:"community"`
	Players   map[string][]string `json:"players"`
}

// ShowdownResponse lists players best first
type ShowdownResponse struct {
	RequestID string           `json:"request_id"`
	SessionID string           `json:"session_id,omitempty"`
	Standings []hands.Standing `json:"standings,omitempty"`
	Winners   []string         `json:"winners,omitempty"`
	Error     *ErrorPayload    `json:"error,omitempty"`
}

// OK reports whether the showdown was ranked
func (r ShowdownResponse) OK() bool {
	return r.Error == nil
}
