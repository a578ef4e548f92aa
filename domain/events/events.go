package events

import (
	"time"
)

// HandEvaluated is recorded after a pool was evaluated successfully
type HandEvaluated struct {
	SessionID   string    `json:"session_id"`
	RequestID   string    `json:"request_id"`
	Hole        []string  `json:"hole"`
	Community   []string  `json:"community"`
	Stage       string    `json:"stage,omitempty"`
	Category    int       `json:"category"`
	HandName    string    `json:"hand_name"`
	Description string    `json:"description"`
	Action      string    `json:"action,omitempty"`
	At          time.Time `json:"at"`
}

func (e HandEvaluated) Name() string         { return "hand-evaluated" }
func (e HandEvaluated) Timestamp() time.Time { return e.At }

// EvaluationRejected is recorded when a request could not be evaluated
type EvaluationRejected struct {
	SessionID string    `json:"session_id"`
	RequestID string    `json:"request_id"`
	Token     string    `json:"token,omitempty"`
	Message   string    `json:"message"`
	At        time.Time `json:"at"`
}

func (e EvaluationRejected) Name() string         { return "evaluation-rejected" }
func (e EvaluationRejected) Timestamp() time.Time { return e.At }

// ShowdownRanked is recorded after several players' hands were ranked
type ShowdownRanked struct {
	SessionID string    `json:"session_id"`
	RequestID string    `json:"request_id"`
	Players   int       `json:"players"`
	Winners   []string  `json:"winners"`
	At        time.Time `json:"at"`
}

func (e ShowdownRanked) Name() string         { return "showdown-ranked" }
func (e ShowdownRanked) Timestamp() time.Time { return e.At }
