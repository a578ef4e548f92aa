package poker

import "errors"

// Errors reported inside error payloads. None of them escape Evaluate as Go errors.
var (
	ErrTooManyHoleCards      = errors.New("at most 2 hole cards are allowed")
	ErrTooManyCommunityCards = errors.New("at most 5 community cards are allowed")
	ErrDuplicateCard         = errors.New("card appears more than once")
	ErrNoPlayers             = errors.New("showdown needs at least one player")
)

// ErrorPayload describes why a request could not be evaluated. Token is the
// offending card token when there is one.
type ErrorPayload struct {
	Token   string `json:"token,omitempty"`
	Message string `json:"message"`
}
