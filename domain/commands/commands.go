package commands

type Command interface {
	Name() string
}

type EvaluateHand struct {
	SessionID string   `json:"session_id,omitempty"`
	Hole      []string `json:"hole"`
	Community []string `json:"community"`
	Stage     string   `json:"stage,omitempty"`
}

func (e EvaluateHand) Name() string { return "evaluate" }

type RankShowdown struct {
	SessionID string              `json:"session_id,omitempty"`
	Community []string            `json:"community"`
	Players   map[string][]string `json:"players"`
}

func (r RankShowdown) Name() string { return "showdown" }

type LoadHistory struct {
	SessionID string `json:"session_id,omitempty"`
}

func (l LoadHistory) Name() string { return "history" }

type WatchSession struct {
	SessionID string `json:"session_id"`
}

func (w WatchSession) Name() string { return "watch" }
