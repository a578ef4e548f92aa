// Package poker exposes hand evaluation as a service: it parses card tokens,
// evaluates pools, attaches advice and records what happened per session.
package poker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"slices"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/sandeepkvelagam/oddside/cards"
	"github.com/sandeepkvelagam/oddside/domain/advice"
	"github.com/sandeepkvelagam/oddside/domain/events"
	"github.com/sandeepkvelagam/oddside/domain/hands"
	"github.com/sandeepkvelagam/oddside/metrics"
)

const (
	maxHoleCards      = 2
	maxCommunityCards = 5
	defaultHistory    = 100
)

// Service evaluates hands. It is safe for concurrent use.
type Service struct {
	logger           *log.Logger
	clock            quartz.Clock
	store            events.EventStore
	metrics          *metrics.Manager
	rejectDuplicates bool
	batchWorkers     int
}

// NewService creates a service. Without options it logs nowhere, uses the
// wall clock and keeps history in memory.
func NewService(opts ...Option) *Service {
	s := &Service{
		logger:           log.New(io.Discard),
		clock:            quartz.NewReal(),
		store:            events.NewInMemoryEventStore(defaultHistory),
		rejectDuplicates: true,
		batchWorkers:     runtime.NumCPU(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.metrics == nil {
		s.metrics = metrics.NewManager()
	}

	return s
}

// Evaluate parses and evaluates one request. Bad input is reported in
// Response.Error; the returned error is only set when ctx is done.
func (s *Service) Evaluate(ctx context.Context, req Request) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, fmt.Errorf("evaluate: %w", err)
	}

	start := s.clock.Now()
	resp := Response{
		RequestID: uuid.NewString(),
		SessionID: req.SessionID,
	}

	hole, community, err := s.parseRequest(req)
	if err != nil {
		resp.Error = s.reject(req.SessionID, resp.RequestID, err)
		return resp, nil
	}

	result := hands.Evaluate(hole, community)
	resp.Result = &result

	if req.Stage != "" {
		rec := advice.Recommend(result, req.Stage)
		resp.Tier = advice.Classify(result.Category)
		resp.Recommendation = &rec
		s.metrics.RecordRecommendation(string(rec.Action))
	}

	s.metrics.RecordEvaluation(result.Name, s.clock.Since(start))
	s.logger.Debug("hand evaluated",
		"request", resp.RequestID,
		"session", req.SessionID,
		"pool", len(hole)+len(community),
		"hand", result.Name,
		"description", result.Description,
	)

	event := events.HandEvaluated{
		SessionID:   req.SessionID,
		RequestID:   resp.RequestID,
		Hole:        req.Hole,
		Community:   req.Community,
		Stage:       string(req.Stage),
		Category:    int(result.Category),
		HandName:    result.Name,
		Description: result.Description,
		At:          s.clock.Now(),
	}
	if resp.Recommendation != nil {
		event.Action = string(resp.Recommendation.Action)
	}
	s.record(event)

	return resp, nil
}

// EvaluateBatch evaluates requests concurrently and returns the responses in
// request order.
func (s *Service) EvaluateBatch(ctx context.Context, reqs []Request) ([]Response, error) {
	s.metrics.RecordBatch(len(reqs))

	responses := make([]Response, len(reqs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchWorkers)

	for i, req := range reqs {
		g.Go(func() error {
			resp, err := s.Evaluate(ctx, req)
			if err != nil {
				return err
			}
			responses[i] = resp
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("evaluate batch: %w", err)
	}

	s.logger.Debug("batch evaluated", "size", len(reqs))
	return responses, nil
}

// Showdown evaluates every player against the shared community cards and
// ranks them. Bad input is reported in ShowdownResponse.Error.
func (s *Service) Showdown(ctx context.Context, req ShowdownRequest) (ShowdownResponse, error) {
	if err := ctx.Err(); err != nil {
		return ShowdownResponse{}, fmt.Errorf("showdown: %w", err)
	}

	resp := ShowdownResponse{
		RequestID: uuid.NewString(),
		SessionID: req.SessionID,
	}

	pools, err := s.parseShowdown(req)
	if err != nil {
		resp.Error = s.reject(req.SessionID, resp.RequestID, err)
		return resp, nil
	}

	resp.Standings = hands.Showdown(pools)
	for _, st := range resp.Standings {
		if st.IsWinner {
			resp.Winners = append(resp.Winners, st.PlayerID)
		}
	}

	s.metrics.RecordShowdown()
	s.logger.Debug("showdown ranked",
		"request", resp.RequestID,
		"players", len(pools),
		"winners", resp.Winners,
	)

	s.record(events.ShowdownRanked{
		SessionID: req.SessionID,
		RequestID: resp.RequestID,
		Players:   len(pools),
		Winners:   resp.Winners,
		At:        s.clock.Now(),
	})

	return resp, nil
}

// History returns what was recorded for a session, oldest first
func (s *Service) History(sessionID string) ([]events.Event, error) {
	history, err := s.store.LoadEvents(sessionID)
	if err != nil {
		return nil, fmt.Errorf("load history for session %s: %w", sessionID, err)
	}
	return history, nil
}

func (s *Service) parseRequest(req Request) (hole, community cards.Stack, err error) {
	if len(req.Hole) > maxHoleCards {
		return nil, nil, ErrTooManyHoleCards
	}
	if len(req.Community) > maxCommunityCards {
		return nil, nil, ErrTooManyCommunityCards
	}

	if hole, err = cards.ParseAll(req.Hole); err != nil {
		return nil, nil, err
	}
	if community, err = cards.ParseAll(req.Community); err != nil {
		return nil, nil, err
	}

	if err := s.checkDuplicates(slices.Concat(hole, community)); err != nil {
		return nil, nil, err
	}

	return hole, community, nil
}

func (s *Service) parseShowdown(req ShowdownRequest) (map[string]cards.Stack, error) {
	if len(req.Players) == 0 {
		return nil, ErrNoPlayers
	}
	if len(req.Community) > maxCommunityCards {
		return nil, ErrTooManyCommunityCards
	}

	community, err := cards.ParseAll(req.Community)
	if err != nil {
		return nil, err
	}

	// parse in a stable order so the reported token does not depend on map iteration
	ids := make([]string, 0, len(req.Players))
	for id := range req.Players {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	all := slices.Clone(community)
	pools := make(map[string]cards.Stack, len(ids))
	for _, id := range ids {
		tokens := req.Players[id]
		if len(tokens) > maxHoleCards {
			return nil, fmt.Errorf("player %s: %w", id, ErrTooManyHoleCards)
		}

		hole, err := cards.ParseAll(tokens)
		if err != nil {
			return nil, err
		}

		all = append(all, hole...)
		pools[id] = slices.Concat(hole, community)
	}

	if err := s.checkDuplicates(all); err != nil {
		return nil, err
	}

	return pools, nil
}

// duplicateError carries the first repeated card so it can be reported as the token
type duplicateError struct {
	card cards.Card
}

func (e *duplicateError) Error() string {
	return fmt.Sprintf("%v: %s", ErrDuplicateCard, e.card)
}

func (e *duplicateError) Unwrap() error {
	return ErrDuplicateCard
}

func (s *Service) checkDuplicates(pool cards.Stack) error {
	if !s.rejectDuplicates {
		return nil
	}
	if dups := pool.Duplicates(); len(dups) > 0 {
		return &duplicateError{card: dups[0]}
	}
	return nil
}

// reject turns an input error into a payload and records it
func (s *Service) reject(sessionID, requestID string, err error) *ErrorPayload {
	payload := &ErrorPayload{Message: err.Error()}

	var parseErr *cards.ParseError
	var dupErr *duplicateError
	switch {
	case errors.As(err, &parseErr):
		payload.Token = parseErr.Token
	case errors.As(err, &dupErr):
		payload.Token = dupErr.card.String()
	}

	s.metrics.RecordRejection(rejectionReason(err))
	s.logger.Warn("request rejected", "request", requestID, "session", sessionID, "err", err)

	s.record(events.EvaluationRejected{
		SessionID: sessionID,
		RequestID: requestID,
		Token:     payload.Token,
		Message:   payload.Message,
		At:        s.clock.Now(),
	})

	return payload
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, cards.ErrInvalidRank), errors.Is(err, cards.ErrInvalidSuit), errors.Is(err, cards.ErrMalformed):
		return "parse"
	case errors.Is(err, ErrDuplicateCard):
		return "duplicate"
	case errors.Is(err, ErrTooManyHoleCards), errors.Is(err, ErrTooManyCommunityCards):
		return "card_count"
	case errors.Is(err, ErrNoPlayers):
		return "players"
	}
	return "other"
}

func (s *Service) record(event events.Event) {
	if events.ExtractSessionID(event) == "" {
		return
	}
	if err := s.store.Append(event); err != nil {
		s.logger.Error("failed to record event", "event", event.Name(), "err", err)
	}
}
