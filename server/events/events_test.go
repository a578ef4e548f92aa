package events

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeepkvelagam/oddside/domain/events"
	"github.com/sandeepkvelagam/oddside/server/connection"
)

func TestEncode(t *testing.T) {
	data, err := Encode("hand-evaluated", events.HandEvaluated{SessionID: "s", HandName: "Flush"})
	require.NoError(t, err)

	var env EventEnvelope
	require.NoError(t, json.Unmarshal(data, &env))
	assert.Equal(t, "hand-evaluated", env.Name)
	assert.Contains(t, string(env.Payload), `"hand_name":"Flush"`)

	_, err = Encode("bad", make(chan int))
	assert.Error(t, err)
}

func TestDispatcher_HandleEvent(t *testing.T) {
	connMgr := connection.NewManager(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go connMgr.Start(ctx)

	watcher := &connection.Client{ID: "w", SessionID: "s1", Send: make(chan []byte, 4)}
	other := &connection.Client{ID: "o", SessionID: "s2", Send: make(chan []byte, 4)}
	connMgr.Register <- watcher
	connMgr.Register <- other

	d := NewDispatcher(connMgr, log.New(io.Discard))
	d.HandleEvent(events.ShowdownRanked{SessionID: "s1", Winners: []string{"a"}, At: time.Now()})
	d.HandleEvent(events.HandEvaluated{})

	var env EventEnvelope
	require.NoError(t, json.Unmarshal(<-watcher.Send, &env))
	assert.Equal(t, "showdown-ranked", env.Name)
	assert.Empty(t, other.Send)
	assert.Empty(t, watcher.Send)
}

func TestNewHistory(t *testing.T) {
	history := NewHistory([]events.Event{
		events.HandEvaluated{SessionID: "s"},
		events.EvaluationRejected{SessionID: "s"},
	})

	require.Len(t, history, 2)
	assert.Equal(t, "hand-evaluated", history[0].Name)
	assert.Equal(t, "evaluation-rejected", history[1].Name)
}
