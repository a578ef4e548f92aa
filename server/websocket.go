package server

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/sandeepkvelagam/oddside/server/connection"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 << 10
	sendBuffer     = 256
)

// handleWebSocket upgrades the connection. The optional "session" query
// parameter subscribes the client to that session's events.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}

	// Create a new client with a unique ID
	client := &connection.Client{
		ID:        uuid.NewString(),
		SessionID: r.URL.Query().Get("session"),
		Conn:      conn,
		Send:      make(chan []byte, sendBuffer),
	}
	s.logger.Info("client connected", "remote", r.RemoteAddr, "client", client.ID, "session", client.SessionID)

	// Register with connection manager
	s.connMgr.Register <- client

	// Handle reading and writing in separate goroutines
	go s.readPump(client)
	go s.writePump(client)
}

// readPump reads commands from the websocket connection
func (s *Server) readPump(client *connection.Client) {
	// commands outlive the upgrade request, so they get their own context
	ctx, cancel := context.WithCancel(context.Background())
	defer func() {
		cancel()
		s.connMgr.Unregister <- client
		client.Conn.Close()
		s.logger.Info("client disconnected", "client", client.ID)
	}()

	client.Conn.SetReadLimit(maxMessageSize)
	client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	client.Conn.SetPongHandler(func(string) error {
		return client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.logger.Warn("websocket read failed", "client", client.ID, "err", err)
			}
			return
		}

		// Process the message through the command router
		if err := s.cmdRouter.HandleCommand(ctx, client, message); err != nil {
			s.logger.Debug("command failed", "client", client.ID, "err", err)
		}
	}
}

// writePump sends queued messages and keeps the connection alive with pings
func (s *Server) writePump(client *connection.Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.Send:
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Channel closed
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				s.logger.Warn("websocket write failed", "client", client.ID, "err", err)
				return
			}
		case <-ticker.C:
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
