package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/sandeepkvelagam/oddside/config"
	domainevents "github.com/sandeepkvelagam/oddside/domain/events"
	"github.com/sandeepkvelagam/oddside/metrics"
	"github.com/sandeepkvelagam/oddside/poker"
	"github.com/sandeepkvelagam/oddside/server/connection"
	"github.com/sandeepkvelagam/oddside/server/events"
	"github.com/sandeepkvelagam/oddside/server/handlers"
)

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 15 * time.Second
	writeTimeout      = 15 * time.Second
	idleTimeout       = 60 * time.Second
	shutdownTimeout   = 10 * time.Second
	maxBodyBytes      = 1 << 20
)

// EventSource lets the server push recorded session events to websocket clients
type EventSource interface {
	AddEventHandler(handler domainevents.EventHandler)
}

// Server serves the evaluation API over HTTP and websockets
type Server struct {
	cfg        config.Config
	svc        *poker.Service
	metrics    *metrics.Manager
	logger     *log.Logger
	clock      quartz.Clock
	upgrader   websocket.Upgrader
	connMgr    *connection.Manager
	cmdRouter  *handlers.CommandRouter
	dispatcher *events.Dispatcher
	handler    http.Handler
}

// NewServer wires the API around svc. source may be nil, in which case
// websocket clients only receive replies to their own commands.
func NewServer(cfg config.Config, svc *poker.Service, source EventSource, m *metrics.Manager, logger *log.Logger) *Server {
	logger = logger.WithPrefix("server")

	s := &Server{
		cfg:     cfg,
		svc:     svc,
		metrics: m,
		logger:  logger,
		clock:   quartz.NewReal(),
	}

	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}

	s.connMgr = connection.NewManager(m.SetWebsocketConnections)
	s.dispatcher = events.NewDispatcher(s.connMgr, logger)
	s.cmdRouter = handlers.NewCommandRouter(svc, s.connMgr, logger)

	// Register dispatcher as event handler for recorded session events
	if source != nil {
		source.AddEventHandler(s.dispatcher.HandleEvent)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/evaluate", s.handleEvaluate)
	mux.HandleFunc("POST /api/evaluate/batch", s.handleEvaluateBatch)
	mux.HandleFunc("POST /api/showdown", s.handleShowdown)
	mux.HandleFunc("GET /api/sessions/{id}/history", s.handleHistory)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", m.Handler())
	mux.HandleFunc("GET /ws", s.handleWebSocket)

	s.handler = s.metricsMiddleware(corsMiddleware(cfg.AllowedOrigin, mux))
	return s
}

// Handler returns the root handler, useful for tests
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves on the configured address until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	// Start connection manager in its own goroutine
	g.Go(func() error {
		s.connMgr.Start(gctx)
		return nil
	})

	g.Go(func() error {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func (s *Server) checkOrigin(r *http.Request) bool {
	if s.cfg.AllowedOrigin == "*" {
		return true
	}
	origin := r.Header.Get("Origin")
	return origin == "" || origin == s.cfg.AllowedOrigin
}
