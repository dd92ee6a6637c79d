// Package web serves Nomekop Town to browsers: an embedded canvas client and
// a WebSocket endpoint that runs one session per connection.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-nomekop/internal/core"
	"github.com/vovakirdan/tui-nomekop/internal/games/nomekop/sim"
	"github.com/vovakirdan/tui-nomekop/internal/registry"
	"github.com/vovakirdan/tui-nomekop/internal/storage"
)

//go:embed static
var staticFiles embed.FS

const (
	writeTimeout       = 5 * time.Second
	defaultReadTimeout = 60 * time.Second
	maxMessage         = 4 * 1024
)

// FrameGame is a game that exposes its draw list.
type FrameGame interface {
	registry.Game
	Frame() sim.Frame
}

// Config holds configuration for the web server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// GameID selects the variant every connection plays.
	GameID string

	// TickRate is the simulation rate of every session.
	TickRate int

	// Seed fixes the world of every session. Zero picks a new seed per
	// connection.
	Seed int64

	// ReadTimeout drops a connection that sent neither a message nor a pong
	// for this long. Pings go out at 9/10 of it, so idle players stay
	// connected. Zero means one minute.
	ReadTimeout time.Duration

	// Store receives journal rows. Nil disables the journal.
	Store *storage.Store

	// Logger receives server logs. Nil logs to stderr.
	Logger *log.Logger
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address:  ":8080",
		GameID:   "nomekop",
		TickRate: 60,
	}
}

// Server runs browser sessions.
type Server struct {
	config   Config
	logger   *log.Logger
	decoder  *InputDecoder
	upgrader websocket.Upgrader
	mux      *http.ServeMux
}

// NewServer creates a server for the configured game.
func NewServer(cfg Config) (*Server, error) {
	if _, ok := registry.Lookup(cfg.GameID); !ok {
		return nil, fmt.Errorf("web: unknown game %q", cfg.GameID)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = defaultReadTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "nomekop-web",
		})
	}

	decoder, err := NewInputDecoder()
	if err != nil {
		return nil, err
	}

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return nil, fmt.Errorf("web: static files: %w", err)
	}

	s := &Server{
		config:  cfg,
		logger:  logger,
		decoder: decoder,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 16 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		mux: http.NewServeMux(),
	}
	s.mux.Handle("/", http.FileServer(http.FS(static)))
	s.mux.HandleFunc("/ws", s.handleWS)
	s.mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return s, nil
}

// Handler returns the HTTP handler serving the client and the socket.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// handleWS upgrades the connection and runs one session until the client
// leaves.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	player := r.URL.Query().Get("name")
	if player == "" {
		player = "web"
	}

	created, err := registry.Create(s.config.GameID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	game, ok := created.(FrameGame)
	if !ok {
		http.Error(w, "game has no frames", http.StatusInternalServerError)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.Close()

	seed := s.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game.Reset(core.RuntimeConfig{TickRate: s.config.TickRate, Seed: seed})

	logger := s.logger.With("remote", r.RemoteAddr, "player", player)
	logger.Info("session started", "game", s.config.GameID, "seed", seed)
	defer logger.Info("session ended")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	latch := newInputLatch()
	go s.readLoop(ctx, cancel, conn, latch, logger)

	ticker := time.NewTicker(time.Second / time.Duration(s.config.TickRate))
	defer ticker.Stop()
	ping := time.NewTicker(s.config.ReadTimeout * 9 / 10)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				logger.Debug("ping failed", "error", err)
				return
			}
			continue
		case <-ticker.C:
		}

		result := game.Step(latch.Take())
		for _, e := range result.Events {
			logger.Debug("game event", "kind", e.Kind, "detail", e.Detail, "tick", e.Tick)
			if e.Kind == core.EventStarterChosen {
				s.recordChoice(game.ID(), player, e, logger)
			}
		}

		if err := writeJSON(conn, game.Frame()); err != nil {
			if !errors.Is(err, websocket.ErrCloseSent) {
				logger.Debug("write failed", "error", err)
			}
			return
		}
	}
}

// readLoop feeds client messages into the latch. Invalid messages are
// dropped.
func (s *Server) readLoop(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, latch *inputLatch, logger *log.Logger) {
	defer cancel()
	conn.SetReadLimit(maxMessage)

	extend := func() { _ = conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout)) }
	conn.SetPongHandler(func(string) error {
		extend()
		return nil
	})

	for {
		extend()
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if ctx.Err() != nil {
			return
		}

		msg, err := s.decoder.Decode(raw)
		if err != nil {
			logger.Warn("dropping input", "error", err)
			continue
		}
		latch.Apply(msg)
	}
}

func (s *Server) recordChoice(gameID, player string, e core.Event, logger *log.Logger) {
	if s.config.Store == nil {
		return
	}
	if _, err := s.config.Store.AppendJournal(gameID, player, e.Detail, e.Tick); err != nil {
		logger.Warn("could not write journal entry", "starter", e.Detail, "error", err)
		return
	}
	logger.Info("starter chosen", "starter", e.Detail, "tick", e.Tick)
}

func writeJSON(conn *websocket.Conn, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteMessage(websocket.TextMessage, b)
}

// ListenAndServe starts the HTTP server and blocks until shutdown.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:              s.config.Address,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("starting web server", "address", s.config.Address, "game", s.config.GameID)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("web: serve: %w", err)
		}
		return nil
	case <-done:
	}

	s.logger.Info("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.config.Address
}
