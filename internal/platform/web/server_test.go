package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-nomekop/internal/games/nomekop"
	"github.com/vovakirdan/tui-nomekop/internal/games/nomekop/sim"
	"github.com/vovakirdan/tui-nomekop/internal/storage"
)

func newTestServer(t *testing.T, cfg Config) *httptest.Server {
	t.Helper()
	cfg.Logger = log.New(io.Discard)
	s, err := NewServer(cfg)
	if err != nil {
		t.Fatalf("NewServer() failed: %v", err)
	}
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	return srv
}

// noTrees points the game at a config without trees so the walk to the
// door is never blocked.
func noTrees(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nomekop.yaml")
	if err := os.WriteFile(path, []byte("trees:\n  draws: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	nomekop.SetConfigPath(path)
	t.Cleanup(func() { nomekop.SetConfigPath("") })
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?name=tester"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		t.Fatalf("failed to open websocket connection: %v", err)
	}
	t.Cleanup(func() {
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.Close()
		if resp != nil {
			resp.Body.Close()
		}
	})
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) sim.Frame {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("failed to read frame: %v", err)
	}
	var f sim.Frame
	if err := json.Unmarshal(payload, &f); err != nil {
		t.Fatalf("failed to decode frame: %v", err)
	}
	return f
}

// waitFrame reads frames until match accepts one.
func waitFrame(t *testing.T, conn *websocket.Conn, match func(sim.Frame) bool) sim.Frame {
	t.Helper()
	for i := 0; i < 600; i++ {
		if f := readFrame(t, conn); match(f) {
			return f
		}
	}
	t.Fatal("expected frame never arrived")
	return sim.Frame{}
}

func TestNewServerUnknownGame(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GameID = "tetris"
	if _, err := NewServer(cfg); err == nil {
		t.Error("Expected error for unknown game")
	}
}

func TestServesClient(t *testing.T) {
	srv := newTestServer(t, DefaultConfig())

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "<canvas") {
		t.Errorf("Expected canvas page, got %d", resp.StatusCode)
	}

	health, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	health.Body.Close()
	if health.StatusCode != http.StatusOK {
		t.Errorf("Expected healthz 200, got %d", health.StatusCode)
	}
}

func TestSessionStreamsFrames(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 7
	srv := newTestServer(t, cfg)
	conn := dial(t, srv)

	f := readFrame(t, conn)
	if f.Running {
		t.Error("Session should start idle")
	}
	if f.Scene != sim.SceneTown || f.Width != 480 || len(f.Primitives) == 0 {
		t.Errorf("Unexpected first frame: scene %s, width %v, %d primitives", f.Scene, f.Width, len(f.Primitives))
	}

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"input","start":true,"held":{"right":true}}`)); err != nil {
		t.Fatal(err)
	}
	moved := waitFrame(t, conn, func(f sim.Frame) bool { return f.Running && f.Player.X > 227 })
	if moved.Player.X <= 227 {
		t.Errorf("Expected player to move right, x = %v", moved.Player.X)
	}
}

func TestInvalidInputIsDropped(t *testing.T) {
	srv := newTestServer(t, DefaultConfig())
	conn := dial(t, srv)
	readFrame(t, conn)

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"input","start":"yes"}`)); err != nil {
		t.Fatal(err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"input","inventory":true}`)); err != nil {
		t.Fatal(err)
	}

	// The connection survives and the valid message is processed
	for i := 0; i < 30; i++ {
		if f := readFrame(t, conn); f.Running {
			t.Fatal("Invalid start message must not start the session")
		}
	}
}

func TestStarterChoiceIsJournaled(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	noTrees(t)

	cfg := DefaultConfig()
	cfg.Seed = 11
	cfg.TickRate = 240
	cfg.Store = store
	srv := newTestServer(t, cfg)
	conn := dial(t, srv)
	readFrame(t, conn)

	send := func(raw string) {
		t.Helper()
		if err := conn.WriteMessage(websocket.TextMessage, []byte(raw)); err != nil {
			t.Fatal(err)
		}
	}

	send(`{"type":"input","start":true}`)
	waitFrame(t, conn, func(f sim.Frame) bool { return f.Running })

	send(`{"type":"input","held":{"down":true}}`)
	waitFrame(t, conn, func(f sim.Frame) bool { return f.Player.Y >= 250 })
	send(`{"type":"input","held":{"left":true}}`)
	waitFrame(t, conn, func(f sim.Frame) bool { return f.Player.X <= 95 })
	send(`{"type":"input","held":{},"interact":true}`)
	waitFrame(t, conn, func(f sim.Frame) bool { return f.Scene == sim.SceneHouse })

	send(`{"type":"input","choose":"Blue"}`)
	waitFrame(t, conn, func(f sim.Frame) bool { return f.Starter == sim.StarterBlue })

	entries, err := store.Recent(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Starter != "Blue" || entries[0].Player != "tester" {
		t.Errorf("Unexpected journal entries: %+v", entries)
	}
}

func TestIdleSessionKeptAlive(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReadTimeout = 200 * time.Millisecond
	srv := newTestServer(t, cfg)
	conn := dial(t, srv)

	// The client never sends input; answering pings must keep it connected
	// well past the read timeout.
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		readFrame(t, conn)
	}
}

func TestSilentPeerDropped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReadTimeout = 200 * time.Millisecond
	srv := newTestServer(t, cfg)
	conn := dial(t, srv)
	conn.SetPingHandler(func(string) error { return nil })

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			var netErr interface{ Timeout() bool }
			if errors.As(err, &netErr) && netErr.Timeout() {
				t.Fatal("Expected the server to close a peer that never answers pings")
			}
			return
		}
	}
}
