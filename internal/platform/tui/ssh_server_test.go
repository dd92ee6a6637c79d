package tui

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func testSSHConfig(t *testing.T) SSHServerConfig {
	t.Helper()
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "journal.db")
	cfg.Logger = log.New(io.Discard)
	return cfg
}

func TestNewSSHServer(t *testing.T) {
	cfg := testSSHConfig(t)
	cfg.TickRate = 0

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	defer srv.Shutdown()

	if srv.config.TickRate != 60 {
		t.Errorf("Expected default tick rate, got %d", srv.config.TickRate)
	}
	if srv.store == nil {
		t.Error("Expected the journal to open")
	}
	if srv.Addr() != cfg.Address {
		t.Errorf("Addr() = %s", srv.Addr())
	}
}

func TestNewSSHServerErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*SSHServerConfig)
	}{
		{"unknown game", func(c *SSHServerConfig) { c.GameID = "tetris" }},
		{"empty game", func(c *SSHServerConfig) { c.GameID = "" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testSSHConfig(t)
			tc.modify(&cfg)
			if _, err := NewSSHServer(cfg); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}
