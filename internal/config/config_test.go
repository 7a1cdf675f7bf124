package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"LISTEN_ADDR", "MC_PORT", "CHAT_DISPATCH", "MOVE_TIMEOUT"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.ListenAddr != ":3001" {
		t.Fatalf("unexpected listen addr: %q", cfg.ListenAddr)
	}
	if cfg.MCPort != 25565 {
		t.Fatalf("unexpected port: %d", cfg.MCPort)
	}
	if cfg.ChatDispatch {
		t.Fatal("chat dispatch must default off")
	}
	if cfg.MoveTimeout != 120*time.Second {
		t.Fatalf("unexpected move timeout: %v", cfg.MoveTimeout)
	}
	if cfg.ActionTimeout != 30*time.Second {
		t.Fatalf("unexpected action timeout: %v", cfg.ActionTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9000")
	t.Setenv("MC_PORT", "25570")
	t.Setenv("CHAT_DISPATCH", "true")
	t.Setenv("MOVE_TIMEOUT", "45s")

	cfg := Load()
	if cfg.ListenAddr != ":9000" {
		t.Fatalf("unexpected listen addr: %q", cfg.ListenAddr)
	}
	if cfg.MCPort != 25570 {
		t.Fatalf("unexpected port: %d", cfg.MCPort)
	}
	if !cfg.ChatDispatch {
		t.Fatal("chat dispatch must be on")
	}
	if cfg.MoveTimeout != 45*time.Second {
		t.Fatalf("unexpected move timeout: %v", cfg.MoveTimeout)
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("MC_PORT", "not-a-number")
	t.Setenv("MOVE_TIMEOUT", "soon")

	cfg := Load()
	if cfg.MCPort != 25565 {
		t.Fatalf("malformed int must fall back, got %d", cfg.MCPort)
	}
	if cfg.MoveTimeout != 120*time.Second {
		t.Fatalf("malformed duration must fall back, got %v", cfg.MoveTimeout)
	}
}
