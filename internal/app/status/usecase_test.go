package status

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/r3lic-pnw/craftagent/internal/adapter/bot/simulated"
)

func TestHealthReportsDegradedWhenDown(t *testing.T) {
	startedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uc := HealthUseCase{
		Bot:       simulated.New(simulated.DefaultConfig()),
		StartedAt: startedAt,
		Now:       func() time.Time { return startedAt.Add(42 * time.Second) },
	}

	report := uc.Execute(context.Background())
	if report.Status != "degraded" {
		t.Fatalf("unexpected status: %q", report.Status)
	}
	if report.Ready || report.Connected || report.Spawned {
		t.Fatalf("down session must not look ready: %+v", report)
	}
	if report.UptimeSeconds != 42 {
		t.Fatalf("unexpected uptime: %d", report.UptimeSeconds)
	}
}

func TestHealthSurfacesConnectFailure(t *testing.T) {
	bot := simulated.New(simulated.DefaultConfig())
	bot.RecordError(errors.New("dial tcp: connection refused"))
	uc := HealthUseCase{Bot: bot, StartedAt: time.Now()}

	report := uc.Execute(context.Background())
	if report.Status != "degraded" {
		t.Fatalf("unexpected status: %q", report.Status)
	}
	if report.LastError != "dial tcp: connection refused" {
		t.Fatalf("unexpected last error: %q", report.LastError)
	}
}

func TestHealthReportsOkWhenConnected(t *testing.T) {
	bot := simulated.New(simulated.DefaultConfig())
	if err := bot.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	uc := HealthUseCase{Bot: bot, StartedAt: time.Now()}

	report := uc.Execute(context.Background())
	if report.Status != "ok" || !report.Ready {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestStatusRejectsWhenDown(t *testing.T) {
	uc := UseCase{Bot: simulated.New(simulated.DefaultConfig())}
	_, err := uc.Execute(context.Background())
	if !errors.Is(err, ErrBotNotReady) {
		t.Fatalf("expected ErrBotNotReady, got %v", err)
	}
}

func TestStatusReportsSession(t *testing.T) {
	cfg := simulated.DefaultConfig()
	cfg.Username = "miner"
	bot := simulated.New(cfg)
	if err := bot.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	bot.AddItem("oak_log", 3)

	report, err := UseCase{Bot: bot}.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if report.Username != "miner" {
		t.Fatalf("unexpected username: %q", report.Username)
	}
	if report.Health != 20 || report.Food != 20 {
		t.Fatalf("unexpected vitals: %+v", report)
	}
	if len(report.Inventory) != 1 || report.Inventory[0].Name != "oak_log" {
		t.Fatalf("unexpected inventory: %+v", report.Inventory)
	}
}
