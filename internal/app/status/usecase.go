package status

import (
	"context"
	"errors"
	"time"

	"github.com/r3lic-pnw/craftagent/internal/app/ports"
	"github.com/r3lic-pnw/craftagent/internal/domain/world"
)

var ErrBotNotReady = errors.New("bot not connected or not spawned")

// HealthUseCase reports liveness. It never fails: a down session is a
// valid health answer, not an error.
type HealthUseCase struct {
	Bot       ports.BotGateway
	StartedAt time.Time
	Now       func() time.Time
}

func (u HealthUseCase) Execute(_ context.Context) HealthReport {
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	report := HealthReport{Status: "ok", UptimeSeconds: int64(nowFn().Sub(u.StartedAt).Seconds())}
	if u.Bot == nil {
		report.Status = "initializing"
		return report
	}
	state := u.Bot.State()
	report.Connected = state.Connected
	report.Spawned = state.Spawned
	report.Ready = state.Connected && state.Spawned
	report.LastError = state.LastError
	if !report.Ready {
		report.Status = "degraded"
	}
	return report
}

// UseCase serves the diagnostic dump.
type UseCase struct {
	Bot ports.BotGateway
}

func (u UseCase) Execute(_ context.Context) (Report, error) {
	if u.Bot == nil || !u.Bot.Connected() {
		return Report{}, ErrBotNotReady
	}
	state := u.Bot.State()
	report := Report{
		Connected: state.Connected,
		Spawned:   state.Spawned,
		Username:  state.Username,
		Version:   state.Version,
		Position:  state.Position,
		Health:    state.Health,
		Food:      state.Food,
		Inventory: u.Bot.Items(),
	}
	if report.Inventory == nil {
		report.Inventory = []world.Item{}
	}
	if held, ok := u.Bot.HeldItem(); ok {
		heldCopy := held
		report.HeldItem = &heldCopy
	}
	return report, nil
}
