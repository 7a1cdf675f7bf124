package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/avast/retry-go/v5"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/r3lic-pnw/craftagent/internal/adapter/bot/simulated"
	httpadapter "github.com/r3lic-pnw/craftagent/internal/adapter/http"
	"github.com/r3lic-pnw/craftagent/internal/adapter/llm/ollama"
	metricsinmem "github.com/r3lic-pnw/craftagent/internal/adapter/metrics/inmemory"
	gormrepo "github.com/r3lic-pnw/craftagent/internal/adapter/repo/gorm"
	"github.com/r3lic-pnw/craftagent/internal/adapter/repo/memory"
	"github.com/r3lic-pnw/craftagent/internal/app/action"
	"github.com/r3lic-pnw/craftagent/internal/app/chat"
	"github.com/r3lic-pnw/craftagent/internal/app/observe"
	"github.com/r3lic-pnw/craftagent/internal/app/ports"
	"github.com/r3lic-pnw/craftagent/internal/app/status"
	"github.com/r3lic-pnw/craftagent/internal/config"
)

func main() {
	_ = godotenv.Load()
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "craftagent").Logger()
	cfg := config.Load()

	bot := simulated.New(gatewayConfig(cfg))
	if err := connectBot(context.Background(), logger, cfg, bot); err != nil {
		// serve anyway; /health reports the degraded session
		bot.RecordError(err)
		logger.Error().Err(err).Msg("bot connect failed, serving degraded")
	}

	actionLog, err := buildActionLog(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("action log init failed")
	}

	kpi := metricsinmem.NewRecorder()
	actionUC := action.UseCase{
		Bot:           bot,
		Log:           actionLog,
		Metrics:       kpi,
		Slot:          action.NewSlot(),
		MoveTimeout:   cfg.MoveTimeout,
		ActionTimeout: cfg.ActionTimeout,
	}

	chatUC := chat.UseCase{
		Dispatcher:      actionUC,
		DispatchReplies: cfg.ChatDispatch,
	}
	if model, err := ollama.New(cfg.OllamaEndpoint, cfg.OllamaModel); err == nil {
		chatUC.Model = model
	} else {
		logger.Warn().Err(err).Msg("chat model unavailable, /chat disabled")
	}

	h := httpadapter.Handler{
		HealthUC: status.HealthUseCase{Bot: bot, StartedAt: time.Now()},
		VisionUC: observe.UseCase{Bot: bot},
		ActionUC: actionUC,
		StatusUC: status.UseCase{Bot: bot},
		ChatUC:   chatUC,
		Log:      actionLog,
		KPI:      kpi,
		APIKey:   cfg.APIKey,
	}

	s := server.Default(server.WithHostPorts(cfg.ListenAddr))
	h.RegisterRoutes(s)

	logger.Info().
		Str("addr", cfg.ListenAddr).
		Str("bot", cfg.BotName).
		Str("game", fmt.Sprintf("%s:%d", cfg.MCHost, cfg.MCPort)).
		Msg("server listening")
	s.Spin()
}

func gatewayConfig(cfg config.Config) simulated.Config {
	gw := simulated.DefaultConfig()
	gw.Username = cfg.BotName
	gw.Version = cfg.MCVersion
	return gw
}

func connectBot(ctx context.Context, logger zerolog.Logger, cfg config.Config, bot ports.BotGateway) error {
	r := retry.New(
		retry.Context(ctx),
		retry.Attempts(uint(cfg.ConnectAttempts)),
		retry.Delay(cfg.ConnectDelay),
		retry.DelayType(retry.FixedDelay),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn().Uint("attempt", n+1).Err(err).Msg("bot connect retry")
		}),
	)
	return r.Do(func() error { return bot.Connect(ctx) })
}

func buildActionLog(cfg config.Config) (ports.ActionLogRepository, error) {
	if cfg.ActionDBDSN == "" {
		return memory.NewActionLogRepo(), nil
	}
	db, err := gormrepo.OpenPostgres(cfg.ActionDBDSN)
	if err != nil {
		return nil, err
	}
	repo := gormrepo.NewActionLogRepo(db)
	if err := repo.Migrate(); err != nil {
		return nil, err
	}
	return repo, nil
}
