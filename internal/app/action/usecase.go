package action

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/r3lic-pnw/craftagent/internal/app/classify"
	"github.com/r3lic-pnw/craftagent/internal/app/ports"
	"github.com/r3lic-pnw/craftagent/internal/domain/agent"
)

const (
	defaultMoveTimeout   = 120 * time.Second
	defaultActionTimeout = 30 * time.Second
	defaultDigTimeout    = 10 * time.Second
)

// UseCase is the action coordinator: it validates preconditions, turns
// text into an intent, runs the matching executor under the dispatch
// timeout and normalizes the result.
type UseCase struct {
	Bot      ports.BotGateway
	Classify func(string) agent.Intent
	Log      ports.ActionLogRepository
	Metrics  ports.DispatchMetrics
	Slot     *Slot

	MoveTimeout   time.Duration
	ActionTimeout time.Duration
	DigTimeout    time.Duration

	Now  func() time.Time
	Rand func() float64
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if u.Bot == nil || !u.Bot.Connected() || !u.Bot.Spawned() {
		return Response{}, ErrBotNotReady
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return Response{}, ErrNoText
	}
	if u.Slot != nil {
		if !u.Slot.TryAcquire() {
			return Response{}, ErrActionInProgress
		}
		defer u.Slot.Release()
	}

	classifyFn := u.Classify
	if classifyFn == nil {
		classifyFn = classify.Classify
	}
	intent := classifyFn(text)

	spec, ok := actionRegistry()[intent.Kind]
	if !ok {
		// the classifier's fallback should make this impossible
		err := ErrUnknownIntent
		u.record(ctx, text, intent.Kind, "", err, 0)
		return Response{}, err
	}

	timeout := u.actionTimeout()
	if spec.movement {
		timeout = u.moveTimeout()
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	started := u.now()
	outcome, err := spec.run(runCtx, u, intent)
	elapsed := u.now().Sub(started)

	if err != nil {
		// cleanup must never mask the original error
		u.Bot.ClearGoal()
		if errors.Is(err, context.DeadlineExceeded) {
			err = ErrTimeout
		}
		u.record(ctx, text, intent.Kind, "", err, elapsed)
		if u.Metrics != nil {
			if errors.Is(err, ErrTimeout) {
				u.Metrics.RecordTimeout(string(intent.Kind))
			} else {
				u.Metrics.RecordFailure(string(intent.Kind))
			}
		}
		return Response{}, err
	}

	u.record(ctx, text, intent.Kind, outcome.Message, nil, elapsed)
	if u.Metrics != nil {
		u.Metrics.RecordSuccess(string(intent.Kind))
	}
	return Response{Kind: intent.Kind, Message: outcome.Message, Details: outcome.Details}, nil
}

func (u UseCase) record(ctx context.Context, text string, kind agent.IntentKind, message string, actionErr error, elapsed time.Duration) {
	if u.Log == nil {
		return
	}
	rec := ports.ActionRecord{
		ID:         uuid.New().String(),
		Text:       text,
		Kind:       string(kind),
		Status:     "success",
		Message:    message,
		DurationMS: elapsed.Milliseconds(),
		CreatedAt:  u.now(),
	}
	if actionErr != nil {
		rec.Status = "error"
		rec.Error = actionErr.Error()
		rec.Message = ""
	}
	_ = u.Log.Append(context.WithoutCancel(ctx), rec)
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}

func (u UseCase) rand() float64 {
	if u.Rand != nil {
		return u.Rand()
	}
	return rand.Float64()
}

func (u UseCase) moveTimeout() time.Duration {
	if u.MoveTimeout > 0 {
		return u.MoveTimeout
	}
	return defaultMoveTimeout
}

func (u UseCase) actionTimeout() time.Duration {
	if u.ActionTimeout > 0 {
		return u.ActionTimeout
	}
	return defaultActionTimeout
}

func (u UseCase) digTimeout() time.Duration {
	if u.DigTimeout > 0 {
		return u.DigTimeout
	}
	return defaultDigTimeout
}
