package action

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/r3lic-pnw/craftagent/internal/app/ports"
	"github.com/r3lic-pnw/craftagent/internal/domain/agent"
	"github.com/r3lic-pnw/craftagent/internal/domain/world"
)

const (
	followRange   = 2.0
	approachRange = 3.0
)

func runGoto(ctx context.Context, uc UseCase, intent agent.Intent) (agent.Outcome, error) {
	if !uc.Bot.HasPathfinder() {
		return agent.Outcome{}, fmt.Errorf("%w: pathfinder plugin missing", ErrNotAvailable)
	}
	cur := uc.Bot.State().Position.Floored()
	x := cur.X
	if intent.X != nil {
		x = *intent.X
	}
	y := cur.Y
	if intent.Y != nil {
		y = *intent.Y
	}
	z := cur.Z
	if intent.Z != nil {
		z = *intent.Z
	}
	target := world.BlockPos{X: x, Y: y, Z: z}

	done, err := uc.Bot.StartGoal(world.Goal{Kind: world.GoalBlock, Pos: target})
	if err != nil {
		return agent.Outcome{}, fmt.Errorf("%w: %v", ErrNotAvailable, err)
	}
	if err := awaitOrTimeout(ctx, done, uc.Bot.ClearGoal); err != nil {
		if errors.Is(err, ports.ErrNoPath) {
			return agent.Outcome{}, fmt.Errorf("%w: no path to %d, %d, %d", ErrUnreachable, x, y, z)
		}
		return agent.Outcome{}, err
	}
	return agent.Outcome{
		Message: fmt.Sprintf("Reached destination %d, %d, %d", x, y, z),
		Details: map[string]any{"x": x, "y": y, "z": z},
	}, nil
}

// runFollow starts a continuous follow goal and returns immediately:
// success means the follow started, not that it finished.
func runFollow(_ context.Context, uc UseCase, _ agent.Intent) (agent.Outcome, error) {
	if !uc.Bot.HasPathfinder() {
		return agent.Outcome{}, fmt.Errorf("%w: pathfinder plugin missing", ErrNotAvailable)
	}
	target, ok := firstOtherEntity(uc.Bot)
	if !ok {
		return agent.Outcome{}, fmt.Errorf("%w: no entity nearby to follow", ErrInvalidTarget)
	}
	if _, err := uc.Bot.StartGoal(world.Goal{Kind: world.GoalFollow, EntityID: target.ID, Range: followRange}); err != nil {
		return agent.Outcome{}, fmt.Errorf("%w: %v", ErrNotAvailable, err)
	}
	return agent.Outcome{
		Message: fmt.Sprintf("Following %s", entityLabel(target)),
		Details: map[string]any{"target": entityLabel(target)},
	}, nil
}

func runApproach(ctx context.Context, uc UseCase, _ agent.Intent) (agent.Outcome, error) {
	if !uc.Bot.HasPathfinder() {
		return agent.Outcome{}, fmt.Errorf("%w: pathfinder plugin missing", ErrNotAvailable)
	}
	target, ok := firstOtherEntity(uc.Bot)
	if !ok {
		return agent.Outcome{}, fmt.Errorf("%w: no entity nearby to approach", ErrInvalidTarget)
	}
	done, err := uc.Bot.StartGoal(world.Goal{Kind: world.GoalNear, Pos: target.Pos.Floored(), Range: approachRange})
	if err != nil {
		return agent.Outcome{}, fmt.Errorf("%w: %v", ErrNotAvailable, err)
	}
	if err := awaitOrTimeout(ctx, done, uc.Bot.ClearGoal); err != nil {
		if errors.Is(err, ports.ErrNoPath) {
			return agent.Outcome{}, fmt.Errorf("%w: cannot reach %s", ErrUnreachable, entityLabel(target))
		}
		return agent.Outcome{}, err
	}
	return agent.Outcome{
		Message: fmt.Sprintf("Reached %s", entityLabel(target)),
		Details: map[string]any{"target": entityLabel(target)},
	}, nil
}

const (
	exploreMinDistance = 10.0
	exploreMaxDistance = 30.0
)

// runExplore walks a random direction. Exploration has no fixed
// correctness criterion, so a no-path result or a timeout still counts
// as having discovered something.
func runExplore(ctx context.Context, uc UseCase, _ agent.Intent) (agent.Outcome, error) {
	if !uc.Bot.HasPathfinder() {
		return agent.Outcome{}, fmt.Errorf("%w: pathfinder plugin missing", ErrNotAvailable)
	}
	angle := uc.rand() * 2 * math.Pi
	dist := exploreMinDistance + uc.rand()*(exploreMaxDistance-exploreMinDistance)
	cur := uc.Bot.State().Position
	target := world.Vec3{
		X: cur.X + math.Cos(angle)*dist,
		Y: cur.Y,
		Z: cur.Z + math.Sin(angle)*dist,
	}.Floored()

	done, err := uc.Bot.StartGoal(world.Goal{Kind: world.GoalNear, Pos: target, Range: 2})
	if err != nil {
		return agent.Outcome{}, fmt.Errorf("%w: %v", ErrNotAvailable, err)
	}
	err = awaitOrTimeout(ctx, done, uc.Bot.ClearGoal)
	if err != nil && !errors.Is(err, ports.ErrNoPath) && !errors.Is(err, ErrTimeout) {
		return agent.Outcome{}, err
	}
	return agent.Outcome{
		Message: "Explored and discovered new area",
		Details: map[string]any{"x": target.X, "y": target.Y, "z": target.Z},
	}, nil
}

// runStop clears everything that could be in flight. It is idempotent
// and never fails.
func runStop(_ context.Context, uc UseCase, _ agent.Intent) (agent.Outcome, error) {
	uc.Bot.ClearGoal()
	uc.Bot.ClearAttackTarget()
	uc.Bot.StopDigging()
	return agent.Outcome{Message: "Stopped all activity"}, nil
}

// firstOtherEntity picks the first entity the gateway knows about, in
// gateway order without proximity ranking. The gateway never reports
// the agent itself.
func firstOtherEntity(bot ports.BotGateway) (world.Entity, bool) {
	entities := bot.Entities()
	if len(entities) == 0 {
		return world.Entity{}, false
	}
	return entities[0], true
}

func entityLabel(e world.Entity) string {
	if e.Username != "" {
		return e.Username
	}
	if e.Name != "" {
		return e.Name
	}
	return e.Kind
}
