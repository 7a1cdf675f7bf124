package action

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/r3lic-pnw/craftagent/internal/domain/agent"
	"github.com/r3lic-pnw/craftagent/internal/domain/world"
)

const cursorRange = 5.0

var protectedBlocks = map[string]bool{
	"bedrock":          true,
	"barrier":          true,
	"command_block":    true,
	"end_portal_frame": true,
}

var nonPlaceableParts = []string{"sword", "pickaxe", "axe", "shovel", "hoe", "stick", "bread", "apple", "beef", "porkchop", "bucket"}

// runPlaceBlock puts the first placeable inventory block into the empty
// space directly ahead, which must sit on a solid surface.
func runPlaceBlock(ctx context.Context, uc UseCase, _ agent.Intent) (agent.Outcome, error) {
	item, ok := firstPlaceableItem(uc.Bot.Items())
	if !ok {
		return agent.Outcome{}, fmt.Errorf("%w: no placeable block in inventory", ErrInvalidTarget)
	}
	state := uc.Bot.State()
	target := frontBlockPos(state)
	if b, exists := uc.Bot.BlockAt(target); exists && !b.IsAir() {
		return agent.Outcome{}, fmt.Errorf("%w: no empty space ahead to place a block", ErrInvalidTarget)
	}
	below := target.Offset(0, -1, 0)
	support, exists := uc.Bot.BlockAt(below)
	if !exists || !support.Solid {
		return agent.Outcome{}, fmt.Errorf("%w: no solid surface to place a block on", ErrInvalidTarget)
	}
	if err := uc.Bot.Equip(ctx, item.Name); err != nil {
		return agent.Outcome{}, fmt.Errorf("equipping %s failed: %v", item.Name, err)
	}
	if err := uc.Bot.Place(ctx, item.Name, target, below); err != nil {
		return agent.Outcome{}, fmt.Errorf("placing %s failed: %v", item.Name, err)
	}
	return agent.Outcome{
		Message: fmt.Sprintf("Placed %s", item.Name),
		Details: map[string]any{"block": item.Name, "position": target},
	}, nil
}

// runBreakBlock digs whatever the agent is currently looking at.
func runBreakBlock(ctx context.Context, uc UseCase, _ agent.Intent) (agent.Outcome, error) {
	block, ok := uc.Bot.TargetedBlock(cursorRange)
	if !ok || block.IsAir() {
		return agent.Outcome{}, fmt.Errorf("%w: not looking at any block", ErrInvalidTarget)
	}
	if protectedBlocks[block.Name] {
		return agent.Outcome{}, fmt.Errorf("%w: refusing to break protected block %s", ErrInvalidTarget, block.Name)
	}
	digCtx, cancel := context.WithTimeout(ctx, uc.digTimeout())
	defer cancel()
	if err := uc.Bot.Dig(digCtx, block.Pos); err != nil {
		return agent.Outcome{}, fmt.Errorf("breaking %s failed: %v", block.Name, err)
	}
	return agent.Outcome{
		Message: fmt.Sprintf("Broke %s", block.Name),
		Details: map[string]any{"block": block.Name, "position": block.Pos},
	}, nil
}

func firstPlaceableItem(items []world.Item) (world.Item, bool) {
	for _, it := range items {
		if isPlaceableName(it.Name) {
			return it, true
		}
	}
	return world.Item{}, false
}

func isPlaceableName(name string) bool {
	for _, part := range nonPlaceableParts {
		if strings.Contains(name, part) {
			return false
		}
	}
	return true
}

// frontBlockPos is the block one step ahead at foot level, along the
// dominant horizontal axis of the view direction.
func frontBlockPos(state world.AgentState) world.BlockPos {
	feet := state.Position.Floored()
	dx := -math.Sin(state.Yaw)
	dz := -math.Cos(state.Yaw)
	if math.Abs(dx) >= math.Abs(dz) {
		return feet.Offset(unitStep(dx), 0, 0)
	}
	return feet.Offset(0, 0, unitStep(dz))
}

func unitStep(v float64) int {
	if v < 0 {
		return -1
	}
	return 1
}
