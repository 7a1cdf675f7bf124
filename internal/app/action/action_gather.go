package action

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/r3lic-pnw/craftagent/internal/app/ports"
	"github.com/r3lic-pnw/craftagent/internal/domain/agent"
	"github.com/r3lic-pnw/craftagent/internal/domain/world"
)

const (
	gatherSearchRadius = 16
	gatherReach        = 4.0
)

// Acceptable block types per resource, tried in order; the first block
// found wins.
var gatherBlocks = map[string][]string{
	"wood":  {"oak_log", "birch_log", "spruce_log", "jungle_log", "acacia_log", "dark_oak_log"},
	"stone": {"stone", "cobblestone", "andesite", "diorite", "granite"},
	"dirt":  {"dirt", "grass_block", "coarse_dirt"},
	"ore":   {"coal_ore", "iron_ore", "copper_ore", "gold_ore", "diamond_ore"},
}

// Tool preference per resource, best first.
var gatherTools = map[string][]string{
	"wood":  {"netherite_axe", "diamond_axe", "iron_axe", "stone_axe", "wooden_axe"},
	"stone": {"netherite_pickaxe", "diamond_pickaxe", "iron_pickaxe", "stone_pickaxe", "wooden_pickaxe"},
	"ore":   {"netherite_pickaxe", "diamond_pickaxe", "iron_pickaxe", "stone_pickaxe", "wooden_pickaxe"},
	"dirt":  {"netherite_shovel", "diamond_shovel", "iron_shovel", "stone_shovel", "wooden_shovel"},
}

func runGather(ctx context.Context, uc UseCase, intent agent.Intent) (agent.Outcome, error) {
	resource := intent.Resource
	names := gatherBlocks[resource]
	if len(names) == 0 {
		return agent.Outcome{}, fmt.Errorf("%w: unknown resource %q", ErrInvalidTarget, resource)
	}

	block, ok := findGatherTarget(uc.Bot, names)
	if !ok {
		return agent.Outcome{}, fmt.Errorf("%w: no %s block found within %d blocks", ErrInvalidTarget, resource, gatherSearchRadius)
	}

	equipGatherTool(ctx, uc.Bot, resource)

	// Walk within reach first. A movement failure or timeout is not
	// fatal: the dig is still attempted from wherever the agent ended up.
	if uc.Bot.State().Position.DistanceTo(block.Pos.Center()) > gatherReach && uc.Bot.HasPathfinder() {
		if done, err := uc.Bot.StartGoal(world.Goal{Kind: world.GoalNear, Pos: block.Pos, Range: 2}); err == nil {
			_ = awaitOrTimeout(ctx, done, uc.Bot.ClearGoal)
		}
	}

	// The world may have changed while walking.
	current, stillThere := uc.Bot.BlockAt(block.Pos)
	if !stillThere || current.Name != block.Name {
		return agent.Outcome{}, fmt.Errorf("%w: the %s block at %d, %d, %d is gone or changed",
			ErrInvalidTarget, resource, block.Pos.X, block.Pos.Y, block.Pos.Z)
	}

	digCtx, cancel := context.WithTimeout(ctx, uc.digTimeout())
	defer cancel()
	if err := uc.Bot.Dig(digCtx, block.Pos); err != nil {
		return agent.Outcome{}, classifyDigError(err, resource)
	}

	return agent.Outcome{
		Message: fmt.Sprintf("Collected %s (%s)", resource, block.Name),
		Details: map[string]any{"block": block.Name, "position": block.Pos},
	}, nil
}

func findGatherTarget(bot ports.BotGateway, names []string) (world.Block, bool) {
	for _, name := range names {
		if b, ok := bot.FindBlock([]string{name}, gatherSearchRadius); ok {
			return b, true
		}
	}
	return world.Block{}, false
}

// equipGatherTool is best effort: preferred tool, then any tool, then
// bare hands.
func equipGatherTool(ctx context.Context, bot ports.BotGateway, resource string) {
	items := bot.Items()
	for _, name := range gatherTools[resource] {
		for _, it := range items {
			if it.Name == name {
				_ = bot.Equip(ctx, it.Name)
				return
			}
		}
	}
	for _, it := range items {
		if isToolName(it.Name) {
			_ = bot.Equip(ctx, it.Name)
			return
		}
	}
}

var toolNameParts = []string{"pickaxe", "axe", "shovel", "hoe"}

func isToolName(name string) bool {
	for _, part := range toolNameParts {
		if strings.Contains(name, part) {
			return true
		}
	}
	return false
}

// classifyDigError maps low-level dig failures onto user-facing reasons
// by message content; the gateway does not expose typed errors here.
func classifyDigError(err error, resource string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: digging %s took too long", ErrTimeout, resource)
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "too far"):
		return fmt.Errorf("%w: the %s block is too far away", ErrUnreachable, resource)
	case strings.Contains(msg, "protect") || strings.Contains(msg, "tool"):
		return fmt.Errorf("%w: cannot dig the %s block with the current tool", ErrInvalidTarget, resource)
	case strings.Contains(msg, "line of sight") || strings.Contains(msg, "obstruct"):
		return fmt.Errorf("%w: the %s block is obstructed", ErrUnreachable, resource)
	default:
		return fmt.Errorf("failed to dig %s: %v", resource, err)
	}
}
