package action

import (
	"context"
	"fmt"
	"strings"

	"github.com/r3lic-pnw/craftagent/internal/domain/agent"
	"github.com/r3lic-pnw/craftagent/internal/domain/world"
)

const (
	toolPlanksNeeded = 3
	toolSticksNeeded = 2
)

// runCraftPlanks turns the first log type in the inventory into its
// matching plank type (oak_log -> oak_planks).
func runCraftPlanks(ctx context.Context, uc UseCase, _ agent.Intent) (agent.Outcome, error) {
	logItem, ok := firstItemWithSuffix(uc.Bot.Items(), "_log")
	if !ok {
		return agent.Outcome{}, fmt.Errorf("%w: no logs in inventory to craft planks from", ErrInvalidTarget)
	}
	plank := strings.Replace(logItem.Name, "_log", "_planks", 1)
	if !uc.Bot.HasRecipe(plank) {
		return agent.Outcome{}, fmt.Errorf("%w: no crafting recipe for %s", ErrNotAvailable, plank)
	}
	if err := uc.Bot.Craft(ctx, plank, 1); err != nil {
		return agent.Outcome{}, fmt.Errorf("crafting %s failed: %v", plank, err)
	}
	return agent.Outcome{
		Message: fmt.Sprintf("Crafted %s from %s", plank, logItem.Name),
		Details: map[string]any{"item": plank, "source": logItem.Name},
	}, nil
}

// runCraftTools crafts a basic wooden pickaxe, crafting sticks first
// when the inventory is short.
func runCraftTools(ctx context.Context, uc UseCase, _ agent.Intent) (agent.Outcome, error) {
	items := uc.Bot.Items()
	planks := countItemsWithSuffix(items, "_planks")
	if planks < toolPlanksNeeded {
		return agent.Outcome{}, fmt.Errorf("%w: need at least %d planks to craft tools, have %d", ErrInvalidTarget, toolPlanksNeeded, planks)
	}
	if countItemsNamed(items, "stick") < toolSticksNeeded {
		if !uc.Bot.HasRecipe("stick") {
			return agent.Outcome{}, fmt.Errorf("%w: no crafting recipe for stick", ErrNotAvailable)
		}
		if err := uc.Bot.Craft(ctx, "stick", 1); err != nil {
			return agent.Outcome{}, fmt.Errorf("crafting sticks failed: %v", err)
		}
	}
	if !uc.Bot.HasRecipe("wooden_pickaxe") {
		return agent.Outcome{}, fmt.Errorf("%w: no crafting recipe for wooden_pickaxe", ErrNotAvailable)
	}
	if err := uc.Bot.Craft(ctx, "wooden_pickaxe", 1); err != nil {
		return agent.Outcome{}, fmt.Errorf("crafting wooden_pickaxe failed: %v", err)
	}
	return agent.Outcome{
		Message: "Crafted wooden_pickaxe",
		Details: map[string]any{"item": "wooden_pickaxe"},
	}, nil
}

func firstItemWithSuffix(items []world.Item, suffix string) (world.Item, bool) {
	for _, it := range items {
		if strings.HasSuffix(it.Name, suffix) {
			return it, true
		}
	}
	return world.Item{}, false
}

func countItemsWithSuffix(items []world.Item, suffix string) int {
	total := 0
	for _, it := range items {
		if strings.HasSuffix(it.Name, suffix) {
			total += it.Count
		}
	}
	return total
}

func countItemsNamed(items []world.Item, name string) int {
	total := 0
	for _, it := range items {
		if it.Name == name {
			total += it.Count
		}
	}
	return total
}
