package action

import (
	"context"
	"fmt"
	"strings"

	"github.com/r3lic-pnw/craftagent/internal/domain/agent"
)

// Items never dropped voluntarily: weapons, the main digging tool and
// anything edible.
var essentialNameParts = []string{"sword", "pickaxe", "food", "bread", "apple", "beef", "porkchop"}

var equipToolParts = []string{"pickaxe", "axe", "shovel", "sword", "hoe"}

// runDropItem prefers a non-essential item and falls back to the first
// inventory slot.
func runDropItem(ctx context.Context, uc UseCase, _ agent.Intent) (agent.Outcome, error) {
	items := uc.Bot.Items()
	if len(items) == 0 {
		return agent.Outcome{}, fmt.Errorf("%w: inventory is empty", ErrInvalidTarget)
	}
	pick := items[0]
	for _, it := range items {
		if !containsAnyPart(it.Name, essentialNameParts) {
			pick = it
			break
		}
	}
	if err := uc.Bot.Drop(ctx, pick.Name); err != nil {
		return agent.Outcome{}, fmt.Errorf("dropping %s failed: %v", pick.Name, err)
	}
	return agent.Outcome{
		Message: fmt.Sprintf("Dropped %s", pick.Name),
		Details: map[string]any{"item": pick.Name, "count": pick.Count},
	}, nil
}

// runEquipTool equips the first inventory item whose name looks like a
// tool.
func runEquipTool(ctx context.Context, uc UseCase, _ agent.Intent) (agent.Outcome, error) {
	for _, it := range uc.Bot.Items() {
		if containsAnyPart(it.Name, equipToolParts) {
			if err := uc.Bot.Equip(ctx, it.Name); err != nil {
				return agent.Outcome{}, fmt.Errorf("equipping %s failed: %v", it.Name, err)
			}
			return agent.Outcome{
				Message: fmt.Sprintf("Equipped %s", it.Name),
				Details: map[string]any{"item": it.Name},
			}, nil
		}
	}
	return agent.Outcome{}, fmt.Errorf("%w: no tool in inventory", ErrInvalidTarget)
}

func containsAnyPart(name string, parts []string) bool {
	for _, part := range parts {
		if strings.Contains(name, part) {
			return true
		}
	}
	return false
}
