package action

import (
	"context"
	"fmt"
	"strings"

	"github.com/r3lic-pnw/craftagent/internal/domain/agent"
	"github.com/r3lic-pnw/craftagent/internal/domain/world"
)

const attackRadius = 16.0

var weaponNameParts = []string{"sword", "axe"}

// runAttack picks the nearest hostile within range, optionally equips a
// weapon and lands a single attack.
func runAttack(ctx context.Context, uc UseCase, _ agent.Intent) (agent.Outcome, error) {
	pos := uc.Bot.State().Position
	var target world.Entity
	best := attackRadius + 1
	for _, e := range uc.Bot.Entities() {
		if !e.IsHostile() {
			continue
		}
		if d := pos.DistanceTo(e.Pos); d <= attackRadius && d < best {
			best = d
			target = e
		}
	}
	if best > attackRadius {
		return agent.Outcome{}, fmt.Errorf("%w: no hostile entities within %.0f blocks", ErrInvalidTarget, attackRadius)
	}

	// weapon equip is optional; bare hands still attack
	for _, it := range uc.Bot.Items() {
		if isWeaponName(it.Name) {
			_ = uc.Bot.Equip(ctx, it.Name)
			break
		}
	}

	if err := uc.Bot.Attack(target.ID); err != nil {
		return agent.Outcome{}, fmt.Errorf("attacking %s failed: %v", entityLabel(target), err)
	}
	return agent.Outcome{
		Message: fmt.Sprintf("Attacked %s", entityLabel(target)),
		Details: map[string]any{"target": entityLabel(target), "distance": best},
	}, nil
}

func isWeaponName(name string) bool {
	for _, part := range weaponNameParts {
		if strings.Contains(name, part) {
			return true
		}
	}
	return false
}
