package action

import (
	"context"
	"sort"
	"strings"

	"github.com/r3lic-pnw/craftagent/internal/domain/agent"
)

const (
	lookBlockRadius  = 4
	lookEntityRadius = 16.0
)

// runLookAround is fully synchronous and issues no mutating calls: it
// scans the immediate surroundings and reports de-duplicated names.
func runLookAround(_ context.Context, uc UseCase, _ agent.Intent) (agent.Outcome, error) {
	state := uc.Bot.State()
	center := state.Position.Floored()

	blockSet := map[string]bool{}
	for dx := -lookBlockRadius; dx <= lookBlockRadius; dx++ {
		for dz := -lookBlockRadius; dz <= lookBlockRadius; dz++ {
			for dy := -1; dy <= 2; dy++ {
				b, ok := uc.Bot.BlockAt(center.Offset(dx, dy, dz))
				if !ok || b.IsAir() {
					continue
				}
				blockSet[b.Name] = true
			}
		}
	}

	entitySet := map[string]bool{}
	for _, e := range uc.Bot.Entities() {
		if state.Position.DistanceTo(e.Pos) > lookEntityRadius {
			continue
		}
		entitySet[entityLabel(e)] = true
	}

	blocks := sortedKeys(blockSet)
	entities := sortedKeys(entitySet)

	message := "I see " + summarizeNames(blocks, "no blocks")
	if len(entities) > 0 {
		message += "; nearby: " + strings.Join(entities, ", ")
	}
	return agent.Outcome{
		Message: message,
		Details: map[string]any{
			"blocks":   blocks,
			"entities": entities,
			"position": center,
		},
	}, nil
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func summarizeNames(names []string, empty string) string {
	if len(names) == 0 {
		return empty
	}
	return strings.Join(names, ", ")
}
