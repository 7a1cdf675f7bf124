package action

import (
	"context"

	"github.com/r3lic-pnw/craftagent/internal/domain/agent"
)

type actionSpec struct {
	kind agent.IntentKind
	// movement actions get the long dispatch timeout
	movement bool
	run      func(ctx context.Context, uc UseCase, intent agent.Intent) (agent.Outcome, error)
}

func actionRegistry() map[agent.IntentKind]actionSpec {
	return map[agent.IntentKind]actionSpec{
		agent.IntentGoto:        {kind: agent.IntentGoto, movement: true, run: runGoto},
		agent.IntentFollow:      {kind: agent.IntentFollow, movement: true, run: runFollow},
		agent.IntentApproach:    {kind: agent.IntentApproach, movement: true, run: runApproach},
		agent.IntentExplore:     {kind: agent.IntentExplore, movement: true, run: runExplore},
		agent.IntentStop:        {kind: agent.IntentStop, run: runStop},
		agent.IntentGather:      {kind: agent.IntentGather, run: runGather},
		agent.IntentCraftPlanks: {kind: agent.IntentCraftPlanks, run: runCraftPlanks},
		agent.IntentCraftTools:  {kind: agent.IntentCraftTools, run: runCraftTools},
		agent.IntentPlaceBlock:  {kind: agent.IntentPlaceBlock, run: runPlaceBlock},
		agent.IntentBreakBlock:  {kind: agent.IntentBreakBlock, run: runBreakBlock},
		agent.IntentAttack:      {kind: agent.IntentAttack, run: runAttack},
		agent.IntentDropItem:    {kind: agent.IntentDropItem, run: runDropItem},
		agent.IntentEquipTool:   {kind: agent.IntentEquipTool, run: runEquipTool},
		agent.IntentLookAround:  {kind: agent.IntentLookAround, run: runLookAround},
		agent.IntentSay:         {kind: agent.IntentSay, run: runSay},
	}
}
