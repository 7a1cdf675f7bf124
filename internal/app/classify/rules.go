package classify

import (
	"strings"

	"github.com/r3lic-pnw/craftagent/internal/domain/agent"
)

type rule struct {
	triggers []string
	build    func(text string) (agent.Intent, bool)
}

func fixed(kind agent.IntentKind) func(string) (agent.Intent, bool) {
	return func(string) (agent.Intent, bool) {
		return agent.Intent{Kind: kind}, true
	}
}

// rules is the fixed priority order. Say outranks everything so that
// "/say stop" relays the word instead of halting; stop comes next so
// that text like "stop gathering wood" halts instead of starting a new
// task.
var rules = []rule{
	{
		triggers: []string{"/say", "say "},
		build:    buildSayIntent,
	},
	{
		triggers: []string{"stop", "halt", "stay put", "stand still"},
		build:    fixed(agent.IntentStop),
	},
	{
		triggers: []string{"go to", "goto", "move to", "travel to", "walk to", "head to", "run to"},
		build:    buildGotoIntent,
	},
	{
		triggers: []string{"follow", "come with", "stay close", "stay near"},
		build:    fixed(agent.IntentFollow),
	},
	{
		triggers: []string{"come here", "come over", "approach", "get closer", "go near"},
		build:    fixed(agent.IntentApproach),
	},
	{
		triggers: []string{"gather", "collect", "mine", "chop", "dig", "get wood", "get stone", "get dirt"},
		build:    buildGatherIntent,
	},
	{
		triggers: []string{"craft plank", "make plank", "create plank"},
		build:    fixed(agent.IntentCraftPlanks),
	},
	{
		triggers: []string{"craft", "make a", "create a"},
		build:    buildCraftToolsIntent,
	},
	{
		triggers: []string{"place block", "place a block", "put down", "put a block", "set a block"},
		build:    fixed(agent.IntentPlaceBlock),
	},
	{
		triggers: []string{"break", "destroy", "remove"},
		build:    buildBreakBlockIntent,
	},
	{
		triggers: []string{"attack", "fight", "kill", "defend"},
		build:    fixed(agent.IntentAttack),
	},
	{
		triggers: []string{"drop", "throw", "discard"},
		build:    fixed(agent.IntentDropItem),
	},
	{
		triggers: []string{"equip", "hold your", "switch to"},
		build:    buildEquipToolIntent,
	},
	{
		triggers: []string{"look around", "scan", "survey", "what do you see"},
		build:    fixed(agent.IntentLookAround),
	},
	{
		triggers: []string{"explore", "wander", "search the area", "investigate"},
		build:    fixed(agent.IntentExplore),
	},
}

// buildSayIntent matches only a leading "say" or "/say" so that text
// merely containing the word keeps scanning. The remainder of the line
// is the chat message.
func buildSayIntent(text string) (agent.Intent, bool) {
	msg, ok := strings.CutPrefix(text, "/say ")
	if !ok {
		msg, ok = strings.CutPrefix(text, "say ")
	}
	msg = strings.TrimSpace(msg)
	if !ok || msg == "" {
		return agent.Intent{}, false
	}
	return agent.Intent{Kind: agent.IntentSay, Message: msg}, true
}

// buildGotoIntent requires at least an X/Y number pair in the text; a
// bare movement trigger lets scanning continue so phrases like "go near
// me" still hit the approach rule.
func buildGotoIntent(text string) (agent.Intent, bool) {
	coords, ok := extractCoordinates(text)
	if !ok {
		return agent.Intent{}, false
	}
	intent := agent.Intent{Kind: agent.IntentGoto, X: agent.IntPtr(coords[0]), Y: agent.IntPtr(coords[1])}
	if len(coords) == 3 {
		intent.Z = agent.IntPtr(coords[2])
	}
	return intent, true
}

var gatherResources = []struct {
	resource string
	words    []string
}{
	{resource: "wood", words: []string{"wood", "log", "tree"}},
	{resource: "stone", words: []string{"stone", "cobble", "rock"}},
	{resource: "dirt", words: []string{"dirt", "soil"}},
	{resource: "ore", words: []string{"ore", "coal", "iron", "gold", "diamond"}},
}

func buildGatherIntent(text string) (agent.Intent, bool) {
	for _, g := range gatherResources {
		for _, w := range g.words {
			if strings.Contains(text, w) {
				return agent.Intent{Kind: agent.IntentGather, Resource: g.resource}, true
			}
		}
	}
	return agent.Intent{}, false
}

var toolWords = []string{"pickaxe", "axe", "shovel", "sword", "hoe", "tool"}

func buildCraftToolsIntent(text string) (agent.Intent, bool) {
	for _, w := range toolWords {
		if strings.Contains(text, w) {
			return agent.Intent{Kind: agent.IntentCraftTools}, true
		}
	}
	return agent.Intent{}, false
}

func buildBreakBlockIntent(text string) (agent.Intent, bool) {
	if strings.Contains(text, "block") {
		return agent.Intent{Kind: agent.IntentBreakBlock}, true
	}
	return agent.Intent{}, false
}

func buildEquipToolIntent(text string) (agent.Intent, bool) {
	for _, w := range toolWords {
		if strings.Contains(text, w) {
			return agent.Intent{Kind: agent.IntentEquipTool}, true
		}
	}
	return agent.Intent{}, false
}
