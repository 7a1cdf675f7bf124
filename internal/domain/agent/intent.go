package agent

// IntentKind enumerates the actions the dispatcher knows how to run.
type IntentKind string

const (
	IntentGoto        IntentKind = "goto"
	IntentFollow      IntentKind = "follow"
	IntentApproach    IntentKind = "approach"
	IntentExplore     IntentKind = "explore"
	IntentStop        IntentKind = "stop"
	IntentGather      IntentKind = "gather"
	IntentCraftPlanks IntentKind = "craft_planks"
	IntentCraftTools  IntentKind = "craft_tools"
	IntentPlaceBlock  IntentKind = "place_block"
	IntentBreakBlock  IntentKind = "break_block"
	IntentAttack      IntentKind = "attack"
	IntentDropItem    IntentKind = "drop_item"
	IntentEquipTool   IntentKind = "equip_tool"
	IntentLookAround  IntentKind = "look_around"
	IntentSay         IntentKind = "say"
)

// Intent is one classified command. Exactly one Kind is set; parameter
// fields are populated only when they apply to that kind.
type Intent struct {
	Kind IntentKind

	// Coordinates for goto. X is always present when Kind is goto; Y and
	// Z fall back to the agent's current coordinate when nil.
	X *int
	Y *int
	Z *int

	// Resource name for gather (wood, stone, dirt, ore).
	Resource string

	// Message to relay into in-game chat for say.
	Message string
}

func IntPtr(v int) *int { return &v }
