package classify

import (
	"testing"

	"github.com/r3lic-pnw/craftagent/internal/domain/agent"
)

func TestClassifyKinds(t *testing.T) {
	cases := []struct {
		text string
		want agent.IntentKind
	}{
		{"stop", agent.IntentStop},
		{"halt right there", agent.IntentStop},
		{"please stay put", agent.IntentStop},
		{"go to 100 64 200", agent.IntentGoto},
		{"follow me", agent.IntentFollow},
		{"come with me", agent.IntentFollow},
		{"come here", agent.IntentApproach},
		{"get closer", agent.IntentApproach},
		{"gather some wood", agent.IntentGather},
		{"mine stone", agent.IntentGather},
		{"craft planks", agent.IntentCraftPlanks},
		{"make a pickaxe", agent.IntentCraftTools},
		{"place a block", agent.IntentPlaceBlock},
		{"break that block", agent.IntentBreakBlock},
		{"attack the zombie", agent.IntentAttack},
		{"drop your items", agent.IntentDropItem},
		{"equip your pickaxe", agent.IntentEquipTool},
		{"look around", agent.IntentLookAround},
		{"what do you see", agent.IntentLookAround},
		{"explore the area", agent.IntentExplore},
		{"go wander", agent.IntentExplore},
		{"/say hello everyone", agent.IntentSay},
		{"say good morning", agent.IntentSay},
	}
	for _, tc := range cases {
		if got := Classify(tc.text).Kind; got != tc.want {
			t.Fatalf("Classify(%q) = %s, want %s", tc.text, got, tc.want)
		}
	}
}

func TestClassifyFallsBackToFollow(t *testing.T) {
	for _, text := range []string{"", "   ", "hello friend", "the weather is nice"} {
		if got := Classify(text).Kind; got != agent.IntentFollow {
			t.Fatalf("Classify(%q) = %s, want fallback follow", text, got)
		}
	}
}

func TestClassifySayCapturesMessage(t *testing.T) {
	intent := Classify("/say stop right there")
	if intent.Kind != agent.IntentSay {
		t.Fatalf("expected say to win over stop, got %s", intent.Kind)
	}
	if intent.Message != "stop right there" {
		t.Fatalf("unexpected message: %q", intent.Message)
	}
}

func TestClassifySayRequiresLeadingVerb(t *testing.T) {
	// "say" in the middle of a sentence is not a chat relay
	if got := Classify("they say to mine stone").Kind; got != agent.IntentGather {
		t.Fatalf("expected gather, got %s", got)
	}
	if got := Classify("please stay put").Kind; got != agent.IntentStop {
		t.Fatalf("expected stop, got %s", got)
	}
}

func TestClassifyStopBeatsLaterRules(t *testing.T) {
	intent := Classify("stop gathering wood")
	if intent.Kind != agent.IntentStop {
		t.Fatalf("expected stop to win over gather, got %s", intent.Kind)
	}
}

func TestClassifyGotoCoordinates(t *testing.T) {
	intent := Classify("go to 100, 64, -200")
	if intent.Kind != agent.IntentGoto {
		t.Fatalf("expected goto, got %s", intent.Kind)
	}
	if intent.X == nil || *intent.X != 100 {
		t.Fatalf("unexpected x: %v", intent.X)
	}
	if intent.Y == nil || *intent.Y != 64 {
		t.Fatalf("unexpected y: %v", intent.Y)
	}
	if intent.Z == nil || *intent.Z != -200 {
		t.Fatalf("unexpected z: %v", intent.Z)
	}
}

func TestClassifyGotoTwoNumbersLeavesZUnset(t *testing.T) {
	intent := Classify("walk to 10 20")
	if intent.Kind != agent.IntentGoto {
		t.Fatalf("expected goto, got %s", intent.Kind)
	}
	if intent.Z != nil {
		t.Fatalf("z should stay unset for a pair, got %d", *intent.Z)
	}
}

func TestClassifyGotoWithoutNumbersKeepsScanning(t *testing.T) {
	// a numberless movement trigger must not stop the scan
	if got := Classify("head to me and get closer").Kind; got != agent.IntentApproach {
		t.Fatalf("expected approach, got %s", got)
	}
	// and with nothing else matching, the fallback applies
	if got := Classify("go to the place").Kind; got != agent.IntentFollow {
		t.Fatalf("expected follow fallback, got %s", got)
	}
}

func TestClassifyGatherResources(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"chop down a tree", "wood"},
		{"collect logs", "wood"},
		{"mine some rock", "stone"},
		{"dig up soil", "dirt"},
		{"mine iron", "ore"},
		{"get diamond", "ore"},
	}
	for _, tc := range cases {
		intent := Classify(tc.text)
		if intent.Kind != agent.IntentGather {
			t.Fatalf("Classify(%q) = %s, want gather", tc.text, intent.Kind)
		}
		if intent.Resource != tc.want {
			t.Fatalf("Classify(%q) resource = %q, want %q", tc.text, intent.Resource, tc.want)
		}
	}
}

func TestClassifyGatherWithoutResourceKeepsScanning(t *testing.T) {
	// "dig" alone names no resource, so the scan continues to fallback
	if got := Classify("dig in").Kind; got != agent.IntentFollow {
		t.Fatalf("expected follow fallback, got %s", got)
	}
}

func TestClassifyBreakRequiresBlockWord(t *testing.T) {
	if got := Classify("break it down").Kind; got != agent.IntentFollow {
		t.Fatalf("expected fallback without 'block', got %s", got)
	}
	if got := Classify("destroy that block").Kind; got != agent.IntentBreakBlock {
		t.Fatalf("expected break_block, got %s", got)
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	if got := Classify("GO TO 5 70 5").Kind; got != agent.IntentGoto {
		t.Fatalf("expected goto, got %s", got)
	}
}

func TestExtractCoordinates(t *testing.T) {
	cases := []struct {
		text string
		want []int
		ok   bool
	}{
		{"go to 1 2 3", []int{1, 2, 3}, true},
		{"go to 1, 2", []int{1, 2}, true},
		{"go to -10, 64, -20", []int{-10, 64, -20}, true},
		{"go to north", nil, false},
		{"go to 5", nil, false},
	}
	for _, tc := range cases {
		got, ok := extractCoordinates(tc.text)
		if ok != tc.ok {
			t.Fatalf("extractCoordinates(%q) ok = %v, want %v", tc.text, ok, tc.ok)
		}
		if !ok {
			continue
		}
		if len(got) != len(tc.want) {
			t.Fatalf("extractCoordinates(%q) = %v, want %v", tc.text, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("extractCoordinates(%q) = %v, want %v", tc.text, got, tc.want)
			}
		}
	}
}
