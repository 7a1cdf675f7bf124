package simulated

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/r3lic-pnw/craftagent/internal/app/ports"
	"github.com/r3lic-pnw/craftagent/internal/domain/world"
)

func connected(t *testing.T) *Gateway {
	t.Helper()
	cfg := DefaultConfig()
	cfg.SeedWorld = false
	g := New(cfg)
	if err := g.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	return g
}

func TestConnectSetsSessionState(t *testing.T) {
	g := connected(t)
	state := g.State()
	if !state.Connected || !state.Spawned {
		t.Fatalf("unexpected state: %+v", state)
	}
	if state.Health != 20 || state.Food != 20 {
		t.Fatalf("unexpected vitals: %+v", state)
	}
}

func TestStartGoalReachesBlock(t *testing.T) {
	g := connected(t)
	cfg := DefaultConfig()

	target := cfg.Spawn.Floored().Offset(5, 0, 5)
	done, err := g.StartGoal(world.Goal{Kind: world.GoalBlock, Pos: target})
	if err != nil {
		t.Fatalf("StartGoal: %v", err)
	}
	select {
	case res := <-done:
		if res != nil {
			t.Fatalf("goal result: %v", res)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("goal did not complete")
	}
	if got := g.State().Position.Floored(); got != target {
		t.Fatalf("agent at %+v, want %+v", got, target)
	}
}

func TestStartGoalIntoSolidBlockHasNoPath(t *testing.T) {
	g := connected(t)
	target := DefaultConfig().Spawn.Floored().Offset(3, -2, 0)

	done, err := g.StartGoal(world.Goal{Kind: world.GoalBlock, Pos: target})
	if err != nil {
		t.Fatalf("StartGoal: %v", err)
	}
	select {
	case res := <-done:
		if res != ports.ErrNoPath {
			t.Fatalf("expected ErrNoPath, got %v", res)
		}
	case <-time.After(time.Second):
		t.Fatal("no result")
	}
}

func TestClearGoalAbortsActiveGoal(t *testing.T) {
	g := connected(t)
	far := DefaultConfig().Spawn.Floored().Offset(200, 0, 0)

	done, err := g.StartGoal(world.Goal{Kind: world.GoalBlock, Pos: far})
	if err != nil {
		t.Fatalf("StartGoal: %v", err)
	}
	g.ClearGoal()
	select {
	case res := <-done:
		if res != ports.ErrGoalAborted {
			t.Fatalf("expected ErrGoalAborted, got %v", res)
		}
	case <-time.After(time.Second):
		t.Fatal("aborted goal must yield")
	}
}

func TestFollowGoalNeverCompletes(t *testing.T) {
	g := connected(t)
	done, err := g.StartGoal(world.Goal{Kind: world.GoalFollow, EntityID: 1, Range: 2})
	if err != nil {
		t.Fatalf("StartGoal: %v", err)
	}
	select {
	case res := <-done:
		t.Fatalf("follow goal must not complete, got %v", res)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDigCollectsDrop(t *testing.T) {
	g := connected(t)
	pos := DefaultConfig().Spawn.Floored().Offset(1, -1, 0)

	if err := g.Dig(context.Background(), pos); err != nil {
		t.Fatalf("Dig: %v", err)
	}
	b, _ := g.BlockAt(pos)
	if !b.IsAir() {
		t.Fatalf("dug block must be air, got %q", b.Name)
	}
	items := g.Items()
	if len(items) != 1 || items[0].Name != "dirt" {
		t.Fatalf("grass_block must drop dirt, got %+v", items)
	}
}

func TestDigRespectsContext(t *testing.T) {
	g := connected(t)
	pos := DefaultConfig().Spawn.Floored().Offset(1, -1, 0)

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	if err := g.Dig(ctx, pos); err == nil {
		t.Fatal("expected context error")
	}
	b, _ := g.BlockAt(pos)
	if b.IsAir() {
		t.Fatal("aborted dig must not remove the block")
	}
}

func TestPlaceConsumesItem(t *testing.T) {
	g := connected(t)
	g.AddItem("cobblestone", 2)
	target := DefaultConfig().Spawn.Floored().Offset(1, 0, 0)

	if err := g.Place(context.Background(), "cobblestone", target, target.Offset(0, -1, 0)); err != nil {
		t.Fatalf("Place: %v", err)
	}
	b, _ := g.BlockAt(target)
	if b.Name != "cobblestone" {
		t.Fatalf("unexpected block: %q", b.Name)
	}
	if items := g.Items(); items[0].Count != 1 {
		t.Fatalf("place must consume one item, got %+v", items)
	}
}

func TestCraftPlanksAndTools(t *testing.T) {
	g := connected(t)
	g.AddItem("oak_log", 2)

	if !g.HasRecipe("oak_planks") {
		t.Fatal("plank recipe must exist")
	}
	if err := g.Craft(context.Background(), "oak_planks", 2); err != nil {
		t.Fatalf("craft planks: %v", err)
	}
	if err := g.Craft(context.Background(), "stick", 1); err != nil {
		t.Fatalf("craft stick: %v", err)
	}
	if err := g.Craft(context.Background(), "wooden_pickaxe", 1); err != nil {
		t.Fatalf("craft pickaxe: %v", err)
	}

	// 2 logs -> 8 planks, sticks take 2, the pickaxe takes 3 planks
	// and 2 sticks
	counts := map[string]int{}
	for _, it := range g.Items() {
		counts[it.Name] += it.Count
	}
	if counts["wooden_pickaxe"] != 1 {
		t.Fatalf("expected a pickaxe, got %+v", counts)
	}
	if counts["oak_planks"] != 3 || counts["stick"] != 2 {
		t.Fatalf("unexpected leftovers: %+v", counts)
	}
	if counts["oak_log"] != 0 {
		t.Fatalf("logs must be consumed, got %+v", counts)
	}
}

func TestCraftWithoutIngredientsFails(t *testing.T) {
	g := connected(t)
	if err := g.Craft(context.Background(), "stick", 1); err == nil {
		t.Fatal("expected missing ingredient error")
	}
}

func TestAttackRemovesEntity(t *testing.T) {
	g := connected(t)
	id := g.AddEntity(world.Entity{Name: "zombie", Kind: "zombie", Pos: world.Vec3{X: 5, Y: 64, Z: 5}})

	if err := g.Attack(id); err != nil {
		t.Fatalf("Attack: %v", err)
	}
	if len(g.Entities()) != 0 {
		t.Fatalf("entity must be gone, got %+v", g.Entities())
	}
	if err := g.Attack(id); err == nil {
		t.Fatal("attacking a dead entity must fail")
	}
}

func TestFindBlockPrefersOverlayThenTerrain(t *testing.T) {
	g := connected(t)
	logPos := DefaultConfig().Spawn.Floored().Offset(3, 0, 0)
	g.SetBlock(logPos, "oak_log")

	b, ok := g.FindBlock([]string{"oak_log"}, 16)
	if !ok || b.Pos != logPos {
		t.Fatalf("expected overlay log, got %+v ok=%v", b, ok)
	}

	stone, ok := g.FindBlock([]string{"stone"}, 16)
	if !ok || stone.Name != "stone" {
		t.Fatalf("expected terrain stone, got %+v ok=%v", stone, ok)
	}
}

func TestSeededWorldHasTargets(t *testing.T) {
	g := New(DefaultConfig())
	if err := g.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	if _, ok := g.FindBlock([]string{"oak_log"}, 16); !ok {
		t.Fatal("seeded world must contain a tree")
	}
	if len(g.Entities()) == 0 {
		t.Fatal("seeded world must contain mobs")
	}
}

func TestChatAppendsToLog(t *testing.T) {
	g := connected(t)
	g.Chat("hello")
	g.Chat("on my way")

	log := g.ChatLog()
	if len(log) != 2 || log[0] != "hello" || log[1] != "on my way" {
		t.Fatalf("unexpected chat log: %v", log)
	}
}

func TestRecordErrorSurfacesUntilReconnect(t *testing.T) {
	g := New(DefaultConfig())
	g.RecordError(errors.New("dial tcp: connection refused"))

	if got := g.State().LastError; got != "dial tcp: connection refused" {
		t.Fatalf("unexpected last error: %q", got)
	}
	if err := g.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	if got := g.State().LastError; got != "" {
		t.Fatalf("connect must clear the last error, got %q", got)
	}
}

func TestOperationsRequireConnection(t *testing.T) {
	g := New(DefaultConfig())
	if _, err := g.StartGoal(world.Goal{Kind: world.GoalBlock}); err != ports.ErrNotConnected {
		t.Fatalf("expected ErrNotConnected, got %v", err)
	}
	if err := g.Dig(context.Background(), world.BlockPos{}); err != ports.ErrNotConnected {
		t.Fatalf("expected ErrNotConnected, got %v", err)
	}
}
