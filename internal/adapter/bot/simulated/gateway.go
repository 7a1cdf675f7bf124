package simulated

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/r3lic-pnw/craftagent/internal/app/ports"
	"github.com/r3lic-pnw/craftagent/internal/domain/world"
)

const (
	digDelay     = 50 * time.Millisecond
	noPathDelay  = 10 * time.Millisecond
	eyeHeight    = 1.62
	raycastStep  = 0.25
	maxHandReach = 6.0
)

// Gateway is an in-process stand-in for a live game connection. It keeps
// a voxel overlay over a flat procedural world, a mob list and an
// inventory, and resolves movement goals on a wall-clock timer instead
// of a pathfinder. All methods are safe for concurrent use.
type Gateway struct {
	cfg Config

	mu          sync.Mutex
	state       world.AgentState
	overlay     map[world.BlockPos]world.Block
	entities    []world.Entity
	items       []world.Item
	held        string
	attacking   int32
	digging     bool
	chatLog     []string
	goalCancel  chan struct{}
	connectedAt time.Time
	nextEntity  int32
	raining     bool
	thundering  bool
}

func New(cfg Config) *Gateway {
	return &Gateway{
		cfg:     cfg,
		overlay: map[world.BlockPos]world.Block{},
	}
}

var _ ports.BotGateway = (*Gateway)(nil)

func (g *Gateway) Connect(_ context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state.Connected {
		return nil
	}
	g.connectedAt = time.Now()
	g.state = world.AgentState{
		Connected:   true,
		Spawned:     true,
		Username:    g.cfg.Username,
		Version:     g.cfg.Version,
		Position:    g.cfg.Spawn,
		Health:      20,
		Food:        20,
		ConnectedAt: g.connectedAt,
	}
	if g.cfg.SeedWorld {
		g.seedWorld()
	}
	return nil
}

// seedWorld plants a small oak near spawn and spawns a cow and a zombie
// so gather and attack have targets on a fresh session.
func (g *Gateway) seedWorld() {
	base := g.cfg.Spawn.Floored().Offset(6, -1, 4)
	for dy := 1; dy <= 4; dy++ {
		trunk := base.Offset(0, dy, 0)
		g.overlay[trunk] = world.Block{Name: "oak_log", Pos: trunk, Solid: true, Diggable: true}
	}
	g.entities = append(g.entities,
		world.Entity{ID: g.entityID(), Name: "cow", Kind: "cow", Pos: g.cfg.Spawn.Floored().Offset(-5, 0, 3).Center()},
		world.Entity{ID: g.entityID(), Name: "zombie", Kind: "zombie", Pos: g.cfg.Spawn.Floored().Offset(8, 0, -6).Center()},
	)
}

func (g *Gateway) entityID() int32 {
	g.nextEntity++
	return g.nextEntity
}

func (g *Gateway) Connected() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Connected
}

func (g *Gateway) Spawned() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Spawned
}

func (g *Gateway) State() world.AgentState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *Gateway) HasPathfinder() bool { return true }

func (g *Gateway) StartGoal(goal world.Goal) (<-chan error, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.state.Connected {
		return nil, ports.ErrNotConnected
	}
	if g.goalCancel != nil {
		close(g.goalCancel)
		g.goalCancel = nil
	}
	cancel := make(chan struct{})
	result := make(chan error, 1)
	g.goalCancel = cancel

	if goal.Kind == world.GoalFollow {
		go func() {
			<-cancel
			result <- ports.ErrGoalAborted
		}()
		return result, nil
	}

	from := g.state.Position
	target := goal.Pos.Center()
	dist := from.DistanceTo(target)
	if dist > g.cfg.MaxPathRange || (goal.Kind == world.GoalBlock && g.blockAtLocked(goal.Pos).Solid) {
		go func() {
			select {
			case <-cancel:
				result <- ports.ErrGoalAborted
			case <-time.After(noPathDelay):
				result <- ports.ErrNoPath
			}
		}()
		return result, nil
	}

	go g.travel(cancel, result, goal, from, target, dist)
	return result, nil
}

func (g *Gateway) travel(cancel chan struct{}, result chan<- error, goal world.Goal, from, target world.Vec3, dist float64) {
	speed := g.cfg.TravelSpeed
	if speed <= 0 {
		speed = 1
	}
	timer := time.NewTimer(time.Duration(dist / speed * float64(time.Second)))
	defer timer.Stop()
	select {
	case <-cancel:
		result <- ports.ErrGoalAborted
		return
	case <-timer.C:
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	final := target
	if goal.Kind == world.GoalNear && goal.Range > 0 && dist > goal.Range {
		// stop on the approach line at the requested range
		scale := goal.Range / dist
		final = world.Vec3{
			X: target.X + (from.X-target.X)*scale,
			Y: target.Y + (from.Y-target.Y)*scale,
			Z: target.Z + (from.Z-target.Z)*scale,
		}
	}
	g.state.Position = final
	g.state.Yaw = math.Atan2(-(target.X - from.X), -(target.Z - from.Z))
	if g.goalCancel == cancel {
		g.goalCancel = nil
	}
	result <- nil
}

func (g *Gateway) ClearGoal() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.goalCancel != nil {
		close(g.goalCancel)
		g.goalCancel = nil
	}
}

func (g *Gateway) BlockAt(pos world.BlockPos) (world.Block, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.blockAtLocked(pos), true
}

func (g *Gateway) blockAtLocked(pos world.BlockPos) world.Block {
	if b, ok := g.overlay[pos]; ok {
		return b
	}
	return g.terrainAt(pos)
}

func (g *Gateway) FindBlock(names []string, radius int) (world.Block, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	feet := g.state.Position.Floored()

	best := world.Block{}
	bestDist := math.Inf(1)
	for pos, b := range g.overlay {
		if b.IsAir() || !matchesAny(b.Name, names) {
			continue
		}
		d := feet.DistanceTo(pos)
		if d <= float64(radius) && d < bestDist {
			best, bestDist = b, d
		}
	}
	if !math.IsInf(bestDist, 1) {
		return best, true
	}

	// fall back to the procedural layers under the agent
	for _, name := range names {
		depth, ok := terrainDepth[name]
		if !ok {
			continue
		}
		pos := world.BlockPos{X: feet.X, Y: g.cfg.GroundLevel + depth, Z: feet.Z}
		if b := g.blockAtLocked(pos); b.Name == name {
			return b, true
		}
	}
	return world.Block{}, false
}

func matchesAny(name string, names []string) bool {
	for _, n := range names {
		if name == n {
			return true
		}
	}
	return false
}

func (g *Gateway) TargetedBlock(maxRange float64) (world.Block, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	eye := g.state.Position
	eye.Y += eyeHeight
	dx := -math.Sin(g.state.Yaw) * math.Cos(g.state.Pitch)
	dy := -math.Sin(g.state.Pitch)
	dz := -math.Cos(g.state.Yaw) * math.Cos(g.state.Pitch)
	for d := raycastStep; d <= maxRange; d += raycastStep {
		cell := world.Vec3{X: eye.X + dx*d, Y: eye.Y + dy*d, Z: eye.Z + dz*d}.Floored()
		if b := g.blockAtLocked(cell); !b.IsAir() {
			return b, true
		}
	}
	return world.Block{}, false
}

func (g *Gateway) Entities() []world.Entity {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]world.Entity, len(g.entities))
	copy(out, g.entities)
	pos := g.state.Position
	sort.Slice(out, func(i, j int) bool {
		return pos.DistanceTo(out[i].Pos) < pos.DistanceTo(out[j].Pos)
	})
	return out
}

func (g *Gateway) Biome(_ world.BlockPos) (string, error) {
	return g.cfg.Biome, nil
}

func (g *Gateway) TimeOfDay() (int64, int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	total := int64(time.Since(g.connectedAt).Seconds() * g.cfg.TickRate)
	return total % 24000, total / 24000
}

func (g *Gateway) IsRaining() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.raining
}

func (g *Gateway) IsThundering() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.thundering
}

func (g *Gateway) Items() []world.Item {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]world.Item, len(g.items))
	copy(out, g.items)
	return out
}

func (g *Gateway) HeldItem() (world.Item, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, it := range g.items {
		if it.Name == g.held {
			return it, true
		}
	}
	return world.Item{}, false
}

func (g *Gateway) Dig(ctx context.Context, pos world.BlockPos) error {
	g.mu.Lock()
	if !g.state.Connected {
		g.mu.Unlock()
		return ports.ErrNotConnected
	}
	b := g.blockAtLocked(pos)
	if b.IsAir() {
		g.mu.Unlock()
		return fmt.Errorf("nothing to dig at %d, %d, %d", pos.X, pos.Y, pos.Z)
	}
	if !b.Diggable {
		g.mu.Unlock()
		return fmt.Errorf("block %s cannot be broken with current tool", b.Name)
	}
	if g.state.Position.DistanceTo(pos.Center()) > maxHandReach {
		g.mu.Unlock()
		return fmt.Errorf("block is too far away")
	}
	g.digging = true
	g.mu.Unlock()

	select {
	case <-ctx.Done():
		g.StopDigging()
		return ctx.Err()
	case <-time.After(digDelay):
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.digging = false
	g.overlay[pos] = world.Block{Name: world.AirBlock, Pos: pos}
	g.addItemLocked(dropFor(b.Name), 1)
	return nil
}

func (g *Gateway) Place(_ context.Context, itemName string, target world.BlockPos, _ world.BlockPos) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.state.Connected {
		return ports.ErrNotConnected
	}
	if !g.blockAtLocked(target).IsAir() {
		return fmt.Errorf("target position %d, %d, %d is occupied", target.X, target.Y, target.Z)
	}
	if !g.removeItemLocked(itemName, 1) {
		return fmt.Errorf("no %s in inventory", itemName)
	}
	g.overlay[target] = world.Block{Name: itemName, Pos: target, Solid: true, Diggable: true}
	return nil
}

func (g *Gateway) Equip(_ context.Context, itemName string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, it := range g.items {
		if it.Name == itemName {
			g.held = itemName
			return nil
		}
	}
	return fmt.Errorf("no %s in inventory", itemName)
}

func (g *Gateway) Drop(_ context.Context, itemName string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i, it := range g.items {
		if it.Name == itemName {
			g.items = append(g.items[:i], g.items[i+1:]...)
			if g.held == itemName {
				g.held = ""
			}
			return nil
		}
	}
	return fmt.Errorf("no %s in inventory", itemName)
}

func (g *Gateway) Craft(_ context.Context, itemName string, count int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	recipe, ok := craftRecipes[itemName]
	if !ok {
		return fmt.Errorf("no recipe for %s", itemName)
	}
	if count <= 0 {
		count = 1
	}
	for i := 0; i < count; i++ {
		if err := g.craftOnceLocked(itemName, recipe); err != nil {
			return err
		}
	}
	return nil
}

func (g *Gateway) craftOnceLocked(itemName string, recipe craftRecipe) error {
	for ingredient, n := range recipe.inputs {
		if g.countMatchingLocked(ingredient) < n {
			return fmt.Errorf("missing %s to craft %s", ingredient, itemName)
		}
	}
	for ingredient, n := range recipe.inputs {
		g.consumeMatchingLocked(ingredient, n)
	}
	g.addItemLocked(itemName, recipe.output)
	return nil
}

func (g *Gateway) HasRecipe(itemName string) bool {
	_, ok := craftRecipes[itemName]
	return ok
}

func (g *Gateway) Attack(entityID int32) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i, e := range g.entities {
		if e.ID == entityID {
			g.attacking = entityID
			// one hit settles it in the sim
			g.entities = append(g.entities[:i], g.entities[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("entity %d not found", entityID)
}

func (g *Gateway) ClearAttackTarget() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.attacking = 0
}

func (g *Gateway) StopDigging() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.digging = false
}

func (g *Gateway) Chat(message string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.chatLog = append(g.chatLog, message)
}

// RecordError stores a session-level failure so health reads can
// surface it. A later successful Connect clears it.
func (g *Gateway) RecordError(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state.LastError = err.Error()
}

// SetBlock writes the overlay directly; used to stage scenarios.
func (g *Gateway) SetBlock(pos world.BlockPos, name string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	solid := name != world.AirBlock
	g.overlay[pos] = world.Block{Name: name, Pos: pos, Solid: solid, Diggable: solid}
}

// AddEntity registers a mob or player and returns its ID.
func (g *Gateway) AddEntity(e world.Entity) int32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	e.ID = g.entityID()
	g.entities = append(g.entities, e)
	return e.ID
}

// AddItem puts count of an item into the inventory.
func (g *Gateway) AddItem(name string, count int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addItemLocked(name, count)
}

// ChatLog returns the messages sent so far.
func (g *Gateway) ChatLog() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]string, len(g.chatLog))
	copy(out, g.chatLog)
	return out
}

func (g *Gateway) addItemLocked(name string, count int) {
	for i := range g.items {
		if g.items[i].Name == name {
			g.items[i].Count += count
			return
		}
	}
	g.items = append(g.items, world.Item{Name: name, Count: count, Slot: len(g.items)})
}

func (g *Gateway) removeItemLocked(name string, count int) bool {
	for i := range g.items {
		if g.items[i].Name == name && g.items[i].Count >= count {
			g.items[i].Count -= count
			if g.items[i].Count == 0 {
				g.items = append(g.items[:i], g.items[i+1:]...)
			}
			return true
		}
	}
	return false
}

func (g *Gateway) countMatchingLocked(ingredient string) int {
	total := 0
	for _, it := range g.items {
		if matchesIngredient(it.Name, ingredient) {
			total += it.Count
		}
	}
	return total
}

func (g *Gateway) consumeMatchingLocked(ingredient string, n int) {
	for i := 0; i < len(g.items) && n > 0; {
		if !matchesIngredient(g.items[i].Name, ingredient) {
			i++
			continue
		}
		take := n
		if g.items[i].Count < take {
			take = g.items[i].Count
		}
		g.items[i].Count -= take
		n -= take
		if g.items[i].Count == 0 {
			g.items = append(g.items[:i], g.items[i+1:]...)
			continue
		}
		i++
	}
}
