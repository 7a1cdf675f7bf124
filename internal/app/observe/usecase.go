package observe

import (
	"context"
	"errors"
	"math"
	"sort"

	"github.com/r3lic-pnw/craftagent/internal/app/ports"
	"github.com/r3lic-pnw/craftagent/internal/domain/world"
)

var ErrBotNotReady = errors.New("bot not connected or not spawned")

const (
	dayCycleTicks = 24000

	sightRange    = 20.0
	sightStep     = 0.5
	sightMaxHits  = 10
	entityRange   = 20.0
	viewHalfAngle = 70.0 * math.Pi / 180.0
	eyeHeight     = 1.62
	targetRange   = 5.0
)

// UseCase produces environment snapshots. It is stateless and read-only;
// every sub-collector is fault-isolated so one failing probe never
// aborts the whole snapshot.
type UseCase struct {
	Bot ports.BotGateway
}

func (u UseCase) Execute(_ context.Context) (Snapshot, error) {
	if u.Bot == nil || !u.Bot.Connected() || !u.Bot.Spawned() {
		return Snapshot{}, ErrBotNotReady
	}

	snap := Snapshot{
		Biome:           "unknown",
		Time:            TimeInfo{Phase: "unknown"},
		BlocksInSight:   []SightedBlock{},
		EntitiesInSight: []SightedEntity{},
		Inventory:       Inventory{Items: []world.Item{}},
	}

	var state world.AgentState
	probe(func() {
		state = u.Bot.State()
		snap.Position = state.Position
		snap.Rotation = Rotation{Yaw: state.Yaw, Pitch: state.Pitch}
		snap.Health = state.Health
		snap.Food = state.Food
		snap.Experience = state.Experience
	})
	probe(func() {
		ticks, day := u.Bot.TimeOfDay()
		snap.Time = TimeInfo{Phase: timePhase(ticks), Day: day, Ticks: ticks}
	})
	probe(func() {
		snap.Weather = Weather{IsRaining: u.Bot.IsRaining(), IsThundering: u.Bot.IsThundering()}
	})
	probe(func() {
		if biome, err := u.Bot.Biome(state.Position.Floored()); err == nil && biome != "" {
			snap.Biome = biome
		}
	})
	probe(func() {
		if b, ok := u.Bot.TargetedBlock(targetRange); ok && !b.IsAir() {
			snap.TargetBlock = &TargetBlock{Name: b.Name, Position: b.Pos}
		}
	})
	probe(func() {
		snap.Inventory = u.collectInventory()
	})
	probe(func() {
		snap.Movement = Movement{CanPathfind: u.Bot.HasPathfinder(), CanDig: true, CanPlace: true}
	})
	probe(func() {
		snap.BlocksInSight = u.collectBlocksInSight(state)
	})
	probe(func() {
		snap.EntitiesInSight = u.collectEntitiesInSight(state)
	})
	probe(func() {
		snap.Surroundings = u.collectSurroundings(state)
	})

	return snap, nil
}

// probe runs one collector and swallows both errors and panics; the
// caller's defaults stand in for whatever the collector failed to fill.
func probe(fn func()) {
	defer func() { _ = recover() }()
	fn()
}

// timePhase quantizes the day cycle into four named bands.
func timePhase(ticks int64) string {
	t := ((ticks % dayCycleTicks) + dayCycleTicks) % dayCycleTicks
	switch {
	case t < 12000:
		return "day"
	case t < 13000:
		return "sunset"
	case t < 23000:
		return "night"
	default:
		return "sunrise"
	}
}

func (u UseCase) collectInventory() Inventory {
	items := u.Bot.Items()
	if items == nil {
		items = []world.Item{}
	}
	total := 0
	for _, it := range items {
		total += it.Count
	}
	inv := Inventory{TotalItems: total, Items: items}
	if held, ok := u.Bot.HeldItem(); ok {
		inv.ItemInHand = &HandItem{Name: held.Name, Count: held.Count}
	}
	return inv
}

// collectBlocksInSight raycasts along the view direction, sampling every
// half block, de-duplicating by integer cell and keeping the first ten
// non-air hits.
func (u UseCase) collectBlocksInSight(state world.AgentState) []SightedBlock {
	eye := state.Position
	eye.Y += eyeHeight
	dx := -math.Sin(state.Yaw) * math.Cos(state.Pitch)
	dy := -math.Sin(state.Pitch)
	dz := -math.Cos(state.Yaw) * math.Cos(state.Pitch)

	seen := map[world.BlockPos]bool{}
	out := []SightedBlock{}
	for d := sightStep; d <= sightRange; d += sightStep {
		point := world.Vec3{X: eye.X + dx*d, Y: eye.Y + dy*d, Z: eye.Z + dz*d}
		cell := point.Floored()
		if seen[cell] {
			continue
		}
		seen[cell] = true
		b, ok := u.Bot.BlockAt(cell)
		if !ok || b.IsAir() {
			continue
		}
		out = append(out, SightedBlock{Name: b.Name, Position: cell, Distance: d})
		if len(out) >= sightMaxHits {
			break
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	return out
}

func (u UseCase) collectEntitiesInSight(state world.AgentState) []SightedEntity {
	viewX := -math.Sin(state.Yaw)
	viewZ := -math.Cos(state.Yaw)

	out := []SightedEntity{}
	for _, e := range u.Bot.Entities() {
		dist := state.Position.DistanceTo(e.Pos)
		if dist > entityRange {
			continue
		}
		name := e.Name
		if e.Username != "" {
			name = e.Username
		}
		out = append(out, SightedEntity{
			Name:      name,
			Kind:      e.Kind,
			Distance:  dist,
			IsPlayer:  e.IsPlayer,
			IsHostile: e.IsHostile(),
			InView:    inHorizontalView(state.Position, e.Pos, viewX, viewZ),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	return out
}

func inHorizontalView(from, to world.Vec3, viewX, viewZ float64) bool {
	dx := to.X - from.X
	dz := to.Z - from.Z
	norm := math.Hypot(dx, dz)
	if norm == 0 {
		return true
	}
	dot := (dx*viewX + dz*viewZ) / norm
	return math.Acos(clamp(dot, -1, 1)) <= viewHalfAngle
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func (u UseCase) collectSurroundings(state world.AgentState) Surroundings {
	feet := state.Position.Floored()
	return Surroundings{
		Ground:  u.blockName(feet.Offset(0, -1, 0)),
		Ceiling: u.blockName(feet.Offset(0, 2, 0)),
		North:   u.blockName(feet.Offset(0, 0, -1)),
		South:   u.blockName(feet.Offset(0, 0, 1)),
		East:    u.blockName(feet.Offset(1, 0, 0)),
		West:    u.blockName(feet.Offset(-1, 0, 0)),
	}
}

func (u UseCase) blockName(pos world.BlockPos) string {
	b, ok := u.Bot.BlockAt(pos)
	if !ok || b.IsAir() {
		return world.AirBlock
	}
	return b.Name
}
