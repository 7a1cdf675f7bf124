package ports

import (
	"context"

	"github.com/r3lic-pnw/craftagent/internal/domain/world"
)

// BotGateway is the full surface of the external game-bot library the
// dispatch core relies on. The gateway owns the live session; usecases
// only read its state and invoke operations on it.
type BotGateway interface {
	Session
	Mover
	WorldReader
	InventoryReader
	Actor
}

type Session interface {
	Connect(ctx context.Context) error
	Connected() bool
	Spawned() bool
	State() world.AgentState
}

// Mover wraps the pathfinding capability. StartGoal begins an
// asynchronous movement and returns a channel that yields exactly one
// result: nil when the goal is reached, ErrNoPath when the pathfinder
// gives up, ErrGoalAborted when the goal is replaced or cleared. A
// follow goal never completes and its channel never yields.
type Mover interface {
	HasPathfinder() bool
	StartGoal(goal world.Goal) (<-chan error, error)
	ClearGoal()
}

type WorldReader interface {
	BlockAt(pos world.BlockPos) (world.Block, bool)
	// FindBlock scans outward from the agent for the first block whose
	// name matches any of names, within radius blocks.
	FindBlock(names []string, radius int) (world.Block, bool)
	// TargetedBlock is the block under the agent's cursor, if any lies
	// within maxRange.
	TargetedBlock(maxRange float64) (world.Block, bool)
	Entities() []world.Entity
	Biome(pos world.BlockPos) (string, error)
	// TimeOfDay returns the tick within the current day cycle
	// [0, 24000) and the day count.
	TimeOfDay() (ticks int64, day int64)
	IsRaining() bool
	IsThundering() bool
}

type InventoryReader interface {
	Items() []world.Item
	HeldItem() (world.Item, bool)
}

// Actor covers the mutating single-shot operations. Dig, Place, Craft
// and Equip block until the operation settles or ctx expires.
type Actor interface {
	Dig(ctx context.Context, pos world.BlockPos) error
	Place(ctx context.Context, itemName string, target world.BlockPos, against world.BlockPos) error
	Equip(ctx context.Context, itemName string) error
	Drop(ctx context.Context, itemName string) error
	Craft(ctx context.Context, itemName string, count int) error
	HasRecipe(itemName string) bool
	Attack(entityID int32) error
	ClearAttackTarget()
	StopDigging()
	Chat(message string)
}
