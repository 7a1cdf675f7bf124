package observe

import "github.com/r3lic-pnw/craftagent/internal/domain/world"

// Snapshot is the structured description of the agent's surroundings.
// Field names follow the wire format the chat client consumes.
type Snapshot struct {
	Position        world.Vec3      `json:"position"`
	Rotation        Rotation        `json:"rotation"`
	Health          float64         `json:"health"`
	Food            float64         `json:"food"`
	Experience      int             `json:"experience"`
	Time            TimeInfo        `json:"time"`
	Weather         Weather         `json:"weather"`
	Biome           string          `json:"biome"`
	TargetBlock     *TargetBlock    `json:"targetBlock,omitempty"`
	Inventory       Inventory       `json:"inventory"`
	Movement        Movement        `json:"movement"`
	BlocksInSight   []SightedBlock  `json:"blocksInSight"`
	EntitiesInSight []SightedEntity `json:"entitiesInSight"`
	Surroundings    Surroundings    `json:"surroundings"`
}

type Rotation struct {
	Yaw   float64 `json:"yaw"`
	Pitch float64 `json:"pitch"`
}

type TimeInfo struct {
	Phase string `json:"phase"`
	Day   int64  `json:"day"`
	Ticks int64  `json:"ticks"`
}

type Weather struct {
	IsRaining    bool `json:"isRaining"`
	IsThundering bool `json:"isThundering"`
}

type TargetBlock struct {
	Name     string         `json:"name"`
	Position world.BlockPos `json:"position"`
}

type Inventory struct {
	TotalItems int          `json:"totalItems"`
	ItemInHand *HandItem    `json:"itemInHand,omitempty"`
	Items      []world.Item `json:"items"`
}

type HandItem struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Movement carries coarse capability flags, not physics state.
type Movement struct {
	CanPathfind bool `json:"canPathfind"`
	CanDig      bool `json:"canDig"`
	CanPlace    bool `json:"canPlace"`
}

type SightedBlock struct {
	Name     string         `json:"name"`
	Position world.BlockPos `json:"position"`
	Distance float64        `json:"distance"`
}

type SightedEntity struct {
	Name      string  `json:"name"`
	Kind      string  `json:"kind"`
	Distance  float64 `json:"distance"`
	IsPlayer  bool    `json:"isPlayer"`
	IsHostile bool    `json:"isHostile"`
	InView    bool    `json:"inView"`
}

type Surroundings struct {
	Ground  string `json:"ground"`
	Ceiling string `json:"ceiling"`
	North   string `json:"north"`
	South   string `json:"south"`
	East    string `json:"east"`
	West    string `json:"west"`
}
