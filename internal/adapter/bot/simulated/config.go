package simulated

import "github.com/r3lic-pnw/craftagent/internal/domain/world"

// Config shapes the simulated session. Start from DefaultConfig and
// override fields as needed.
type Config struct {
	Username string
	Version  string
	Spawn    world.Vec3
	// GroundLevel is the Y of the top terrain layer; everything above is
	// air, everything at or below is solid.
	GroundLevel int
	Biome       string
	// TravelSpeed is blocks per wall-clock second when resolving goals.
	TravelSpeed float64
	// TickRate is game ticks per wall-clock second.
	TickRate float64
	// MaxPathRange is the farthest goal the fake pathfinder will accept.
	MaxPathRange float64
	// SeedWorld plants a tree and a few mobs near spawn on connect so a
	// fresh session has something to gather and fight.
	SeedWorld bool
}

func DefaultConfig() Config {
	return Config{
		Username:     "craftagent",
		Version:      "1.21.1",
		Spawn:        world.Vec3{X: 0.5, Y: 64, Z: 0.5},
		GroundLevel:  63,
		Biome:        "plains",
		TravelSpeed:  40,
		TickRate:     20,
		MaxPathRange: 256,
		SeedWorld:    true,
	}
}
