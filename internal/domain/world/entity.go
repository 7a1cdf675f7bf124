package world

// Entity is a live entity as reported by the bot gateway. The gateway owns
// the authoritative state; this is a read-only projection.
type Entity struct {
	ID       int32  `json:"id"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Username string `json:"username,omitempty"`
	Pos      Vec3   `json:"position"`
	IsPlayer bool   `json:"is_player"`
}

var hostileKinds = map[string]bool{
	"zombie":      true,
	"skeleton":    true,
	"spider":      true,
	"creeper":     true,
	"enderman":    true,
	"witch":       true,
	"drowned":     true,
	"husk":        true,
	"pillager":    true,
	"cave_spider": true,
}

func (e Entity) IsHostile() bool {
	return hostileKinds[e.Name] || hostileKinds[e.Kind]
}
