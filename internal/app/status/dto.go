package status

import "github.com/r3lic-pnw/craftagent/internal/domain/world"

// HealthReport is the liveness summary served at /health.
type HealthReport struct {
	Status        string `json:"status"`
	Connected     bool   `json:"connected"`
	Spawned       bool   `json:"spawned"`
	Ready         bool   `json:"ready"`
	LastError     string `json:"lastError,omitempty"`
	UptimeSeconds int64  `json:"uptimeSeconds"`
}

// Report is the full diagnostic dump served at /status.
type Report struct {
	Connected bool         `json:"connected"`
	Spawned   bool         `json:"spawned"`
	Username  string       `json:"username"`
	Version   string       `json:"version"`
	Position  world.Vec3   `json:"position"`
	Health    float64      `json:"health"`
	Food      float64      `json:"food"`
	Inventory []world.Item `json:"inventory"`
	HeldItem  *world.Item  `json:"heldItem,omitempty"`
}
