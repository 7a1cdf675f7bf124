package action

import "github.com/r3lic-pnw/craftagent/internal/domain/agent"

type Request struct {
	Text string `json:"text"`
}

type Response struct {
	Kind    agent.IntentKind `json:"action"`
	Message string           `json:"message"`
	Details map[string]any   `json:"details,omitempty"`
}
