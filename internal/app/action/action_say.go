package action

import (
	"context"
	"fmt"

	"github.com/r3lic-pnw/craftagent/internal/domain/agent"
)

// runSay relays a message into in-game chat. It is synchronous and has
// no failure mode of its own.
func runSay(_ context.Context, uc UseCase, intent agent.Intent) (agent.Outcome, error) {
	if intent.Message == "" {
		return agent.Outcome{}, fmt.Errorf("%w: nothing to say", ErrInvalidTarget)
	}
	uc.Bot.Chat(intent.Message)
	return agent.Outcome{
		Message: fmt.Sprintf("Said %q in chat", intent.Message),
		Details: map[string]any{"message": intent.Message},
	}, nil
}
