package chat

import (
	"context"
	"errors"
	"strings"

	"github.com/r3lic-pnw/craftagent/internal/app/action"
	"github.com/r3lic-pnw/craftagent/internal/app/ports"
)

var (
	ErrNoText        = errors.New("No text provided")
	ErrNotConfigured = errors.New("chat model not configured")
)

const defaultSystemPrompt = "You are a Minecraft companion bot. Answer briefly. " +
	"When asked to do something in the game, state the action plainly, for example: " +
	"\"I'll gather wood\" or \"go to 100 64 200\"."

type Request struct {
	Text string `json:"text"`
}

type Response struct {
	Reply       string           `json:"reply"`
	Action      *action.Response `json:"action,omitempty"`
	ActionError string           `json:"actionError,omitempty"`
}

// UseCase sends chat text to the local model and, when enabled, routes
// the reply back through the action dispatcher so spoken intents become
// game actions.
type UseCase struct {
	Model           ports.ChatModel
	Dispatcher      Dispatcher
	DispatchReplies bool
	SystemPrompt    string
}

type Dispatcher interface {
	Execute(ctx context.Context, req action.Request) (action.Response, error)
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return Response{}, ErrNoText
	}
	if u.Model == nil {
		return Response{}, ErrNotConfigured
	}
	system := u.SystemPrompt
	if system == "" {
		system = defaultSystemPrompt
	}
	reply, err := u.Model.Reply(ctx, system, text)
	if err != nil {
		return Response{}, err
	}

	out := Response{Reply: reply}
	if u.DispatchReplies && u.Dispatcher != nil {
		// a failed dispatch does not fail the chat; the reply stands
		res, dispatchErr := u.Dispatcher.Execute(ctx, action.Request{Text: reply})
		if dispatchErr != nil {
			out.ActionError = dispatchErr.Error()
		} else {
			out.Action = &res
		}
	}
	return out, nil
}
