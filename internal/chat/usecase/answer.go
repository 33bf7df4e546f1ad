package usecase

import (
	"context"

	"storefront-chatbot/internal/chat"
	"storefront-chatbot/internal/model"
)

// Answer validates the message, routes it, and renders the routed answer
// to HTML. An empty message is rejected before any catalog scan or gateway
// call happens.
func (uc *implUseCase) Answer(ctx context.Context, sc model.Scope, input chat.AnswerInput) (chat.AnswerOutput, error) {
	if input.Message == "" {
		return chat.AnswerOutput{}, chat.ErrEmptyMessage
	}

	uc.l.Infof(ctx, "Answer: user=%s session=%s message=%q", sc.UserID, sc.SessionID, input.Message)

	answer := uc.router.Respond(ctx, sc, input.Message)

	uc.l.Infof(ctx, "Answer: user=%s responded, length %d", sc.UserID, len(answer))

	return chat.AnswerOutput{
		Response: uc.renderer.Render(answer),
	}, nil
}
