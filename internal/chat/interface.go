package chat

import (
	"context"

	"storefront-chatbot/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Answer produces the HTML answer for a single shopper message.
	Answer(ctx context.Context, sc model.Scope, input AnswerInput) (AnswerOutput, error)
}
