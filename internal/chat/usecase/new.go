package usecase

import (
	"storefront-chatbot/internal/router"
	"storefront-chatbot/pkg/log"
	"storefront-chatbot/pkg/markdown"
)

type implUseCase struct {
	l        log.Logger
	router   router.Router
	renderer markdown.Renderer
}

// New creates a new chat UseCase instance.
func New(l log.Logger, r router.Router, renderer markdown.Renderer) *implUseCase {
	return &implUseCase{
		l:        l,
		router:   r,
		renderer: renderer,
	}
}
