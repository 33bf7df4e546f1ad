package http

import (
	"github.com/gin-gonic/gin"

	"storefront-chatbot/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The chat endpoint is rate limited per client IP.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Chat)
}
