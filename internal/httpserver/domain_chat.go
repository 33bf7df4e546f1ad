package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"storefront-chatbot/internal/catalog"
	chatHTTP "storefront-chatbot/internal/chat/delivery/http"
	chatUC "storefront-chatbot/internal/chat/usecase"
	"storefront-chatbot/internal/middleware"
	"storefront-chatbot/internal/router"
	"storefront-chatbot/pkg/markdown"
)

// setupChatDomain initializes the chat domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(srv.l, ...)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. UseCase: keyword router over the catalog, LLM fallback, HTML renderer
	formatter := catalog.NewFormatter(srv.config.Shopify.StoreURL())
	rt := router.New(srv.catalog, formatter, srv.completer, srv.l)
	uc := chatUC.New(srv.l, rt, markdown.NewRenderer())

	// 2. HTTP Handler
	h := chatHTTP.New(srv.l, uc)

	// 3. Routes: registers POST /api/chat
	chatHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Chat domain registered with %d catalog products", srv.catalog.Len())
	return nil
}
