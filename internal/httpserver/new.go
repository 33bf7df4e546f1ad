package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"storefront-chatbot/config"
	"storefront-chatbot/internal/catalog"
	"storefront-chatbot/pkg/helicone"
	"storefront-chatbot/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	config      *config.Config

	// Chat domain
	catalog   *catalog.Catalog
	completer helicone.Completer
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	AppConfig   *config.Config

	// Chat domain
	Catalog   *catalog.Catalog
	Completer helicone.Completer
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.AppConfig,
		catalog:     cfg.Catalog,
		completer:   cfg.Completer,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.catalog == nil {
		return errors.New("catalog is required")
	}
	if srv.completer == nil {
		return errors.New("completer is required")
	}
	return nil
}
