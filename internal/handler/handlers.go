package handler

import (
	"fmt"

	"github.com/MKhiriev/go-lost-found/internal/config"
	"github.com/MKhiriev/go-lost-found/internal/handler/http"
	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/MKhiriev/go-lost-found/internal/service"
	"github.com/MKhiriev/go-lost-found/internal/view"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	views, err := view.NewEngine()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errTemplatesNotParsed, err)
	}

	return &Handlers{
		HTTP: http.NewHandler(services, views, cfg, logger),
	}, nil
}
