package http

import (
	"time"

	"github.com/MKhiriev/go-lost-found/internal/config"
	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/MKhiriev/go-lost-found/internal/service"
	"github.com/MKhiriev/go-lost-found/internal/view"
	"github.com/unrolled/secure"
)

type Handler struct {
	services *service.Services
	views    *view.Engine
	secure   *secure.Secure

	production     bool
	tokenDuration  time.Duration
	otpTTL         time.Duration
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, views *view.Engine, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		views:          views,
		secure:         newSecureMiddleware(cfg.App.IsProduction()),
		production:     cfg.App.IsProduction(),
		tokenDuration:  cfg.App.TokenDuration,
		otpTTL:         cfg.App.OTPTTL,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
