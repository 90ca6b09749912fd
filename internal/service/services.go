package service

import (
	"github.com/MKhiriev/go-lost-found/internal/adapter"
	"github.com/MKhiriev/go-lost-found/internal/config"
	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/MKhiriev/go-lost-found/internal/store"
	"github.com/MKhiriev/go-lost-found/internal/utils"
)

type Services struct {
	AuthService AuthService

	Credentials CredentialStore
	Challenges  OTPChallengeManager
	Sessions    SessionTokenIssuer
}

func NewServices(storages *store.Storages, sender adapter.NotificationSender, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	logger.Debug().Msg("creating services")

	credentials := NewCredentialStore(storages.UserRepository, utils.NewPasswordHasher(cfg.App.BcryptCost))
	challenges := NewOTPChallengeManager(storages.UserRepository, sender, cfg.App, cfg.Notifier)
	sessions := NewSessionTokenIssuer(cfg.App)

	return &Services{
		AuthService: NewAuthValidationService().Wrap(NewAuthService(credentials, challenges, sessions)),
		Credentials: credentials,
		Challenges:  challenges,
		Sessions:    sessions,
	}
}
