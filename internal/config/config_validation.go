// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// DevelopmentTokenSignKey is used when no sign key is configured outside
// production. Production refuses to start with it.
const DevelopmentTokenSignKey = "lost-found-development-sign-key"

const (
	defaultTokenIssuer      = "lost-found"
	defaultTokenDuration    = 7 * 24 * time.Hour
	defaultOTPTTL           = 10 * time.Minute
	defaultBcryptCost       = 10
	defaultSQLiteDSN        = "file:lostfound.db?_foreign_keys=on"
	defaultHTTPAddress      = "localhost:8080"
	defaultRequestTimeout   = 30 * time.Second
	defaultReadTimeout      = 10 * time.Second
	defaultWriteTimeout     = 30 * time.Second
	defaultIdleTimeout      = 60 * time.Second
	defaultSMTPPort         = 587
	defaultSendTimeout      = 10 * time.Second
	defaultOTPSweepInterval = 5 * time.Minute
)

// applyDefaults fills every field left empty by all sources.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Env == "" {
		cfg.App.Env = EnvDevelopment
	}
	if cfg.App.TokenSignKey == "" && !cfg.App.IsProduction() {
		cfg.App.TokenSignKey = DevelopmentTokenSignKey
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.OTPTTL == 0 {
		cfg.App.OTPTTL = defaultOTPTTL
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = defaultBcryptCost
	}

	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DriverSQLite
	}
	if cfg.Storage.DB.DSN == "" && cfg.Storage.DB.Driver == DriverSQLite {
		cfg.Storage.DB.DSN = defaultSQLiteDSN
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = defaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = defaultWriteTimeout
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = defaultIdleTimeout
	}

	if cfg.Notifier.SMTP.Port == 0 {
		cfg.Notifier.SMTP.Port = defaultSMTPPort
	}
	if cfg.Notifier.SendTimeout == 0 {
		cfg.Notifier.SendTimeout = defaultSendTimeout
	}

	if cfg.Workers.OTPSweepInterval == 0 {
		cfg.Workers.OTPSweepInterval = defaultOTPSweepInterval
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.Env {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidAppConfigs, cfg.App.Env)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.IsProduction() && cfg.App.TokenSignKey == DevelopmentTokenSignKey {
		return fmt.Errorf("%w: development token sign key used in production", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration < 0 || cfg.App.OTPTTL < 0 {
		return fmt.Errorf("%w: durations must be positive", ErrInvalidAppConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ReadTimeout < 0 || cfg.Server.WriteTimeout < 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Notifier.SendTimeout <= 0 {
		return fmt.Errorf("%w: send timeout must be positive", ErrInvalidNotifierConfigs)
	}
	if cfg.App.IsProduction() && !cfg.Notifier.IsConfigured() {
		return fmt.Errorf("%w: production requires SMTP or webhook delivery", ErrInvalidNotifierConfigs)
	}

	return nil
}
