// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/MKhiriev/go-lost-found/internal/store"
)

// otpSweeper periodically clears one-time codes whose expiry has passed.
// Verification never relies on it: expired codes are rejected either way.
type otpSweeper struct {
	repository store.UserRepository
	interval   time.Duration
	now        func() time.Time
	logger     *logger.Logger
}

func newOTPSweeper(repository store.UserRepository, interval time.Duration, logger *logger.Logger) *otpSweeper {
	return &otpSweeper{
		repository: repository,
		interval:   interval,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *otpSweeper) Run(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Msg("otp sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("otp sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *otpSweeper) sweep(ctx context.Context) {
	cleared, err := s.repository.ClearExpiredChallenges(ctx, s.now())
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Err(err).Str("func", "*otpSweeper.sweep").Msg("error clearing expired one-time codes")
		return
	}

	if cleared > 0 {
		s.logger.Debug().Int64("cleared", cleared).Msg("expired one-time codes cleared")
	}
}
