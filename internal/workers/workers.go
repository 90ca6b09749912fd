package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-lost-found/internal/config"
	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/MKhiriev/go-lost-found/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the configured workers. A non-positive
// OTPSweepInterval leaves the sweeper out.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	w := new(Workers)

	if cfg.OTPSweepInterval > 0 {
		w.workers = append(w.workers, newOTPSweeper(storages.UserRepository, cfg.OTPSweepInterval, logger))
	} else {
		logger.Info().Msg("otp sweeper disabled")
	}

	return w
}

// Run starts every worker in its own goroutine and blocks until all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
