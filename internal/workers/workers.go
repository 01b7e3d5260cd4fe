// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-cheat-catalog/internal/logger"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Run starts every worker concurrently and waits for all of them. The first
// failure cancels the others; all errors are joined.
func (w *Workers) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			if err := worker.Run(ctx); err != nil {
				w.logger.Err(err).Msg("worker stopped with error")

				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()

				cancel()
			}
		}()
	}
	wg.Wait()

	return errors.Join(errs...)
}

// Start runs the workers in the background. The returned function cancels
// them and waits for their result.
func (w *Workers) Start(ctx context.Context) (stop func() error) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	return func() error {
		cancel()
		return <-done
	}
}
