// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package workers

import (
	"github.com/thsrealty/backoffice/internal/config"
	"github.com/thsrealty/backoffice/internal/logger"
	"github.com/thsrealty/backoffice/internal/ratelimit"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers of the back-office server.
// Today that is a single sweeper evicting expired rate-limit windows from
// both limiter stores.
func NewWorkers(cfg config.Workers, loginLimiter, submissionLimiter *ratelimit.Limiter, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newSweeper(cfg.SweepInterval, logger, loginLimiter, submissionLimiter),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
