// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package workers

import (
	"time"

	"github.com/thsrealty/backoffice/internal/logger"
	"github.com/thsrealty/backoffice/internal/ratelimit"
)

// defaultSweepInterval applies when configuration leaves the interval unset.
const defaultSweepInterval = 5 * time.Minute

// sweeper periodically evicts expired fixed-window entries from the rate
// limiters. Without it, every client address that ever hit a throttled
// endpoint would stay in memory until restart.
type sweeper struct {
	interval time.Duration
	limiters []*ratelimit.Limiter
	logger   *logger.Logger
}

func newSweeper(interval time.Duration, logger *logger.Logger, limiters ...*ratelimit.Limiter) *sweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &sweeper{
		interval: interval,
		limiters: limiters,
		logger:   logger,
	}
}

// Run starts the sweep loop in its own goroutine and returns immediately.
func (s *sweeper) Run() {
	go s.loop()
}

func (s *sweeper) loop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for now := range ticker.C {
		s.sweep(now)
	}
}

func (s *sweeper) sweep(now time.Time) {
	total := 0
	for _, limiter := range s.limiters {
		total += limiter.Sweep(now)
	}
	if total > 0 {
		s.logger.Debug().Int("evicted", total).Msg("rate-limit windows swept")
	}
}
