// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.AdminUsername == "" || cfg.App.AdminPasswordHash == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.App.SessionSecret == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.RateLimit.LoginMax < 1 || cfg.RateLimit.LoginWindow <= 0 ||
		cfg.RateLimit.SubmissionMax < 1 || cfg.RateLimit.SubmissionWindow <= 0 {
		return ErrInvalidRateLimitConfigs
	}

	if cfg.Workers.SweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
