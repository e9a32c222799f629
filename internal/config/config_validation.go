// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Defaults are already
// applied when validate runs.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey != "" && len(cfg.App.TokenSignKey) < minimumSigningKeyBytes {
		return fmt.Errorf("%w: token sign key must be at least %d bytes", ErrInvalidAppConfigs, minimumSigningKeyBytes)
	}

	if cfg.App.TokenDuration <= 0 || cfg.App.KeyFile == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.App.ShareDefaultTTL > cfg.App.ShareMaxTTL {
		return fmt.Errorf("%w: default share ttl exceeds max share ttl", ErrInvalidAppConfigs)
	}

	if cfg.Adapter.PasswordsURL == "" || cfg.Adapter.AccountsURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
