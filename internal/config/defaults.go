// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied after all sources have been merged. A field set by
// any source is never overwritten.
const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultTokenIssuer     = "go-pass-god"
	DefaultTokenDuration   = 30 * time.Minute
	DefaultKeyFile         = ".env"
	DefaultShareTTL        = 60 * time.Minute
	DefaultShareMaxTTL     = 7 * 24 * time.Hour
	DefaultPasswordsURL    = "https://api.pwnedpasswords.com"
	DefaultAccountsURL     = "https://haveibeenpwned.com/api/v3"
	DefaultUserAgent       = "go-pass-god"
	DefaultAdapterTimeout  = 10 * time.Second
	DefaultAdapterRetries  = 1
	DefaultSweepInterval   = 5 * time.Minute
	DefaultSweepRetention  = 24 * time.Hour
	minimumSigningKeyBytes = 32
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:     DefaultTokenIssuer,
			TokenDuration:   DefaultTokenDuration,
			KeyFile:         DefaultKeyFile,
			ShareDefaultTTL: DefaultShareTTL,
			ShareMaxTTL:     DefaultShareMaxTTL,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			PasswordsURL:   DefaultPasswordsURL,
			AccountsURL:    DefaultAccountsURL,
			UserAgent:      DefaultUserAgent,
			RequestTimeout: DefaultAdapterTimeout,
			RetryCount:     DefaultAdapterRetries,
		},
		Workers: Workers{
			SweepInterval:  DefaultSweepInterval,
			SweepRetention: DefaultSweepRetention,
		},
	}
}
