// Package workers runs the server's background jobs. Every worker blocks in
// Run until its context is cancelled.
package workers

import (
	"context"
	"time"
)

// Worker is a background job bound to the process lifetime.
type Worker interface {
	Run(ctx context.Context)
}

// SharedSecretPurger is the storage side of the share sweeper.
type SharedSecretPurger interface {
	DeleteExpiredSharedSecrets(ctx context.Context, now, consumedBefore time.Time) (int64, error)
}
