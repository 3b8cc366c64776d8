package ledger

import (
	"log/slog"
	"time"
)

// Option configures a Blockchain.
type Option func(*Blockchain)

// WithLogger sets the logger used for append and verification events.
func WithLogger(logger *slog.Logger) Option {
	return func(bc *Blockchain) {
		if logger != nil {
			bc.logger = logger
		}
	}
}

// WithClock replaces time.Now as the source of block timestamps.
func WithClock(now func() time.Time) Option {
	return func(bc *Blockchain) {
		if now != nil {
			bc.now = now
		}
	}
}
