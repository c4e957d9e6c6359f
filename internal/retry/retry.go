package retry

import (
	"context"
	"fmt"
	"time"
)

type Config struct {
	MaxAttempts int
	Delay       time.Duration
	Backoff     bool // doubles the delay after each failed attempt
}

// Do runs fn until it succeeds, the attempts are spent, or ctx ends
// while waiting between attempts.
func Do(ctx context.Context, cfg Config, fn func() error) error {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if attempt == cfg.MaxAttempts {
			return fmt.Errorf("failed after %d attempts: %w", cfg.MaxAttempts, err)
		}

		delay := cfg.Delay
		if cfg.Backoff {
			delay = cfg.Delay * time.Duration(1<<(attempt-1))
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return nil
}
