package ratelimit

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/dailybrief/newsdigest/internal/metrics"
)

// ModelLimiter caps how many model calls a single run may spend.
// The budget covers the digest summary and every title translation
// together, so a noisy feed day cannot run up the API bill.
type ModelLimiter struct {
	mu       sync.Mutex
	used     int
	max      int
	declined int
}

// NewModelLimiter creates a limiter allowing up to max calls.
// A max of zero or below means unlimited.
func NewModelLimiter(max int) *ModelLimiter {
	return &ModelLimiter{max: max}
}

// Allow checks whether another call fits the budget without spending it.
func (l *ModelLimiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.max > 0 && l.used >= l.max {
		l.declined++
		log.Printf("⚠️ Model call budget reached (%d/%d)", l.used, l.max)
		return false
	}
	return true
}

// Use spends one call from the budget.
func (l *ModelLimiter) Use() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.max > 0 && l.used >= l.max {
		l.declined++
		return fmt.Errorf("model call budget exceeded (%d/%d)", l.used, l.max)
	}

	l.used++
	log.Printf("📊 Model usage: %d/%d", l.used, l.max)
	return nil
}

// GetStats returns current limiter statistics.
func (l *ModelLimiter) GetStats() map[string]interface{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	return map[string]interface{}{
		"model_calls_used":     l.used,
		"model_calls_limit":    l.max,
		"model_calls_declined": l.declined,
	}
}

// Completer is the slice of the model client the limiter guards.
type Completer interface {
	Complete(ctx context.Context, prompt string, temperature float32, maxTokens int) (string, error)
}

// LimitedCompleter spends limiter budget before forwarding to the
// wrapped client, so every caller shares one count.
type LimitedCompleter struct {
	inner   Completer
	limiter *ModelLimiter
}

// Limit wraps inner so each completion spends one call from l.
func Limit(inner Completer, l *ModelLimiter) *LimitedCompleter {
	return &LimitedCompleter{inner: inner, limiter: l}
}

// Complete implements the model client contract.
func (c *LimitedCompleter) Complete(ctx context.Context, prompt string, temperature float32, maxTokens int) (string, error) {
	if err := c.limiter.Use(); err != nil {
		return "", err
	}

	metrics.Global.IncrementModelCalls()
	return c.inner.Complete(ctx, prompt, temperature, maxTokens)
}
