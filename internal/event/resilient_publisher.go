package event

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/ldanko/idleheroes/internal/logger"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries     int
	RetryDelay     time.Duration
	DeadLetterPath string
}

// ResilientPublisher wraps an event bus with retry logic and a dead-letter
// file. Callers never block on, or fail because of, event delivery.
type ResilientPublisher struct {
	inner  Bus
	config ResilientConfig
	mu     sync.Mutex // serializes dead-letter file writes
}

// NewResilientPublisher creates a new ResilientPublisher
func NewResilientPublisher(inner Bus, config ResilientConfig) *ResilientPublisher {
	return &ResilientPublisher{
		inner:  inner,
		config: config,
	}
}

// PublishWithRetry attempts to publish an event. On failure the retry loop
// continues in the background; the caller always returns immediately.
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	if err := p.inner.Publish(ctx, event); err == nil {
		return
	} else {
		logger.Warn("Failed to publish event, initiating async retry",
			"event_type", event.Type,
			"error", err,
			"retries", p.config.MaxRetries)
	}

	go p.retryLoop(event)
}

func (p *ResilientPublisher) retryLoop(event Event) {
	// Detached context: the originating tick may finish before retries do.
	ctx := context.Background()

	for i := 1; i <= p.config.MaxRetries; i++ {
		time.Sleep(p.config.RetryDelay * time.Duration(i))

		if err := p.inner.Publish(ctx, event); err == nil {
			logger.Info("Successfully published event after retry",
				"event_type", event.Type, "attempt", i)
			return
		} else {
			logger.Warn("Retry failed",
				"event_type", event.Type, "attempt", i, "error", err)
		}
	}

	p.writeToDeadLetter(event)
}

func (p *ResilientPublisher) writeToDeadLetter(event Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	f, err := os.OpenFile(p.config.DeadLetterPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		logger.Error("Failed to open dead letter file", "error", err, "path", p.config.DeadLetterPath)
		return
	}
	defer f.Close()

	type deadLetterEntry struct {
		Timestamp time.Time `json:"timestamp"`
		Event     Event     `json:"event"`
	}

	entry := deadLetterEntry{Timestamp: time.Now(), Event: event}
	if err := json.NewEncoder(f).Encode(entry); err != nil {
		logger.Error("Failed to write to dead letter file", "error", err)
		return
	}
	logger.Info("Event written to dead letter queue", "event_type", event.Type)
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}
