// Package notification delivers engine-produced notifications. Delivery is
// fire-and-forget: a failed insert is logged and counted, never surfaced to
// the turn engine.
package notification

import (
	"context"

	"github.com/ldanko/idleheroes/internal/domain"
	"github.com/ldanko/idleheroes/internal/logger"
	"github.com/ldanko/idleheroes/internal/metrics"
	"github.com/ldanko/idleheroes/internal/repository"
)

// Notifier is the interface the engine and services call.
type Notifier interface {
	Notify(ctx context.Context, recipientID, title, message string, severity domain.Severity, link string)
}

type notifier struct {
	repo repository.Notification
}

// New creates a Notifier backed by the notification repository.
func New(repo repository.Notification) Notifier {
	return &notifier{repo: repo}
}

// Notify stores one notification. Errors never propagate to the caller.
func (n *notifier) Notify(ctx context.Context, recipientID, title, message string, severity domain.Severity, link string) {
	log := logger.FromContext(ctx)

	record := &domain.Notification{
		RecipientID: recipientID,
		Title:       title,
		Message:     message,
		Severity:    severity,
		Link:        link,
	}

	if err := n.repo.InsertNotification(ctx, record); err != nil {
		metrics.NotificationFailures.Inc()
		log.Error("Failed to deliver notification",
			"recipient_id", recipientID, "title", title, "error", err)
		return
	}

	metrics.NotificationsSent.WithLabelValues(string(severity)).Inc()
	log.Debug("Notification delivered", "recipient_id", recipientID, "title", title)
}
