package repository

import (
	"context"

	"github.com/ldanko/idleheroes/internal/domain"
)

// Notification is the sink for engine-produced notifications. The engine
// never reads notifications back.
type Notification interface {
	InsertNotification(ctx context.Context, n *domain.Notification) error
}
