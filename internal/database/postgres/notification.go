package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ldanko/idleheroes/internal/domain"
)

// NotificationRepository implements the notification sink for PostgreSQL
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// InsertNotification stores one engine-produced notification
func (r *NotificationRepository) InsertNotification(ctx context.Context, n *domain.Notification) error {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO notifications (recipient_id, title, message, severity, link)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING notification_id, created_at`,
		n.RecipientID, n.Title, n.Message, n.Severity, n.Link).
		Scan(&id, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	n.ID = id.String()
	return nil
}
