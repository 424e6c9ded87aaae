package repository

import (
	"context"

	"github.com/ldanko/idleheroes/internal/domain"
)

// Item defines read access to the operator-owned item catalog.
type Item interface {
	GetItemByID(ctx context.Context, itemID int) (*domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	CreateItem(ctx context.Context, item *domain.Item) error
}
