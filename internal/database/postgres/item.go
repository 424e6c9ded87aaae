package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ldanko/idleheroes/internal/domain"
)

// ItemRepository implements the item catalog repository for PostgreSQL
type ItemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

const itemColumns = `item_id, name, description, item_type, power, defense, healing_amount, rarity, sell_price`

func scanItem(row pgx.Row) (*domain.Item, error) {
	var it domain.Item
	err := row.Scan(&it.ID, &it.Name, &it.Description, &it.Type, &it.Power,
		&it.Defense, &it.HealingAmount, &it.Rarity, &it.SellPrice)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// GetItemByID fetches one catalog item
func (r *ItemRepository) GetItemByID(ctx context.Context, itemID int) (*domain.Item, error) {
	item, err := scanItem(r.db.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM items WHERE item_id = $1`, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

// ListItems returns the full catalog
func (r *ItemRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.db.Query(ctx, `SELECT `+itemColumns+` FROM items ORDER BY item_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, *it)
	}
	return items, rows.Err()
}

// CreateItem inserts a catalog item (operator/seed path)
func (r *ItemRepository) CreateItem(ctx context.Context, item *domain.Item) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO items (name, description, item_type, power, defense, healing_amount, rarity, sell_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING item_id`,
		item.Name, item.Description, item.Type, item.Power, item.Defense,
		item.HealingAmount, item.Rarity, item.SellPrice).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}
