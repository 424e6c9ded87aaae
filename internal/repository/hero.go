package repository

import (
	"context"

	"github.com/ldanko/idleheroes/internal/domain"
)

// Hero defines the interface for hero, inventory and equipment persistence.
type Hero interface {
	CreateHero(ctx context.Context, hero *domain.Hero) error
	GetHeroByID(ctx context.Context, heroID string) (*domain.Hero, error)
	GetHeroByOwner(ctx context.Context, ownerID string) (*domain.Hero, error)
	ListHeroes(ctx context.Context) ([]domain.Hero, error)
	UpdateHero(ctx context.Context, hero domain.Hero) error

	GetEquipment(ctx context.Context, heroID string) (*domain.Equipment, error)
	CreateEquipment(ctx context.Context, heroID string) error
	UpdateEquipment(ctx context.Context, eq domain.Equipment) error

	GetInventory(ctx context.Context, heroID string) ([]domain.InventoryEntry, error)
	// GetOrCreateInventoryEntry returns the (hero, item) stack, creating an
	// empty one when missing. The boolean reports whether a row was created.
	GetOrCreateInventoryEntry(ctx context.Context, heroID string, itemID int) (*domain.InventoryEntry, bool, error)
	UpdateInventoryEntry(ctx context.Context, entry domain.InventoryEntry) error
	DeleteInventoryEntry(ctx context.Context, heroID string, itemID int) error
}
