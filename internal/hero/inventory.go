package hero

import (
	"context"
	"fmt"

	"github.com/ldanko/idleheroes/internal/domain"
	"github.com/ldanko/idleheroes/internal/logger"
)

// UseItem consumes one unit of a healing item from the hero's inventory.
// Non-healing types are not consumable through this path; using at full
// health is a no-op. Both cases come back as a message, not an error, so
// the caller can show them to the player.
func (s *service) UseItem(ctx context.Context, heroID string, itemID int) (string, error) {
	log := logger.FromContext(ctx)

	h, err := s.repo.GetHeroByID(ctx, heroID)
	if err != nil {
		return "", err
	}

	item, err := s.items.GetItemByID(ctx, itemID)
	if err != nil {
		return "", err
	}

	entry, created, err := s.repo.GetOrCreateInventoryEntry(ctx, heroID, itemID)
	if err != nil {
		return "", err
	}
	if created || entry.Quantity <= 0 {
		return "", fmt.Errorf("%w: %s", domain.ErrNotInInventory, item.Name)
	}

	switch item.Type {
	case domain.ItemTypeHealing:
		// handled below
	case domain.ItemTypeWeapon, domain.ItemTypeArmor,
		domain.ItemTypeArtifact, domain.ItemTypeQuest, domain.ItemTypeJunk:
		return fmt.Sprintf("%s must be equipped, not used.", item.Name), nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownItemType, item.Type)
	}

	if h.Health >= h.MaxHealth {
		return fmt.Sprintf("%s is already at full health.", h.Name), nil
	}

	h.Heal(item.HealingAmount)
	if err := s.repo.UpdateHero(ctx, *h); err != nil {
		return "", err
	}

	entry.Quantity--
	if entry.Quantity == 0 {
		if err := s.repo.DeleteInventoryEntry(ctx, heroID, itemID); err != nil {
			return "", err
		}
	} else {
		if err := s.repo.UpdateInventoryEntry(ctx, *entry); err != nil {
			return "", err
		}
	}

	log.Info("Item used", "hero_id", heroID, "item_id", itemID, "health", h.Health)
	return fmt.Sprintf("%s uses %s and recovers %d health (%d/%d).",
		h.Name, item.Name, item.HealingAmount, h.Health, h.MaxHealth), nil
}

// FindRandomItem draws a uniformly random catalog item and adds it to the
// hero's inventory. An empty catalog is a normal outcome: no message, no
// error.
func (s *service) FindRandomItem(ctx context.Context, hero *domain.Hero) (string, error) {
	log := logger.FromContext(ctx)

	catalog, err := s.items.ListItems(ctx)
	if err != nil {
		return "", err
	}
	if len(catalog) == 0 {
		return "", nil
	}

	idx := int(s.rnd() * float64(len(catalog)))
	if idx >= len(catalog) {
		idx = len(catalog) - 1
	}
	item := catalog[idx]

	entry, _, err := s.repo.GetOrCreateInventoryEntry(ctx, hero.ID, item.ID)
	if err != nil {
		return "", err
	}
	entry.Quantity++
	if err := s.repo.UpdateInventoryEntry(ctx, *entry); err != nil {
		return "", err
	}

	log.Info("Item found", "hero_id", hero.ID, "item_id", item.ID, "quantity", entry.Quantity)
	return fmt.Sprintf("%s finds %s! (now carrying %d)", hero.Name, item.Name, entry.Quantity), nil
}
