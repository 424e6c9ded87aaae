package hero

import (
	"context"
	"fmt"

	"github.com/ldanko/idleheroes/internal/domain"
	"github.com/ldanko/idleheroes/internal/logger"
)

// EquipItem places an item into the slot matching its type. An occupied slot
// is silently replaced; the displaced item is only mentioned in the returned
// message, it does not go back into the inventory. Items that are neither
// weapons nor armor are rejected with a message and no state change.
func (s *service) EquipItem(ctx context.Context, heroID string, itemID int) (string, error) {
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

	eq, err := s.repo.GetEquipment(ctx, heroID)
	if err != nil {
		return "", err
	}

	var displaced *int
	switch item.Type {
	case domain.ItemTypeWeapon:
		displaced = eq.WeaponID
		eq.WeaponID = &item.ID
	case domain.ItemTypeArmor:
		displaced = eq.ArmorID
		eq.ArmorID = &item.ID
	default:
		return fmt.Sprintf("%s is a %s and cannot be equipped.", item.Name, item.Type), nil
	}

	if err := s.repo.UpdateEquipment(ctx, *eq); err != nil {
		return "", err
	}

	msg := fmt.Sprintf("%s equips %s.", h.Name, item.Name)
	if displaced != nil && *displaced != item.ID {
		if old, err := s.items.GetItemByID(ctx, *displaced); err == nil {
			msg = fmt.Sprintf("%s equips %s, setting aside %s.", h.Name, item.Name, old.Name)
		}
	}

	log.Info("Item equipped", "hero_id", heroID, "item_id", itemID, "slot", item.Type)
	return msg, nil
}

// EquipmentBonus computes the aggregate offensive and defensive modifiers
// from the hero's equipped items. Empty slots contribute zero.
func (s *service) EquipmentBonus(ctx context.Context, heroID string) (domain.EquipmentBonus, error) {
	var bonus domain.EquipmentBonus

	eq, err := s.repo.GetEquipment(ctx, heroID)
	if err != nil {
		return bonus, err
	}

	if eq.WeaponID != nil {
		weapon, err := s.items.GetItemByID(ctx, *eq.WeaponID)
		if err != nil {
			return bonus, err
		}
		bonus.Power = weapon.Power
	}
	if eq.ArmorID != nil {
		armor, err := s.items.GetItemByID(ctx, *eq.ArmorID)
		if err != nil {
			return bonus, err
		}
		bonus.Defense = armor.Defense
	}
	return bonus, nil
}
