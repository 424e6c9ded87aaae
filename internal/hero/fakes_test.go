package hero

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/ldanko/idleheroes/internal/domain"
	"github.com/ldanko/idleheroes/internal/event"
)

// Stateful in-package fakes backing the service tests.

type fakeRepository struct {
	mu        sync.Mutex
	heroes    map[string]*domain.Hero
	equipment map[string]*domain.Equipment
	inventory map[string]map[int]int // heroID -> itemID -> quantity
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		heroes:    make(map[string]*domain.Hero),
		equipment: make(map[string]*domain.Equipment),
		inventory: make(map[string]map[int]int),
	}
}

func (r *fakeRepository) CreateHero(_ context.Context, h *domain.Hero) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	for _, existing := range r.heroes {
		if existing.Name == h.Name {
			return domain.ErrHeroNameTaken
		}
	}
	copied := *h
	r.heroes[h.ID] = &copied
	return nil
}

func (r *fakeRepository) GetHeroByID(_ context.Context, heroID string) (*domain.Hero, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.heroes[heroID]
	if !ok {
		return nil, domain.ErrHeroNotFound
	}
	copied := *h
	return &copied, nil
}

func (r *fakeRepository) GetHeroByOwner(_ context.Context, ownerID string) (*domain.Hero, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, h := range r.heroes {
		if h.OwnerID == ownerID {
			copied := *h
			return &copied, nil
		}
	}
	return nil, domain.ErrHeroNotFound
}

func (r *fakeRepository) ListHeroes(_ context.Context) ([]domain.Hero, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Hero, 0, len(r.heroes))
	for _, h := range r.heroes {
		out = append(out, *h)
	}
	return out, nil
}

func (r *fakeRepository) UpdateHero(_ context.Context, h domain.Hero) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.heroes[h.ID]; !ok {
		return domain.ErrHeroNotFound
	}
	copied := h
	r.heroes[h.ID] = &copied
	return nil
}

func (r *fakeRepository) GetEquipment(_ context.Context, heroID string) (*domain.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	eq, ok := r.equipment[heroID]
	if !ok {
		eq = &domain.Equipment{HeroID: heroID}
		r.equipment[heroID] = eq
	}
	copied := *eq
	return &copied, nil
}

func (r *fakeRepository) CreateEquipment(_ context.Context, heroID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.equipment[heroID] = &domain.Equipment{HeroID: heroID}
	return nil
}

func (r *fakeRepository) UpdateEquipment(_ context.Context, eq domain.Equipment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := eq
	r.equipment[eq.HeroID] = &copied
	return nil
}

func (r *fakeRepository) GetInventory(_ context.Context, heroID string) ([]domain.InventoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.InventoryEntry
	for itemID, qty := range r.inventory[heroID] {
		out = append(out, domain.InventoryEntry{HeroID: heroID, ItemID: itemID, Quantity: qty})
	}
	return out, nil
}

func (r *fakeRepository) GetOrCreateInventoryEntry(_ context.Context, heroID string, itemID int) (*domain.InventoryEntry, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	qty, ok := r.inventory[heroID][itemID]
	if !ok {
		return &domain.InventoryEntry{HeroID: heroID, ItemID: itemID}, true, nil
	}
	return &domain.InventoryEntry{HeroID: heroID, ItemID: itemID, Quantity: qty}, false, nil
}

func (r *fakeRepository) UpdateInventoryEntry(_ context.Context, entry domain.InventoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.inventory[entry.HeroID] == nil {
		r.inventory[entry.HeroID] = make(map[int]int)
	}
	r.inventory[entry.HeroID][entry.ItemID] = entry.Quantity
	return nil
}

func (r *fakeRepository) DeleteInventoryEntry(_ context.Context, heroID string, itemID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.inventory[heroID], itemID)
	return nil
}

func (r *fakeRepository) setQuantity(heroID string, itemID, qty int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.inventory[heroID] == nil {
		r.inventory[heroID] = make(map[int]int)
	}
	r.inventory[heroID][itemID] = qty
}

func (r *fakeRepository) quantity(heroID string, itemID int) (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	qty, ok := r.inventory[heroID][itemID]
	return qty, ok
}

type fakeItemRepository struct {
	items map[int]*domain.Item
}

func newFakeItemRepository(items ...*domain.Item) *fakeItemRepository {
	r := &fakeItemRepository{items: make(map[int]*domain.Item)}
	for _, item := range items {
		r.items[item.ID] = item
	}
	return r
}

func (r *fakeItemRepository) GetItemByID(_ context.Context, itemID int) (*domain.Item, error) {
	item, ok := r.items[itemID]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrItemNotFound, itemID)
	}
	copied := *item
	return &copied, nil
}

func (r *fakeItemRepository) ListItems(_ context.Context) ([]domain.Item, error) {
	out := make([]domain.Item, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, *item)
	}
	return out, nil
}

func (r *fakeItemRepository) CreateItem(_ context.Context, item *domain.Item) error {
	r.items[item.ID] = item
	return nil
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []string
}

func (f *fakeNotifier) Notify(_ context.Context, _ string, title, _ string, _ domain.Severity, _ string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, title)
}

func newTestPublisher() *event.ResilientPublisher {
	return event.NewResilientPublisher(event.NewMemoryBus(), event.ResilientConfig{MaxRetries: 1})
}
