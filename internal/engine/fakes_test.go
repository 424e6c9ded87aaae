package engine

import (
	"context"
	"sync"

	"github.com/ldanko/idleheroes/internal/domain"
	"github.com/ldanko/idleheroes/internal/event"
)

// In-package fakes for the engine's collaborators. The hero repository fake
// is stateful so tests can observe what a turn persisted.

type fakeHeroRepo struct {
	mu      sync.Mutex
	heroes  map[string]*domain.Hero
	updates int
}

func newFakeHeroRepo(heroes ...*domain.Hero) *fakeHeroRepo {
	r := &fakeHeroRepo{heroes: make(map[string]*domain.Hero)}
	for _, h := range heroes {
		copied := *h
		r.heroes[h.ID] = &copied
	}
	return r
}

func (r *fakeHeroRepo) CreateHero(_ context.Context, h *domain.Hero) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *h
	r.heroes[h.ID] = &copied
	return nil
}

func (r *fakeHeroRepo) GetHeroByID(_ context.Context, heroID string) (*domain.Hero, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.heroes[heroID]
	if !ok {
		return nil, domain.ErrHeroNotFound
	}
	copied := *h
	return &copied, nil
}

func (r *fakeHeroRepo) GetHeroByOwner(_ context.Context, ownerID string) (*domain.Hero, error) {
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

func (r *fakeHeroRepo) ListHeroes(_ context.Context) ([]domain.Hero, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Hero, 0, len(r.heroes))
	for _, h := range r.heroes {
		out = append(out, *h)
	}
	return out, nil
}

func (r *fakeHeroRepo) UpdateHero(_ context.Context, h domain.Hero) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := h
	r.heroes[h.ID] = &copied
	r.updates++
	return nil
}

func (r *fakeHeroRepo) GetEquipment(_ context.Context, heroID string) (*domain.Equipment, error) {
	return &domain.Equipment{HeroID: heroID}, nil
}

func (r *fakeHeroRepo) CreateEquipment(context.Context, string) error { return nil }

func (r *fakeHeroRepo) UpdateEquipment(context.Context, domain.Equipment) error { return nil }

func (r *fakeHeroRepo) GetInventory(context.Context, string) ([]domain.InventoryEntry, error) {
	return nil, nil
}

func (r *fakeHeroRepo) GetOrCreateInventoryEntry(_ context.Context, heroID string, itemID int) (*domain.InventoryEntry, bool, error) {
	return &domain.InventoryEntry{HeroID: heroID, ItemID: itemID}, true, nil
}

func (r *fakeHeroRepo) UpdateInventoryEntry(context.Context, domain.InventoryEntry) error {
	return nil
}

func (r *fakeHeroRepo) DeleteInventoryEntry(context.Context, string, int) error { return nil }

func (r *fakeHeroRepo) stored(heroID string) *domain.Hero {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.heroes[heroID]
}

// fakeHeroService stubs the pieces of the hero service the engine touches.
type fakeHeroService struct {
	bonus    domain.EquipmentBonus
	foundMsg string
}

func (f *fakeHeroService) CreateHero(context.Context, string, string) (*domain.Hero, error) {
	return nil, nil
}
func (f *fakeHeroService) GetHero(context.Context, string) (*domain.Hero, error) { return nil, nil }
func (f *fakeHeroService) ListHeroes(context.Context) ([]domain.Hero, error)    { return nil, nil }
func (f *fakeHeroService) UseItem(context.Context, string, int) (string, error) { return "", nil }
func (f *fakeHeroService) EquipItem(context.Context, string, int) (string, error) {
	return "", nil
}
func (f *fakeHeroService) FindRandomItem(context.Context, *domain.Hero) (string, error) {
	return f.foundMsg, nil
}
func (f *fakeHeroService) EquipmentBonus(context.Context, string) (domain.EquipmentBonus, error) {
	return f.bonus, nil
}
func (f *fakeHeroService) Smite(context.Context, string) (string, error) { return "", nil }
func (f *fakeHeroService) DivineSpeech(context.Context, string, string) (string, error) {
	return "", nil
}

// fakeQuestService controls the quest branch of the decision tree.
type fakeQuestService struct {
	active     *domain.HeroQuest
	advanceMsg string
	startMsg   string
	advanced   int
}

func (f *fakeQuestService) StartRandomQuest(context.Context, *domain.Hero) (string, error) {
	return f.startMsg, nil
}

func (f *fakeQuestService) ActiveQuest(context.Context, string) (*domain.HeroQuest, error) {
	return f.active, nil
}

func (f *fakeQuestService) AdvanceQuest(_ context.Context, h *domain.Hero, _ *domain.HeroQuest) (string, error) {
	f.advanced++
	return f.advanceMsg, nil
}

func (f *fakeQuestService) CreateQuest(context.Context, *domain.Quest) error { return nil }
func (f *fakeQuestService) ApproveQuest(context.Context, int, string) error  { return nil }

// fakeNotifier records what was sent.
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

// rollSeq returns the given values in order, then repeats the last one.
func rollSeq(vals ...int) func(min, max int) int {
	i := 0
	return func(min, max int) int {
		v := vals[i]
		if i < len(vals)-1 {
			i++
		}
		return v
	}
}

func rndSeq(vals ...float64) func() float64 {
	i := 0
	return func() float64 {
		v := vals[i]
		if i < len(vals)-1 {
			i++
		}
		return v
	}
}
