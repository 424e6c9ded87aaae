package hero

import (
	"context"
	"errors"
	"fmt"

	"github.com/ldanko/idleheroes/internal/domain"
	"github.com/ldanko/idleheroes/internal/event"
	"github.com/ldanko/idleheroes/internal/logger"
	"github.com/ldanko/idleheroes/internal/notification"
	"github.com/ldanko/idleheroes/internal/progression"
	"github.com/ldanko/idleheroes/internal/repository"
	"github.com/ldanko/idleheroes/internal/utils"
)

// Service defines the interface for hero operations
type Service interface {
	CreateHero(ctx context.Context, ownerID, name string) (*domain.Hero, error)
	GetHero(ctx context.Context, heroID string) (*domain.Hero, error)
	ListHeroes(ctx context.Context) ([]domain.Hero, error)

	// Inventory and equipment
	UseItem(ctx context.Context, heroID string, itemID int) (string, error)
	EquipItem(ctx context.Context, heroID string, itemID int) (string, error)
	FindRandomItem(ctx context.Context, hero *domain.Hero) (string, error)
	EquipmentBonus(ctx context.Context, heroID string) (domain.EquipmentBonus, error)

	// Divine acts performed by the hero's owner
	Smite(ctx context.Context, heroID string) (string, error)
	DivineSpeech(ctx context.Context, heroID, message string) (string, error)
}

// service implements the Service interface
type service struct {
	repo      repository.Hero
	items     repository.Item
	notifier  notification.Notifier
	publisher *event.ResilientPublisher
	roll      func(min, max int) int
	rnd       func() float64 // For uniform catalog draws
}

// NewService creates a new hero service
func NewService(repo repository.Hero, items repository.Item, notifier notification.Notifier, publisher *event.ResilientPublisher) Service {
	return &service{
		repo:      repo,
		items:     items,
		notifier:  notifier,
		publisher: publisher,
		roll:      utils.RandomInt,
		rnd:       utils.RandomFloat,
	}
}

// CreateHero creates the hero row and its equipment row together, replacing
// the implicit on-registration hooks of earlier designs with one explicit
// factory. One hero per owner account.
func (s *service) CreateHero(ctx context.Context, ownerID, name string) (*domain.Hero, error) {
	log := logger.FromContext(ctx)

	if ownerID == "" || name == "" {
		return nil, fmt.Errorf("%w: owner and name are required", domain.ErrInvalidInput)
	}

	existing, err := s.repo.GetHeroByOwner(ctx, ownerID)
	if err != nil && !errors.Is(err, domain.ErrHeroNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrOwnerHasHero
	}

	h := domain.NewHero(ownerID, name)
	if err := s.repo.CreateHero(ctx, h); err != nil {
		return nil, err
	}
	if err := s.repo.CreateEquipment(ctx, h.ID); err != nil {
		return nil, err
	}

	log.Info("Hero created", "hero_id", h.ID, "name", h.Name, "owner_id", ownerID)
	s.notifier.Notify(ctx, ownerID, "A hero is born",
		fmt.Sprintf("%s sets out from %s on a life of adventure.", h.Name, h.Location),
		domain.SeverityInfo, "")

	return h, nil
}

// GetHero fetches one hero
func (s *service) GetHero(ctx context.Context, heroID string) (*domain.Hero, error) {
	return s.repo.GetHeroByID(ctx, heroID)
}

// ListHeroes returns all heroes
func (s *service) ListHeroes(ctx context.Context) ([]domain.Hero, error) {
	return s.repo.ListHeroes(ctx)
}

// Smite strikes the hero with lightning: 10 damage, floored at zero. A hero
// brought to zero health dies like any other death.
func (s *service) Smite(ctx context.Context, heroID string) (string, error) {
	log := logger.FromContext(ctx)

	h, err := s.repo.GetHeroByID(ctx, heroID)
	if err != nil {
		return "", err
	}
	if h.IsDead() {
		return fmt.Sprintf("%s is already dead; the lightning finds nothing to punish.", h.Name), nil
	}

	h.Hurt(10)
	msg := fmt.Sprintf("Lightning strikes %s! Health: %d/%d", h.Name, h.Health, h.MaxHealth)
	if h.Health == 0 {
		h.State = domain.StateDead
		h.Deaths++
		msg = fmt.Sprintf("Lightning strikes %s down. The gods are not kind.", h.Name)
		s.notifier.Notify(ctx, h.OwnerID, "Hero struck down",
			fmt.Sprintf("%s was killed by a bolt from the heavens.", h.Name),
			domain.SeverityDanger, "")
		s.publisher.PublishWithRetry(ctx, event.NewHeroLifecycleEvent(event.HeroDied, h.ID, h.Name, h.Level))
	}

	if err := s.repo.UpdateHero(ctx, *h); err != nil {
		return "", err
	}

	log.Info("Hero smitten", "hero_id", h.ID, "health", h.Health)
	return msg, nil
}

// DivineSpeech whispers to the hero: 5 experience (through the leveling
// resolver) and 5 health.
func (s *service) DivineSpeech(ctx context.Context, heroID, message string) (string, error) {
	log := logger.FromContext(ctx)

	h, err := s.repo.GetHeroByID(ctx, heroID)
	if err != nil {
		return "", err
	}
	if h.IsDead() {
		return fmt.Sprintf("%s cannot hear you anymore.", h.Name), nil
	}

	res := progression.GrantExperience(h, 5, s.roll)
	h.Heal(5)

	msg := fmt.Sprintf("%s hears: %q. Gained 5 experience and 5 health.", h.Name, message)
	if res.LeveledUp {
		msg += " " + res.Message
		s.notifier.Notify(ctx, h.OwnerID, "Level up!", res.Message, domain.SeveritySuccess, "")
		s.publisher.PublishWithRetry(ctx, event.NewHeroLifecycleEvent(event.HeroLeveledUp, h.ID, h.Name, h.Level))
	}

	if err := s.repo.UpdateHero(ctx, *h); err != nil {
		return "", err
	}

	log.Info("Divine speech delivered", "hero_id", h.ID, "leveled_up", res.LeveledUp)
	return msg, nil
}
