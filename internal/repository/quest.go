package repository

import (
	"context"

	"github.com/ldanko/idleheroes/internal/domain"
)

// Quest defines the interface for quest catalog and hero-quest persistence.
type Quest interface {
	CreateQuest(ctx context.Context, quest *domain.Quest) error
	GetQuestByID(ctx context.Context, questID int) (*domain.Quest, error)
	ApproveQuest(ctx context.Context, questID int, approvedBy string) error

	// ListEligibleQuests returns approved quests whose required level the
	// hero meets and for which no hero_quests row exists, in any status.
	ListEligibleQuests(ctx context.Context, heroID string, level int) ([]domain.Quest, error)

	// GetActiveHeroQuest returns the hero's in-progress quest, earliest
	// started first, or nil when the hero has none.
	GetActiveHeroQuest(ctx context.Context, heroID string) (*domain.HeroQuest, error)
	HasHeroQuest(ctx context.Context, heroID string, questID int) (bool, error)
	CreateHeroQuest(ctx context.Context, hq *domain.HeroQuest) error
	UpdateHeroQuest(ctx context.Context, hq domain.HeroQuest) error
}
