package quest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ldanko/idleheroes/internal/domain"
	"github.com/ldanko/idleheroes/internal/event"
	"github.com/ldanko/idleheroes/internal/logger"
	"github.com/ldanko/idleheroes/internal/notification"
	"github.com/ldanko/idleheroes/internal/progression"
	"github.com/ldanko/idleheroes/internal/repository"
	"github.com/ldanko/idleheroes/internal/utils"
)

// Service resolves quest assignment, progress and completion for the turn
// engine, and carries the operator surface for the quest catalog.
type Service interface {
	// Engine-facing. These mutate the hero in memory; the turn engine owns
	// persisting the hero at the end of the turn.
	StartRandomQuest(ctx context.Context, hero *domain.Hero) (string, error)
	ActiveQuest(ctx context.Context, heroID string) (*domain.HeroQuest, error)
	AdvanceQuest(ctx context.Context, hero *domain.Hero, hq *domain.HeroQuest) (string, error)

	// Operator-facing.
	CreateQuest(ctx context.Context, quest *domain.Quest) error
	ApproveQuest(ctx context.Context, questID int, approvedBy string) error
}

type service struct {
	repo      repository.Quest
	guilds    repository.Guild
	notifier  notification.Notifier
	publisher *event.ResilientPublisher
	roll      func(min, max int) int
	rnd       func() float64
	now       func() time.Time
}

// NewService creates a new quest service
func NewService(repo repository.Quest, guilds repository.Guild, notifier notification.Notifier, publisher *event.ResilientPublisher) Service {
	return &service{
		repo:      repo,
		guilds:    guilds,
		notifier:  notifier,
		publisher: publisher,
		roll:      utils.RandomInt,
		rnd:       utils.RandomFloat,
		now:       time.Now,
	}
}

// StartRandomQuest assigns a uniformly random eligible quest to the hero.
// No eligible quest is a normal outcome: empty message, no error.
func (s *service) StartRandomQuest(ctx context.Context, hero *domain.Hero) (string, error) {
	log := logger.FromContext(ctx)

	eligible, err := s.repo.ListEligibleQuests(ctx, hero.ID, hero.Level)
	if err != nil {
		return "", err
	}
	if len(eligible) == 0 {
		return "", nil
	}

	idx := int(s.rnd() * float64(len(eligible)))
	if idx >= len(eligible) {
		idx = len(eligible) - 1
	}
	q := eligible[idx]

	hq := &domain.HeroQuest{
		HeroID:    hero.ID,
		QuestID:   q.ID,
		Status:    domain.QuestInProgress,
		Progress:  0,
		StartedAt: s.now(),
	}
	if err := s.repo.CreateHeroQuest(ctx, hq); err != nil {
		// The pair already exists; eligibility raced with another start.
		if errors.Is(err, domain.ErrQuestAssigned) {
			log.Warn("Quest already assigned", "hero_id", hero.ID, "quest_id", q.ID)
			return "", err
		}
		return "", err
	}

	log.Info("Quest started", "hero_id", hero.ID, "quest_id", q.ID, "title", q.Title)
	s.publisher.PublishWithRetry(ctx, event.NewQuestEvent(event.QuestStarted, hero.ID, q.ID, q.Title))

	return fmt.Sprintf("%s takes on the quest %q.", hero.Name, q.Title), nil
}

// ActiveQuest returns the hero's in-progress quest, earliest started first,
// or nil when there is none.
func (s *service) ActiveQuest(ctx context.Context, heroID string) (*domain.HeroQuest, error) {
	return s.repo.GetActiveHeroQuest(ctx, heroID)
}

// AdvanceQuest performs one tick of quest work: progress rises by 1-3 and
// the quest completes at the fixed threshold.
func (s *service) AdvanceQuest(ctx context.Context, hero *domain.Hero, hq *domain.HeroQuest) (string, error) {
	hq.Progress += s.roll(1, 3)

	if hq.Progress < domain.QuestProgressTarget {
		if err := s.repo.UpdateHeroQuest(ctx, *hq); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s works on %q, progress %d/%d.",
			hero.Name, hq.Title, hq.Progress, domain.QuestProgressTarget), nil
	}

	return s.completeQuest(ctx, hero, hq)
}

// completeQuest grants rewards, updates stats and sends notifications.
func (s *service) completeQuest(ctx context.Context, hero *domain.Hero, hq *domain.HeroQuest) (string, error) {
	log := logger.FromContext(ctx)

	// The quest row flips to completed here; the engine persists the hero at
	// the end of the turn. A hero write that fails after this point loses the
	// rewards but never duplicates them: the pair is consumed either way, and
	// the next tick starts a fresh quest instead of replaying this one.
	completedAt := s.now()
	hq.Status = domain.QuestCompleted
	hq.CompletedAt = &completedAt
	if err := s.repo.UpdateHeroQuest(ctx, *hq); err != nil {
		return "", err
	}

	hero.Gold += hq.RewardGold
	hero.QuestsCompleted++
	hero.State = domain.StateAdventure
	res := progression.GrantExperience(hero, hq.RewardExperience, s.roll)

	log.Info("Quest completed",
		"hero_id", hero.ID, "quest_id", hq.QuestID,
		"reward_gold", hq.RewardGold, "reward_experience", hq.RewardExperience)

	s.notifier.Notify(ctx, hero.OwnerID, "Quest completed",
		fmt.Sprintf("%s completed %q and earned %d gold and %d experience.",
			hero.Name, hq.Title, hq.RewardGold, hq.RewardExperience),
		domain.SeveritySuccess, "")
	if res.LeveledUp {
		s.notifier.Notify(ctx, hero.OwnerID, "Level up!", res.Message, domain.SeveritySuccess, "")
		s.publisher.PublishWithRetry(ctx, event.NewHeroLifecycleEvent(event.HeroLeveledUp, hero.ID, hero.Name, hero.Level))
	}
	s.publisher.PublishWithRetry(ctx, event.NewQuestEvent(event.QuestCompleted, hero.ID, hq.QuestID, hq.Title))

	s.contributeToGuild(ctx, hero, hq.RewardExperience)

	msg := fmt.Sprintf("%s completes the quest %q! +%d gold, +%d experience.",
		hero.Name, hq.Title, hq.RewardGold, hq.RewardExperience)
	if res.LeveledUp {
		msg += " " + res.Message
	}
	return msg, nil
}

// contributeToGuild credits the quest's experience reward to the hero's
// guild, when there is one. Failures are logged and swallowed: guild
// bookkeeping must never break turn processing.
func (s *service) contributeToGuild(ctx context.Context, hero *domain.Hero, experience int) {
	log := logger.FromContext(ctx)

	membership, err := s.guilds.GetMembershipByHero(ctx, hero.ID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotGuildMember) {
			log.Warn("Failed to look up guild membership", "hero_id", hero.ID, "error", err)
		}
		return
	}

	if err := s.guilds.AddContribution(ctx, membership.GuildID, hero.ID, experience, 0); err != nil {
		log.Warn("Failed to record guild contribution",
			"hero_id", hero.ID, "guild_id", membership.GuildID, "error", err)
	}
}

// CreateQuest inserts a quest definition. User-generated quests start
// unapproved and stay out of automatic assignment until approved.
func (s *service) CreateQuest(ctx context.Context, quest *domain.Quest) error {
	if quest.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if quest.RequiredLevel < 1 {
		quest.RequiredLevel = 1
	}
	return s.repo.CreateQuest(ctx, quest)
}

// ApproveQuest marks a quest eligible for automatic assignment
func (s *service) ApproveQuest(ctx context.Context, questID int, approvedBy string) error {
	return s.repo.ApproveQuest(ctx, questID, approvedBy)
}
