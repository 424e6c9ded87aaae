package quest

import (
	"context"
	"sync"

	"github.com/ldanko/idleheroes/internal/domain"
	"github.com/ldanko/idleheroes/internal/event"
)

type pairKey struct {
	heroID  string
	questID int
}

type fakeQuestRepository struct {
	mu       sync.Mutex
	nextID   int
	quests   map[int]*domain.Quest
	attempts map[pairKey]*domain.HeroQuest
}

func newFakeQuestRepository() *fakeQuestRepository {
	return &fakeQuestRepository{
		nextID:   1,
		quests:   make(map[int]*domain.Quest),
		attempts: make(map[pairKey]*domain.HeroQuest),
	}
}

func (r *fakeQuestRepository) CreateQuest(_ context.Context, q *domain.Quest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	q.ID = r.nextID
	r.nextID++
	copied := *q
	r.quests[q.ID] = &copied
	return nil
}

func (r *fakeQuestRepository) GetQuestByID(_ context.Context, questID int) (*domain.Quest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.quests[questID]
	if !ok {
		return nil, domain.ErrQuestNotFound
	}
	copied := *q
	return &copied, nil
}

func (r *fakeQuestRepository) ApproveQuest(_ context.Context, questID int, approvedBy string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.quests[questID]
	if !ok {
		return domain.ErrQuestNotFound
	}
	q.IsApproved = true
	q.ApprovedBy = approvedBy
	return nil
}

func (r *fakeQuestRepository) ListEligibleQuests(_ context.Context, heroID string, level int) ([]domain.Quest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Quest
	for _, q := range r.quests {
		if !q.IsApproved || q.RequiredLevel > level {
			continue
		}
		if _, attempted := r.attempts[pairKey{heroID, q.ID}]; attempted {
			continue
		}
		out = append(out, *q)
	}
	return out, nil
}

func (r *fakeQuestRepository) GetActiveHeroQuest(_ context.Context, heroID string) (*domain.HeroQuest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var active *domain.HeroQuest
	for key, hq := range r.attempts {
		if key.heroID != heroID || hq.Status != domain.QuestInProgress {
			continue
		}
		if active == nil || hq.StartedAt.Before(active.StartedAt) {
			active = hq
		}
	}
	if active == nil {
		return nil, nil
	}
	copied := *active
	if q, ok := r.quests[active.QuestID]; ok {
		copied.Title = q.Title
		copied.RewardExperience = q.RewardExperience
		copied.RewardGold = q.RewardGold
	}
	return &copied, nil
}

func (r *fakeQuestRepository) HasHeroQuest(_ context.Context, heroID string, questID int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.attempts[pairKey{heroID, questID}]
	return ok, nil
}

func (r *fakeQuestRepository) CreateHeroQuest(_ context.Context, hq *domain.HeroQuest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := pairKey{hq.HeroID, hq.QuestID}
	if _, exists := r.attempts[key]; exists {
		return domain.ErrQuestAssigned
	}
	copied := *hq
	r.attempts[key] = &copied
	return nil
}

func (r *fakeQuestRepository) UpdateHeroQuest(_ context.Context, hq domain.HeroQuest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := hq
	r.attempts[pairKey{hq.HeroID, hq.QuestID}] = &copied
	return nil
}

func (r *fakeQuestRepository) attempt(heroID string, questID int) *domain.HeroQuest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.attempts[pairKey{heroID, questID}]
}

type fakeGuildRepository struct {
	mu            sync.Mutex
	memberships   map[string]*domain.GuildMembership
	contributions map[int]int // guildID -> experience credited
}

func newFakeGuildRepository() *fakeGuildRepository {
	return &fakeGuildRepository{
		memberships:   make(map[string]*domain.GuildMembership),
		contributions: make(map[int]int),
	}
}

func (r *fakeGuildRepository) GetMembershipByHero(_ context.Context, heroID string) (*domain.GuildMembership, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.memberships[heroID]
	if !ok {
		return nil, domain.ErrNotGuildMember
	}
	copied := *m
	return &copied, nil
}

func (r *fakeGuildRepository) AddContribution(_ context.Context, guildID int, heroID string, experience, gold int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contributions[guildID] += experience
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
