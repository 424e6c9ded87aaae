package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/ldanko/idleheroes/internal/domain"
)

// MockHeroService mocks the hero.Service interface
type MockHeroService struct {
	mock.Mock
}

func (m *MockHeroService) CreateHero(ctx context.Context, ownerID, name string) (*domain.Hero, error) {
	args := m.Called(ctx, ownerID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hero), args.Error(1)
}

func (m *MockHeroService) GetHero(ctx context.Context, heroID string) (*domain.Hero, error) {
	args := m.Called(ctx, heroID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hero), args.Error(1)
}

func (m *MockHeroService) ListHeroes(ctx context.Context) ([]domain.Hero, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Hero), args.Error(1)
}

func (m *MockHeroService) UseItem(ctx context.Context, heroID string, itemID int) (string, error) {
	args := m.Called(ctx, heroID, itemID)
	return args.String(0), args.Error(1)
}

func (m *MockHeroService) EquipItem(ctx context.Context, heroID string, itemID int) (string, error) {
	args := m.Called(ctx, heroID, itemID)
	return args.String(0), args.Error(1)
}

func (m *MockHeroService) FindRandomItem(ctx context.Context, hero *domain.Hero) (string, error) {
	args := m.Called(ctx, hero)
	return args.String(0), args.Error(1)
}

func (m *MockHeroService) EquipmentBonus(ctx context.Context, heroID string) (domain.EquipmentBonus, error) {
	args := m.Called(ctx, heroID)
	return args.Get(0).(domain.EquipmentBonus), args.Error(1)
}

func (m *MockHeroService) Smite(ctx context.Context, heroID string) (string, error) {
	args := m.Called(ctx, heroID)
	return args.String(0), args.Error(1)
}

func (m *MockHeroService) DivineSpeech(ctx context.Context, heroID, message string) (string, error) {
	args := m.Called(ctx, heroID, message)
	return args.String(0), args.Error(1)
}

// MockQuestService mocks the quest.Service interface
type MockQuestService struct {
	mock.Mock
}

func (m *MockQuestService) StartRandomQuest(ctx context.Context, hero *domain.Hero) (string, error) {
	args := m.Called(ctx, hero)
	return args.String(0), args.Error(1)
}

func (m *MockQuestService) ActiveQuest(ctx context.Context, heroID string) (*domain.HeroQuest, error) {
	args := m.Called(ctx, heroID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HeroQuest), args.Error(1)
}

func (m *MockQuestService) AdvanceQuest(ctx context.Context, hero *domain.Hero, hq *domain.HeroQuest) (string, error) {
	args := m.Called(ctx, hero, hq)
	return args.String(0), args.Error(1)
}

func (m *MockQuestService) CreateQuest(ctx context.Context, quest *domain.Quest) error {
	args := m.Called(ctx, quest)
	return args.Error(0)
}

func (m *MockQuestService) ApproveQuest(ctx context.Context, questID int, approvedBy string) error {
	args := m.Called(ctx, questID, approvedBy)
	return args.Error(0)
}

// withURLParam attaches a chi route parameter to the request, the way the
// router would before calling the handler.
func withURLParam(t *testing.T, r *http.Request, key, value string) *http.Request {
	t.Helper()
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
