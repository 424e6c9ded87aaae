// Package engine implements the turn-resolution engine: the per-hero state
// machine that advances every hero once per tick, and the independent global
// event tick. Orchestration lives here; quest, inventory and equipment
// operations are delegated to their services.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/ldanko/idleheroes/internal/concurrency"
	"github.com/ldanko/idleheroes/internal/domain"
	"github.com/ldanko/idleheroes/internal/event"
	"github.com/ldanko/idleheroes/internal/hero"
	"github.com/ldanko/idleheroes/internal/logger"
	"github.com/ldanko/idleheroes/internal/metrics"
	"github.com/ldanko/idleheroes/internal/notification"
	"github.com/ldanko/idleheroes/internal/quest"
	"github.com/ldanko/idleheroes/internal/repository"
	"github.com/ldanko/idleheroes/internal/utils"
)

const (
	actionCacheSize = 4096
	actionCacheTTL  = time.Hour
	globalCacheTTL  = 2 * time.Hour
	globalCacheKey  = "global"
)

// Engine orchestrates one unit of simulated progress per hero per tick.
// It holds no per-hero state of its own; everything flows through the
// repositories and services it is constructed with.
type Engine struct {
	heroes    repository.Hero
	heroSvc   hero.Service
	quests    quest.Service
	notifier  notification.Notifier
	publisher *event.ResilientPublisher
	locks     *concurrency.LockManager

	roll func(min, max int) int
	rnd  func() float64

	// Most recent log line per hero, and the last global event, kept for
	// the read surface with a bounded retention window.
	actions *expirable.LRU[string, string]
	global  *expirable.LRU[string, string]
}

// New creates a turn engine
func New(heroes repository.Hero, heroSvc hero.Service, quests quest.Service, notifier notification.Notifier, publisher *event.ResilientPublisher, locks *concurrency.LockManager) *Engine {
	return &Engine{
		heroes:    heroes,
		heroSvc:   heroSvc,
		quests:    quests,
		notifier:  notifier,
		publisher: publisher,
		locks:     locks,
		roll:      utils.RandomInt,
		rnd:       utils.RandomFloat,
		actions:   expirable.NewLRU[string, string](actionCacheSize, nil, actionCacheTTL),
		global:    expirable.NewLRU[string, string](1, nil, globalCacheTTL),
	}
}

// ProcessHeroTurn performs exactly one unit of simulated progress for one
// hero and returns a human-readable log line. Nothing escapes this boundary:
// any internal failure is logged and converted into a generic failure line so
// one hero can never abort a batch. The per-hero lock makes overlapping ticks
// safe: two invocations for the same hero serialize instead of interleaving
// their read-mutate-write sequences.
func (e *Engine) ProcessHeroTurn(ctx context.Context, heroID string) (line string) {
	log := logger.FromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Error("Panic during hero turn", "hero_id", heroID, "panic", r)
			metrics.TurnFailures.Inc()
			line = fmt.Sprintf("turn processing failed for hero %s", heroID)
		}
	}()

	mu := e.locks.GetLock(heroID)
	mu.Lock()
	defer mu.Unlock()

	h, err := e.heroes.GetHeroByID(ctx, heroID)
	if err != nil {
		return e.turnFailed(ctx, heroID, err)
	}

	branch, msg, err := e.resolveTurn(ctx, h)
	if err != nil {
		return e.turnFailed(ctx, h.Name, err)
	}

	// The dead branch is the only one that must not touch the hero.
	if branch != branchDead {
		if err := e.heroes.UpdateHero(ctx, *h); err != nil {
			return e.turnFailed(ctx, h.Name, err)
		}
	}

	metrics.TurnsProcessed.WithLabelValues(branch).Inc()
	e.publisher.PublishWithRetry(ctx, event.NewHeroTurnEvent(h.ID, branch, msg))
	log.Info("Hero turn processed", "hero_id", h.ID, "branch", branch, "log", msg)
	return msg
}

// Turn branches, in decision order. Exactly one applies per invocation.
const (
	branchDead    = "dead"
	branchQuest   = "quest"
	branchRest    = "rest"
	branchFight   = "fight"
	branchExplore = "explore"
)

func (e *Engine) resolveTurn(ctx context.Context, h *domain.Hero) (string, string, error) {
	if h.IsDead() {
		return branchDead, fmt.Sprintf("%s cannot act: %s is dead.", h.Name, h.Name), nil
	}

	hq, err := e.quests.ActiveQuest(ctx, h.ID)
	if err != nil {
		return "", "", err
	}
	if hq != nil {
		msg, err := e.quests.AdvanceQuest(ctx, h, hq)
		return branchQuest, msg, err
	}

	if h.State == domain.StateRest {
		msg, err := e.restTurn(ctx, h)
		return branchRest, msg, err
	}

	if h.State == domain.StateFight {
		msg, err := e.fightRound(ctx, h)
		return branchFight, msg, err
	}

	msg, err := e.exploreTurn(ctx, h)
	return branchExplore, msg, err
}

// restTurn heals the hero by 5-15 plus half the equipped defense bonus and
// sends them back out adventuring.
func (e *Engine) restTurn(ctx context.Context, h *domain.Hero) (string, error) {
	bonus, err := e.heroSvc.EquipmentBonus(ctx, h.ID)
	if err != nil {
		return "", err
	}

	amount := e.roll(5, 15) + bonus.Defense/2
	h.Heal(amount)
	h.State = domain.StateAdventure

	return fmt.Sprintf("%s rests by the campfire and recovers %d health (%d/%d).",
		h.Name, amount, h.Health, h.MaxHealth), nil
}

func (e *Engine) turnFailed(ctx context.Context, who string, err error) string {
	logger.FromContext(ctx).Error("Hero turn failed", "hero", who, "error", err)
	metrics.TurnFailures.Inc()
	return fmt.Sprintf("turn processing failed for hero %s", who)
}
