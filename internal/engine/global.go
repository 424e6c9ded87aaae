package engine

import (
	"context"
	"time"

	"github.com/ldanko/idleheroes/internal/event"
	"github.com/ldanko/idleheroes/internal/logger"
	"github.com/ldanko/idleheroes/internal/metrics"
)

var globalEvents = []string{
	"A gentle rain falls across the realm. The fields will be green this year.",
	"Word spreads of a contest for the realm's finest quest!",
	"The moons align. Monsters are unusually restless tonight.",
	"A travelling merchant caravan rolls into Town, wares glittering.",
	"Bards sing of heroes old and new in every tavern.",
}

// RunGlobalEvent draws one announcement from the global pool, broadcasts it
// and retains it for the read surface. It runs on its own schedule,
// independent of hero ticks.
func (e *Engine) RunGlobalEvent(ctx context.Context) string {
	msg := globalEvents[int(e.rnd()*float64(len(globalEvents)))]
	e.global.Add(globalCacheKey, msg)

	metrics.GlobalEvents.Inc()
	e.publisher.PublishWithRetry(ctx, event.NewGlobalEvent(msg))
	logger.FromContext(ctx).Info("Global event fired", "message", msg)
	return msg
}

// ProcessAllHeroes runs one turn for every hero and returns how many turns
// were attempted. A failing hero is reported through its own log line and
// never stops the sweep.
func (e *Engine) ProcessAllHeroes(ctx context.Context) int {
	start := time.Now()
	log := logger.FromContext(ctx)

	heroes, err := e.heroes.ListHeroes(ctx)
	if err != nil {
		log.Error("Failed to list heroes for tick", "error", err)
		return 0
	}

	for _, h := range heroes {
		line := e.ProcessHeroTurn(ctx, h.ID)
		e.actions.Add(h.ID, line)
	}

	metrics.TickDuration.Observe(time.Since(start).Seconds())
	log.Info("Tick complete", "heroes", len(heroes), "duration", time.Since(start))
	return len(heroes)
}

// LastAction returns the most recent log line recorded for a hero, if one is
// still within the retention window.
func (e *Engine) LastAction(heroID string) (string, bool) {
	return e.actions.Get(heroID)
}

// LastGlobalEvent returns the most recent global announcement, if any.
func (e *Engine) LastGlobalEvent() (string, bool) {
	return e.global.Get(globalCacheKey)
}
