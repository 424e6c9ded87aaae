package metrics

import (
	"context"

	"github.com/ldanko/idleheroes/internal/event"
)

// EventMetricsCollector subscribes to engine events and records game metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to the event types that carry game metrics
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, t := range []event.Type{
		event.HeroLeveledUp,
		event.HeroDied,
		event.MonsterKilled,
		event.QuestCompleted,
	} {
		bus.Subscribe(t, e.HandleEvent)
	}
}

// HandleEvent updates counters based on event type
func (e *EventMetricsCollector) HandleEvent(_ context.Context, evt event.Event) error {
	switch evt.Type {
	case event.HeroLeveledUp:
		LevelUps.Inc()
	case event.HeroDied:
		HeroDeaths.Inc()
	case event.MonsterKilled:
		MonstersKilled.Inc()
	case event.QuestCompleted:
		QuestsCompleted.Inc()
	}
	return nil
}
