package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Event types produced by the turn engine and its services.
const (
	EventSchemaVersion = "1.0"

	HeroTurnProcessed Type = "hero.turn_processed"
	HeroLeveledUp     Type = "hero.leveled_up"
	HeroDied          Type = "hero.died"
	MonsterKilled     Type = "hero.monster_killed"
	QuestStarted      Type = "quest.started"
	QuestCompleted    Type = "quest.completed"
	GlobalEventFired  Type = "world.global_event"
)

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"`
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Typed event payloads

// HeroTurnPayloadV1 describes one processed turn
type HeroTurnPayloadV1 struct {
	HeroID    string `json:"hero_id"`
	Branch    string `json:"branch"`
	Log       string `json:"log"`
	Timestamp int64  `json:"timestamp"`
}

// HeroLifecyclePayloadV1 covers level-ups, deaths and monster kills
type HeroLifecyclePayloadV1 struct {
	HeroID string `json:"hero_id"`
	Name   string `json:"name"`
	Level  int    `json:"level"`
}

// QuestPayloadV1 covers quest start and completion
type QuestPayloadV1 struct {
	HeroID  string `json:"hero_id"`
	QuestID int    `json:"quest_id"`
	Title   string `json:"title"`
}

// GlobalEventPayloadV1 carries the broadcast line of a world event
type GlobalEventPayloadV1 struct {
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// NewHeroTurnEvent creates a turn-processed event
func NewHeroTurnEvent(heroID, branch, logLine string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    HeroTurnProcessed,
		Payload: HeroTurnPayloadV1{
			HeroID:    heroID,
			Branch:    branch,
			Log:       logLine,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewHeroLifecycleEvent creates a level-up, death or monster-kill event
func NewHeroLifecycleEvent(t Type, heroID, name string, level int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: HeroLifecyclePayloadV1{HeroID: heroID, Name: name, Level: level},
	}
}

// NewQuestEvent creates a quest start or completion event
func NewQuestEvent(t Type, heroID string, questID int, title string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: QuestPayloadV1{HeroID: heroID, QuestID: questID, Title: title},
	}
}

// NewGlobalEvent creates a world broadcast event
func NewGlobalEvent(message string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GlobalEventFired,
		Payload: GlobalEventPayloadV1{Message: message, Timestamp: time.Now().Unix()},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers synchronously.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d handler error(s) for %s: %v", len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
