package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/ldanko/idleheroes/internal/domain"
)

// actionKind tags each narrative action with its mechanical effect so the
// engine never has to inspect the flavor text to decide what happened.
type actionKind int

const (
	actionWander actionKind = iota
	actionGold
	actionMonster
	actionQuest
	actionItem
	actionFishing
)

type narrativeAction struct {
	kind   actionKind
	format string // takes the hero name
}

var actionPool = []narrativeAction{
	{actionWander, "%s walks the forest path, lost in thought."},
	{actionWander, "%s surveys the hills from a rocky outcrop."},
	{actionWander, "%s hears a strange whisper on the wind..."},
	{actionGold, "%s finds a small pouch of gold by the roadside!"},
	{actionMonster, "%s runs into a monster!"},
	{actionQuest, "%s studies the notice board in search of work."},
	{actionItem, "%s spots something half-buried in the dirt."},
	{actionFishing, "%s casts a line into the river."},
}

// exploreTurn draws one action uniformly from the pool and applies its
// effect. Low health may additionally push the hero into rest at the end of
// the turn, except when the draw started a fight or a quest.
func (e *Engine) exploreTurn(ctx context.Context, h *domain.Hero) (string, error) {
	action := actionPool[int(e.rnd()*float64(len(actionPool)))]
	msg := fmt.Sprintf(action.format, h.Name)
	questStarted := false

	switch action.kind {
	case actionGold:
		amount := e.roll(1, 5)
		h.Gold += amount
		msg = fmt.Sprintf("%s (+%d gold, %d total)", msg, amount, h.Gold)

	case actionMonster:
		h.State = domain.StateFight
		msg += " Battle begins!"

	case actionQuest:
		started, err := e.quests.StartRandomQuest(ctx, h)
		if err != nil && !errors.Is(err, domain.ErrQuestAssigned) {
			return "", err
		}
		if started != "" {
			msg = started
			questStarted = true
		}

	case actionItem:
		found, err := e.heroSvc.FindRandomItem(ctx, h)
		if err != nil {
			return "", err
		}
		if found != "" {
			msg = found
		}

	case actionFishing:
		if e.rnd() < 0.5 {
			h.Gold += 2
			msg += fmt.Sprintf(" A catch! Sold for 2 gold (%d total).", h.Gold)
		} else {
			msg += " Not even a nibble."
		}
	}

	// A hero that just picked up a quest or a fight stays on it; only the
	// remaining outcomes can end in making camp.
	if action.kind != actionMonster && !questStarted && e.isExhausted(h) {
		h.State = domain.StateRest
		msg += fmt.Sprintf(" Worn down, %s makes camp to recover.", h.Name)
	}
	return msg, nil
}

// isExhausted applies the fatigue rule: below 30% health there is a 30%
// chance per turn that the hero stops to rest.
func (e *Engine) isExhausted(h *domain.Hero) bool {
	return h.Health*10 < h.MaxHealth*3 && e.rnd() < 0.3
}
