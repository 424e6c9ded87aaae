package engine

import (
	"context"
	"fmt"

	"github.com/ldanko/idleheroes/internal/domain"
	"github.com/ldanko/idleheroes/internal/event"
	"github.com/ldanko/idleheroes/internal/progression"
)

// fightRound resolves one round of combat. The exchange is simultaneous:
// the hero takes the rolled damage whether the round is won or lost, with
// armor soaking a third of its defense bonus and a floor of 1.
func (e *Engine) fightRound(ctx context.Context, h *domain.Hero) (string, error) {
	bonus, err := e.heroSvc.EquipmentBonus(ctx, h.ID)
	if err != nil {
		return "", err
	}

	damage := e.roll(5, 20) - bonus.Defense/3
	if damage < 1 {
		damage = 1
	}

	won := e.rnd() < 0.5
	h.Hurt(damage)

	if h.Health == 0 {
		return e.heroDies(ctx, h, damage), nil
	}

	if !won {
		return fmt.Sprintf("%s trades blows with the monster and takes %d damage (%d/%d).",
			h.Name, damage, h.Health, h.MaxHealth), nil
	}

	expGain := e.roll(10, 30)
	goldGain := e.roll(1, 10)
	h.Gold += goldGain
	h.MonstersKilled++
	h.State = domain.StateAdventure

	res := progression.GrantExperience(h, expGain, e.roll)

	msg := fmt.Sprintf("%s slays the monster! +%d experience, +%d gold, %d damage taken.",
		h.Name, expGain, goldGain, damage)
	e.notifier.Notify(ctx, h.OwnerID, "Victory!", msg, domain.SeveritySuccess, "")
	e.publisher.PublishWithRetry(ctx, event.NewHeroLifecycleEvent(event.MonsterKilled, h.ID, h.Name, h.Level))

	if res.LeveledUp {
		msg += " " + res.Message
		e.notifier.Notify(ctx, h.OwnerID, "Level up!", res.Message, domain.SeveritySuccess, "")
		e.publisher.PublishWithRetry(ctx, event.NewHeroLifecycleEvent(event.HeroLeveledUp, h.ID, h.Name, h.Level))
	}
	return msg, nil
}

// heroDies marks the hero dead. Dead is terminal: later turns observe the
// state and do nothing.
func (e *Engine) heroDies(ctx context.Context, h *domain.Hero, damage int) string {
	h.State = domain.StateDead
	h.Deaths++

	msg := fmt.Sprintf("%s takes %d damage and falls in battle. %s has died!", h.Name, damage, h.Name)
	e.notifier.Notify(ctx, h.OwnerID, "Hero has fallen", msg, domain.SeverityDanger, "")
	e.publisher.PublishWithRetry(ctx, event.NewHeroLifecycleEvent(event.HeroDied, h.ID, h.Name, h.Level))
	return msg
}
