// Package progression holds the reward and leveling resolver. It is pure
// computation over hero state; persistence stays with the caller.
package progression

import (
	"fmt"

	"github.com/ldanko/idleheroes/internal/domain"
)

// Result describes what an experience grant did to a hero.
type Result struct {
	Granted       int
	LeveledUp     bool
	NewLevel      int
	MaxHealthGain int
	Message       string
}

// RequiredExperience is the threshold to clear the given level.
func RequiredExperience(level int) int {
	return level * 100
}

// GrantExperience adds delta experience to the hero and applies at most one
// level-up. The threshold is deliberately checked once per call, not in a
// loop: a grant large enough to cross two thresholds banks the surplus and
// levels again on the next grant. Swap this function for a draining variant
// if that pacing ever changes; call sites only see the Result.
func GrantExperience(hero *domain.Hero, delta int, roll func(min, max int) int) Result {
	if delta < 0 {
		delta = 0
	}
	hero.Experience += delta

	res := Result{Granted: delta, NewLevel: hero.Level}

	required := RequiredExperience(hero.Level)
	if hero.Experience < required {
		return res
	}

	hero.Level++
	hero.Experience -= required
	gain := roll(10, 20)
	hero.MaxHealth += gain
	hero.Health = hero.MaxHealth

	res.LeveledUp = true
	res.NewLevel = hero.Level
	res.MaxHealthGain = gain
	res.Message = fmt.Sprintf("%s reaches level %d! Max health increases by %d.",
		hero.Name, hero.Level, gain)
	return res
}
