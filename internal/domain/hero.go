package domain

import "time"

// HeroState describes the automatic behavior a hero is currently in.
type HeroState string

const (
	StateAdventure HeroState = "adventure"
	StateFight     HeroState = "fight"
	StateRest      HeroState = "rest"
	StateDead      HeroState = "dead"
)

// Valid reports whether the state is one of the known lifecycle states.
func (s HeroState) Valid() bool {
	switch s {
	case StateAdventure, StateFight, StateRest, StateDead:
		return true
	}
	return false
}

// Hero is the autonomous entity the turn engine advances every tick.
// Invariant: Health == 0 exactly when State == StateDead.
type Hero struct {
	ID      string `json:"hero_id"`
	Name    string `json:"name"`
	OwnerID string `json:"owner_id"`

	Level      int `json:"level"`
	Health     int `json:"health"`
	MaxHealth  int `json:"max_health"`
	Gold       int `json:"gold"`
	Experience int `json:"experience"`

	State    HeroState `json:"state"`
	Location string    `json:"location"`

	MonstersKilled  int `json:"monsters_killed"`
	QuestsCompleted int `json:"quests_completed"`
	Deaths          int `json:"deaths"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsDead reports whether the hero can no longer act.
func (h *Hero) IsDead() bool {
	return h.State == StateDead
}

// Hurt lowers health by damage, floored at zero. The caller is responsible
// for moving the hero to StateDead when health reaches zero.
func (h *Hero) Hurt(damage int) {
	h.Health -= damage
	if h.Health < 0 {
		h.Health = 0
	}
}

// Heal raises health by amount, clamped to MaxHealth.
func (h *Hero) Heal(amount int) {
	h.Health += amount
	if h.Health > h.MaxHealth {
		h.Health = h.MaxHealth
	}
}

// NewHero returns a fresh level-1 hero for an owner account.
func NewHero(ownerID, name string) *Hero {
	return &Hero{
		Name:      name,
		OwnerID:   ownerID,
		Level:     1,
		Health:    100,
		MaxHealth: 100,
		State:     StateAdventure,
		Location:  "Town",
	}
}
