package domain

import "time"

// Guild carries the counters the quest-completion hook updates. Guild
// leveling and economy live outside this service.
type Guild struct {
	ID         int       `json:"guild_id"`
	Name       string    `json:"name"`
	Level      int       `json:"level"`
	Experience int       `json:"experience"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// GuildMembership links a hero to its guild. A hero belongs to at most one
// guild at a time.
type GuildMembership struct {
	GuildID                int       `json:"guild_id"`
	HeroID                 string    `json:"hero_id"`
	Role                   string    `json:"role"`
	ExperienceContributed  int       `json:"experience_contributed"`
	GoldContributed        int       `json:"gold_contributed"`
	JoinedAt               time.Time `json:"joined_at"`
}
