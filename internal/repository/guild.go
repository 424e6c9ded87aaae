package repository

import (
	"context"

	"github.com/ldanko/idleheroes/internal/domain"
)

// Guild covers the bookkeeping the quest-completion hook needs.
type Guild interface {
	GetMembershipByHero(ctx context.Context, heroID string) (*domain.GuildMembership, error)
	// AddContribution adds experience and gold to both the membership
	// counters and the guild totals.
	AddContribution(ctx context.Context, guildID int, heroID string, experience, gold int) error
}
