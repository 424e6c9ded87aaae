package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ldanko/idleheroes/internal/domain"
)

// GuildRepository implements the guild bookkeeping repository for PostgreSQL
type GuildRepository struct {
	db *pgxpool.Pool
}

// NewGuildRepository creates a new guild repository
func NewGuildRepository(db *pgxpool.Pool) *GuildRepository {
	return &GuildRepository{db: db}
}

// GetMembershipByHero returns the hero's guild membership, if any
func (r *GuildRepository) GetMembershipByHero(ctx context.Context, heroID string) (*domain.GuildMembership, error) {
	id, err := uuid.Parse(heroID)
	if err != nil {
		return nil, fmt.Errorf("invalid hero id: %w", err)
	}

	m := domain.GuildMembership{HeroID: heroID}
	err = r.db.QueryRow(ctx, `
		SELECT guild_id, role, experience_contributed, gold_contributed, joined_at
		FROM guild_members WHERE hero_id = $1`, id).
		Scan(&m.GuildID, &m.Role, &m.ExperienceContributed, &m.GoldContributed, &m.JoinedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotGuildMember
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guild membership: %w", err)
	}
	return &m, nil
}

// AddContribution updates both the membership counters and the guild totals
// in one transaction.
func (r *GuildRepository) AddContribution(ctx context.Context, guildID int, heroID string, experience, gold int) error {
	id, err := uuid.Parse(heroID)
	if err != nil {
		return fmt.Errorf("invalid hero id: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin contribution transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	tag, err := tx.Exec(ctx, `
		UPDATE guild_members
		SET experience_contributed = experience_contributed + $3,
		    gold_contributed = gold_contributed + $4
		WHERE guild_id = $1 AND hero_id = $2`,
		guildID, id, experience, gold)
	if err != nil {
		return fmt.Errorf("failed to update membership contribution: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotGuildMember
	}

	tag, err = tx.Exec(ctx, `
		UPDATE guilds SET experience = experience + $2, updated_at = NOW()
		WHERE guild_id = $1`, guildID, experience)
	if err != nil {
		return fmt.Errorf("failed to update guild experience: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGuildNotFound
	}

	return tx.Commit(ctx)
}
