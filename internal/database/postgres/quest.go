package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ldanko/idleheroes/internal/domain"
)

// QuestRepository implements the quest repository for PostgreSQL
type QuestRepository struct {
	db *pgxpool.Pool
}

// NewQuestRepository creates a new quest repository
func NewQuestRepository(db *pgxpool.Pool) *QuestRepository {
	return &QuestRepository{db: db}
}

const questColumns = `quest_id, title, description, quest_type, required_level,
	reward_experience, reward_gold, is_approved, created_by, approved_by, created_at, updated_at`

func scanQuest(row pgx.Row) (*domain.Quest, error) {
	var q domain.Quest
	err := row.Scan(&q.ID, &q.Title, &q.Description, &q.Type, &q.RequiredLevel,
		&q.RewardExperience, &q.RewardGold, &q.IsApproved, &q.CreatedBy,
		&q.ApprovedBy, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// CreateQuest inserts a quest definition
func (r *QuestRepository) CreateQuest(ctx context.Context, quest *domain.Quest) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO quests (title, description, quest_type, required_level,
			reward_experience, reward_gold, is_approved, created_by, approved_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING quest_id, created_at, updated_at`,
		quest.Title, quest.Description, quest.Type, quest.RequiredLevel,
		quest.RewardExperience, quest.RewardGold, quest.IsApproved,
		quest.CreatedBy, quest.ApprovedBy).
		Scan(&quest.ID, &quest.CreatedAt, &quest.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create quest: %w", err)
	}
	return nil
}

// GetQuestByID fetches one quest definition
func (r *QuestRepository) GetQuestByID(ctx context.Context, questID int) (*domain.Quest, error) {
	quest, err := scanQuest(r.db.QueryRow(ctx,
		`SELECT `+questColumns+` FROM quests WHERE quest_id = $1`, questID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrQuestNotFound
		}
		return nil, fmt.Errorf("failed to get quest: %w", err)
	}
	return quest, nil
}

// ApproveQuest marks a quest eligible for automatic assignment
func (r *QuestRepository) ApproveQuest(ctx context.Context, questID int, approvedBy string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE quests SET is_approved = TRUE, approved_by = $2, updated_at = NOW()
		WHERE quest_id = $1`, questID, approvedBy)
	if err != nil {
		return fmt.Errorf("failed to approve quest: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrQuestNotFound
	}
	return nil
}

// ListEligibleQuests returns approved quests the hero can start: level
// requirement met and no hero_quests row in any status.
func (r *QuestRepository) ListEligibleQuests(ctx context.Context, heroID string, level int) ([]domain.Quest, error) {
	id, err := uuid.Parse(heroID)
	if err != nil {
		return nil, fmt.Errorf("invalid hero id: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+questColumns+` FROM quests q
		WHERE q.is_approved = TRUE
		  AND q.required_level <= $2
		  AND NOT EXISTS (
			SELECT 1 FROM hero_quests hq
			WHERE hq.hero_id = $1 AND hq.quest_id = q.quest_id
		  )
		ORDER BY q.quest_id`, id, level)
	if err != nil {
		return nil, fmt.Errorf("failed to list eligible quests: %w", err)
	}
	defer rows.Close()

	var quests []domain.Quest
	for rows.Next() {
		q, err := scanQuest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quest: %w", err)
		}
		quests = append(quests, *q)
	}
	return quests, rows.Err()
}

// GetActiveHeroQuest returns the hero's earliest-started in-progress quest,
// joined with its reward fields, or nil when there is none.
func (r *QuestRepository) GetActiveHeroQuest(ctx context.Context, heroID string) (*domain.HeroQuest, error) {
	id, err := uuid.Parse(heroID)
	if err != nil {
		return nil, fmt.Errorf("invalid hero id: %w", err)
	}

	var hq domain.HeroQuest
	var completedAt pgtype.Timestamptz
	err = r.db.QueryRow(ctx, `
		SELECT hq.quest_id, hq.status, hq.progress, hq.started_at, hq.completed_at,
		       q.title, q.reward_experience, q.reward_gold
		FROM hero_quests hq
		JOIN quests q ON q.quest_id = hq.quest_id
		WHERE hq.hero_id = $1 AND hq.status = 'in_progress'
		ORDER BY hq.started_at
		LIMIT 1`, id).
		Scan(&hq.QuestID, &hq.Status, &hq.Progress, &hq.StartedAt, &completedAt,
			&hq.Title, &hq.RewardExperience, &hq.RewardGold)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active hero quest: %w", err)
	}
	hq.HeroID = heroID
	if completedAt.Valid {
		hq.CompletedAt = &completedAt.Time
	}
	return &hq, nil
}

// HasHeroQuest reports whether any attempt record exists for the pair
func (r *QuestRepository) HasHeroQuest(ctx context.Context, heroID string, questID int) (bool, error) {
	id, err := uuid.Parse(heroID)
	if err != nil {
		return false, fmt.Errorf("invalid hero id: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM hero_quests WHERE hero_id = $1 AND quest_id = $2
		)`, id, questID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check hero quest: %w", err)
	}
	return exists, nil
}

// CreateHeroQuest inserts an attempt record. The primary key enforces the
// once-per-pair rule; a conflict surfaces as domain.ErrQuestAssigned.
func (r *QuestRepository) CreateHeroQuest(ctx context.Context, hq *domain.HeroQuest) error {
	id, err := uuid.Parse(hq.HeroID)
	if err != nil {
		return fmt.Errorf("invalid hero id: %w", err)
	}

	tag, err := r.db.Exec(ctx, `
		INSERT INTO hero_quests (hero_id, quest_id, status, progress, started_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (hero_id, quest_id) DO NOTHING`,
		id, hq.QuestID, hq.Status, hq.Progress, hq.StartedAt)
	if err != nil {
		return fmt.Errorf("failed to create hero quest: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrQuestAssigned
	}
	return nil
}

// UpdateHeroQuest persists progress/status changes for an attempt
func (r *QuestRepository) UpdateHeroQuest(ctx context.Context, hq domain.HeroQuest) error {
	id, err := uuid.Parse(hq.HeroID)
	if err != nil {
		return fmt.Errorf("invalid hero id: %w", err)
	}

	var completedAt pgtype.Timestamptz
	if hq.CompletedAt != nil {
		completedAt = pgtype.Timestamptz{Time: *hq.CompletedAt, Valid: true}
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE hero_quests SET status = $3, progress = $4, completed_at = $5
		WHERE hero_id = $1 AND quest_id = $2`,
		id, hq.QuestID, hq.Status, hq.Progress, completedAt)
	if err != nil {
		return fmt.Errorf("failed to update hero quest: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrQuestNotFound
	}
	return nil
}
