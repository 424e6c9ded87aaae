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

// HeroRepository implements the hero repository for PostgreSQL
type HeroRepository struct {
	db *pgxpool.Pool
}

// NewHeroRepository creates a new hero repository
func NewHeroRepository(db *pgxpool.Pool) *HeroRepository {
	return &HeroRepository{db: db}
}

const heroColumns = `hero_id, name, owner_id, level, health, max_health, gold, experience,
	state, location, monsters_killed, quests_completed, deaths, created_at, updated_at`

func scanHero(row pgx.Row) (*domain.Hero, error) {
	var h domain.Hero
	var id uuid.UUID
	err := row.Scan(&id, &h.Name, &h.OwnerID, &h.Level, &h.Health, &h.MaxHealth,
		&h.Gold, &h.Experience, &h.State, &h.Location,
		&h.MonstersKilled, &h.QuestsCompleted, &h.Deaths, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	h.ID = id.String()
	return &h, nil
}

// CreateHero inserts a hero row and fills in the generated id.
func (r *HeroRepository) CreateHero(ctx context.Context, hero *domain.Hero) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO heroes (name, owner_id, level, health, max_health, gold, experience, state, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING hero_id, created_at, updated_at`,
		hero.Name, hero.OwnerID, hero.Level, hero.Health, hero.MaxHealth,
		hero.Gold, hero.Experience, hero.State, hero.Location)

	var id uuid.UUID
	if err := row.Scan(&id, &hero.CreatedAt, &hero.UpdatedAt); err != nil {
		return fmt.Errorf("failed to create hero: %w", err)
	}
	hero.ID = id.String()
	return nil
}

// GetHeroByID fetches one hero
func (r *HeroRepository) GetHeroByID(ctx context.Context, heroID string) (*domain.Hero, error) {
	id, err := uuid.Parse(heroID)
	if err != nil {
		return nil, fmt.Errorf("invalid hero id: %w", err)
	}

	hero, err := scanHero(r.db.QueryRow(ctx,
		`SELECT `+heroColumns+` FROM heroes WHERE hero_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrHeroNotFound
		}
		return nil, fmt.Errorf("failed to get hero: %w", err)
	}
	return hero, nil
}

// GetHeroByOwner fetches the hero owned by an account
func (r *HeroRepository) GetHeroByOwner(ctx context.Context, ownerID string) (*domain.Hero, error) {
	hero, err := scanHero(r.db.QueryRow(ctx,
		`SELECT `+heroColumns+` FROM heroes WHERE owner_id = $1`, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrHeroNotFound
		}
		return nil, fmt.Errorf("failed to get hero by owner: %w", err)
	}
	return hero, nil
}

// ListHeroes returns all heroes, oldest first. The batch driver iterates this.
func (r *HeroRepository) ListHeroes(ctx context.Context) ([]domain.Hero, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+heroColumns+` FROM heroes ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list heroes: %w", err)
	}
	defer rows.Close()

	var heroes []domain.Hero
	for rows.Next() {
		h, err := scanHero(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hero: %w", err)
		}
		heroes = append(heroes, *h)
	}
	return heroes, rows.Err()
}

// UpdateHero persists all mutable hero fields
func (r *HeroRepository) UpdateHero(ctx context.Context, hero domain.Hero) error {
	id, err := uuid.Parse(hero.ID)
	if err != nil {
		return fmt.Errorf("invalid hero id: %w", err)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE heroes SET
			level = $2, health = $3, max_health = $4, gold = $5, experience = $6,
			state = $7, location = $8, monsters_killed = $9, quests_completed = $10,
			deaths = $11, updated_at = NOW()
		WHERE hero_id = $1`,
		id, hero.Level, hero.Health, hero.MaxHealth, hero.Gold, hero.Experience,
		hero.State, hero.Location, hero.MonstersKilled, hero.QuestsCompleted, hero.Deaths)
	if err != nil {
		return fmt.Errorf("failed to update hero: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrHeroNotFound
	}
	return nil
}

// GetEquipment fetches a hero's equipment row, creating it when missing so
// the engine always has a row to work with.
func (r *HeroRepository) GetEquipment(ctx context.Context, heroID string) (*domain.Equipment, error) {
	id, err := uuid.Parse(heroID)
	if err != nil {
		return nil, fmt.Errorf("invalid hero id: %w", err)
	}

	eq := domain.Equipment{HeroID: heroID}
	err = r.db.QueryRow(ctx, `
		INSERT INTO equipment (hero_id) VALUES ($1)
		ON CONFLICT (hero_id) DO UPDATE SET hero_id = EXCLUDED.hero_id
		RETURNING weapon_id, armor_id`, id).Scan(&eq.WeaponID, &eq.ArmorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}
	return &eq, nil
}

// CreateEquipment inserts an empty equipment row for a new hero
func (r *HeroRepository) CreateEquipment(ctx context.Context, heroID string) error {
	id, err := uuid.Parse(heroID)
	if err != nil {
		return fmt.Errorf("invalid hero id: %w", err)
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO equipment (hero_id) VALUES ($1) ON CONFLICT DO NOTHING`, id)
	if err != nil {
		return fmt.Errorf("failed to create equipment: %w", err)
	}
	return nil
}

// UpdateEquipment replaces both slot references
func (r *HeroRepository) UpdateEquipment(ctx context.Context, eq domain.Equipment) error {
	id, err := uuid.Parse(eq.HeroID)
	if err != nil {
		return fmt.Errorf("invalid hero id: %w", err)
	}
	_, err = r.db.Exec(ctx,
		`UPDATE equipment SET weapon_id = $2, armor_id = $3 WHERE hero_id = $1`,
		id, eq.WeaponID, eq.ArmorID)
	if err != nil {
		return fmt.Errorf("failed to update equipment: %w", err)
	}
	return nil
}

// GetInventory returns all stacks a hero holds
func (r *HeroRepository) GetInventory(ctx context.Context, heroID string) ([]domain.InventoryEntry, error) {
	id, err := uuid.Parse(heroID)
	if err != nil {
		return nil, fmt.Errorf("invalid hero id: %w", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT item_id, quantity FROM inventory WHERE hero_id = $1 ORDER BY item_id`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	defer rows.Close()

	var entries []domain.InventoryEntry
	for rows.Next() {
		e := domain.InventoryEntry{HeroID: heroID}
		if err := rows.Scan(&e.ItemID, &e.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan inventory entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetOrCreateInventoryEntry returns the stack for (hero, item), creating a
// zero-quantity row in memory (not persisted) when none exists.
func (r *HeroRepository) GetOrCreateInventoryEntry(ctx context.Context, heroID string, itemID int) (*domain.InventoryEntry, bool, error) {
	id, err := uuid.Parse(heroID)
	if err != nil {
		return nil, false, fmt.Errorf("invalid hero id: %w", err)
	}

	entry := domain.InventoryEntry{HeroID: heroID, ItemID: itemID}
	err = r.db.QueryRow(ctx,
		`SELECT quantity FROM inventory WHERE hero_id = $1 AND item_id = $2`,
		id, itemID).Scan(&entry.Quantity)
	if errors.Is(err, pgx.ErrNoRows) {
		return &entry, true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get inventory entry: %w", err)
	}
	return &entry, false, nil
}

// UpdateInventoryEntry upserts a stack with its new quantity
func (r *HeroRepository) UpdateInventoryEntry(ctx context.Context, entry domain.InventoryEntry) error {
	id, err := uuid.Parse(entry.HeroID)
	if err != nil {
		return fmt.Errorf("invalid hero id: %w", err)
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO inventory (hero_id, item_id, quantity) VALUES ($1, $2, $3)
		ON CONFLICT (hero_id, item_id) DO UPDATE SET quantity = EXCLUDED.quantity`,
		id, entry.ItemID, entry.Quantity)
	if err != nil {
		return fmt.Errorf("failed to update inventory entry: %w", err)
	}
	return nil
}

// DeleteInventoryEntry removes an emptied stack
func (r *HeroRepository) DeleteInventoryEntry(ctx context.Context, heroID string, itemID int) error {
	id, err := uuid.Parse(heroID)
	if err != nil {
		return fmt.Errorf("invalid hero id: %w", err)
	}
	_, err = r.db.Exec(ctx,
		`DELETE FROM inventory WHERE hero_id = $1 AND item_id = $2`, id, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete inventory entry: %w", err)
	}
	return nil
}
