// Command setup creates the database, applies the schema and seeds the
// starting item catalog and quest pool. It is idempotent and safe to rerun.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/ldanko/idleheroes/internal/database/schema"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	host := envOr("DB_HOST", "localhost")
	port := envOr("DB_PORT", "5432")
	user := envOr("DB_USER", "postgres")
	password := envOr("DB_PASSWORD", "postgres")
	dbname := envOr("DB_NAME", "idleheroes")

	ctx := context.Background()

	// Connect to the default database first to create the target one.
	defaultConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", user, password, host, port)
	conn, err := pgx.Connect(ctx, defaultConnString)
	if err != nil {
		log.Fatalf("Unable to connect to postgres database: %v", err)
	}

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbname).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check if database exists: %v", err)
	}

	if !exists {
		fmt.Printf("Creating database %s...\n", dbname)
		if _, err = conn.Exec(ctx, fmt.Sprintf("CREATE DATABASE %s", dbname)); err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
		fmt.Println("Database created.")
	} else {
		fmt.Printf("Database %s already exists.\n", dbname)
	}
	conn.Close(ctx)

	targetConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbname)
	targetConn, err := pgx.Connect(ctx, targetConnString)
	if err != nil {
		log.Fatalf("Unable to connect to %s database: %v", dbname, err)
	}
	defer targetConn.Close(ctx)

	fmt.Println("Applying schema...")
	if _, err = targetConn.Exec(ctx, schema.SchemaSQL); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}

	fmt.Println("Seeding items...")
	if _, err = targetConn.Exec(ctx, seedItemsSQL); err != nil {
		log.Fatalf("Failed to seed items: %v", err)
	}

	// Quest titles are not unique, so only seed into an empty table.
	var questCount int
	if err = targetConn.QueryRow(ctx, "SELECT COUNT(*) FROM quests").Scan(&questCount); err != nil {
		log.Fatalf("Failed to count quests: %v", err)
	}
	if questCount == 0 {
		fmt.Println("Seeding quests...")
		if _, err = targetConn.Exec(ctx, seedQuestsSQL); err != nil {
			log.Fatalf("Failed to seed quests: %v", err)
		}
	}

	fmt.Println("Setup complete.")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

const seedItemsSQL = `
INSERT INTO items (name, description, item_type, power, defense, healing_amount, rarity, sell_price) VALUES
    ('Minor Healing Potion', 'Restores a little health.', 'healing', 0, 0, 20, 'common', 5),
    ('Healing Potion', 'Restores a fair amount of health.', 'healing', 0, 0, 50, 'uncommon', 15),
    ('Rusty Sword', 'Better than bare fists. Barely.', 'weapon', 3, 0, 0, 'common', 2),
    ('Iron Sword', 'A dependable blade.', 'weapon', 8, 0, 0, 'uncommon', 20),
    ('Knight''s Blade', 'Forged for a knight of the realm.', 'weapon', 15, 0, 0, 'rare', 75),
    ('Leather Vest', 'Soft armor for soft adventures.', 'armor', 0, 4, 0, 'common', 3),
    ('Chainmail', 'Rings of iron, links of hope.', 'armor', 0, 9, 0, 'uncommon', 25),
    ('Tower Shield Plate', 'Heavy plate that turns aside most blows.', 'armor', 0, 18, 0, 'rare', 90),
    ('Glowing Shard', 'A fragment of something old and bright.', 'artifact', 0, 0, 0, 'rare', 40),
    ('Old Boot', 'Someone fished this out before you.', 'junk', 0, 0, 0, 'common', 1)
ON CONFLICT (name) DO NOTHING;
`

const seedQuestsSQL = `
INSERT INTO quests (title, description, quest_type, required_level, reward_experience, reward_gold, is_approved, created_by) VALUES
    ('Rats in the Cellar', 'The innkeeper will pay to have the cellar cleared.', 'system', 1, 40, 10, TRUE, 'system'),
    ('The Lost Parcel', 'A courier dropped a parcel somewhere on the forest road.', 'system', 1, 50, 15, TRUE, 'system'),
    ('Wolves at the Farmstead', 'Drive the wolves off before lambing season.', 'system', 2, 80, 25, TRUE, 'system'),
    ('The Abandoned Mine', 'Something stirs in the old mine shafts.', 'system', 4, 150, 50, TRUE, 'system'),
    ('Escort to the Capital', 'A merchant seeks protection on the long road south.', 'system', 6, 250, 90, TRUE, 'system');
`
