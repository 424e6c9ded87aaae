package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Heroes

CREATE TABLE IF NOT EXISTS heroes (
    hero_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    name VARCHAR(100) UNIQUE NOT NULL,
    owner_id VARCHAR(100) UNIQUE NOT NULL,
    level INTEGER NOT NULL DEFAULT 1 CHECK (level >= 1),
    health INTEGER NOT NULL DEFAULT 100 CHECK (health >= 0),
    max_health INTEGER NOT NULL DEFAULT 100 CHECK (max_health >= 0),
    gold INTEGER NOT NULL DEFAULT 0 CHECK (gold >= 0),
    experience INTEGER NOT NULL DEFAULT 0 CHECK (experience >= 0),
    state VARCHAR(20) NOT NULL DEFAULT 'adventure',
    location VARCHAR(100) NOT NULL DEFAULT 'Town',
    monsters_killed INTEGER NOT NULL DEFAULT 0,
    quests_completed INTEGER NOT NULL DEFAULT 0,
    deaths INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Item catalog (operator owned)

CREATE TABLE IF NOT EXISTS items (
    item_id SERIAL PRIMARY KEY,
    name VARCHAR(100) UNIQUE NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    item_type VARCHAR(20) NOT NULL,
    power INTEGER NOT NULL DEFAULT 0,
    defense INTEGER NOT NULL DEFAULT 0,
    healing_amount INTEGER NOT NULL DEFAULT 0,
    rarity VARCHAR(20) NOT NULL DEFAULT 'common',
    sell_price INTEGER NOT NULL DEFAULT 0
);

-- Inventory: one row per (hero, item) stack, deleted when the stack empties

CREATE TABLE IF NOT EXISTS inventory (
    hero_id UUID NOT NULL REFERENCES heroes(hero_id) ON DELETE CASCADE,
    item_id INTEGER NOT NULL REFERENCES items(item_id) ON DELETE CASCADE,
    quantity INTEGER NOT NULL CHECK (quantity > 0),
    PRIMARY KEY (hero_id, item_id)
);

-- Equipment: one row per hero, one item reference per slot

CREATE TABLE IF NOT EXISTS equipment (
    hero_id UUID PRIMARY KEY REFERENCES heroes(hero_id) ON DELETE CASCADE,
    weapon_id INTEGER REFERENCES items(item_id) ON DELETE SET NULL,
    armor_id INTEGER REFERENCES items(item_id) ON DELETE SET NULL
);

-- Quest catalog

CREATE TABLE IF NOT EXISTS quests (
    quest_id SERIAL PRIMARY KEY,
    title VARCHAR(200) NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    quest_type VARCHAR(20) NOT NULL DEFAULT 'system',
    required_level INTEGER NOT NULL DEFAULT 1,
    reward_experience INTEGER NOT NULL DEFAULT 0,
    reward_gold INTEGER NOT NULL DEFAULT 0,
    is_approved BOOLEAN NOT NULL DEFAULT FALSE,
    created_by VARCHAR(100) NOT NULL DEFAULT '',
    approved_by VARCHAR(100) NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Hero quest attempts: unique per pair forever, in any status

CREATE TABLE IF NOT EXISTS hero_quests (
    hero_id UUID NOT NULL REFERENCES heroes(hero_id) ON DELETE CASCADE,
    quest_id INTEGER NOT NULL REFERENCES quests(quest_id) ON DELETE CASCADE,
    status VARCHAR(20) NOT NULL DEFAULT 'not_started',
    progress INTEGER NOT NULL DEFAULT 0 CHECK (progress >= 0),
    started_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    completed_at TIMESTAMPTZ,
    PRIMARY KEY (hero_id, quest_id)
);

CREATE INDEX IF NOT EXISTS idx_hero_quests_active
    ON hero_quests (hero_id, started_at) WHERE status = 'in_progress';

-- Notifications (engine writes, presentation reads)

CREATE TABLE IF NOT EXISTS notifications (
    notification_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    recipient_id VARCHAR(100) NOT NULL,
    title VARCHAR(200) NOT NULL,
    message TEXT NOT NULL,
    severity VARCHAR(20) NOT NULL DEFAULT 'info',
    link VARCHAR(500) NOT NULL DEFAULT '',
    read BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_notifications_recipient
    ON notifications (recipient_id, created_at DESC);

-- Guilds: only the counters the quest-completion hook touches

CREATE TABLE IF NOT EXISTS guilds (
    guild_id SERIAL PRIMARY KEY,
    name VARCHAR(100) UNIQUE NOT NULL,
    level INTEGER NOT NULL DEFAULT 1,
    experience INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS guild_members (
    guild_id INTEGER NOT NULL REFERENCES guilds(guild_id) ON DELETE CASCADE,
    hero_id UUID UNIQUE NOT NULL REFERENCES heroes(hero_id) ON DELETE CASCADE,
    role VARCHAR(20) NOT NULL DEFAULT 'member',
    experience_contributed INTEGER NOT NULL DEFAULT 0,
    gold_contributed INTEGER NOT NULL DEFAULT 0,
    joined_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    PRIMARY KEY (guild_id, hero_id)
);
`
