package domain

// ItemType classifies how an item can be used.
type ItemType string

const (
	ItemTypeHealing  ItemType = "healing"
	ItemTypeWeapon   ItemType = "weapon"
	ItemTypeArmor    ItemType = "armor"
	ItemTypeArtifact ItemType = "artifact"
	ItemTypeQuest    ItemType = "quest"
	ItemTypeJunk     ItemType = "junk"
)

// Valid reports whether the type is a known catalog type.
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeHealing, ItemTypeWeapon, ItemTypeArmor, ItemTypeArtifact, ItemTypeQuest, ItemTypeJunk:
		return true
	}
	return false
}

// Rarity is the visual rarity of a catalog item.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Item is an immutable catalog entry. Operators create and edit items; the
// engine only reads them.
type Item struct {
	ID            int      `json:"item_id" db:"item_id"`
	Name          string   `json:"name" db:"name"`
	Description   string   `json:"description" db:"description"`
	Type          ItemType `json:"type" db:"item_type"`
	Power         int      `json:"power" db:"power"`
	Defense       int      `json:"defense" db:"defense"`
	HealingAmount int      `json:"healing_amount" db:"healing_amount"`
	Rarity        Rarity   `json:"rarity" db:"rarity"`
	SellPrice     int      `json:"sell_price" db:"sell_price"`
}

// InventoryEntry is a (hero, item) stack. Quantity is always positive; a
// stack that reaches zero is deleted rather than kept around.
type InventoryEntry struct {
	HeroID   string `json:"hero_id"`
	ItemID   int    `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// EquipSlot names the two equipment slots a hero has.
type EquipSlot string

const (
	SlotWeapon EquipSlot = "weapon"
	SlotArmor  EquipSlot = "armor"
)

// Equipment holds at most one item reference per slot. One row exists per
// hero, created together with the hero.
type Equipment struct {
	HeroID   string `json:"hero_id"`
	WeaponID *int   `json:"weapon_id,omitempty"`
	ArmorID  *int   `json:"armor_id,omitempty"`
}

// EquipmentBonus is the aggregate modifier derived from equipped items.
type EquipmentBonus struct {
	Power   int `json:"power"`
	Defense int `json:"defense"`
}
