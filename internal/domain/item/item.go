// Package item defines the core domain entities for in-game items.
// This package is PURE and must NOT import any infrastructure packages.
package item

// ItemType represents the kind of item.
type ItemType string

const (
	ItemWood      ItemType = "WOOD"       // Basic building material
	ItemStone     ItemType = "STONE"      // Basic building material
	ItemIronOre   ItemType = "IRON_ORE"   // Smelting input
	ItemTorch     ItemType = "TORCH"      // Consumable light source
	ItemBread     ItemType = "BREAD"      // Basic sustenance
	ItemIronSword ItemType = "IRON_SWORD" // Weapon, carries its own durability
	ItemLantern   ItemType = "LANTERN"    // Reusable light source
)

// ItemDefinition provides metadata about an item type.
type ItemDefinition struct {
	Name        string
	Description string
	BaseValue   float64 // Value in coin for trading
	Stackable   bool    // Whether multiple units may share a slot
}

// Registry contains all known items and their properties.
var Registry = map[ItemType]ItemDefinition{
	ItemWood: {
		Name:        "Wood",
		Description: "Rough-cut logs from the outer forest.",
		BaseValue:   1.0,
		Stackable:   true,
	},
	ItemStone: {
		Name:        "Stone",
		Description: "Quarried blocks, heavy but plentiful.",
		BaseValue:   1.0,
		Stackable:   true,
	},
	ItemIronOre: {
		Name:        "Iron Ore",
		Description: "Raw ore from the deep galleries.",
		BaseValue:   5.0,
		Stackable:   true,
	},
	ItemTorch: {
		Name:        "Torch",
		Description: "Burns for a while, then it is gone.",
		BaseValue:   2.0,
		Stackable:   true,
	},
	ItemBread: {
		Name:        "Bread",
		Description: "Dense keep bread. Fills the stomach.",
		BaseValue:   3.0,
		Stackable:   true,
	},
	ItemIronSword: {
		Name:        "Iron Sword",
		Description: "Each blade wears on its own. One per slot.",
		BaseValue:   50.0,
		Stackable:   false,
	},
	ItemLantern: {
		Name:        "Lantern",
		Description: "Sturdy oil lantern. One per slot.",
		BaseValue:   25.0,
		Stackable:   false,
	},
}

// GetItem returns the definition for an item type.
func GetItem(t ItemType) (ItemDefinition, bool) {
	def, ok := Registry[t]
	return def, ok
}
