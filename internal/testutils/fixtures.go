package testutils

import (
	"github.com/marvelous-hawke/runeforge/internal/domain/actors"
	"github.com/marvelous-hawke/runeforge/internal/domain/items"
	"github.com/marvelous-hawke/runeforge/internal/domain/runes"
)

// CreateTestActor builds a bare actor document
func CreateTestActor(id, name string) *actors.Actor {
	return &actors.Actor{
		ID:   id,
		Name: name,
	}
}

// CreateTestWeapon builds a weapon host with a plain 1d8 slashing profile
func CreateTestWeapon(id, actorID, rarity string) *items.Item {
	return &items.Item{
		ID:      id,
		ActorID: actorID,
		Name:    "Longsword",
		Class:   items.ClassWeapon,
		Rarity:  rarity,
		Attack: &items.AttackProfile{
			Parts: []items.DamagePart{{Number: 1, Die: 8, Type: "slashing"}},
		},
	}
}

// CreateTestArmor builds an armor-like equipment host
func CreateTestArmor(id, actorID, rarity string) *items.Item {
	return &items.Item{
		ID:        id,
		ActorID:   actorID,
		Name:      "Chain Mail",
		Class:     items.ClassEquipment,
		Rarity:    rarity,
		ArmorType: items.ArmorTypeHeavy,
	}
}

// CreateTestFocus builds a focus-like equipment host
func CreateTestFocus(id, actorID, rarity string) *items.Item {
	return &items.Item{
		ID:         id,
		ActorID:    actorID,
		Name:       "Arcane Orb",
		Class:      items.ClassEquipment,
		Rarity:     rarity,
		Properties: []string{items.PropertyFocus},
	}
}

// CreateTestRune builds a rune item carrying the given descriptive flags
func CreateTestRune(id string, subtype runes.Subtype, tier runes.Tier) *items.Item {
	item := &items.Item{
		ID:    id,
		Name:  "Rune of " + string(subtype),
		Class: items.ClassOther,
	}
	mustSetFlag(item, runes.FlagCategory, subtype.Category())
	mustSetFlag(item, runes.FlagSubtype, subtype)
	mustSetFlag(item, runes.FlagTier, tier)
	return item
}

// CreateTestElementalRune builds an elemental rune item with a damage type
func CreateTestElementalRune(id string, tier runes.Tier, damageType string) *items.Item {
	item := CreateTestRune(id, runes.SubtypeElemental, tier)
	if damageType != "" {
		mustSetFlag(item, runes.FlagDamageType, damageType)
	}
	return item
}

func mustSetFlag(item *items.Item, key string, value any) {
	if err := item.SetFlag(key, value); err != nil {
		panic(err)
	}
}
