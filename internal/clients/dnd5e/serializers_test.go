package dnd5e

import (
	"testing"

	apiEntities "github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marvelous-hawke/runeforge/internal/domain/items"
)

func TestApiWeaponToItem(t *testing.T) {
	input := &apiEntities.Weapon{
		Key:  "longsword",
		Name: "Longsword",
		Damage: &apiEntities.Damage{
			DamageDice: "1d8",
			DamageType: &apiEntities.ReferenceItem{Key: "slashing"},
		},
	}

	item := apiWeaponToItem(input)
	require.NotNil(t, item)
	assert.Equal(t, "longsword", item.ID)
	assert.Equal(t, items.ClassWeapon, item.Class)
	require.NotNil(t, item.Attack)
	require.Len(t, item.Attack.Parts, 1)
	assert.Equal(t, items.DamagePart{Number: 1, Die: 8, Type: "slashing"}, item.Attack.Parts[0])
	assert.True(t, items.IsWeapon(item))
}

func TestApiWeaponToItem_MalformedDice(t *testing.T) {
	input := &apiEntities.Weapon{
		Key:    "net",
		Name:   "Net",
		Damage: &apiEntities.Damage{DamageDice: "special"},
	}

	item := apiWeaponToItem(input)
	require.NotNil(t, item)
	assert.Empty(t, item.Attack.Parts)
}

func TestApiArmorToItem(t *testing.T) {
	tests := []struct {
		name      string
		category  string
		wantType  items.ArmorType
		wantShield bool
	}{
		{name: "heavy armor", category: "Heavy", wantType: items.ArmorTypeHeavy},
		{name: "light armor", category: "light", wantType: items.ArmorTypeLight},
		{name: "shield", category: "Shield", wantType: items.ArmorTypeShield, wantShield: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := apiArmorToItem(&apiEntities.Armor{
				Key:           "test-armor",
				Name:          "Test Armor",
				ArmorCategory: tt.category,
				ArmorClass:    &apiEntities.ArmorClass{Base: 16},
			})

			require.NotNil(t, item)
			assert.Equal(t, tt.wantType, item.ArmorType)
			assert.Equal(t, 16, item.ArmorValue)
			assert.Equal(t, tt.wantShield, item.HasProperty(items.PropertyShield))
			assert.True(t, items.IsArmorLike(item))
		})
	}
}

func TestApiEquipmentToItem_FocusDetection(t *testing.T) {
	focus := apiEquipmentToItem(&apiEntities.Equipment{Key: "arcane-orb", Name: "Arcane Orb"})
	require.NotNil(t, focus)
	assert.True(t, focus.HasProperty(items.PropertyFocus))
	assert.True(t, items.IsFocusLike(focus))

	mundane := apiEquipmentToItem(&apiEntities.Equipment{Key: "rope", Name: "Hempen Rope"})
	require.NotNil(t, mundane)
	assert.False(t, mundane.HasProperty(items.PropertyFocus))
}
