package items

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marvelous-hawke/runeforge/internal/domain/runes"
)

func weapon() *Item {
	return &Item{ID: "w1", Name: "Longsword", Class: ClassWeapon}
}

func armor(at ArmorType) *Item {
	return &Item{ID: "a1", Name: "Chain Mail", Class: ClassEquipment, ArmorType: at}
}

func focus() *Item {
	return &Item{ID: "f1", Name: "Arcane Orb", Class: ClassEquipment, Properties: []string{PropertyFocus}}
}

func TestIsWeapon(t *testing.T) {
	assert.True(t, IsWeapon(weapon()))
	assert.False(t, IsWeapon(armor(ArmorTypeLight)))
	assert.False(t, IsWeapon(nil))
}

func TestIsArmorLike(t *testing.T) {
	assert.True(t, IsArmorLike(armor(ArmorTypeLight)))
	assert.True(t, IsArmorLike(armor(ArmorTypeHeavy)))
	assert.True(t, IsArmorLike(armor(ArmorTypeShield)))

	// shield property alone qualifies
	shield := &Item{Class: ClassEquipment, Properties: []string{PropertyShield}}
	assert.True(t, IsArmorLike(shield))

	// explicit armor value alone qualifies
	bracers := &Item{Class: ClassEquipment, ArmorValue: 1}
	assert.True(t, IsArmorLike(bracers))

	assert.False(t, IsArmorLike(weapon()))
	assert.False(t, IsArmorLike(focus()))
	assert.False(t, IsArmorLike(&Item{Class: ClassEquipment}))
}

func TestIsFocusLike(t *testing.T) {
	assert.True(t, IsFocusLike(focus()))

	// armor-like equipment is never a focus, even with the tag
	armored := focus()
	armored.ArmorType = ArmorTypeLight
	assert.False(t, IsFocusLike(armored))

	assert.False(t, IsFocusLike(weapon()))
	assert.False(t, IsFocusLike(&Item{Class: ClassEquipment}))
}

func TestSupportsRune(t *testing.T) {
	tests := []struct {
		name    string
		item    *Item
		subtype runes.Subtype
		want    bool
	}{
		{"precision on weapon", weapon(), runes.SubtypePrecision, true},
		{"damage on weapon", weapon(), runes.SubtypeDamage, true},
		{"elemental on weapon", weapon(), runes.SubtypeElemental, true},
		{"precision on armor", armor(ArmorTypeLight), runes.SubtypePrecision, false},
		{"reinforcement on armor", armor(ArmorTypeMedium), runes.SubtypeReinforcement, true},
		{"protection on armor", armor(ArmorTypeShield), runes.SubtypeProtection, true},
		{"reinforcement on weapon", weapon(), runes.SubtypeReinforcement, false},
		{"arcane-precision on focus", focus(), runes.SubtypeArcanePrecision, true},
		{"arcane-oppression on focus", focus(), runes.SubtypeArcaneOppression, true},
		{"arcane-precision on weapon", weapon(), runes.SubtypeArcanePrecision, false},
		{"arcane-precision on armor", armor(ArmorTypeLight), runes.SubtypeArcanePrecision, false},
		{"unknown subtype", weapon(), runes.Subtype("sharpness"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SupportsRune(tt.item, tt.subtype.Category(), tt.subtype)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.False(t, SupportsRune(nil, runes.CategoryOffensive, runes.SubtypePrecision))
}

func TestNormalizeRarity(t *testing.T) {
	assert.Equal(t, RarityCommon, NormalizeRarity(""))
	assert.Equal(t, RarityCommon, NormalizeRarity("rarity")) // sheet placeholder
	assert.Equal(t, RarityCommon, NormalizeRarity("artifact"))
	assert.Equal(t, RarityUncommon, NormalizeRarity("Uncommon"))
	assert.Equal(t, RarityVeryRare, NormalizeRarity("Very Rare"))
	assert.Equal(t, RarityVeryRare, NormalizeRarity("very_rare"))
	assert.Equal(t, RarityLegendary, NormalizeRarity(" LEGENDARY "))
}

func TestMaxRuneSlots(t *testing.T) {
	slots := func(rarity string) int {
		w := weapon()
		w.Rarity = rarity
		return MaxRuneSlots(w)
	}

	assert.Equal(t, 0, slots(""))
	assert.Equal(t, 0, slots("common"))
	assert.Equal(t, 1, slots("uncommon"))
	assert.Equal(t, 1, slots("rare"))
	assert.Equal(t, 2, slots("Very Rare"))
	assert.Equal(t, 3, slots("legendary"))
	assert.Equal(t, 0, MaxRuneSlots(nil))
}
