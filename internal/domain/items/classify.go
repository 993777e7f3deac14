package items

import (
	"github.com/marvelous-hawke/runeforge/internal/domain/runes"
)

// IsWeapon reports whether the item can host weapon-offensive runes.
func IsWeapon(item *Item) bool {
	return item != nil && item.Class == ClassWeapon
}

// IsArmorLike reports whether the item counts as armor or shield equipment.
// Any of an armor slot category, the shield property, or a positive armor
// value qualifies.
func IsArmorLike(item *Item) bool {
	if item == nil || item.Class != ClassEquipment {
		return false
	}

	switch item.ArmorType {
	case ArmorTypeLight, ArmorTypeMedium, ArmorTypeHeavy, ArmorTypeShield:
		return true
	}
	if item.HasProperty(PropertyShield) {
		return true
	}
	return item.ArmorValue > 0
}

// IsFocusLike reports whether the item is a spellcasting focus: non-armor
// equipment carrying the focus property. An item cannot be armor-like and
// focus-like at the same time.
func IsFocusLike(item *Item) bool {
	if item == nil || item.Class != ClassEquipment {
		return false
	}
	if !item.HasProperty(PropertyFocus) {
		return false
	}
	return !IsArmorLike(item)
}

// SupportsRune reports whether the item may host a rune of the given
// category and subtype. Unknown subtypes are never supported.
func SupportsRune(item *Item, category runes.Category, subtype runes.Subtype) bool {
	if item == nil {
		return false
	}

	sub, ok := runes.ParseSubtype(string(subtype))
	if !ok {
		return false
	}

	switch sub {
	case runes.SubtypeArcanePrecision, runes.SubtypeArcaneOppression:
		return IsFocusLike(item)
	case runes.SubtypePrecision, runes.SubtypeDamage, runes.SubtypeElemental:
		return IsWeapon(item)
	case runes.SubtypeReinforcement, runes.SubtypeProtection:
		return IsArmorLike(item)
	default:
		return false
	}
}
