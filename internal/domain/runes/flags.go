package runes

// Flag keys in the module's per-document namespace. Host items carry the
// installed record list and weapon baseline; rune items carry their
// descriptive flags and the socket back-reference.
const (
	// FlagRunes is the host item's ordered installed-rune record list.
	FlagRunes = "runes"

	// FlagCategory, FlagSubtype, FlagTier and FlagDamageType are the
	// immutable descriptive flags on a rune item.
	FlagCategory   = "runeCategory"
	FlagSubtype    = "runeSubtype"
	FlagTier       = "runeTier"
	FlagDamageType = "runeDamageType"

	// FlagSocketHost is the rune item's back-reference to the host item
	// currently holding it. Absent when unsocketed.
	FlagSocketHost = "runeSocketHost"

	// FlagWeaponBaseline is the snapshot of a weapon's pre-rune attack and
	// damage numbers, captured once and never overwritten.
	FlagWeaponBaseline = "weaponBaseline"
)

// DefensiveEffectMarker tags the single generated passive-bonus effect on an
// actor so recomputation can find and replace it.
const DefensiveEffectMarker = "runesDefensive"

// DefensiveEffectName is the display name of the generated passive-bonus effect.
const DefensiveEffectName = "Runes (Defensive & Arcane)"
