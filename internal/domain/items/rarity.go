package items

import "strings"

// Rarity tiers recognized by the slot policy.
const (
	RarityCommon    = "common"
	RarityUncommon  = "uncommon"
	RarityRare      = "rare"
	RarityVeryRare  = "very-rare"
	RarityLegendary = "legendary"
)

// NormalizeRarity collapses a raw rarity label to one of the known tiers.
// Matching ignores case and whitespace. The literal "rarity" is the host
// sheet's unselected placeholder and counts as common, as does anything
// unrecognized.
func NormalizeRarity(raw string) string {
	s := strings.ToLower(raw)
	s = strings.Join(strings.Fields(s), "")

	switch s {
	case "uncommon":
		return RarityUncommon
	case "rare":
		return RarityRare
	case "veryrare", "very-rare", "very_rare":
		return RarityVeryRare
	case "legendary":
		return RarityLegendary
	default:
		return RarityCommon
	}
}

// MaxRuneSlots returns how many rune sockets the item's rarity grants.
//
// Common        -> 0
// Uncommon/Rare -> 1
// Very Rare     -> 2
// Legendary     -> 3
func MaxRuneSlots(item *Item) int {
	if item == nil {
		return 0
	}

	switch NormalizeRarity(item.Rarity) {
	case RarityUncommon, RarityRare:
		return 1
	case RarityVeryRare:
		return 2
	case RarityLegendary:
		return 3
	default:
		return 0
	}
}
