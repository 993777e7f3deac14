package runes

import "strings"

// Tier is the power level of a rune.
type Tier string

const (
	TierLesser  Tier = "lesser"
	TierGreater Tier = "greater"
	TierMajor   Tier = "major"
)

// ParseTier normalizes a raw tier label. Unrecognized or empty input is
// treated as lesser. "superior" is a legacy alias for major that still
// exists in older item data.
func ParseTier(raw string) Tier {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "greater":
		return TierGreater
	case "major", "superior":
		return TierMajor
	default:
		return TierLesser
	}
}

// Bonus returns the flat numeric bonus granted by the tier.
func (t Tier) Bonus() int {
	switch t {
	case TierGreater:
		return 2
	case TierMajor:
		return 3
	default:
		return 1
	}
}

// Die returns the damage die size for elemental runes of this tier.
func (t Tier) Die() int {
	switch t {
	case TierGreater:
		return 6
	case TierMajor:
		return 8
	default:
		return 4
	}
}

// Rank returns the ordinal used for strict strength comparison.
// Unrecognized tiers rank as lesser (weakest).
func (t Tier) Rank() int {
	switch t {
	case TierGreater:
		return 1
	case TierMajor:
		return 2
	default:
		return 0
	}
}
