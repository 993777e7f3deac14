package runes

import "strings"

// Category groups rune subtypes by the kind of bonus they grant.
type Category string

const (
	CategoryOffensive Category = "offensive"
	CategoryDefensive Category = "defensive"
)

// Subtype is the specific rune effect family.
type Subtype string

const (
	SubtypePrecision        Subtype = "precision"
	SubtypeDamage           Subtype = "damage"
	SubtypeElemental        Subtype = "elemental"
	SubtypeArcanePrecision  Subtype = "arcane-precision"
	SubtypeArcaneOppression Subtype = "arcane-oppression"
	SubtypeReinforcement    Subtype = "reinforcement"
	SubtypeProtection       Subtype = "protection"
)

// DefaultDamageType is applied to elemental runes that carry no explicit
// damage type of their own.
const DefaultDamageType = "fire"

// ParseSubtype normalizes a raw subtype label, collapsing spaces and
// underscores to hyphens. Returns false for unrecognized input.
func ParseSubtype(raw string) (Subtype, bool) {
	norm := strings.ToLower(strings.TrimSpace(raw))
	norm = strings.NewReplacer(" ", "-", "_", "-").Replace(norm)

	switch Subtype(norm) {
	case SubtypePrecision, SubtypeDamage, SubtypeElemental,
		SubtypeArcanePrecision, SubtypeArcaneOppression,
		SubtypeReinforcement, SubtypeProtection:
		return Subtype(norm), true
	default:
		return "", false
	}
}

// Category returns the fixed category for the subtype.
func (s Subtype) Category() Category {
	switch s {
	case SubtypeReinforcement, SubtypeProtection:
		return CategoryDefensive
	default:
		return CategoryOffensive
	}
}

// InstalledRune is one rune record persisted on a host item. The host's
// record list is the single source of truth for what is installed there.
type InstalledRune struct {
	Category   Category `json:"runeCategory"`
	Subtype    Subtype  `json:"runeSubtype"`
	Tier       Tier     `json:"runeTier"`
	DamageType string   `json:"runeDamageType,omitempty"`
	SourceID   string   `json:"runeSourceId"`
}

// Sanitize filters out malformed records. Entries with no recognizable
// subtype are dropped; missing tiers default to lesser.
func Sanitize(records []InstalledRune) []InstalledRune {
	clean := make([]InstalledRune, 0, len(records))
	for _, r := range records {
		sub, ok := ParseSubtype(string(r.Subtype))
		if !ok {
			continue
		}
		r.Subtype = sub
		r.Category = sub.Category()
		r.Tier = ParseTier(string(r.Tier))
		if sub == SubtypeElemental && r.DamageType == "" {
			r.DamageType = DefaultDamageType
		}
		if sub != SubtypeElemental {
			r.DamageType = ""
		}
		clean = append(clean, r)
	}
	return clean
}
