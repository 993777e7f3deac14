package actors

// ChangeMode is how an effect change combines with the base value.
type ChangeMode string

const (
	ModeAdd ChangeMode = "add"
)

// Change keys understood by the host's actor data model.
const (
	ChangeKeyACBonus           = "system.attributes.ac.bonus"
	ChangeKeySaveBonus         = "system.bonuses.abilities.save"
	ChangeKeyMeleeSpellAttack  = "system.bonuses.msak.attack"
	ChangeKeyRangedSpellAttack = "system.bonuses.rsak.attack"
	ChangeKeySpellDC           = "system.bonuses.spell.dc"
)

// EffectChange is a single additive modification an effect applies.
type EffectChange struct {
	Key   string     `json:"key"`
	Mode  ChangeMode `json:"mode"`
	Value string     `json:"value"`
}

// Effect is a generated status-like modifier attached to an actor. Flags
// carry module markers so generated effects can be found and replaced
// wholesale on recomputation.
type Effect struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Origin   string          `json:"origin,omitempty"`
	Disabled bool            `json:"disabled"`
	Changes  []EffectChange  `json:"changes,omitempty"`
	Flags    map[string]bool `json:"flags,omitempty"`
}
