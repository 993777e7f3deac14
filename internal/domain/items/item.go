package items

import (
	"encoding/json"
	"fmt"
)

// Class is the coarse document type of an inventory item.
type Class string

const (
	ClassWeapon    Class = "weapon"
	ClassEquipment Class = "equipment"
	ClassOther     Class = "other"
)

// ArmorType is the armor slot category for equipment items.
type ArmorType string

const (
	ArmorTypeLight  ArmorType = "light"
	ArmorTypeMedium ArmorType = "medium"
	ArmorTypeHeavy  ArmorType = "heavy"
	ArmorTypeShield ArmorType = "shield"
	ArmorTypeNone   ArmorType = ""
)

// Item property tags mirrored from the host document model.
const (
	PropertyFocus  = "foc"
	PropertyShield = "shd"
)

// DamagePart is one component of a weapon's damage roll.
type DamagePart struct {
	Number int    `json:"number"`
	Die    int    `json:"die"`
	Bonus  int    `json:"bonus,omitempty"`
	Type   string `json:"type,omitempty"`
}

// AttackProfile is a weapon's attack roll composition. Bonus is
// sign-formatted ("+2"); an empty string means no bonus at all, which the
// host renders as an absent field rather than a literal zero.
type AttackProfile struct {
	Bonus string       `json:"bonus,omitempty"`
	Parts []DamagePart `json:"parts,omitempty"`
}

// Item is a typed view of a host inventory document: a weapon, a piece of
// armor-like equipment, a focus, or a rune item. Flags is the module-scoped
// key-value store the host persists per document.
type Item struct {
	ID         string                     `json:"id"`
	ActorID    string                     `json:"actor_id,omitempty"`
	Name       string                     `json:"name"`
	Class      Class                      `json:"class"`
	Rarity     string                     `json:"rarity,omitempty"`
	Equipped   EquippedState              `json:"equipped"`
	Properties []string                   `json:"properties,omitempty"`
	ArmorType  ArmorType                  `json:"armor_type,omitempty"`
	ArmorValue int                        `json:"armor_value,omitempty"`
	Attack     *AttackProfile             `json:"attack,omitempty"`
	Flags      map[string]json.RawMessage `json:"flags,omitempty"`
}

// EquippedState is the item's equipped toggle. It marshals as a plain bool
// but also accepts the {"value": bool} wrapper some hosts persist for
// toggleable states.
type EquippedState bool

func (e *EquippedState) UnmarshalJSON(data []byte) error {
	var plain bool
	if err := json.Unmarshal(data, &plain); err == nil {
		*e = EquippedState(plain)
		return nil
	}
	var wrapped struct {
		Value bool `json:"value"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return fmt.Errorf("equipped state is neither bool nor wrapper: %s", data)
	}
	*e = EquippedState(wrapped.Value)
	return nil
}

// HasProperty checks if the item carries a specific property tag.
func (i *Item) HasProperty(prop string) bool {
	for _, p := range i.Properties {
		if p == prop {
			return true
		}
	}
	return false
}

// GetFlag reads a module flag into out. Returns false when the flag is
// absent. A flag that exists but does not unmarshal into out is treated as
// absent; the store is external and may hold stale shapes.
func (i *Item) GetFlag(key string, out any) bool {
	raw, ok := i.Flags[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false
	}
	return true
}

// SetFlag writes a module flag. The change is local until the item is saved.
func (i *Item) SetFlag(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal flag %q: %w", key, err)
	}
	if i.Flags == nil {
		i.Flags = make(map[string]json.RawMessage)
	}
	i.Flags[key] = raw
	return nil
}

// UnsetFlag removes a module flag.
func (i *Item) UnsetFlag(key string) {
	delete(i.Flags, key)
}

// Clone returns a deep copy of the item.
func (i *Item) Clone() *Item {
	cp := *i
	if i.Properties != nil {
		cp.Properties = append([]string(nil), i.Properties...)
	}
	if i.Attack != nil {
		atk := *i.Attack
		atk.Parts = append([]DamagePart(nil), i.Attack.Parts...)
		cp.Attack = &atk
	}
	if i.Flags != nil {
		cp.Flags = make(map[string]json.RawMessage, len(i.Flags))
		for k, v := range i.Flags {
			cp.Flags[k] = append(json.RawMessage(nil), v...)
		}
	}
	return &cp
}
