package runes

import (
	"context"
	"fmt"
	"strconv"

	"github.com/marvelous-hawke/runeforge/internal/domain/items"
	runesdomain "github.com/marvelous-hawke/runeforge/internal/domain/runes"
)

// weaponBaseline is the snapshot of a weapon's pre-rune numbers, captured on
// the first recompilation and reused verbatim afterwards so repeated
// recompiles never compound bonuses.
type weaponBaseline struct {
	AttackBonus int                `json:"attackBonus"`
	DamageBonus int                `json:"damageBonus"`
	PrimaryPart *items.DamagePart  `json:"primaryPart,omitempty"`
	ExtraParts  []items.DamagePart `json:"extraParts,omitempty"`
}

// RecompileWeaponEffects rebuilds a weapon's attack and damage composition
// from its installed records. No-op for non-weapons.
func (s *service) RecompileWeaponEffects(ctx context.Context, itemID string) error {
	host, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return err
	}

	if !items.IsWeapon(host) {
		return nil
	}

	baseline, err := s.weaponBaseline(host)
	if err != nil {
		return err
	}

	var precisionTotal, flatDamageTotal int
	var elementalParts []items.DamagePart

	for _, r := range itemRunes(host) {
		switch r.Subtype {
		case runesdomain.SubtypePrecision:
			precisionTotal += r.Tier.Bonus()
		case runesdomain.SubtypeDamage:
			flatDamageTotal += r.Tier.Bonus()
		case runesdomain.SubtypeElemental:
			elementalParts = append(elementalParts, items.DamagePart{
				Number: 1,
				Die:    r.Tier.Die(),
				Type:   r.DamageType,
			})
		}
	}

	attack := &items.AttackProfile{
		Bonus: signBonus(baseline.AttackBonus + precisionTotal),
	}

	// Fixed write order: primary part, pre-rune extras, rune elementals.
	if baseline.PrimaryPart != nil {
		primary := *baseline.PrimaryPart
		primary.Bonus = baseline.DamageBonus + flatDamageTotal
		attack.Parts = append(attack.Parts, primary)
	}
	attack.Parts = append(attack.Parts, baseline.ExtraParts...)
	attack.Parts = append(attack.Parts, elementalParts...)

	host.Attack = attack
	return s.repo.SaveItem(ctx, host)
}

// weaponBaseline returns the stored baseline, capturing it from the
// weapon's current numbers when absent.
func (s *service) weaponBaseline(host *items.Item) (*weaponBaseline, error) {
	var baseline weaponBaseline
	if host.GetFlag(runesdomain.FlagWeaponBaseline, &baseline) {
		return &baseline, nil
	}

	if host.Attack != nil {
		bonus, err := parseSignedBonus(host.Attack.Bonus)
		if err != nil {
			return nil, fmt.Errorf("weapon %s has malformed attack bonus %q: %w", host.ID, host.Attack.Bonus, err)
		}
		baseline.AttackBonus = bonus

		if len(host.Attack.Parts) > 0 {
			primary := host.Attack.Parts[0]
			baseline.DamageBonus = primary.Bonus
			baseline.PrimaryPart = &primary
			baseline.ExtraParts = append([]items.DamagePart(nil), host.Attack.Parts[1:]...)
		}
	}

	if err := host.SetFlag(runesdomain.FlagWeaponBaseline, &baseline); err != nil {
		return nil, err
	}
	return &baseline, nil
}

// signBonus renders a bonus with an explicit sign. Zero renders as an empty
// string, which the host treats as an absent bonus rather than a "+0".
func signBonus(n int) string {
	if n == 0 {
		return ""
	}
	if n > 0 {
		return fmt.Sprintf("+%d", n)
	}
	return strconv.Itoa(n)
}

func parseSignedBonus(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
