package runes

import (
	"context"
	"log"

	"golang.org/x/sync/semaphore"

	"github.com/marvelous-hawke/runeforge/internal/domain/actors"
	runesdomain "github.com/marvelous-hawke/runeforge/internal/domain/runes"
)

// actorLock returns the re-entrancy guard for one actor, creating it on
// first use. Guards are per actor so unrelated actors never block each other.
func (s *service) actorLock(actorID string) *semaphore.Weighted {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.actorLocks[actorID]
	if !ok {
		lock = semaphore.NewWeighted(1)
		s.actorLocks[actorID] = lock
	}
	return lock
}

// RecompileActorPassiveBonus rebuilds the actor's consolidated
// defensive/arcane passive-bonus effect from all equipped items.
//
// The delete-then-recreate sequence is not safe under interleaving, so a
// run already in progress for the actor causes this call to be dropped.
// Dropped calls are harmless: the compiler is driven by idempotent state
// and the triggering change will be picked up by the in-flight run or the
// next one.
func (s *service) RecompileActorPassiveBonus(ctx context.Context, actorID string) error {
	lock := s.actorLock(actorID)
	if !lock.TryAcquire(1) {
		log.Printf("Runes: passive bonus recompile already running for actor %s, skipping", actorID)
		return nil
	}
	defer lock.Release(1)

	actor, err := s.repo.GetActor(ctx, actorID)
	if err != nil {
		return err
	}

	// Replace wholesale: drop every previously generated effect first.
	for _, effect := range actor.FindEffects(runesdomain.DefensiveEffectMarker) {
		if err := s.repo.DeleteActorEffect(ctx, actorID, effect.ID); err != nil {
			return err
		}
	}

	inventory, err := s.repo.ListActorItems(ctx, actorID)
	if err != nil {
		return err
	}

	var acTotal, saveTotal, spellAttackTotal, spellDCTotal int
	for _, item := range inventory {
		if !item.Equipped {
			continue
		}

		for _, r := range itemRunes(item) {
			switch r.Subtype {
			case runesdomain.SubtypeReinforcement:
				acTotal += r.Tier.Bonus()
			case runesdomain.SubtypeProtection:
				saveTotal += r.Tier.Bonus()
			case runesdomain.SubtypeArcanePrecision:
				spellAttackTotal += r.Tier.Bonus()
			case runesdomain.SubtypeArcaneOppression:
				spellDCTotal += r.Tier.Bonus()
			}
		}
	}

	// No bonuses means no effect at all; absence is the signal.
	if acTotal == 0 && saveTotal == 0 && spellAttackTotal == 0 && spellDCTotal == 0 {
		return nil
	}

	var changes []actors.EffectChange
	if acTotal != 0 {
		changes = append(changes, actors.EffectChange{
			Key:   actors.ChangeKeyACBonus,
			Mode:  actors.ModeAdd,
			Value: signBonus(acTotal),
		})
	}
	if saveTotal != 0 {
		changes = append(changes, actors.EffectChange{
			Key:   actors.ChangeKeySaveBonus,
			Mode:  actors.ModeAdd,
			Value: signBonus(saveTotal),
		})
	}
	if spellAttackTotal != 0 {
		// The host tracks melee and ranged spell attacks separately.
		changes = append(changes,
			actors.EffectChange{
				Key:   actors.ChangeKeyMeleeSpellAttack,
				Mode:  actors.ModeAdd,
				Value: signBonus(spellAttackTotal),
			},
			actors.EffectChange{
				Key:   actors.ChangeKeyRangedSpellAttack,
				Mode:  actors.ModeAdd,
				Value: signBonus(spellAttackTotal),
			},
		)
	}
	if spellDCTotal != 0 {
		changes = append(changes, actors.EffectChange{
			Key:   actors.ChangeKeySpellDC,
			Mode:  actors.ModeAdd,
			Value: signBonus(spellDCTotal),
		})
	}

	effect := &actors.Effect{
		ID:      s.uuidGenerator.New(),
		Name:    runesdomain.DefensiveEffectName,
		Origin:  actorID,
		Changes: changes,
		Flags:   map[string]bool{runesdomain.DefensiveEffectMarker: true},
	}

	return s.repo.CreateActorEffect(ctx, actorID, effect)
}
