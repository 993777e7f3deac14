package runes_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/marvelous-hawke/runeforge/internal/domain/items"
	runesdomain "github.com/marvelous-hawke/runeforge/internal/domain/runes"
	"github.com/marvelous-hawke/runeforge/internal/events"
	"github.com/marvelous-hawke/runeforge/internal/repositories/documents"
	runeservice "github.com/marvelous-hawke/runeforge/internal/services/runes"
	"github.com/marvelous-hawke/runeforge/internal/testutils"
)

type ServiceTestSuite struct {
	suite.Suite
	ctx  context.Context
	bus  *events.Bus
	repo documents.Repository
	svc  runeservice.Service
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.bus = events.NewBus()
	s.repo = documents.NewInMemoryRepository(&documents.InMemoryConfig{EventBus: s.bus})
	s.svc = runeservice.NewService(&runeservice.ServiceConfig{
		Repository: s.repo,
		EventBus:   s.bus,
	})
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) createActorWithWeapon(rarity string) *items.Item {
	s.Require().NoError(s.repo.CreateActor(s.ctx, testutils.CreateTestActor("actor-1", "Hawke")))
	weapon := testutils.CreateTestWeapon("weapon-1", "actor-1", rarity)
	s.Require().NoError(s.repo.CreateItem(s.ctx, weapon))
	return weapon
}

func (s *ServiceTestSuite) createRune(id string, subtype runesdomain.Subtype, tier runesdomain.Tier) *items.Item {
	r := testutils.CreateTestRune(id, subtype, tier)
	s.Require().NoError(s.repo.CreateItem(s.ctx, r))
	return r
}

func (s *ServiceTestSuite) weaponAttackBonus(id string) string {
	item, err := s.repo.GetItem(s.ctx, id)
	s.Require().NoError(err)
	s.Require().NotNil(item.Attack)
	return item.Attack.Bonus
}

// Scenario: legendary weapon, escalating precision runes.
func (s *ServiceTestSuite) TestInstall_StrongestWinsProgression() {
	s.createActorWithWeapon("legendary")
	lesser := s.createRune("rune-lesser", runesdomain.SubtypePrecision, runesdomain.TierLesser)
	greater := s.createRune("rune-greater", runesdomain.SubtypePrecision, runesdomain.TierGreater)
	secondLesser := s.createRune("rune-lesser-2", runesdomain.SubtypePrecision, runesdomain.TierLesser)

	// Fresh legendary weapon: three slots, nothing installed.
	records, err := s.svc.GetRunes(s.ctx, "weapon-1")
	s.Require().NoError(err)
	s.Empty(records)

	result, err := s.svc.InstallRune(s.ctx, "weapon-1", lesser.ID)
	s.Require().NoError(err)
	s.True(result.OK)
	s.Equal(runeservice.ReasonInstalled, result.Reason)
	s.Equal(1, result.Total)
	s.Equal("+1", s.weaponAttackBonus("weapon-1"))

	// A strictly stronger rune replaces in place.
	result, err = s.svc.InstallRune(s.ctx, "weapon-1", greater.ID)
	s.Require().NoError(err)
	s.True(result.OK)
	s.Equal(runeservice.ReasonReplacedWeaker, result.Reason)
	s.Equal(1, result.Total)
	s.Require().NotNil(result.Replaced)
	s.Equal(runesdomain.TierLesser, result.Replaced.Tier)
	s.Equal("+2", s.weaponAttackBonus("weapon-1"))

	// A weaker rune bounces without mutating anything.
	result, err = s.svc.InstallRune(s.ctx, "weapon-1", secondLesser.ID)
	s.Require().NoError(err)
	s.False(result.OK)
	s.Equal(runeservice.ReasonRuneWeakerOrEqual, result.Reason)
	s.Require().NotNil(result.Existing)
	s.Equal(runesdomain.TierGreater, result.Existing.Tier)
	s.Equal("+2", s.weaponAttackBonus("weapon-1"))

	records, err = s.svc.GetRunes(s.ctx, "weapon-1")
	s.Require().NoError(err)
	s.Len(records, 1)
}

func (s *ServiceTestSuite) TestInstall_EqualTierDoesNotReplace() {
	s.createActorWithWeapon("legendary")
	first := s.createRune("rune-a", runesdomain.SubtypeDamage, runesdomain.TierGreater)
	second := s.createRune("rune-b", runesdomain.SubtypeDamage, runesdomain.TierGreater)

	result, err := s.svc.InstallRune(s.ctx, "weapon-1", first.ID)
	s.Require().NoError(err)
	s.True(result.OK)

	result, err = s.svc.InstallRune(s.ctx, "weapon-1", second.ID)
	s.Require().NoError(err)
	s.False(result.OK)
	s.Equal(runeservice.ReasonRuneWeakerOrEqual, result.Reason)
}

func (s *ServiceTestSuite) TestInstall_SlotPolicy() {
	s.Require().NoError(s.repo.CreateActor(s.ctx, testutils.CreateTestActor("actor-1", "Hawke")))

	// Common rarity grants zero sockets.
	shield := testutils.CreateTestArmor("shield-1", "actor-1", "common")
	s.Require().NoError(s.repo.CreateItem(s.ctx, shield))
	reinforcement := s.createRune("rune-r", runesdomain.SubtypeReinforcement, runesdomain.TierLesser)

	result, err := s.svc.InstallRune(s.ctx, "shield-1", reinforcement.ID)
	s.Require().NoError(err)
	s.False(result.OK)
	s.Equal(runeservice.ReasonNoRuneSlots, result.Reason)

	// Uncommon weapon holds one rune; a second distinct subtype finds no slot.
	weapon := testutils.CreateTestWeapon("weapon-1", "actor-1", "uncommon")
	s.Require().NoError(s.repo.CreateItem(s.ctx, weapon))
	precision := s.createRune("rune-p", runesdomain.SubtypePrecision, runesdomain.TierLesser)
	damage := s.createRune("rune-d", runesdomain.SubtypeDamage, runesdomain.TierLesser)

	result, err = s.svc.InstallRune(s.ctx, "weapon-1", precision.ID)
	s.Require().NoError(err)
	s.True(result.OK)

	result, err = s.svc.InstallRune(s.ctx, "weapon-1", damage.ID)
	s.Require().NoError(err)
	s.False(result.OK)
	s.Equal(runeservice.ReasonNoFreeRuneSlot, result.Reason)

	// Slot ceiling invariant holds after the failed attempt.
	records, err := s.svc.GetRunes(s.ctx, "weapon-1")
	s.Require().NoError(err)
	s.Len(records, 1)
}

func (s *ServiceTestSuite) TestInstall_SubtypeUniqueness() {
	s.createActorWithWeapon("legendary")
	s.createRune("rune-p1", runesdomain.SubtypePrecision, runesdomain.TierLesser)
	s.createRune("rune-p2", runesdomain.SubtypePrecision, runesdomain.TierGreater)
	s.createRune("rune-d1", runesdomain.SubtypeDamage, runesdomain.TierLesser)

	for _, id := range []string{"rune-p1", "rune-p2", "rune-d1"} {
		_, err := s.svc.InstallRune(s.ctx, "weapon-1", id)
		s.Require().NoError(err)
	}

	records, err := s.svc.GetRunes(s.ctx, "weapon-1")
	s.Require().NoError(err)
	s.Len(records, 2)

	seen := make(map[runesdomain.Subtype]bool)
	for _, r := range records {
		s.False(seen[r.Subtype], "subtype %s appears twice", r.Subtype)
		seen[r.Subtype] = true
	}
}

func (s *ServiceTestSuite) TestInstall_Compatibility() {
	s.createActorWithWeapon("legendary")
	reinforcement := s.createRune("rune-r", runesdomain.SubtypeReinforcement, runesdomain.TierLesser)

	result, err := s.svc.InstallRune(s.ctx, "weapon-1", reinforcement.ID)
	s.Require().NoError(err)
	s.False(result.OK)
	s.Equal(runeservice.ReasonItemNotCompatible, result.Reason)
}

func (s *ServiceTestSuite) TestInstall_InvalidRuneData() {
	s.createActorWithWeapon("legendary")

	// An item without a subtype flag is not a rune.
	notARune := &items.Item{ID: "pebble", Name: "Pebble", Class: items.ClassOther}
	s.Require().NoError(s.repo.CreateItem(s.ctx, notARune))

	result, err := s.svc.InstallRune(s.ctx, "weapon-1", "pebble")
	s.Require().NoError(err)
	s.False(result.OK)
	s.Equal(runeservice.ReasonInvalidRuneData, result.Reason)
}

func (s *ServiceTestSuite) TestInstall_MissingDocuments() {
	result, err := s.svc.InstallRune(s.ctx, "", "rune-1")
	s.Require().NoError(err)
	s.Equal(runeservice.ReasonNoItem, result.Reason)

	result, err = s.svc.InstallRune(s.ctx, "ghost-item", "ghost-rune")
	s.Require().NoError(err)
	s.Equal(runeservice.ReasonNoItem, result.Reason)
}

func (s *ServiceTestSuite) TestInstall_ExclusiveOccupancy() {
	s.Require().NoError(s.repo.CreateActor(s.ctx, testutils.CreateTestActor("actor-1", "Hawke")))
	weaponA := testutils.CreateTestWeapon("weapon-a", "actor-1", "legendary")
	weaponB := testutils.CreateTestWeapon("weapon-b", "actor-1", "legendary")
	s.Require().NoError(s.repo.CreateItem(s.ctx, weaponA))
	s.Require().NoError(s.repo.CreateItem(s.ctx, weaponB))
	precision := s.createRune("rune-p", runesdomain.SubtypePrecision, runesdomain.TierLesser)

	result, err := s.svc.InstallRune(s.ctx, "weapon-a", precision.ID)
	s.Require().NoError(err)
	s.Require().True(result.OK)

	result, err = s.svc.InstallRune(s.ctx, "weapon-b", precision.ID)
	s.Require().NoError(err)
	s.False(result.OK)
	s.Equal(runeservice.ReasonRuneAlreadySocketed, result.Reason)
	s.Equal("weapon-a", result.HostID)

	// Weapon B's record list is untouched.
	records, err := s.svc.GetRunes(s.ctx, "weapon-b")
	s.Require().NoError(err)
	s.Empty(records)

	// After removal from A, B accepts the rune.
	removeResult, err := s.svc.RemoveRunes(s.ctx, "weapon-a", runeservice.RemoveSelector{SourceID: precision.ID})
	s.Require().NoError(err)
	s.Require().True(removeResult.OK)

	result, err = s.svc.InstallRune(s.ctx, "weapon-b", precision.ID)
	s.Require().NoError(err)
	s.True(result.OK)
}

func (s *ServiceTestSuite) TestRemove_Selectors() {
	s.createActorWithWeapon("legendary")
	s.createRune("rune-p", runesdomain.SubtypePrecision, runesdomain.TierLesser)
	s.createRune("rune-d", runesdomain.SubtypeDamage, runesdomain.TierLesser)
	elemental := testutils.CreateTestElementalRune("rune-e", runesdomain.TierGreater, "cold")
	s.Require().NoError(s.repo.CreateItem(s.ctx, elemental))

	for _, id := range []string{"rune-p", "rune-d", "rune-e"} {
		result, err := s.svc.InstallRune(s.ctx, "weapon-1", id)
		s.Require().NoError(err)
		s.Require().True(result.OK)
	}

	// No match leaves everything in place.
	result, err := s.svc.RemoveRunes(s.ctx, "weapon-1", runeservice.RemoveSelector{Subtype: runesdomain.SubtypeProtection})
	s.Require().NoError(err)
	s.False(result.OK)
	s.Equal(runeservice.ReasonNoMatch, result.Reason)
	s.Equal(3, result.Total)

	// By subtype.
	result, err = s.svc.RemoveRunes(s.ctx, "weapon-1", runeservice.RemoveSelector{Subtype: runesdomain.SubtypePrecision})
	s.Require().NoError(err)
	s.True(result.OK)
	s.Equal(runeservice.ReasonRemoved, result.Reason)
	s.Len(result.Removed, 1)
	s.Equal(2, result.Total)

	// By source rune item.
	result, err = s.svc.RemoveRunes(s.ctx, "weapon-1", runeservice.RemoveSelector{SourceID: "rune-e"})
	s.Require().NoError(err)
	s.True(result.OK)
	s.Equal(1, result.Total)

	// The released rune can be socketed elsewhere again.
	released, err := s.repo.GetItem(s.ctx, "rune-e")
	s.Require().NoError(err)
	var host string
	if released.GetFlag(runesdomain.FlagSocketHost, &host) {
		s.Empty(host)
	}

	// All.
	result, err = s.svc.RemoveRunes(s.ctx, "weapon-1", runeservice.RemoveSelector{All: true})
	s.Require().NoError(err)
	s.True(result.OK)
	s.Equal(0, result.Total)

	records, err := s.svc.GetRunes(s.ctx, "weapon-1")
	s.Require().NoError(err)
	s.Empty(records)
}
