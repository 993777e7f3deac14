package runes

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/marvelous-hawke/runeforge/internal/domain/items"
	runesdomain "github.com/marvelous-hawke/runeforge/internal/domain/runes"
	apperr "github.com/marvelous-hawke/runeforge/internal/errors"
	"github.com/marvelous-hawke/runeforge/internal/events"
	"github.com/marvelous-hawke/runeforge/internal/repositories/documents"
	"github.com/marvelous-hawke/runeforge/internal/uuid"
)

// Service is the rune socketing engine. Install and remove run the full
// state machine: validation, record mutation, socket occupancy bookkeeping,
// and effect recompilation.
type Service interface {
	// InstallRune sockets a rune item into a host item
	InstallRune(ctx context.Context, hostItemID, runeItemID string) (*InstallResult, error)

	// RemoveRunes removes installed records matching the selector
	RemoveRunes(ctx context.Context, hostItemID string, selector RemoveSelector) (*RemoveResult, error)

	// GetRunes returns the host's installed records
	GetRunes(ctx context.Context, hostItemID string) ([]runesdomain.InstalledRune, error)

	// RecompileWeaponEffects rebuilds a weapon's attack and damage
	// composition from its installed records. No-op for non-weapons.
	RecompileWeaponEffects(ctx context.Context, itemID string) error

	// RecompileActorPassiveBonus rebuilds the actor's consolidated
	// defensive/arcane passive-bonus effect from all equipped items.
	RecompileActorPassiveBonus(ctx context.Context, actorID string) error

	// Shutdown detaches the service from the event bus. No-op when the
	// service was created without one.
	Shutdown()
}

type service struct {
	repo          documents.Repository
	bus           *events.Bus
	uuidGenerator uuid.Generator

	// Per-actor re-entrancy guards for the passive-bonus compiler.
	mu         sync.Mutex
	actorLocks map[string]*semaphore.Weighted
}

// ServiceConfig holds configuration for creating the rune service
type ServiceConfig struct {
	Repository    documents.Repository
	UUIDGenerator uuid.Generator

	// EventBus, when set, delivers the host's item-change notifications.
	// The service subscribes itself so equip and rune-flag changes trigger
	// the passive-bonus compiler without a UI action.
	EventBus *events.Bus
}

// NewService creates a new rune service
func NewService(cfg *ServiceConfig) Service {
	gen := cfg.UUIDGenerator
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}

	svc := &service{
		repo:          cfg.Repository,
		bus:           cfg.EventBus,
		uuidGenerator: gen,
		actorLocks:    make(map[string]*semaphore.Weighted),
	}

	if cfg.EventBus != nil {
		cfg.EventBus.Subscribe(events.EventTypeItemUpdated, svc)
	}

	return svc
}

// GetRunes returns the host's installed records
func (s *service) GetRunes(ctx context.Context, hostItemID string) ([]runesdomain.InstalledRune, error) {
	host, err := s.repo.GetItem(ctx, hostItemID)
	if err != nil {
		return nil, err
	}
	return itemRunes(host), nil
}

// itemRunes reads the installed-rune flag off an item, tolerating absent or
// malformed payloads.
func itemRunes(item *items.Item) []runesdomain.InstalledRune {
	var records []runesdomain.InstalledRune
	if !item.GetFlag(runesdomain.FlagRunes, &records) {
		return nil
	}
	return runesdomain.Sanitize(records)
}

// setItemRunes writes the sanitized record list and persists the host. This
// is the only write path for the record flag.
func (s *service) setItemRunes(ctx context.Context, host *items.Item, records []runesdomain.InstalledRune) error {
	if err := host.SetFlag(runesdomain.FlagRunes, runesdomain.Sanitize(records)); err != nil {
		return err
	}
	return s.repo.SaveItem(ctx, host)
}

// InstallRune sockets a rune item into a host item
func (s *service) InstallRune(ctx context.Context, hostItemID, runeItemID string) (*InstallResult, error) {
	if hostItemID == "" || runeItemID == "" {
		return &InstallResult{Reason: ReasonNoItem}, nil
	}

	host, err := s.repo.GetItem(ctx, hostItemID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return &InstallResult{Reason: ReasonNoItem}, nil
		}
		return nil, err
	}

	runeItem, err := s.repo.GetItem(ctx, runeItemID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return &InstallResult{Reason: ReasonNoItem}, nil
		}
		return nil, err
	}

	record, ok := runeRecordFromItem(runeItem)
	if !ok {
		return &InstallResult{Reason: ReasonInvalidRuneData}, nil
	}

	if !items.SupportsRune(host, record.Category, record.Subtype) {
		return &InstallResult{Reason: ReasonItemNotCompatible}, nil
	}

	// The same rune instance can never sit in two hosts at once.
	if current := socketHost(runeItem); current != "" && current != host.ID {
		return &InstallResult{Reason: ReasonRuneAlreadySocketed, HostID: current}, nil
	}

	records := itemRunes(host)

	// One record per subtype; only a strictly stronger tier replaces.
	for i, existing := range records {
		if existing.Subtype != record.Subtype {
			continue
		}

		if record.Tier.Rank() <= existing.Tier.Rank() {
			blocked := existing
			return &InstallResult{
				Reason:   ReasonRuneWeakerOrEqual,
				Existing: &blocked,
				Total:    len(records),
			}, nil
		}

		replaced := existing
		records[i] = record
		if err := s.setItemRunes(ctx, host, records); err != nil {
			return nil, err
		}

		s.releaseClaim(ctx, replaced.SourceID, host.ID)
		s.claim(ctx, runeItem, host.ID)
		if err := s.recompile(ctx, host); err != nil {
			return nil, err
		}

		added := record
		return &InstallResult{
			OK:       true,
			Reason:   ReasonReplacedWeaker,
			Added:    &added,
			Replaced: &replaced,
			Total:    len(records),
		}, nil
	}

	maxSlots := items.MaxRuneSlots(host)
	if maxSlots <= 0 {
		return &InstallResult{Reason: ReasonNoRuneSlots}, nil
	}
	if len(records) >= maxSlots {
		return &InstallResult{Reason: ReasonNoFreeRuneSlot}, nil
	}

	records = append(records, record)
	if err := s.setItemRunes(ctx, host, records); err != nil {
		return nil, err
	}

	s.claim(ctx, runeItem, host.ID)
	if err := s.recompile(ctx, host); err != nil {
		return nil, err
	}

	added := record
	return &InstallResult{
		OK:     true,
		Reason: ReasonInstalled,
		Added:  &added,
		Total:  len(records),
	}, nil
}

// RemoveRunes removes installed records matching the selector
func (s *service) RemoveRunes(ctx context.Context, hostItemID string, selector RemoveSelector) (*RemoveResult, error) {
	if hostItemID == "" {
		return &RemoveResult{Reason: ReasonNoItem}, nil
	}

	host, err := s.repo.GetItem(ctx, hostItemID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return &RemoveResult{Reason: ReasonNoItem}, nil
		}
		return nil, err
	}

	records := itemRunes(host)
	var kept, removed []runesdomain.InstalledRune
	for _, r := range records {
		if selector.Matches(r) {
			removed = append(removed, r)
		} else {
			kept = append(kept, r)
		}
	}

	if len(removed) == 0 {
		return &RemoveResult{Reason: ReasonNoMatch, Total: len(records)}, nil
	}

	if err := s.setItemRunes(ctx, host, kept); err != nil {
		return nil, err
	}

	for _, r := range removed {
		s.releaseClaim(ctx, r.SourceID, host.ID)
	}

	if err := s.recompile(ctx, host); err != nil {
		return nil, err
	}

	return &RemoveResult{
		OK:      true,
		Reason:  ReasonRemoved,
		Removed: removed,
		Total:   len(kept),
	}, nil
}

// runeRecordFromItem builds an installable record from a rune item's
// descriptive flags. Returns false when the subtype flag is missing or
// unrecognizable.
func runeRecordFromItem(runeItem *items.Item) (runesdomain.InstalledRune, bool) {
	var rawSubtype string
	runeItem.GetFlag(runesdomain.FlagSubtype, &rawSubtype)

	subtype, ok := runesdomain.ParseSubtype(rawSubtype)
	if !ok {
		return runesdomain.InstalledRune{}, false
	}

	var rawTier string
	runeItem.GetFlag(runesdomain.FlagTier, &rawTier)

	record := runesdomain.InstalledRune{
		Category: subtype.Category(),
		Subtype:  subtype,
		Tier:     runesdomain.ParseTier(rawTier),
		SourceID: runeItem.ID,
	}

	if subtype == runesdomain.SubtypeElemental {
		var damageType string
		runeItem.GetFlag(runesdomain.FlagDamageType, &damageType)
		if damageType == "" {
			damageType = runesdomain.DefaultDamageType
		}
		record.DamageType = damageType
	}

	return record, true
}

// recompile refreshes derived state after a successful record mutation:
// the weapon composition when the host is a weapon, and the actor's
// passive-bonus effect when the host belongs to an actor.
func (s *service) recompile(ctx context.Context, host *items.Item) error {
	if items.IsWeapon(host) {
		if err := s.RecompileWeaponEffects(ctx, host.ID); err != nil {
			return err
		}
	}
	if host.ActorID != "" {
		if err := s.RecompileActorPassiveBonus(ctx, host.ActorID); err != nil {
			return err
		}
	}
	return nil
}

// HandleEvent reacts to item document changes: equip-state or rune-record
// changes on an owned item trigger an actor recompile. Implements
// events.EventListener.
func (s *service) HandleEvent(event events.Event) error {
	updated, ok := event.(*events.ItemUpdatedEvent)
	if !ok {
		return nil
	}
	if updated.Item == nil || updated.Item.ActorID == "" {
		return nil
	}
	if !updated.EquippedChanged && !updated.RunesChanged {
		return nil
	}

	if err := s.RecompileActorPassiveBonus(context.Background(), updated.Item.ActorID); err != nil {
		log.Printf("Runes: passive bonus recompile for actor %s failed: %v", updated.Item.ActorID, err)
	}
	return nil
}

// Priority implements events.EventListener.
func (s *service) Priority() int { return 0 }

// ID implements events.EventListener.
func (s *service) ID() string { return "rune-service" }

// Shutdown detaches the service from the event bus
func (s *service) Shutdown() {
	if s.bus != nil {
		s.bus.Unsubscribe(events.EventTypeItemUpdated, s.ID())
	}
}
