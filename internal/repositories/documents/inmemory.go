package documents

import (
	"bytes"
	"context"
	"sync"

	"github.com/marvelous-hawke/runeforge/internal/domain/actors"
	"github.com/marvelous-hawke/runeforge/internal/domain/items"
	"github.com/marvelous-hawke/runeforge/internal/domain/runes"
	apperr "github.com/marvelous-hawke/runeforge/internal/errors"
	"github.com/marvelous-hawke/runeforge/internal/events"
)

// InMemoryRepository is an in-memory implementation of the document
// repository. Useful for testing and development.
type InMemoryRepository struct {
	mu     sync.RWMutex
	items  map[string]*items.Item
	actors map[string]*actors.Actor
	bus    *events.Bus
}

// InMemoryConfig holds configuration for the in-memory repository
type InMemoryConfig struct {
	// EventBus receives ItemUpdated events on watched-field changes. Optional.
	EventBus *events.Bus
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository(cfg *InMemoryConfig) *InMemoryRepository {
	repo := &InMemoryRepository{
		items:  make(map[string]*items.Item),
		actors: make(map[string]*actors.Actor),
	}
	if cfg != nil {
		repo.bus = cfg.EventBus
	}
	return repo
}

// CreateItem stores a new item document
func (r *InMemoryRepository) CreateItem(ctx context.Context, item *items.Item) error {
	if item == nil {
		return apperr.InvalidArgument("item cannot be nil")
	}
	if item.ID == "" {
		return apperr.InvalidArgument("item ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; exists {
		return apperr.AlreadyExistsf("item with ID '%s' already exists", item.ID).
			WithMeta("item_id", item.ID)
	}

	r.items[item.ID] = item.Clone()
	return nil
}

// GetItem retrieves an item document by ID
func (r *InMemoryRepository) GetItem(ctx context.Context, id string) (*items.Item, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("item ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[id]
	if !exists {
		return nil, apperr.NotFoundf("item with ID '%s' not found", id).
			WithMeta("item_id", id)
	}

	return item.Clone(), nil
}

// SaveItem persists the full state of an existing item document
func (r *InMemoryRepository) SaveItem(ctx context.Context, item *items.Item) error {
	if item == nil {
		return apperr.InvalidArgument("item cannot be nil")
	}
	if item.ID == "" {
		return apperr.InvalidArgument("item ID is required")
	}

	r.mu.Lock()
	old, exists := r.items[item.ID]
	if !exists {
		r.mu.Unlock()
		return apperr.NotFoundf("item with ID '%s' not found", item.ID).
			WithMeta("item_id", item.ID)
	}
	stored := item.Clone()
	r.items[item.ID] = stored
	r.mu.Unlock()

	r.emitItemUpdated(old, stored)
	return nil
}

// DeleteItem removes an item document
func (r *InMemoryRepository) DeleteItem(ctx context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("item ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[id]; !exists {
		return apperr.NotFoundf("item with ID '%s' not found", id)
	}

	delete(r.items, id)
	return nil
}

// ListActorItems retrieves all item documents owned by an actor
func (r *InMemoryRepository) ListActorItems(ctx context.Context, actorID string) ([]*items.Item, error) {
	if actorID == "" {
		return nil, apperr.InvalidArgument("actor ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*items.Item
	for _, item := range r.items {
		if item.ActorID == actorID {
			result = append(result, item.Clone())
		}
	}

	return result, nil
}

// CreateActor stores a new actor document
func (r *InMemoryRepository) CreateActor(ctx context.Context, actor *actors.Actor) error {
	if actor == nil {
		return apperr.InvalidArgument("actor cannot be nil")
	}
	if actor.ID == "" {
		return apperr.InvalidArgument("actor ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.actors[actor.ID]; exists {
		return apperr.AlreadyExistsf("actor with ID '%s' already exists", actor.ID).
			WithMeta("actor_id", actor.ID)
	}

	r.actors[actor.ID] = actor.Clone()
	return nil
}

// GetActor retrieves an actor document by ID
func (r *InMemoryRepository) GetActor(ctx context.Context, id string) (*actors.Actor, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("actor ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	actor, exists := r.actors[id]
	if !exists {
		return nil, apperr.NotFoundf("actor with ID '%s' not found", id).
			WithMeta("actor_id", id)
	}

	return actor.Clone(), nil
}

// CreateActorEffect attaches a generated effect to an actor
func (r *InMemoryRepository) CreateActorEffect(ctx context.Context, actorID string, effect *actors.Effect) error {
	if actorID == "" {
		return apperr.InvalidArgument("actor ID is required")
	}
	if effect == nil || effect.ID == "" {
		return apperr.InvalidArgument("effect with an ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	actor, exists := r.actors[actorID]
	if !exists {
		return apperr.NotFoundf("actor with ID '%s' not found", actorID)
	}

	actor.Effects = append(actor.Effects, effect)
	return nil
}

// DeleteActorEffect removes a generated effect from an actor
func (r *InMemoryRepository) DeleteActorEffect(ctx context.Context, actorID, effectID string) error {
	if actorID == "" {
		return apperr.InvalidArgument("actor ID is required")
	}
	if effectID == "" {
		return apperr.InvalidArgument("effect ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	actor, exists := r.actors[actorID]
	if !exists {
		return apperr.NotFoundf("actor with ID '%s' not found", actorID)
	}

	for i, e := range actor.Effects {
		if e.ID == effectID {
			actor.Effects = append(actor.Effects[:i], actor.Effects[i+1:]...)
			return nil
		}
	}

	return apperr.NotFoundf("effect with ID '%s' not found on actor '%s'", effectID, actorID)
}

// emitItemUpdated notifies listeners when a save changed the equipped state
// or the installed-rune flag.
func (r *InMemoryRepository) emitItemUpdated(old, updated *items.Item) {
	if r.bus == nil {
		return
	}

	equippedChanged := old.Equipped != updated.Equipped
	runesChanged := !bytes.Equal(old.Flags[runes.FlagRunes], updated.Flags[runes.FlagRunes])
	if !equippedChanged && !runesChanged {
		return
	}

	// Best effort: the compilers driven by this event read idempotent state.
	_ = r.bus.Emit(events.NewItemUpdatedEvent(updated.Clone(), equippedChanged, runesChanged))
}
