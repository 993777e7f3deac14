package documents

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/marvelous-hawke/runeforge/internal/domain/actors"
	"github.com/marvelous-hawke/runeforge/internal/domain/items"
	runesdomain "github.com/marvelous-hawke/runeforge/internal/domain/runes"
	apperr "github.com/marvelous-hawke/runeforge/internal/errors"
	"github.com/marvelous-hawke/runeforge/internal/events"
)

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client redis.UniversalClient
	bus    *events.Bus
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient

	// EventBus receives ItemUpdated events on watched-field changes. Optional.
	EventBus *events.Bus
}

// NewRedisRepository creates a Redis-backed document repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	return &redisRepo{
		client: cfg.Client,
		bus:    cfg.EventBus,
	}
}

func itemKey(id string) string {
	return fmt.Sprintf("item:%s", id)
}

func actorKey(id string) string {
	return fmt.Sprintf("actor:%s", id)
}

func actorItemsKey(actorID string) string {
	return fmt.Sprintf("actor:%s:items", actorID)
}

// CreateItem stores a new item document
func (r *redisRepo) CreateItem(ctx context.Context, item *items.Item) error {
	if item == nil {
		return apperr.InvalidArgument("item cannot be nil")
	}
	if item.ID == "" {
		return apperr.InvalidArgument("item ID is required")
	}

	exists, err := r.client.Exists(ctx, itemKey(item.ID)).Result()
	if err != nil {
		return apperr.Wrapf(err, "failed to check item '%s'", item.ID)
	}
	if exists > 0 {
		return apperr.AlreadyExistsf("item with ID '%s' already exists", item.ID).
			WithMeta("item_id", item.ID)
	}

	data, err := json.Marshal(item)
	if err != nil {
		return apperr.Wrapf(err, "failed to marshal item '%s'", item.ID)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, itemKey(item.ID), string(data), 0)
	if item.ActorID != "" {
		pipe.SAdd(ctx, actorItemsKey(item.ActorID), item.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.Wrapf(err, "failed to store item '%s'", item.ID)
	}

	return nil
}

// GetItem retrieves an item document by ID
func (r *redisRepo) GetItem(ctx context.Context, id string) (*items.Item, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("item ID is required")
	}

	data, err := r.client.Get(ctx, itemKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFoundf("item with ID '%s' not found", id).
				WithMeta("item_id", id)
		}
		return nil, apperr.Wrapf(err, "failed to get item '%s'", id)
	}

	var item items.Item
	if err := json.Unmarshal([]byte(data), &item); err != nil {
		return nil, apperr.Wrapf(err, "failed to unmarshal item '%s'", id)
	}

	return &item, nil
}

// SaveItem persists the full state of an existing item document
func (r *redisRepo) SaveItem(ctx context.Context, item *items.Item) error {
	if item == nil {
		return apperr.InvalidArgument("item cannot be nil")
	}
	if item.ID == "" {
		return apperr.InvalidArgument("item ID is required")
	}

	old, err := r.GetItem(ctx, item.ID)
	if err != nil {
		return err
	}

	data, err := json.Marshal(item)
	if err != nil {
		return apperr.Wrapf(err, "failed to marshal item '%s'", item.ID)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, itemKey(item.ID), string(data), 0)
	if old.ActorID != item.ActorID {
		if old.ActorID != "" {
			pipe.SRem(ctx, actorItemsKey(old.ActorID), item.ID)
		}
		if item.ActorID != "" {
			pipe.SAdd(ctx, actorItemsKey(item.ActorID), item.ID)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.Wrapf(err, "failed to save item '%s'", item.ID)
	}

	r.emitItemUpdated(old, item)
	return nil
}

// DeleteItem removes an item document
func (r *redisRepo) DeleteItem(ctx context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("item ID is required")
	}

	item, err := r.GetItem(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, itemKey(id))
	if item.ActorID != "" {
		pipe.SRem(ctx, actorItemsKey(item.ActorID), id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.Wrapf(err, "failed to delete item '%s'", id)
	}

	return nil
}

// ListActorItems retrieves all item documents owned by an actor
func (r *redisRepo) ListActorItems(ctx context.Context, actorID string) ([]*items.Item, error) {
	if actorID == "" {
		return nil, apperr.InvalidArgument("actor ID is required")
	}

	ids, err := r.client.SMembers(ctx, actorItemsKey(actorID)).Result()
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to list items for actor '%s'", actorID)
	}

	var result []*items.Item
	for _, id := range ids {
		item, err := r.GetItem(ctx, id)
		if err != nil {
			if apperr.IsNotFound(err) {
				// Stale index entry; the document is gone.
				continue
			}
			return nil, err
		}
		result = append(result, item)
	}

	return result, nil
}

// CreateActor stores a new actor document
func (r *redisRepo) CreateActor(ctx context.Context, actor *actors.Actor) error {
	if actor == nil {
		return apperr.InvalidArgument("actor cannot be nil")
	}
	if actor.ID == "" {
		return apperr.InvalidArgument("actor ID is required")
	}

	exists, err := r.client.Exists(ctx, actorKey(actor.ID)).Result()
	if err != nil {
		return apperr.Wrapf(err, "failed to check actor '%s'", actor.ID)
	}
	if exists > 0 {
		return apperr.AlreadyExistsf("actor with ID '%s' already exists", actor.ID).
			WithMeta("actor_id", actor.ID)
	}

	return r.setActor(ctx, actor)
}

// GetActor retrieves an actor document by ID
func (r *redisRepo) GetActor(ctx context.Context, id string) (*actors.Actor, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("actor ID is required")
	}

	data, err := r.client.Get(ctx, actorKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFoundf("actor with ID '%s' not found", id).
				WithMeta("actor_id", id)
		}
		return nil, apperr.Wrapf(err, "failed to get actor '%s'", id)
	}

	var actor actors.Actor
	if err := json.Unmarshal([]byte(data), &actor); err != nil {
		return nil, apperr.Wrapf(err, "failed to unmarshal actor '%s'", id)
	}

	return &actor, nil
}

// CreateActorEffect attaches a generated effect to an actor
func (r *redisRepo) CreateActorEffect(ctx context.Context, actorID string, effect *actors.Effect) error {
	if actorID == "" {
		return apperr.InvalidArgument("actor ID is required")
	}
	if effect == nil || effect.ID == "" {
		return apperr.InvalidArgument("effect with an ID is required")
	}

	actor, err := r.GetActor(ctx, actorID)
	if err != nil {
		return err
	}

	actor.Effects = append(actor.Effects, effect)
	return r.setActor(ctx, actor)
}

// DeleteActorEffect removes a generated effect from an actor
func (r *redisRepo) DeleteActorEffect(ctx context.Context, actorID, effectID string) error {
	if actorID == "" {
		return apperr.InvalidArgument("actor ID is required")
	}
	if effectID == "" {
		return apperr.InvalidArgument("effect ID is required")
	}

	actor, err := r.GetActor(ctx, actorID)
	if err != nil {
		return err
	}

	for i, e := range actor.Effects {
		if e.ID == effectID {
			actor.Effects = append(actor.Effects[:i], actor.Effects[i+1:]...)
			return r.setActor(ctx, actor)
		}
	}

	return apperr.NotFoundf("effect with ID '%s' not found on actor '%s'", effectID, actorID)
}

func (r *redisRepo) setActor(ctx context.Context, actor *actors.Actor) error {
	data, err := json.Marshal(actor)
	if err != nil {
		return apperr.Wrapf(err, "failed to marshal actor '%s'", actor.ID)
	}

	if err := r.client.Set(ctx, actorKey(actor.ID), string(data), 0).Err(); err != nil {
		return apperr.Wrapf(err, "failed to store actor '%s'", actor.ID)
	}

	return nil
}

func (r *redisRepo) emitItemUpdated(old, updated *items.Item) {
	if r.bus == nil {
		return
	}

	equippedChanged := old.Equipped != updated.Equipped
	runesChanged := !bytes.Equal(old.Flags[runesdomain.FlagRunes], updated.Flags[runesdomain.FlagRunes])
	if !equippedChanged && !runesChanged {
		return
	}

	_ = r.bus.Emit(events.NewItemUpdatedEvent(updated.Clone(), equippedChanged, runesChanged))
}
