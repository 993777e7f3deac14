package documents

//go:generate mockgen -destination=mock/mock.go -package=mockdocuments -source=interface.go

import (
	"context"

	"github.com/marvelous-hawke/runeforge/internal/domain/actors"
	"github.com/marvelous-hawke/runeforge/internal/domain/items"
)

// Repository is the persistence boundary to the host's document store. Item
// and actor documents live with the host; this interface covers the
// operations the rune engine consumes: flag-carrying item reads and writes,
// actor reads, and embedded-effect management.
//
// Implementations emit ItemUpdated events when a save changes an item's
// equipped state or its rune-record flag, mirroring the host's own change
// notification.
type Repository interface {
	// CreateItem stores a new item document
	CreateItem(ctx context.Context, item *items.Item) error

	// GetItem retrieves an item document by ID
	GetItem(ctx context.Context, id string) (*items.Item, error)

	// SaveItem persists the full state of an existing item document
	SaveItem(ctx context.Context, item *items.Item) error

	// DeleteItem removes an item document
	DeleteItem(ctx context.Context, id string) error

	// ListActorItems retrieves all item documents owned by an actor
	ListActorItems(ctx context.Context, actorID string) ([]*items.Item, error)

	// CreateActor stores a new actor document
	CreateActor(ctx context.Context, actor *actors.Actor) error

	// GetActor retrieves an actor document by ID
	GetActor(ctx context.Context, id string) (*actors.Actor, error)

	// CreateActorEffect attaches a generated effect to an actor
	CreateActorEffect(ctx context.Context, actorID string, effect *actors.Effect) error

	// DeleteActorEffect removes a generated effect from an actor
	DeleteActorEffect(ctx context.Context, actorID, effectID string) error
}
