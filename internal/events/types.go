package events

import (
	"github.com/marvelous-hawke/runeforge/internal/domain/items"
)

// EventType represents the type of document change event
type EventType string

const (
	// EventTypeItemUpdated fires after an item document is persisted with
	// a changed equipped state or a changed rune-record flag.
	EventTypeItemUpdated EventType = "item_updated"
)

// Event is the base interface for all document events
type Event interface {
	GetType() EventType
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type EventType
}

func (e *BaseEvent) GetType() EventType { return e.Type }

// ItemUpdatedEvent carries the persisted item and which of the watched
// fields actually changed. Listeners that recompute actor state check the
// change flags so unrelated item edits stay cheap.
type ItemUpdatedEvent struct {
	BaseEvent
	Item            *items.Item
	EquippedChanged bool
	RunesChanged    bool
}

// NewItemUpdatedEvent creates an item update event
func NewItemUpdatedEvent(item *items.Item, equippedChanged, runesChanged bool) *ItemUpdatedEvent {
	return &ItemUpdatedEvent{
		BaseEvent:       BaseEvent{Type: EventTypeItemUpdated},
		Item:            item,
		EquippedChanged: equippedChanged,
		RunesChanged:    runesChanged,
	}
}
