package events

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marvelous-hawke/runeforge/internal/domain/items"
)

type recordingListener struct {
	id       string
	priority int
	events   []Event
	err      error
}

func (l *recordingListener) HandleEvent(event Event) error {
	l.events = append(l.events, event)
	return l.err
}

func (l *recordingListener) Priority() int { return l.priority }
func (l *recordingListener) ID() string    { return l.id }

func TestBus_EmitDeliversInPriorityOrder(t *testing.T) {
	bus := NewBus()

	var order []string
	first := &orderedListener{id: "first", priority: 10, order: &order}
	second := &orderedListener{id: "second", priority: 20, order: &order}

	// Subscribe out of order; dispatch must still follow priority
	bus.Subscribe(EventTypeItemUpdated, second)
	bus.Subscribe(EventTypeItemUpdated, first)

	event := NewItemUpdatedEvent(&items.Item{ID: "item-1"}, true, false)
	require.NoError(t, bus.Emit(event))

	assert.Equal(t, []string{"first", "second"}, order)
}

type orderedListener struct {
	id       string
	priority int
	order    *[]string
}

func (l *orderedListener) HandleEvent(Event) error {
	*l.order = append(*l.order, l.id)
	return nil
}

func (l *orderedListener) Priority() int { return l.priority }
func (l *orderedListener) ID() string    { return l.id }

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()
	listener := &recordingListener{id: "watcher", priority: 0}

	bus.Subscribe(EventTypeItemUpdated, listener)
	bus.Unsubscribe(EventTypeItemUpdated, "watcher")

	require.NoError(t, bus.Emit(NewItemUpdatedEvent(&items.Item{ID: "item-1"}, false, true)))
	assert.Empty(t, listener.events)
}

func TestBus_ListenerErrorStopsDispatch(t *testing.T) {
	bus := NewBus()
	failing := &recordingListener{id: "failing", priority: 0, err: errors.New("boom")}
	after := &recordingListener{id: "after", priority: 10}

	bus.Subscribe(EventTypeItemUpdated, failing)
	bus.Subscribe(EventTypeItemUpdated, after)

	err := bus.Emit(NewItemUpdatedEvent(&items.Item{ID: "item-1"}, true, true))
	assert.Error(t, err)
	assert.Empty(t, after.events)
}

func TestBus_UnsubscribeKeepsRemainingOrder(t *testing.T) {
	bus := NewBus()

	var order []string
	first := &orderedListener{id: "first", priority: 10, order: &order}
	middle := &orderedListener{id: "middle", priority: 20, order: &order}
	last := &orderedListener{id: "last", priority: 30, order: &order}

	bus.Subscribe(EventTypeItemUpdated, first)
	bus.Subscribe(EventTypeItemUpdated, middle)
	bus.Subscribe(EventTypeItemUpdated, last)
	bus.Unsubscribe(EventTypeItemUpdated, "middle")

	require.NoError(t, bus.Emit(NewItemUpdatedEvent(&items.Item{ID: "item-1"}, true, false)))
	assert.Equal(t, []string{"first", "last"}, order)
}
