package rules

import (
	"sync"
	"time"
)

// EventType indicates the category of a rules event.
type EventType string

const (
	// EventMoveApplied fires once per committed move, after rim clearing.
	EventMoveApplied EventType = "MOVE_APPLIED"
	// EventMoveRejected fires for every rejected move; Reason is set.
	EventMoveRejected EventType = "MOVE_REJECTED"
	// EventStonesCaptured fires when the destination footprint held stones.
	EventStonesCaptured EventType = "STONES_CAPTURED"
	// EventRimCleared fires when stones pushed onto the rim were removed.
	EventRimCleared EventType = "RIM_CLEARED"
	// EventRingLost fires when a move leaves the opponent without a ring.
	EventRingLost EventType = "RING_LOST"
	// EventGameWon fires when the game reaches a terminal status.
	EventGameWon EventType = "GAME_WON"
	// EventPlayerResigned fires when the player to move resigns.
	EventPlayerResigned EventType = "PLAYER_RESIGNED"
)

// Event represents a state change that other subsystems may react to.
type Event struct {
	Type        EventType
	GameID      string
	Player      string // player the event is about
	Origin      string
	Destination string
	Reason      Reason
	Amount      int // stones captured or cleared
	Timestamp   time.Time
	Metadata    map[string]string
}

// Listener defines a callback that reacts to incoming events.
type Listener func(Event)

type typedListener struct {
	handle   int
	callback func(Event)
}

// EventBus provides a synchronous publish/subscribe implementation with type filtering.
type EventBus struct {
	mu             sync.RWMutex
	listeners      map[int]Listener
	typedListeners map[EventType][]typedListener
	nextHandle     int
}

// NewEventBus constructs a fresh event bus instance.
func NewEventBus() *EventBus {
	return &EventBus{
		listeners:      make(map[int]Listener),
		typedListeners: make(map[EventType][]typedListener),
	}
}

// Subscribe registers a listener for all events and returns a handle.
func (bus *EventBus) Subscribe(listener Listener) int {
	if listener == nil {
		return -1
	}
	bus.mu.Lock()
	defer bus.mu.Unlock()
	handle := bus.nextHandle
	bus.nextHandle++
	bus.listeners[handle] = listener
	return handle
}

// SubscribeTyped registers a listener for a specific event type.
func (bus *EventBus) SubscribeTyped(eventType EventType, callback func(Event)) int {
	if callback == nil {
		return -1
	}
	bus.mu.Lock()
	defer bus.mu.Unlock()
	handle := bus.nextHandle
	bus.nextHandle++
	bus.typedListeners[eventType] = append(bus.typedListeners[eventType], typedListener{handle: handle, callback: callback})
	return handle
}

// Unsubscribe removes the listener identified by the provided handle, typed or not.
func (bus *EventBus) Unsubscribe(handle int) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	delete(bus.listeners, handle)
	for eventType, listeners := range bus.typedListeners {
		for i := len(listeners) - 1; i >= 0; i-- {
			if listeners[i].handle == handle {
				bus.typedListeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Publish delivers the event to all registered listeners synchronously.
// Listeners must not subscribe or unsubscribe from inside the callback.
func (bus *EventBus) Publish(event Event) {
	if bus == nil {
		return
	}
	bus.mu.RLock()
	defer bus.mu.RUnlock()

	for _, listener := range bus.listeners {
		listener(event)
	}
	for _, listener := range bus.typedListeners[event.Type] {
		listener.callback(event)
	}
}

// NewEvent creates a new event with common fields populated.
func NewEvent(eventType EventType, gameID, player string) Event {
	return Event{
		Type:      eventType,
		GameID:    gameID,
		Player:    player,
		Timestamp: time.Now(),
		Metadata:  make(map[string]string),
	}
}
