// Package eventbus provides a minimal in-process publish/subscribe bus used to
// fan out domain events to live listeners such as websocket gallery streams.
package eventbus

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"wedding-clickz/internal/shared/logger"
)

// Event is a named payload published on the bus.
type Event struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// Subscription is a live listener on the bus. Events arrive on C until
// Unsubscribe is called with the subscription's ID.
type Subscription struct {
	ID string
	C  chan Event
}

// EventBus broadcasts published events to all current subscribers.
// Publish never blocks: a subscriber whose buffer is full misses the event.
type EventBus struct {
	mu          sync.RWMutex
	subscribers map[string]chan Event
	log         logger.Logger
}

// NewEventBus creates an empty bus.
func NewEventBus(log logger.Logger) *EventBus {
	return &EventBus{
		subscribers: make(map[string]chan Event),
		log:         log.WithComponent("eventbus"),
	}
}

// Subscribe registers a new listener with the given channel buffer size and
// returns its subscription.
func (b *EventBus) Subscribe(buffer int) *Subscription {
	if buffer <= 0 {
		buffer = 16
	}
	sub := &Subscription{
		ID: uuid.NewString(),
		C:  make(chan Event, buffer),
	}

	b.mu.Lock()
	b.subscribers[sub.ID] = sub.C
	b.mu.Unlock()

	b.log.WithFields(map[string]interface{}{
		"subscription_id": sub.ID,
	}).Debug("Subscriber registered")
	return sub
}

// Unsubscribe removes a listener and closes its channel.
func (b *EventBus) Unsubscribe(id string) {
	b.mu.Lock()
	ch, ok := b.subscribers[id]
	if ok {
		delete(b.subscribers, id)
	}
	b.mu.Unlock()

	if ok {
		close(ch)
		b.log.WithFields(map[string]interface{}{
			"subscription_id": id,
		}).Debug("Subscriber removed")
	}
}

// Publish delivers the event to every subscriber without blocking. Slow
// subscribers with a full buffer are skipped.
func (b *EventBus) Publish(eventType string, payload interface{}) {
	event := Event{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			b.log.WithFields(map[string]interface{}{
				"subscription_id": id,
				"event_type":      eventType,
			}).Warn("Subscriber buffer full, dropping event")
		}
	}
}

// SubscriberCount returns the number of active subscribers.
func (b *EventBus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
