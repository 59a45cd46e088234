// Package event provides a small synchronous publish/subscribe bus used
// to decouple the input layer from status display and persistence.
// Handlers run on the publisher's goroutine; there is no async dispatch.
package event

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Topic identifies an event stream.
type Topic string

// Topics published by the application.
const (
	TopicModeChanged    Topic = "mode.changed"
	TopicBufferEdited   Topic = "buffer.edited"
	TopicConfigReloaded Topic = "config.reloaded"
)

// ErrUnknownSubscription is returned when unsubscribing an unknown or
// already-removed subscription.
var ErrUnknownSubscription = errors.New("unknown subscription")

// Event is a published notification.
type Event struct {
	Topic   Topic
	Payload any
	Time    time.Time
}

// Handler processes a published event.
type Handler func(Event)

// Subscription identifies a registered handler.
type Subscription struct {
	ID    uuid.UUID
	Topic Topic
}

type subscriber struct {
	id uuid.UUID
	fn Handler
}

// Bus is the synchronous event bus. The zero value is not usable;
// construct with NewBus. Safe for concurrent use.
type Bus struct {
	mu   sync.RWMutex
	subs map[Topic][]subscriber
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Topic][]subscriber)}
}

// Subscribe registers a handler for a topic.
func (b *Bus) Subscribe(topic Topic, fn Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.New()
	b.subs[topic] = append(b.subs[topic], subscriber{id: id, fn: fn})
	return Subscription{ID: id, Topic: topic}
}

// Unsubscribe removes a previously registered handler.
func (b *Bus) Unsubscribe(sub Subscription) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[sub.Topic]
	for i, s := range subs {
		if s.id == sub.ID {
			b.subs[sub.Topic] = append(subs[:i], subs[i+1:]...)
			return nil
		}
	}
	return ErrUnknownSubscription
}

// Publish delivers the payload to every subscriber of the topic, in
// subscription order, and returns the number of handlers invoked.
func (b *Bus) Publish(topic Topic, payload any) int {
	b.mu.RLock()
	subs := make([]subscriber, len(b.subs[topic]))
	copy(subs, b.subs[topic])
	b.mu.RUnlock()

	ev := Event{Topic: topic, Payload: payload, Time: time.Now()}
	for _, s := range subs {
		s.fn(ev)
	}
	return len(subs)
}
