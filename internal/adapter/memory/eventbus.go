package memory

import (
	"context"
	"sync"

	"github.com/hellolead/hello-lead/internal/domain/event"
	portbus "github.com/hellolead/hello-lead/internal/port/eventbus"
)

var _ portbus.EventBus = (*EventBus)(nil)

// EventBus is an in-process pub/sub fan-out. Handlers run synchronously
// on the publishing goroutine; they must not block.
type EventBus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[event.Type]map[int]portbus.Handler
}

func NewEventBus() *EventBus {
	return &EventBus{subs: make(map[event.Type]map[int]portbus.Handler)}
}

func (b *EventBus) Publish(ctx context.Context, e event.Event) error {
	b.mu.RLock()
	handlers := make([]portbus.Handler, 0, len(b.subs[e.Type]))
	for _, h := range b.subs[e.Type] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(ctx, e)
	}
	return nil
}

func (b *EventBus) Subscribe(_ context.Context, topic event.Type, handler portbus.Handler) (portbus.Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]portbus.Handler)
	}
	id := b.nextID
	b.nextID++
	b.subs[topic][id] = handler

	return &subscription{bus: b, topic: topic, id: id}, nil
}

type subscription struct {
	bus   *EventBus
	topic event.Type
	id    int
}

func (s *subscription) Unsubscribe() {
	s.bus.mu.Lock()
	delete(s.bus.subs[s.topic], s.id)
	s.bus.mu.Unlock()
}
