// Package notify is an in-process change bus keyed by (user, resource type).
package notify

import (
	"sync"

	"github.com/heartmarshall/srs-review-backend/internal/domain"
)

const defaultBuffer = 16

// Bus fans out changes to the subscribers of a user. Publish never blocks:
// a subscriber whose buffer is full misses the change and sees Dropped grow.
type Bus struct {
	mu     sync.RWMutex
	subs   map[string]map[*Subscription]struct{}
	buffer int
}

// New creates a bus with the given per-subscriber buffer (a non-positive
// value selects the default).
func New(buffer int) *Bus {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Bus{subs: make(map[string]map[*Subscription]struct{}), buffer: buffer}
}

// Subscription receives changes until Close is called.
type Subscription struct {
	bus       *Bus
	userID    string
	resources map[domain.ResourceType]bool
	ch        chan domain.Change

	mu      sync.Mutex
	closed  bool
	dropped int
}

// C returns the receive channel. It is closed by Close.
func (s *Subscription) C() <-chan domain.Change { return s.ch }

// Dropped returns how many changes did not fit the buffer.
func (s *Subscription) Dropped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}

// Close detaches the subscription. It is safe to call more than once.
func (s *Subscription) Close() {
	s.bus.remove(s)
}

// Subscribe registers interest in the changes of userID. With no resources
// every resource type is delivered.
func (b *Bus) Subscribe(userID string, resources ...domain.ResourceType) *Subscription {
	s := &Subscription{
		bus:    b,
		userID: userID,
		ch:     make(chan domain.Change, b.buffer),
	}
	if len(resources) > 0 {
		s.resources = make(map[domain.ResourceType]bool, len(resources))
		for _, r := range resources {
			s.resources[r] = true
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs[userID] == nil {
		b.subs[userID] = make(map[*Subscription]struct{})
	}
	b.subs[userID][s] = struct{}{}
	return s
}

// Publish delivers c to every matching subscriber of c.UserID.
func (b *Bus) Publish(c domain.Change) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for s := range b.subs[c.UserID] {
		if s.resources != nil && !s.resources[c.Resource] {
			continue
		}
		s.deliver(c)
	}
}

func (s *Subscription) deliver(c domain.Change) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.ch <- c:
	default:
		s.dropped++
	}
}

// Subscribers returns the number of live subscriptions of userID.
func (b *Bus) Subscribers(userID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[userID])
}

func (b *Bus) remove(s *Subscription) {
	b.mu.Lock()
	if set, ok := b.subs[s.userID]; ok {
		delete(set, s)
		if len(set) == 0 {
			delete(b.subs, s.userID)
		}
	}
	b.mu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}
