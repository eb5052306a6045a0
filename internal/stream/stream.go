package stream

import (
	"sync"
	"sync/atomic"
)

// Stream is a push-based sequence of values.
type Stream[T any] interface {
	Subscribe(fn func(T)) Subscription
}

// Subscription cancels delivery to one subscriber. Unsubscribe is idempotent.
type Subscription interface {
	Unsubscribe()
}

type subscriptionFunc struct {
	once sync.Once
	fn   func()
}

func (s *subscriptionFunc) Unsubscribe() { s.once.Do(s.fn) }

// NewSubscription returns a Subscription that runs fn on the first
// Unsubscribe.
func NewSubscription(fn func()) Subscription {
	return &subscriptionFunc{fn: fn}
}

// Func adapts a subscribe function to the Stream interface.
type Func[T any] func(fn func(T)) Subscription

// Subscribe implements Stream.
func (f Func[T]) Subscribe(fn func(T)) Subscription { return f(fn) }

type subscriber[T any] struct {
	id     uint64
	fn     func(T)
	active atomic.Bool
}

// Subject is a hot stream that forwards every Emit to its current
// subscribers, in subscription order. Values emitted before a subscriber
// joined are not replayed.
type Subject[T any] struct {
	mu     sync.Mutex
	nextID uint64
	subs   []*subscriber[T]
}

// NewSubject returns an empty Subject.
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{}
}

// Subscribe registers fn for subsequent emissions.
func (s *Subject[T]) Subscribe(fn func(T)) Subscription {
	s.mu.Lock()
	s.nextID++
	sub := &subscriber[T]{id: s.nextID, fn: fn}
	sub.active.Store(true)
	s.subs = append(s.subs, sub)
	s.mu.Unlock()

	return NewSubscription(func() {
		sub.active.Store(false)
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, cur := range s.subs {
			if cur.id == sub.id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	})
}

// Emit delivers v to every subscriber registered at the time of the call.
func (s *Subject[T]) Emit(v T) {
	s.mu.Lock()
	snapshot := make([]*subscriber[T], len(s.subs))
	copy(snapshot, s.subs)
	s.mu.Unlock()

	for _, sub := range snapshot {
		if sub.active.Load() {
			sub.fn(v)
		}
	}
}

// Subscribers returns the number of live subscribers.
func (s *Subject[T]) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Bag collects subscriptions for bulk disposal.
type Bag struct {
	mu       sync.Mutex
	subs     []Subscription
	disposed bool
}

// Add keeps sub until Dispose. Adding to a disposed Bag unsubscribes sub
// immediately.
func (b *Bag) Add(sub Subscription) {
	b.mu.Lock()
	if b.disposed {
		b.mu.Unlock()
		sub.Unsubscribe()
		return
	}
	b.subs = append(b.subs, sub)
	b.mu.Unlock()
}

// Dispose unsubscribes everything collected so far.
func (b *Bag) Dispose() {
	b.mu.Lock()
	subs := b.subs
	b.subs = nil
	b.disposed = true
	b.mu.Unlock()

	for _, sub := range subs {
		sub.Unsubscribe()
	}
}
