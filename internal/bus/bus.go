// Package bus provides the process-wide "progress updated" broadcast.
// It is an explicit object passed by reference, not a global: views
// that care about fresh progress subscribe, the result reporter
// publishes after a successful post.
package bus

import "sync"

// Bus fans a zero-payload notification out to any number of
// subscribers. Delivery is best-effort: each subscriber channel holds
// one pending notification, and publishing never blocks.
type Bus struct {
	mu   sync.Mutex
	subs []chan struct{}
}

// New creates an empty Bus.
func New() *Bus {
	return &Bus{}
}

// Subscribe registers a listener and returns its channel. A listener
// subscribed before a Publish will observe it; coalesced delivery is
// fine since the notification carries no payload.
func (b *Bus) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	b.mu.Lock()
	b.subs = append(b.subs, ch)
	b.mu.Unlock()
	return ch
}

// Publish notifies every subscriber without blocking. A subscriber
// that already has a pending notification keeps just the one.
func (b *Bus) Publish() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
