// Package park connects the pets of everyone on one SSH server, so each
// player hears when others arrive, leave or lose their pet.
package park

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// VisitorID identifies one connection.
type VisitorID string

// defaultBuffer is how many announcements a visitor can fall behind.
const defaultBuffer = 16

// Visitor is one connected player. Events are delivered on a buffered
// channel; a slow reader loses the oldest ones.
type Visitor struct {
	id       VisitorID
	user     string
	park     *Park
	events   chan Event
	done     chan struct{}
	doneOnce sync.Once
}

// ID returns the visitor identifier.
func (v *Visitor) ID() VisitorID {
	return v.id
}

// User returns the name the visitor connected with.
func (v *Visitor) User() string {
	return v.user
}

// Send queues an event without blocking.
func (v *Visitor) Send(evt Event) {
	select {
	case <-v.done:
		return
	default:
	}

	select {
	case v.events <- evt:
	default:
		// Buffer full, drop oldest and retry
		select {
		case <-v.events:
		default:
		}
		select {
		case v.events <- evt:
		default:
		}
	}
}

// Events returns the channel to receive announcements from.
func (v *Visitor) Events() <-chan Event {
	return v.events
}

// Done returns a channel closed when the visitor leaves.
func (v *Visitor) Done() <-chan struct{} {
	return v.done
}

// Announce tells everyone else in the park.
func (v *Visitor) Announce(evt Event) {
	v.park.Broadcast(evt, v.id)
}

// Leave removes the visitor and tells the others.
// Safe to call multiple times.
func (v *Visitor) Leave() {
	v.doneOnce.Do(func() {
		v.park.remove(v.id)
		close(v.done)
		v.park.Broadcast(LeftEvent{User: v.user}, v.id)
	})
}

// Park tracks connected visitors.
// Thread-safe for concurrent access.
type Park struct {
	mu       sync.RWMutex
	visitors map[VisitorID]*Visitor
	seq      atomic.Uint64
}

// New creates an empty park.
func New() *Park {
	return &Park{
		visitors: make(map[VisitorID]*Visitor),
	}
}

// Join registers a visitor and tells everyone else.
func (p *Park) Join(user string) *Visitor {
	v := &Visitor{
		id:     VisitorID(fmt.Sprintf("%s-%d", user, p.seq.Add(1))),
		user:   user,
		park:   p,
		events: make(chan Event, defaultBuffer),
		done:   make(chan struct{}),
	}

	p.mu.Lock()
	p.visitors[v.id] = v
	p.mu.Unlock()

	p.Broadcast(ArrivedEvent{User: user}, v.id)
	return v
}

func (p *Park) remove(id VisitorID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.visitors, id)
}

// Broadcast sends evt to every visitor except from.
func (p *Park) Broadcast(evt Event, from VisitorID) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for id, v := range p.visitors {
		if id != from {
			v.Send(evt)
		}
	}
}

// Count returns the number of visitors.
func (p *Park) Count() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.visitors)
}
