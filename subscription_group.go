package libee

import "sync"

// Group collects subscriptions so they can be cancelled together, typically
// when the component that registered them shuts down.
type Group struct {
	subs []*Subscription
	mu   sync.Mutex
}

// Add tracks the given subscriptions. Nil entries are ignored.
func (g *Group) Add(subs ...*Subscription) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, sub := range subs {
		if sub != nil {
			g.subs = append(g.subs, sub)
		}
	}
}

// Len returns how many subscriptions are tracked.
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.subs)
}

// Cancel cancels every tracked subscription and forgets them.
func (g *Group) Cancel() {
	g.mu.Lock()
	subs := g.subs
	g.subs = nil
	g.mu.Unlock()

	for _, sub := range subs {
		sub.Cancel()
	}
}

// Close is Cancel in io.Closer form.
func (g *Group) Close() error {
	g.Cancel()
	return nil
}
