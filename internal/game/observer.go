package game

// Observer is told when the game changed. It re-polls the game for
// whatever it needs.
type Observer interface {
	GameChanged(g *Game)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(g *Game)

// GameChanged calls f(g).
func (f ObserverFunc) GameChanged(g *Game) { f(g) }

// ObserverID identifies a registration for RemoveObserver.
type ObserverID int

type registration struct {
	id  ObserverID
	obs Observer
}

// observerList is shared by reference across snapshots, so undo never
// drops a listener.
type observerList struct {
	next ObserverID
	regs []registration
}

// AddObserver registers o. Observers are called in registration order.
func (g *Game) AddObserver(o Observer) ObserverID {
	g.observers.next++
	g.observers.regs = append(g.observers.regs, registration{id: g.observers.next, obs: o})
	return g.observers.next
}

// RemoveObserver unregisters id. Unknown ids are ignored.
func (g *Game) RemoveObserver(id ObserverID) {
	regs := g.observers.regs
	for i, r := range regs {
		if r.id == id {
			g.observers.regs = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

func (g *Game) notify() {
	// Observers may register or remove others while being notified.
	regs := append([]registration(nil), g.observers.regs...)
	for _, r := range regs {
		r.obs.GameChanged(g)
	}
}
