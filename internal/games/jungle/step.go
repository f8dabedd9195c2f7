package jungle

// CollectReward is the score awarded for each collectible picked up.
const CollectReward = 10

// StepEvents summarizes what happened during one simulation tick.
type StepEvents struct {
	Collected int  // Collectibles picked up by the actor
	Culled    int  // Entities that left through the left edge
	Ended     bool // An obstacle hit the actor
}

// Step advances every entity by one tick and resolves collisions.
//
// Collectibles are processed before obstacles, so a tick in which the actor
// touches both still awards the points before ending the run. Each entity is
// either culled or collides, never both. An obstacle that ends the run stays
// in the world. Step does nothing once the run has ended.
func Step(w *World) StepEvents {
	var ev StepEvents
	if !w.Running() {
		return ev
	}
	actor := w.Actor.Box

	kept := w.Collectibles[:0]
	for _, e := range w.Collectibles {
		e.advance()
		switch {
		case e.offscreen():
			ev.Culled++
		case e.Box.Intersects(actor):
			w.Score += CollectReward
			ev.Collected++
		default:
			kept = append(kept, e)
		}
	}
	clear(w.Collectibles[len(kept):])
	w.Collectibles = kept

	kept = w.Obstacles[:0]
	for _, e := range w.Obstacles {
		e.advance()
		if e.offscreen() {
			ev.Culled++
			continue
		}
		if e.Box.Intersects(actor) {
			ev.Ended = true
		}
		kept = append(kept, e)
	}
	clear(w.Obstacles[len(kept):])
	w.Obstacles = kept

	if ev.Ended {
		w.State = StateEnded
	}
	return ev
}
