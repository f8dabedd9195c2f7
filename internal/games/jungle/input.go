package jungle

// MoveUp moves the actor up by step, stopping at the top edge.
func MoveUp(w *World, step float64) {
	if !w.Running() {
		return
	}
	w.setActorY(w.Actor.Box.Y - step)
}

// MoveDown moves the actor down by step, stopping at the bottom edge.
func MoveDown(w *World, step float64) {
	if !w.Running() {
		return
	}
	w.setActorY(w.Actor.Box.Y + step)
}

// DragBy moves the actor by a pointer delta scaled by damping.
// Out-of-range results are clamped, never rejected.
func DragBy(w *World, dy, damping float64) {
	if !w.Running() {
		return
	}
	w.setActorY(w.Actor.Box.Y + dy*damping)
}
