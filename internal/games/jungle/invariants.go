package jungle

// checkWorld asserts the invariants that must hold between ticks.
// It is a no-op unless built with -tags debug.
func checkWorld(w *World) {
	if !debugAsserts {
		return
	}
	y := w.Actor.Box.Y
	assertf(y >= 0 && y <= w.maxActorY(), "actor y %v outside [0, %v]", y, w.maxActorY())
	assertf(w.Score >= 0 && w.Score%CollectReward == 0, "score %d", w.Score)
	assertf(w.Timers.Collectible <= CollectibleSpawnThreshold, "collectible timer %d past threshold", w.Timers.Collectible)
	assertf(w.Timers.Obstacle <= ObstacleSpawnThreshold, "obstacle timer %d past threshold", w.Timers.Obstacle)
	for _, set := range [][]Entity{w.Collectibles, w.Obstacles} {
		for _, e := range set {
			assertf(e.Speed > 0, "%s at x=%v does not move left", e.Kind, e.Box.X)
		}
	}
}
