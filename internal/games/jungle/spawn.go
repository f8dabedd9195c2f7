package jungle

// Spawn cadence in ticks. A class spawns on the tick its counter first
// exceeds the threshold, i.e. every threshold+1 ticks.
const (
	CollectibleSpawnThreshold = 110
	ObstacleSpawnThreshold    = 160
)

// SpawnEvents reports which classes spawned this tick.
type SpawnEvents struct {
	Collectible bool
	Obstacle    bool
}

// Schedule advances both spawn counters by one tick and injects new
// entities when a counter passes its threshold.
//
// Schedule belongs to a running frame and is called after Step even when
// that Step ended the run. Later frames of an ended run never call it, which
// is what keeps the counters frozen.
func Schedule(w *World, s Spawner) SpawnEvents {
	var ev SpawnEvents
	w.Timers.Collectible++
	w.Timers.Obstacle++

	if w.Timers.Collectible > CollectibleSpawnThreshold {
		w.Collectibles = append(w.Collectibles, s.NewCollectible())
		w.Timers.Collectible = 0
		ev.Collectible = true
	}
	if w.Timers.Obstacle > ObstacleSpawnThreshold {
		w.Obstacles = append(w.Obstacles, s.NewObstacle())
		w.Timers.Obstacle = 0
		ev.Obstacle = true
	}
	return ev
}
