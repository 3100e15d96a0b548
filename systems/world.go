package systems

import (
	"github.com/automoto/keyrain/archetypes"
	"github.com/automoto/keyrain/components"
	"github.com/yohamta/donburi"
)

// Pipeline is the per-tick update order shared by every frontend.
var Pipeline = []func(w donburi.World){
	UpdateSession,
	UpdatePhysics,
	UpdateObjects,
	UpdateSweep,
	UpdateTweens,
}

// Setup prepares a fresh world: session and banner singletons and the
// platform reaper. The physics space is created on the first resize.
func Setup(w donburi.World) {
	GetOrCreateSession(w)
	if _, ok := components.Banner.First(w); !ok {
		archetypes.Banner.Spawn(w)
	}
	SubscribeReaper(w)
}

// Update runs the pipeline once.
func Update(w donburi.World) {
	for _, system := range Pipeline {
		system(w)
	}
}

// Stats is a snapshot for overlays.
type Stats struct {
	Live    int
	Spawned uint64
	Reaped  uint64
	Swept   uint64
	Rain    bool
}

func GetStats(w donburi.World) Stats {
	sess := components.Session.Get(GetOrCreateSession(w))
	stats := Stats{
		Spawned: sess.Spawned,
		Reaped:  sess.Reaped,
		Swept:   sess.Swept,
		Rain:    sess.Rain,
	}
	if entry, ok := components.Space.First(w); ok {
		stats.Live = components.Space.Get(entry).BallCount()
	}
	return stats
}
