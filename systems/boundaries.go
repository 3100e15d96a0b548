package systems

import (
	"github.com/automoto/keyrain/components"
	"github.com/automoto/keyrain/physics"
	"github.com/automoto/keyrain/systems/factory"
	"github.com/automoto/keyrain/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

// rebuildBoundaries swaps the three boundaries for ones fitting a
// width x height viewport and returns the new platform entity.
func rebuildBoundaries(w donburi.World, width, height float64) donburi.Entity {
	space := components.Space.Get(components.Space.MustFirst(w))

	var old []*donburi.Entry
	tags.Boundary.Each(w, func(e *donburi.Entry) {
		old = append(old, e)
	})
	for _, e := range old {
		removeProxy(e)
		w.Remove(e.Entity())
	}

	platform := donburi.Null
	for _, b := range space.ReplaceBoundaries(physics.BuildBoundaries(width, height)) {
		e := factory.CreateBoundary(w, b)
		if b.Spec.Kind == physics.Platform {
			platform = e.Entity()
		}
	}

	log.Debug("boundaries rebuilt", "width", width, "height", height)
	return platform
}

// rebuildSweep replaces the sweep space with one covering the new live zone
// and moves every proxy across.
func rebuildSweep(w donburi.World, width, height float64) {
	entry, ok := components.SweepSpace.First(w)
	if !ok {
		factory.CreateSweepSpace(w, width, height)
		return
	}

	sweep := components.SweepSpace.Get(entry)
	next := factory.NewSweepSpace(width, height)

	for e := range components.Object.Iter(w) {
		obj := components.Object.Get(e)
		if obj.Space == nil {
			continue
		}
		x, y := obj.X-sweep.OffsetX, obj.Y-sweep.OffsetY
		obj.Space.Remove(obj.Object)
		factory.AddToSweep(&next, obj.Object, x, y)
	}

	*sweep = next
}
