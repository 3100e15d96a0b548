package render

import (
	"image/color"

	"github.com/automoto/keyrain/components"
	cfg "github.com/automoto/keyrain/config"
	"github.com/automoto/keyrain/systems"
	"github.com/automoto/keyrain/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines the boundaries, which are normally invisible and sit
// below the viewport, and every proxy in the sweep space.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !systems.GetSettings(e.World).Debug {
		return
	}

	tags.Boundary.Each(e.World, func(entry *donburi.Entry) {
		b := components.Boundary.Get(entry)
		a, c := b.Spec.Endpoints()
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(c.X), float32(c.Y), 2, cfg.Debug.BoundaryColor, false)
	})

	sweepEntry, ok := components.SweepSpace.First(e.World)
	if !ok {
		return
	}
	sweep := components.SweepSpace.Get(sweepEntry)

	for _, obj := range sweep.Space.Objects() {
		x := obj.X - sweep.OffsetX
		y := obj.Y - sweep.OffsetY

		var c color.RGBA
		switch {
		case obj.HasTags(tags.ResolvLiveZone):
			c = cfg.Debug.LiveZoneColor
		case obj.HasTags(tags.ResolvBoundary):
			c = cfg.Debug.BoundaryColor
		default:
			c = cfg.Debug.ProxyColor
		}

		vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
	}
}
