package factory

import (
	"math"

	"github.com/automoto/keyrain/archetypes"
	"github.com/automoto/keyrain/components"
	cfg "github.com/automoto/keyrain/config"
	"github.com/automoto/keyrain/physics"
	"github.com/automoto/keyrain/tags"
	"github.com/jakecoffman/cp"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace creates the physics space singleton. Platform contacts are
// published as ContactBegin events and handled after the step.
func CreateSpace(w donburi.World) *donburi.Entry {
	space := archetypes.Space.Spawn(w)

	s := physics.NewSpace()
	s.OnContactBegin = func(a, b *cp.Body) {
		components.ContactBegin.Publish(w, components.ContactEventData{A: a, B: b})
	}
	components.Space.SetValue(space, components.SpaceData{Space: s})

	return space
}

// CreateSweepSpace creates the resolv space covering the live zone of a
// width x height viewport, with the live-zone object filling it.
func CreateSweepSpace(w donburi.World, width, height float64) *donburi.Entry {
	sweep := archetypes.SweepSpace.Spawn(w)
	components.SweepSpace.SetValue(sweep, NewSweepSpace(width, height))
	return sweep
}

// NewSweepSpace builds the sweep space data for a width x height viewport.
// The zone spans [-margin, width+margin] horizontally and
// [-margin, height+PlatformDrop+margin] vertically.
func NewSweepSpace(width, height float64) components.SweepSpaceData {
	margin := cfg.Sweep.Margin
	zoneW := width + 2*margin
	zoneH := height + cfg.Boundary.PlatformDrop + 2*margin

	cell := cfg.Sweep.CellSize
	space := resolv.NewSpace(int(math.Ceil(zoneW)), int(math.Ceil(zoneH)), cell, cell)

	zone := resolv.NewObject(0, 0, zoneW, zoneH, tags.ResolvLiveZone)
	zone.SetShape(resolv.NewRectangle(0, 0, zoneW, zoneH))
	space.Add(zone)

	return components.SweepSpaceData{
		Space:    space,
		LiveZone: zone,
		OffsetX:  margin,
		OffsetY:  margin,
	}
}
