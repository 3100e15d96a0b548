package factory

import (
	"github.com/automoto/keyrain/archetypes"
	"github.com/automoto/keyrain/components"
	"github.com/automoto/keyrain/physics"
	"github.com/automoto/keyrain/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateBoundary wraps a boundary that already lives in the physics space
// in an entity. Its resolv proxy is the rotated boundary's bounding box.
func CreateBoundary(w donburi.World, b *physics.Boundary) *donburi.Entry {
	var boundary *donburi.Entry
	if b.Spec.Kind == physics.Platform {
		boundary = archetypes.Platform.Spawn(w)
	} else {
		boundary = archetypes.Chute.Spawn(w)
	}
	b.Body.UserData = boundary.Entity()
	components.Boundary.SetValue(boundary, components.BoundaryData{Boundary: b})

	x, y, bw, bh := b.Spec.Bounds()
	obj := resolv.NewObject(x, y, bw, bh, tags.ResolvBoundary)
	obj.SetShape(resolv.NewRectangle(0, 0, bw, bh))
	obj.Data = boundary
	components.Object.SetValue(boundary, components.ObjectData{Object: obj})

	if sweep, ok := components.SweepSpace.First(w); ok {
		AddToSweep(components.SweepSpace.Get(sweep), obj, x, y)
	}

	return boundary
}

// AddToSweep places obj, whose world-space corner is (x, y), into the sweep
// space.
func AddToSweep(sweep *components.SweepSpaceData, obj *resolv.Object, x, y float64) {
	obj.X = x + sweep.OffsetX
	obj.Y = y + sweep.OffsetY
	sweep.Space.Add(obj)
}
