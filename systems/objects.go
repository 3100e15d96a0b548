package systems

import (
	"github.com/automoto/keyrain/components"
	cfg "github.com/automoto/keyrain/config"
	"github.com/yohamta/donburi"
)

// UpdateObjects moves every projectile proxy to its body.
func UpdateObjects(w donburi.World) {
	entry, ok := components.SweepSpace.First(w)
	if !ok {
		return
	}
	sweep := components.SweepSpace.Get(entry)
	r := cfg.Projectile.Radius

	for e := range components.Body.Iter(w) {
		obj := components.Object.Get(e)
		pos := components.Body.Get(e).Body.Position()
		obj.X = pos.X - r + sweep.OffsetX
		obj.Y = pos.Y - r + sweep.OffsetY
		obj.Update()
	}
}
