package systems

import (
	"github.com/automoto/keyrain/components"
	cfg "github.com/automoto/keyrain/config"
	"github.com/yohamta/donburi"
)

// UpdatePhysics advances the space by one tick and then delivers the
// contact events collected during the step.
func UpdatePhysics(w donburi.World) {
	entry, ok := components.Space.First(w)
	if !ok {
		return
	}
	components.Space.Get(entry).Step(1 / float64(cfg.Window.TPS))
	components.ContactBegin.ProcessEvents(w)
}
