package systems

import (
	"github.com/automoto/keyrain/components"
	cfg "github.com/automoto/keyrain/config"
	"github.com/automoto/keyrain/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

// UpdateSweep removes projectiles that have left the live zone. It runs
// every cfg.Sweep.IntervalTicks ticks.
func UpdateSweep(w donburi.World) {
	sess := components.Session.Get(GetOrCreateSession(w))
	if sess.Tick%cfg.Sweep.IntervalTicks != 0 {
		return
	}
	if _, ok := components.SweepSpace.First(w); !ok {
		return
	}

	var lost []*donburi.Entry
	tags.Projectile.Each(w, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Space == nil || obj.Check(0, 0, tags.ResolvLiveZone) == nil {
			lost = append(lost, e)
		}
	})

	for _, e := range lost {
		if destroyProjectile(w, e) {
			sess.Swept++
		}
	}
	if len(lost) > 0 {
		log.Debug("swept projectiles", "count", len(lost))
	}
}
