package systems

import (
	"github.com/automoto/keyrain/components"
	"github.com/automoto/keyrain/session"
	"github.com/automoto/keyrain/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

func applyEffects(w donburi.World, entry *donburi.Entry, effects []session.Effect) {
	sess := components.Session.Get(entry)

	for _, effect := range effects {
		switch e := effect.(type) {
		case session.CreateEngine:
			if _, ok := components.Space.First(w); !ok {
				factory.CreateSpace(w)
			}
			log.Info("engine created", "width", e.Width, "height", e.Height)

		case session.ResizeSurface:
			log.Debug("surface resized", "width", e.Width, "height", e.Height)

		case session.Prefetch:
			sess.Prefetch = append(sess.Prefetch, e.Path)

		case session.RebuildBoundaries:
			rebuildSweep(w, e.Width, e.Height)
			sess.Platform = rebuildBoundaries(w, e.Width, e.Height)

		case session.PlayCue:
			PlayCue(w, e.Cue)

		case session.Spawn:
			factory.CreateProjectile(w, e)
			sess.Spawned++

		case session.ModeChanged:
			showBanner(w, e.Rain)
			log.Info("rain mode", "on", e.Rain)
		}
	}
}
