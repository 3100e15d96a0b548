package systems

import (
	"github.com/automoto/keyrain/components"
	cfg "github.com/automoto/keyrain/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// UpdateTweens advances projectile pops (one unit per tick) and the banner
// fade (in seconds).
func UpdateTweens(w donburi.World) {
	for e := range components.Sprite.Iter(w) {
		sprite := components.Sprite.Get(e)
		if sprite.Pop == nil {
			continue
		}
		v, done := sprite.Pop.Update(1)
		sprite.Scale = float64(v)
		if done {
			sprite.Pop = nil
			sprite.Scale = 1
		}
	}

	if entry, ok := components.Banner.First(w); ok {
		banner := components.Banner.Get(entry)
		if banner.Fade != nil {
			a, done := banner.Fade.Update(1 / float32(cfg.Window.TPS))
			banner.Alpha = a
			if done {
				banner.Fade = nil
				banner.Alpha = 0
			}
		}
	}
}

func showBanner(w donburi.World, rain bool) {
	entry, ok := components.Banner.First(w)
	if !ok {
		return
	}
	banner := components.Banner.Get(entry)
	banner.Rain = rain
	banner.Text = "rain off"
	if rain {
		banner.Text = "RAIN"
	}
	banner.Alpha = 1
	banner.Fade = gween.New(1, 0, float32(cfg.HUD.BannerSeconds), ease.InQuad)
}
