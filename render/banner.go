package render

import (
	"github.com/automoto/keyrain/components"
	cfg "github.com/automoto/keyrain/config"
	"github.com/automoto/keyrain/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
)

var bannerFace text.Face

// DrawBanner shows the mode-change banner while it fades out.
func DrawBanner(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Banner.First(e.World)
	if !ok {
		return
	}
	banner := components.Banner.Get(entry)
	if banner.Alpha <= 0 || banner.Text == "" {
		return
	}

	if bannerFace == nil {
		bannerFace = text.NewGoXFace(fonts.Banner.Get())
	}

	clr := cfg.HUD.TextColor
	if banner.Rain {
		clr = cfg.HUD.RainColor
	}

	w, _ := text.Measure(banner.Text, bannerFace, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate((float64(screen.Bounds().Dx())-w)/2, cfg.HUD.BannerY)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(banner.Alpha)
	text.Draw(screen, banner.Text, bannerFace, op)
}
