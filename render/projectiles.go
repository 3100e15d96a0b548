package render

import (
	"github.com/automoto/keyrain/assets"
	"github.com/automoto/keyrain/components"
	cfg "github.com/automoto/keyrain/config"
	"github.com/automoto/keyrain/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}
	rainTint = []float32{0.45, 0.65, 1, 0.55}
)

// DrawProjectiles renders every ball at its body's position and angle.
// Balls spawned in rain mode are tinted.
func DrawProjectiles(e *ecs.ECS, screen *ebiten.Image) {
	r := cfg.Projectile.Radius
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry).Body
		pos := body.Position()
		if pos.X+r < 0 || pos.X-r > width || pos.Y+r < 0 || pos.Y-r > height {
			return
		}

		sprite := components.Sprite.Get(entry)
		projectile := components.Projectile.Get(entry)
		img := assets.Texture(sprite.Texture, projectile.Symbol)
		iw, ih := img.Bounds().Dx(), img.Bounds().Dy()

		scale := sprite.Scale * 2 * r / float64(iw)

		if projectile.Rain && assets.TintShader != nil {
			shaderOp.GeoM.Reset()
			shaderOp.GeoM.Translate(-float64(iw)/2, -float64(ih)/2)
			shaderOp.GeoM.Scale(scale, scale)
			shaderOp.GeoM.Rotate(body.Angle())
			shaderOp.GeoM.Translate(pos.X, pos.Y)
			shaderOp.Images[0] = img
			shaderOp.Uniforms = map[string]any{"Tint": rainTint}
			screen.DrawRectShader(iw, ih, assets.TintShader, shaderOp)
			return
		}

		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(-float64(iw)/2, -float64(ih)/2)
		drawOp.GeoM.Scale(scale, scale)
		drawOp.GeoM.Rotate(body.Angle())
		drawOp.GeoM.Translate(pos.X, pos.Y)
		drawOp.Filter = ebiten.FilterLinear
		screen.DrawImage(img, drawOp)
	})
}
