package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SpriteData references a texture by path. The renderer resolves the path
// through the texture store.
type SpriteData struct {
	Texture string
	Scale   float64
	Pop     *gween.Tween // scale-in, nil once finished
}

var Sprite = donburi.NewComponentType[SpriteData]()

// ProjectileData describes a spawned ball.
type ProjectileData struct {
	Symbol string
	Rain   bool
	Force  math.Vec2
}

var Projectile = donburi.NewComponentType[ProjectileData]()
