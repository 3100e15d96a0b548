package factory

import (
	"github.com/automoto/keyrain/archetypes"
	"github.com/automoto/keyrain/components"
	cfg "github.com/automoto/keyrain/config"
	"github.com/automoto/keyrain/session"
	"github.com/automoto/keyrain/tags"
	"github.com/jakecoffman/cp"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// CreateProjectile inserts a ball for spawn into the physics space, applies
// its force once and scales it in.
func CreateProjectile(w donburi.World, spawn session.Spawn) *donburi.Entry {
	p := archetypes.Projectile.Spawn(w)
	space := components.Space.Get(components.Space.MustFirst(w))

	r := cfg.Projectile.Radius
	pos := cp.Vector{X: spawn.Position.X, Y: spawn.Position.Y}
	body := space.AddBall(pos, r, cfg.Projectile.Restitution, cfg.Projectile.Friction)
	body.UserData = p.Entity()
	space.ApplyForce(body, cp.Vector{X: spawn.Force.X, Y: spawn.Force.Y})
	components.Body.SetValue(p, components.BodyData{Body: body})

	components.Projectile.SetValue(p, components.ProjectileData{
		Symbol: spawn.Symbol,
		Rain:   spawn.Rain,
		Force:  spawn.Force,
	})
	components.Sprite.SetValue(p, components.SpriteData{
		Texture: spawn.Texture,
		Pop:     gween.New(0, 1, float32(cfg.Projectile.PopFrames), ease.OutBack),
	})

	obj := resolv.NewObject(pos.X-r, pos.Y-r, 2*r, 2*r, tags.ResolvProjectile)
	obj.SetShape(resolv.NewRectangle(0, 0, 2*r, 2*r))
	obj.Data = p
	components.Object.SetValue(p, components.ObjectData{Object: obj})
	if sweep, ok := components.SweepSpace.First(w); ok {
		AddToSweep(components.SweepSpace.Get(sweep), obj, pos.X-r, pos.Y-r)
	}

	return p
}
