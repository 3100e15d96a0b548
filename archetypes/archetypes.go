package archetypes

import (
	"github.com/automoto/keyrain/components"
	"github.com/automoto/keyrain/tags"
	"github.com/yohamta/donburi"
)

var (
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Body,
		components.Sprite,
		components.Object,
	)
	Chute = newArchetype(
		tags.Boundary,
		tags.Chute,
		components.Boundary,
		components.Object,
	)
	Platform = newArchetype(
		tags.Boundary,
		tags.Platform,
		components.Boundary,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	SweepSpace = newArchetype(
		components.SweepSpace,
	)
	Session = newArchetype(
		components.Session,
		components.Input,
		components.Audio,
		components.Settings,
	)
	Banner = newArchetype(
		components.Banner,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
