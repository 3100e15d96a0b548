package tags

import "github.com/yohamta/donburi"

var (
	Projectile = donburi.NewTag().SetName("Projectile")
	Boundary   = donburi.NewTag().SetName("Boundary")
	Platform   = donburi.NewTag().SetName("Platform")
	Chute      = donburi.NewTag().SetName("Chute")
)

// Resolv tags for the sweep space
const (
	ResolvProjectile = "projectile"
	ResolvBoundary   = "boundary"
	ResolvLiveZone   = "livezone"
)
