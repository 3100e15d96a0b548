package systems

import (
	"github.com/automoto/keyrain/components"
	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// SubscribeReaper installs the platform contact handler on w. Call it once
// per world.
func SubscribeReaper(w donburi.World) {
	components.ContactBegin.Subscribe(w, reap)
}

// reap removes the non-platform side of a platform contact. Pairs where
// neither or both sides are the platform are ignored.
func reap(w donburi.World, contact components.ContactEventData) {
	entry, ok := components.Space.First(w)
	if !ok {
		return
	}
	space := components.Space.Get(entry)

	var other *cp.Body
	switch a, b := space.IsPlatform(contact.A), space.IsPlatform(contact.B); {
	case a && !b:
		other = contact.B
	case b && !a:
		other = contact.A
	default:
		return
	}

	entity, ok := other.UserData.(donburi.Entity)
	if !ok || !w.Valid(entity) {
		return
	}
	if destroyProjectile(w, w.Entry(entity)) {
		components.Session.Get(GetOrCreateSession(w)).Reaped++
		log.Debug("projectile reaped", "entity", entity)
	}
}

// destroyProjectile removes e's body, proxy and entity. It reports false if
// e is not a live projectile.
func destroyProjectile(w donburi.World, e *donburi.Entry) bool {
	if !e.HasComponent(components.Body) {
		return false
	}
	space := components.Space.Get(components.Space.MustFirst(w))
	if !space.RemoveBall(components.Body.Get(e).Body) {
		return false
	}
	removeProxy(e)
	w.Remove(e.Entity())
	return true
}

func removeProxy(e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	if obj.Object != nil && obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
}
