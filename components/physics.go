package components

import (
	"github.com/automoto/keyrain/physics"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// BodyData links an entity to its rigid body.
type BodyData struct {
	Body *cp.Body
}

var Body = donburi.NewComponentType[BodyData]()

// SpaceData holds the physics space (singleton component).
type SpaceData struct {
	*physics.Space
}

var Space = donburi.NewComponentType[SpaceData]()

// BoundaryData stores a live boundary.
type BoundaryData struct {
	*physics.Boundary
}

var Boundary = donburi.NewComponentType[BoundaryData]()
