package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's proxy in the resolv sweep space.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// SweepSpaceData holds the resolv space that covers the live zone.
// OffsetX and OffsetY translate world coordinates into space coordinates,
// since resolv cells start at the origin.
type SweepSpaceData struct {
	Space    *resolv.Space
	LiveZone *resolv.Object
	OffsetX  float64
	OffsetY  float64
}

var SweepSpace = donburi.NewComponentType[SweepSpaceData]()
