package components

import (
	"github.com/automoto/keyrain/keymap"
	"github.com/yohamta/donburi"
)

// InputData buffers raw events between the frontend and the session
// (singleton component). Frontends append; UpdateInput drains.
type InputData struct {
	PendingKeys []keymap.Code
	// Resize is set when the frontend reports a new viewport size.
	Resize        bool
	Width, Height float64
}

var Input = donburi.NewComponentType[InputData]()
