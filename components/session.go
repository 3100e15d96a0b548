package components

import (
	"github.com/automoto/keyrain/session"
	"github.com/yohamta/donburi"
)

// SessionData is the session singleton.
type SessionData struct {
	*session.State

	Platform donburi.Entity // current platform boundary, donburi.Null before the first build
	Tick     int
	Spawned  uint64
	Reaped   uint64
	Swept    uint64
	Prefetch []string // texture paths waiting for the texture store
}

var Session = donburi.NewComponentType[SessionData]()
