package systems

import (
	"github.com/automoto/keyrain/components"
	"github.com/yohamta/donburi"
)

// GetSettings returns the runtime toggles of the session.
func GetSettings(w donburi.World) *components.SettingsData {
	return components.Settings.Get(GetOrCreateSession(w))
}

func ToggleHUD(w donburi.World) {
	s := GetSettings(w)
	s.HUD = !s.HUD
}

func ToggleDebug(w donburi.World) {
	s := GetSettings(w)
	s.Debug = !s.Debug
}
