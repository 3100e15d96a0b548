package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerData is the mode-change banner (singleton component)
type BannerData struct {
	Text  string
	Rain  bool
	Alpha float32
	Fade  *gween.Tween
}

var Banner = donburi.NewComponentType[BannerData]()

// SettingsData holds runtime toggles (singleton component)
type SettingsData struct {
	Debug bool
	HUD   bool
}

var Settings = donburi.NewComponentType[SettingsData]()
