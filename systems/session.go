package systems

import (
	"time"

	"github.com/automoto/keyrain/archetypes"
	"github.com/automoto/keyrain/components"
	cfg "github.com/automoto/keyrain/config"
	"github.com/automoto/keyrain/keymap"
	"github.com/automoto/keyrain/session"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

// now is the clock used for spawn jitter.
var now = time.Now

// GetOrCreateSession returns the session singleton, creating it on first use.
func GetOrCreateSession(w donburi.World) *donburi.Entry {
	if entry, ok := components.Session.First(w); ok {
		return entry
	}

	entry := archetypes.Session.Spawn(w)
	components.Session.SetValue(entry, components.SessionData{
		State:    session.New(cfg.Keyboard.Rows),
		Platform: donburi.Null,
	})
	components.Audio.SetValue(entry, components.AudioData{
		PendingCues: make([]cfg.CueID, 0, 8),
		Muted:       cfg.Audio.Muted,
	})
	components.Settings.SetValue(entry, components.SettingsData{
		Debug: cfg.Debug.Enabled,
		HUD:   cfg.HUD.Visible,
	})
	return entry
}

// QueueKey records a key press reported by a frontend.
func QueueKey(w donburi.World, code keymap.Code) {
	input := components.Input.Get(GetOrCreateSession(w))
	input.PendingKeys = append(input.PendingKeys, code)
}

// QueueResize records a viewport size reported by a frontend. Only the
// latest size is kept.
func QueueResize(w donburi.World, width, height float64) {
	input := components.Input.Get(GetOrCreateSession(w))
	input.Resize = true
	input.Width, input.Height = width, height
}

// UpdateSession drains the input buffer into the session and applies the
// resulting effects. A pending resize is handled before the keys of the
// same tick.
func UpdateSession(w donburi.World) {
	entry := GetOrCreateSession(w)
	sess := components.Session.Get(entry)
	input := components.Input.Get(entry)

	if input.Resize {
		input.Resize = false
		effects, err := sess.Resize(input.Width, input.Height)
		if err != nil {
			log.Debug("resize rejected", "width", input.Width, "height", input.Height, "err", err)
		}
		applyEffects(w, entry, effects)
	}

	for _, code := range input.PendingKeys {
		switch code {
		case keymap.CodeF1:
			ToggleHUD(w)
			continue
		case keymap.CodeF2:
			ToggleDebug(w)
			continue
		}
		applyEffects(w, entry, sess.KeyDown(code, now()))
	}
	input.PendingKeys = input.PendingKeys[:0]

	sess.Tick++
}

// DrainPrefetch returns the texture paths the session asked to warm and
// empties the list.
func DrainPrefetch(w donburi.World) []string {
	sess := components.Session.Get(GetOrCreateSession(w))
	paths := sess.Prefetch
	sess.Prefetch = nil
	return paths
}
