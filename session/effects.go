package session

import (
	"github.com/automoto/keyrain/config"
	"github.com/yohamta/donburi/features/math"
)

// Effect is an instruction produced by the session for the world to carry out.
type Effect interface {
	effect()
}

// CreateEngine asks for the physics space and renderer to be created.
// It is emitted once, on the first accepted resize.
type CreateEngine struct {
	Width, Height float64
}

// ResizeSurface asks the existing renderer to resize its drawing surface.
type ResizeSurface struct {
	Width, Height float64
}

// Prefetch asks the texture store to warm path.
type Prefetch struct {
	Path string
}

// RebuildBoundaries asks for the three boundaries to be replaced.
type RebuildBoundaries struct {
	Width, Height float64
}

// PlayCue asks for a sound cue. Playback is fire-and-forget.
type PlayCue struct {
	Cue config.CueID
}

// Spawn asks for a new projectile.
type Spawn struct {
	Symbol  string
	Texture string
	// Position is where the body is inserted; in rain mode it has already
	// been moved above the viewport.
	Position math.Vec2
	Force    math.Vec2
	Rain     bool
}

// ModeChanged reports a rain-mode toggle.
type ModeChanged struct {
	Rain bool
}

func (CreateEngine) effect()      {}
func (ResizeSurface) effect()     {}
func (Prefetch) effect()          {}
func (RebuildBoundaries) effect() {}
func (PlayCue) effect()           {}
func (Spawn) effect()             {}
func (ModeChanged) effect()       {}
