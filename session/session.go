// Package session holds the per-session state of the toy and turns input
// and resize events into effects. It never touches the physics engine or
// the renderer itself.
package session

import (
	"errors"
	stdmath "math"
	"time"

	"github.com/automoto/keyrain/config"
	"github.com/automoto/keyrain/keymap"
	"github.com/automoto/keyrain/layout"
	"github.com/yohamta/donburi/features/math"
)

// ErrInvalidViewport is returned for a viewport with a non-positive or
// non-finite dimension.
var ErrInvalidViewport = errors.New("invalid viewport size")

// Phase is the resize controller state.
type Phase int

const (
	Uninitialized Phase = iota
	Ready
)

func (p Phase) String() string {
	if p == Ready {
		return "ready"
	}
	return "uninitialized"
}

// State is one session. The zero value is not usable; call New.
type State struct {
	Phase  Phase
	Width  float64
	Height float64
	Rain   bool
	Recent Recent
	Layout layout.Table

	rows       [][]string
	prefetched map[string]bool
}

// New returns an uninitialized session using rows as the keyboard layout.
func New(rows [][]string) *State {
	return &State{
		Phase:      Uninitialized,
		Layout:     layout.Table{},
		rows:       rows,
		prefetched: make(map[string]bool),
	}
}

// Resize handles a viewport size change. The first accepted call moves the
// session to Ready and asks for the engine to be created; later calls ask
// for the existing surface to be resized. Both rebuild the layout table and
// the boundaries. A call with the current size produces no effects.
//
// Sizes larger than config.Viewport are clamped. Non-positive sizes are
// rejected with ErrInvalidViewport and leave the session unchanged.
func (s *State) Resize(w, h float64) ([]Effect, error) {
	if !(w > 0) || !(h > 0) || stdmath.IsInf(w, 0) || stdmath.IsInf(h, 0) {
		return nil, ErrInvalidViewport
	}
	w = stdmath.Min(w, config.Viewport.MaxWidth)
	h = stdmath.Min(h, config.Viewport.MaxHeight)

	if s.Phase == Ready && w == s.Width && h == s.Height {
		return nil, nil
	}

	var effects []Effect
	if s.Phase == Uninitialized {
		effects = append(effects, CreateEngine{Width: w, Height: h})
	} else {
		effects = append(effects, ResizeSurface{Width: w, Height: h})
	}

	s.Width, s.Height = w, h
	s.Layout = layout.Build(s.rows, w)

	for _, symbol := range s.Layout.Symbols() {
		path := keymap.TexturePath(symbol)
		if s.prefetched[path] {
			continue
		}
		s.prefetched[path] = true
		effects = append(effects, Prefetch{Path: path})
	}

	effects = append(effects, RebuildBoundaries{Width: w, Height: h})
	s.Phase = Ready

	return effects, nil
}

// KeyDown handles a key press. Codes without a symbol, symbols that are not
// on the layout, and presses before the first resize produce no effects.
func (s *State) KeyDown(code keymap.Code, now time.Time) []Effect {
	if s.Phase != Ready {
		return nil
	}

	symbol, ok := keymap.Symbol(code)
	if !ok {
		return nil
	}

	x, ok := s.Layout.Position(symbol)
	if !ok {
		return nil
	}

	effects := []Effect{
		PlayCue{Cue: config.CueType},
		SpawnAt(symbol, x, s.Height-config.Projectile.SpawnOffsetY, s.Rain, s.Height, now),
	}

	if s.Recent.Observe(symbol) {
		s.Rain = !s.Rain
		effects = append(effects, ModeChanged{Rain: s.Rain})
		if s.Rain {
			effects = append(effects, PlayCue{Cue: config.CueRain})
		}
	}

	return effects
}

// SpawnAt describes a projectile for symbol pressed at (x, y).
//
// In normal mode the force is a small clock-derived horizontal jitter and an
// upward kick proportional to the viewport height. In rain mode the body is
// moved to config.Projectile.RainSpawnY and no force is applied.
func SpawnAt(symbol string, x, y float64, rain bool, viewportHeight float64, now time.Time) Spawn {
	p := config.Projectile
	spawn := Spawn{
		Symbol:   symbol,
		Texture:  keymap.TexturePath(symbol),
		Position: math.NewVec2(x, y),
		Rain:     rain,
	}

	if rain {
		spawn.Position.Y = p.RainSpawnY
		return spawn
	}

	jitter := float64(now.UnixMilli()%p.JitterModulo)*p.JitterStep - p.JitterBias
	spawn.Force = math.NewVec2(jitter, -viewportHeight/p.LiftDivisor)
	return spawn
}
