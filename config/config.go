package config

import (
	"image/color"
	"math"
)

// WindowConfig contains window and viewport configuration values
type WindowConfig struct {
	Width      int
	Height     int
	Title      string
	Background color.RGBA
	TPS        int // ticks per second of the simulation loop
}

// ViewportConfig bounds accepted viewport sizes
type ViewportConfig struct {
	// Sizes at or below zero are rejected; sizes above the max are clamped.
	MaxWidth  float64
	MaxHeight float64
}

// PhysicsConfig contains physics-engine configuration values
type PhysicsConfig struct {
	Gravity            float64 // px/s², positive is down
	SleepTimeThreshold float64 // seconds
	CollisionSlop      float64
	Density            float64 // mass per px² of a projectile

	// ForceToImpulse converts the spawn force (expressed in the units of a
	// 60Hz position-verlet engine) into an impulse for a fixed-step engine.
	ForceToImpulse float64

	// Damping is the fraction of velocity a body keeps after one second.
	Damping float64
}

// ProjectileConfig contains spawned ball configuration values
type ProjectileConfig struct {
	Radius      float64
	Restitution float64
	Friction    float64

	SpawnOffsetY float64 // distance above the viewport bottom for normal spawns
	RainSpawnY   float64 // y a rain-mode spawn is teleported to

	// Horizontal jitter: (millis % JitterModulo) * JitterStep - JitterBias
	JitterModulo int64
	JitterStep   float64
	JitterBias   float64

	// Vertical kick: -viewportHeight / LiftDivisor
	LiftDivisor float64

	PopFrames int // frames for the scale-in tween
}

// BoundaryConfig contains chute and platform configuration values
type BoundaryConfig struct {
	Thickness float64

	ChuteDrop     float64 // distance below the viewport bottom
	ChuteTilt     float64 // radians
	ChuteFriction float64

	PlatformDrop        float64
	PlatformWidthFactor float64
	PlatformRestitution float64
	PlatformFriction    float64
}

// SecretConfig contains the toggle sequence
type SecretConfig struct {
	Sequence [4]string
}

// SweepConfig controls the off-screen projectile sweep
type SweepConfig struct {
	IntervalTicks int
	Margin        float64
	CellSize      int
}

// KeyboardConfig is the declarative keyboard layout.
// Each row is ordered left to right; "" marks a gap.
type KeyboardConfig struct {
	Rows [][]string
}

// HUDConfig contains overlay configuration values
type HUDConfig struct {
	Visible       bool
	BannerSeconds float64
	BannerY       float64
	FontSize      float64
	TextColor     color.RGBA
	RainColor     color.RGBA
}

// DebugConfig contains debug toggles
type DebugConfig struct {
	Enabled       bool
	BoundaryColor color.RGBA
	ProxyColor    color.RGBA
	LiveZoneColor color.RGBA
}

// TermConfig contains terminal frontend configuration values
type TermConfig struct {
	// Scale converts one terminal cell into viewport pixels.
	ScaleX float64
	ScaleY float64
}

var (
	Window     WindowConfig
	Viewport   ViewportConfig
	Physics    PhysicsConfig
	Projectile ProjectileConfig
	Boundary   BoundaryConfig
	Secret     SecretConfig
	Sweep      SweepConfig
	Keyboard   KeyboardConfig
	HUD        HUDConfig
	Debug      DebugConfig
	Term       TermConfig
)

func init() {
	Window = WindowConfig{
		Width:      1280,
		Height:     720,
		Title:      "keyrain",
		Background: color.RGBA{0x22, 0x22, 0x22, 0xff},
		TPS:        60,
	}

	Viewport = ViewportConfig{
		MaxWidth:  8192,
		MaxHeight: 8192,
	}

	Physics = PhysicsConfig{
		Gravity:            1000,
		SleepTimeThreshold: 0.5,
		CollisionSlop:      0.5,
		Density:            0.001,
		ForceToImpulse:     1000.0 / 60.0 * 1000.0,
		Damping:            math.Pow(0.99, 60),
	}

	Projectile = ProjectileConfig{
		Radius:       30,
		Restitution:  0.9,
		Friction:     0.001,
		SpawnOffsetY: 50,
		RainSpawnY:   -30,
		JitterModulo: 10,
		JitterStep:   0.004,
		JitterBias:   0.02,
		LiftDivisor:  3600,
		PopFrames:    12,
	}

	Boundary = BoundaryConfig{
		Thickness:           1,
		ChuteDrop:           30,
		ChuteTilt:           0.1,
		ChuteFriction:       0.001,
		PlatformDrop:        400,
		PlatformWidthFactor: 4,
		PlatformRestitution: 0.9,
		PlatformFriction:    0.001,
	}

	Secret = SecretConfig{
		Sequence: [4]string{"R", "A", "I", "N"},
	}

	Sweep = SweepConfig{
		IntervalTicks: 30,
		Margin:        600,
		CellSize:      64,
	}

	Keyboard = KeyboardConfig{
		Rows: [][]string{
			// Main block
			{"`", "1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "-", "=", ""},
			{"", "Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P", "[", "]", "\\"},
			{"", "A", "S", "D", "F", "G", "H", "J", "K", "L", ";", "'", ""},
			{"", "", "Z", "X", "C", "V", "B", "N", "M", ",", ".", "/", "", ""},

			// Numpad
			{"", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "num-/", "num-*", "num--"},
			{"", "", "", "", "", "", "", "", "", "", "", "", "", "", "num-7", "num-8", "num-9", "num-+"},
			{"", "", "", "", "", "", "", "", "", "", "", "", "", "", "num-4", "num-5", "num-6", ""},
			{"", "", "", "", "", "", "", "", "", "", "", "", "", "", "num-1", "num-2", "num-3", ""},
			{"", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "num-0", "", "num-.", ""},
		},
	}

	HUD = HUDConfig{
		Visible:       true,
		BannerSeconds: 1.5,
		BannerY:       80,
		FontSize:      14,
		TextColor:     color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
		RainColor:     color.RGBA{0x6c, 0xb4, 0xff, 0xff},
	}

	Debug = DebugConfig{
		Enabled:       false,
		BoundaryColor: color.RGBA{0xff, 0xff, 0xff, 0xff},
		ProxyColor:    color.RGBA{0x00, 0xff, 0xff, 0xff},
		LiveZoneColor: color.RGBA{0x64, 0x64, 0x64, 0xff},
	}

	Term = TermConfig{
		ScaleX: 10,
		ScaleY: 20,
	}
}
