package session

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/automoto/keyrain/config"
	"github.com/automoto/keyrain/keymap"
	"github.com/automoto/keyrain/layout"
)

func ready(t *testing.T, w, h float64) *State {
	t.Helper()
	s := New(config.Keyboard.Rows)
	if _, err := s.Resize(w, h); err != nil {
		t.Fatalf("Resize(%v, %v): %v", w, h, err)
	}
	return s
}

func letter(r rune) keymap.Code {
	return keymap.CodeA + keymap.Code(r-'A')
}

func TestFirstResizeCreatesEngine(t *testing.T) {
	s := New(config.Keyboard.Rows)
	effects, err := s.Resize(800, 600)
	if err != nil {
		t.Fatal(err)
	}
	if s.Phase != Ready {
		t.Fatalf("phase %v after first resize", s.Phase)
	}

	if _, ok := effects[0].(CreateEngine); !ok {
		t.Errorf("first effect %T, want CreateEngine", effects[0])
	}
	last, ok := effects[len(effects)-1].(RebuildBoundaries)
	if !ok || last.Width != 800 || last.Height != 600 {
		t.Errorf("last effect %#v, want RebuildBoundaries{800 600}", effects[len(effects)-1])
	}

	prefetches := 0
	for _, e := range effects {
		if _, ok := e.(Prefetch); ok {
			prefetches++
		}
	}
	// Numpad digits share textures with the main row, and so do the numpad
	// operators with their main-block twins where one exists.
	if prefetches == 0 || prefetches > len(s.Layout) {
		t.Errorf("got %d prefetches for %d symbols", prefetches, len(s.Layout))
	}
}

func TestLaterResizeReusesEngine(t *testing.T) {
	s := ready(t, 800, 600)

	effects, err := s.Resize(1024, 768)
	if err != nil {
		t.Fatal(err)
	}

	for _, e := range effects {
		switch e.(type) {
		case CreateEngine:
			t.Error("engine created twice")
		case Prefetch:
			t.Error("textures prefetched twice")
		}
	}
	if rs, ok := effects[0].(ResizeSurface); !ok || rs.Width != 1024 || rs.Height != 768 {
		t.Errorf("first effect %#v, want ResizeSurface{1024 768}", effects[0])
	}
	if x, _ := s.Layout.Position("R"); math.Abs(x-(4.0/14+0.5/14)*1024) > 1e-9 {
		t.Errorf("layout not rebuilt for new width, R at %v", x)
	}

	if effects, _ := s.Resize(1024, 768); len(effects) != 0 {
		t.Errorf("same-size resize produced %d effects", len(effects))
	}
}

func TestResizeRejectsInvalidViewport(t *testing.T) {
	for _, size := range [][2]float64{{0, 600}, {800, 0}, {-1, 600}, {math.NaN(), 600}, {800, math.Inf(1)}} {
		s := New(config.Keyboard.Rows)
		effects, err := s.Resize(size[0], size[1])
		if !errors.Is(err, ErrInvalidViewport) {
			t.Errorf("Resize(%v) err = %v", size, err)
		}
		if effects != nil || s.Phase != Uninitialized {
			t.Errorf("Resize(%v) changed state", size)
		}
	}

	s := ready(t, 800, 600)
	if _, err := s.Resize(0, 0); err == nil {
		t.Error("zero resize accepted on a ready session")
	}
	if s.Width != 800 || s.Height != 600 {
		t.Errorf("rejected resize changed size to %vx%v", s.Width, s.Height)
	}
}

func TestResizeClampsHugeViewport(t *testing.T) {
	s := ready(t, 1e9, 600)
	if s.Width != config.Viewport.MaxWidth {
		t.Errorf("width %v, want %v", s.Width, config.Viewport.MaxWidth)
	}
}

func TestKeyDownBeforeResize(t *testing.T) {
	s := New(config.Keyboard.Rows)
	if effects := s.KeyDown(letter('A'), time.Now()); effects != nil {
		t.Errorf("got %d effects before the first resize", len(effects))
	}
}

func TestKeyDownIgnoresUnmappedKeys(t *testing.T) {
	s := ready(t, 800, 600)

	for _, code := range []keymap.Code{keymap.CodeShift, keymap.CodeSpace, keymap.CodeEnter, 255} {
		if effects := s.KeyDown(code, time.Now()); effects != nil {
			t.Errorf("code %d produced %d effects", code, len(effects))
		}
	}
}

func TestKeyDownSpawns(t *testing.T) {
	s := ready(t, 800, 800)
	s.Layout = layout.Table{"A": 120}

	effects := s.KeyDown(letter('A'), time.UnixMilli(1_700_000_000_007))
	if len(effects) != 2 {
		t.Fatalf("got %d effects, want 2", len(effects))
	}
	if cue, ok := effects[0].(PlayCue); !ok || cue.Cue != config.CueType {
		t.Errorf("first effect %#v, want the type cue", effects[0])
	}

	spawn, ok := effects[1].(Spawn)
	if !ok {
		t.Fatalf("second effect %T, want Spawn", effects[1])
	}
	if spawn.Position.X != 120 || spawn.Position.Y != 750 {
		t.Errorf("spawned at %v", spawn.Position)
	}
	if spawn.Force.Y != -800.0/3600 {
		t.Errorf("force y %v, want %v", spawn.Force.Y, -800.0/3600)
	}
	if math.Abs(spawn.Force.X-(7*0.004-0.02)) > 1e-12 {
		t.Errorf("force x %v", spawn.Force.X)
	}
	if spawn.Texture != "img/A.png" || spawn.Symbol != "A" {
		t.Errorf("spawn %+v", spawn)
	}
}

func TestSpawnAtNormalMode(t *testing.T) {
	for ms := int64(0); ms < 20; ms++ {
		for _, h := range []float64{1, 600, 800, 1440} {
			spawn := SpawnAt("Q", 10, 20, false, h, time.UnixMilli(1_000_000+ms))
			if spawn.Force.Y != -h/3600 {
				t.Fatalf("h=%v ms=%v: force y %v", h, ms, spawn.Force.Y)
			}
			if spawn.Force.X < -0.02-1e-12 || spawn.Force.X > 0.016+1e-12 {
				t.Fatalf("jitter %v out of range", spawn.Force.X)
			}
			if spawn.Position.X != 10 || spawn.Position.Y != 20 {
				t.Fatalf("position %v", spawn.Position)
			}
		}
	}
}

func TestSpawnAtRainMode(t *testing.T) {
	spawn := SpawnAt("Q", 42, 550, true, 600, time.Now())

	if spawn.Position.X != 42 || spawn.Position.Y != -30 {
		t.Errorf("rain spawn at %v, want (42, -30)", spawn.Position)
	}
	if spawn.Force.X != 0 || spawn.Force.Y != 0 {
		t.Errorf("rain force %v, want zero", spawn.Force)
	}
	if !spawn.Rain {
		t.Error("rain flag not set")
	}
}

func TestSecretSequenceTogglesRain(t *testing.T) {
	s := ready(t, 800, 600)
	now := time.Now()

	toggles := 0
	var rainCues int
	feed := func(r rune) {
		for _, e := range s.KeyDown(letter(r), now) {
			switch e := e.(type) {
			case ModeChanged:
				toggles++
			case PlayCue:
				if e.Cue == config.CueRain {
					rainCues++
				}
			}
		}
	}

	for _, r := range "XRAI" {
		feed(r)
		if toggles != 0 {
			t.Fatalf("toggled after %q", r)
		}
	}
	feed('N')
	if toggles != 1 || !s.Rain {
		t.Fatalf("toggles=%d rain=%v after RAIN", toggles, s.Rain)
	}
	if rainCues != 1 {
		t.Errorf("rain cue played %d times", rainCues)
	}

	feed('N')
	if toggles != 1 {
		t.Error("a lone N re-triggered the sequence")
	}

	for _, r := range "RAIN" {
		feed(r)
	}
	if toggles != 2 || s.Rain {
		t.Errorf("toggles=%d rain=%v after second RAIN", toggles, s.Rain)
	}
	if rainCues != 1 {
		t.Errorf("turning rain off played a cue")
	}
}

func TestSpawnUsesModeBeforeToggle(t *testing.T) {
	s := ready(t, 800, 600)
	now := time.Now()

	for _, r := range "RAI" {
		s.KeyDown(letter(r), now)
	}
	effects := s.KeyDown(letter('N'), now)

	spawn := effects[1].(Spawn)
	if spawn.Rain {
		t.Error("the N that enables rain mode should still spawn normally")
	}

	next := s.KeyDown(letter('Q'), now)[1].(Spawn)
	if !next.Rain || next.Position.Y != -30 {
		t.Errorf("spawn after toggle %+v", next)
	}
}

func TestRecentWindow(t *testing.T) {
	var r Recent
	for _, k := range []string{"r", "a", "i", "n"} {
		if r.Observe(k) {
			t.Fatal("lowercase sequence matched")
		}
	}

	r = Recent{}
	r.Observe("num-1")
	r.Observe("R")
	r.Observe("A")
	r.Observe("I")
	if got := r.Keys(); got != [4]string{"num-1", "R", "A", "I"} {
		t.Errorf("window %v", got)
	}
	if !r.Observe("N") {
		t.Error("RAIN not matched")
	}
}
