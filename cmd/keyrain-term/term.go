package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/automoto/keyrain/components"
	"github.com/automoto/keyrain/config"
	"github.com/automoto/keyrain/cues"
	"github.com/automoto/keyrain/keymap"
	"github.com/automoto/keyrain/sprites"
	"github.com/automoto/keyrain/systems"
	"github.com/automoto/keyrain/tags"
	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/yohamta/donburi"
)

type term struct {
	screen tcell.Screen
	world  donburi.World
	events chan tcell.Event

	rate      beep.SampleRate
	audioInit bool
}

func newTerm() (*term, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	t := &term{
		screen: screen,
		world:  donburi.NewWorld(),
		events: make(chan tcell.Event, 64),
		rate:   beep.SampleRate(config.Audio.SampleRate),
	}
	systems.Setup(t.world)

	if err := speaker.Init(t.rate, t.rate.N(time.Second/10)); err != nil {
		// Non-fatal, the toy runs without sound
		log.Warn("audio unavailable", "err", err)
	} else {
		t.audioInit = true
	}

	return t, nil
}

// poll forwards events from src to out until src is finalized, which closes
// out, or done is closed.
func poll(src interface{ PollEvent() tcell.Event }, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := src.PollEvent()
		if ev == nil {
			close(out)
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

// run owns the world. The poll goroutine only forwards events.
func (t *term) run() error {
	defer t.screen.Fini()

	done := make(chan struct{})
	defer close(done)

	go poll(t.screen, t.events, done)

	t.resize()

	ticker := time.NewTicker(time.Second / time.Duration(config.Window.TPS))
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return nil
			}
			if quit := t.handle(ev); quit {
				return nil
			}
		case <-ticker.C:
			systems.Update(t.world)
			systems.DrainPrefetch(t.world)
			t.playCues()
			t.draw()
		}
	}
}

func (t *term) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.resize()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyF1:
			systems.QueueKey(t.world, keymap.CodeF1)
		case tcell.KeyF2:
			systems.QueueKey(t.world, keymap.CodeF2)
		case tcell.KeyEnter:
			systems.QueueKey(t.world, keymap.CodeEnter)
		case tcell.KeyRune:
			if code, ok := keymap.FromRune(ev.Rune()); ok {
				systems.QueueKey(t.world, code)
			}
		}
	}
	return false
}

func (t *term) resize() {
	cols, rows := t.screen.Size()
	systems.QueueResize(t.world, float64(cols)*config.Term.ScaleX, float64(rows)*config.Term.ScaleY)
	t.screen.Sync()
}

func (t *term) playCues() {
	for _, cue := range systems.DrainCues(t.world) {
		if !t.audioInit {
			continue
		}
		s, err := cues.Streamer(cue, t.rate)
		if err != nil {
			log.Debug("cue unavailable", "cue", cue, "err", err)
			continue
		}
		speaker.Play(s)
	}
}

func (t *term) draw() {
	t.screen.Clear()
	cols, rows := t.screen.Size()

	if systems.GetSettings(t.world).Debug {
		t.drawBoundaries(cols, rows)
	}

	tags.Projectile.Each(t.world, func(e *donburi.Entry) {
		pos := components.Body.Get(e).Body.Position()
		x := int(pos.X / config.Term.ScaleX)
		y := int(pos.Y / config.Term.ScaleY)
		if x < 0 || x >= cols || y < 0 || y >= rows {
			return
		}

		p := components.Projectile.Get(e)
		c := sprites.Color(components.Sprite.Get(e).Texture)
		style := tcell.StyleDefault.
			Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
			Bold(p.Rain)
		t.screen.SetContent(x, y, glyph(p.Symbol), nil, style)
	})

	stats := systems.GetStats(t.world)
	if systems.GetSettings(t.world).HUD {
		mode := "normal"
		if stats.Rain {
			mode = "rain"
		}
		t.drawText(0, 0, fmt.Sprintf("balls %d  %s  spawned %d  reaped %d  swept %d",
			stats.Live, mode, stats.Spawned, stats.Reaped, stats.Swept), tcell.StyleDefault)
	}

	if entry, ok := components.Banner.First(t.world); ok {
		banner := components.Banner.Get(entry)
		if banner.Alpha > 0 {
			t.drawText((cols-len(banner.Text))/2, rows/4, banner.Text, tcell.StyleDefault.Bold(true))
		}
	}

	t.screen.Show()
}

// drawBoundaries marks the boundaries along the bottom row, since they sit
// below the viewport.
func (t *term) drawBoundaries(cols, rows int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	tags.Boundary.Each(t.world, func(e *donburi.Entry) {
		a, b := components.Boundary.Get(e).Spec.Endpoints()
		for x := int(a.X / config.Term.ScaleX); x <= int(b.X/config.Term.ScaleX); x++ {
			if x >= 0 && x < cols {
				t.screen.SetContent(x, rows-1, '_', nil, style)
			}
		}
	})
}

func (t *term) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

// glyph is the character drawn for symbol.
func glyph(symbol string) rune {
	label := []rune(strings.TrimPrefix(symbol, keymap.NumpadPrefix))
	if len(label) == 0 {
		return '?'
	}
	return label[0]
}
