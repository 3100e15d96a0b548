package scenes

import (
	"sync"

	"github.com/automoto/keyrain/assets"
	cfg "github.com/automoto/keyrain/config"
	"github.com/automoto/keyrain/input"
	"github.com/automoto/keyrain/render"
	"github.com/automoto/keyrain/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const layerDefault ecs.LayerID = 0

var (
	audioContext     *audio.Context
	audioContextOnce sync.Once
)

// WorldScene runs the toy in a window.
type WorldScene struct {
	ecs  *ecs.ECS
	hud  *render.HUD
	cues *assets.CuePlayer
	once sync.Once

	width, height    int // last size reported by Layout
	queuedW, queuedH int // last size handed to the session
}

func NewWorldScene() *WorldScene {
	return &WorldScene{}
}

// Layout records the outside size of the window. The session sees it on
// the next Update.
func (ws *WorldScene) Layout(width, height int) {
	ws.width, ws.height = width, height
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)

	if ws.width != ws.queuedW || ws.height != ws.queuedH {
		systems.QueueResize(ws.ecs.World, float64(ws.width), float64(ws.height))
		ws.queuedW, ws.queuedH = ws.width, ws.height
	}

	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Window.Background)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		log.Warn("shaders unavailable, rain tint disabled", "err", err)
	}

	audioContextOnce.Do(func() {
		audioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
	ws.cues = assets.NewCuePlayer(audioContext)
	ws.cues.Preload()

	ws.hud = render.NewHUD()

	world := donburi.NewWorld()
	systems.Setup(world)

	e := ecs.NewECS(world)

	// Input runs first so keys reach the session in the same tick
	e.AddSystem(input.UpdateInput)
	for _, system := range systems.Pipeline {
		e.AddSystem(adapt(system))
	}
	e.AddSystem(ws.updatePrefetch)
	e.AddSystem(ws.updateAudio)
	e.AddSystem(ws.hud.Update)

	e.AddRenderer(layerDefault, render.DrawProjectiles)
	e.AddRenderer(layerDefault, render.DrawDebug)
	e.AddRenderer(layerDefault, render.DrawBanner)
	e.AddRenderer(layerDefault, ws.hud.Draw)

	ws.ecs = e
}

func (ws *WorldScene) updatePrefetch(e *ecs.ECS) {
	for _, path := range systems.DrainPrefetch(e.World) {
		assets.Prefetch(path)
	}
}

func (ws *WorldScene) updateAudio(e *ecs.ECS) {
	for _, cue := range systems.DrainCues(e.World) {
		ws.cues.Play(cue)
	}
}

func adapt(system func(donburi.World)) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		system(e.World)
	}
}
