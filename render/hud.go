package render

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/keyrain/config"
	"github.com/automoto/keyrain/fonts"
	"github.com/automoto/keyrain/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
)

// HUD is the top-left status overlay, toggled with F1.
type HUD struct {
	UI *ebitenui.UI

	countLabel *widget.Label
	modeLabel  *widget.Label

	// Fonts (stored as interface for ebitenui compatibility)
	normalFace text.Face
	smallFace  text.Face
}

// NewHUD builds the overlay.
func NewHUD() *HUD {
	h := &HUD{
		normalFace: text.NewGoXFace(fonts.Regular.Get()),
		smallFace:  text.NewGoXFace(fonts.Small.Get()),
	}
	h.buildUI()
	return h
}

func (h *HUD) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.NewInsetsSimple(6)
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 180})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(padding),
			widget.RowLayoutOpts.Spacing(2),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	h.countLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &h.normalFace, &widget.LabelColor{
			Idle: cfg.HUD.TextColor,
		}),
	)
	panel.AddChild(h.countLabel)

	h.modeLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &h.smallFace, &widget.LabelColor{
			Idle: cfg.HUD.TextColor,
		}),
	)
	panel.AddChild(h.modeLabel)

	rootContainer.AddChild(panel)

	h.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Update refreshes the labels from the world and lets ebitenui lay out.
func (h *HUD) Update(e *ecs.ECS) {
	stats := systems.GetStats(e.World)
	h.countLabel.Label = fmt.Sprintf("balls %d", stats.Live)

	mode := "normal"
	if stats.Rain {
		mode = "rain"
	}
	h.modeLabel.Label = fmt.Sprintf("%s  spawned %d  reaped %d  swept %d", mode, stats.Spawned, stats.Reaped, stats.Swept)

	h.UI.Update()
}

// Draw renders the overlay when it is enabled.
func (h *HUD) Draw(e *ecs.ECS, screen *ebiten.Image) {
	if !systems.GetSettings(e.World).HUD {
		return
	}
	h.UI.Draw(screen)
}
