package sprites

import (
	"image/color"
	"testing"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"
)

func TestColorIsStable(t *testing.T) {
	for _, sym := range []string{"A", "num-1", "/", "F1"} {
		if Color(sym) != Color(sym) {
			t.Errorf("colour of %q changed", sym)
		}
	}
}

func TestRasterizeDisc(t *testing.T) {
	img := Rasterize("A", "", 30, nil)

	if b := img.Bounds(); b.Dx() != 60 || b.Dy() != 60 {
		t.Fatalf("bounds %v", b)
	}
	if got := img.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("corner %v, want transparent", got)
	}
	if got := img.RGBAAt(30, 5); got != Color("A") {
		t.Errorf("disc pixel %v, want %v", got, Color("A"))
	}
}

func TestRasterizeLabel(t *testing.T) {
	f, err := truetype.Parse(gobold.TTF)
	if err != nil {
		t.Fatal(err)
	}
	face := truetype.NewFace(f, &truetype.Options{Size: 28})

	img := Rasterize("W", "W", 30, face)

	white := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if c := img.RGBAAt(x, y); c.R > 0xf0 && c.G > 0xf0 && c.B > 0xf0 {
				white++
			}
		}
	}
	if white == 0 {
		t.Error("label not drawn")
	}
	if img.RGBAAt(0, 0) != (color.RGBA{}) {
		t.Error("label spilled outside the disc")
	}
}
