// Package sprites draws the procedural projectile textures used when no
// image exists for a key.
package sprites

import (
	"hash/fnv"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var palette = []color.RGBA{
	{0xe6, 0x4a, 0x3c, 0xff},
	{0xf3, 0x9c, 0x12, 0xff},
	{0xf1, 0xc4, 0x0f, 0xff},
	{0x2e, 0xcc, 0x71, 0xff},
	{0x1a, 0xbc, 0x9c, 0xff},
	{0x34, 0x98, 0xdb, 0xff},
	{0x9b, 0x59, 0xb6, 0xff},
	{0xe8, 0x43, 0x93, 0xff},
}

// Color returns the disc colour for symbol. The same symbol always gets the
// same colour.
func Color(symbol string) color.RGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(symbol))
	return palette[h.Sum32()%uint32(len(palette))]
}

// Rasterize draws a disc of the given radius in the symbol's colour with
// label centred on it. face may be nil for a disc without a label.
func Rasterize(symbol, label string, radius int, face font.Face) *image.RGBA {
	size := 2 * radius
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	fill := Color(symbol)
	r2 := radius * radius
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := x-radius, y-radius
			if dx*dx+dy*dy < r2 {
				img.SetRGBA(x, y, fill)
			}
		}
	}

	if face == nil || label == "" {
		return img
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
	}
	metrics := face.Metrics()
	width := d.MeasureString(label)
	d.Dot = fixed.Point26_6{
		X: fixed.I(radius) - width/2,
		Y: fixed.I(radius) + (metrics.Ascent-metrics.Descent)/2,
	}
	d.DrawString(label)

	return img
}
