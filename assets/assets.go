package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	_ "image/png"
	"io/fs"
	"strings"

	cfg "github.com/automoto/keyrain/config"
	"github.com/automoto/keyrain/fonts"
	"github.com/automoto/keyrain/keymap"
	"github.com/automoto/keyrain/sprites"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Optional texture overrides, addressed by keymap.TexturePath.
//
//go:embed all:img
var textureFS embed.FS

// TextureStore resolves texture paths to images. Paths without an embedded
// file get a rasterized disc instead.
type TextureStore struct {
	cache   map[string]*ebiten.Image
	missing map[string]bool
}

func NewTextureStore() *TextureStore {
	return &TextureStore{
		cache:   make(map[string]*ebiten.Image),
		missing: make(map[string]bool),
	}
}

var textures = NewTextureStore()

// Prefetch decodes the embedded file for path, if there is one.
func (s *TextureStore) Prefetch(path string) {
	if _, ok := s.cache[path]; ok || s.missing[path] {
		return
	}

	img, err := loadImage(path)
	if err != nil {
		s.missing[path] = true
		if !errors.Is(err, fs.ErrNotExist) {
			log.Debug("texture unavailable", "path", path, "err", err)
		}
		return
	}
	s.cache[path] = img
}

// Get returns the texture for path, drawing a disc labelled with symbol when
// no file exists.
func (s *TextureStore) Get(path, symbol string) *ebiten.Image {
	s.Prefetch(path)
	if img, ok := s.cache[path]; ok {
		return img
	}

	label := strings.TrimPrefix(symbol, keymap.NumpadPrefix)
	r := int(cfg.Projectile.Radius)
	img := ebiten.NewImageFromImage(sprites.Rasterize(path, label, r, fonts.Glyph.Get()))
	s.cache[path] = img
	return img
}

func loadImage(path string) (*ebiten.Image, error) {
	data, err := textureFS.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

func Prefetch(path string) {
	textures.Prefetch(path)
}

func Texture(path, symbol string) *ebiten.Image {
	return textures.Get(path, symbol)
}
