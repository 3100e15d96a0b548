package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	cfg "github.com/automoto/keyrain/config"
	"github.com/automoto/keyrain/cues"
	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// Optional recorded cues, sfx/<cue>.ogg or sfx/<cue>.wav. Cues without a
// file are synthesized.
//
//go:embed all:sfx
var audioFS embed.FS

// CuePlayer plays cues fire-and-forget.
type CuePlayer struct {
	cache   map[cfg.CueID][]byte // decoded PCM per cue
	context *audio.Context
}

// NewCuePlayer creates a cue player for ctx.
func NewCuePlayer(ctx *audio.Context) *CuePlayer {
	return &CuePlayer{
		cache:   make(map[cfg.CueID][]byte),
		context: ctx,
	}
}

// Preload decodes or synthesizes every configured cue.
func (p *CuePlayer) Preload() {
	for cue := range cfg.Cue.Tones {
		if _, err := p.load(cue); err != nil {
			log.Debug("cue unavailable", "cue", cue, "err", err)
		}
	}
}

// Play starts cue. Failures are logged and otherwise ignored.
func (p *CuePlayer) Play(cue cfg.CueID) {
	data, err := p.load(cue)
	if err != nil {
		log.Debug("cue unavailable", "cue", cue, "err", err)
		return
	}
	player := p.context.NewPlayerFromBytes(data)
	player.Play()
}

func (p *CuePlayer) load(cue cfg.CueID) ([]byte, error) {
	if data, ok := p.cache[cue]; ok {
		return data, nil
	}

	data, err := p.decodeFile(cue)
	if errors.Is(err, fs.ErrNotExist) {
		data, err = cues.PCM(cue, beep.SampleRate(p.context.SampleRate()))
	}
	if err != nil {
		return nil, err
	}

	p.cache[cue] = data
	return data, nil
}

func (p *CuePlayer) decodeFile(cue cfg.CueID) ([]byte, error) {
	for _, ext := range []string{".ogg", ".wav"} {
		path := filepath.ToSlash(filepath.Join("sfx", cue.String()+ext))
		data, err := audioFS.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
		}
		return p.decode(path, data)
	}
	return nil, fs.ErrNotExist
}

func (p *CuePlayer) decode(path string, data []byte) ([]byte, error) {
	var stream io.Reader
	var err error

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(p.context.SampleRate(), bytes.NewReader(data))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(p.context.SampleRate(), bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}
	return decoded, nil
}
