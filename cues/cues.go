// Package cues synthesises the toy's sound cues. Each cue is a short beep
// stream; PCM renders one for players that want raw bytes.
package cues

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	cfg "github.com/automoto/keyrain/config"
	"github.com/gopxl/beep"
)

// Streamer returns a fresh stream for cue at rate. The gain includes the
// master volume and the cue's volume multiplier.
func Streamer(cue cfg.CueID, rate beep.SampleRate) (beep.Streamer, error) {
	t, ok := cfg.Cue.Tones[cue]
	if !ok {
		return nil, fmt.Errorf("no tone for cue %q", cue)
	}

	length := rate.N(time.Duration(t.DurationMS) * time.Millisecond)
	gain := t.Amplitude * cfg.Audio.Volume
	if mult, ok := cfg.Cue.VolumeMultipliers[cue]; ok {
		gain *= mult
	}

	src := newTone(t.Frequency, t.SweepTarget, t.NoiseMix, length, rate, int64(cue))
	return &envelope{
		streamer: src,
		attack:   rate.N(time.Duration(t.AttackMS) * time.Millisecond),
		release:  rate.N(time.Duration(t.ReleaseMS) * time.Millisecond),
		length:   length,
		gain:     gain,
	}, nil
}

// PCM renders cue as signed 16-bit little-endian stereo.
func PCM(cue cfg.CueID, rate beep.SampleRate) ([]byte, error) {
	s, err := Streamer(cue, rate)
	if err != nil {
		return nil, err
	}

	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(v)))
			}
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("render cue %q: %w", cue, err)
	}
	return out, nil
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
