package cues

import (
	"math"
	"math/rand"

	"github.com/gopxl/beep"
)

// tone is a sine oscillator mixed with white noise. The frequency glides
// linearly from freq to target over the tone's length.
type tone struct {
	freq     float64
	target   float64
	noise    float64
	phase    float64
	position int
	length   int
	rate     beep.SampleRate
	rng      *rand.Rand
}

func newTone(freq, target, noise float64, length int, rate beep.SampleRate, seed int64) *tone {
	if target == 0 {
		target = freq
	}
	return &tone{
		freq:   freq,
		target: target,
		noise:  noise,
		length: length,
		rate:   rate,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.length {
			return i, i > 0
		}

		progress := float64(t.position) / float64(t.length)
		freq := t.freq + (t.target-t.freq)*progress

		val := (1 - t.noise) * math.Sin(2*math.Pi*t.phase)
		if t.noise > 0 {
			val += t.noise * (t.rng.Float64()*2 - 1)
		}

		samples[i][0] = val
		samples[i][1] = val

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope applies a linear attack and release to a stream of known length.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	length   int
	gain     float64
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := e.gain
		if e.position < e.attack {
			vol *= float64(e.position) / float64(e.attack)
		}
		if remaining := e.length - e.position; remaining < e.release {
			vol *= float64(remaining) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }
