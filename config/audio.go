package config

// CueID represents a named sound cue
type CueID int

const (
	CueNone CueID = iota
	CueType
	CueRain
)

// String returns the cue's asset name.
func (c CueID) String() string {
	switch c {
	case CueType:
		return "type"
	case CueRain:
		return "rain"
	default:
		return "none"
	}
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
	Volume     float64 // 0.0 - 1.0
	Muted      bool
}

// ToneConfig describes one synthesized cue
type ToneConfig struct {
	Frequency   float64 // Hz; 0 means noise only
	DurationMS  int
	AttackMS    int
	ReleaseMS   int
	NoiseMix    float64 // 0.0 - 1.0
	Amplitude   float64
	SweepTarget float64 // Hz reached at the end of the cue; 0 keeps Frequency
}

// CueConfig maps cue IDs to their synthesis parameters
type CueConfig struct {
	Tones             map[CueID]ToneConfig
	VolumeMultipliers map[CueID]float64
}

var Audio AudioConfig
var Cue CueConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		Volume:     0.8,
	}

	Cue = CueConfig{
		Tones: map[CueID]ToneConfig{
			CueType: {
				Frequency:  1200,
				DurationMS: 40,
				AttackMS:   2,
				ReleaseMS:  30,
				NoiseMix:   0.35,
				Amplitude:  0.5,
			},
			CueRain: {
				Frequency:   300,
				DurationMS:  2200,
				AttackMS:    400,
				ReleaseMS:   1200,
				NoiseMix:    0.85,
				Amplitude:   0.4,
				SweepTarget: 120,
			},
		},
		VolumeMultipliers: map[CueID]float64{
			CueRain: 0.7,
		},
	}
}
