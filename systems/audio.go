package systems

import (
	"github.com/automoto/keyrain/components"
	cfg "github.com/automoto/keyrain/config"
	"github.com/yohamta/donburi"
)

// PlayCue queues a sound cue for the frontend. Queued cues are dropped while
// muted.
func PlayCue(w donburi.World, cue cfg.CueID) {
	audioData := GetOrCreateAudio(w)
	if audioData.Muted || cue == cfg.CueNone {
		return
	}
	audioData.PendingCues = append(audioData.PendingCues, cue)
}

// DrainCues returns the queued cues and empties the queue.
func DrainCues(w donburi.World) []cfg.CueID {
	audioData := GetOrCreateAudio(w)
	if len(audioData.PendingCues) == 0 {
		return nil
	}
	cues := make([]cfg.CueID, len(audioData.PendingCues))
	copy(cues, audioData.PendingCues)
	audioData.PendingCues = audioData.PendingCues[:0]
	return cues
}

// GetOrCreateAudio returns the audio queue of the session singleton.
func GetOrCreateAudio(w donburi.World) *components.AudioData {
	return components.Audio.Get(GetOrCreateSession(w))
}
