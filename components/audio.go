package components

import (
	cfg "github.com/automoto/keyrain/config"
	"github.com/yohamta/donburi"
)

// AudioData queues cues for the frontend to play (singleton component)
type AudioData struct {
	PendingCues []cfg.CueID
	Muted       bool
}

var Audio = donburi.NewComponentType[AudioData]()
