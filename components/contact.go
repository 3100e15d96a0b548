package components

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi/features/events"
)

// ContactEventData is published when two bodies start touching the platform.
// Either side may be the platform.
type ContactEventData struct {
	A, B *cp.Body
}

var ContactBegin = events.NewEventType[ContactEventData]()
