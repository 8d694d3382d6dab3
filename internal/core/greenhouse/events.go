package greenhouse

import (
	"time"

	"github.com/google/uuid"
)

// EventType describes what changed in the greenhouse.
type EventType string

const (
	EventGrown   EventType = "grown"
	EventBloomed EventType = "bloomed"
	EventPlanted EventType = "planted"
	EventRetyped EventType = "retyped"
	EventRemoved EventType = "removed"
	EventReset   EventType = "reset"
	EventFlowers EventType = "flowers"
)

// Event is published to observers after every mutation.
type Event struct {
	Type         EventType
	PlantID      uuid.UUID
	FlowersTotal int
	At           time.Time
}
