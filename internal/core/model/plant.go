package model

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// MaxStage is the fully bloomed growth stage.
const MaxStage = 3

// PlantType is the kind of plant growing in a pot.
type PlantType string

const (
	Sunflower PlantType = "sunflower"
	Cactus    PlantType = "cactus"
	Vine      PlantType = "vine"
	Herb      PlantType = "herb"
)

// PlantTypes lists every plant type in display order.
var PlantTypes = []PlantType{Sunflower, Cactus, Vine, Herb}

// ParsePlantType validates a persisted plant type.
func ParsePlantType(value string) (PlantType, error) {
	for _, plantType := range PlantTypes {
		if string(plantType) == value {
			return plantType, nil
		}
	}
	return "", fmt.Errorf("unknown plant type %q", value)
}

// RandomPlantType picks a plant type using rng.
func RandomPlantType(rng *rand.Rand) PlantType {
	return PlantTypes[rng.Intn(len(PlantTypes))]
}

// DisplayName returns the label shown under a pot.
func (plantType PlantType) DisplayName() string {
	switch plantType {
	case Sunflower:
		return "SunFlower"
	case Cactus:
		return "Cactus"
	case Vine:
		return "Vine"
	case Herb:
		return "Herb"
	default:
		return string(plantType)
	}
}

// EmojiStages returns one glyph per growth stage.
func (plantType PlantType) EmojiStages() []string {
	switch plantType {
	case Sunflower:
		return []string{"🌱", "🌿", "🌻", "🌻"}
	case Cactus:
		return []string{"🌵", "🌵", "🌵", "🌵"}
	case Vine:
		return []string{"🌱", "🌿", "🪴", "🌺"}
	case Herb:
		return []string{"🌿", "🌿", "🌿", "🪴"}
	default:
		return []string{"🌱"}
	}
}

// Icon returns the glyph used in the plant type picker.
func (plantType PlantType) Icon() string {
	switch plantType {
	case Sunflower:
		return "🌻"
	case Cactus:
		return "🌵"
	case Vine:
		return "🪴"
	case Herb:
		return "🌿"
	default:
		return "🌱"
	}
}

// Plant is a single pot in the greenhouse.
type Plant struct {
	ID    uuid.UUID
	Type  PlantType
	Stage int
}

// NewPlant creates a seed of the given type with a fresh identity.
func NewPlant(plantType PlantType) Plant {
	return Plant{
		ID:    uuid.New(),
		Type:  plantType,
		Stage: 0,
	}
}

// Bloomed reports whether the plant reached the final stage.
func (plant Plant) Bloomed() bool {
	return plant.Stage >= MaxStage
}

// Emoji returns the glyph for the plant's current stage.
func (plant Plant) Emoji() string {
	stages := plant.Type.EmojiStages()
	index := plant.Stage
	if index >= len(stages) {
		index = len(stages) - 1
	}
	if index < 0 {
		index = 0
	}
	return stages[index]
}
