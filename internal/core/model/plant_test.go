package model

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlantType(t *testing.T) {
	for _, plantType := range PlantTypes {
		parsed, err := ParsePlantType(string(plantType))
		require.NoError(t, err)
		assert.Equal(t, plantType, parsed)
	}

	_, err := ParsePlantType("orchid")
	assert.Error(t, err)
}

func TestRandomPlantTypeStaysInSet(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		assert.Contains(t, PlantTypes, RandomPlantType(rng))
	}
}

func TestNewPlantIsSeedWithUniqueID(t *testing.T) {
	first := NewPlant(Cactus)
	second := NewPlant(Cactus)

	assert.Equal(t, 0, first.Stage)
	assert.Equal(t, Cactus, first.Type)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.Bloomed())
}

func TestPlantEmojiFollowsStage(t *testing.T) {
	plant := NewPlant(Vine)

	expected := []string{"🌱", "🌿", "🪴", "🌺"}
	for stage, glyph := range expected {
		plant.Stage = stage
		assert.Equal(t, glyph, plant.Emoji())
	}

	plant.Stage = 9
	assert.Equal(t, "🌺", plant.Emoji())
}

func TestPlantTypeDisplayNames(t *testing.T) {
	assert.Equal(t, "SunFlower", Sunflower.DisplayName())
	assert.Equal(t, "Cactus", Cactus.DisplayName())
	assert.Equal(t, "Vine", Vine.DisplayName())
	assert.Equal(t, "Herb", Herb.DisplayName())
	for _, plantType := range PlantTypes {
		assert.Len(t, plantType.EmojiStages(), MaxStage+1)
		assert.NotEmpty(t, plantType.Icon())
	}
}
