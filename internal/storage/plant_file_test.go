package storage

import (
	"os"
	"path/filepath"
	"testing"

	"greenhouse/internal/core/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlantFileLoadMissing(t *testing.T) {
	file := NewPlantFile(filepath.Join(t.TempDir(), "greenhouse.json"))

	plants, err := file.Load()

	assert.ErrorIs(t, err, ErrNoPlants)
	assert.Nil(t, plants)
}

func TestPlantFileRoundTrip(t *testing.T) {
	file := NewPlantFile(filepath.Join(t.TempDir(), "nested", "greenhouse.json"))
	plants := []model.Plant{
		{ID: uuid.New(), Type: model.Herb, Stage: 3},
		{ID: uuid.New(), Type: model.Sunflower, Stage: 0},
		{ID: uuid.New(), Type: model.Vine, Stage: 2},
	}

	require.NoError(t, file.Save(plants))
	loaded, err := file.Load()

	require.NoError(t, err)
	assert.Equal(t, plants, loaded)
}

func TestPlantFileSaveReplacesContents(t *testing.T) {
	dir := t.TempDir()
	file := NewPlantFile(filepath.Join(dir, "greenhouse.json"))

	require.NoError(t, file.Save([]model.Plant{model.NewPlant(model.Cactus), model.NewPlant(model.Herb)}))
	single := []model.Plant{model.NewPlant(model.Vine)}
	require.NoError(t, file.Save(single))

	loaded, err := file.Load()
	require.NoError(t, err)
	assert.Equal(t, single, loaded)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestPlantFileEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "greenhouse.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	_, err := NewPlantFile(path).Load()

	assert.ErrorIs(t, err, ErrNoPlants)
}

func TestPlantFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "greenhouse.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewPlantFile(path).Load()

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoPlants)
}

func TestDecodePlants(t *testing.T) {
	id := uuid.MustParse("5b4b0c9e-7d6e-4d0b-9a4f-1a2b3c4d5e6f")

	t.Run("wire format", func(t *testing.T) {
		plants, err := DecodePlants([]byte(`[{"id":"5b4b0c9e-7d6e-4d0b-9a4f-1a2b3c4d5e6f","type":"cactus","stage":2}]`))
		require.NoError(t, err)
		assert.Equal(t, []model.Plant{{ID: id, Type: model.Cactus, Stage: 2}}, plants)
	})

	t.Run("stage clamped", func(t *testing.T) {
		plants, err := DecodePlants([]byte(`[{"id":"5b4b0c9e-7d6e-4d0b-9a4f-1a2b3c4d5e6f","type":"herb","stage":7}]`))
		require.NoError(t, err)
		assert.Equal(t, model.MaxStage, plants[0].Stage)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := DecodePlants([]byte(`[{"id":"5b4b0c9e-7d6e-4d0b-9a4f-1a2b3c4d5e6f","type":"orchid","stage":0}]`))
		assert.Error(t, err)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := DecodePlants([]byte(`[{"type":"herb","stage":0}]`))
		assert.Error(t, err)
	})
}

func TestEncodePlantsWireFormat(t *testing.T) {
	id := uuid.MustParse("5b4b0c9e-7d6e-4d0b-9a4f-1a2b3c4d5e6f")

	serialized, err := EncodePlants([]model.Plant{{ID: id, Type: model.Sunflower, Stage: 1}})

	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"5b4b0c9e-7d6e-4d0b-9a4f-1a2b3c4d5e6f","type":"sunflower","stage":1}]`, string(serialized))
}
