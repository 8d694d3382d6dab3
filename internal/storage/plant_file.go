package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"greenhouse/internal/core/model"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// ErrNoPlants indicates that nothing has been persisted yet.
var ErrNoPlants = errors.New("no persisted plants")

type plantRecord struct {
	ID    uuid.UUID `json:"id"`
	Type  string    `json:"type"`
	Stage int       `json:"stage"`
}

// PlantFile stores the plant collection as a JSON array.
type PlantFile struct {
	path string
}

// NewPlantFile returns a PlantFile backed by path.
func NewPlantFile(path string) *PlantFile {
	return &PlantFile{path: path}
}

// Path returns the backing file location.
func (file *PlantFile) Path() string {
	return file.path
}

// Load reads the persisted collection in file order.
func (file *PlantFile) Load() ([]model.Plant, error) {
	rawData, err := os.ReadFile(file.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoPlants
		}
		return nil, fmt.Errorf("read plant file: %w", err)
	}

	plants, err := DecodePlants(rawData)
	if err != nil {
		return nil, err
	}
	if len(plants) == 0 {
		return nil, ErrNoPlants
	}
	return plants, nil
}

// Save replaces the file contents atomically.
func (file *PlantFile) Save(plants []model.Plant) error {
	serialized, err := EncodePlants(plants)
	if err != nil {
		return err
	}
	return writeFileAtomic(file.path, serialized, 0o644)
}

// EncodePlants renders plants in the persisted JSON format.
func EncodePlants(plants []model.Plant) ([]byte, error) {
	records := make([]plantRecord, 0, len(plants))
	for _, plant := range plants {
		records = append(records, plantRecord{
			ID:    plant.ID,
			Type:  string(plant.Type),
			Stage: plant.Stage,
		})
	}
	serialized, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("marshal plants: %w", err)
	}
	return serialized, nil
}

// DecodePlants parses the persisted JSON format.
// Unknown plant types are rejected; stages are clamped into range.
func DecodePlants(rawData []byte) ([]model.Plant, error) {
	var records []plantRecord
	if err := json.Unmarshal(rawData, &records); err != nil {
		return nil, fmt.Errorf("parse plant file: %w", err)
	}

	plants := make([]model.Plant, 0, len(records))
	for _, record := range records {
		plantType, err := model.ParsePlantType(record.Type)
		if err != nil {
			return nil, fmt.Errorf("parse plant %s: %w", record.ID, err)
		}
		if record.ID == uuid.Nil {
			return nil, fmt.Errorf("parse plant file: missing plant id")
		}
		plants = append(plants, model.Plant{
			ID:    record.ID,
			Type:  plantType,
			Stage: clampStage(record.Stage),
		})
	}
	return plants, nil
}

func clampStage(stage int) int {
	if stage < 0 {
		return 0
	}
	if stage > model.MaxStage {
		return model.MaxStage
	}
	return stage
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
