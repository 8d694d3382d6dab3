// Package greenhouse owns the plant collection that grows as work
// sessions complete.
package greenhouse

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"greenhouse/internal/core/bus"
	"greenhouse/internal/core/model"
	"greenhouse/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// SeedCount is the number of pots created for an empty greenhouse.
const SeedCount = 3

// Repository persists the ordered plant collection.
type Repository interface {
	Load() ([]model.Plant, error)
	Save(plants []model.Plant) error
}

// Options contains optional collaborators for Store.
type Options struct {
	Rand *rand.Rand
	Now  func() time.Time
}

// Store is the greenhouse state: plants in layout order and the lifetime
// count of blooms.
type Store struct {
	mu           sync.Mutex
	repo         Repository
	prefs        storage.Preferences
	rng          *rand.Rand
	now          func() time.Time
	plants       []model.Plant
	flowersTotal int
	events       []chan Event
	detach       func()
}

// New loads the persisted greenhouse, seeding fresh pots when nothing
// usable was stored.
func New(repo Repository, prefs storage.Preferences, options Options) *Store {
	if options.Rand == nil {
		options.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	store := &Store{
		repo:  repo,
		prefs: prefs,
		rng:   options.Rand,
		now:   options.Now,
	}
	store.flowersTotal = prefs.IntWithFallback(model.PrefFlowersTotal, 0)
	if store.flowersTotal < 0 {
		store.flowersTotal = 0
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	store.loadLocked()
	return store
}

// Attach subscribes GrowOne to completed work sessions on b.
func (store *Store) Attach(b *bus.Bus) {
	unsubscribe := b.Subscribe(bus.WorkSessionComplete, store.GrowOne)
	store.mu.Lock()
	previous := store.detach
	store.detach = unsubscribe
	store.mu.Unlock()
	if previous != nil {
		previous()
	}
}

// Subscribe registers a new observer channel.
func (store *Store) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	store.mu.Lock()
	store.events = append(store.events, ch)
	store.mu.Unlock()
	return ch
}

// Close detaches from the bus and closes observers.
func (store *Store) Close() {
	store.mu.Lock()
	detach := store.detach
	store.detach = nil
	events := store.events
	store.events = nil
	store.mu.Unlock()

	if detach != nil {
		detach()
	}
	for _, ch := range events {
		close(ch)
	}
}

// Plants returns a copy of the collection in layout order.
func (store *Store) Plants() []model.Plant {
	store.mu.Lock()
	defer store.mu.Unlock()
	return append([]model.Plant(nil), store.plants...)
}

// FlowersTotal returns the number of blooms ever reached.
func (store *Store) FlowersTotal() int {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.flowersTotal
}

// GrowOne advances the first plant below full bloom by one stage, or
// plants a new seed when every pot has bloomed.
func (store *Store) GrowOne() {
	store.mu.Lock()
	defer store.mu.Unlock()

	index := store.firstEligibleLocked()
	if index < 0 {
		plant := store.plantLocked()
		store.saveLocked()
		store.emitLocked(EventPlanted, plant.ID)
		return
	}

	store.plants[index].Stage++
	plantID := store.plants[index].ID
	if store.plants[index].Stage == model.MaxStage {
		store.flowersTotal++
		store.prefs.SetInt(model.PrefFlowersTotal, store.flowersTotal)
		store.saveLocked()
		store.emitLocked(EventBloomed, plantID)
		return
	}
	store.saveLocked()
	store.emitLocked(EventGrown, plantID)
}

// ResetAll returns every plant to a seed, keeping identities and types.
func (store *Store) ResetAll() {
	store.mu.Lock()
	defer store.mu.Unlock()

	for i := range store.plants {
		store.plants[i].Stage = 0
	}
	store.saveLocked()
	store.emitLocked(EventReset, uuid.Nil)
}

// Change sets the type of the plant with id and resets it to a seed.
// Changing to the current type is how a single pot is reset.
func (store *Store) Change(id uuid.UUID, plantType model.PlantType) {
	store.mu.Lock()
	defer store.mu.Unlock()

	index := store.indexLocked(id)
	if index < 0 {
		return
	}
	store.plants[index].Type = plantType
	store.plants[index].Stage = 0
	store.saveLocked()
	store.emitLocked(EventRetyped, id)
}

// Add appends a new pot with a random type.
func (store *Store) Add() model.Plant {
	store.mu.Lock()
	defer store.mu.Unlock()

	plant := store.plantLocked()
	store.saveLocked()
	store.emitLocked(EventPlanted, plant.ID)
	return plant
}

// Remove deletes the plant with id if it is still present.
func (store *Store) Remove(id uuid.UUID) {
	store.mu.Lock()
	defer store.mu.Unlock()

	index := store.indexLocked(id)
	if index < 0 {
		return
	}
	store.plants = append(store.plants[:index:index], store.plants[index+1:]...)
	store.saveLocked()
	store.emitLocked(EventRemoved, id)
}

// ResetFlowers sets the lifetime bloom counter back to zero.
func (store *Store) ResetFlowers() {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.flowersTotal = 0
	store.prefs.SetInt(model.PrefFlowersTotal, 0)
	store.emitLocked(EventFlowers, uuid.Nil)
}

// Persist writes the current collection again.
func (store *Store) Persist() {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.saveLocked()
}

func (store *Store) loadLocked() {
	plants, err := store.repo.Load()
	if err != nil && !errors.Is(err, storage.ErrNoPlants) {
		log.Warn().Err(err).Msg("load greenhouse, seeding new pots")
	}
	if err != nil || len(plants) == 0 {
		store.plants = nil
		for i := 0; i < SeedCount; i++ {
			store.plantLocked()
		}
		store.saveLocked()
		return
	}
	store.plants = plants
}

func (store *Store) plantLocked() model.Plant {
	plant := model.NewPlant(model.RandomPlantType(store.rng))
	store.plants = append(store.plants, plant)
	return plant
}

func (store *Store) firstEligibleLocked() int {
	for i, plant := range store.plants {
		if plant.Stage < model.MaxStage {
			return i
		}
	}
	return -1
}

func (store *Store) indexLocked(id uuid.UUID) int {
	for i, plant := range store.plants {
		if plant.ID == id {
			return i
		}
	}
	return -1
}

func (store *Store) saveLocked() {
	snapshot := append([]model.Plant(nil), store.plants...)
	if err := store.repo.Save(snapshot); err != nil {
		log.Warn().Err(err).Int("plants", len(snapshot)).Msg("save greenhouse")
	}
}

func (store *Store) emitLocked(eventType EventType, plantID uuid.UUID) {
	event := Event{
		Type:         eventType,
		PlantID:      plantID,
		FlowersTotal: store.flowersTotal,
		At:           store.now(),
	}
	for _, ch := range store.events {
		select {
		case ch <- event:
		default:
		}
	}
}
