package timekeeper

import (
	"fmt"
	"sync"
	"time"

	"greenhouse/internal/core/bus"
	"greenhouse/internal/core/model"
	"greenhouse/internal/storage"
)

// Notifier delivers a user-facing notification. Failures stay inside the
// implementation.
type Notifier interface {
	Notify(title, body string)
}

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval time.Duration
	Ticker       TickerFunc
	Dispatch     Dispatcher
	Now          func() time.Time
}

// TimeKeeper is the work/break countdown state machine.
type TimeKeeper struct {
	mu         sync.Mutex
	prefs      storage.Preferences
	bus        *bus.Bus
	notifier   Notifier
	options    Config
	config     model.TimerConfig
	isWork     bool
	running    bool
	remaining  int
	ticker     Ticker
	generation uint64
	events     []chan Event
}

// New creates a stopped TimeKeeper in the work phase with the full work
// duration loaded.
func New(prefs storage.Preferences, b *bus.Bus, notifier Notifier, options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Ticker == nil {
		options.Ticker = NewWallTicker
	}
	if options.Dispatch == nil {
		options.Dispatch = Inline
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	keeper := &TimeKeeper{
		prefs:    prefs,
		bus:      b,
		notifier: notifier,
		options:  options,
		config:   LoadConfig(prefs),
		isWork:   true,
	}
	keeper.remaining = keeper.config.PhaseSeconds(true)
	return keeper
}

// LoadConfig reads session lengths from prefs, clamped into range.
func LoadConfig(prefs storage.Preferences) model.TimerConfig {
	return model.TimerConfig{
		WorkMinutes:  prefs.IntWithFallback(model.PrefWorkMinutes, model.DefaultWorkMinutes),
		BreakMinutes: prefs.IntWithFallback(model.PrefBreakMinutes, model.DefaultBreakMinutes),
	}.Clamped()
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	keeper.events = append(keeper.events, ch)
	keeper.mu.Unlock()
	return ch
}

// Start begins ticking. Calling Start while running does nothing.
func (keeper *TimeKeeper) Start() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.running {
		return
	}
	keeper.running = true
	keeper.installTickerLocked()
	keeper.emitLocked(EventStateChange, "")
}

// Stop cancels ticking. Calling Stop while stopped does nothing.
func (keeper *TimeKeeper) Stop() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if !keeper.running && keeper.ticker == nil {
		return
	}
	keeper.stopLocked()
	keeper.emitLocked(EventStateChange, "")
}

// Reset stops the timer and reloads the full duration of the current phase.
func (keeper *TimeKeeper) Reset() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.stopLocked()
	keeper.remaining = keeper.config.PhaseSeconds(keeper.isWork)
	keeper.emitLocked(EventStateChange, "")
}

// SetDurations stores new session lengths and resets the current phase.
func (keeper *TimeKeeper) SetDurations(workMinutes, breakMinutes int) model.TimerConfig {
	config := model.TimerConfig{WorkMinutes: workMinutes, BreakMinutes: breakMinutes}.Clamped()
	keeper.prefs.SetInt(model.PrefWorkMinutes, config.WorkMinutes)
	keeper.prefs.SetInt(model.PrefBreakMinutes, config.BreakMinutes)

	keeper.mu.Lock()
	keeper.config = config
	keeper.mu.Unlock()

	keeper.Reset()
	return config
}

// Close stops the timer and closes observers.
func (keeper *TimeKeeper) Close() {
	keeper.mu.Lock()
	keeper.stopLocked()
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Snapshot returns the current state.
func (keeper *TimeKeeper) Snapshot() Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return Snapshot{
		State:        stateFor(keeper.isWork),
		Running:      keeper.running,
		Remaining:    keeper.remaining,
		WorkMinutes:  keeper.config.WorkMinutes,
		BreakMinutes: keeper.config.BreakMinutes,
	}
}

// Formatted renders the remaining time as MM:SS.
func (keeper *TimeKeeper) Formatted() string {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return FormatRemaining(keeper.remaining)
}

// Progress returns the elapsed fraction of the current phase.
func (keeper *TimeKeeper) Progress() float64 {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.progressLocked()
}

// FormatRemaining renders seconds as zero-padded minutes and seconds.
// Minutes are not wrapped at 60.
func FormatRemaining(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// CompletionMessage returns the notification text for a finished phase.
func CompletionMessage(finishedWork bool) (string, string) {
	if finishedWork {
		return "Work Session Done!", "Time for a break 🌿"
	}
	return "Break Over!", "Ready to focus? 🧘"
}

func (keeper *TimeKeeper) installTickerLocked() {
	if keeper.ticker != nil {
		keeper.ticker.Stop()
	}
	keeper.generation++
	generation := keeper.generation
	dispatch := keeper.options.Dispatch
	keeper.ticker = keeper.options.Ticker(keeper.options.TickInterval, func() {
		dispatch(func() {
			keeper.tick(generation)
		})
	})
}

func (keeper *TimeKeeper) stopLocked() {
	keeper.running = false
	keeper.generation++
	if keeper.ticker != nil {
		keeper.ticker.Stop()
		keeper.ticker = nil
	}
}

func (keeper *TimeKeeper) tick(generation uint64) {
	keeper.mu.Lock()
	if !keeper.running || generation != keeper.generation {
		keeper.mu.Unlock()
		return
	}
	if keeper.remaining > 0 {
		keeper.remaining--
		keeper.emitLocked(EventProgress, "")
		keeper.mu.Unlock()
		return
	}
	keeper.mu.Unlock()

	keeper.completeSession(generation)
}

// completeSession runs stop, growth signal, notification, phase flip and
// duration reload in that order.
func (keeper *TimeKeeper) completeSession(generation uint64) {
	keeper.mu.Lock()
	if !keeper.running || generation != keeper.generation {
		keeper.mu.Unlock()
		return
	}
	keeper.stopLocked()
	finishedWork := keeper.isWork
	keeper.mu.Unlock()

	if finishedWork && keeper.bus != nil {
		keeper.bus.Emit(bus.WorkSessionComplete)
	}
	if keeper.notifier != nil {
		keeper.notifier.Notify(CompletionMessage(finishedWork))
	}

	keeper.mu.Lock()
	keeper.isWork = !finishedWork
	keeper.remaining = keeper.config.PhaseSeconds(keeper.isWork)
	keeper.emitLocked(EventPhaseComplete, stateFor(finishedWork))
	keeper.mu.Unlock()
}

func (keeper *TimeKeeper) progressLocked() float64 {
	total := keeper.config.PhaseSeconds(keeper.isWork)
	if total <= 0 {
		return 0
	}
	progress := 1 - float64(keeper.remaining)/float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

func (keeper *TimeKeeper) emitLocked(eventType EventType, completed State) {
	event := Event{
		Type:      eventType,
		State:     stateFor(keeper.isWork),
		Running:   keeper.running,
		Remaining: time.Duration(keeper.remaining) * time.Second,
		Progress:  keeper.progressLocked(),
		Completed: completed,
		At:        keeper.options.Now(),
	}
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
