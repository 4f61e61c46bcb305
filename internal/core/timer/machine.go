package timer

import (
	"sync"
	"time"

	"pomotray/internal/core/model"
)

// Recorder receives a session record for each credited focus interval.
type Recorder interface {
	Record(session model.Session)
}

// Config contains runtime options for Machine.
type Config struct {
	// TickInterval is the cadence of the countdown source.
	TickInterval time.Duration
	// SwitchDelay separates interval completion from the mode switch so the
	// UI can show the completion cue first.
	SwitchDelay time.Duration
	// Now stamps session records; defaults to time.Now.
	Now func() time.Time
}

// Machine is the timer state machine: one mode at a time, counting down one
// second per tick while running, deciding the next mode on completion.
type Machine struct {
	mu             sync.Mutex
	config         model.TimerConfig
	options        Config
	mode           Mode
	remaining      time.Duration
	total          time.Duration
	running        bool
	completedFocus int
	recorder       Recorder
	tickStop       chan struct{}
	pendingSwitch  *time.Timer
	events         []chan Event
	closed         bool
}

// Snapshot is a point-in-time copy of the machine state for rendering.
type Snapshot struct {
	Mode           Mode
	Remaining      time.Duration
	Total          time.Duration
	Running        bool
	CompletedFocus int
}

// New creates a Machine armed for a focus interval, paused.
func New(config model.TimerConfig, options Config) *Machine {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.SwitchDelay <= 0 {
		options.SwitchDelay = 1500 * time.Millisecond
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	machine := &Machine{
		config:  config,
		options: options,
		mode:    ModeFocus,
	}
	machine.total = machine.modeDurationLocked(ModeFocus)
	machine.remaining = machine.total
	return machine
}

// SetRecorder injects the session recorder.
func (machine *Machine) SetRecorder(recorder Recorder) {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	machine.recorder = recorder
}

// Subscribe registers a new observer channel.
func (machine *Machine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	machine.mu.Lock()
	machine.events = append(machine.events, ch)
	machine.mu.Unlock()
	return ch
}

// Config returns a copy of the active timer configuration. Observers use
// this instead of sharing the settings value that produced it.
func (machine *Machine) Config() model.TimerConfig {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	return machine.config
}

// Snapshot returns a copy of the current state.
func (machine *Machine) Snapshot() Snapshot {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	return Snapshot{
		Mode:           machine.mode,
		Remaining:      machine.remaining,
		Total:          machine.total,
		Running:        machine.running,
		CompletedFocus: machine.completedFocus,
	}
}

// SetMode arms the machine for the given mode: full duration, not running.
// Any active tick source and pending mode switch are cancelled first.
func (machine *Machine) SetMode(mode Mode) {
	machine.mu.Lock()
	machine.cancelTickLocked()
	machine.cancelSwitchLocked()
	machine.mode = mode
	machine.total = machine.modeDurationLocked(mode)
	machine.remaining = machine.total
	machine.running = false
	machine.emitLocked(machine.eventLocked(EventModeChange))
	machine.mu.Unlock()
}

// Start begins the countdown. No-op while already running or when the
// current interval has already hit zero and is waiting for its mode switch.
func (machine *Machine) Start() {
	machine.mu.Lock()
	if machine.running || machine.closed || machine.remaining <= 0 {
		machine.mu.Unlock()
		return
	}
	machine.running = true
	stop := make(chan struct{})
	machine.tickStop = stop
	interval := machine.options.TickInterval
	machine.emitLocked(machine.eventLocked(EventRunState))
	machine.mu.Unlock()

	go machine.runTicks(stop, interval)
}

// Pause freezes the countdown. The tick source is cancelled even when the
// machine is not running.
func (machine *Machine) Pause() {
	machine.mu.Lock()
	machine.cancelTickLocked()
	if !machine.running {
		machine.mu.Unlock()
		return
	}
	machine.running = false
	machine.emitLocked(machine.eventLocked(EventRunState))
	machine.mu.Unlock()
}

// Toggle pauses when running and starts otherwise.
func (machine *Machine) Toggle() {
	machine.mu.Lock()
	running := machine.running
	machine.mu.Unlock()
	if running {
		machine.Pause()
		return
	}
	machine.Start()
}

// Reset re-arms the current mode at full duration, paused.
func (machine *Machine) Reset() {
	machine.mu.Lock()
	machine.cancelTickLocked()
	machine.cancelSwitchLocked()
	machine.total = machine.modeDurationLocked(machine.mode)
	machine.remaining = machine.total
	machine.running = false
	machine.emitLocked(machine.eventLocked(EventModeChange))
	machine.mu.Unlock()
}

// Skip ends the current interval without crediting a session.
func (machine *Machine) Skip() {
	machine.mu.Lock()
	machine.cancelTickLocked()
	machine.cancelSwitchLocked()
	machine.completeLocked(true)
	machine.mu.Unlock()
}

// UpdateConfig applies new durations and re-arms the current mode.
func (machine *Machine) UpdateConfig(config model.TimerConfig) {
	machine.mu.Lock()
	machine.cancelTickLocked()
	machine.config = config
	machine.total = machine.modeDurationLocked(machine.mode)
	machine.remaining = machine.total
	machine.running = false
	machine.emitLocked(machine.eventLocked(EventModeChange))
	machine.mu.Unlock()
}

// Tick advances the countdown by one second. It is driven by the tick
// source while running and is a no-op otherwise.
func (machine *Machine) Tick() {
	machine.mu.Lock()
	if !machine.running {
		machine.mu.Unlock()
		return
	}
	machine.remaining -= time.Second
	if machine.remaining <= 0 {
		machine.remaining = 0
		machine.cancelTickLocked()
		machine.completeLocked(false)
		machine.mu.Unlock()
		return
	}
	machine.emitLocked(machine.eventLocked(EventTick))
	machine.mu.Unlock()
}

// Close cancels all timer sources and closes observer channels.
func (machine *Machine) Close() {
	machine.mu.Lock()
	if machine.closed {
		machine.mu.Unlock()
		return
	}
	machine.closed = true
	machine.cancelTickLocked()
	machine.cancelSwitchLocked()
	events := machine.events
	machine.events = nil
	machine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (machine *Machine) runTicks(stop chan struct{}, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			machine.Tick()
		}
	}
}

func (machine *Machine) completeLocked(skipped bool) {
	machine.running = false

	var credited *model.Session
	if machine.mode == ModeFocus && !skipped {
		machine.completedFocus++
		session := model.NewFocusSession(machine.options.Now(), int(machine.total/time.Minute))
		if machine.recorder != nil {
			machine.recorder.Record(session)
		}
		credited = &session
	}

	nextMode := machine.nextModeLocked()

	// The switch is deliberately deferred so observers can render the
	// completion cue before the display re-arms.
	machine.pendingSwitch = time.AfterFunc(machine.options.SwitchDelay, func() {
		machine.SetMode(nextMode)
	})

	event := machine.eventLocked(EventCompleted)
	event.Session = credited
	event.NextMode = nextMode
	event.Skipped = skipped
	machine.emitLocked(event)
}

func (machine *Machine) nextModeLocked() Mode {
	if machine.mode != ModeFocus {
		return ModeFocus
	}
	interval := machine.config.LongBreakInterval
	if interval > 0 && machine.completedFocus > 0 && machine.completedFocus%interval == 0 {
		return ModeLongBreak
	}
	return ModeShortBreak
}

func (machine *Machine) modeDurationLocked(mode Mode) time.Duration {
	switch mode {
	case ModeShortBreak:
		return machine.config.ShortBreakDuration
	case ModeLongBreak:
		return machine.config.LongBreakDuration
	default:
		return machine.config.FocusDuration
	}
}

func (machine *Machine) cancelTickLocked() {
	if machine.tickStop != nil {
		close(machine.tickStop)
		machine.tickStop = nil
	}
}

func (machine *Machine) cancelSwitchLocked() {
	if machine.pendingSwitch != nil {
		machine.pendingSwitch.Stop()
		machine.pendingSwitch = nil
	}
}

func (machine *Machine) eventLocked(eventType EventType) Event {
	return Event{
		Type:           eventType,
		Mode:           machine.mode,
		Remaining:      machine.remaining,
		Total:          machine.total,
		Running:        machine.running,
		CompletedFocus: machine.completedFocus,
		At:             time.Now(),
	}
}

func (machine *Machine) emitLocked(event Event) {
	events := append([]chan Event(nil), machine.events...)
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}
