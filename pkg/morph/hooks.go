package morph

// State names the phase a run is in. Transitions are strictly forward:
// INITIALIZING → PERTURBING → FROZEN → DONE. Runs without a freeze
// period skip FROZEN.
type State int

const (
	StateInitializing State = iota
	StatePerturbing
	StateFrozen
	StateDone
)

var stateNames = map[State]string{
	StateInitializing: "INITIALIZING",
	StatePerturbing:   "PERTURBING",
	StateFrozen:       "FROZEN",
	StateDone:         "DONE",
}

func (s State) String() string { return stateNames[s] }

// Hooks receives events from a morph run. Implementations must be
// cheap; they are called from inside the iteration loop. Registering
// hooks on the Config keeps the engine free of logging and UI
// dependencies while still letting the CLI show progress.
type Hooks interface {
	// OnStart fires once after validation, before the first iteration.
	OnStart(target string, iterations int)

	// OnTransition fires on every state change.
	OnTransition(from, to State, iteration int)

	// OnFrame fires whenever a snapshot is recorded.
	OnFrame(iteration, frame int)

	// OnDone fires after the final iteration with the run statistics.
	OnDone(stats RunStats)
}

// NoopHooks is the no-op implementation of Hooks.
type NoopHooks struct{}

func (NoopHooks) OnStart(string, int)            {}
func (NoopHooks) OnTransition(State, State, int) {}
func (NoopHooks) OnFrame(int, int)               {}
func (NoopHooks) OnDone(RunStats)                {}
