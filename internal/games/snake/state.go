package snake

// Phase is the screen the game is on.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Trigger is anything that can move the game between phases.
type Trigger int

const (
	TriggerStart     Trigger = iota // start button
	TriggerRestart                  // restart button
	TriggerQuit                     // quit button on the current screen
	TriggerCrash                    // fatal collision during a tick
	TriggerInterrupt                // external quit signal
)

func (t Trigger) String() string {
	switch t {
	case TriggerStart:
		return "start"
	case TriggerRestart:
		return "restart"
	case TriggerQuit:
		return "quit"
	case TriggerCrash:
		return "crash"
	case TriggerInterrupt:
		return "interrupt"
	default:
		return "unknown"
	}
}

// Transition is the outcome of firing a trigger.
type Transition struct {
	To    Phase
	Reset bool // start a fresh round before entering To
}

type edge struct {
	from Phase
	on   Trigger
}

// transitions is the only place phase changes are defined. A pair that is
// missing here is not a legal move.
var transitions = map[edge]Transition{
	{PhaseMenu, TriggerStart}:         {To: PhasePlaying, Reset: true},
	{PhaseMenu, TriggerQuit}:          {To: PhaseTerminated},
	{PhasePlaying, TriggerCrash}:      {To: PhaseGameOver},
	{PhaseGameOver, TriggerRestart}:   {To: PhasePlaying, Reset: true},
	{PhaseGameOver, TriggerQuit}:      {To: PhaseTerminated},
	{PhaseMenu, TriggerInterrupt}:     {To: PhaseTerminated},
	{PhasePlaying, TriggerInterrupt}:  {To: PhaseTerminated},
	{PhaseGameOver, TriggerInterrupt}: {To: PhaseTerminated},
}

// Fire looks up the transition for t from p.
func (p Phase) Fire(t Trigger) (Transition, bool) {
	tr, ok := transitions[edge{p, t}]
	return tr, ok
}
