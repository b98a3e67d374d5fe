package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionConfirm        // Enter, Space - press the screen's primary button
	ActionBack           // B, Escape - press the screen's quit button
	ActionRestart        // R key - restart after game over
	ActionQuit           // Q, Ctrl+C, window close - external quit signal
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputKind distinguishes keyboard actions from pointer clicks.
type InputKind int

const (
	InputKey InputKind = iota
	InputClick
)

// InputEvent is one input delivered by the platform's event source.
type InputEvent struct {
	Kind   InputKind
	Action Action // set for InputKey
	X, Y   int    // set for InputClick, in the game's logical coordinates
}

// KeyEvent creates a keyboard event for the given action.
func KeyEvent(a Action) InputEvent {
	return InputEvent{Kind: InputKey, Action: a}
}

// ClickEvent creates a primary-button click at (x, y).
func ClickEvent(x, y int) InputEvent {
	return InputEvent{Kind: InputClick, X: x, Y: y}
}

// InputFrame holds every input that arrived since the previous tick,
// in arrival order. Games must apply them one by one so that rules checked
// per event (such as reversal prevention) see each intermediate state.
type InputFrame struct {
	Events []InputEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends a keyboard action to this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Events = append(f.Events, KeyEvent(a))
}

// Click appends a pointer click to this frame.
func (f *InputFrame) Click(x, y int) {
	f.Events = append(f.Events, ClickEvent(x, y))
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, ev := range f.Events {
		if ev.Kind == InputKey && ev.Action == a {
			return true
		}
	}
	return false
}

// Empty reports whether the frame carries no input.
func (f InputFrame) Empty() bool {
	return len(f.Events) == 0
}

// Clear resets the frame for the next tick, keeping its storage.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	if f.Events == nil {
		return InputFrame{}
	}
	events := make([]InputEvent, len(f.Events))
	copy(events, f.Events)
	return InputFrame{Events: events}
}
