package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move cursor up
	ActionDown           // S, Down arrow - move cursor down
	ActionLeft           // A, Left arrow - move cursor left
	ActionRight          // D, Right arrow - move cursor right
	ActionSelect         // Space - click the cell under the cursor
	ActionConfirm        // Enter - click, or advance after a clear
	ActionNext           // N - next level after a clear
	ActionHint           // H - show hint
	ActionRestart        // R - clear all paths and retry
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit game/session
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
	case ActionSelect:
		return "Select"
	case ActionConfirm:
		return "Confirm"
	case ActionNext:
		return "Next"
	case ActionHint:
		return "Hint"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerKind distinguishes mouse interactions.
type PointerKind int

const (
	// PointerPress is a button press (a click).
	PointerPress PointerKind = iota
	// PointerDrag is motion while the primary button is held.
	PointerDrag
	// PointerHover is motion with no button held.
	PointerHover
	// PointerRelease ends a drag.
	PointerRelease
)

func (k PointerKind) String() string {
	switch k {
	case PointerPress:
		return "Press"
	case PointerDrag:
		return "Drag"
	case PointerHover:
		return "Hover"
	case PointerRelease:
		return "Release"
	default:
		return "Unknown"
	}
}

// PointerEvent is a mouse interaction in screen character coordinates.
type PointerEvent struct {
	X, Y int
	Kind PointerKind
}

// InputEvent is one key action or pointer event. Key events carry an
// Action; pointer events carry ActionNone and a Pointer.
type InputEvent struct {
	Action  Action
	Pointer PointerEvent
}

// IsPointer reports whether the event came from the mouse.
func (e InputEvent) IsPointer() bool {
	return e.Action == ActionNone
}

// InputFrame represents the input for one simulation tick.
// Actions answers "was this pressed at all"; Events keeps every key and
// pointer event in arrival order so games can replay them one at a time.
type InputFrame struct {
	Actions map[Action]bool
	Events  []InputEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set records an action for this frame. Repeated presses are kept as
// separate events. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	f.Events = append(f.Events, InputEvent{Action: a})
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddPointer appends a pointer event to the frame.
func (f *InputFrame) AddPointer(ev PointerEvent) {
	f.Events = append(f.Events, InputEvent{Pointer: ev})
}

// Pointers returns the pointer events of the frame in arrival order.
func (f InputFrame) Pointers() []PointerEvent {
	var out []PointerEvent
	for _, ev := range f.Events {
		if ev.IsPointer() {
			out = append(out, ev.Pointer)
		}
	}
	return out
}

// Empty reports whether the frame carries no input at all.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Events) == 0
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Events = f.Events[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if len(f.Events) > 0 {
		clone.Events = make([]InputEvent, len(f.Events))
		copy(clone.Events, f.Events)
	}
	return clone
}
