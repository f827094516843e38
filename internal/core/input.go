package core

// Action represents a semantic game action, abstracted from physical keys.
// Shots are not actions: they arrive as positioned Hits on the frame.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter - confirm / launch
	ActionRestart        // R - restart after round end
	ActionQuit           // Q, Ctrl+C - exit session
	ActionPause          // P, Esc - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for one simulation tick: the set of
// actions triggered this frame plus any positioned shots (mouse clicks,
// in screen cell coordinates). Multiple shots per frame are preserved
// in arrival order.
type InputFrame struct {
	Actions map[Action]bool
	Hits    []Vec2
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddHit queues a positioned shot for this frame.
func (f *InputFrame) AddHit(pos Vec2) {
	f.Hits = append(f.Hits, pos)
}

// Clear resets all actions and shots for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Hits = f.Hits[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Hits = append(clone.Hits, f.Hits...)
	return clone
}
