package core

// Action is a semantic input, decoupled from the physical key.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // Up arrow, W
	ActionDown             // Down arrow, S
	ActionLeft             // Left arrow, A
	ActionRight            // Right arrow, D
	ActionPrimary          // T - place tower
	ActionSecondary        // Y - place troop
	ActionUpgrade          // U
	ActionMerge            // M
	ActionCycle            // C - next shape
	ActionMore             // + or =
	ActionLess             // -
	ActionConfirm          // Enter
	ActionBack             // B, Escape
	ActionRestart          // R
	ActionQuit             // Q, Ctrl+C
	ActionPause            // P, Space
)

var actionNames = map[Action]string{
	ActionNone:      "None",
	ActionUp:        "Up",
	ActionDown:      "Down",
	ActionLeft:      "Left",
	ActionRight:     "Right",
	ActionPrimary:   "Primary",
	ActionSecondary: "Secondary",
	ActionUpgrade:   "Upgrade",
	ActionMerge:     "Merge",
	ActionCycle:     "Cycle",
	ActionMore:      "More",
	ActionLess:      "Less",
	ActionConfirm:   "Confirm",
	ActionBack:      "Back",
	ActionRestart:   "Restart",
	ActionQuit:      "Quit",
	ActionPause:     "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame holds the actions triggered during one tick.
type InputFrame struct {
	Actions map[Action]bool
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

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
