package model

import "fmt"

// Phase is the wizard session lifecycle state.
type Phase string

const (
	PhaseInProgress Phase = "in_progress"
	PhaseComplete   Phase = "complete"
)

// complete → in_progress is the explicit "back to edit" action; there is no
// automatic transition out of complete.
var validPhaseTransitions = map[Phase]map[Phase]bool{
	PhaseInProgress: {
		PhaseComplete: true,
	},
	PhaseComplete: {
		PhaseInProgress: true,
	},
}

func ValidatePhaseTransition(from, to Phase) error {
	allowed, ok := validPhaseTransitions[from]
	if !ok {
		return fmt.Errorf("unknown phase %q", from)
	}
	if !allowed[to] {
		return fmt.Errorf("invalid wizard transition: %q → %q", from, to)
	}
	return nil
}
