package model

import "testing"

func TestValidatePhaseTransition(t *testing.T) {
	valid := []struct {
		from, to Phase
	}{
		{PhaseInProgress, PhaseComplete},
		{PhaseComplete, PhaseInProgress}, // back to edit
	}
	for _, tt := range valid {
		t.Run(string(tt.from)+"→"+string(tt.to), func(t *testing.T) {
			if err := ValidatePhaseTransition(tt.from, tt.to); err != nil {
				t.Errorf("expected valid, got error: %v", err)
			}
		})
	}

	invalid := []struct {
		from, to Phase
	}{
		{PhaseInProgress, PhaseInProgress},
		{PhaseComplete, PhaseComplete},
		{Phase("bogus"), PhaseComplete},
	}
	for _, tt := range invalid {
		t.Run("invalid_"+string(tt.from)+"→"+string(tt.to), func(t *testing.T) {
			if err := ValidatePhaseTransition(tt.from, tt.to); err == nil {
				t.Errorf("expected error for %q → %q", tt.from, tt.to)
			}
		})
	}
}
