package model

import "testing"

func TestGenerateCCAItemID(t *testing.T) {
	id, err := GenerateCCAItemID()
	if err != nil {
		t.Fatalf("GenerateCCAItemID failed: %v", err)
	}
	if !ValidateCCAItemID(id) {
		t.Errorf("generated ID %q does not validate", id)
	}
}

func TestGenerateCCAItemID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := GenerateCCAItemID()
		if err != nil {
			t.Fatalf("GenerateCCAItemID failed: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}

func TestValidateCCAItemID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"cca_1700000000_deadbeef", true},
		{"cca_1700000000_DEADBEEF", false},
		{"cca_170_deadbeef", false},
		{"task_1700000000_deadbeef", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := ValidateCCAItemID(tt.id); got != tt.valid {
				t.Errorf("ValidateCCAItemID(%q) = %v, want %v", tt.id, got, tt.valid)
			}
		})
	}
}
