// Package model defines the data structures for the wizard's answers, CCA
// collection, configuration, and state transitions.
package model

import (
	"fmt"
	"strconv"
)

// Answers maps step IDs (and composite sub-keys like "corporateAddress_city")
// to raw answered values. Value shapes per field type:
//
//	text/select/date:      string
//	number/currency:       string or float64 (raw user input)
//	radio:                 bool (absent means unanswered)
//	checkboxes:            []string of option IDs
//	composite addresses:   sibling "<id>_<subfield>" string keys
//
// An absent key means unanswered; false and 0 are valid answers.
type Answers map[string]any

// Set writes a value after normalization. All writes must go through Set so
// that serialized "true"/"false" strings become real booleans exactly once.
func (a Answers) Set(id string, v any) {
	a[id] = NormalizeValue(v)
}

func (a Answers) Get(id string) (any, bool) {
	v, ok := a[id]
	return v, ok
}

func (a Answers) Has(id string) bool {
	_, ok := a[id]
	return ok
}

func (a Answers) Delete(id string) {
	delete(a, id)
}

// Bool reports the value as a boolean. The second return is false when the
// step is unanswered or the value is not a boolean.
func (a Answers) Bool(id string) (bool, bool) {
	v, ok := a[id]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// String renders the raw value for display. Unanswered steps render empty.
func (a Answers) String(id string) string {
	v, ok := a[id]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Strings reports a checkbox-group selection. Unanswered or mis-shaped values
// yield nil.
func (a Answers) Strings(id string) []string {
	v, ok := a[id]
	if !ok {
		return nil
	}
	s, _ := v.([]string)
	return s
}

// Contains reports whether optionID is part of the checkbox selection at id.
func (a Answers) Contains(id, optionID string) bool {
	for _, s := range a.Strings(id) {
		if s == optionID {
			return true
		}
	}
	return false
}

// Clone returns a shallow copy. Checkbox slices are copied so a snapshot
// handed to a predicate or renderer cannot be mutated underneath it.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		if s, ok := v.([]string); ok {
			out[k] = append([]string(nil), s...)
			continue
		}
		out[k] = v
	}
	return out
}

// NormalizeValue coerces values arriving from user input or a deserialized
// state file into the canonical shapes described on Answers. The persisted
// form stores plain values, so "true"/"false" strings must come back as
// booleans and []any checkbox selections as []string.
func NormalizeValue(v any) any {
	switch t := v.(type) {
	case string:
		if t == "true" {
			return true
		}
		if t == "false" {
			return false
		}
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			out = append(out, fmt.Sprintf("%v", e))
		}
		return out
	case int:
		return float64(t)
	case int64:
		return float64(t)
	default:
		return v
	}
}

// NormalizeAnswers normalizes every value of a freshly deserialized answer
// map in place and returns it.
func NormalizeAnswers(a Answers) Answers {
	for k, v := range a {
		a[k] = NormalizeValue(v)
	}
	return a
}

// Snapshot bundles the answer map with the CCA collection for persistence and
// for read-only consumers.
type Snapshot struct {
	Answers  Answers
	CCAItems []CCAItem
}

// EmptySnapshot returns a snapshot with initialized, empty containers.
func EmptySnapshot() Snapshot {
	return Snapshot{Answers: make(Answers)}
}
