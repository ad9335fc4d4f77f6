package wizard

import (
	"t2wizard/internal/catalog"
	"t2wizard/internal/model"
)

// Below this many answered fields the predicates would all evaluate against
// a near-empty answer set, hiding conditional steps the user has not reached
// yet. Short-circuit to the full catalog instead.
const visibilityThreshold = 3

// fallbackStep is substituted when filtering leaves nothing navigable. That
// only happens on a malformed catalog; the session stays usable either way.
var fallbackStep = catalog.Step{
	ID:        "summarize",
	Section:   "certification",
	Title:     "Summary",
	Question:  "Review your answers",
	FieldType: catalog.FieldReview,
	FormLine:  "T2 - Summary",
}

// ActiveSteps filters the catalog to the steps whose visibility predicates
// hold for the current answers, preserving catalog order.
func ActiveSteps(steps []catalog.Step, a model.Answers) []catalog.Step {
	if len(a) < visibilityThreshold {
		return steps
	}
	active := make([]catalog.Step, 0, len(steps))
	for _, s := range steps {
		if s.Visible == nil || s.Visible(a) {
			active = append(active, s)
		}
	}
	if len(active) == 0 {
		return []catalog.Step{fallbackStep}
	}
	return active
}

// ClampCursor snaps a cursor that fell off the end of a shrunken active list
// back to the last step.
func ClampCursor(cursor, activeLen int) int {
	if cursor >= activeLen {
		return activeLen - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}
