// Package wizard hosts the questionnaire state machine: cursor movement over
// the active step list, per-step validation gates, answer mutation, and the
// transition to the completed session.
package wizard

import (
	"fmt"
	"strings"

	"t2wizard/internal/catalog"
	"t2wizard/internal/derive"
	"t2wizard/internal/model"
)

// Store durably holds the serialized answer set between sessions. A Load on
// a corrupt or absent file reports an empty snapshot, never an error the
// engine would have to surface.
type Store interface {
	Load() (model.Snapshot, error)
	Save(model.Snapshot) error
	Clear() error
}

// Auditor records engine transitions to the append-only session log.
type Auditor interface {
	Log(eventType string, details map[string]interface{}) error
}

// ValidationError blocks an Advance with a user-facing message. The answer
// set is unchanged and the cursor does not move.
type ValidationError struct {
	StepID  string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("step %q: %s", e.StepID, e.Message)
}

const (
	msgIncomplete        = "Please complete this field before continuing."
	msgIncompleteAddress = "Please complete all address fields before continuing."
)

// Engine owns the answer set and the CCA collection exclusively. Renderers
// read snapshots; every mutation comes back through Apply, Advance, Retreat,
// or Reset, and persists before the call returns.
type Engine struct {
	steps   []catalog.Step
	store   Store
	audit   Auditor
	preview *derive.PreviewCache

	answers  model.Answers
	ccaItems []model.CCAItem
	cursor   int
	phase    model.Phase
}

// NewEngine validates the catalog, restores any saved session from the
// store, and positions the cursor at the first step. A session saved after
// certification resumes in the completed phase.
func NewEngine(store Store, audit Auditor) (*Engine, error) {
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("step catalog: %w", err)
	}
	snap, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading saved session: %w", err)
	}
	if snap.Answers == nil {
		snap.Answers = make(model.Answers)
	}
	e := &Engine{
		steps:    catalog.Steps(),
		store:    store,
		audit:    audit,
		preview:  derive.NewPreviewCache(),
		answers:  model.NormalizeAnswers(snap.Answers),
		ccaItems: snap.CCAItems,
		phase:    model.PhaseInProgress,
	}
	if certified, ok := e.answers.Bool("certification"); ok && certified {
		e.phase = model.PhaseComplete
	}
	e.log("session_resumed", map[string]interface{}{
		"answered_fields": len(e.answers),
		"cca_items":       len(e.ccaItems),
		"phase":           string(e.phase),
	})
	return e, nil
}

func (e *Engine) log(eventType string, details map[string]interface{}) {
	if e.audit == nil {
		return
	}
	// Audit failures never block a user action.
	_ = e.audit.Log(eventType, details)
}

// Active returns the steps currently visible and clamps the cursor to it.
func (e *Engine) Active() []catalog.Step {
	active := ActiveSteps(e.steps, e.answers)
	e.cursor = ClampCursor(e.cursor, len(active))
	return active
}

// Current returns the step the cursor points at.
func (e *Engine) Current() catalog.Step {
	active := e.Active()
	return active[e.cursor]
}

func (e *Engine) Cursor() int { return e.cursor }

func (e *Engine) Phase() model.Phase { return e.phase }

func (e *Engine) Completed() bool { return e.phase == model.PhaseComplete }

// Progress reports the fraction of active steps passed, inclusive of the
// current one.
func (e *Engine) Progress() float64 {
	active := e.Active()
	return float64(e.cursor+1) / float64(len(active))
}

// Snapshot returns a defensive copy for renderers and the projector.
func (e *Engine) Snapshot() model.Snapshot {
	return model.Snapshot{
		Answers:  e.answers.Clone(),
		CCAItems: append([]model.CCAItem(nil), e.ccaItems...),
	}
}

// Preview returns the derived dividend triples for the current answers.
func (e *Engine) Preview() derive.Preview {
	return e.preview.Get(e.answers)
}

func derivationInput(id string) bool {
	return strings.HasPrefix(id, "t5") || strings.Contains(id, "Dividends")
}

// Apply writes one answer, persists, and refreshes the derived preview when
// the field feeds it. The id may be a step ID or a composite sub-key.
func (e *Engine) Apply(id string, value any) error {
	e.answers.Set(id, value)
	if derivationInput(id) {
		e.preview.Invalidate()
	}
	if err := e.persist(); err != nil {
		return err
	}
	e.log("field_applied", map[string]interface{}{"field": id})
	return nil
}

// ApplyAddress writes the four flattened sub-keys of a composite address
// step in one persisted mutation.
func (e *Engine) ApplyAddress(stepID, street, city, province, postalCode string) error {
	e.answers.Set(stepID+"_street", street)
	e.answers.Set(stepID+"_city", city)
	e.answers.Set(stepID+"_province", province)
	e.answers.Set(stepID+"_postalCode", postalCode)
	if derivationInput(stepID) {
		e.preview.Invalidate()
	}
	if err := e.persist(); err != nil {
		return err
	}
	e.log("address_applied", map[string]interface{}{"field": stepID})
	return nil
}

// AddCCAItem appends an asset class entry, assigning it an ID and filling
// the prescribed rate from the class table when the caller left it blank.
func (e *Engine) AddCCAItem(item model.CCAItem) (model.CCAItem, error) {
	id, err := model.GenerateCCAItemID()
	if err != nil {
		return model.CCAItem{}, err
	}
	item.ID = id
	if item.Rate == "" {
		if rate, ok := catalog.RateForClass(item.ClassNumber); ok {
			item.Rate = rate
		}
	}
	e.ccaItems = append(e.ccaItems, item)
	if err := e.persist(); err != nil {
		return model.CCAItem{}, err
	}
	e.log("cca_item_added", map[string]interface{}{"id": item.ID, "class": item.ClassNumber})
	return item, nil
}

// UpdateCCAItem replaces the entry with the matching ID.
func (e *Engine) UpdateCCAItem(item model.CCAItem) error {
	for i := range e.ccaItems {
		if e.ccaItems[i].ID == item.ID {
			e.ccaItems[i] = item
			if err := e.persist(); err != nil {
				return err
			}
			e.log("cca_item_updated", map[string]interface{}{"id": item.ID})
			return nil
		}
	}
	return fmt.Errorf("no CCA item with id %q", item.ID)
}

// RemoveCCAItem deletes the entry with the matching ID.
func (e *Engine) RemoveCCAItem(id string) error {
	for i := range e.ccaItems {
		if e.ccaItems[i].ID == id {
			e.ccaItems = append(e.ccaItems[:i], e.ccaItems[i+1:]...)
			if err := e.persist(); err != nil {
				return err
			}
			e.log("cca_item_removed", map[string]interface{}{"id": id})
			return nil
		}
	}
	return fmt.Errorf("no CCA item with id %q", id)
}

func (e *Engine) CCAItems() []model.CCAItem {
	return append([]model.CCAItem(nil), e.ccaItems...)
}

// Advance validates the current step, applies its lazy default, and moves
// the cursor forward. Passing validation on the last active step certifies
// the session and transitions to the completed phase.
func (e *Engine) Advance() error {
	active := e.Active()
	step := active[e.cursor]

	// Defaults attach when the step is left unanswered, not when entered,
	// and before validation so an untouched default satisfies a required
	// gate.
	if step.DefaultValue != nil && !e.answers.Has(step.ID) {
		e.answers.Set(step.ID, step.DefaultValue)
	}

	if err := e.validateStep(step); err != nil {
		e.log("advance_blocked", map[string]interface{}{"step": step.ID})
		return err
	}

	if e.cursor == len(active)-1 {
		if err := model.ValidatePhaseTransition(e.phase, model.PhaseComplete); err != nil {
			return err
		}
		e.answers.Set("certification", true)
		e.phase = model.PhaseComplete
		if err := e.persist(); err != nil {
			return err
		}
		e.log("session_completed", map[string]interface{}{"answered_fields": len(e.answers)})
		return nil
	}

	e.cursor++
	if err := e.persist(); err != nil {
		return err
	}
	e.log("advanced", map[string]interface{}{"from": step.ID, "cursor": e.cursor})
	return nil
}

// Retreat moves the cursor back one step. It never validates and is a no-op
// at the first step.
func (e *Engine) Retreat() {
	if e.cursor > 0 {
		e.cursor--
		e.log("retreated", map[string]interface{}{"cursor": e.cursor})
	}
}

// BackToEdit re-enters the questionnaire at the last active step after a
// completed session.
func (e *Engine) BackToEdit() error {
	if err := model.ValidatePhaseTransition(e.phase, model.PhaseInProgress); err != nil {
		return err
	}
	e.phase = model.PhaseInProgress
	e.cursor = len(e.Active()) - 1
	e.log("reopened", map[string]interface{}{"cursor": e.cursor})
	return nil
}

// Reset discards the session: answers, CCA collection, persisted state, and
// the cursor all return to their initial values.
func (e *Engine) Reset() error {
	e.answers = make(model.Answers)
	e.ccaItems = nil
	e.cursor = 0
	e.phase = model.PhaseInProgress
	e.preview.Invalidate()
	if err := e.store.Clear(); err != nil {
		return fmt.Errorf("clearing saved session: %w", err)
	}
	e.log("session_reset", nil)
	return nil
}

func (e *Engine) persist() error {
	if err := e.store.Save(model.Snapshot{Answers: e.answers, CCAItems: e.ccaItems}); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

func (e *Engine) validateStep(s catalog.Step) error {
	switch s.FieldType {
	case catalog.FieldReview, catalog.FieldReviewT5:
		// Display-only confirmation.
		return nil
	case catalog.FieldCCASchedule:
		// The collection is persisted as it is edited; an empty one is valid.
		return nil
	case catalog.FieldCompositeCompanyAddress:
		// Deliberately permissive.
		return nil
	case catalog.FieldCompositeAddress:
		if !s.Required {
			return nil
		}
		for _, key := range s.AddressSubKeys() {
			if strings.TrimSpace(e.answers.String(key)) == "" {
				return &ValidationError{StepID: s.ID, Message: msgIncompleteAddress}
			}
		}
	default:
		// false and 0 are answers; only an absent key blocks.
		if s.Required && !e.answers.Has(s.ID) {
			return &ValidationError{StepID: s.ID, Message: msgIncomplete}
		}
		if s.Validate != nil && e.answers.Has(s.ID) {
			if !s.Validate(e.answers.String(s.ID)) {
				return &ValidationError{StepID: s.ID, Message: s.ValidationMessage}
			}
		}
	}
	return nil
}
