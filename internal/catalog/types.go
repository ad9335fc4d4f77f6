// Package catalog defines the static, ordered set of question steps that make
// up the T2 filing wizard, including the dependent T5 slip sub-flow. The
// catalog is pure data plus pure predicate functions over an answer snapshot;
// descriptors carry no mutable state.
package catalog

import "t2wizard/internal/model"

type FieldType string

const (
	FieldText                    FieldType = "text"
	FieldSelect                  FieldType = "select"
	FieldRadio                   FieldType = "radio"
	FieldDate                    FieldType = "date"
	FieldCurrency                FieldType = "currency"
	FieldNumber                  FieldType = "number"
	FieldCheckboxes              FieldType = "checkboxes"
	FieldCompositeAddress        FieldType = "compositeAddress"
	FieldCompositeCompanyAddress FieldType = "compositeCompanyAddress"
	FieldCCASchedule             FieldType = "ccaSchedule"
	FieldReview                  FieldType = "review"
	FieldReviewT5                FieldType = "reviewT5"
)

// Option is one selectable choice of a select, radio, or checkbox step.
// Radio options carry "true"/"false" values; normalization to booleans
// happens at the answer boundary, not here.
type Option struct {
	Value   string
	Label   string
	Tooltip string
}

// Step describes one question of the wizard.
//
// Visible must be a pure function of the answer snapshot: no side effects, no
// randomness, no captured mutable state. A nil Visible means always visible.
// Validate, when set, is consulted on advance only if the step has a value.
type Step struct {
	ID                string
	Section           string
	Title             string
	Question          string
	FieldType         FieldType
	Options           []Option
	Placeholder       string
	Tooltip           string
	FormLine          string
	Required          bool
	DefaultValue      any
	Validate          func(string) bool
	ValidationMessage string
	Visible           func(model.Answers) bool
}

// OptionLabel resolves an option value to its display label, falling back to
// the raw value for unknown options.
func (s Step) OptionLabel(value string) string {
	for _, o := range s.Options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// AddressSubKeys lists the sub-keys a required composite address must fill.
// The country sub-key defaults to "Canada" and is never required; the company
// variant's name sub-key is likewise not validated.
func (s Step) AddressSubKeys() []string {
	return []string{
		s.ID + "_street",
		s.ID + "_city",
		s.ID + "_province",
		s.ID + "_postalCode",
	}
}

// Section groups steps for progress display. Purely organizational.
type Section struct {
	ID   string
	Name string
}

var sections = []Section{
	{ID: "identification", Name: "Corporation Identification"},
	{ID: "address", Name: "Address Information"},
	{ID: "status", Name: "Corporate Status"},
	{ID: "financial", Name: "Financial Information"},
	{ID: "shareholders", Name: "Shareholder Information"},
	{ID: "gifi", Name: "GIFI Financial Data"},
	{ID: "schedule1", Name: "Schedule 1 Items"},
	{ID: "cca", Name: "CCA Deductions"},
	{ID: "t5", Name: "T5 Slip Information"},
	{ID: "certification", Name: "Certification"},
}

// Sections returns the display ordering of sections.
func Sections() []Section {
	return sections
}

// SectionName resolves a section ID to its display name.
func SectionName(id string) string {
	for _, s := range sections {
		if s.ID == id {
			return s.Name
		}
	}
	return id
}
