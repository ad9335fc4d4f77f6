// Package tui renders wizard state as plain terminal text. It only reads
// engine snapshots; input flows back through the engine's operations.
package tui

import (
	"fmt"
	"io"
	"strings"

	"t2wizard/internal/catalog"
	"t2wizard/internal/derive"
	"t2wizard/internal/format"
	"t2wizard/internal/mapping"
	"t2wizard/internal/model"
)

type Renderer struct {
	w io.Writer
}

func New(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Step prints the current question with its options, current answer, and a
// progress line.
func (r *Renderer) Step(s catalog.Step, a model.Answers, cursor, total int) {
	fmt.Fprintf(r.w, "\n[%d/%d] %s — %s\n", cursor+1, total, catalog.SectionName(s.Section), s.Title)
	fmt.Fprintf(r.w, "%s\n", s.Question)
	if s.Tooltip != "" {
		fmt.Fprintf(r.w, "  (%s)\n", s.Tooltip)
	}
	for i, o := range s.Options {
		fmt.Fprintf(r.w, "  %d) %s\n", i+1, o.Label)
	}
	if s.Placeholder != "" {
		fmt.Fprintf(r.w, "  e.g. %s\n", s.Placeholder)
	}
	if s.FieldType == catalog.FieldCCASchedule {
		fmt.Fprintln(r.w, `  type "add" to record an asset class, Enter to continue`)
	}
	if current := currentAnswer(s, a); current != "" {
		fmt.Fprintf(r.w, "  current: %s\n", current)
	}
}

func currentAnswer(s catalog.Step, a model.Answers) string {
	switch s.FieldType {
	case catalog.FieldCompositeAddress:
		street := a.String(s.ID + "_street")
		if street == "" {
			return ""
		}
		return street + ", …"
	case catalog.FieldCheckboxes:
		return strings.Join(a.Strings(s.ID), ", ")
	case catalog.FieldRadio, catalog.FieldSelect:
		if !a.Has(s.ID) {
			return ""
		}
		return s.OptionLabel(a.String(s.ID))
	default:
		return a.String(s.ID)
	}
}

// Progress prints the completed fraction of the active list.
func (r *Renderer) Progress(fraction float64) {
	fmt.Fprintf(r.w, "progress: %.0f%%\n", fraction*100)
}

// Preview prints the derived dividend triples, skipping classes with no
// amount.
func (r *Renderer) Preview(p derive.Preview) {
	if p.Eligible.Actual > 0 {
		fmt.Fprintln(r.w, "eligible dividends:")
		r.breakdown(p.Eligible)
	}
	if p.NonEligible.Actual > 0 {
		fmt.Fprintln(r.w, "non-eligible dividends:")
		r.breakdown(p.NonEligible)
	}
}

func (r *Renderer) breakdown(b derive.Breakdown) {
	fmt.Fprintf(r.w, "  actual:  %s\n", format.Amount2(b.Actual))
	fmt.Fprintf(r.w, "  taxable: %s\n", format.Amount2(b.Taxable))
	fmt.Fprintf(r.w, "  credit:  %s\n", format.Amount2(b.Credit))
}

// Records prints the export list grouped by section.
func (r *Renderer) Records(records []mapping.Record) {
	section := ""
	for _, rec := range records {
		if rec.Section != section {
			section = rec.Section
			fmt.Fprintf(r.w, "\n%s\n%s\n", section, strings.Repeat("-", len(section)))
		}
		fmt.Fprintf(r.w, "%-55s %s\n", rec.FormLine, rec.Value)
		if rec.Details != "" {
			fmt.Fprintf(r.w, "%-55s ^ %s\n", "", rec.Details)
		}
	}
}

// Schedules prints the filing checklist.
func (r *Renderer) Schedules(schedules []mapping.ScheduleRequirement) {
	fmt.Fprintln(r.w, "\nRequired filings:")
	for _, s := range schedules {
		fmt.Fprintf(r.w, "  %-20s %s — %s\n", s.Code, s.Name, s.Description)
	}
}

// Error prints a validation message the way the form shows it: blocking,
// above the prompt.
func (r *Renderer) Error(msg string) {
	fmt.Fprintf(r.w, "! %s\n", msg)
}
