package tui

import (
	"strings"
	"testing"

	"t2wizard/internal/catalog"
	"t2wizard/internal/derive"
	"t2wizard/internal/mapping"
	"t2wizard/internal/model"
)

func TestStepRendersOptionsAndAnswer(t *testing.T) {
	var b strings.Builder
	r := New(&b)

	s, _ := catalog.ByID("corporationType")
	a := model.Answers{"corporationType": "ccpc"}
	r.Step(s, a, 2, 50)

	out := b.String()
	for _, want := range []string{
		"[3/50]",
		"Corporation Type",
		"1) Canadian-Controlled Private Corporation (CCPC)",
		"current: Canadian-Controlled Private Corporation (CCPC)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPreviewSkipsZeroClasses(t *testing.T) {
	var b strings.Builder
	r := New(&b)

	r.Preview(derive.Preview{NonEligible: derive.NonEligible(1000)})
	out := b.String()
	if strings.Contains(out, "eligible dividends:\n") && !strings.Contains(out, "non-eligible") {
		t.Errorf("unexpected eligible block:\n%s", out)
	}
	if !strings.Contains(out, "taxable: 1150.00") {
		t.Errorf("missing taxable line:\n%s", out)
	}
	if !strings.Contains(out, "credit:  103.85") {
		t.Errorf("missing credit line:\n%s", out)
	}
}

func TestRecordsGroupBySection(t *testing.T) {
	var b strings.Builder
	r := New(&b)

	r.Records([]mapping.Record{
		{Section: "Corporation Identification", FormLine: "T2 - Line 001 - Corporation name", Value: "Northline Tools Inc."},
		{Section: "T5 Slip Information", FormLine: "T5 Box 25 - Taxable amount of eligible dividends", Value: "1,380",
			Details: "Calculated as 138% of Box 24 (38% gross-up)"},
	})

	out := b.String()
	if !strings.Contains(out, "Corporation Identification") || !strings.Contains(out, "T5 Slip Information") {
		t.Errorf("section headers missing:\n%s", out)
	}
	if !strings.Contains(out, "Calculated as 138% of Box 24") {
		t.Errorf("details line missing:\n%s", out)
	}
}
