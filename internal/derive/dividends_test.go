package derive

import (
	"testing"

	"t2wizard/internal/model"
)

func TestNonEligibleBreakdown(t *testing.T) {
	tests := []struct {
		actual      float64
		wantTaxable float64
		wantCredit  float64
	}{
		{1000, 1150.00, 103.85},
		{0, 0, 0},
		{5000, 5750.00, 519.23},
		{123.45, 141.97, 12.82},
	}
	for _, tt := range tests {
		got := NonEligible(tt.actual)
		if got.Actual != tt.actual {
			t.Errorf("NonEligible(%v).Actual = %v", tt.actual, got.Actual)
		}
		if got.Taxable != tt.wantTaxable {
			t.Errorf("NonEligible(%v).Taxable = %v, want %v", tt.actual, got.Taxable, tt.wantTaxable)
		}
		if got.Credit != tt.wantCredit {
			t.Errorf("NonEligible(%v).Credit = %v, want %v", tt.actual, got.Credit, tt.wantCredit)
		}
	}
}

func TestEligibleBreakdown(t *testing.T) {
	got := Eligible(1000)
	if got.Taxable != 1380.00 {
		t.Errorf("Taxable = %v, want 1380.00", got.Taxable)
	}
	if got.Credit != 207.27 {
		t.Errorf("Credit = %v, want 207.27", got.Credit)
	}
}

func TestCreditUsesRoundedTaxable(t *testing.T) {
	// The credit applies to the already-rounded taxable amount, so a value
	// whose exact product differs after rounding pins the two-stage order.
	b := NonEligible(0.33)
	if b.Taxable != 0.38 {
		t.Fatalf("Taxable = %v, want 0.38", b.Taxable)
	}
	if b.Credit != round2(0.38*NonEligibleCreditRate) {
		t.Errorf("Credit = %v, not derived from rounded taxable", b.Credit)
	}
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"float", 1000.5, 1000.5},
		{"int", 42, 42},
		{"plain string", "1000", 1000},
		{"comma grouping", "1,234,567.50", 1234567.5},
		{"dollar sign", "$500", 500},
		{"blank", "  ", 0},
		{"garbage", "abc", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Amount(tt.in); got != tt.want {
				t.Errorf("Amount(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPreviewFor(t *testing.T) {
	a := model.Answers{
		"eligibleDividendsPaid":          true,
		"eligibleDividendsPaidAmount":    "1000",
		"nonEligibleDividendsPaid":       false,
		"nonEligibleDividendsPaidAmount": "9999",
	}
	p := PreviewFor(a)
	if p.Eligible.Taxable != 1380.00 || p.Eligible.Credit != 207.27 {
		t.Errorf("eligible triple = %+v", p.Eligible)
	}
	// Declined classes derive nothing even when an amount lingers.
	if p.NonEligible != (Breakdown{}) {
		t.Errorf("non-eligible triple = %+v, want zero", p.NonEligible)
	}
}

func TestPreviewForEmptyAnswers(t *testing.T) {
	p := PreviewFor(model.Answers{})
	if p != (Preview{}) {
		t.Errorf("preview = %+v, want zero", p)
	}
}

func TestSummarizeCCA(t *testing.T) {
	items := []model.CCAItem{
		{ClassNumber: "8", UndepreciatedCapitalCost: "10000", Additions: "2500", Rate: "20"},
		{ClassNumber: "50", UndepreciatedCapitalCost: "4000", Additions: "0", Rate: "55"},
	}
	s := SummarizeCCA(items)
	if s.Count != 2 {
		t.Fatalf("Count = %d, want 2", s.Count)
	}
	if s.Headline() != "2 asset class(es) added" {
		t.Errorf("Headline() = %q", s.Headline())
	}
	if s.Lines[0] != "Class 8: UCC: 10000, Additions: 2500, Rate: 20%" {
		t.Errorf("Lines[0] = %q", s.Lines[0])
	}
}

func TestPreviewCache(t *testing.T) {
	c := NewPreviewCache()
	a := model.Answers{
		"nonEligibleDividendsPaid":       true,
		"nonEligibleDividendsPaidAmount": "1000",
	}
	p := c.Get(a)
	if p.NonEligible.Taxable != 1150.00 {
		t.Fatalf("first Get = %+v", p.NonEligible)
	}

	// Same fingerprint returns the memoized value.
	if again := c.Get(a); again != p {
		t.Errorf("Get with unchanged inputs = %+v, want %+v", again, p)
	}

	// A relevant change produces a fresh derivation.
	a = a.Clone()
	a["nonEligibleDividendsPaidAmount"] = "2000"
	p2 := c.Get(a)
	if p2.NonEligible.Taxable != 2300.00 {
		t.Errorf("after change = %+v", p2.NonEligible)
	}

	c.Invalidate()
	if p3 := c.Get(a); p3 != p2 {
		t.Errorf("after invalidate = %+v, want %+v", p3, p2)
	}
}
