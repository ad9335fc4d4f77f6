// Package derive computes the T5 slip amounts that follow mechanically from
// the entered dividend figures: gross-up to the taxable amount and the
// federal dividend tax credit, per the prescribed factors.
package derive

import (
	"math"
	"strconv"
	"strings"

	"t2wizard/internal/model"
)

// Prescribed gross-up factors and dividend tax credit rates. The credit is
// computed from the grossed-up (taxable) amount, not the actual amount.
const (
	NonEligibleGrossUp    = 1.15
	NonEligibleCreditRate = 0.090301

	EligibleGrossUp    = 1.38
	EligibleCreditRate = 0.150198
)

// Breakdown is the actual/taxable/credit triple reported in boxes 10/11/12
// (non-eligible) or 24/25/26 (eligible) of a T5 slip.
type Breakdown struct {
	Actual  float64
	Taxable float64
	Credit  float64
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func grossUp(actual, factor, creditRate float64) Breakdown {
	taxable := round2(actual * factor)
	return Breakdown{
		Actual:  actual,
		Taxable: taxable,
		Credit:  round2(taxable * creditRate),
	}
}

// Eligible computes the box 24/25/26 triple for an eligible dividend amount.
func Eligible(actual float64) Breakdown {
	return grossUp(actual, EligibleGrossUp, EligibleCreditRate)
}

// NonEligible computes the box 10/11/12 triple for a non-eligible dividend
// amount.
func NonEligible(actual float64) Breakdown {
	return grossUp(actual, NonEligibleGrossUp, NonEligibleCreditRate)
}

// Amount coerces a stored answer to a dollar amount. Missing, blank, or
// non-numeric values come back as 0; derivations never fail on bad input.
func Amount(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		s := strings.TrimSpace(n)
		s = strings.ReplaceAll(s, ",", "")
		s = strings.TrimPrefix(s, "$")
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Preview is the derived view of a session's dividend entries: one triple
// per dividend class. A class with a zero actual amount was either not paid
// or not answered yet.
type Preview struct {
	Eligible    Breakdown
	NonEligible Breakdown
}

// PreviewFor derives both triples from the current answers. Amounts only
// count when the corresponding "paid" question was answered yes.
func PreviewFor(a model.Answers) Preview {
	var p Preview
	if b, ok := a.Bool("eligibleDividendsPaid"); ok && b {
		v, _ := a.Get("eligibleDividendsPaidAmount")
		p.Eligible = Eligible(Amount(v))
	}
	if b, ok := a.Bool("nonEligibleDividendsPaid"); ok && b {
		v, _ := a.Get("nonEligibleDividendsPaidAmount")
		p.NonEligible = NonEligible(Amount(v))
	}
	return p
}
