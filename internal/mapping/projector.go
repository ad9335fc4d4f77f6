// Package mapping projects a completed session onto T2 form lines and T5
// slip boxes. Projection is a pure read of the final answers and the CCA
// collection; calling it twice on the same snapshot yields identical output.
package mapping

import (
	"fmt"
	"strings"

	"t2wizard/internal/catalog"
	"t2wizard/internal/derive"
	"t2wizard/internal/format"
	"t2wizard/internal/model"
)

// Record is one exported line: an answered field resolved to its target
// form line with a display-formatted value. Details carries a derivation
// note when the value was computed rather than entered.
type Record struct {
	FieldID   string `json:"fieldId"`
	Section   string `json:"section"`
	FieldName string `json:"fieldName"`
	FormLine  string `json:"formLine"`
	Value     string `json:"value"`
	Details   string `json:"details,omitempty"`
}

// Project builds the ordered export record list: one record per answered
// non-T5 catalog step with a form-line target, then the CCA summary block,
// then the T5 slip block when slips were requested.
func Project(steps []catalog.Step, snap model.Snapshot) []Record {
	var records []Record
	for _, s := range steps {
		if s.FormLine == "" || s.ID == "summarize" || strings.HasPrefix(s.ID, "t5") {
			continue
		}
		if !answered(snap, s) {
			continue
		}
		records = append(records, Record{
			FieldID:   s.ID,
			Section:   catalog.SectionName(s.Section),
			FieldName: s.Title,
			FormLine:  s.FormLine,
			Value:     displayValue(s, snap),
		})
	}

	records = append(records, ccaRecords(snap.CCAItems)...)

	if required, ok := snap.Answers.Bool("t5Required"); ok && required {
		records = append(records, t5Records(snap)...)
	}
	return records
}

func answered(snap model.Snapshot, s catalog.Step) bool {
	switch s.FieldType {
	case catalog.FieldCompositeAddress:
		for _, key := range s.AddressSubKeys() {
			if snap.Answers.Has(key) {
				return true
			}
		}
		return false
	case catalog.FieldCCASchedule:
		return len(snap.CCAItems) > 0
	default:
		return snap.Answers.Has(s.ID)
	}
}

func displayValue(s catalog.Step, snap model.Snapshot) string {
	a := snap.Answers
	switch s.FieldType {
	case catalog.FieldRadio, catalog.FieldSelect:
		return s.OptionLabel(a.String(s.ID))
	case catalog.FieldDate:
		return format.Date(a.String(s.ID))
	case catalog.FieldCurrency:
		v, _ := a.Get(s.ID)
		return format.Currency(derive.Amount(v))
	case catalog.FieldCompositeAddress:
		return joinAddress(a, s.ID)
	case catalog.FieldCheckboxes:
		labels := make([]string, 0, 4)
		for _, v := range a.Strings(s.ID) {
			labels = append(labels, s.OptionLabel(v))
		}
		return strings.Join(labels, ", ")
	case catalog.FieldCCASchedule:
		return derive.SummarizeCCA(snap.CCAItems).Headline()
	case catalog.FieldReview:
		return "Certified"
	default:
		return a.String(s.ID)
	}
}

func joinAddress(a model.Answers, stepID string) string {
	parts := []string{
		a.String(stepID + "_street"),
		a.String(stepID + "_city"),
		a.String(stepID + "_province"),
		a.String(stepID + "_postalCode"),
		"Canada",
	}
	return strings.Join(parts, ", ")
}

func ccaRecords(items []model.CCAItem) []Record {
	if len(items) == 0 {
		return nil
	}
	section := catalog.SectionName("cca")
	records := []Record{{
		FieldID:   "ccaHeader",
		Section:   section,
		FieldName: "Capital Cost Allowance (CCA) Details",
		FormLine:  "T2 - Schedule 8 - CCA Summary",
		Value:     fmt.Sprintf("%d Asset Classes", len(items)),
	}}
	for i, item := range items {
		records = append(records, Record{
			FieldID:   fmt.Sprintf("cca-%d", i),
			Section:   section,
			FieldName: fmt.Sprintf("CCA Class %s - %s", item.ClassNumber, item.Description),
			FormLine:  fmt.Sprintf("T2 - Schedule 8 - Class %s", item.ClassNumber),
			Value: fmt.Sprintf("UCC: %s, Additions: %s, Rate: %s%%",
				item.UndepreciatedCapitalCost, item.Additions, item.Rate),
		})
	}
	return records
}

func t5Records(snap model.Snapshot) []Record {
	a := snap.Answers
	section := catalog.SectionName("t5")

	rec := func(stepID, value, details string) Record {
		s, _ := catalog.ByID(stepID)
		return Record{
			FieldID:   stepID,
			Section:   section,
			FieldName: s.Title,
			FormLine:  s.FormLine,
			Value:     value,
			Details:   details,
		}
	}

	payerName := a.String("t5PayerName_name")
	if payerName == "" {
		payerName = a.String("corporationName")
	}

	typeStep, _ := catalog.ByID("t5RecipientType")
	codeStep, _ := catalog.ByID("t5ReportCode")

	records := []Record{
		rec("t5Year", a.String("t5Year"), ""),
		rec("t5RecipientName", a.String("t5RecipientName"), ""),
		rec("t5RecipientAddress", joinAddress(a, "t5RecipientAddress"), ""),
		rec("t5SIN", format.SIN(a.String("t5SIN")), ""),
		rec("t5RecipientType",
			fmt.Sprintf("%s - %s", a.String("t5RecipientType"), typeStep.OptionLabel(a.String("t5RecipientType"))), ""),
		rec("t5PaymentDate", format.Date(a.String("t5PaymentDate")), ""),
		rec("t5ReportCode", codeStep.OptionLabel(a.String("t5ReportCode")), ""),
		{
			FieldID:   "t5PayerName",
			Section:   section,
			FieldName: "Payer Name and Address",
			FormLine:  "T5 - Payer's name and address",
			Value:     payerName,
			Details:   joinAddress(a, "t5PayerName"),
		},
	}

	preview := derive.PreviewFor(a)
	if preview.Eligible.Actual > 0 {
		records = append(records,
			Record{
				FieldID: "t5Box24", Section: section,
				FieldName: "Actual Amount of Eligible Dividends",
				FormLine:  "T5 Box 24 - Actual amount of eligible dividends",
				Value:     format.Currency(preview.Eligible.Actual),
			},
			Record{
				FieldID: "t5Box25", Section: section,
				FieldName: "Taxable Amount of Eligible Dividends",
				FormLine:  "T5 Box 25 - Taxable amount of eligible dividends",
				Value:     format.Currency(preview.Eligible.Taxable),
				Details:   "Calculated as 138% of Box 24 (38% gross-up)",
			},
			Record{
				FieldID: "t5Box26", Section: section,
				FieldName: "Dividend Tax Credit for Eligible Dividends",
				FormLine:  "T5 Box 26 - Dividend tax credit for eligible dividends",
				Value:     format.Currency(preview.Eligible.Credit),
				Details:   "Calculated as 15.0198% of Box 25",
			},
		)
	}
	if preview.NonEligible.Actual > 0 {
		records = append(records,
			Record{
				FieldID: "t5Box10", Section: section,
				FieldName: "Actual Amount of Dividends Other Than Eligible",
				FormLine:  "T5 Box 10 - Actual amount of dividends other than eligible dividends",
				Value:     format.Currency(preview.NonEligible.Actual),
			},
			Record{
				FieldID: "t5Box11", Section: section,
				FieldName: "Taxable Amount of Dividends Other Than Eligible",
				FormLine:  "T5 Box 11 - Taxable amount of dividends other than eligible dividends",
				Value:     format.Currency(preview.NonEligible.Taxable),
				Details:   "Calculated as 115% of Box 10 (15% gross-up)",
			},
			Record{
				FieldID: "t5Box12", Section: section,
				FieldName: "Dividend Tax Credit for Dividends Other Than Eligible",
				FormLine:  "T5 Box 12 - Dividend tax credit for dividends other than eligible dividends",
				Value:     format.Currency(preview.NonEligible.Credit),
				Details:   "Calculated as 9.0301% of Box 11",
			},
		)
	}

	for _, boxID := range a.Strings("t5OtherInformation") {
		amountID := boxID + "Amount"
		s, ok := catalog.ByID(amountID)
		if !ok || !a.Has(amountID) {
			continue
		}
		v, _ := a.Get(amountID)
		records = append(records, Record{
			FieldID:   amountID,
			Section:   section,
			FieldName: s.Title,
			FormLine:  s.FormLine,
			Value:     format.Currency(derive.Amount(v)),
		})
	}
	return records
}
