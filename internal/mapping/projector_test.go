package mapping

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"t2wizard/internal/catalog"
	"t2wizard/internal/model"
)

func completedSnapshot() model.Snapshot {
	return model.Snapshot{
		Answers: model.Answers{
			"corporationName":                  "Northline Tools Inc.",
			"businessNumber":                   "123456789",
			"corporationType":                  "ccpc",
			"taxYearEnd":                       "2024-06-30",
			"corporateAddress_street":          "100 King St W",
			"corporateAddress_city":            "Toronto",
			"corporateAddress_province":        "ON",
			"corporateAddress_postalCode":      "M5X 1A1",
			"provinceOfPermanentEstablishment": []string{"ON", "QC"},
			"netIncomePerFinancialStatements":  "250000",
			"hasCCAAssets":                     true,
			"eligibleDividendsPaid":            true,
			"eligibleDividendsPaidAmount":      "1000",
			"nonEligibleDividendsPaid":         true,
			"nonEligibleDividendsPaidAmount":   "2000",
			"t5Required":                       true,
			"t5Year":                           "2024",
			"t5RecipientName":                  "Smith, Jane",
			"t5RecipientAddress_street":        "12 Elm Ave",
			"t5RecipientAddress_city":          "Ottawa",
			"t5RecipientAddress_province":      "ON",
			"t5RecipientAddress_postalCode":    "K1A 0A1",
			"t5SIN":                            "123456789",
			"t5RecipientType":                  "1",
			"t5PaymentDate":                    "2024-03-15",
			"t5ReportCode":                     "O",
			"t5OtherInformation":               []string{"t5InterestIncome"},
			"t5InterestIncomeAmount":           "500",
			"certification":                    true,
		},
		CCAItems: []model.CCAItem{{
			ID:                       "cca_1718000000_ab12cd34",
			ClassNumber:              "8",
			Description:              "Office furniture",
			UndepreciatedCapitalCost: "10000",
			Additions:                "2500",
			Rate:                     "20",
		}},
	}
}

func findRecord(t *testing.T, records []Record, fieldID string) Record {
	t.Helper()
	for _, r := range records {
		if r.FieldID == fieldID {
			return r
		}
	}
	t.Fatalf("no record with fieldId %q", fieldID)
	return Record{}
}

func TestProjectFormatsByFieldType(t *testing.T) {
	records := Project(catalog.Steps(), completedSnapshot())

	assert.Equal(t, "Canadian-Controlled Private Corporation (CCPC)",
		findRecord(t, records, "corporationType").Value)
	assert.Equal(t, "06/30/2024", findRecord(t, records, "taxYearEnd").Value)
	assert.Equal(t, "100 King St W, Toronto, ON, M5X 1A1, Canada",
		findRecord(t, records, "corporateAddress").Value)
	assert.Equal(t, "Ontario, Quebec",
		findRecord(t, records, "provinceOfPermanentEstablishment").Value)
	assert.Equal(t, "250,000",
		findRecord(t, records, "netIncomePerFinancialStatements").Value)
	assert.Equal(t, "1 asset class(es) added",
		findRecord(t, records, "ccaSchedule").Value)
}

func TestProjectSkipsUnansweredSteps(t *testing.T) {
	snap := completedSnapshot()
	snap.Answers.Delete("businessNumber")
	records := Project(catalog.Steps(), snap)

	for _, r := range records {
		assert.NotEqual(t, "businessNumber", r.FieldID)
	}
}

func TestProjectCCABlock(t *testing.T) {
	records := Project(catalog.Steps(), completedSnapshot())

	header := findRecord(t, records, "ccaHeader")
	assert.Equal(t, "Capital Cost Allowance (CCA) Details", header.FieldName)
	assert.Equal(t, "T2 - Schedule 8 - CCA Summary", header.FormLine)
	assert.Equal(t, "1 Asset Classes", header.Value)

	item := findRecord(t, records, "cca-0")
	assert.Equal(t, "CCA Class 8 - Office furniture", item.FieldName)
	assert.Equal(t, "T2 - Schedule 8 - Class 8", item.FormLine)
	assert.Equal(t, "UCC: 10000, Additions: 2500, Rate: 20%", item.Value)
}

func TestProjectT5Block(t *testing.T) {
	records := Project(catalog.Steps(), completedSnapshot())

	assert.Equal(t, "123-456-789", findRecord(t, records, "t5SIN").Value)
	assert.Equal(t, "1 - Individual", findRecord(t, records, "t5RecipientType").Value)
	assert.Equal(t, "Original (O)", findRecord(t, records, "t5ReportCode").Value)
	assert.Equal(t, "03/15/2024", findRecord(t, records, "t5PaymentDate").Value)

	// No explicit payer entry: the corporation name backfills.
	assert.Equal(t, "Northline Tools Inc.", findRecord(t, records, "t5PayerName").Value)

	box25 := findRecord(t, records, "t5Box25")
	assert.Equal(t, "1,380", box25.Value)
	assert.Equal(t, "Calculated as 138% of Box 24 (38% gross-up)", box25.Details)
	box26 := findRecord(t, records, "t5Box26")
	assert.Equal(t, "207.27", box26.Value)
	assert.Equal(t, "Calculated as 15.0198% of Box 25", box26.Details)

	box11 := findRecord(t, records, "t5Box11")
	assert.Equal(t, "2,300", box11.Value)
	assert.Equal(t, "Calculated as 115% of Box 10 (15% gross-up)", box11.Details)
	box12 := findRecord(t, records, "t5Box12")
	assert.Equal(t, "Calculated as 9.0301% of Box 11", box12.Details)

	interest := findRecord(t, records, "t5InterestIncomeAmount")
	assert.Equal(t, "T5 Box 13 - Interest from Canadian sources", interest.FormLine)
	assert.Equal(t, "500", interest.Value)
}

func TestProjectOmitsT5WhenDeclined(t *testing.T) {
	snap := completedSnapshot()
	snap.Answers["t5Required"] = false
	records := Project(catalog.Steps(), snap)

	for _, r := range records {
		assert.NotEqual(t, "t5Box25", r.FieldID)
		assert.NotEqual(t, "t5RecipientName", r.FieldID)
	}
}

func TestProjectZeroAmountClassOmitsTriple(t *testing.T) {
	snap := completedSnapshot()
	snap.Answers["eligibleDividendsPaidAmount"] = "0"
	records := Project(catalog.Steps(), snap)

	for _, r := range records {
		assert.NotEqual(t, "t5Box24", r.FieldID)
	}
	// The other class is unaffected.
	findRecord(t, records, "t5Box10")
}

func TestProjectIsIdempotent(t *testing.T) {
	snap := completedSnapshot()
	first := Project(catalog.Steps(), snap)
	second := Project(catalog.Steps(), snap)
	require.Equal(t, first, second)
}

func TestProjectPreservesCatalogOrder(t *testing.T) {
	records := Project(catalog.Steps(), completedSnapshot())
	require.NotEmpty(t, records)
	assert.Equal(t, "corporationName", records[0].FieldID)

	// The CCA block follows the main pass, the T5 block comes last.
	var ccaAt, t5At int
	for i, r := range records {
		if r.FieldID == "ccaHeader" {
			ccaAt = i
		}
		if r.FieldID == "t5Year" {
			t5At = i
		}
	}
	assert.Greater(t, t5At, ccaAt)
}

func TestT5JSON(t *testing.T) {
	records := Project(catalog.Steps(), completedSnapshot())
	data, err := T5JSON(records)
	require.NoError(t, err)

	var slip map[string]string
	require.NoError(t, json.Unmarshal(data, &slip))
	assert.Equal(t, "123-456-789", slip["T5 Box 22 - Recipient identification number"])
	assert.Equal(t, "1,380", slip["T5 Box 25 - Taxable amount of eligible dividends"])
	assert.NotContains(t, slip, "T2 - Line 001 - Corporation name")
}

func TestRequiredSchedules(t *testing.T) {
	a := model.Answers{"eligibleDividendsPaid": true}
	withT5 := RequiredSchedules(a)
	assert.Equal(t, "T5 Slips & Summary", withT5[len(withT5)-1].Code)

	without := RequiredSchedules(model.Answers{})
	assert.Len(t, without, len(withT5)-1)
	for _, s := range without {
		assert.NotEqual(t, "T5 Slips & Summary", s.Code)
	}
}
