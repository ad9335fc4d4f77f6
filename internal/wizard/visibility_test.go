package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"t2wizard/internal/catalog"
	"t2wizard/internal/model"
)

func TestActiveStepsShortCircuitsBelowThreshold(t *testing.T) {
	all := catalog.Steps()
	a := model.Answers{"corporationName": "Northline Tools Inc."}

	active := ActiveSteps(all, a)
	assert.Len(t, active, len(all), "sparse answers keep the full catalog")
}

func TestActiveStepsFiltersHiddenSteps(t *testing.T) {
	all := catalog.Steps()
	a := model.Answers{
		"corporationName":          "Northline Tools Inc.",
		"businessNumber":           "123456789",
		"hasCCAAssets":             false,
		"eligibleDividendsPaid":    false,
		"nonEligibleDividendsPaid": false,
	}

	active := ActiveSteps(all, a)
	assert.Less(t, len(active), len(all))
	for _, s := range active {
		assert.NotEqual(t, "ccaSchedule", s.ID)
		assert.NotEqual(t, "t5Required", s.ID)
	}
}

func TestActiveStepsPreservesCatalogOrder(t *testing.T) {
	all := catalog.Steps()
	a := model.Answers{
		"corporationName":       "Northline Tools Inc.",
		"businessNumber":        "123456789",
		"eligibleDividendsPaid": true,
	}

	pos := make(map[string]int, len(all))
	for i, s := range all {
		pos[s.ID] = i
	}
	prev := -1
	for _, s := range ActiveSteps(all, a) {
		assert.Greater(t, pos[s.ID], prev, "order must follow the catalog")
		prev = pos[s.ID]
	}
}

func TestActiveStepsSubstitutesFallback(t *testing.T) {
	hidden := catalog.Step{
		ID:        "never",
		Section:   "identification",
		Title:     "Never",
		FieldType: catalog.FieldText,
		Visible:   func(model.Answers) bool { return false },
	}
	a := model.Answers{"a": "1", "b": "2", "c": "3"}

	active := ActiveSteps([]catalog.Step{hidden}, a)
	assert.Len(t, active, 1)
	assert.Equal(t, "summarize", active[0].ID)
	assert.Equal(t, catalog.FieldReview, active[0].FieldType)
}

func TestClampCursor(t *testing.T) {
	tests := []struct {
		cursor, length, want int
	}{
		{0, 5, 0},
		{4, 5, 4},
		{5, 5, 4},
		{12, 5, 4},
		{-1, 5, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampCursor(tt.cursor, tt.length),
			"ClampCursor(%d, %d)", tt.cursor, tt.length)
	}
}
