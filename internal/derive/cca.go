package derive

import (
	"fmt"

	"t2wizard/internal/model"
)

// CCASummary condenses the asset class collection for display and for the
// Schedule 8 header record.
type CCASummary struct {
	Count int
	Lines []string
}

// Headline phrases the class count the way the review screen shows it.
func (s CCASummary) Headline() string {
	return fmt.Sprintf("%d asset class(es) added", s.Count)
}

// SummarizeCCA builds a one-line echo per asset class: undepreciated capital
// cost, current-year additions, and the class rate.
func SummarizeCCA(items []model.CCAItem) CCASummary {
	s := CCASummary{Count: len(items)}
	for _, item := range items {
		s.Lines = append(s.Lines, fmt.Sprintf(
			"Class %s: UCC: %s, Additions: %s, Rate: %s%%",
			item.ClassNumber, item.UndepreciatedCapitalCost, item.Additions, item.Rate))
	}
	return s
}
