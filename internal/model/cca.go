package model

// CCAItem is one row of the Schedule 8 capital cost allowance schedule.
// Monetary fields hold raw user input; parsing to numbers happens only at
// display/derivation time. The ID is generated at creation and is the sole
// correlation key for update and remove.
type CCAItem struct {
	ID                       string `yaml:"id" json:"id"`
	ClassNumber              string `yaml:"class_number" json:"classNumber"`
	Description              string `yaml:"description" json:"description"`
	UndepreciatedCapitalCost string `yaml:"undepreciated_capital_cost" json:"undepreciatedCapitalCost"`
	Additions                string `yaml:"additions" json:"additions"`
	Dispositions             string `yaml:"dispositions" json:"dispositions"`
	Adjustments              string `yaml:"adjustments" json:"adjustments"`
	Rate                     string `yaml:"rate" json:"rate"`
}
