package mapping

import "t2wizard/internal/model"

// ScheduleRequirement names one return or schedule the corporation has to
// file alongside the T2 jacket.
type ScheduleRequirement struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var baseSchedules = []ScheduleRequirement{
	{"T2", "T2 Corporation Income Tax Return", "The main return (includes the Schedule 200 jacket)"},
	{"Schedule 1", "Net Income (Loss) for Income Tax Purposes", "Reconciles accounting income to income for tax purposes"},
	{"Schedule 8", "Capital Cost Allowance (CCA)", "Reports depreciable property and the CCA claim"},
	{"Schedule 50", "Shareholder Information", "Required for private corporations with shareholders holding 10% or more"},
	{"Schedule 100", "Balance Sheet Information", "GIFI balance sheet"},
	{"Schedule 125", "Income Statement Information", "GIFI income statement"},
	{"Schedule 141", "GIFI Additional Information", "Notes checklist describing who prepared the statements"},
}

// RequiredSchedules lists what must accompany the filing. The T5 package is
// appended when dividend payments were reported.
func RequiredSchedules(a model.Answers) []ScheduleRequirement {
	out := append([]ScheduleRequirement(nil), baseSchedules...)
	eligible, _ := a.Bool("eligibleDividendsPaid")
	nonEligible, _ := a.Bool("nonEligibleDividendsPaid")
	if eligible || nonEligible {
		out = append(out, ScheduleRequirement{
			Code:        "T5 Slips & Summary",
			Name:        "Statement of Investment Income",
			Description: "Required when dividend payments are made to shareholders",
		})
	}
	return out
}
