package catalog

import (
	"t2wizard/internal/format"
	"t2wizard/internal/model"
)

const sinValidationMessage = "SIN must be in the format 123-456-789 or 123456789."

func yesNo(yes, no string) []Option {
	return []Option{
		{Value: "true", Label: yes},
		{Value: "false", Label: no},
	}
}

func answeredTrue(id string) func(model.Answers) bool {
	return func(a model.Answers) bool {
		b, ok := a.Bool(id)
		return ok && b
	}
}

func t5Visible(a model.Answers) bool {
	return answeredTrue("t5Required")(a)
}

func t5BoxVisible(boxID string) func(model.Answers) bool {
	return func(a model.Answers) bool {
		return t5Visible(a) && a.Contains("t5OtherInformation", boxID)
	}
}

var steps = []Step{
	// Corporation identification.
	{
		ID:        "corporationName",
		Section:   "identification",
		Title:     "Corporation Name",
		Question:  "What is the full legal name of your corporation?",
		FieldType: FieldText,
		Tooltip:   "Enter the complete legal name as it appears on your incorporation documents.",
		FormLine:  "T2 - Line 001 - Corporation name",
		Required:  true,
	},
	{
		ID:          "businessNumber",
		Section:     "identification",
		Title:       "Business Number",
		Question:    "What is your corporation's 9-digit business number?",
		FieldType:   FieldText,
		Placeholder: "123456789",
		Tooltip:     "Enter your 9-digit business number assigned by the CRA.",
		FormLine:    "T2 - Line 002 - Business number",
		Required:    true,
	},
	{
		ID:        "corporationType",
		Section:   "identification",
		Title:     "Corporation Type",
		Question:  "What type of corporation is filing this return?",
		FieldType: FieldSelect,
		Options: []Option{
			{Value: "ccpc", Label: "Canadian-Controlled Private Corporation (CCPC)"},
			{Value: "other-private", Label: "Other Private Corporation"},
			{Value: "public", Label: "Public Corporation"},
			{Value: "other", Label: "Other Corporation Type"},
		},
		Tooltip:  "Select the type of corporation as classified by the Income Tax Act.",
		FormLine: "T2 - Line 040 - Type of corporation",
		Required: true,
	},
	{
		ID:        "taxYearStart",
		Section:   "identification",
		Title:     "Tax Year Start",
		Question:  "What is the start date of this tax year?",
		FieldType: FieldDate,
		Tooltip:   "Enter the first day of the current tax year.",
		FormLine:  "T2 - Line 060 - Tax year start",
		Required:  true,
	},
	{
		ID:        "taxYearEnd",
		Section:   "identification",
		Title:     "Tax Year End",
		Question:  "What is the end date of this tax year?",
		FieldType: FieldDate,
		Tooltip:   "Enter the last day of the current tax year.",
		FormLine:  "T2 - Line 061 - Tax year end",
		Required:  true,
	},

	// Corporate status.
	{
		ID:        "isFirstYearFiling",
		Section:   "status",
		Title:     "First Year Filing",
		Question:  "Is this the first year filing a T2 return for this corporation?",
		FieldType: FieldRadio,
		Options:   yesNo("Yes", "No"),
		Tooltip:   "Select \"Yes\" if this is the first T2 return being filed since incorporation.",
		FormLine:  "T2 - Line 070 - Is this the first year of filing after incorporation?",
		Required:  true,
	},
	{
		ID:        "isFirstYearAfterAmalgamation",
		Section:   "status",
		Title:     "First Year After Amalgamation",
		Question:  "Is this the first year filing a T2 return after an amalgamation?",
		FieldType: FieldRadio,
		Options:   yesNo("Yes", "No"),
		Tooltip:   "Select \"Yes\" if this is the first T2 return being filed after an amalgamation.",
		FormLine:  "T2 - Line 071 - Is this the first year of filing after amalgamation?",
		Required:  true,
	},
	{
		ID:        "jurisdictionOfIncorporation",
		Section:   "status",
		Title:     "Jurisdiction of Incorporation",
		Question:  "In which jurisdiction is your corporation incorporated?",
		FieldType: FieldSelect,
		Options: []Option{
			{Value: "federal", Label: "Federal (Canada)"},
			{Value: "ab", Label: "Alberta"},
			{Value: "bc", Label: "British Columbia"},
			{Value: "mb", Label: "Manitoba"},
			{Value: "nb", Label: "New Brunswick"},
			{Value: "nl", Label: "Newfoundland and Labrador"},
			{Value: "ns", Label: "Nova Scotia"},
			{Value: "nt", Label: "Northwest Territories"},
			{Value: "nu", Label: "Nunavut"},
			{Value: "on", Label: "Ontario"},
			{Value: "pe", Label: "Prince Edward Island"},
			{Value: "qc", Label: "Quebec"},
			{Value: "sk", Label: "Saskatchewan"},
			{Value: "yt", Label: "Yukon"},
			{Value: "foreign", Label: "Foreign Jurisdiction"},
		},
		Tooltip:  "Select the jurisdiction where your corporation was legally incorporated.",
		FormLine: "T2 - Schedule 200 - Jurisdiction",
		Required: true,
	},
	{
		ID:        "dateOfIncorporation",
		Section:   "status",
		Title:     "Date of Incorporation",
		Question:  "When was your corporation incorporated?",
		FieldType: FieldDate,
		Tooltip:   "Enter the date when your corporation was legally formed and registered.",
		FormLine:  "T2 - Schedule 200 - Date of incorporation",
		Required:  true,
	},

	// Address information.
	{
		ID:        "corporateAddress",
		Section:   "address",
		Title:     "Corporate Address",
		Question:  "What is the main business address of your corporation?",
		FieldType: FieldCompositeAddress,
		Tooltip:   "Enter the physical address where your corporation conducts its main business activities.",
		FormLine:  "T2 - Lines 010-015 - Corporate address",
		Required:  true,
	},
	{
		ID:        "mailingAddress",
		Section:   "address",
		Title:     "Mailing Address",
		Question:  "Is your mailing address different from your business address?",
		FieldType: FieldRadio,
		Options:   yesNo("Yes, we have a different mailing address", "No, use the same address for mail"),
		Tooltip:   "Indicate if your corporation uses a different address for receiving mail.",
		FormLine:  "T2 - Line 016 - Mailing address indicator",
		Required:  true,
	},
	{
		ID:        "booksAndRecordsAddress",
		Section:   "address",
		Title:     "Location of Books and Records",
		Question:  "Where are the books and records of your corporation kept?",
		FieldType: FieldCompositeAddress,
		Tooltip:   "Enter the address where your corporation maintains its financial records and books.",
		FormLine:  "T2 - Lines 030-038 - Location of books and records",
		Required:  true,
	},
	{
		ID:        "provinceOfPermanentEstablishment",
		Section:   "address",
		Title:     "Province of Permanent Establishment",
		Question:  "In which province(s) does your corporation have a permanent establishment?",
		FieldType: FieldCheckboxes,
		Options: []Option{
			{Value: "AB", Label: "Alberta"},
			{Value: "BC", Label: "British Columbia"},
			{Value: "MB", Label: "Manitoba"},
			{Value: "NB", Label: "New Brunswick"},
			{Value: "NL", Label: "Newfoundland and Labrador"},
			{Value: "NS", Label: "Nova Scotia"},
			{Value: "NT", Label: "Northwest Territories"},
			{Value: "NU", Label: "Nunavut"},
			{Value: "ON", Label: "Ontario"},
			{Value: "PE", Label: "Prince Edward Island"},
			{Value: "QC", Label: "Quebec"},
			{Value: "SK", Label: "Saskatchewan"},
			{Value: "YT", Label: "Yukon"},
		},
		Tooltip:      "Select all provinces and territories where your corporation has a permanent establishment. A permanent establishment is generally a fixed place of business.",
		FormLine:     "T2 - Schedule 5 - Provinces/territories of permanent establishments",
		Required:     true,
		DefaultValue: []string{"ON"},
	},

	// Shareholder information (Schedule 50).
	{
		ID:        "shareholderFirstName",
		Section:   "shareholders",
		Title:     "Shareholder First Name",
		Question:  "What is the first name of the shareholder?",
		FieldType: FieldText,
		Tooltip:   "Enter the first name of the shareholder.",
		FormLine:  "T2 - Schedule 50 - Shareholder first name",
		Required:  true,
	},
	{
		ID:        "shareholderLastName",
		Section:   "shareholders",
		Title:     "Shareholder Last Name",
		Question:  "What is the last name of the shareholder?",
		FieldType: FieldText,
		Tooltip:   "Enter the last name of the shareholder.",
		FormLine:  "T2 - Schedule 50 - Shareholder last name",
		Required:  true,
	},
	{
		ID:                "shareholderSIN",
		Section:           "shareholders",
		Title:             "Shareholder SIN",
		Question:          "What is the Social Insurance Number (SIN) of the shareholder?",
		FieldType:         FieldText,
		Placeholder:       "123-456-789",
		Tooltip:           "Enter the shareholder's 9-digit SIN. This is required for Schedule 50.",
		FormLine:          "T2 - Schedule 50 - SIN/Business Number/Trust Number",
		Required:          true,
		Validate:          format.ValidSIN,
		ValidationMessage: sinValidationMessage,
	},
	{
		ID:        "shareholderAddress",
		Section:   "shareholders",
		Title:     "Shareholder Address",
		Question:  "What is the address of the shareholder?",
		FieldType: FieldCompositeAddress,
		Tooltip:   "Enter the complete mailing address of the shareholder.",
		FormLine:  "T2 - Schedule 50 - Shareholder address",
		Required:  true,
	},
	{
		ID:          "shareClass",
		Section:     "shareholders",
		Title:       "Share Class",
		Question:    "What class of shares does the shareholder hold?",
		FieldType:   FieldText,
		Placeholder: "Common",
		Tooltip:     "Enter the class of shares held by the shareholder (e.g., Common, Class A, Preferred, etc.).",
		FormLine:    "T2 - Schedule 50 - Share class",
		Required:    true,
	},
	{
		ID:        "numberOfShares",
		Section:   "shareholders",
		Title:     "Number of Shares",
		Question:  "How many shares does the shareholder hold?",
		FieldType: FieldNumber,
		Tooltip:   "Enter the number of shares held by the shareholder.",
		FormLine:  "T2 - Schedule 50 - Number of shares",
		Required:  true,
	},
	{
		ID:           "percentageVotingRights",
		Section:      "shareholders",
		Title:        "Percentage of Voting Rights",
		Question:     "What percentage of voting rights does the shareholder have?",
		FieldType:    FieldNumber,
		Tooltip:      "Enter the percentage of voting rights held by the shareholder.",
		FormLine:     "T2 - Schedule 50 - % of voting rights",
		DefaultValue: "100",
		Required:     true,
	},

	// GIFI financial statement metadata (Schedules 1 and 141).
	{
		ID:        "netIncomePerFinancialStatements",
		Section:   "gifi",
		Title:     "Net Income per Financial Statements",
		Question:  "What is the net income (or loss) according to your financial statements?",
		FieldType: FieldCurrency,
		Tooltip:   "Enter the net income or loss amount from your financial statements before tax adjustments. This is the starting point for Schedule 1.",
		FormLine:  "T2 - Schedule 1 - Line 9999 - Net income (loss) per financial statements",
		Required:  true,
	},
	{
		ID:        "financialStatementType",
		Section:   "gifi",
		Title:     "Financial Statement Type",
		Question:  "What type of financial statements did you prepare?",
		FieldType: FieldSelect,
		Options: []Option{
			{Value: "1", Label: "Formal financial statements"},
			{Value: "2", Label: "Combined formal financial statements"},
			{Value: "3", Label: "Income statement information only"},
			{Value: "4", Label: "Income statement information and balance sheet"},
		},
		Tooltip:  "Select the type of financial statements that were prepared for the corporation.",
		FormLine: "T2 - Schedule 141 - Line 280 - Type of financial statements",
		Required: true,
	},
	{
		ID:        "financialStatementsPreparer",
		Section:   "gifi",
		Title:     "Financial Statements Preparer",
		Question:  "Who prepared the financial statements?",
		FieldType: FieldSelect,
		Options: []Option{
			{Value: "1", Label: "Accountant"},
			{Value: "2", Label: "Individual (self-prepared)"},
			{Value: "3", Label: "Corporation (self-prepared)"},
			{Value: "4", Label: "Bookkeeper"},
			{Value: "5", Label: "Public accountant"},
		},
		Tooltip:  "Indicate who prepared the financial statements for the corporation.",
		FormLine: "T2 - Schedule 141 - Line 290 - Who prepared this return?",
		Required: true,
	},
	{
		ID:        "levelOfAssurance",
		Section:   "gifi",
		Title:     "Level of Assurance",
		Question:  "What level of assurance is associated with the financial statements?",
		FieldType: FieldSelect,
		Options: []Option{
			{Value: "1", Label: "Audit"},
			{Value: "2", Label: "Review"},
			{Value: "3", Label: "Compilation/Notice to reader"},
			{Value: "4", Label: "Other"},
		},
		Tooltip:  "Select the level of assurance provided with the financial statements.",
		FormLine: "T2 - Schedule 141 - Line 278 - Level of assurance",
		Required: true,
	},

	// GIFI balance sheet items (Schedule 100).
	{
		ID:        "cashGIFI",
		Section:   "gifi",
		Title:     "Cash and Deposits (GIFI 1001)",
		Question:  "What is the amount of cash and deposits at year-end?",
		FieldType: FieldCurrency,
		Tooltip:   "Enter the total value of cash, bank accounts, and short-term deposits at the end of the fiscal year.",
		FormLine:  "T2 - Schedule 100 - GIFI 1001 - Cash and deposits",
	},
	{
		ID:        "accountsReceivableGIFI",
		Section:   "gifi",
		Title:     "Accounts Receivable (GIFI 1060)",
		Question:  "What is the amount of accounts receivable at year-end?",
		FieldType: FieldCurrency,
		Tooltip:   "Enter the total value of trade accounts receivable at the end of the fiscal year.",
		FormLine:  "T2 - Schedule 100 - GIFI 1060 - Accounts receivable",
	},
	{
		ID:        "inventoryGIFI",
		Section:   "gifi",
		Title:     "Inventory (GIFI 1120)",
		Question:  "What is the value of inventory at year-end?",
		FieldType: FieldCurrency,
		Tooltip:   "Enter the total value of inventory at the end of the fiscal year.",
		FormLine:  "T2 - Schedule 100 - GIFI 1120 - Inventory",
	},
	{
		ID:        "prepaidExpensesGIFI",
		Section:   "gifi",
		Title:     "Prepaid Expenses (GIFI 1480)",
		Question:  "What is the amount of prepaid expenses at year-end?",
		FieldType: FieldCurrency,
		Tooltip:   "Enter the total value of prepaid expenses at the end of the fiscal year.",
		FormLine:  "T2 - Schedule 100 - GIFI 1480 - Prepaid expenses",
	},
	{
		ID:        "capitalAssetsGIFI",
		Section:   "gifi",
		Title:     "Capital Assets (GIFI 2008)",
		Question:  "What is the net book value of capital assets at year-end?",
		FieldType: FieldCurrency,
		Tooltip:   "Enter the total net book value (cost less accumulated amortization) of capital assets at the end of the fiscal year.",
		FormLine:  "T2 - Schedule 100 - GIFI 2008 - Capital assets",
	},
	{
		ID:        "accountsPayableGIFI",
		Section:   "gifi",
		Title:     "Accounts Payable (GIFI 2620)",
		Question:  "What is the amount of accounts payable at year-end?",
		FieldType: FieldCurrency,
		Tooltip:   "Enter the total value of trade accounts payable at the end of the fiscal year.",
		FormLine:  "T2 - Schedule 100 - GIFI 2620 - Accounts payable and accrued liabilities",
	},
	{
		ID:        "dueToShareholdersGIFI",
		Section:   "gifi",
		Title:     "Due to Shareholders (GIFI 2780)",
		Question:  "What is the amount due to shareholders at year-end?",
		FieldType: FieldCurrency,
		Tooltip:   "Enter any loans, advances, or amounts owing to shareholders at the end of the fiscal year.",
		FormLine:  "T2 - Schedule 100 - GIFI 2780 - Due to shareholders and directors",
	},
	{
		ID:        "commonSharesGIFI",
		Section:   "gifi",
		Title:     "Common Shares (GIFI 3500)",
		Question:  "What is the value of common shares issued?",
		FieldType: FieldCurrency,
		Tooltip:   "Enter the value of common shares issued and outstanding.",
		FormLine:  "T2 - Schedule 100 - GIFI 3500 - Common shares",
	},
	{
		ID:        "retainedEarningsGIFI",
		Section:   "gifi",
		Title:     "Retained Earnings (GIFI 3850)",
		Question:  "What is the balance of retained earnings at year-end?",
		FieldType: FieldCurrency,
		Tooltip:   "Enter the balance of retained earnings at the end of the fiscal year.",
		FormLine:  "T2 - Schedule 100 - GIFI 3850 - Retained earnings/deficit",
	},

	// GIFI income statement items (Schedule 125).
	{
		ID:        "salesRevenueGIFI",
		Section:   "gifi",
		Title:     "Sales Revenue (GIFI 8000)",
		Question:  "What is the total sales revenue for the year?",
		FieldType: FieldCurrency,
		Tooltip:   "Enter the total sales revenue for the fiscal year.",
		FormLine:  "T2 - Schedule 125 - GIFI 8000 - Sales of goods and services",
	},
	{
		ID:        "costOfSalesGIFI",
		Section:   "gifi",
		Title:     "Cost of Sales (GIFI 8300)",
		Question:  "What is the total cost of sales for the year?",
		FieldType: FieldCurrency,
		Tooltip:   "Enter the total cost of sales for the fiscal year.",
		FormLine:  "T2 - Schedule 125 - GIFI 8300 - Cost of sales",
	},
	{
		ID:        "wagesExpenseGIFI",
		Section:   "gifi",
		Title:     "Salaries and Wages (GIFI 9060)",
		Question:  "What is the total expense for salaries and wages?",
		FieldType: FieldCurrency,
		Tooltip:   "Enter the total expense for salaries and wages for the fiscal year.",
		FormLine:  "T2 - Schedule 125 - GIFI 9060 - Salaries and wages",
	},
	{
		ID:        "rentExpenseGIFI",
		Section:   "gifi",
		Title:     "Rent Expense (GIFI 8910)",
		Question:  "What is the total rent expense for the year?",
		FieldType: FieldCurrency,
		Tooltip:   "Enter the total rent expense for the fiscal year.",
		FormLine:  "T2 - Schedule 125 - GIFI 8910 - Rent",
	},
	{
		ID:        "interestExpenseGIFI",
		Section:   "gifi",
		Title:     "Interest Expense (GIFI 8710)",
		Question:  "What is the total interest expense for the year?",
		FieldType: FieldCurrency,
		Tooltip:   "Enter the total interest expense for the fiscal year.",
		FormLine:  "T2 - Schedule 125 - GIFI 8710 - Interest and bank charges",
	},
	{
		ID:        "amortizationExpenseGIFI",
		Section:   "gifi",
		Title:     "Amortization Expense (GIFI 8670)",
		Question:  "What is the total amortization/depreciation expense for the year?",
		FieldType: FieldCurrency,
		Tooltip:   "Enter the total amortization/depreciation expense recorded in your financial statements for the fiscal year.",
		FormLine:  "T2 - Schedule 125 - GIFI 8670 - Amortization and depreciation",
	},
	{
		ID:        "officeExpenseGIFI",
		Section:   "gifi",
		Title:     "Office Expenses (GIFI 8810)",
		Question:  "What is the total office expense for the year?",
		FieldType: FieldCurrency,
		Tooltip:   "Enter the total office expenses for the fiscal year.",
		FormLine:  "T2 - Schedule 125 - GIFI 8810 - Office expenses",
	},
	{
		ID:        "professionalFeesGIFI",
		Section:   "gifi",
		Title:     "Professional Fees (GIFI 8860)",
		Question:  "What is the total professional fee expense for the year?",
		FieldType: FieldCurrency,
		Tooltip:   "Enter the total professional fees (legal, accounting, etc.) for the fiscal year.",
		FormLine:  "T2 - Schedule 125 - GIFI 8860 - Professional fees",
	},
	{
		ID:        "mealsEntertainmentGIFI",
		Section:   "gifi",
		Title:     "Meals and Entertainment (GIFI 8523)",
		Question:  "What is the total meals and entertainment expense for the year?",
		FieldType: FieldCurrency,
		Tooltip:   "Enter the total meals and entertainment expense before the 50% limitation for the fiscal year.",
		FormLine:  "T2 - Schedule 125 - GIFI 8523 - Meals and entertainment",
	},

	// Schedule 1 reconciliation items.
	{
		ID:        "amortizationAddback",
		Section:   "schedule1",
		Title:     "Amortization/Depreciation Add-back",
		Question:  "What is the amount of accounting amortization/depreciation to add back?",
		FieldType: FieldCurrency,
		Tooltip:   "Enter the amount of accounting amortization/depreciation expense that needs to be added back. This should match your GIFI 8670 amount.",
		FormLine:  "T2 - Schedule 1 - Line 104 - Amortization/depreciation",
	},
	{
		ID:        "mealsEntertainmentAddback",
		Section:   "schedule1",
		Title:     "Meals & Entertainment 50% Add-back",
		Question:  "What is the 50% non-deductible portion of meals and entertainment expenses?",
		FieldType: FieldCurrency,
		Tooltip:   "Enter 50% of your total meals and entertainment expenses, which is non-deductible for tax purposes.",
		FormLine:  "T2 - Schedule 1 - Line 116 - Meals and entertainment expenses",
	},
	{
		ID:        "politicalContributions",
		Section:   "schedule1",
		Title:     "Political Contributions",
		Question:  "What is the amount of political contributions made during the year?",
		FieldType: FieldCurrency,
		Tooltip:   "Enter the amount of political contributions made by the corporation during the fiscal year. These are not deductible for tax purposes.",
		FormLine:  "T2 - Schedule 1 - Line 119 - Political contributions",
	},
	{
		ID:        "otherNonDeductibleExpenses",
		Section:   "schedule1",
		Title:     "Other Non-Deductible Expenses",
		Question:  "What is the amount of other non-deductible expenses?",
		FieldType: FieldCurrency,
		Tooltip:   "Enter the total of other expenses that are not deductible for tax purposes (e.g., fines, penalties, club dues, etc.).",
		FormLine:  "T2 - Schedule 1 - Line 126 - Other additions",
	},
	{
		ID:        "ccaDeduction",
		Section:   "schedule1",
		Title:     "CCA Deduction",
		Question:  "What is the Capital Cost Allowance (CCA) deduction for the year?",
		FieldType: FieldCurrency,
		Tooltip:   "Enter the total CCA claim for the fiscal year from Schedule 8. If you have entered CCA data in the CCA section, this will be calculated for you.",
		FormLine:  "T2 - Schedule 1 - Line 215 - Capital cost allowance",
	},
	{
		ID:        "otherDeductions",
		Section:   "schedule1",
		Title:     "Other Deductions",
		Question:  "What is the amount of other deductions?",
		FieldType: FieldCurrency,
		Tooltip:   "Enter the total of other deductions for tax purposes not reported elsewhere.",
		FormLine:  "T2 - Schedule 1 - Line 226 - Other deductions",
	},

	// CCA (Schedule 8).
	{
		ID:        "hasCCAAssets",
		Section:   "cca",
		Title:     "Depreciable Assets",
		Question:  "Does the corporation own depreciable assets?",
		FieldType: FieldRadio,
		Options:   yesNo("Yes", "No"),
		Tooltip:   "Select \"Yes\" if your corporation owns depreciable property that qualifies for Capital Cost Allowance (CCA).",
		FormLine:  "T2 - Schedule 8 - CCA assets indicator",
		Required:  true,
	},
	{
		ID:        "ccaSchedule",
		Section:   "cca",
		Title:     "Capital Cost Allowance (CCA) Information",
		Question:  "Enter information about your depreciable assets",
		FieldType: FieldCCASchedule,
		Tooltip:   "Add details for each class of depreciable assets owned by the corporation.",
		FormLine:  "T2 - Schedule 8 - CCA schedule",
		Visible:   answeredTrue("hasCCAAssets"),
	},

	// Dividend declarations (Schedule 3).
	{
		ID:        "eligibleDividendsPaid",
		Section:   "financial",
		Title:     "Eligible Dividends",
		Question:  "Did the corporation pay eligible dividends during the tax year?",
		FieldType: FieldRadio,
		Options:   yesNo("Yes", "No"),
		Tooltip:   "Eligible dividends receive preferential tax treatment for shareholders. Select \"Yes\" if your corporation paid eligible dividends during this tax year.",
		FormLine:  "T2 - Schedule 3 - Part I - Eligible Dividends",
		Required:  true,
	},
	{
		ID:        "eligibleDividendsPaidAmount",
		Section:   "financial",
		Title:     "Eligible Dividends Amount",
		Question:  "What is the total amount of eligible dividends paid?",
		FieldType: FieldCurrency,
		Tooltip:   "Enter the total dollar amount of eligible dividends paid to shareholders during the tax year.",
		FormLine:  "T2 - Schedule 3 - Part I - Line 310",
		Required:  true,
		Visible:   answeredTrue("eligibleDividendsPaid"),
	},
	{
		ID:        "nonEligibleDividendsPaid",
		Section:   "financial",
		Title:     "Non-Eligible Dividends",
		Question:  "Did the corporation pay non-eligible dividends during the tax year?",
		FieldType: FieldRadio,
		Options:   yesNo("Yes", "No"),
		Tooltip:   "Non-eligible dividends are subject to higher tax rates for shareholders. Select \"Yes\" if your corporation paid non-eligible dividends during this tax year.",
		FormLine:  "T2 - Schedule 3 - Part I - Non-Eligible Dividends",
		Required:  true,
	},
	{
		ID:        "nonEligibleDividendsPaidAmount",
		Section:   "financial",
		Title:     "Non-Eligible Dividends Amount",
		Question:  "What is the total amount of non-eligible dividends paid?",
		FieldType: FieldCurrency,
		Tooltip:   "Enter the total dollar amount of non-eligible dividends paid to shareholders during the tax year.",
		FormLine:  "T2 - Schedule 3 - Part I - Line 320",
		Required:  true,
		Visible:   answeredTrue("nonEligibleDividendsPaid"),
	},

	// T5 slip sub-flow.
	{
		ID:        "t5Required",
		Section:   "t5",
		Title:     "T5 Slip Generation",
		Question:  "Do you need to generate T5 slips for dividend payments?",
		FieldType: FieldRadio,
		Options:   yesNo("Yes", "No"),
		Tooltip:   "If the corporation paid dividends to shareholders during the tax year, you need to issue T5 slips to report these payments.",
		FormLine:  "T5 Slip Requirement",
		Required:  true,
		Visible: func(a model.Answers) bool {
			eligible, okE := a.Bool("eligibleDividendsPaid")
			nonEligible, okN := a.Bool("nonEligibleDividendsPaid")
			return (okE && eligible) || (okN && nonEligible)
		},
	},
	{
		ID:        "t5Year",
		Section:   "t5",
		Title:     "Calendar Year for T5",
		Question:  "For which calendar year are these T5 slips being filed?",
		FieldType: FieldNumber,
		Tooltip:   "Enter the calendar year (not fiscal year) for which these T5 slips are being filed. This is typically the calendar year in which the fiscal year-end falls.",
		FormLine:  "T5 Box - Year",
		Required:  true,
		Visible:   t5Visible,
	},
	{
		ID:        "t5RecipientName",
		Section:   "t5",
		Title:     "Recipient Name",
		Question:  "What is the full legal name of the dividend recipient?",
		FieldType: FieldText,
		Tooltip:   "Enter the recipient's full legal name, last name first (e.g., \"Smith, John A.\").",
		FormLine:  "T5 - Recipient's name",
		Required:  true,
		Visible:   t5Visible,
	},
	{
		ID:        "t5RecipientAddress",
		Section:   "t5",
		Title:     "Recipient Address",
		Question:  "What is the complete mailing address of the dividend recipient?",
		FieldType: FieldCompositeAddress,
		Tooltip:   "Enter the complete mailing address where the T5 slip should be sent. All address fields are required for proper T5 filing.",
		FormLine:  "T5 - Recipient's address",
		Required:  true,
		Visible:   t5Visible,
	},
	{
		ID:                "t5SIN",
		Section:           "t5",
		Title:             "Social Insurance Number",
		Question:          "What is the recipient's Social Insurance Number (SIN)?",
		FieldType:         FieldText,
		Placeholder:       "123-456-789",
		Tooltip:           "Enter the recipient's 9-digit SIN without dashes. This is required for T5 reporting.",
		FormLine:          "T5 Box 22 - Recipient identification number",
		Required:          true,
		Validate:          format.ValidSIN,
		ValidationMessage: sinValidationMessage,
		Visible:           t5Visible,
	},
	{
		ID:        "t5RecipientType",
		Section:   "t5",
		Title:     "Recipient Type",
		Question:  "What type of recipient is this?",
		FieldType: FieldSelect,
		Options: []Option{
			{Value: "1", Label: "Individual"},
			{Value: "2", Label: "Joint Account"},
			{Value: "3", Label: "Corporation"},
			{Value: "4", Label: "Association/Trust/Club/Partnership"},
			{Value: "5", Label: "Government"},
		},
		Tooltip:      "Select the type of recipient. For individuals, select \"1 - Individual\".",
		FormLine:     "T5 Box 23 - Recipient type",
		Required:     true,
		DefaultValue: "1",
		Visible:      t5Visible,
	},
	{
		ID:        "t5PaymentDate",
		Section:   "t5",
		Title:     "Dividend Payment Date",
		Question:  "On what date were the dividends paid or payable?",
		FieldType: FieldDate,
		Tooltip:   "Enter the date when the dividends were paid to the shareholder or declared payable. This date is required for T5 slip reporting.",
		FormLine:  "T5 - Date dividends paid",
		Required:  true,
		Visible:   t5Visible,
	},
	{
		ID:        "t5ReportCode",
		Section:   "t5",
		Title:     "Report Code",
		Question:  "What is the report code for this T5 slip?",
		FieldType: FieldSelect,
		Options: []Option{
			{Value: "O", Label: "Original (O)"},
			{Value: "A", Label: "Amended (A)"},
			{Value: "C", Label: "Cancelled (C)"},
		},
		Tooltip:      "Select the report code. Use \"O\" for original T5 filings.",
		FormLine:     "T5 Box 21 - Report code",
		Required:     true,
		DefaultValue: "O",
		Visible:      t5Visible,
	},
	{
		ID:        "t5PayerName",
		Section:   "t5",
		Title:     "Payer Name and Address",
		Question:  "What is the corporation's full legal name and address for the T5 slip?",
		FieldType: FieldCompositeCompanyAddress,
		Tooltip:   "Enter the complete legal name and mailing address of the corporation as it should appear on the T5 slip.",
		FormLine:  "T5 - Payer's name and address",
		Required:  true,
		Visible:   t5Visible,
	},
	{
		ID:        "t5OtherInformation",
		Section:   "t5",
		Title:     "Additional T5 Information",
		Question:  "Is there any additional information to report on the T5 slip?",
		FieldType: FieldCheckboxes,
		Options: []Option{
			{Value: "t5InterestIncome", Label: "Interest from Canadian sources (Box 13)", Tooltip: "Report interest income paid to the shareholder."},
			{Value: "t5ForeignIncome", Label: "Foreign income (Box 15)", Tooltip: "Report income from foreign sources."},
			{Value: "t5ForeignTax", Label: "Foreign tax paid (Box 16)", Tooltip: "Report foreign taxes paid on foreign income."},
			{Value: "t5CapitalGains", Label: "Capital gains dividends (Box 18)", Tooltip: "Report capital gains dividends paid after June 24, 2024."},
			{Value: "t5CapitalGainsP1", Label: "Capital gains dividends - Period 1 (Box 34)", Tooltip: "Report capital gains dividends paid before June 25, 2024."},
		},
		Tooltip:  "Select any additional information that needs to be reported on the T5 slip.",
		FormLine: "T5 - Other information",
		Visible:  t5Visible,
	},
	{
		ID:        "t5InterestIncomeAmount",
		Section:   "t5",
		Title:     "Interest Income Amount",
		Question:  "What is the amount of interest income from Canadian sources?",
		FieldType: FieldCurrency,
		Tooltip:   "Enter the amount of interest paid from Canadian sources.",
		FormLine:  "T5 Box 13 - Interest from Canadian sources",
		Required:  true,
		Visible:   t5BoxVisible("t5InterestIncome"),
	},
	{
		ID:        "t5ForeignIncomeAmount",
		Section:   "t5",
		Title:     "Foreign Income Amount",
		Question:  "What is the amount of foreign income?",
		FieldType: FieldCurrency,
		Tooltip:   "Enter the amount of income from foreign sources.",
		FormLine:  "T5 Box 15 - Foreign income",
		Required:  true,
		Visible:   t5BoxVisible("t5ForeignIncome"),
	},
	{
		ID:        "t5ForeignTaxAmount",
		Section:   "t5",
		Title:     "Foreign Tax Paid Amount",
		Question:  "What is the amount of foreign tax paid?",
		FieldType: FieldCurrency,
		Tooltip:   "Enter the amount of foreign tax paid on foreign income.",
		FormLine:  "T5 Box 16 - Foreign tax paid",
		Required:  true,
		Visible:   t5BoxVisible("t5ForeignTax"),
	},
	{
		ID:        "t5CapitalGainsAmount",
		Section:   "t5",
		Title:     "Capital Gains Dividends Amount",
		Question:  "What is the amount of capital gains dividends paid after June 24, 2024?",
		FieldType: FieldCurrency,
		Tooltip:   "Enter the amount of capital gains dividends paid after June 24, 2024.",
		FormLine:  "T5 Box 18 - Capital gains dividends",
		Required:  true,
		Visible:   t5BoxVisible("t5CapitalGains"),
	},
	{
		ID:        "t5CapitalGainsP1Amount",
		Section:   "t5",
		Title:     "Capital Gains Dividends Amount (Period 1)",
		Question:  "What is the amount of capital gains dividends paid before June 25, 2024?",
		FieldType: FieldCurrency,
		Tooltip:   "Enter the amount of capital gains dividends paid before June 25, 2024.",
		FormLine:  "T5 Box 34 - Capital gains dividends - Period 1",
		Required:  true,
		Visible:   t5BoxVisible("t5CapitalGainsP1"),
	},
	{
		ID:        "t5PreviewSlip",
		Section:   "t5",
		Title:     "T5 Slip Preview",
		Question:  "Review your T5 slip information",
		FieldType: FieldReviewT5,
		Tooltip:   "Review the information that will be used to generate the T5 slip. The taxable amounts and dividend tax credits are calculated automatically based on CRA formulas.",
		FormLine:  "T5 Slip Preview",
		Visible:   t5Visible,
	},

	// Certification.
	{
		ID:        "certification",
		Section:   "certification",
		Title:     "Review and Certify",
		Question:  "Please review the information and certify it is correct",
		FieldType: FieldReview,
		Tooltip:   "Review all the information before submitting your T2 return.",
		FormLine:  "T2 - Certification",
		Required:  true,
	},
}

// Steps returns the catalog in definition order. Callers must treat the
// returned slice and its descriptors as read-only.
func Steps() []Step {
	return steps
}

// ByID looks up a step descriptor. The second return is false for unknown IDs.
func ByID(id string) (Step, bool) {
	for _, s := range steps {
		if s.ID == id {
			return s, true
		}
	}
	return Step{}, false
}
