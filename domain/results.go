package domain

import "time"

// DealDerived holds quantities derived directly from the input.
type DealDerived struct {
	MonthsTotal     int     `json:"months_total"`
	CarryingMonthly float64 `json:"carrying_monthly"`
}

// DealOutputsProject is the project-level economics of one deal.
// Monetary fields are rounded to whole currency units at computation time.
type DealOutputsProject struct {
	TotalCosts             float64 `json:"total_costs"`
	NetProceeds            float64 `json:"net_proceeds"`
	Profit                 float64 `json:"profit"`
	Moic                   float64 `json:"moic"`
	RoiPeriod              float64 `json:"roi_period"`
	IrrAnnual              float64 `json:"irr_annual"`
	AprSimple              float64 `json:"apr_simple"`
	BreakEvenSalePrice     float64 `json:"break_even_sale_price"`
	BreakEvenGapAbs        float64 `json:"break_even_gap_abs"`
	BreakEvenGapPctOfPrice float64 `json:"break_even_gap_pct_of_price"`

	// RemainingDebt is only meaningful for off-plan deals: the sum of
	// scheduled payments falling due on or before the projected sale date.
	RemainingDebt float64 `json:"remaining_debt,omitempty"`
}

// DealOutputsInvestor is the investor-level view given the profit split.
type DealOutputsInvestor struct {
	Capital     float64 `json:"capital"`
	ProfitShare float64 `json:"profit_share"`
	CashBack    float64 `json:"cash_back"`
	Moic        float64 `json:"moic"`
	RoiPeriod   float64 `json:"roi_period"`
	IrrAnnual   float64 `json:"irr_annual"`
}

// SensitivityPoint is one recomputed scenario along a single axis. Exactly
// one of the axis fields is set depending on which sweep produced it.
type SensitivityPoint struct {
	SalePrice        float64 `json:"sale_price,omitempty"`
	MonthsTotal      int     `json:"months_total,omitempty"`
	RenovationBudget float64 `json:"renovation_budget,omitempty"`

	RoiPeriod float64 `json:"roi_period"`
	IrrAnnual float64 `json:"irr_annual"`
	Profit    float64 `json:"profit"`
}

// SensitivityResult holds the three independent sweeps.
type SensitivityResult struct {
	BySalePrice  []SensitivityPoint `json:"by_sale_price"`
	ByMonths     []SensitivityPoint `json:"by_months"`
	ByRenovation []SensitivityPoint `json:"by_renovation"`
}

// ValidationIssue points at a single input field.
type ValidationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult separates blocking errors from informational warnings.
// Errors never stop the computation itself; they mark the result as not
// trustworthy.
type ValidationResult struct {
	IsValid  bool              `json:"is_valid"`
	Errors   []ValidationIssue `json:"errors"`
	Warnings []ValidationIssue `json:"warnings"`
}

// DealReport bundles everything computed from one DealInput snapshot.
type DealReport struct {
	Input       DealInput           `json:"input"`
	Derived     DealDerived         `json:"derived"`
	Project     DealOutputsProject  `json:"project"`
	Investor    DealOutputsInvestor `json:"investor"`
	Sensitivity SensitivityResult   `json:"sensitivity"`
	Validation  ValidationResult    `json:"validation"`
}

// SavedDeal is a named DealInput kept in the deal repository.
type SavedDeal struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Input   DealInput `json:"input"`
	SavedAt time.Time `json:"saved_at"`
}
