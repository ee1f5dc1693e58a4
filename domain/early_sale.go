package domain

// Override metric kinds for the early-sale schedule.
const (
	OverrideROI = "roi"
	OverrideIRR = "irr"
)

// MetricOverride pins a week of the early-sale schedule to an explicit
// target instead of the pro-rated discount. ValuePct is 0..100.
type MetricOverride struct {
	Metric   string  `json:"metric"`
	ValuePct float64 `json:"value_pct"`
}

// EarlySaleInput asks for a week-by-week recommended-price schedule.
// Overrides are keyed by week offset within the exposure window; weeks
// without an override get the time-decayed discount.
type EarlySaleInput struct {
	Deal            DealInput              `json:"deal"`
	TargetReturnPct float64                `json:"target_return_pct"`
	Overrides       map[int]MetricOverride `json:"overrides,omitempty"`
}

// EarlySaleRow is one week of the schedule. Every row recomputes seller
// fees, net proceeds and returns from its own recommended price.
type EarlySaleRow struct {
	Week             int     `json:"week"`
	MonthsFromStart  float64 `json:"months_from_start"`
	Discount         float64 `json:"discount"`
	RecommendedPrice float64 `json:"recommended_price"`
	Profit           float64 `json:"profit"`
	RoiPct           float64 `json:"roi_pct"`
	IrrPct           float64 `json:"irr_pct"`
}

// EarlySaleResult is the full schedule for one deal.
type EarlySaleResult struct {
	Rows []EarlySaleRow `json:"rows"`
}
