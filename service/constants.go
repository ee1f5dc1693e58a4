package service

// Sensitivity sweep shapes. The mid entry of each multiplier set is the
// unchanged base case.
var (
	salePriceMultipliers  = []float64{0.85, 0.90, 0.95, 1.00, 1.05, 1.10, 1.15}
	renovationMultipliers = []float64{0.8, 0.9, 1.0, 1.1, 1.2}
)

const (
	// The months sweep extends monthsTotal+MonthsSweepExtra but always
	// reaches at least MonthsSweepFloor.
	MonthsSweepExtra = 6
	MonthsSweepFloor = 12

	// SplitTolerance is the allowed deviation of investor+operator shares
	// from 100%.
	SplitTolerance = 0.01

	// OffplanCommitTolerance flags paid+scheduled totals above
	// purchasePrice * this factor.
	OffplanCommitTolerance = 1.01

	// WeeksPerMonth converts the month-based timing inputs to the weekly
	// early-sale grid.
	WeeksPerMonth = 4.33

	// EarlySaleWeekStep is the schedule granularity in weeks.
	EarlySaleWeekStep = 2

	// ScheduleDateLayout is the payment-schedule due-date format.
	ScheduleDateLayout = "2006-01-02"
)
