package service

import (
	"math"
	"time"

	"flip-agent/domain"
)

// timeNow is the clock used to project the off-plan sale date. Tests pin it.
var timeNow = time.Now

// ComputeDerived returns the quantities read directly off the input.
func ComputeDerived(input domain.DealInput) domain.DealDerived {
	return domain.DealDerived{
		MonthsTotal:     input.MonthsRepair + input.MonthsExposure,
		CarryingMonthly: RoundMoney(input.ServiceChargeAnnual/12 + input.DewaMonthly),
	}
}

// ComputeProject derives the project-level economics of one deal. It is a
// pure function of the input: every division is guarded so degenerate
// inputs resolve to 0 instead of NaN or Inf.
func ComputeProject(input domain.DealInput) domain.DealOutputsProject {
	derived := ComputeDerived(input)
	monthsTotal := derived.MonthsTotal

	carryingTotal := derived.CarryingMonthly * float64(monthsTotal)
	renovationTotal := input.RenovationBudget * (1 + ToRate(input.ReservePct))

	dld := input.PurchasePrice * ToRate(input.DldPct)
	buyerFee := input.PurchasePrice * ToRate(input.BuyerFeePct)
	buyerFeeVAT := buyerFee * ToRate(input.BuyerFeeVatPct)

	// Costs. Off-plan deals carry only the paid amount at t0; acquisition
	// fees are still charged against the full purchase price.
	var totalCosts, remainingDebt float64
	if input.DealType == domain.DealOffplan {
		var paid float64
		if input.Offplan != nil {
			paid = input.Offplan.PaidAmount
			remainingDebt = RoundMoney(remainingDebtAt(input.Offplan.PaymentSchedule, monthsTotal))
		}
		totalCosts = RoundMoney(paid + dld + buyerFee + buyerFeeVAT +
			renovationTotal + carryingTotal + input.TrusteeFee)
	} else {
		totalCosts = RoundMoney(input.PurchasePrice + dld + buyerFee + buyerFeeVAT +
			renovationTotal + carryingTotal + input.TrusteeFee)
	}

	sellerFee := input.SalePrice * ToRate(input.SellerFeePct)
	sellerFeeVAT := sellerFee * ToRate(input.SellerFeeVatPct)
	netProceeds := RoundMoney(input.SalePrice - sellerFee - sellerFeeVAT - remainingDebt)

	profit := netProceeds - totalCosts

	var moic, roiPeriod float64
	if totalCosts > 0 {
		moic = netProceeds / totalCosts
		roiPeriod = profit / totalCosts
	}

	irrAnnual := annualizeMoic(moic, monthsTotal, totalCosts > 0)

	var aprSimple float64
	if monthsTotal > 0 {
		aprSimple = roiPeriod * 12 / float64(monthsTotal)
	}

	// Break-even: the exact inverse of the net-proceeds formula at
	// profit = 0. Off-plan adds the remaining debt back to the target.
	feeRate := ToRate(input.SellerFeePct) * (1 + ToRate(input.SellerFeeVatPct))
	var breakEven float64
	if base := totalCosts + remainingDebt; base > 0 && feeRate < 1 {
		breakEven = RoundMoney(base / (1 - feeRate))
	}

	gapAbs := input.SalePrice - breakEven
	var gapPct float64
	if input.SalePrice > 0 {
		gapPct = gapAbs / input.SalePrice
	}

	return domain.DealOutputsProject{
		TotalCosts:             totalCosts,
		NetProceeds:            netProceeds,
		Profit:                 profit,
		Moic:                   moic,
		RoiPeriod:              roiPeriod,
		IrrAnnual:              irrAnnual,
		AprSimple:              aprSimple,
		BreakEvenSalePrice:     breakEven,
		BreakEvenGapAbs:        gapAbs,
		BreakEvenGapPctOfPrice: gapPct,
		RemainingDebt:          remainingDebt,
	}
}

// remainingDebtAt sums the scheduled payments falling due on or before the
// projected sale date (monthsTotal from now). A payment with a missing or
// unparseable date is conservatively treated as due.
func remainingDebtAt(schedule []domain.ScheduledPayment, monthsTotal int) float64 {
	saleDate := timeNow().AddDate(0, monthsTotal, 0)
	var sum float64
	for _, p := range schedule {
		due, err := time.Parse(ScheduleDateLayout, p.DueDate)
		if err != nil || !due.After(saleDate) {
			sum += p.Amount
		}
	}
	return sum
}

// annualizeMoic compounds a period multiple into an annual rate:
// moic^(12/months) - 1. This is the two-point approximation the whole tool
// uses: all cash out at t0, one inflow at t0+months.
func annualizeMoic(moic float64, monthsTotal int, costsPositive bool) float64 {
	if monthsTotal <= 0 || !costsPositive || moic <= 0 {
		return 0
	}
	return math.Pow(moic, 12/float64(monthsTotal)) - 1
}

// ComputeInvestor derives the investor-level view from the project result
// and the profit split. The investor funds the full cost at t0.
func ComputeInvestor(input domain.DealInput, project domain.DealOutputsProject) domain.DealOutputsInvestor {
	monthsTotal := ComputeDerived(input).MonthsTotal

	capital := RoundMoney(project.TotalCosts)

	sharedProfit := project.Profit
	if input.LossSharing == domain.LossFloorAtZero && sharedProfit < 0 {
		sharedProfit = 0
	}
	profitShare := RoundMoney(sharedProfit * ToRate(input.InvestorSharePct))

	// Computed from the rounded parts so the cash identity holds exactly.
	cashBack := capital + profitShare

	var moic, roiPeriod float64
	if capital > 0 {
		moic = cashBack / capital
		roiPeriod = profitShare / capital
	}

	return domain.DealOutputsInvestor{
		Capital:     capital,
		ProfitShare: profitShare,
		CashBack:    cashBack,
		Moic:        moic,
		RoiPeriod:   roiPeriod,
		IrrAnnual:   annualizeMoic(moic, monthsTotal, capital > 0),
	}
}

// ComputeSensitivity recomputes the project economics across the three
// fixed sweeps. Price and renovation sweeps re-run the full computation on
// a modified input; the months sweep only grows the carrying cost linearly
// on top of the base project, holding net proceeds fixed.
func ComputeSensitivity(input domain.DealInput, project domain.DealOutputsProject) domain.SensitivityResult {
	derived := ComputeDerived(input)

	bySalePrice := make([]domain.SensitivityPoint, 0, len(salePriceMultipliers))
	for _, mult := range salePriceMultipliers {
		varied := input
		varied.SalePrice = RoundMoney(input.SalePrice * mult)
		p := ComputeProject(varied)
		bySalePrice = append(bySalePrice, domain.SensitivityPoint{
			SalePrice: varied.SalePrice,
			RoiPeriod: p.RoiPeriod,
			IrrAnnual: p.IrrAnnual,
			Profit:    p.Profit,
		})
	}

	maxMonths := derived.MonthsTotal + MonthsSweepExtra
	if maxMonths < MonthsSweepFloor {
		maxMonths = MonthsSweepFloor
	}
	byMonths := make([]domain.SensitivityPoint, 0, maxMonths-derived.MonthsTotal+1)
	for months := derived.MonthsTotal; months <= maxMonths; months++ {
		additionalCarrying := derived.CarryingMonthly * float64(months-derived.MonthsTotal)
		totalCosts := project.TotalCosts + additionalCarrying
		profit := project.NetProceeds - totalCosts

		var moic, roiPeriod float64
		if totalCosts > 0 {
			moic = project.NetProceeds / totalCosts
			roiPeriod = profit / totalCosts
		}

		byMonths = append(byMonths, domain.SensitivityPoint{
			MonthsTotal: months,
			RoiPeriod:   roiPeriod,
			IrrAnnual:   annualizeMoic(moic, months, totalCosts > 0),
			Profit:      RoundMoney(profit),
		})
	}

	byRenovation := make([]domain.SensitivityPoint, 0, len(renovationMultipliers))
	for _, mult := range renovationMultipliers {
		varied := input
		varied.RenovationBudget = RoundMoney(input.RenovationBudget * mult)
		p := ComputeProject(varied)
		byRenovation = append(byRenovation, domain.SensitivityPoint{
			RenovationBudget: varied.RenovationBudget,
			RoiPeriod:        p.RoiPeriod,
			IrrAnnual:        p.IrrAnnual,
			Profit:           p.Profit,
		})
	}

	return domain.SensitivityResult{
		BySalePrice:  bySalePrice,
		ByMonths:     byMonths,
		ByRenovation: byRenovation,
	}
}
