package service

import (
	"errors"
	"fmt"
	"math"

	"flip-agent/domain"
)

// EarlySaleService models what selling before the end of the exposure
// window costs: a time-decayed discount off the base sale price, or, for
// weeks with an explicit override, the price that hits a target ROI or IRR.
type EarlySaleService struct{}

func NewEarlySaleService() *EarlySaleService {
	return &EarlySaleService{}
}

// BuildSchedule produces one row every two weeks across the exposure
// window. Each row recomputes seller fee, VAT, net proceeds and returns
// from its own recommended price so the displayed figures stay consistent.
func (s *EarlySaleService) BuildSchedule(input domain.EarlySaleInput) (domain.EarlySaleResult, error) {
	if input.TargetReturnPct < 0 {
		return domain.EarlySaleResult{}, errors.New("target return cannot be negative")
	}
	for week, ov := range input.Overrides {
		if ov.Metric != domain.OverrideROI && ov.Metric != domain.OverrideIRR {
			return domain.EarlySaleResult{}, fmt.Errorf("week %d: unknown override metric %q", week, ov.Metric)
		}
	}

	deal := input.Deal
	project := ComputeProject(deal)

	listingWeeks := float64(deal.MonthsExposure) * WeeksPerMonth
	renovationWeeks := float64(deal.MonthsRepair) * WeeksPerMonth
	dailyRate := input.TargetReturnPct / 36500

	sellerRate := ToRate(deal.SellerFeePct)
	vatRate := ToRate(deal.SellerFeeVatPct)
	// Net proceeds as a fraction of price; the inversion denominator for
	// the target solvers.
	netRate := 1 - sellerRate*(1+vatRate)

	var rows []domain.EarlySaleRow
	for week := 0; float64(week) <= listingWeeks; week += EarlySaleWeekStep {
		monthsFromStart := (renovationWeeks + float64(week)) / WeeksPerMonth

		var price float64
		if ov, ok := input.Overrides[week]; ok {
			price = solveTargetPrice(ov, project.TotalCosts, monthsFromStart, netRate)
		} else {
			daysEarly := (listingWeeks - float64(week)) * 7
			discount := deal.SalePrice * dailyRate * daysEarly
			price = math.Max(0, deal.SalePrice-discount)
		}

		fee := price * sellerRate
		vat := fee * vatRate
		net := price - fee - vat
		profit := net - project.TotalCosts

		var roiPct, irrPct float64
		if project.TotalCosts > 0 {
			roiPct = profit / project.TotalCosts * 100
			if moic := net / project.TotalCosts; moic > 0 && monthsFromStart > 0 {
				irrPct = (math.Pow(moic, 12/monthsFromStart) - 1) * 100
			}
		}

		rows = append(rows, domain.EarlySaleRow{
			Week:             week,
			MonthsFromStart:  monthsFromStart,
			Discount:         RoundMoney(deal.SalePrice - price),
			RecommendedPrice: RoundMoney(price),
			Profit:           RoundMoney(profit),
			RoiPct:           roiPct,
			IrrPct:           irrPct,
		})
	}

	return domain.EarlySaleResult{Rows: rows}, nil
}

// solveTargetPrice inverts the net-proceeds formula for the sale price that
// hits the overridden target at the given point in time.
func solveTargetPrice(ov domain.MetricOverride, totalCosts, monthsFromStart, netRate float64) float64 {
	if netRate <= 0 {
		return 0
	}

	var targetNet float64
	switch ov.Metric {
	case domain.OverrideROI:
		targetNet = (ToRate(ov.ValuePct) + 1) * totalCosts
	case domain.OverrideIRR:
		targetNet = totalCosts * math.Pow(1+ToRate(ov.ValuePct), monthsFromStart/12)
	}
	return targetNet / netRate
}
