package service

import (
	"fmt"
	"math"
	"strings"

	"flip-agent/domain"
)

// ValidateInput checks one DealInput for hard errors and economic
// warnings. Errors mark the result untrustworthy but never stop the
// computation; callers are expected to compute and render regardless.
func ValidateInput(input domain.DealInput) domain.ValidationResult {
	var errors, warnings []domain.ValidationIssue

	pctFields := []struct {
		field string
		label string
		value float64
	}{
		{"dld_pct", "DLD fee", input.DldPct},
		{"buyer_fee_pct", "buyer fee", input.BuyerFeePct},
		{"buyer_fee_vat_pct", "buyer fee VAT", input.BuyerFeeVatPct},
		{"seller_fee_pct", "seller fee", input.SellerFeePct},
		{"seller_fee_vat_pct", "seller fee VAT", input.SellerFeeVatPct},
		{"reserve_pct", "renovation reserve", input.ReservePct},
		{"investor_share_pct", "investor share", input.InvestorSharePct},
		{"operator_share_pct", "operator share", input.OperatorSharePct},
	}
	for _, f := range pctFields {
		if f.value < 0 || f.value > 100 {
			errors = append(errors, domain.ValidationIssue{
				Field:   f.field,
				Message: fmt.Sprintf("%s must be between 0 and 100%%", f.label),
			})
		}
	}

	moneyFields := []struct {
		field string
		label string
		value float64
	}{
		{"purchase_price", "purchase price", input.PurchasePrice},
		{"sale_price", "sale price", input.SalePrice},
		{"renovation_budget", "renovation budget", input.RenovationBudget},
		{"service_charge_annual", "service charge", input.ServiceChargeAnnual},
		{"dewa_monthly", "DEWA charge", input.DewaMonthly},
		{"trustee_fee", "trustee fee", input.TrusteeFee},
	}
	for _, f := range moneyFields {
		if f.value < 0 {
			errors = append(errors, domain.ValidationIssue{
				Field:   f.field,
				Message: fmt.Sprintf("%s cannot be negative", f.label),
			})
		}
	}

	if input.MonthsRepair < 0 {
		errors = append(errors, domain.ValidationIssue{
			Field:   "months_repair",
			Message: "repair period cannot be negative",
		})
	}
	if input.MonthsExposure < 0 {
		errors = append(errors, domain.ValidationIssue{
			Field:   "months_exposure",
			Message: "exposure period cannot be negative",
		})
	}
	if input.MonthsRepair+input.MonthsExposure <= 0 {
		errors = append(errors, domain.ValidationIssue{
			Field:   "months_total",
			Message: "total deal duration must be greater than 0",
		})
	}

	if math.Abs(input.InvestorSharePct+input.OperatorSharePct-100) > SplitTolerance {
		errors = append(errors, domain.ValidationIssue{
			Field:   "profit_split",
			Message: "investor and operator shares must add up to 100%",
		})
	}

	if input.DealType == domain.DealOffplan {
		errors, warnings = validateOffplan(input, errors, warnings)
	}

	feeRate := ToRate(input.SellerFeePct) * (1 + ToRate(input.SellerFeeVatPct))
	if feeRate >= 1 {
		warnings = append(warnings, domain.ValidationIssue{
			Field:   "seller_fee_pct",
			Message: "seller fee with VAT is 100% or more of the sale price",
		})
	}

	// Break-even check only makes sense on otherwise valid input.
	if len(errors) == 0 {
		project := ComputeProject(input)
		if input.SalePrice < project.BreakEvenSalePrice {
			warnings = append(warnings, domain.ValidationIssue{
				Field: "sale_price",
				Message: fmt.Sprintf("sale price is below the break-even price (%s)",
					FormatMoney(project.BreakEvenSalePrice)),
			})
		}
	}

	return domain.ValidationResult{
		IsValid:  len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}

func validateOffplan(input domain.DealInput, errors, warnings []domain.ValidationIssue) ([]domain.ValidationIssue, []domain.ValidationIssue) {
	if input.Offplan == nil {
		errors = append(errors, domain.ValidationIssue{
			Field:   "offplan",
			Message: "off-plan deals require the paid amount and payment schedule",
		})
		return errors, warnings
	}

	terms := input.Offplan
	if terms.PaidAmount < 0 {
		errors = append(errors, domain.ValidationIssue{
			Field:   "offplan.paid_amount",
			Message: "paid amount cannot be negative",
		})
	}

	var scheduled float64
	for i, p := range terms.PaymentSchedule {
		if p.Amount < 0 {
			errors = append(errors, domain.ValidationIssue{
				Field:   fmt.Sprintf("offplan.payment_schedule[%d].amount", i),
				Message: "scheduled payment cannot be negative",
			})
		}
		if strings.TrimSpace(p.DueDate) == "" {
			errors = append(errors, domain.ValidationIssue{
				Field:   fmt.Sprintf("offplan.payment_schedule[%d].due_date", i),
				Message: "scheduled payment is missing a due date",
			})
		}
		scheduled += p.Amount
	}

	if terms.PaidAmount > input.PurchasePrice {
		warnings = append(warnings, domain.ValidationIssue{
			Field:   "offplan.paid_amount",
			Message: "paid amount exceeds the purchase price",
		})
	}
	if terms.PaidAmount+scheduled > input.PurchasePrice*OffplanCommitTolerance {
		warnings = append(warnings, domain.ValidationIssue{
			Field:   "offplan.payment_schedule",
			Message: "paid amount plus scheduled payments exceed the purchase price",
		})
	}

	return errors, warnings
}
