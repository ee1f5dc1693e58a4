package config

import (
	"testing"

	"flip-agent/domain"
)

func TestDefaultDeal(t *testing.T) {
	input, err := DefaultDeal()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if input.DealType != domain.DealSecondary {
		t.Errorf("expected secondary default, got %q", input.DealType)
	}
	if input.DldPct != 4 || input.BuyerFeePct != 2 || input.SellerFeePct != 4 {
		t.Errorf("unexpected fee defaults: %+v", input)
	}
	if input.ReservePct != 15 || input.ServiceChargeAnnual != 6000 || input.DewaMonthly != 500 {
		t.Errorf("unexpected carrying defaults: %+v", input)
	}
	if input.MonthsRepair != 2 || input.MonthsExposure != 4 {
		t.Errorf("unexpected timing defaults: %+v", input)
	}
	if input.InvestorSharePct+input.OperatorSharePct != 100 {
		t.Errorf("split defaults must add to 100: %+v", input)
	}
	if input.LossSharing != domain.LossProportional {
		t.Errorf("expected proportional loss sharing, got %q", input.LossSharing)
	}
}
