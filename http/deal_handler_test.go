package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"flip-agent/domain"
	"flip-agent/repository"
	"flip-agent/service"
)

func newDealHandler() *DealHandler {
	repo := repository.NewDealRepositoryMemory()
	cache := repository.NewMemoryCache()
	return NewDealHandler(service.NewDealService(repo, cache))
}

func calculateBody() []byte {
	input := domain.DealInput{
		DealType:            domain.DealSecondary,
		PurchasePrice:       1390000,
		DldPct:              4,
		BuyerFeePct:         2,
		BuyerFeeVatPct:      5,
		TrusteeFee:          5000,
		RenovationBudget:    250000,
		ReservePct:          15,
		ServiceChargeAnnual: 6000,
		DewaMonthly:         500,
		SalePrice:           2300000,
		SellerFeePct:        4,
		SellerFeeVatPct:     5,
		MonthsRepair:        2,
		MonthsExposure:      4,
		InvestorSharePct:    50,
		OperatorSharePct:    50,
	}
	body, _ := json.Marshal(input)
	return body
}

func TestCalculateHandler_OK(t *testing.T) {
	handler := newDealHandler()

	req := httptest.NewRequest(http.MethodPost, "/deal/calculate", bytes.NewBuffer(calculateBody()))
	w := httptest.NewRecorder()

	handler.Calculate(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var report domain.DealReport
	if err := json.NewDecoder(w.Body).Decode(&report); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if report.Project.TotalCosts != 1773290 {
		t.Errorf("expected totalCosts 1773290, got %v", report.Project.TotalCosts)
	}
	if !report.Validation.IsValid {
		t.Errorf("expected valid input, got %+v", report.Validation.Errors)
	}
}

func TestCalculateHandler_InvalidInputStillReturnsNumbers(t *testing.T) {
	handler := newDealHandler()

	body := []byte(`{"deal_type":"secondary","purchase_price":1000000,"dld_pct":300,
		"sale_price":1200000,"months_repair":1,"months_exposure":1,
		"investor_share_pct":50,"operator_share_pct":50}`)
	req := httptest.NewRequest(http.MethodPost, "/deal/calculate", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.Calculate(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 even for invalid deals, got %d", w.Code)
	}

	var report domain.DealReport
	if err := json.NewDecoder(w.Body).Decode(&report); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if report.Validation.IsValid {
		t.Error("expected validation errors")
	}
	if report.Project.TotalCosts <= 0 {
		t.Errorf("expected computed costs regardless of validity, got %v", report.Project.TotalCosts)
	}
}

func TestCalculateHandler_MethodNotAllowed(t *testing.T) {
	handler := newDealHandler()

	req := httptest.NewRequest(http.MethodGet, "/deal/calculate", nil)
	w := httptest.NewRecorder()

	handler.Calculate(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestCalculateHandler_BadRequest(t *testing.T) {
	handler := newDealHandler()

	req := httptest.NewRequest(http.MethodPost, "/deal/calculate", bytes.NewBuffer([]byte(`{invalid-json}`)))
	w := httptest.NewRecorder()

	handler.Calculate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestDefaultsHandler(t *testing.T) {
	handler := newDealHandler()

	req := httptest.NewRequest(http.MethodGet, "/deal/defaults", nil)
	w := httptest.NewRecorder()

	handler.Defaults(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var input domain.DealInput
	if err := json.NewDecoder(w.Body).Decode(&input); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if input.DldPct != 4 || input.SellerFeePct != 4 || input.InvestorSharePct != 50 {
		t.Errorf("unexpected defaults: %+v", input)
	}
}

func TestDefaultsHandler_PrefersDraft(t *testing.T) {
	repo := repository.NewDealRepositoryMemory()
	cache := repository.NewMemoryCache()
	svc := service.NewDealService(repo, cache)
	handler := NewDealHandler(svc)

	draft := domain.DealInput{DealType: domain.DealSecondary, PurchasePrice: 777000,
		MonthsRepair: 1, MonthsExposure: 1, InvestorSharePct: 50, OperatorSharePct: 50}
	svc.Calculate(draft)

	req := httptest.NewRequest(http.MethodGet, "/deal/defaults", nil)
	w := httptest.NewRecorder()

	handler.Defaults(w, req)

	var input domain.DealInput
	if err := json.NewDecoder(w.Body).Decode(&input); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if input.PurchasePrice != 777000 {
		t.Errorf("expected the autosaved draft, got %+v", input)
	}
}
