package service

import (
	"encoding/base64"
	"testing"

	"flip-agent/domain"
	"flip-agent/repository"
)

func TestShareEncodeDecode_RoundTrip(t *testing.T) {
	svc := NewShareService(repository.NewMemoryCache())
	input := referenceInput()

	decoded, err := svc.Decode(svc.Encode(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded != input {
		t.Errorf("round-trip mismatch:\n got %+v\nwant %+v", decoded, input)
	}
}

func TestShareEncodeDecode_Offplan(t *testing.T) {
	svc := NewShareService(repository.NewMemoryCache())
	input := offplanInput()

	decoded, err := svc.Decode(svc.Encode(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded.DealType != domain.DealOffplan {
		t.Fatalf("expected offplan deal, got %q", decoded.DealType)
	}
	if decoded.Offplan == nil {
		t.Fatal("expected offplan terms")
	}
	if decoded.Offplan.PaidAmount != input.Offplan.PaidAmount {
		t.Errorf("paid amount mismatch: %v", decoded.Offplan.PaidAmount)
	}
	if len(decoded.Offplan.PaymentSchedule) != len(input.Offplan.PaymentSchedule) {
		t.Errorf("schedule length mismatch: %d", len(decoded.Offplan.PaymentSchedule))
	}
}

func TestShareDecode_FillsDefaults(t *testing.T) {
	svc := NewShareService(repository.NewMemoryCache())

	// A minimal payload: everything else falls back to the embedded
	// defaults.
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"pp":500000,"sp":700000}`))
	decoded, err := svc.Decode(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if decoded.PurchasePrice != 500000 || decoded.SalePrice != 700000 {
		t.Errorf("explicit fields lost: %+v", decoded)
	}
	if decoded.DldPct != 4 || decoded.SellerFeePct != 4 || decoded.ReservePct != 15 {
		t.Errorf("defaults not applied: %+v", decoded)
	}
	if decoded.InvestorSharePct != 50 || decoded.OperatorSharePct != 50 {
		t.Errorf("split defaults not applied: %+v", decoded)
	}
}

func TestShareDecode_RejectsGarbage(t *testing.T) {
	svc := NewShareService(repository.NewMemoryCache())

	if _, err := svc.Decode("!!not-base64!!"); err == nil {
		t.Error("expected error for invalid base64")
	}
	payload := base64.RawURLEncoding.EncodeToString([]byte("{broken"))
	if _, err := svc.Decode(payload); err == nil {
		t.Error("expected error for invalid json")
	}
}

func TestShareCodes(t *testing.T) {
	cache := repository.NewMemoryCache()
	svc := NewShareService(cache)
	input := referenceInput()

	code, err := svc.CreateCode(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code == "" {
		t.Fatal("expected a share code")
	}

	resolved, err := svc.Resolve(code)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved != input {
		t.Errorf("resolved input mismatch")
	}

	codes, err := svc.ListCodes()
	if err != nil || len(codes) != 1 || codes[0] != code {
		t.Errorf("expected [%s], got %v (err %v)", code, codes, err)
	}

	if err := svc.DeleteCode(code); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Resolve(code); err == nil {
		t.Error("expected error after deletion")
	}
}

func TestShareResolve_UnknownCode(t *testing.T) {
	svc := NewShareService(repository.NewMemoryCache())

	if _, err := svc.Resolve("nope"); err == nil {
		t.Error("expected error for unknown code")
	}
}
