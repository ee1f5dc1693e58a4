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

func TestShareHandler_CreateAndResolve(t *testing.T) {
	handler := NewShareHandler(service.NewShareService(repository.NewMemoryCache()))

	req := httptest.NewRequest(http.MethodPost, "/deal/share", bytes.NewBuffer(calculateBody()))
	w := httptest.NewRecorder()
	handler.Handle(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var created map[string]string
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if created["code"] == "" || created["encoded"] == "" {
		t.Fatalf("expected code and encoded payload, got %v", created)
	}

	req = httptest.NewRequest(http.MethodGet, "/deal/share?code="+created["code"], nil)
	w = httptest.NewRecorder()
	handler.Handle(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var input domain.DealInput
	if err := json.NewDecoder(w.Body).Decode(&input); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if input.PurchasePrice != 1390000 {
		t.Errorf("resolved deal mismatch: %+v", input)
	}
}

func TestShareHandler_UnknownCode(t *testing.T) {
	handler := NewShareHandler(service.NewShareService(repository.NewMemoryCache()))

	req := httptest.NewRequest(http.MethodGet, "/deal/share?code=missing", nil)
	w := httptest.NewRecorder()
	handler.Handle(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestShareHandler_MissingCode(t *testing.T) {
	handler := NewShareHandler(service.NewShareService(repository.NewMemoryCache()))

	req := httptest.NewRequest(http.MethodGet, "/deal/share", nil)
	w := httptest.NewRecorder()
	handler.Handle(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestShareHandler_MethodNotAllowed(t *testing.T) {
	handler := NewShareHandler(service.NewShareService(repository.NewMemoryCache()))

	req := httptest.NewRequest(http.MethodDelete, "/deal/share", nil)
	w := httptest.NewRecorder()
	handler.Handle(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}
