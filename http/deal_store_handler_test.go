package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"flip-agent/domain"
	"flip-agent/repository"
	"flip-agent/service"
)

func newStoreHandler() *DealStoreHandler {
	repo := repository.NewDealRepositoryMemory()
	cache := repository.NewMemoryCache()
	return NewDealStoreHandler(service.NewDealService(repo, cache))
}

func TestDealStoreHandler_SaveListDelete(t *testing.T) {
	handler := newStoreHandler()

	body, _ := json.Marshal(map[string]any{
		"name":  "JVC townhouse",
		"input": json.RawMessage(calculateBody()),
	})
	req := httptest.NewRequest(http.MethodPost, "/deal/save", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	handler.Save(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var saved domain.SavedDeal
	if err := json.NewDecoder(w.Body).Decode(&saved); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if saved.ID == "" || saved.Name != "JVC townhouse" {
		t.Fatalf("unexpected saved deal: %+v", saved)
	}

	req = httptest.NewRequest(http.MethodGet, "/deal/saved", nil)
	w = httptest.NewRecorder()
	handler.Saved(w, req)

	var deals []domain.SavedDeal
	if err := json.NewDecoder(w.Body).Decode(&deals); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(deals) != 1 || deals[0].ID != saved.ID {
		t.Fatalf("expected the saved deal in the list, got %+v", deals)
	}

	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/deal/saved?id=%s", saved.ID), nil)
	w = httptest.NewRecorder()
	handler.Saved(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestDealStoreHandler_SaveRequiresName(t *testing.T) {
	handler := newStoreHandler()

	body, _ := json.Marshal(map[string]any{
		"name":  "",
		"input": json.RawMessage(calculateBody()),
	})
	req := httptest.NewRequest(http.MethodPost, "/deal/save", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	handler.Save(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestDealStoreHandler_DeleteUnknown(t *testing.T) {
	handler := newStoreHandler()

	req := httptest.NewRequest(http.MethodDelete, "/deal/saved?id=nope", nil)
	w := httptest.NewRecorder()
	handler.Saved(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
