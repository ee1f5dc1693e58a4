package http

import (
	"encoding/json"
	"net/http"

	"flip-agent/domain"
	"flip-agent/service"
)

type DealStoreHandler struct {
	service *service.DealService
}

func NewDealStoreHandler(service *service.DealService) *DealStoreHandler {
	return &DealStoreHandler{service: service}
}

type saveDealRequest struct {
	Name  string           `json:"name"`
	Input domain.DealInput `json:"input"`
}

// Save stores a named deal.
func (h *DealStoreHandler) Save(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req saveDealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	deal, err := h.service.SaveDeal(req.Name, req.Input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(deal)
}

// Saved lists saved deals on GET and deletes ?id= on DELETE.
func (h *DealStoreHandler) Saved(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		deals, err := h.service.ListDeals()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(deals)
	case http.MethodDelete:
		id := r.URL.Query().Get("id")
		if err := h.service.DeleteDeal(id); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}
