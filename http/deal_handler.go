package http

import (
	"encoding/json"
	"net/http"

	"flip-agent/config"
	"flip-agent/domain"
	"flip-agent/service"
)

type DealHandler struct {
	service *service.DealService
}

func NewDealHandler(service *service.DealService) *DealHandler {
	return &DealHandler{service: service}
}

// Calculate runs the full pipeline on the posted input. Validation errors
// do not fail the request: the report carries them alongside the numbers.
func (h *DealHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.DealInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	report := h.service.Calculate(input)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

// Defaults returns the baseline input new callers start from, with the
// last autosaved draft taking precedence when one exists.
func (h *DealHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	input, ok := h.service.LoadDraft()
	if !ok {
		var err error
		input, err = config.DefaultDeal()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(input)
}
