package http

import (
	"encoding/json"
	"net/http"

	"flip-agent/domain"
	"flip-agent/service"
)

type EarlySaleHandler struct {
	service *service.EarlySaleService
}

func NewEarlySaleHandler(service *service.EarlySaleService) *EarlySaleHandler {
	return &EarlySaleHandler{service: service}
}

func (h *EarlySaleHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.EarlySaleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.BuildSchedule(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
