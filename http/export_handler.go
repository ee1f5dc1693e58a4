package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"flip-agent/domain"
	"flip-agent/service"
)

type ExportHandler struct {
	exporter *service.ExportService
}

func NewExportHandler(exporter *service.ExportService) *ExportHandler {
	return &ExportHandler{exporter: exporter}
}

// CSV computes the report for the posted input and returns it as a CSV
// download.
func (h *ExportHandler) CSV(w http.ResponseWriter, r *http.Request) {
	report, ok := h.decodeReport(w, r)
	if !ok {
		return
	}

	data, err := h.exporter.CSV(report)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", attachmentName("csv"))
	w.Write(data)
}

// PDF computes the report for the posted input and returns it as a PDF
// download.
func (h *ExportHandler) PDF(w http.ResponseWriter, r *http.Request) {
	report, ok := h.decodeReport(w, r)
	if !ok {
		return
	}

	data, err := h.exporter.PDF(report)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", attachmentName("pdf"))
	w.Write(data)
}

func (h *ExportHandler) decodeReport(w http.ResponseWriter, r *http.Request) (domain.DealReport, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return domain.DealReport{}, false
	}

	var input domain.DealInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return domain.DealReport{}, false
	}
	return service.BuildReport(input), true
}

func attachmentName(ext string) string {
	return fmt.Sprintf("attachment; filename=flip-deal-%d.%s", time.Now().Unix(), ext)
}
