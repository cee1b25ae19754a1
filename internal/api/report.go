package api

import (
	"errors"
	"net/http"

	"dinepos-be/internal/report"
)

func (h *Handler) salesReport(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	rep, err := h.ReportSvc.Sales(r.Context(), report.Period(r.URL.Query().Get("period")))
	if err != nil {
		if errors.Is(err, report.ErrInvalidPeriod) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to build sales report")
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (h *Handler) salesReportCSV(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	data, err := h.ReportSvc.SalesCSV(r.Context(), report.Period(r.URL.Query().Get("period")))
	if err != nil {
		if errors.Is(err, report.ErrInvalidPeriod) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to export sales report")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="sales_report.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	s, err := h.ReportSvc.Summary(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load summary")
		return
	}
	writeJSON(w, http.StatusOK, s)
}
