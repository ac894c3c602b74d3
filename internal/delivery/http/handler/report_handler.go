package handler

import (
	"net/http"
	"time"

	"backend-clinica/internal/usecase"
	"backend-clinica/pkg/clock"
	"backend-clinica/pkg/response"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
	clk           clock.Clock
}

func NewReportHandler(reportUsecase usecase.ReportUsecase, clk clock.Clock) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
		clk:           clk,
	}
}

// GetBookingReport returns booking counts by status and by day
// @Summary Booking report
// @Description Aggregate bookings by estado overall and per day over a date range
// @Tags Reports
// @Produce json
// @Param desde query string false "Range start (YYYY-MM-DD), defaults to today"
// @Param hasta query string false "Range end (YYYY-MM-DD), defaults to 30 days ahead"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /reportes/reservas [get]
func (h *ReportHandler) GetBookingReport(w http.ResponseWriter, r *http.Request) {
	from, to, err := h.dateRange(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid date range, use YYYY-MM-DD", nil)
		return
	}

	report, err := h.reportUsecase.BookingReport(r.Context(), from, to)
	if err != nil {
		response.InternalServerError(w, "Failed to build report")
		return
	}

	response.Success(w, http.StatusOK, "Report generated successfully", report)
}

// GetAgendaPDF renders the booking agenda for a date range as PDF
// @Summary Booking agenda PDF
// @Tags Reports
// @Produce application/pdf
// @Param desde query string false "Range start (YYYY-MM-DD), defaults to today"
// @Param hasta query string false "Range end (YYYY-MM-DD), defaults to 30 days ahead"
// @Success 200 {file} binary
// @Failure 400 {object} response.Response
// @Router /reportes/reservas/pdf [get]
func (h *ReportHandler) GetAgendaPDF(w http.ResponseWriter, r *http.Request) {
	from, to, err := h.dateRange(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid date range, use YYYY-MM-DD", nil)
		return
	}

	pdf, err := h.reportUsecase.AgendaPDF(r.Context(), from, to)
	if err != nil {
		response.InternalServerError(w, "Failed to build agenda")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="agenda.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

func (h *ReportHandler) dateRange(r *http.Request) (time.Time, time.Time, error) {
	now := h.clk.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, 30)

	if raw := r.URL.Query().Get("desde"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}
	if raw := r.URL.Query().Get("hasta"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed
	}

	return from, to, nil
}
