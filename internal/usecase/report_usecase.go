package usecase

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"backend-clinica/internal/delivery/dto"
	"backend-clinica/internal/domain/repository"

	"github.com/jung-kurt/gofpdf"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ReportUsecase interface {
	BookingReport(ctx context.Context, from, to time.Time) (*dto.BookingReportResponse, error)
	AgendaPDF(ctx context.Context, from, to time.Time) ([]byte, error)
}

type reportUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	bookingRepo repository.BookingRepository
}

func NewReportUsecase(db *gorm.DB, log *logrus.Logger, bookingRepo repository.BookingRepository) ReportUsecase {
	return &reportUsecase{
		db:          db,
		log:         log,
		bookingRepo: bookingRepo,
	}
}

func (u *reportUsecase) BookingReport(ctx context.Context, from, to time.Time) (*dto.BookingReportResponse, error) {
	db := u.db.WithContext(ctx)

	byStatus, err := u.bookingRepo.CountByStatus(db)
	if err != nil {
		u.log.Warnf("Failed to count bookings by status: %+v", err)
		return nil, err
	}

	byDay, err := u.bookingRepo.CountByDay(db, from, to)
	if err != nil {
		u.log.Warnf("Failed to count bookings by day: %+v", err)
		return nil, err
	}

	report := &dto.BookingReportResponse{
		ByStatus: make([]dto.StatusCountResponse, 0, len(byStatus)),
		ByDay:    make([]dto.DailyCountResponse, 0, len(byDay)),
	}

	for _, c := range byStatus {
		report.ByStatus = append(report.ByStatus, dto.StatusCountResponse{
			Status: string(c.Status),
			Total:  c.Total,
		})
	}
	for _, c := range byDay {
		report.ByDay = append(report.ByDay, dto.DailyCountResponse{
			Date:   c.Date,
			Status: string(c.Status),
			Total:  c.Total,
		})
	}

	return report, nil
}

// AgendaPDF renders the bookings between two dates as a printable agenda,
// one row per booking, ordered by date and start time.
func (u *reportUsecase) AgendaPDF(ctx context.Context, from, to time.Time) ([]byte, error) {
	bookings, err := u.bookingRepo.FindBetween(u.db.WithContext(ctx), from, to)
	if err != nil {
		u.log.Warnf("Failed to load bookings for agenda: %+v", err)
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Agenda de reservas", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Agenda de reservas %s - %s",
		from.Format("2006-01-02"), to.Format("2006-01-02")))
	pdf.Ln(12)

	headers := []string{"Fecha", "Hora", "Paciente", "Medico", "Especialidad", "Estado"}
	widths := []float64{22, 24, 38, 38, 38, 24}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, b := range bookings {
		row := []string{
			b.BookingDate.Format("2006-01-02"),
			b.StartTime + " - " + b.EndTime,
			b.Patient.FullName(),
			b.Doctor.FullName(),
			b.Specialty.Name,
			string(b.Status),
		}
		for i, cell := range row {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		u.log.Warnf("Failed to render agenda PDF: %+v", err)
		return nil, err
	}

	return buf.Bytes(), nil
}
