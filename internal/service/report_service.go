package service

import (
	"context"
	"fmt"
	"time"

	"github.com/smartpack/carwash-service/internal/model"
)

type ReportPaymentStore interface {
	ListPaymentsBetween(ctx context.Context, from, to time.Time) ([]model.PaymentView, error)
}

type ExcelGenerator interface {
	Generate(report model.DailyReport) ([]byte, error)
}

type PDFGenerator interface {
	Generate(report model.DailyReport) ([]byte, error)
}

type ReportService struct {
	store ReportPaymentStore
	excel ExcelGenerator
	pdf   PDFGenerator
}

func NewReportService(store ReportPaymentStore, excel ExcelGenerator, pdf PDFGenerator) *ReportService {
	return &ReportService{store: store, excel: excel, pdf: pdf}
}

type ExportResult struct {
	FileName string
	Content  []byte
}

// Daily summarizes the payments of one calendar day. A zero date means
// today. The window is inclusive on both ends: [00:00:00.000,
// 23:59:59.999] in the date's location.
func (s *ReportService) Daily(ctx context.Context, date time.Time) (*model.DailyReport, error) {
	if date.IsZero() {
		date = time.Now()
	}
	start := dateOnly(date)
	// Wall-clock end of day. AddDate keeps the calendar date, so the
	// window stays correct on days where a DST shift makes the local
	// day shorter or longer than 24 hours.
	end := start.AddDate(0, 0, 1).Add(-time.Millisecond)

	payments, err := s.store.ListPaymentsBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	if payments == nil {
		payments = []model.PaymentView{}
	}

	total := 0.0
	for _, payment := range payments {
		total += payment.AmountPaid
	}
	average := 0.0
	if len(payments) > 0 {
		average = total / float64(len(payments))
	}

	return &model.DailyReport{
		Date:           start.Format("2006-01-02"),
		TotalAmount:    total,
		Count:          len(payments),
		AveragePayment: average,
		Payments:       payments,
	}, nil
}

func (s *ReportService) ExportDailyExcel(ctx context.Context, date time.Time) (*ExportResult, error) {
	report, err := s.Daily(ctx, date)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.Generate(*report)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: fmt.Sprintf("daily-report-%s.xlsx", report.Date),
		Content:  content,
	}, nil
}

func (s *ReportService) ExportDailyPDF(ctx context.Context, date time.Time) (*ExportResult, error) {
	report, err := s.Daily(ctx, date)
	if err != nil {
		return nil, err
	}
	content, err := s.pdf.Generate(*report)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: fmt.Sprintf("daily-report-%s.pdf", report.Date),
		Content:  content,
	}, nil
}

func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
