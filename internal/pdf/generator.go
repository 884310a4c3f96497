package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/smartpack/carwash-service/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

func (g *Generator) Generate(report model.DailyReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, "Daily sales report", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Date: %s", report.Date), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Summary", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Payments: %d", report.Count), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Total amount: %s", formatAmount(report.TotalAmount)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Average payment: %s", formatAmount(report.AveragePayment)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Payments", "", 1, "L", false, 0, "")

	headers := []string{"Payment #", "Paid at", "Amount", "Plate", "Package"}
	colWidths := []float64{30, 40, 30, 35, 45}
	drawTableRow(pdf, g.fontName, headers, colWidths, true)

	for _, payment := range report.Payments {
		row := []string{
			payment.PaymentNumber,
			payment.PaymentDate.Format("2006-01-02 15:04"),
			formatAmount(payment.AmountPaid),
			plateNumber(payment),
			packageName(payment),
		}
		drawTableRow(pdf, g.fontName, row, colWidths, false)
	}

	pdf.Ln(2)
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Total: %s", formatAmount(report.TotalAmount)), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i == 2 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func plateNumber(payment model.PaymentView) string {
	if payment.ServicePackage == nil || payment.ServicePackage.Car == nil {
		return "N/A"
	}
	return payment.ServicePackage.Car.PlateNumber
}

func packageName(payment model.PaymentView) string {
	if payment.ServicePackage == nil || payment.ServicePackage.Package == nil {
		return "N/A"
	}
	return payment.ServicePackage.Package.PackageName
}

func formatAmount(value float64) string {
	return fmt.Sprintf("%.2f", value)
}
