package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/smartpack/carwash-service/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(report model.DailyReport) ([]byte, error) {
	file := excelize.NewFile()

	sheet := "Daily Report"
	file.SetSheetName("Sheet1", sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Date")
	set("B1", report.Date)
	set("A2", "Payments")
	set("B2", report.Count)
	set("A3", "Total amount")
	set("B3", formatAmount(report.TotalAmount))
	set("A4", "Average payment")
	set("B4", formatAmount(report.AveragePayment))

	tableRow := 6
	headers := []string{
		"Payment #",
		"Paid at",
		"Amount",
		"Record #",
		"Plate number",
		"Driver",
		"Package",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, tableRow)
		set(cell, header)
	}

	for i, payment := range report.Payments {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), payment.PaymentNumber)
		set(fmt.Sprintf("B%d", row), formatDateTime(payment.PaymentDate))
		set(fmt.Sprintf("C%d", row), formatAmount(payment.AmountPaid))
		set(fmt.Sprintf("D%d", row), recordNumber(payment))
		set(fmt.Sprintf("E%d", row), plateNumber(payment))
		set(fmt.Sprintf("F%d", row), driverName(payment))
		set(fmt.Sprintf("G%d", row), packageName(payment))
	}

	_ = file.SetColWidth(sheet, "A", "A", 16)
	_ = file.SetColWidth(sheet, "B", "B", 20)
	_ = file.SetColWidth(sheet, "C", "D", 14)
	_ = file.SetColWidth(sheet, "E", "G", 22)

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Dangling references render as N/A; the report never fails on them.

func recordNumber(payment model.PaymentView) string {
	if payment.ServicePackage == nil {
		return "N/A"
	}
	return payment.ServicePackage.RecordNumber
}

func plateNumber(payment model.PaymentView) string {
	if payment.ServicePackage == nil || payment.ServicePackage.Car == nil {
		return "N/A"
	}
	return payment.ServicePackage.Car.PlateNumber
}

func driverName(payment model.PaymentView) string {
	if payment.ServicePackage == nil || payment.ServicePackage.Car == nil {
		return "N/A"
	}
	return payment.ServicePackage.Car.DriverName
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

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}
