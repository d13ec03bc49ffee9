package services

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/clublibertad/clubfees-backend/models"
)

// ReportService handles Excel export of fees and payments
type ReportService struct {
	store Store
}

// NewReportService creates a new report service
func NewReportService(store Store) *ReportService {
	return &ReportService{store: store}
}

// ExportFeesAndPayments generates an Excel workbook with one sheet of fees
// and one of payments
func (s *ReportService) ExportFeesAndPayments() (*excelize.File, string, error) {
	fees, err := s.store.ListFees()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get fees: %v", err)
	}
	payments, err := s.store.ListPayments()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get payments: %v", err)
	}

	f := excelize.NewFile()

	if err := s.createFeeSheet(f, fees); err != nil {
		return nil, "", fmt.Errorf("failed to create fee sheet: %v", err)
	}
	if err := s.createPaymentSheet(f, payments); err != nil {
		return nil, "", fmt.Errorf("failed to create payment sheet: %v", err)
	}

	// Delete the default sheet if it exists
	f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("ClubFees_Export_%s.xlsx", time.Now().Format("2006-01-02"))
	return f, filename, nil
}

// createFeeSheet creates Sheet 1: Fees
func (s *ReportService) createFeeSheet(f *excelize.File, fees []models.Fee) error {
	sheetName := "Fees"
	f.NewSheet(sheetName)
	sheetIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIndex)

	headers := []string{"ID", "Member", "Sport", "Period", "Trainer", "Insurance", "Social", "Final Amount", "State", "Due Date"}
	writeHeaderRow(f, sheetName, headers)

	for i, fee := range fees {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), fee.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), fee.MemberID)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), fee.SportID)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), fee.Period.Format("2006-01"))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), fee.TrainerAmount.InexactFloat64())
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), fee.InsuranceAmount.InexactFloat64())
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), fee.SocialAmount.InexactFloat64())
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), fee.FinalAmount.InexactFloat64())
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), string(fee.State))
		f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), fee.DueDate.Format("2006-01-02"))
	}

	return nil
}

// createPaymentSheet creates Sheet 2: Payments
func (s *ReportService) createPaymentSheet(f *excelize.File, payments []models.Payment) error {
	sheetName := "Payments"
	f.NewSheet(sheetName)

	headers := []string{"ID", "Receipt", "Payer", "Date", "Method", "Trainer", "Insurance", "Social", "Grand Total"}
	writeHeaderRow(f, sheetName, headers)

	for i, payment := range payments {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), payment.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), payment.ReceiptNumber)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), payment.PayerID)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), payment.PaymentDate.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), string(payment.Method))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), payment.TrainerTotal.InexactFloat64())
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), payment.InsuranceTotal.InexactFloat64())
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), payment.SocialTotal.InexactFloat64())
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), payment.GrandTotal.InexactFloat64())
	}

	return nil
}

func writeHeaderRow(f *excelize.File, sheetName string, headers []string) {
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", string(rune('A'+len(headers)-1))), headerStyle)
}
