package services

import (
	"bytes"
	"database/sql"
	"fmt"
	"time"

	intconfig "backend/internal/config"
	"backend/internal/domain"
	"backend/internal/repositories"
	"backend/internal/utils"

	"github.com/xuri/excelize/v2"
)

// MonthlyRentalFilter selects one calendar month of bookings.
type MonthlyRentalFilter struct {
	Year  int
	Month int
}

type ReportsService struct {
	BookingRepo repositories.BookingRepository
	ReportRepo  repositories.ReportRepository
	DB          *sql.DB
}

func (s ReportsService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s ReportsService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

func (s ReportsService) reports() repositories.ReportRepository {
	if s.ReportRepo.DB != nil {
		return s.ReportRepo
	}
	return repositories.ReportRepository{DB: s.db()}
}

func (s ReportsService) monthlyBookings(f MonthlyRentalFilter) ([]repositories.BookingWithRefs, error) {
	if f.Month < 1 || f.Month > 12 {
		return nil, domain.ValidationError{Field: "month", Msg: "must be 1-12"}
	}
	if f.Year < 2000 || f.Year > 2100 {
		return nil, domain.ValidationError{Field: "year", Msg: "out of range"}
	}
	first := time.Date(f.Year, time.Month(f.Month), 1, 0, 0, 0, 0, time.Local)
	from := utils.FormatDate(first)
	to := utils.FormatDate(utils.MonthEnd(first))
	return s.bookings().List(repositories.BookingFilter{StartFrom: from, StartTo: to})
}

// MonthlyRental returns one month of bookings with their settlement totals.
func (s ReportsService) MonthlyRental(f MonthlyRentalFilter) ([]repositories.BookingWithRefs, error) {
	return s.monthlyBookings(f)
}

func (s ReportsService) VehicleSummary() ([]repositories.VehicleSummaryRow, error) {
	return s.reports().VehicleSummary()
}

func (s ReportsService) DriverSummary() ([]repositories.DriverSummaryRow, error) {
	return s.reports().DriverSummary()
}

// MonthlyRentalXLSX renders the monthly rental report as a spreadsheet.
func (s ReportsService) MonthlyRentalXLSX(f MonthlyRentalFilter) ([]byte, string, error) {
	items, err := s.monthlyBookings(f)
	if err != nil {
		return nil, "", err
	}

	wb := excelize.NewFile()
	defer wb.Close()
	sheet := wb.GetSheetName(0)

	headers := []string{
		"Booking #", "Customer", "Vehicle", "Start", "End", "Days",
		"Rent/Day", "Total Rent", "Driver Charges", "Tax", "Total", "Received", "Balance", "Status",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		wb.SetCellValue(sheet, cell, h)
	}
	for row, b := range items {
		values := []any{
			b.BookingNumber, b.CustomerName, b.VehicleRegistration,
			b.StartDate, b.EndDate, b.TotalDays,
			b.RentPerDay, b.TotalRent, b.DriverCharges.TotalAmount,
			b.TaxDeduction.Amount, b.Payment.TotalAmount,
			b.Payment.ReceivedAmount, b.Payment.BalanceAmount, b.Status,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			wb.SetCellValue(sheet, cell, v)
		}
	}

	var totalRent, totalFinal float64
	for _, b := range items {
		totalRent += b.TotalRent
		totalFinal += b.Payment.TotalAmount
	}
	footer := len(items) + 3
	cell, _ := excelize.CoordinatesToCellName(1, footer)
	wb.SetCellValue(sheet, cell, "Totals")
	cell, _ = excelize.CoordinatesToCellName(8, footer)
	wb.SetCellValue(sheet, cell, utils.FormatMoney(totalRent))
	cell, _ = excelize.CoordinatesToCellName(11, footer)
	wb.SetCellValue(sheet, cell, utils.FormatMoney(totalFinal))

	var buf bytes.Buffer
	if err := wb.Write(&buf); err != nil {
		return nil, "", domain.InternalError{Err: err}
	}
	filename := fmt.Sprintf("rental_report_%04d_%02d.xlsx", f.Year, f.Month)
	return buf.Bytes(), filename, nil
}

// VehicleSummaryXLSX renders per-vehicle utilization and revenue.
func (s ReportsService) VehicleSummaryXLSX() ([]byte, string, error) {
	items, err := s.reports().VehicleSummary()
	if err != nil {
		return nil, "", domain.InternalError{Err: err}
	}

	wb := excelize.NewFile()
	defer wb.Close()
	sheet := wb.GetSheetName(0)

	headers := []string{"Registration", "Type", "Status", "Bookings", "Revenue", "Mileage Driven"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		wb.SetCellValue(sheet, cell, h)
	}
	for row, v := range items {
		values := []any{v.RegistrationNumber, v.VehicleType, v.Status, v.Bookings, v.Revenue, v.MileageDriven}
		for col, val := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			wb.SetCellValue(sheet, cell, val)
		}
	}

	var buf bytes.Buffer
	if err := wb.Write(&buf); err != nil {
		return nil, "", domain.InternalError{Err: err}
	}
	return buf.Bytes(), "vehicle_summary.xlsx", nil
}

// DriverSummaryXLSX renders per-driver duty and earnings totals.
func (s ReportsService) DriverSummaryXLSX() ([]byte, string, error) {
	items, err := s.reports().DriverSummary()
	if err != nil {
		return nil, "", domain.InternalError{Err: err}
	}

	wb := excelize.NewFile()
	defer wb.Close()
	sheet := wb.GetSheetName(0)

	headers := []string{"Driver", "Bookings", "Overtime Hours", "Driver Charges", "Allowances"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		wb.SetCellValue(sheet, cell, h)
	}
	for row, d := range items {
		values := []any{d.Name, d.Bookings, d.OvertimeHours, d.DriverCharges, d.Allowances}
		for col, val := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			wb.SetCellValue(sheet, cell, val)
		}
	}

	var buf bytes.Buffer
	if err := wb.Write(&buf); err != nil {
		return nil, "", domain.InternalError{Err: err}
	}
	return buf.Bytes(), "driver_report.xlsx", nil
}
