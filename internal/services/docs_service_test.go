package services

import (
	"strings"
	"testing"

	"backend/internal/domain/models"
	"backend/internal/repositories"
)

func TestDocsServiceGenerateInvoice(t *testing.T) {
	loader := func(id int64) (repositories.BookingWithRefs, error) {
		end := 1900.0
		return repositories.BookingWithRefs{
			Booking: models.Booking{
				ID:            id,
				BookingNumber: "BK000010",
				RentalType:    models.RentalTypeOwn,
				StartDate:     "2025-03-01",
				EndDate:       "2025-03-03",
				TotalDays:     3,
				RentPerDay:    2000,
				TotalRent:     6000,
				DriverCharges: models.DriverCharges{DailyRate: 1000, OvertimeAmount: 400, TotalAmount: 3400},
				TaxDeduction:  models.TaxDeduction{Percentage: 10, Amount: 600},
				Mileage:       models.Mileage{Start: 1500, End: &end, Total: 400},
				Payment:       models.BookingPayment{TotalAmount: 8800, ReceivedAmount: 4000, BalanceAmount: 4800},
				Status:        models.BookingStatusInProgress,
			},
			CustomerName:        "Acme Transport",
			VehicleRegistration: "LEB-123",
		}, nil
	}

	svc := DocsService{Loader: loader}
	pdf, filename, err := svc.GenerateInvoice(10)
	if err != nil {
		t.Fatalf("GenerateInvoice returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateInvoice returned empty data")
	}
	if !strings.HasPrefix(filename, "INVOICE_BK000010") {
		t.Fatalf("unexpected filename %q", filename)
	}
}
