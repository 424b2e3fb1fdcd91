package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"backend/internal/repositories"
	"backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the printable invoice for a booking settlement.
type DocsService struct {
	BookingRepo repositories.BookingRepository
	RequestID   string
	Loader      func(int64) (repositories.BookingWithRefs, error)
}

func (s DocsService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{}
}

func (s DocsService) load(bookingID int64) (repositories.BookingWithRefs, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}
	return s.bookings().GetWithRefs(bookingID)
}

// GenerateInvoice builds the settlement invoice PDF for one booking.
func (s DocsService) GenerateInvoice(bookingID int64) ([]byte, string, error) {
	b, err := s.load(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_invoice", fmt.Sprintf("booking_id=%d", bookingID))
	return buildInvoicePDF(b)
}

func buildInvoicePDF(b repositories.BookingWithRefs) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RENTAL INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice No : INV-"+b.BookingNumber)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Date       : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Customer : "+safe(b.CustomerName, "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Vehicle  : "+safe(b.VehicleRegistration, "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Period   : %s to %s (%d days)", b.StartDate, b.EndDate, b.TotalDays))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Charges:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("Vehicle rent (%s x %d days): %s",
			utils.FormatMoney(b.RentPerDay), b.TotalDays, utils.FormatMoney(b.TotalRent)),
	}
	if b.DriverCharges.TotalAmount > 0 {
		lines = append(lines, fmt.Sprintf("Driver charges (incl. overtime %s): %s",
			utils.FormatMoney(b.DriverCharges.OvertimeAmount), utils.FormatMoney(b.DriverCharges.TotalAmount)))
	}
	if b.TaxDeduction.Amount > 0 {
		lines = append(lines, fmt.Sprintf("Tax deduction (%.1f%%): -%s",
			b.TaxDeduction.Percentage, utils.FormatMoney(b.TaxDeduction.Amount)))
	}
	for _, line := range lines {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatMoney(b.Payment.TotalAmount))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Received: "+utils.FormatMoney(b.Payment.ReceivedAmount))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Balance : "+utils.FormatMoney(b.Payment.BalanceAmount))
	pdf.Ln(10)

	if b.VendorCharges != nil {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, fmt.Sprintf("Vendor cost (internal, not billed): %s",
			utils.FormatMoney(b.VendorCharges.TotalAmount)), "", "", false)
		pdf.Ln(2)
	}

	pdf.SetFont("Helvetica", "", 8)
	pdf.Cell(0, 5, "Issued "+utils.FormatDateTime(utils.NowUTC()))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("INVOICE_%s_%s.pdf", b.BookingNumber, safeFilenamePart(b.CustomerName))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
