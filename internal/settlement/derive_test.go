package settlement

import (
	"testing"

	"backend/internal/domain/models"
)

func TestApplyBookingDerived(t *testing.T) {
	end := 5320.0
	b := models.Booking{
		Mileage: models.Mileage{Start: 5000, End: &end},
		Expenses: models.BookingExpenses{
			Fuel:        1200,
			Toll:        300,
			Maintenance: 0,
			Other:       150,
			Total:       999999, // stale caller value, must be recomputed
		},
		DriverAllowance: models.DriverAllowance{
			Overtime:   models.AllowanceEntry{Hours: 2, Amount: 400},
			Food:       models.AllowanceEntry{Nights: 1, Amount: 500},
			Outstation: models.AllowanceEntry{Nights: 1, Amount: 1000},
			Parking:    200,
		},
		Payment: models.BookingPayment{TotalAmount: 9400, ReceivedAmount: 4000},
	}

	ApplyBookingDerived(&b)

	if b.Mileage.Total != 320 {
		t.Fatalf("mileage total = %v, want 320", b.Mileage.Total)
	}
	if b.Expenses.Total != 1650 {
		t.Fatalf("expenses total = %v, want 1650", b.Expenses.Total)
	}
	if b.DriverAllowance.Total != 2100 {
		t.Fatalf("allowance total = %v, want 2100", b.DriverAllowance.Total)
	}
	if b.Payment.BalanceAmount != 5400 {
		t.Fatalf("balance = %v, want 5400", b.Payment.BalanceAmount)
	}
	if b.PaymentStatus != models.PaymentStatusPartial {
		t.Fatalf("payment status = %q, want partial", b.PaymentStatus)
	}
}

func TestApplyBookingDerivedMileageClamp(t *testing.T) {
	end := 90.0
	b := models.Booking{Mileage: models.Mileage{Start: 100, End: &end}}
	ApplyBookingDerived(&b)
	if b.Mileage.Total != 0 {
		t.Fatalf("mileage total = %v, want 0 when end < start", b.Mileage.Total)
	}

	b = models.Booking{Mileage: models.Mileage{Start: 100, End: nil}}
	ApplyBookingDerived(&b)
	if b.Mileage.Total != 0 {
		t.Fatalf("mileage total = %v, want 0 when end missing", b.Mileage.Total)
	}
}

func TestBookingPaymentStatus(t *testing.T) {
	cases := []struct {
		received, total float64
		want            string
	}{
		{0, 9400, models.PaymentStatusUnpaid},
		{4000, 9400, models.PaymentStatusPartial},
		{9400, 9400, models.PaymentStatusPaid},
		{10000, 9400, models.PaymentStatusPaid},
		{0, 0, models.PaymentStatusUnpaid},
	}
	for _, c := range cases {
		if got := BookingPaymentStatus(c.received, c.total); got != c.want {
			t.Errorf("BookingPaymentStatus(%v, %v) = %q, want %q", c.received, c.total, got, c.want)
		}
	}
}

func TestApplyPaymentDerived(t *testing.T) {
	p := models.Payment{Amount: 5000, PaidAmount: 0}
	ApplyPaymentDerived(&p)
	if p.Status != models.LedgerStatusPending || p.BalanceAmount != 5000 {
		t.Fatalf("new payment: status=%q balance=%v, want pending/5000", p.Status, p.BalanceAmount)
	}

	p.PaidAmount = 5000
	ApplyPaymentDerived(&p)
	if p.Status != models.LedgerStatusPaid || p.BalanceAmount != 0 {
		t.Fatalf("settled payment: status=%q balance=%v, want paid/0", p.Status, p.BalanceAmount)
	}

	// Mid-range paid amount maps to pending; the ledger has no partial state.
	p = models.Payment{Amount: 5000, PaidAmount: 2000, Status: models.LedgerStatusPending}
	ApplyPaymentDerived(&p)
	if p.Status != models.LedgerStatusPending || p.BalanceAmount != 3000 {
		t.Fatalf("mid-range payment: status=%q balance=%v, want pending/3000", p.Status, p.BalanceAmount)
	}
}

func TestApplyPaymentDerivedStickyOverride(t *testing.T) {
	p := models.Payment{Amount: 5000, PaidAmount: 0, Status: models.LedgerStatusUnpaid}
	ApplyPaymentDerived(&p)
	if p.Status != models.LedgerStatusUnpaid {
		t.Fatalf("unpaid override was auto-corrected to %q", p.Status)
	}

	// Later partial payment still leaves the override untouched, but the
	// balance keeps its invariant.
	p.PaidAmount = 2000
	ApplyPaymentDerived(&p)
	if p.Status != models.LedgerStatusUnpaid {
		t.Fatalf("unpaid override lost after payment, got %q", p.Status)
	}
	if p.BalanceAmount != 3000 {
		t.Fatalf("balance = %v, want 3000", p.BalanceAmount)
	}

	p = models.Payment{Amount: 1000, PaidAmount: 1000, Status: models.LedgerStatusBalance}
	ApplyPaymentDerived(&p)
	if p.Status != models.LedgerStatusBalance {
		t.Fatalf("balance override was auto-corrected to %q", p.Status)
	}
}

func TestApplyOutsourcedDerived(t *testing.T) {
	v := models.OutsourcedVehicle{TotalPayable: 45000, PaidAmount: 20000, BalanceAmount: -1}
	ApplyOutsourcedDerived(&v)
	if v.BalanceAmount != 25000 {
		t.Fatalf("balance = %v, want 25000", v.BalanceAmount)
	}
}

func TestFormatBookingNumber(t *testing.T) {
	if got := FormatBookingNumber(1); got != "BK000001" {
		t.Fatalf("FormatBookingNumber(1) = %q", got)
	}
	if got := FormatBookingNumber(42); got != "BK000042" {
		t.Fatalf("FormatBookingNumber(42) = %q", got)
	}
	if got := FormatBookingNumber(1234567); got != "BK1234567" {
		t.Fatalf("FormatBookingNumber(1234567) = %q", got)
	}
}
