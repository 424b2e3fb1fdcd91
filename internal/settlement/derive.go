package settlement

import (
	"fmt"
	"math"

	"backend/internal/domain/models"
)

// BookingNumberPrefix plus a zero-padded six digit sequence forms the
// human-readable booking reference, e.g. BK000042.
const BookingNumberPrefix = "BK"

func FormatBookingNumber(seq int64) string {
	return fmt.Sprintf("%s%06d", BookingNumberPrefix, seq)
}

// ApplyBookingDerived recomputes every derived total on a booking from its
// authoritative inputs. It runs on every save, create and update alike, so no
// code path can persist stale derived values.
func ApplyBookingDerived(b *models.Booking) {
	end := 0.0
	if b.Mileage.End != nil {
		end = *b.Mileage.End
	}
	b.Mileage.Total = math.Max(0, end-b.Mileage.Start)

	b.Expenses.Total = b.Expenses.Fuel + b.Expenses.Toll + b.Expenses.Maintenance + b.Expenses.Other

	b.DriverAllowance.Total = b.DriverAllowance.Overtime.Amount +
		b.DriverAllowance.Food.Amount +
		b.DriverAllowance.Outstation.Amount +
		b.DriverAllowance.Parking

	b.Payment.BalanceAmount = b.Payment.TotalAmount - b.Payment.ReceivedAmount
	b.PaymentStatus = BookingPaymentStatus(b.Payment.ReceivedAmount, b.Payment.TotalAmount)
}

// BookingPaymentStatus is a pure function of received vs total.
func BookingPaymentStatus(received, total float64) string {
	switch {
	case received == 0:
		return models.PaymentStatusUnpaid
	case received >= total:
		return models.PaymentStatusPaid
	default:
		return models.PaymentStatusPartial
	}
}

// ApplyPaymentDerived recomputes the ledger balance and, unless the current
// status is a sticky override ("unpaid" or "balance"), re-derives the status.
// The mid-range case maps to "pending", not "partial": the payment ledger
// vocabulary has no partial state.
func ApplyPaymentDerived(p *models.Payment) {
	p.BalanceAmount = p.Amount - p.PaidAmount

	if p.Status == models.LedgerStatusUnpaid || p.Status == models.LedgerStatusBalance {
		return
	}
	switch {
	case p.PaidAmount == 0:
		p.Status = models.LedgerStatusPending
	case p.PaidAmount >= p.Amount:
		p.Status = models.LedgerStatusPaid
	default:
		p.Status = models.LedgerStatusPending
	}
}

// ApplyOutsourcedDerived keeps the vendor balance consistent on every save.
func ApplyOutsourcedDerived(v *models.OutsourcedVehicle) {
	v.BalanceAmount = v.TotalPayable - v.PaidAmount
}
