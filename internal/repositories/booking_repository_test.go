package repositories

import (
	"testing"

	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/settlement"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestBookingInsertRecomputesDerivedTotals(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(12, 1))

	end := 1450.0
	b := models.Booking{
		BookingNumber: "BK000012",
		RentalType:    models.RentalTypeOwn,
		StartDate:     "2025-03-01",
		EndDate:       "2025-03-03",
		Status:        models.BookingStatusConfirmed,
		Mileage:       models.Mileage{Start: 1500, End: &end, Total: 9999},
		Expenses:      models.BookingExpenses{Fuel: 100, Toll: 50, Maintenance: 0, Other: 25, Total: 0},
		Payment:       models.BookingPayment{TotalAmount: 6000, ReceivedAmount: 6000},
		PaymentStatus: models.PaymentStatusUnpaid, // stale, must be re-derived
	}
	repo := BookingRepository{DB: db}
	if err := repo.Insert(nil, &b); err != nil {
		t.Fatalf("insert error: %v", err)
	}
	if b.ID != 12 {
		t.Fatalf("id not set from insert, got %d", b.ID)
	}
	// odometer went backwards: total clamps to zero instead of going negative
	if b.Mileage.Total != 0 {
		t.Fatalf("mileage not clamped, got %v", b.Mileage.Total)
	}
	if b.Expenses.Total != 175 {
		t.Fatalf("expense total not recomputed, got %v", b.Expenses.Total)
	}
	if b.Payment.BalanceAmount != 0 {
		t.Fatalf("payment balance not recomputed, got %v", b.Payment.BalanceAmount)
	}
	if b.PaymentStatus != models.PaymentStatusPaid {
		t.Fatalf("payment status not re-derived, got %q", b.PaymentStatus)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingUpdateRecomputesPartialStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))

	b := models.Booking{
		ID:            5,
		BookingNumber: "BK000005",
		RentalType:    models.RentalTypeOwn,
		StartDate:     "2025-03-01",
		EndDate:       "2025-03-02",
		Status:        models.BookingStatusInProgress,
		Payment:       models.BookingPayment{TotalAmount: 8800, ReceivedAmount: 4000},
	}
	repo := BookingRepository{DB: db}
	if err := repo.Update(nil, &b); err != nil {
		t.Fatalf("update error: %v", err)
	}
	if b.Payment.BalanceAmount != 4800 {
		t.Fatalf("balance not recomputed, got %v", b.Payment.BalanceAmount)
	}
	if b.PaymentStatus != models.PaymentStatusPartial {
		t.Fatalf("expected partial status, got %q", b.PaymentStatus)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingDeleteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM bookings").WithArgs(int64(77)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := BookingRepository{DB: db}
	if err := repo.Delete(nil, 77); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestSequenceNextFormatsBookingNumber(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO sequences").WithArgs(SequenceBookingNumber).
		WillReturnResult(sqlmock.NewResult(42, 1))

	repo := SequenceRepository{DB: db}
	seq, err := repo.Next(nil, SequenceBookingNumber)
	if err != nil {
		t.Fatalf("next error: %v", err)
	}
	if seq != 42 {
		t.Fatalf("expected sequence 42, got %d", seq)
	}
	if got := settlement.FormatBookingNumber(seq); got != "BK000042" {
		t.Fatalf("unexpected booking number %q", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
