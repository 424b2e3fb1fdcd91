package repositories

import (
	"testing"

	"backend/internal/domain"
	"backend/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPaymentInsertRecomputesBalanceAndStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO payments").
		WillReturnResult(sqlmock.NewResult(7, 1))

	p := models.Payment{
		Type:          models.PaymentTypeReceivable,
		Category:      models.PaymentCategoryRental,
		Description:   "Rental dues",
		Amount:        5000,
		PaidAmount:    2000,
		BalanceAmount: 999, // stale, must be overwritten
		PaymentMethod: "cash",
		Status:        models.LedgerStatusPaid, // wrong for the amounts, must be re-derived
	}
	repo := PaymentRepository{DB: db}
	if err := repo.Insert(nil, &p); err != nil {
		t.Fatalf("insert error: %v", err)
	}
	if p.ID != 7 {
		t.Fatalf("id not set from insert, got %d", p.ID)
	}
	if p.BalanceAmount != 3000 {
		t.Fatalf("balance not recomputed, got %v", p.BalanceAmount)
	}
	if p.Status != models.LedgerStatusPending {
		t.Fatalf("status not re-derived, got %q", p.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPaymentUpdateKeepsStickyStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE payments").
		WillReturnResult(sqlmock.NewResult(0, 1))

	p := models.Payment{
		ID:            3,
		Type:          models.PaymentTypeReceivable,
		Category:      models.PaymentCategoryRental,
		Amount:        5000,
		PaidAmount:    2000,
		PaymentMethod: "cash",
		Status:        models.LedgerStatusUnpaid, // caller-set override
	}
	repo := PaymentRepository{DB: db}
	if err := repo.Update(nil, &p); err != nil {
		t.Fatalf("update error: %v", err)
	}
	if p.Status != models.LedgerStatusUnpaid {
		t.Fatalf("sticky status overwritten, got %q", p.Status)
	}
	if p.BalanceAmount != 3000 {
		t.Fatalf("balance should still be recomputed, got %v", p.BalanceAmount)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPaymentGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM payments").WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := PaymentRepository{DB: db}
	_, err = repo.GetByID(99)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestPaymentSummaryByType(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("GROUP BY status").WithArgs(models.PaymentTypeReceivable).
		WillReturnRows(sqlmock.NewRows([]string{"status", "total", "count"}).
			AddRow("pending", 12000.0, 3).
			AddRow("paid", 45000.0, 9))

	repo := PaymentRepository{DB: db}
	rows, err := repo.SummaryByType(models.PaymentTypeReceivable)
	if err != nil {
		t.Fatalf("summary error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 status groups, got %d", len(rows))
	}
	if rows[0].Status != "pending" || rows[0].TotalAmount != 12000 || rows[0].Count != 3 {
		t.Fatalf("unexpected first group: %+v", rows[0])
	}
}

func TestOutsourcedRecordPaymentKeepsBalance(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cols := []string{
		"id", "registration_number", "make", "model", "year",
		"vendor_name", "vendor_phone", "vendor_email", "vendor_address",
		"daily_rate", "security_deposit",
		"contract_start_date", "contract_end_date",
		"status", "total_usage_days", "total_payable", "paid_amount", "balance_amount",
		"notes", "created_at", "updated_at",
	}
	mock.ExpectQuery("FROM outsourced_vehicles").WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			4, "LEB-123", "Toyota", "Corolla", 2021,
			"City Motors", "0300-1234567", "", "",
			4500.0, 20000.0,
			"2025-01-01", "",
			models.OutsourcedStatusActive, 10, 45000.0, 20000.0, 25000.0,
			"", "", "",
		))
	mock.ExpectExec("UPDATE outsourced_vehicles").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := OutsourcedVehicleRepository{DB: db}
	v, err := repo.RecordPayment(4, 5000)
	if err != nil {
		t.Fatalf("record payment error: %v", err)
	}
	if v.PaidAmount != 25000 {
		t.Fatalf("paid amount not accumulated, got %v", v.PaidAmount)
	}
	if v.BalanceAmount != 20000 {
		t.Fatalf("balance not recomputed, got %v", v.BalanceAmount)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
