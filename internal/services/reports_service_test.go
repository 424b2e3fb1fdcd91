package services

import (
	"testing"

	"backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func expectMonthlyRentalQuery(mock sqlmock.Sqlmock, from, to string) {
	mock.ExpectQuery(`b\.start_date BETWEEN \? AND \?`).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
}

func TestMonthlyRentalUsesRealMonthEnd(t *testing.T) {
	cases := []struct {
		year, month int
		from, to    string
	}{
		{2025, 2, "2025-02-01", "2025-02-28"},
		{2024, 2, "2024-02-01", "2024-02-29"},
		{2025, 4, "2025-04-01", "2025-04-30"},
		{2025, 12, "2025-12-01", "2025-12-31"},
	}

	for _, tc := range cases {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		expectMonthlyRentalQuery(mock, tc.from, tc.to)

		svc := ReportsService{DB: db}
		items, err := svc.MonthlyRental(MonthlyRentalFilter{Year: tc.year, Month: tc.month})
		if err != nil {
			t.Fatalf("%d-%02d: MonthlyRental failed: %v", tc.year, tc.month, err)
		}
		if len(items) != 0 {
			t.Fatalf("%d-%02d: expected empty result, got %d", tc.year, tc.month, len(items))
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("%d-%02d: unmet expectations: %v", tc.year, tc.month, err)
		}
		db.Close()
	}
}

func TestMonthlyRentalRejectsBadMonth(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	svc := ReportsService{DB: db}
	if _, err := svc.MonthlyRental(MonthlyRentalFilter{Year: 2025, Month: 13}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for month 13, got %v", err)
	}
}
