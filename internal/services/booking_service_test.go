package services

import (
	"testing"

	"backend/internal/domain"
	"backend/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func expectCustomerLookup(mock sqlmock.Sqlmock, id int64) {
	cols := []string{
		"id", "type", "name", "cnic", "company_registration", "license_number",
		"phone", "email", "address",
		"total_bookings", "total_amount_paid", "outstanding_balance",
		"credit_limit", "status",
	}
	mock.ExpectQuery("FROM customers").WithArgs(id).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			id, models.CustomerTypeCompany, "Acme Transport", nil, "REG-1", nil,
			"0300-0000000", nil, nil,
			0, 0.0, 0.0,
			0.0, models.CustomerStatusActive,
		))
}

func expectVehicleLookup(mock sqlmock.Sqlmock, id int64) {
	cols := []string{
		"id", "registration_number", "make", "model", "year",
		"color", "mileage", "vehicle_type",
		"vendor_name", "vendor_contact", "contract_start", "contract_end", "vendor_daily_rate",
		"status", "daily_rate",
	}
	mock.ExpectQuery("FROM vehicles").WithArgs(id).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			id, "LEB-123", "Toyota", "Hiace", 2022,
			nil, 1500.0, models.VehicleTypeCompanyOwned,
			nil, nil, nil, nil, nil,
			models.VehicleStatusAvailable, 2000.0,
		))
}

func expectDriverLookup(mock sqlmock.Sqlmock, id int64) {
	cols := []string{
		"id", "name", "cnic", "license_number",
		"phone", "email", "address",
		"local_daily_rate", "outstation_daily_rate",
		"overtime_threshold_hours", "overtime_hourly_rate",
		"status",
	}
	mock.ExpectQuery("FROM drivers").WithArgs(id).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			id, "Ali", "35202-0000000-1", "LHR-111",
			"0301-0000000", nil, nil,
			1000.0, 1500.0,
			10.0, 200.0,
			models.DriverStatusActive,
		))
}

func expectBookingFetch(mock sqlmock.Sqlmock, id int64) {
	cols := []string{
		"id",
		"booking_number", "customer_id", "vehicle_id", "outsourced_vehicle_id", "driver_id",
		"rental_type", "route_name", "is_outstation",
		"start_date", "end_date", "actual_return_date",
		"duty_scheduled", "duty_actual", "duty_overtime",
		"total_days", "rent_per_day", "total_rent",
		"driver_daily_rate", "driver_overtime_amount", "driver_total_amount",
		"vendor_daily_rate", "vendor_total_amount",
		"tax_percentage", "tax_amount",
		"mileage_start", "mileage_end", "mileage_total",
		"expense_fuel", "expense_toll", "expense_maintenance", "expense_other", "expense_total",
		"allowance_overtime_hours", "allowance_overtime_amount",
		"allowance_food_nights", "allowance_food_amount",
		"allowance_outstation_nights", "allowance_outstation_amount",
		"allowance_parking", "allowance_total",
		"payment_total", "payment_received", "payment_balance",
		"security_deposit", "status", "payment_status", "notes",
		"created_at", "updated_at",
		"customer_name", "customer_type", "vehicle_registration", "driver_name",
	}
	mock.ExpectQuery("FROM bookings b").WithArgs(id).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			id,
			"BK000001", 1, 2, nil, 3,
			models.RentalTypeOwn, "", false,
			"2025-03-01", "2025-03-03", "",
			10.0, 12.0, 2.0,
			3, 2000.0, 6000.0,
			1000.0, 400.0, 3400.0,
			nil, nil,
			10.0, 600.0,
			1500.0, nil, 0.0,
			0.0, 0.0, 0.0, 0.0, 0.0,
			0.0, 0.0,
			0.0, 0.0,
			0.0, 0.0,
			0.0, 0.0,
			8800.0, 0.0, 8800.0,
			0.0, models.BookingStatusConfirmed, models.PaymentStatusUnpaid, "",
			"", "",
			"Acme Transport", models.CustomerTypeCompany, "LEB-123", "Ali",
		))
}

func TestBookingCreateSettlesAndCommits(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	expectCustomerLookup(mock, 1)
	// maintenance check plus rate resolution each hit the vehicle row
	expectVehicleLookup(mock, 2)
	expectVehicleLookup(mock, 2)
	expectDriverLookup(mock, 3)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO sequences").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectExec("UPDATE vehicles").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE customers").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	expectBookingFetch(mock, 9)

	vehicleID, driverID := int64(2), int64(3)
	b := models.Booking{
		CustomerID:   1,
		VehicleID:    &vehicleID,
		DriverID:     &driverID,
		RentalType:   models.RentalTypeOwn,
		StartDate:    "2025-03-01",
		EndDate:      "2025-03-03",
		DutyHours:    models.DutyHours{Scheduled: 10, Actual: 12},
		Mileage:      models.Mileage{Start: 1500},
		TaxDeduction: models.TaxDeduction{Percentage: 10},
	}
	svc := BookingService{DB: db}
	got, err := svc.Create(&b)
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	if b.BookingNumber != "BK000001" {
		t.Fatalf("booking number not assigned, got %q", b.BookingNumber)
	}
	if b.TotalDays != 3 {
		t.Fatalf("total days = %d, want 3", b.TotalDays)
	}
	if b.TotalRent != 6000 {
		t.Fatalf("total rent = %v, want 6000", b.TotalRent)
	}
	if b.DriverCharges.OvertimeAmount != 400 || b.DriverCharges.TotalAmount != 3400 {
		t.Fatalf("driver charges = %+v", b.DriverCharges)
	}
	if b.TaxDeduction.Amount != 600 {
		t.Fatalf("tax amount = %v, want 600", b.TaxDeduction.Amount)
	}
	if b.Payment.TotalAmount != 8800 {
		t.Fatalf("final amount = %v, want 8800", b.Payment.TotalAmount)
	}
	if b.VendorCharges != nil {
		t.Fatalf("vendor charges should be absent for company-owned vehicle")
	}
	if b.PaymentStatus != models.PaymentStatusUnpaid {
		t.Fatalf("payment status = %q, want unpaid", b.PaymentStatus)
	}
	if got.CustomerName != "Acme Transport" {
		t.Fatalf("fetched booking missing customer name: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingCreateRejectsReversedDates(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	vehicleID := int64(2)
	b := models.Booking{
		CustomerID: 1,
		VehicleID:  &vehicleID,
		RentalType: models.RentalTypeOwn,
		StartDate:  "2025-03-05",
		EndDate:    "2025-03-01",
	}
	svc := BookingService{DB: db}
	if _, err := svc.Create(&b); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestBookingCreateRejectsTaxOutOfRange(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	vehicleID := int64(2)
	b := models.Booking{
		CustomerID:   1,
		VehicleID:    &vehicleID,
		RentalType:   models.RentalTypeOwn,
		StartDate:    "2025-03-01",
		EndDate:      "2025-03-03",
		TaxDeduction: models.TaxDeduction{Percentage: 120},
	}
	svc := BookingService{DB: db}
	if _, err := svc.Create(&b); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestBookingCreateVendorChargesForOutsourced(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	expectCustomerLookup(mock, 1)

	ovCols := []string{
		"id", "registration_number", "make", "model", "year",
		"vendor_name", "vendor_phone", "vendor_email", "vendor_address",
		"daily_rate", "security_deposit",
		"contract_start_date", "contract_end_date",
		"status", "total_usage_days", "total_payable", "paid_amount", "balance_amount",
		"notes", "created_at", "updated_at",
	}
	mock.ExpectQuery("FROM outsourced_vehicles").WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(ovCols).AddRow(
			4, "LEB-456", "Honda", "BR-V", 2021,
			"City Motors", "0300-1234567", "", "",
			1500.0, 0.0,
			"2025-01-01", "",
			models.OutsourcedStatusActive, 0, 0.0, 0.0, 0.0,
			"", "", "",
		))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO sequences").WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec("INSERT INTO bookings").WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectExec("UPDATE customers").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	expectBookingFetch(mock, 10)

	ovID := int64(4)
	b := models.Booking{
		CustomerID:          1,
		OutsourcedVehicleID: &ovID,
		RentalType:          models.RentalTypeOutsourcedFromVendor,
		StartDate:           "2025-03-01",
		EndDate:             "2025-03-03",
	}
	svc := BookingService{DB: db}
	if _, err := svc.Create(&b); err != nil {
		t.Fatalf("create error: %v", err)
	}

	if b.VendorCharges == nil {
		t.Fatalf("vendor charges missing for outsourced vehicle")
	}
	if b.VendorCharges.TotalAmount != 4500 {
		t.Fatalf("vendor total = %v, want 4500", b.VendorCharges.TotalAmount)
	}
	// vendor cost is owed to the vendor, never netted into the customer total
	if b.Payment.TotalAmount != 4500 {
		t.Fatalf("final amount = %v, want 4500 (rent only)", b.Payment.TotalAmount)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
