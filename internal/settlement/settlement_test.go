package settlement

import (
	"testing"
	"time"

	"backend/internal/domain/models"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestComputeRentOnly(t *testing.T) {
	in := Input{
		StartDate: date("2024-01-01"),
		EndDate:   date("2024-01-03"),
	}
	res := Compute(in, VehicleRates{DailyRate: 2000, VehicleType: models.VehicleTypeCompanyOwned}, nil)

	if res.TotalDays != 3 {
		t.Fatalf("TotalDays = %d, want 3", res.TotalDays)
	}
	if res.TotalRent != 6000 {
		t.Fatalf("TotalRent = %v, want 6000", res.TotalRent)
	}
	if res.TotalDriverCharges != 0 || res.DriverDailyRate != 0 || res.OvertimeAmount != 0 {
		t.Fatalf("driver charges should be zero without a driver: %+v", res)
	}
	if res.VendorCharges != nil {
		t.Fatalf("vendor charges should be absent for company-owned vehicle")
	}
	if res.FinalAmount != 6000 {
		t.Fatalf("FinalAmount = %v, want 6000", res.FinalAmount)
	}
}

func TestComputeWithDriverOvertime(t *testing.T) {
	in := Input{
		StartDate:       date("2024-01-01"),
		EndDate:         date("2024-01-03"),
		ActualDutyHours: 14,
	}
	driver := &models.DriverRates{
		LocalDailyRate:         1000,
		OutstationDailyRate:    1500,
		OvertimeThresholdHours: 12,
		OvertimeHourlyRate:     200,
	}
	res := Compute(in, VehicleRates{DailyRate: 2000}, driver)

	if res.DriverDailyRate != 1000 {
		t.Fatalf("DriverDailyRate = %v, want 1000 (local)", res.DriverDailyRate)
	}
	if res.OvertimeHours != 2 {
		t.Fatalf("OvertimeHours = %v, want 2", res.OvertimeHours)
	}
	if res.OvertimeAmount != 400 {
		t.Fatalf("OvertimeAmount = %v, want 400", res.OvertimeAmount)
	}
	if res.TotalDriverCharges != 3400 {
		t.Fatalf("TotalDriverCharges = %v, want 3400", res.TotalDriverCharges)
	}
	if res.FinalAmount != 9400 {
		t.Fatalf("FinalAmount = %v, want 9400", res.FinalAmount)
	}
}

func TestComputeOutstationRate(t *testing.T) {
	in := Input{
		StartDate:    date("2024-01-01"),
		EndDate:      date("2024-01-03"),
		IsOutstation: true,
	}
	driver := &models.DriverRates{
		LocalDailyRate:         1000,
		OutstationDailyRate:    1500,
		OvertimeThresholdHours: 12,
		OvertimeHourlyRate:     200,
	}
	res := Compute(in, VehicleRates{DailyRate: 2000}, driver)

	if res.DriverDailyRate != 1500 {
		t.Fatalf("DriverDailyRate = %v, want 1500 (outstation)", res.DriverDailyRate)
	}
	if res.TotalDriverCharges != 4500 {
		t.Fatalf("TotalDriverCharges = %v, want 4500", res.TotalDriverCharges)
	}
}

func TestComputeTaxDeduction(t *testing.T) {
	in := Input{
		StartDate:              date("2024-01-01"),
		EndDate:                date("2024-01-03"),
		ActualDutyHours:        14,
		TaxDeductionPercentage: 10,
	}
	driver := &models.DriverRates{
		LocalDailyRate:         1000,
		OutstationDailyRate:    1500,
		OvertimeThresholdHours: 12,
		OvertimeHourlyRate:     200,
	}
	res := Compute(in, VehicleRates{DailyRate: 2000}, driver)

	if res.TaxDeductionAmount != 600 {
		t.Fatalf("TaxDeductionAmount = %v, want 600 (10%% of rent only)", res.TaxDeductionAmount)
	}
	if res.FinalAmount != 8800 {
		t.Fatalf("FinalAmount = %v, want 8800", res.FinalAmount)
	}
}

func TestComputeVendorChargesPresence(t *testing.T) {
	rate := 1500.0
	in := Input{
		StartDate: date("2024-01-01"),
		EndDate:   date("2024-01-03"),
	}
	res := Compute(in, VehicleRates{
		DailyRate:       2000,
		VehicleType:     models.VehicleTypeOutsourcedIn,
		VendorDailyRate: &rate,
	}, nil)

	if res.VendorCharges == nil {
		t.Fatalf("vendor charges should be present for outsourced-in vehicle")
	}
	if res.VendorCharges.TotalAmount != 4500 {
		t.Fatalf("vendor total = %v, want 4500", res.VendorCharges.TotalAmount)
	}
	// Vendor charges are a payable to a third party, never netted.
	if res.FinalAmount != 6000 {
		t.Fatalf("FinalAmount = %v, want 6000 (vendor charges excluded)", res.FinalAmount)
	}

	// Outsourced-in without vendor info: sub-object absent.
	res = Compute(in, VehicleRates{DailyRate: 2000, VehicleType: models.VehicleTypeOutsourcedIn}, nil)
	if res.VendorCharges != nil {
		t.Fatalf("vendor charges should be absent without a vendor rate")
	}
}

func TestComputeSameDayBooking(t *testing.T) {
	in := Input{
		StartDate: date("2024-05-10"),
		EndDate:   date("2024-05-10"),
	}
	res := Compute(in, VehicleRates{DailyRate: 2500}, nil)
	if res.TotalDays != 1 {
		t.Fatalf("same-day booking TotalDays = %d, want 1", res.TotalDays)
	}
	if res.TotalRent != 2500 {
		t.Fatalf("TotalRent = %v, want 2500", res.TotalRent)
	}
}

func TestComputeNoOvertimeUnderThreshold(t *testing.T) {
	in := Input{
		StartDate:       date("2024-01-01"),
		EndDate:         date("2024-01-02"),
		ActualDutyHours: 12,
	}
	driver := &models.DriverRates{
		LocalDailyRate:         1000,
		OvertimeThresholdHours: 12,
		OvertimeHourlyRate:     200,
	}
	res := Compute(in, VehicleRates{DailyRate: 2000}, driver)
	if res.OvertimeHours != 0 || res.OvertimeAmount != 0 {
		t.Fatalf("no overtime expected at threshold: hours=%v amount=%v", res.OvertimeHours, res.OvertimeAmount)
	}
}

func TestComputeMileageClamped(t *testing.T) {
	in := Input{
		StartDate:    date("2024-01-01"),
		EndDate:      date("2024-01-02"),
		MileageStart: 5000,
		MileageEnd:   5320,
	}
	res := Compute(in, VehicleRates{DailyRate: 2000}, nil)
	if res.MileageUsed != 320 {
		t.Fatalf("MileageUsed = %v, want 320", res.MileageUsed)
	}

	in.MileageEnd = 0
	res = Compute(in, VehicleRates{DailyRate: 2000}, nil)
	if res.MileageUsed != 0 {
		t.Fatalf("MileageUsed = %v, want 0 when end is missing", res.MileageUsed)
	}
}

func TestComputeIdempotent(t *testing.T) {
	rate := 1100.0
	in := Input{
		StartDate:              date("2024-02-01"),
		EndDate:                date("2024-02-07"),
		IsOutstation:           true,
		ActualDutyHours:        15.5,
		MileageStart:           100,
		MileageEnd:             950,
		TaxDeductionPercentage: 7.5,
	}
	vehicle := VehicleRates{DailyRate: 3200, VehicleType: models.VehicleTypeOutsourcedIn, VendorDailyRate: &rate}
	driver := &models.DriverRates{
		LocalDailyRate:         900,
		OutstationDailyRate:    1400,
		OvertimeThresholdHours: 12,
		OvertimeHourlyRate:     250,
	}

	first := Compute(in, vehicle, driver)
	second := Compute(in, vehicle, driver)

	if first.TotalDays != second.TotalDays ||
		first.TotalRent != second.TotalRent ||
		first.TotalDriverCharges != second.TotalDriverCharges ||
		first.TaxDeductionAmount != second.TaxDeductionAmount ||
		first.FinalAmount != second.FinalAmount ||
		first.MileageUsed != second.MileageUsed {
		t.Fatalf("repeated computation diverged:\n%+v\n%+v", first, second)
	}
	if (first.VendorCharges == nil) != (second.VendorCharges == nil) {
		t.Fatalf("vendor presence diverged")
	}
	if first.VendorCharges != nil && *first.VendorCharges != *second.VendorCharges {
		t.Fatalf("vendor charges diverged: %+v vs %+v", first.VendorCharges, second.VendorCharges)
	}
}
