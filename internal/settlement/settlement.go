// Package settlement holds the booking settlement calculation and the
// derived-field rules applied whenever a booking, payment, or outsourced
// vehicle record is saved.
package settlement

import (
	"math"
	"time"

	"backend/internal/domain/models"
)

// Input carries the caller-controlled settlement inputs for one booking.
type Input struct {
	StartDate              time.Time
	EndDate                time.Time
	IsOutstation           bool
	ActualDutyHours        float64
	MileageStart           float64
	MileageEnd             float64
	TaxDeductionPercentage float64
}

// VehicleRates is the vehicle-side pricing input. VendorDailyRate is non-nil
// only when the vehicle is Outsourced-in and carries vendor info.
type VehicleRates struct {
	DailyRate       float64
	VehicleType     string
	VendorDailyRate *float64
}

// Result is the full derived-field set for a booking. VendorCharges stays nil
// unless the vehicle is rented in from a vendor; consumers check presence,
// not zero values.
type Result struct {
	TotalDays          int
	RentPerDay         float64
	TotalRent          float64
	DriverDailyRate    float64
	OvertimeHours      float64
	OvertimeAmount     float64
	TotalDriverCharges float64
	VendorCharges      *models.VendorCharges
	MileageUsed        float64
	TaxDeductionAmount float64
	FinalAmount        float64
}

// Compute derives the settlement for a booking. It is a pure function: no
// storage access, no clock reads, identical inputs give identical outputs.
// It does not validate; callers reject malformed input before calling (a
// reversed date range produces a degenerate negative day count here).
func Compute(in Input, vehicle VehicleRates, driver *models.DriverRates) Result {
	var out Result

	// Inclusive calendar range: a same-day booking counts as one day.
	diffDays := in.EndDate.Sub(in.StartDate).Hours() / 24
	out.TotalDays = int(math.Ceil(diffDays)) + 1

	out.RentPerDay = vehicle.DailyRate
	out.TotalRent = out.RentPerDay * float64(out.TotalDays)

	if driver != nil {
		if in.IsOutstation {
			out.DriverDailyRate = driver.OutstationDailyRate
		} else {
			out.DriverDailyRate = driver.LocalDailyRate
		}
		out.OvertimeHours = math.Max(0, in.ActualDutyHours-driver.OvertimeThresholdHours)
		out.OvertimeAmount = out.OvertimeHours * driver.OvertimeHourlyRate
		out.TotalDriverCharges = out.DriverDailyRate*float64(out.TotalDays) + out.OvertimeAmount
	}

	if vehicle.VehicleType == models.VehicleTypeOutsourcedIn && vehicle.VendorDailyRate != nil {
		out.VendorCharges = &models.VendorCharges{
			DailyRate:   *vehicle.VendorDailyRate,
			TotalAmount: *vehicle.VendorDailyRate * float64(out.TotalDays),
		}
	}

	out.MileageUsed = math.Max(0, in.MileageEnd-in.MileageStart)
	out.TaxDeductionAmount = out.TotalRent * in.TaxDeductionPercentage / 100

	// Vendor charges are a cost owed to the vendor; they are reported but
	// never netted against the customer-facing amount.
	out.FinalAmount = out.TotalRent + out.TotalDriverCharges - out.TaxDeductionAmount

	return out
}
