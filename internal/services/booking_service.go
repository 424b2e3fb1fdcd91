package services

import (
	"database/sql"
	"strings"
	"time"

	intconfig "backend/internal/config"
	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/repositories"
	"backend/internal/settlement"
	"backend/internal/utils"
)

// BookingService runs the settlement for every booking write and keeps the
// related rows (vehicle status, customer counters) in step inside one
// transaction.
type BookingService struct {
	BookingRepo    repositories.BookingRepository
	VehicleRepo    repositories.VehicleRepository
	OutsourcedRepo repositories.OutsourcedVehicleRepository
	DriverRepo     repositories.DriverRepository
	CustomerRepo   repositories.CustomerRepository
	SequenceRepo   repositories.SequenceRepository
	DB             *sql.DB
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

func (s BookingService) vehicles() repositories.VehicleRepository {
	if s.VehicleRepo.DB != nil {
		return s.VehicleRepo
	}
	return repositories.VehicleRepository{DB: s.db()}
}

func (s BookingService) outsourced() repositories.OutsourcedVehicleRepository {
	if s.OutsourcedRepo.DB != nil {
		return s.OutsourcedRepo
	}
	return repositories.OutsourcedVehicleRepository{DB: s.db()}
}

func (s BookingService) drivers() repositories.DriverRepository {
	if s.DriverRepo.DB != nil {
		return s.DriverRepo
	}
	return repositories.DriverRepository{DB: s.db()}
}

func (s BookingService) customers() repositories.CustomerRepository {
	if s.CustomerRepo.DB != nil {
		return s.CustomerRepo
	}
	return repositories.CustomerRepository{DB: s.db()}
}

func (s BookingService) sequences() repositories.SequenceRepository {
	if s.SequenceRepo.DB != nil {
		return s.SequenceRepo
	}
	return repositories.SequenceRepository{DB: s.db()}
}

func validRentalType(t string) bool {
	switch t {
	case models.RentalTypeOwn, models.RentalTypeOutsourcedFromVendor, models.RentalTypeOutsourcedToClient:
		return true
	}
	return false
}

func (s BookingService) validate(b *models.Booking) (start, end time.Time, err error) {
	if b.CustomerID <= 0 {
		return start, end, domain.ValidationError{Field: "customerId", Msg: "customer is required"}
	}
	if b.VehicleID == nil && b.OutsourcedVehicleID == nil {
		return start, end, domain.ValidationError{Field: "vehicleId", Msg: "a vehicle is required"}
	}
	if !validRentalType(b.RentalType) {
		return start, end, domain.ValidationError{Field: "rentalType", Msg: "unknown rental type"}
	}
	start, err = utils.ParseDate(b.StartDate)
	if err != nil {
		return start, end, domain.ValidationError{Field: "startDate", Msg: "expected YYYY-MM-DD"}
	}
	end, err = utils.ParseDate(b.EndDate)
	if err != nil {
		return start, end, domain.ValidationError{Field: "endDate", Msg: "expected YYYY-MM-DD"}
	}
	if end.Before(start) {
		return start, end, domain.ValidationError{Field: "endDate", Msg: "must not precede startDate"}
	}
	if b.TaxDeduction.Percentage < 0 || b.TaxDeduction.Percentage > 100 {
		return start, end, domain.ValidationError{Field: "taxDeductionPercentage", Msg: "must be between 0 and 100"}
	}
	return start, end, nil
}

// settle resolves the rate sources and writes the computed settlement onto
// the booking. Caller-supplied values for the derived fields are discarded.
func (s BookingService) settle(b *models.Booking, start, end time.Time) error {
	rates := settlement.VehicleRates{}
	switch {
	case b.VehicleID != nil:
		v, err := s.vehicles().GetByID(*b.VehicleID)
		if err != nil {
			return err
		}
		rates.DailyRate = v.DailyRate
		rates.VehicleType = v.VehicleType
		if v.VendorInfo != nil {
			rates.VendorDailyRate = v.VendorInfo.DailyVendorRate
		}
	case b.OutsourcedVehicleID != nil:
		ov, err := s.outsourced().GetByID(*b.OutsourcedVehicleID)
		if err != nil {
			return err
		}
		rate := ov.DailyRate
		rates.DailyRate = rate
		rates.VehicleType = models.VehicleTypeOutsourcedIn
		rates.VendorDailyRate = &rate
	}

	var driverRates *models.DriverRates
	if b.DriverID != nil {
		d, err := s.drivers().GetByID(*b.DriverID)
		if err != nil {
			return err
		}
		driverRates = &d.DriverRates
	}

	mileageEnd := 0.0
	if b.Mileage.End != nil {
		mileageEnd = *b.Mileage.End
	}
	res := settlement.Compute(settlement.Input{
		StartDate:              start,
		EndDate:                end,
		IsOutstation:           b.IsOutstation,
		ActualDutyHours:        b.DutyHours.Actual,
		MileageStart:           b.Mileage.Start,
		MileageEnd:             mileageEnd,
		TaxDeductionPercentage: b.TaxDeduction.Percentage,
	}, rates, driverRates)

	b.TotalDays = res.TotalDays
	b.RentPerDay = res.RentPerDay
	b.TotalRent = res.TotalRent
	b.DutyHours.Overtime = res.OvertimeHours
	b.DriverCharges = models.DriverCharges{
		DailyRate:      res.DriverDailyRate,
		OvertimeAmount: res.OvertimeAmount,
		TotalAmount:    res.TotalDriverCharges,
	}
	b.VendorCharges = res.VendorCharges
	b.Mileage.Total = res.MileageUsed
	b.TaxDeduction.Amount = res.TaxDeductionAmount
	b.Payment.TotalAmount = res.FinalAmount
	return nil
}

// Create settles the booking, assigns its number from the atomic sequence,
// and writes the booking, vehicle status, and customer counter in one
// transaction.
func (s BookingService) Create(b *models.Booking) (repositories.BookingWithRefs, error) {
	start, end, err := s.validate(b)
	if err != nil {
		return repositories.BookingWithRefs{}, err
	}
	if _, err := s.customers().GetByID(b.CustomerID); err != nil {
		return repositories.BookingWithRefs{}, err
	}
	if b.VehicleID != nil {
		v, err := s.vehicles().GetByID(*b.VehicleID)
		if err != nil {
			return repositories.BookingWithRefs{}, err
		}
		if v.Status == models.VehicleStatusMaintenance {
			return repositories.BookingWithRefs{}, domain.ConflictError{Msg: "vehicle is under maintenance"}
		}
	}
	if err := s.settle(b, start, end); err != nil {
		return repositories.BookingWithRefs{}, err
	}
	if b.Status == "" {
		b.Status = models.BookingStatusConfirmed
	}

	tx, err := s.db().Begin()
	if err != nil {
		return repositories.BookingWithRefs{}, domain.InternalError{Err: err}
	}
	defer tx.Rollback()

	seq, err := s.sequences().Next(tx, repositories.SequenceBookingNumber)
	if err != nil {
		return repositories.BookingWithRefs{}, domain.InternalError{Err: err}
	}
	b.BookingNumber = settlement.FormatBookingNumber(seq)

	if err := s.bookings().Insert(tx, b); err != nil {
		return repositories.BookingWithRefs{}, domain.InternalError{Err: err}
	}
	if b.VehicleID != nil {
		if err := s.vehicles().UpdateStatus(tx, *b.VehicleID, models.VehicleStatusBooked); err != nil {
			return repositories.BookingWithRefs{}, domain.InternalError{Err: err}
		}
	}
	if err := s.customers().IncrementBookings(tx, b.CustomerID, 1); err != nil {
		return repositories.BookingWithRefs{}, domain.InternalError{Err: err}
	}
	if err := tx.Commit(); err != nil {
		return repositories.BookingWithRefs{}, domain.InternalError{Err: err}
	}

	utils.LogEvent("", "bookings", "create", "created "+b.BookingNumber)
	return s.bookings().GetWithRefs(b.ID)
}

// Update re-runs the settlement against current rates and overwrites the row.
// The booking number never changes on update.
func (s BookingService) Update(id int64, in *models.Booking) (repositories.BookingWithRefs, error) {
	existing, err := s.bookings().GetByID(id)
	if err != nil {
		return repositories.BookingWithRefs{}, err
	}
	in.ID = existing.ID
	in.BookingNumber = existing.BookingNumber
	if in.Status == "" {
		in.Status = existing.Status
	}

	start, end, err := s.validate(in)
	if err != nil {
		return repositories.BookingWithRefs{}, err
	}
	if err := s.settle(in, start, end); err != nil {
		return repositories.BookingWithRefs{}, err
	}
	if err := s.bookings().Update(nil, in); err != nil {
		return repositories.BookingWithRefs{}, domain.InternalError{Err: err}
	}
	return s.bookings().GetWithRefs(id)
}

// Complete closes out a booking: records the return date and odometer,
// re-settles with the final mileage, frees the vehicle, and rolls the end
// reading into the vehicle's odometer.
func (s BookingService) Complete(id int64, actualReturnDate string, mileageEnd *float64) (repositories.BookingWithRefs, error) {
	b, err := s.bookings().GetByID(id)
	if err != nil {
		return repositories.BookingWithRefs{}, err
	}
	if b.Status == models.BookingStatusCompleted {
		return repositories.BookingWithRefs{}, domain.ConflictError{Msg: "booking already completed"}
	}
	if strings.TrimSpace(actualReturnDate) != "" {
		if _, err := utils.ParseDate(actualReturnDate); err != nil {
			return repositories.BookingWithRefs{}, domain.ValidationError{Field: "actualReturnDate", Msg: "expected YYYY-MM-DD"}
		}
		b.ActualReturnDate = actualReturnDate
	} else {
		b.ActualReturnDate = utils.FormatDate(utils.NowUTC())
	}
	if mileageEnd != nil {
		b.Mileage.End = mileageEnd
	}
	b.Status = models.BookingStatusCompleted

	start, end, err := s.validate(&b)
	if err != nil {
		return repositories.BookingWithRefs{}, err
	}
	if err := s.settle(&b, start, end); err != nil {
		return repositories.BookingWithRefs{}, err
	}

	tx, err := s.db().Begin()
	if err != nil {
		return repositories.BookingWithRefs{}, domain.InternalError{Err: err}
	}
	defer tx.Rollback()

	if err := s.bookings().Update(tx, &b); err != nil {
		return repositories.BookingWithRefs{}, domain.InternalError{Err: err}
	}
	if b.VehicleID != nil {
		if b.Mileage.End != nil {
			err = s.vehicles().UpdateStatusAndMileage(tx, *b.VehicleID, models.VehicleStatusAvailable, *b.Mileage.End)
		} else {
			err = s.vehicles().UpdateStatus(tx, *b.VehicleID, models.VehicleStatusAvailable)
		}
		if err != nil {
			return repositories.BookingWithRefs{}, domain.InternalError{Err: err}
		}
	}
	if err := tx.Commit(); err != nil {
		return repositories.BookingWithRefs{}, domain.InternalError{Err: err}
	}

	utils.LogEvent("", "bookings", "complete", "completed "+b.BookingNumber)
	return s.bookings().GetWithRefs(id)
}

// RecordPayment adds a received amount to the booking. The stored payment
// status follows from the amounts on save.
func (s BookingService) RecordPayment(id int64, amount float64) (repositories.BookingWithRefs, error) {
	if amount <= 0 {
		return repositories.BookingWithRefs{}, domain.ValidationError{Field: "amount", Msg: "must be positive"}
	}
	b, err := s.bookings().GetByID(id)
	if err != nil {
		return repositories.BookingWithRefs{}, err
	}
	b.Payment.ReceivedAmount += amount
	if err := s.bookings().Update(nil, &b); err != nil {
		return repositories.BookingWithRefs{}, domain.InternalError{Err: err}
	}
	return s.bookings().GetWithRefs(id)
}

// Delete removes the booking and reverts its side effects on the vehicle and
// customer inside one transaction.
func (s BookingService) Delete(id int64) error {
	b, err := s.bookings().GetByID(id)
	if err != nil {
		return err
	}

	tx, err := s.db().Begin()
	if err != nil {
		return domain.InternalError{Err: err}
	}
	defer tx.Rollback()

	if err := s.bookings().Delete(tx, id); err != nil {
		return err
	}
	if b.VehicleID != nil && b.Status != models.BookingStatusCompleted && b.Status != models.BookingStatusCancelled {
		if err := s.vehicles().UpdateStatus(tx, *b.VehicleID, models.VehicleStatusAvailable); err != nil {
			return domain.InternalError{Err: err}
		}
	}
	if err := s.customers().IncrementBookings(tx, b.CustomerID, -1); err != nil {
		return domain.InternalError{Err: err}
	}
	if err := tx.Commit(); err != nil {
		return domain.InternalError{Err: err}
	}

	utils.LogEvent("", "bookings", "delete", "deleted "+b.BookingNumber)
	return nil
}

func (s BookingService) Get(id int64) (repositories.BookingWithRefs, error) {
	return s.bookings().GetWithRefs(id)
}

func (s BookingService) List(f repositories.BookingFilter) ([]repositories.BookingWithRefs, error) {
	return s.bookings().List(f)
}
