package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "backend/internal/config"
	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/settlement"
)

type BookingRepository struct {
	DB *sql.DB
}

// BookingWithRefs carries the denormalized names list and report views need
// alongside the booking itself.
type BookingWithRefs struct {
	models.Booking
	CustomerName        string `json:"customerName"`
	CustomerType        string `json:"customerType,omitempty"`
	VehicleRegistration string `json:"vehicleRegistration,omitempty"`
	DriverName          string `json:"driverName,omitempty"`
}

// BookingFilter mirrors the list-endpoint query params.
type BookingFilter struct {
	Status        string
	PaymentStatus string
	RentalType    string
	Search        string
	CustomerID    int64
	VehicleID     int64
	DriverID      int64
	StartFrom     string
	StartTo       string
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingColumns = `
	booking_number, customer_id, vehicle_id, outsourced_vehicle_id, driver_id,
	rental_type, route_name, is_outstation,
	start_date, end_date, actual_return_date,
	duty_hours_scheduled, duty_hours_actual, duty_hours_overtime,
	total_days, rent_per_day, total_rent,
	driver_daily_rate, driver_overtime_amount, driver_total_amount,
	vendor_daily_rate, vendor_total_amount,
	tax_deduction_percentage, tax_deduction_amount,
	mileage_start, mileage_end, mileage_total,
	expense_fuel, expense_toll, expense_maintenance, expense_other, expense_total,
	allowance_overtime_hours, allowance_overtime_amount,
	allowance_food_nights, allowance_food_amount,
	allowance_outstation_nights, allowance_outstation_amount,
	allowance_parking, allowance_total,
	payment_total_amount, payment_received_amount, payment_balance_amount,
	security_deposit, status, payment_status, notes`

func bookingArgs(b *models.Booking) []any {
	var vendorRate, vendorTotal any
	if b.VendorCharges != nil {
		vendorRate = b.VendorCharges.DailyRate
		vendorTotal = b.VendorCharges.TotalAmount
	}
	var mileageEnd any
	if b.Mileage.End != nil {
		mileageEnd = *b.Mileage.End
	}
	return []any{
		b.BookingNumber, b.CustomerID, b.VehicleID, b.OutsourcedVehicleID, b.DriverID,
		b.RentalType, nullStr(b.RouteName), b.IsOutstation,
		b.StartDate, b.EndDate, nullStr(b.ActualReturnDate),
		b.DutyHours.Scheduled, b.DutyHours.Actual, b.DutyHours.Overtime,
		b.TotalDays, b.RentPerDay, b.TotalRent,
		b.DriverCharges.DailyRate, b.DriverCharges.OvertimeAmount, b.DriverCharges.TotalAmount,
		vendorRate, vendorTotal,
		b.TaxDeduction.Percentage, b.TaxDeduction.Amount,
		b.Mileage.Start, mileageEnd, b.Mileage.Total,
		b.Expenses.Fuel, b.Expenses.Toll, b.Expenses.Maintenance, b.Expenses.Other, b.Expenses.Total,
		b.DriverAllowance.Overtime.Hours, b.DriverAllowance.Overtime.Amount,
		b.DriverAllowance.Food.Nights, b.DriverAllowance.Food.Amount,
		b.DriverAllowance.Outstation.Nights, b.DriverAllowance.Outstation.Amount,
		b.DriverAllowance.Parking, b.DriverAllowance.Total,
		b.Payment.TotalAmount, b.Payment.ReceivedAmount, b.Payment.BalanceAmount,
		b.Payment.SecurityDeposit, b.Status, b.PaymentStatus, nullStr(b.Notes),
	}
}

// Insert persists a new booking. Derived totals are recomputed here,
// unconditionally, so no caller can store stale values.
func (r BookingRepository) Insert(q Execer, b *models.Booking) error {
	if q == nil {
		q = r.db()
	}
	settlement.ApplyBookingDerived(b)

	placeholders := strings.TrimSuffix(strings.Repeat("?,", 47), ",")
	res, err := q.Exec(`INSERT INTO bookings (`+bookingColumns+`) VALUES (`+placeholders+`)`, bookingArgs(b)...)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = id
	return nil
}

// Update overwrites a booking row, recomputing derived totals first.
func (r BookingRepository) Update(q Execer, b *models.Booking) error {
	if q == nil {
		q = r.db()
	}
	settlement.ApplyBookingDerived(b)

	cols := strings.Split(bookingColumns, ",")
	set := make([]string, 0, len(cols))
	for _, col := range cols {
		set = append(set, strings.TrimSpace(col)+" = ?")
	}
	args := append(bookingArgs(b), b.ID)
	_, err := q.Exec(`UPDATE bookings SET `+strings.Join(set, ", ")+` WHERE id = ?`, args...)
	return err
}

// bookingJoinSelect resolves referenced names in the same round-trip; MySQL
// stores the nested sub-documents flattened into columns.
const bookingJoinSelect = `
	SELECT b.id,
	       b.booking_number, b.customer_id, b.vehicle_id, b.outsourced_vehicle_id, b.driver_id,
	       b.rental_type, COALESCE(b.route_name,''), b.is_outstation,
	       DATE_FORMAT(b.start_date, '%Y-%m-%d'),
	       DATE_FORMAT(b.end_date, '%Y-%m-%d'),
	       COALESCE(DATE_FORMAT(b.actual_return_date, '%Y-%m-%d'), ''),
	       b.duty_hours_scheduled, b.duty_hours_actual, b.duty_hours_overtime,
	       b.total_days, b.rent_per_day, b.total_rent,
	       b.driver_daily_rate, b.driver_overtime_amount, b.driver_total_amount,
	       b.vendor_daily_rate, b.vendor_total_amount,
	       b.tax_deduction_percentage, b.tax_deduction_amount,
	       b.mileage_start, b.mileage_end, b.mileage_total,
	       b.expense_fuel, b.expense_toll, b.expense_maintenance, b.expense_other, b.expense_total,
	       b.allowance_overtime_hours, b.allowance_overtime_amount,
	       b.allowance_food_nights, b.allowance_food_amount,
	       b.allowance_outstation_nights, b.allowance_outstation_amount,
	       b.allowance_parking, b.allowance_total,
	       b.payment_total_amount, b.payment_received_amount, b.payment_balance_amount,
	       b.security_deposit, b.status, b.payment_status, COALESCE(b.notes,''),
	       COALESCE(DATE_FORMAT(b.created_at, '%Y-%m-%d %H:%i:%s'), ''),
	       COALESCE(DATE_FORMAT(b.updated_at, '%Y-%m-%d %H:%i:%s'), ''),
	       COALESCE(c.name, ''), COALESCE(c.type, ''),
	       COALESCE(v.registration_number, ov.registration_number, ''),
	       COALESCE(d.name, '')
	FROM bookings b
	LEFT JOIN customers c ON c.id = b.customer_id
	LEFT JOIN vehicles v ON v.id = b.vehicle_id
	LEFT JOIN outsourced_vehicles ov ON ov.id = b.outsourced_vehicle_id
	LEFT JOIN drivers d ON d.id = b.driver_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookingWithRefs(row rowScanner) (BookingWithRefs, error) {
	var (
		item        BookingWithRefs
		b           = &item.Booking
		vendorRate  sql.NullFloat64
		vendorTotal sql.NullFloat64
		mileageEnd  sql.NullFloat64
	)
	err := row.Scan(
		&b.ID,
		&b.BookingNumber, &b.CustomerID, &b.VehicleID, &b.OutsourcedVehicleID, &b.DriverID,
		&b.RentalType, &b.RouteName, &b.IsOutstation,
		&b.StartDate, &b.EndDate, &b.ActualReturnDate,
		&b.DutyHours.Scheduled, &b.DutyHours.Actual, &b.DutyHours.Overtime,
		&b.TotalDays, &b.RentPerDay, &b.TotalRent,
		&b.DriverCharges.DailyRate, &b.DriverCharges.OvertimeAmount, &b.DriverCharges.TotalAmount,
		&vendorRate, &vendorTotal,
		&b.TaxDeduction.Percentage, &b.TaxDeduction.Amount,
		&b.Mileage.Start, &mileageEnd, &b.Mileage.Total,
		&b.Expenses.Fuel, &b.Expenses.Toll, &b.Expenses.Maintenance, &b.Expenses.Other, &b.Expenses.Total,
		&b.DriverAllowance.Overtime.Hours, &b.DriverAllowance.Overtime.Amount,
		&b.DriverAllowance.Food.Nights, &b.DriverAllowance.Food.Amount,
		&b.DriverAllowance.Outstation.Nights, &b.DriverAllowance.Outstation.Amount,
		&b.DriverAllowance.Parking, &b.DriverAllowance.Total,
		&b.Payment.TotalAmount, &b.Payment.ReceivedAmount, &b.Payment.BalanceAmount,
		&b.Payment.SecurityDeposit, &b.Status, &b.PaymentStatus, &b.Notes,
		&b.CreatedAt, &b.UpdatedAt,
		&item.CustomerName, &item.CustomerType,
		&item.VehicleRegistration,
		&item.DriverName,
	)
	if err != nil {
		return BookingWithRefs{}, err
	}
	if vendorRate.Valid {
		b.VendorCharges = &models.VendorCharges{
			DailyRate:   vendorRate.Float64,
			TotalAmount: vendorTotal.Float64,
		}
	}
	if mileageEnd.Valid {
		end := mileageEnd.Float64
		b.Mileage.End = &end
	}
	return item, nil
}

func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	item, err := r.GetWithRefs(id)
	if err != nil {
		return models.Booking{}, err
	}
	return item.Booking, nil
}

func (r BookingRepository) GetWithRefs(id int64) (BookingWithRefs, error) {
	row := r.db().QueryRow(bookingJoinSelect+` WHERE b.id = ?`, id)
	item, err := scanBookingWithRefs(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return BookingWithRefs{}, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return BookingWithRefs{}, err
	}
	return item, nil
}

// List returns bookings newest first with referenced names resolved.
func (r BookingRepository) List(f BookingFilter) ([]BookingWithRefs, error) {
	where := []string{}
	args := []any{}
	if f.Status != "" {
		where = append(where, "b.status = ?")
		args = append(args, f.Status)
	}
	if f.PaymentStatus != "" {
		where = append(where, "b.payment_status = ?")
		args = append(args, f.PaymentStatus)
	}
	if f.RentalType != "" {
		where = append(where, "b.rental_type = ?")
		args = append(args, f.RentalType)
	}
	if f.CustomerID > 0 {
		where = append(where, "b.customer_id = ?")
		args = append(args, f.CustomerID)
	}
	if f.VehicleID > 0 {
		where = append(where, "b.vehicle_id = ?")
		args = append(args, f.VehicleID)
	}
	if f.DriverID > 0 {
		where = append(where, "b.driver_id = ?")
		args = append(args, f.DriverID)
	}
	if f.StartFrom != "" && f.StartTo != "" {
		where = append(where, "b.start_date BETWEEN ? AND ?")
		args = append(args, f.StartFrom, f.StartTo)
	}
	if f.Search != "" {
		where = append(where, `(b.booking_number LIKE ?
			OR c.name LIKE ?
			OR v.registration_number LIKE ?
			OR ov.registration_number LIKE ?)`)
		like := "%" + f.Search + "%"
		args = append(args, like, like, like, like)
	}

	query := bookingJoinSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY b.created_at DESC, b.id DESC"

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []BookingWithRefs{}
	for rows.Next() {
		item, err := scanBookingWithRefs(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r BookingRepository) Delete(q Execer, id int64) error {
	if q == nil {
		q = r.db()
	}
	res, err := q.Exec(`DELETE FROM bookings WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}

func nullStr(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}
