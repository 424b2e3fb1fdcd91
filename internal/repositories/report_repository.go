package repositories

import (
	"database/sql"

	intconfig "backend/internal/config"
)

// ReportRepository holds the read-only aggregation queries behind the
// dashboard and report exports.
type ReportRepository struct {
	DB *sql.DB
}

type VehicleSummaryRow struct {
	VehicleID          int64   `json:"vehicleId"`
	RegistrationNumber string  `json:"registrationNumber"`
	VehicleType        string  `json:"vehicleType"`
	Status             string  `json:"status"`
	Bookings           int     `json:"bookings"`
	Revenue            float64 `json:"revenue"`
	MileageDriven      float64 `json:"mileageDriven"`
}

type DriverSummaryRow struct {
	DriverID      int64   `json:"driverId"`
	Name          string  `json:"name"`
	Bookings      int     `json:"bookings"`
	OvertimeHours float64 `json:"overtimeHours"`
	DriverCharges float64 `json:"driverCharges"`
	Allowances    float64 `json:"allowances"`
}

type DashboardCounts struct {
	TotalVehicles     int `json:"totalVehicles"`
	AvailableVehicles int `json:"availableVehicles"`
	BookedVehicles    int `json:"bookedVehicles"`
	ActiveBookings    int `json:"activeBookings"`
	TotalCustomers    int `json:"totalCustomers"`
	TotalDrivers      int `json:"totalDrivers"`
}

type MonthRevenue struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
}

func (r ReportRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r ReportRepository) VehicleSummary() ([]VehicleSummaryRow, error) {
	rows, err := r.db().Query(`
		SELECT v.id, v.registration_number, v.vehicle_type, v.status,
		       COALESCE(COUNT(b.id), 0),
		       COALESCE(SUM(b.payment_total_amount), 0),
		       COALESCE(SUM(b.mileage_total), 0)
		FROM vehicles v
		LEFT JOIN bookings b ON b.vehicle_id = v.id
		GROUP BY v.id, v.registration_number, v.vehicle_type, v.status
		ORDER BY v.registration_number
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []VehicleSummaryRow{}
	for rows.Next() {
		var row VehicleSummaryRow
		if err := rows.Scan(&row.VehicleID, &row.RegistrationNumber, &row.VehicleType, &row.Status,
			&row.Bookings, &row.Revenue, &row.MileageDriven); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r ReportRepository) DriverSummary() ([]DriverSummaryRow, error) {
	rows, err := r.db().Query(`
		SELECT d.id, d.name,
		       COALESCE(COUNT(b.id), 0),
		       COALESCE(SUM(b.duty_hours_overtime), 0),
		       COALESCE(SUM(b.driver_total_amount), 0),
		       COALESCE(SUM(b.allowance_total), 0)
		FROM drivers d
		LEFT JOIN bookings b ON b.driver_id = d.id
		GROUP BY d.id, d.name
		ORDER BY d.name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []DriverSummaryRow{}
	for rows.Next() {
		var row DriverSummaryRow
		if err := rows.Scan(&row.DriverID, &row.Name, &row.Bookings,
			&row.OvertimeHours, &row.DriverCharges, &row.Allowances); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r ReportRepository) Counts() (DashboardCounts, error) {
	var c DashboardCounts
	err := r.db().QueryRow(`
		SELECT (SELECT COUNT(*) FROM vehicles),
		       (SELECT COUNT(*) FROM vehicles WHERE status = 'available'),
		       (SELECT COUNT(*) FROM vehicles WHERE status = 'booked'),
		       (SELECT COUNT(*) FROM bookings WHERE status IN ('confirmed', 'in_progress')),
		       (SELECT COUNT(*) FROM customers),
		       (SELECT COUNT(*) FROM drivers)
	`).Scan(&c.TotalVehicles, &c.AvailableVehicles, &c.BookedVehicles,
		&c.ActiveBookings, &c.TotalCustomers, &c.TotalDrivers)
	return c, err
}

// MonthStats covers the current calendar month.
type MonthStats struct {
	Income           float64 `json:"income"`
	Trips            int     `json:"trips"`
	FuelTollExpenses float64 `json:"fuelTollExpenses"`
}

func (r ReportRepository) CurrentMonthStats() (MonthStats, error) {
	var m MonthStats
	err := r.db().QueryRow(`
		SELECT (SELECT COALESCE(SUM(payment_received_amount), 0) FROM bookings
		        WHERE DATE_FORMAT(start_date, '%Y-%m') = DATE_FORMAT(CURDATE(), '%Y-%m')),
		       (SELECT COUNT(*) FROM bookings
		        WHERE DATE_FORMAT(start_date, '%Y-%m') = DATE_FORMAT(CURDATE(), '%Y-%m')),
		       (SELECT COALESCE(SUM(amount), 0) FROM expenses
		        WHERE category IN ('Fuel', 'Toll')
		          AND DATE_FORMAT(expense_date, '%Y-%m') = DATE_FORMAT(CURDATE(), '%Y-%m'))
	`).Scan(&m.Income, &m.Trips, &m.FuelTollExpenses)
	return m, err
}

// RevenueByMonth returns per-month booking revenue for the trailing window,
// oldest month first.
func (r ReportRepository) RevenueByMonth(months int) ([]MonthRevenue, error) {
	rows, err := r.db().Query(`
		SELECT DATE_FORMAT(start_date, '%Y-%m'),
		       COALESCE(SUM(payment_total_amount), 0),
		       COUNT(*)
		FROM bookings
		WHERE start_date >= DATE_SUB(CURDATE(), INTERVAL ? MONTH)
		GROUP BY DATE_FORMAT(start_date, '%Y-%m')
		ORDER BY DATE_FORMAT(start_date, '%Y-%m')
	`, months)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []MonthRevenue{}
	for rows.Next() {
		var m MonthRevenue
		if err := rows.Scan(&m.Month, &m.Revenue, &m.Bookings); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// OutstandingReceivables sums unpaid customer balances across bookings.
func (r ReportRepository) OutstandingReceivables() (float64, error) {
	var total float64
	err := r.db().QueryRow(`
		SELECT COALESCE(SUM(payment_balance_amount), 0)
		FROM bookings
		WHERE payment_status IN ('unpaid', 'partial')
	`).Scan(&total)
	return total, err
}

// VendorPayables sums what is still owed to vendors for outsourced vehicles.
func (r ReportRepository) VendorPayables() (float64, error) {
	var total float64
	err := r.db().QueryRow(`
		SELECT COALESCE(SUM(balance_amount), 0)
		FROM outsourced_vehicles
	`).Scan(&total)
	return total, err
}
