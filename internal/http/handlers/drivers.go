package handlers

import (
	"database/sql"
	"log"
	"net/http"
	"strings"

	intconfig "backend/internal/config"
	intdb "backend/internal/db"
	"backend/internal/domain/models"

	"github.com/gin-gonic/gin"
)

const driverSelect = `
	SELECT id, name, cnic, license_number,
	       phone, COALESCE(email, ''), COALESCE(address, ''),
	       COALESCE(emergency_name, ''), COALESCE(emergency_phone, ''), COALESCE(emergency_relation, ''),
	       assigned_vehicle_id,
	       local_daily_rate, outstation_daily_rate,
	       overtime_threshold_hours, overtime_hourly_rate,
	       monthly_parking_allowance, night_food_allowance, outstation_allowance,
	       status,
	       COALESCE(DATE_FORMAT(joining_date, '%Y-%m-%d'), ''),
	       COALESCE(notes, ''),
	       COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), ''),
	       COALESCE(DATE_FORMAT(updated_at, '%Y-%m-%d %H:%i:%s'), '')
	FROM drivers`

func scanDriverRow(rows *sql.Rows) (models.Driver, error) {
	var (
		d         models.Driver
		vehicleID sql.NullInt64
	)
	err := rows.Scan(
		&d.ID, &d.Name, &d.CNIC, &d.LicenseNumber,
		&d.Contact.Phone, &d.Contact.Email, &d.Contact.Address,
		&d.EmergencyContact.Name, &d.EmergencyContact.Phone, &d.EmergencyContact.Relation,
		&vehicleID,
		&d.DriverRates.LocalDailyRate, &d.DriverRates.OutstationDailyRate,
		&d.DriverRates.OvertimeThresholdHours, &d.DriverRates.OvertimeHourlyRate,
		&d.Allowances.MonthlyParkingAllowance, &d.Allowances.NightFoodAllowance, &d.Allowances.OutstationAllowance,
		&d.Status, &d.JoiningDate, &d.Notes,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return d, err
	}
	if vehicleID.Valid {
		id := vehicleID.Int64
		d.AssignedVehicleID = &id
	}
	return d, nil
}

// GET /api/drivers
func GetDrivers(c *gin.Context) {
	query := driverSelect
	args := []any{}
	where := []string{}

	if status := c.Query("status"); status != "" {
		where = append(where, "status = ?")
		args = append(args, status)
	}
	if search := c.Query("search"); search != "" {
		where = append(where, "(name LIKE ? OR cnic LIKE ? OR license_number LIKE ?)")
		like := "%" + search + "%"
		args = append(args, like, like, like)
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id DESC"

	rows, err := intconfig.DB.Query(query, args...)
	if err != nil {
		log.Println("GetDrivers query error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch drivers: " + err.Error()})
		return
	}
	defer rows.Close()

	drivers := []models.Driver{}
	for rows.Next() {
		d, err := scanDriverRow(rows)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read drivers: " + err.Error()})
			return
		}
		drivers = append(drivers, d)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read drivers: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, drivers)
}

// GET /api/drivers/:id
func GetDriverByID(c *gin.Context) {
	id := IDParam(c)
	if id == 0 {
		return
	}
	rows, err := intconfig.DB.Query(driverSelect+" WHERE id = ?", id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch driver: " + err.Error()})
		return
	}
	defer rows.Close()

	if !rows.Next() {
		c.JSON(http.StatusNotFound, gin.H{"error": "driver not found"})
		return
	}
	d, err := scanDriverRow(rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read driver: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, d)
}

// POST /api/drivers
func CreateDriver(c *gin.Context) {
	var input models.Driver
	if !BindJSONOrError(c, &input) {
		return
	}
	if input.Name == "" || input.CNIC == "" || input.LicenseNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, cnic and licenseNumber are required"})
		return
	}
	if input.Status == "" {
		input.Status = models.DriverStatusActive
	}
	var assignedVehicle any
	if input.AssignedVehicleID != nil {
		assignedVehicle = *input.AssignedVehicleID
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO drivers (
			name, cnic, license_number,
			phone, email, address,
			emergency_name, emergency_phone, emergency_relation,
			assigned_vehicle_id,
			local_daily_rate, outstation_daily_rate,
			overtime_threshold_hours, overtime_hourly_rate,
			monthly_parking_allowance, night_food_allowance, outstation_allowance,
			status, joining_date, notes
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
	`,
		input.Name, input.CNIC, input.LicenseNumber,
		input.Contact.Phone, intdb.NullIfEmpty(input.Contact.Email), intdb.NullIfEmpty(input.Contact.Address),
		intdb.NullIfEmpty(input.EmergencyContact.Name), intdb.NullIfEmpty(input.EmergencyContact.Phone), intdb.NullIfEmpty(input.EmergencyContact.Relation),
		assignedVehicle,
		input.DriverRates.LocalDailyRate, input.DriverRates.OutstationDailyRate,
		input.DriverRates.OvertimeThresholdHours, input.DriverRates.OvertimeHourlyRate,
		input.Allowances.MonthlyParkingAllowance, input.Allowances.NightFoodAllowance, input.Allowances.OutstationAllowance,
		input.Status, input.JoiningDate, intdb.NullIfEmpty(input.Notes),
	)
	if err != nil {
		log.Println("CreateDriver insert error:", err)
		if strings.Contains(err.Error(), "Duplicate entry") {
			c.JSON(http.StatusConflict, gin.H{"error": "cnic already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create driver: " + err.Error()})
		return
	}
	input.ID, _ = res.LastInsertId()
	c.JSON(http.StatusCreated, input)
}

// PUT /api/drivers/:id
func UpdateDriver(c *gin.Context) {
	id := IDParam(c)
	if id == 0 {
		return
	}
	var input models.Driver
	if !BindJSONOrError(c, &input) {
		return
	}
	var assignedVehicle any
	if input.AssignedVehicleID != nil {
		assignedVehicle = *input.AssignedVehicleID
	}

	_, err := intconfig.DB.Exec(`
		UPDATE drivers SET
			name = ?, cnic = ?, license_number = ?,
			phone = ?, email = ?, address = ?,
			emergency_name = ?, emergency_phone = ?, emergency_relation = ?,
			assigned_vehicle_id = ?,
			local_daily_rate = ?, outstation_daily_rate = ?,
			overtime_threshold_hours = ?, overtime_hourly_rate = ?,
			monthly_parking_allowance = ?, night_food_allowance = ?, outstation_allowance = ?,
			status = ?, joining_date = ?, notes = ?
		WHERE id = ?
	`,
		input.Name, input.CNIC, input.LicenseNumber,
		input.Contact.Phone, intdb.NullIfEmpty(input.Contact.Email), intdb.NullIfEmpty(input.Contact.Address),
		intdb.NullIfEmpty(input.EmergencyContact.Name), intdb.NullIfEmpty(input.EmergencyContact.Phone), intdb.NullIfEmpty(input.EmergencyContact.Relation),
		assignedVehicle,
		input.DriverRates.LocalDailyRate, input.DriverRates.OutstationDailyRate,
		input.DriverRates.OvertimeThresholdHours, input.DriverRates.OvertimeHourlyRate,
		input.Allowances.MonthlyParkingAllowance, input.Allowances.NightFoodAllowance, input.Allowances.OutstationAllowance,
		input.Status, input.JoiningDate, intdb.NullIfEmpty(input.Notes),
		id,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update driver: " + err.Error()})
		return
	}
	input.ID = id
	c.JSON(http.StatusOK, input)
}

// DELETE /api/drivers/:id
func DeleteDriver(c *gin.Context) {
	id := IDParam(c)
	if id == 0 {
		return
	}
	var active int
	if err := intconfig.DB.QueryRow(`
		SELECT COUNT(*) FROM bookings
		WHERE driver_id = ? AND status IN ('confirmed', 'in_progress')
	`, id).Scan(&active); err == nil && active > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "driver has active bookings"})
		return
	}

	res, err := intconfig.DB.Exec("DELETE FROM drivers WHERE id = ?", id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete driver: " + err.Error()})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "driver not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "driver deleted"})
}
