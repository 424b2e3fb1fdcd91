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

func scanVehicleRow(rows *sql.Rows) (models.Vehicle, error) {
	var (
		v             models.Vehicle
		color         sql.NullString
		vendorName    sql.NullString
		vendorContact sql.NullString
		contractStart sql.NullString
		contractEnd   sql.NullString
		vendorRate    sql.NullFloat64
	)
	err := rows.Scan(
		&v.ID, &v.RegistrationNumber, &v.Make, &v.Model, &v.Year,
		&color, &v.Mileage, &v.VehicleType,
		&vendorName, &vendorContact, &contractStart, &contractEnd, &vendorRate,
		&v.Status, &v.DailyRate,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return v, err
	}
	v.Color = color.String
	if vendorName.Valid || vendorRate.Valid {
		info := &models.VendorInfo{
			VendorName:        vendorName.String,
			VendorContact:     vendorContact.String,
			ContractStartDate: contractStart.String,
			ContractEndDate:   contractEnd.String,
		}
		if vendorRate.Valid {
			rate := vendorRate.Float64
			info.DailyVendorRate = &rate
		}
		v.VendorInfo = info
	}
	return v, nil
}

const vehicleSelect = `
	SELECT id, registration_number, make, model, year,
	       color, mileage, vehicle_type,
	       vendor_name, vendor_contact,
	       DATE_FORMAT(vendor_contract_start, '%Y-%m-%d'),
	       DATE_FORMAT(vendor_contract_end, '%Y-%m-%d'),
	       vendor_daily_rate,
	       status, daily_rate,
	       COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), ''),
	       COALESCE(DATE_FORMAT(updated_at, '%Y-%m-%d %H:%i:%s'), '')
	FROM vehicles`

// GET /api/vehicles
func GetVehicles(c *gin.Context) {
	query := vehicleSelect
	args := []any{}
	where := []string{}

	if status := c.Query("status"); status != "" {
		where = append(where, "status = ?")
		args = append(args, status)
	}
	if vtype := c.Query("type"); vtype != "" {
		where = append(where, "vehicle_type = ?")
		args = append(args, vtype)
	}
	if search := c.Query("search"); search != "" {
		where = append(where, "(registration_number LIKE ? OR make LIKE ? OR model LIKE ?)")
		like := "%" + search + "%"
		args = append(args, like, like, like)
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id DESC"

	rows, err := intconfig.DB.Query(query, args...)
	if err != nil {
		log.Println("GetVehicles query error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch vehicles: " + err.Error()})
		return
	}
	defer rows.Close()

	vehicles := []models.Vehicle{}
	for rows.Next() {
		v, err := scanVehicleRow(rows)
		if err != nil {
			log.Println("GetVehicles scan error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read vehicles: " + err.Error()})
			return
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read vehicles: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// GET /api/vehicles/:id
func GetVehicleByID(c *gin.Context) {
	id := IDParam(c)
	if id == 0 {
		return
	}
	rows, err := intconfig.DB.Query(vehicleSelect+" WHERE id = ?", id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch vehicle: " + err.Error()})
		return
	}
	defer rows.Close()

	if !rows.Next() {
		c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
		return
	}
	v, err := scanVehicleRow(rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read vehicle: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, v)
}

func vendorArgs(v models.Vehicle) (name, contact, start, end, rate any) {
	if v.VendorInfo == nil {
		return nil, nil, nil, nil, nil
	}
	name = intdb.NullIfEmpty(v.VendorInfo.VendorName)
	contact = intdb.NullIfEmpty(v.VendorInfo.VendorContact)
	start = intdb.NullIfEmpty(v.VendorInfo.ContractStartDate)
	end = intdb.NullIfEmpty(v.VendorInfo.ContractEndDate)
	if v.VendorInfo.DailyVendorRate != nil {
		rate = *v.VendorInfo.DailyVendorRate
	}
	return
}

// POST /api/vehicles
func CreateVehicle(c *gin.Context) {
	var input models.Vehicle
	if !BindJSONOrError(c, &input) {
		return
	}
	if input.RegistrationNumber == "" || input.DailyRate <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "registrationNumber and a positive dailyRate are required"})
		return
	}
	if input.VehicleType == "" {
		input.VehicleType = models.VehicleTypeCompanyOwned
	}
	if input.Status == "" {
		input.Status = models.VehicleStatusAvailable
	}

	vName, vContact, vStart, vEnd, vRate := vendorArgs(input)
	res, err := intconfig.DB.Exec(`
		INSERT INTO vehicles (
			registration_number, make, model, year, color, mileage, vehicle_type,
			vendor_name, vendor_contact, vendor_contract_start, vendor_contract_end, vendor_daily_rate,
			status, daily_rate
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)
	`,
		input.RegistrationNumber, input.Make, input.Model, input.Year,
		intdb.NullIfEmpty(input.Color), input.Mileage, input.VehicleType,
		vName, vContact, vStart, vEnd, vRate,
		input.Status, input.DailyRate,
	)
	if err != nil {
		log.Println("CreateVehicle insert error:", err)
		if strings.Contains(err.Error(), "Duplicate entry") {
			c.JSON(http.StatusConflict, gin.H{"error": "registration number already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create vehicle: " + err.Error()})
		return
	}
	input.ID, _ = res.LastInsertId()
	c.JSON(http.StatusCreated, input)
}

// PUT /api/vehicles/:id
func UpdateVehicle(c *gin.Context) {
	id := IDParam(c)
	if id == 0 {
		return
	}
	var input models.Vehicle
	if !BindJSONOrError(c, &input) {
		return
	}

	vName, vContact, vStart, vEnd, vRate := vendorArgs(input)
	res, err := intconfig.DB.Exec(`
		UPDATE vehicles SET
			registration_number = ?, make = ?, model = ?, year = ?, color = ?, mileage = ?,
			vehicle_type = ?,
			vendor_name = ?, vendor_contact = ?, vendor_contract_start = ?, vendor_contract_end = ?, vendor_daily_rate = ?,
			status = ?, daily_rate = ?
		WHERE id = ?
	`,
		input.RegistrationNumber, input.Make, input.Model, input.Year,
		intdb.NullIfEmpty(input.Color), input.Mileage,
		input.VehicleType,
		vName, vContact, vStart, vEnd, vRate,
		input.Status, input.DailyRate,
		id,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update vehicle: " + err.Error()})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		if intconfig.DB.QueryRow("SELECT COUNT(*) FROM vehicles WHERE id = ?", id).Scan(&exists) == nil && exists == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
			return
		}
	}
	input.ID = id
	c.JSON(http.StatusOK, input)
}

// DELETE /api/vehicles/:id
func DeleteVehicle(c *gin.Context) {
	id := IDParam(c)
	if id == 0 {
		return
	}
	var active int
	if err := intconfig.DB.QueryRow(`
		SELECT COUNT(*) FROM bookings
		WHERE vehicle_id = ? AND status IN ('confirmed', 'in_progress')
	`, id).Scan(&active); err == nil && active > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "vehicle has active bookings"})
		return
	}

	res, err := intconfig.DB.Exec("DELETE FROM vehicles WHERE id = ?", id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete vehicle: " + err.Error()})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vehicle deleted"})
}

// GET /api/vehicles/:id/maintenance
func GetVehicleMaintenance(c *gin.Context) {
	id := IDParam(c)
	if id == 0 {
		return
	}
	rows, err := intconfig.DB.Query(`
		SELECT id, vehicle_id,
		       DATE_FORMAT(log_date, '%Y-%m-%d'),
		       description, cost, COALESCE(performed_by, '')
		FROM vehicle_maintenance_logs
		WHERE vehicle_id = ?
		ORDER BY log_date DESC, id DESC
	`, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch maintenance logs: " + err.Error()})
		return
	}
	defer rows.Close()

	logs := []models.MaintenanceLog{}
	for rows.Next() {
		var m models.MaintenanceLog
		if err := rows.Scan(&m.ID, &m.VehicleID, &m.Date, &m.Description, &m.Cost, &m.PerformedBy); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read maintenance logs: " + err.Error()})
			return
		}
		logs = append(logs, m)
	}
	c.JSON(http.StatusOK, logs)
}

// POST /api/vehicles/:id/maintenance
func AddVehicleMaintenance(c *gin.Context) {
	id := IDParam(c)
	if id == 0 {
		return
	}
	var input models.MaintenanceLog
	if !BindJSONOrError(c, &input) {
		return
	}
	if input.Date == "" || input.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and description are required"})
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO vehicle_maintenance_logs (vehicle_id, log_date, description, cost, performed_by)
		VALUES (?, ?, ?, ?, ?)
	`, id, input.Date, input.Description, input.Cost, intdb.NullIfEmpty(input.PerformedBy))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save maintenance log: " + err.Error()})
		return
	}
	input.ID, _ = res.LastInsertId()
	input.VehicleID = id

	// flag the vehicle while it is in the shop
	if c.Query("markUnderMaintenance") == "true" {
		_, _ = intconfig.DB.Exec("UPDATE vehicles SET status = ? WHERE id = ?", models.VehicleStatusMaintenance, id)
	}
	c.JSON(http.StatusCreated, input)
}
