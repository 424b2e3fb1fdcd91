package repositories

import (
	"database/sql"
	"errors"

	intconfig "backend/internal/config"
	"backend/internal/domain"
	"backend/internal/domain/models"
)

type VehicleRepository struct {
	DB *sql.DB
}

func (r VehicleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r VehicleRepository) GetByID(id int64) (models.Vehicle, error) {
	var (
		v             models.Vehicle
		color         sql.NullString
		vendorName    sql.NullString
		vendorContact sql.NullString
		contractStart sql.NullString
		contractEnd   sql.NullString
		vendorRate    sql.NullFloat64
	)

	err := r.db().QueryRow(`
		SELECT id, registration_number, make, model, year,
		       color, mileage, vehicle_type,
		       vendor_name, vendor_contact,
		       DATE_FORMAT(vendor_contract_start, '%Y-%m-%d'),
		       DATE_FORMAT(vendor_contract_end, '%Y-%m-%d'),
		       vendor_daily_rate,
		       status, daily_rate
		FROM vehicles
		WHERE id = ?
	`, id).Scan(
		&v.ID,
		&v.RegistrationNumber,
		&v.Make,
		&v.Model,
		&v.Year,
		&color,
		&v.Mileage,
		&v.VehicleType,
		&vendorName,
		&vendorContact,
		&contractStart,
		&contractEnd,
		&vendorRate,
		&v.Status,
		&v.DailyRate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Vehicle{}, domain.NotFoundError{Resource: "vehicle", Err: err}
		}
		return models.Vehicle{}, err
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

// UpdateStatus flips the availability state, optionally inside a booking
// transaction.
func (r VehicleRepository) UpdateStatus(q Execer, id int64, status string) error {
	if q == nil {
		q = r.db()
	}
	_, err := q.Exec(`UPDATE vehicles SET status = ? WHERE id = ?`, status, id)
	return err
}

// UpdateStatusAndMileage is used when a booking completes: the vehicle is
// freed and its odometer is moved forward.
func (r VehicleRepository) UpdateStatusAndMileage(q Execer, id int64, status string, mileage float64) error {
	if q == nil {
		q = r.db()
	}
	_, err := q.Exec(`UPDATE vehicles SET status = ?, mileage = ? WHERE id = ?`, status, mileage, id)
	return err
}
