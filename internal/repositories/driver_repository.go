package repositories

import (
	"database/sql"
	"errors"

	intconfig "backend/internal/config"
	"backend/internal/domain"
	"backend/internal/domain/models"
)

type DriverRepository struct {
	DB *sql.DB
}

func (r DriverRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r DriverRepository) GetByID(id int64) (models.Driver, error) {
	var (
		d       models.Driver
		email   sql.NullString
		address sql.NullString
	)

	err := r.db().QueryRow(`
		SELECT id, name, cnic, license_number,
		       phone, email, address,
		       local_daily_rate, outstation_daily_rate,
		       overtime_threshold_hours, overtime_hourly_rate,
		       status
		FROM drivers
		WHERE id = ?
	`, id).Scan(
		&d.ID,
		&d.Name,
		&d.CNIC,
		&d.LicenseNumber,
		&d.Contact.Phone,
		&email,
		&address,
		&d.DriverRates.LocalDailyRate,
		&d.DriverRates.OutstationDailyRate,
		&d.DriverRates.OvertimeThresholdHours,
		&d.DriverRates.OvertimeHourlyRate,
		&d.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Driver{}, domain.NotFoundError{Resource: "driver", Err: err}
		}
		return models.Driver{}, err
	}
	d.Contact.Email = email.String
	d.Contact.Address = address.String
	return d, nil
}
