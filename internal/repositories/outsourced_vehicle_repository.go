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

type OutsourcedVehicleRepository struct {
	DB *sql.DB
}

type OutsourcedVehicleFilter struct {
	Status string
	Search string
}

func (r OutsourcedVehicleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Insert persists a new vendor contract. The payable balance is recomputed on
// every save so the stored row can never drift from its amounts.
func (r OutsourcedVehicleRepository) Insert(q Execer, v *models.OutsourcedVehicle) error {
	if q == nil {
		q = r.db()
	}
	settlement.ApplyOutsourcedDerived(v)

	res, err := q.Exec(`
		INSERT INTO outsourced_vehicles (
			registration_number, make, model, year,
			vendor_name, vendor_phone, vendor_email, vendor_address,
			daily_rate, security_deposit,
			contract_start_date, contract_end_date, status,
			total_usage_days, total_payable, paid_amount, balance_amount, notes
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
	`,
		v.RegistrationNumber, v.Make, v.Model, v.Year,
		v.VendorName, v.VendorContact.Phone, nullStr(v.VendorContact.Email), nullStr(v.VendorContact.Address),
		v.DailyRate, v.SecurityDeposit,
		v.ContractStartDate, nullStr(v.ContractEndDate), v.Status,
		v.TotalUsageDays, v.TotalPayable, v.PaidAmount, v.BalanceAmount, nullStr(v.Notes),
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = id
	return nil
}

func (r OutsourcedVehicleRepository) Update(q Execer, v *models.OutsourcedVehicle) error {
	if q == nil {
		q = r.db()
	}
	settlement.ApplyOutsourcedDerived(v)

	_, err := q.Exec(`
		UPDATE outsourced_vehicles SET
			registration_number = ?, make = ?, model = ?, year = ?,
			vendor_name = ?, vendor_phone = ?, vendor_email = ?, vendor_address = ?,
			daily_rate = ?, security_deposit = ?,
			contract_start_date = ?, contract_end_date = ?, status = ?,
			total_usage_days = ?, total_payable = ?, paid_amount = ?, balance_amount = ?, notes = ?
		WHERE id = ?
	`,
		v.RegistrationNumber, v.Make, v.Model, v.Year,
		v.VendorName, v.VendorContact.Phone, nullStr(v.VendorContact.Email), nullStr(v.VendorContact.Address),
		v.DailyRate, v.SecurityDeposit,
		v.ContractStartDate, nullStr(v.ContractEndDate), v.Status,
		v.TotalUsageDays, v.TotalPayable, v.PaidAmount, v.BalanceAmount, nullStr(v.Notes),
		v.ID,
	)
	return err
}

const outsourcedSelect = `
	SELECT id, registration_number, make, model, year,
	       vendor_name, COALESCE(vendor_phone, ''), COALESCE(vendor_email, ''), COALESCE(vendor_address, ''),
	       daily_rate, security_deposit,
	       COALESCE(DATE_FORMAT(contract_start_date, '%Y-%m-%d'), ''),
	       COALESCE(DATE_FORMAT(contract_end_date, '%Y-%m-%d'), ''),
	       status, total_usage_days, total_payable, paid_amount, balance_amount,
	       COALESCE(notes, ''),
	       COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), ''),
	       COALESCE(DATE_FORMAT(updated_at, '%Y-%m-%d %H:%i:%s'), '')
	FROM outsourced_vehicles`

func scanOutsourced(row rowScanner) (models.OutsourcedVehicle, error) {
	var v models.OutsourcedVehicle
	err := row.Scan(
		&v.ID, &v.RegistrationNumber, &v.Make, &v.Model, &v.Year,
		&v.VendorName, &v.VendorContact.Phone, &v.VendorContact.Email, &v.VendorContact.Address,
		&v.DailyRate, &v.SecurityDeposit,
		&v.ContractStartDate, &v.ContractEndDate,
		&v.Status, &v.TotalUsageDays, &v.TotalPayable, &v.PaidAmount, &v.BalanceAmount,
		&v.Notes,
		&v.CreatedAt, &v.UpdatedAt,
	)
	return v, err
}

func (r OutsourcedVehicleRepository) GetByID(id int64) (models.OutsourcedVehicle, error) {
	v, err := scanOutsourced(r.db().QueryRow(outsourcedSelect+` WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.OutsourcedVehicle{}, domain.NotFoundError{Resource: "outsourced vehicle", Err: err}
		}
		return models.OutsourcedVehicle{}, err
	}
	return v, nil
}

func (r OutsourcedVehicleRepository) List(f OutsourcedVehicleFilter) ([]models.OutsourcedVehicle, error) {
	where := []string{}
	args := []any{}
	if f.Status != "" {
		where = append(where, "status = ?")
		args = append(args, f.Status)
	}
	if f.Search != "" {
		where = append(where, "(registration_number LIKE ? OR vendor_name LIKE ? OR make LIKE ? OR model LIKE ?)")
		like := "%" + f.Search + "%"
		args = append(args, like, like, like, like)
	}

	query := outsourcedSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.OutsourcedVehicle{}
	for rows.Next() {
		v, err := scanOutsourced(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// RecordPayment applies a vendor payment on top of the stored row and saves it
// through Update so the balance invariant holds.
func (r OutsourcedVehicleRepository) RecordPayment(id int64, amount float64) (models.OutsourcedVehicle, error) {
	v, err := r.GetByID(id)
	if err != nil {
		return models.OutsourcedVehicle{}, err
	}
	v.PaidAmount += amount
	if err := r.Update(nil, &v); err != nil {
		return models.OutsourcedVehicle{}, err
	}
	return v, nil
}

func (r OutsourcedVehicleRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM outsourced_vehicles WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "outsourced vehicle"}
	}
	return nil
}
