package repositories

import (
	"database/sql"
	"errors"

	intconfig "backend/internal/config"
	"backend/internal/domain"
	"backend/internal/domain/models"
)

type CustomerRepository struct {
	DB *sql.DB
}

func (r CustomerRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r CustomerRepository) GetByID(id int64) (models.Customer, error) {
	var (
		c       models.Customer
		cnic    sql.NullString
		company sql.NullString
		license sql.NullString
		email   sql.NullString
		address sql.NullString
	)

	err := r.db().QueryRow(`
		SELECT id, type, name, cnic, company_registration, license_number,
		       phone, email, address,
		       total_bookings, total_amount_paid, outstanding_balance,
		       credit_limit, status
		FROM customers
		WHERE id = ?
	`, id).Scan(
		&c.ID,
		&c.Type,
		&c.Name,
		&cnic,
		&company,
		&license,
		&c.Contact.Phone,
		&email,
		&address,
		&c.TotalBookings,
		&c.TotalAmountPaid,
		&c.OutstandingBalance,
		&c.CreditLimit,
		&c.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Customer{}, domain.NotFoundError{Resource: "customer", Err: err}
		}
		return models.Customer{}, err
	}
	c.CNIC = cnic.String
	c.CompanyRegistration = company.String
	c.LicenseNumber = license.String
	c.Contact.Email = email.String
	c.Contact.Address = address.String
	return c, nil
}

// IncrementBookings adjusts the customer's booking counter; delta may be
// negative when a booking is deleted.
func (r CustomerRepository) IncrementBookings(q Execer, id int64, delta int) error {
	if q == nil {
		q = r.db()
	}
	_, err := q.Exec(`
		UPDATE customers
		SET total_bookings = GREATEST(0, total_bookings + ?)
		WHERE id = ?
	`, delta, id)
	return err
}
