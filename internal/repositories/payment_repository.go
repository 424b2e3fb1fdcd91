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

type PaymentRepository struct {
	DB *sql.DB
}

type PaymentFilter struct {
	Type     string
	Status   string
	Category string
	Search   string
}

// PaymentStatusSummary is one row of the receivables/payables breakdown.
type PaymentStatusSummary struct {
	Status      string  `json:"status"`
	TotalAmount float64 `json:"totalAmount"`
	Count       int     `json:"count"`
}

// CustomerBalance aggregates one customer's bookings against their payments.
type CustomerBalance struct {
	CustomerID    int64   `json:"customerId"`
	CustomerName  string  `json:"customerName"`
	TotalBookings int     `json:"totalBookings"`
	TotalAmount   float64 `json:"totalAmount"`
	PaidAmount    float64 `json:"paidAmount"`
	PendingAmount float64 `json:"pendingAmount"`
}

func (r PaymentRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Insert persists a new ledger entry. The balance and status rules run here
// on every save so callers cannot store inconsistent derived values.
func (r PaymentRepository) Insert(q Execer, p *models.Payment) error {
	if q == nil {
		q = r.db()
	}
	settlement.ApplyPaymentDerived(p)

	res, err := q.Exec(`
		INSERT INTO payments (
			booking_id, customer_id, type, category, description,
			amount, paid_amount, balance_amount,
			due_date, payment_date, payment_method, reference_number,
			status, notes
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)
	`,
		p.BookingID, p.CustomerID, p.Type, p.Category, p.Description,
		p.Amount, p.PaidAmount, p.BalanceAmount,
		nullStr(p.DueDate), nullStr(p.PaymentDate), p.PaymentMethod, nullStr(p.ReferenceNumber),
		p.Status, nullStr(p.Notes),
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

func (r PaymentRepository) Update(q Execer, p *models.Payment) error {
	if q == nil {
		q = r.db()
	}
	settlement.ApplyPaymentDerived(p)

	_, err := q.Exec(`
		UPDATE payments SET
			booking_id = ?, customer_id = ?, type = ?, category = ?, description = ?,
			amount = ?, paid_amount = ?, balance_amount = ?,
			due_date = ?, payment_date = ?, payment_method = ?, reference_number = ?,
			status = ?, notes = ?
		WHERE id = ?
	`,
		p.BookingID, p.CustomerID, p.Type, p.Category, p.Description,
		p.Amount, p.PaidAmount, p.BalanceAmount,
		nullStr(p.DueDate), nullStr(p.PaymentDate), p.PaymentMethod, nullStr(p.ReferenceNumber),
		p.Status, nullStr(p.Notes),
		p.ID,
	)
	return err
}

const paymentSelect = `
	SELECT id, booking_id, customer_id, type, category, description,
	       amount, paid_amount, balance_amount,
	       COALESCE(DATE_FORMAT(due_date, '%Y-%m-%d'), ''),
	       COALESCE(DATE_FORMAT(payment_date, '%Y-%m-%d'), ''),
	       payment_method, COALESCE(reference_number, ''),
	       status, COALESCE(notes, ''),
	       COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), ''),
	       COALESCE(DATE_FORMAT(updated_at, '%Y-%m-%d %H:%i:%s'), '')
	FROM payments`

func scanPayment(row rowScanner) (models.Payment, error) {
	var p models.Payment
	err := row.Scan(
		&p.ID, &p.BookingID, &p.CustomerID, &p.Type, &p.Category, &p.Description,
		&p.Amount, &p.PaidAmount, &p.BalanceAmount,
		&p.DueDate, &p.PaymentDate,
		&p.PaymentMethod, &p.ReferenceNumber,
		&p.Status, &p.Notes,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r PaymentRepository) GetByID(id int64) (models.Payment, error) {
	p, err := scanPayment(r.db().QueryRow(paymentSelect+` WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Payment{}, domain.NotFoundError{Resource: "payment", Err: err}
		}
		return models.Payment{}, err
	}
	return p, nil
}

func (r PaymentRepository) List(f PaymentFilter) ([]models.Payment, error) {
	where := []string{}
	args := []any{}
	if f.Type != "" {
		where = append(where, "type = ?")
		args = append(args, f.Type)
	}
	if f.Status != "" {
		where = append(where, "status = ?")
		args = append(args, f.Status)
	}
	if f.Category != "" {
		where = append(where, "category = ?")
		args = append(args, f.Category)
	}
	if f.Search != "" {
		where = append(where, "(description LIKE ? OR reference_number LIKE ?)")
		like := "%" + f.Search + "%"
		args = append(args, like, like)
	}

	query := paymentSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r PaymentRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM payments WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "payment"}
	}
	return nil
}

// SummaryByType groups Receivable or Payable entries by status.
func (r PaymentRepository) SummaryByType(paymentType string) ([]PaymentStatusSummary, error) {
	rows, err := r.db().Query(`
		SELECT status, COALESCE(SUM(amount), 0), COUNT(*)
		FROM payments
		WHERE type = ?
		GROUP BY status
	`, paymentType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []PaymentStatusSummary{}
	for rows.Next() {
		var s PaymentStatusSummary
		if err := rows.Scan(&s.Status, &s.TotalAmount, &s.Count); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// CustomerBalances reconciles every customer's booking totals against the
// payments recorded for them.
func (r PaymentRepository) CustomerBalances() ([]CustomerBalance, error) {
	rows, err := r.db().Query(`
		SELECT c.id, c.name,
		       COALESCE(b.cnt, 0),
		       COALESCE(b.total, 0),
		       COALESCE(p.paid, 0)
		FROM customers c
		LEFT JOIN (
			SELECT customer_id, COUNT(*) AS cnt, SUM(payment_total_amount) AS total
			FROM bookings GROUP BY customer_id
		) b ON b.customer_id = c.id
		LEFT JOIN (
			SELECT customer_id, SUM(paid_amount) AS paid
			FROM payments GROUP BY customer_id
		) p ON p.customer_id = c.id
		ORDER BY c.name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []CustomerBalance{}
	for rows.Next() {
		var cb CustomerBalance
		if err := rows.Scan(&cb.CustomerID, &cb.CustomerName, &cb.TotalBookings, &cb.TotalAmount, &cb.PaidAmount); err != nil {
			return nil, err
		}
		cb.PendingAmount = cb.TotalAmount - cb.PaidAmount
		out = append(out, cb)
	}
	return out, rows.Err()
}
