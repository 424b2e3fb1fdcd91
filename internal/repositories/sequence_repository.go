package repositories

import (
	"database/sql"

	intconfig "backend/internal/config"
)

// Execer is satisfied by *sql.DB and *sql.Tx so repository writes can join a
// caller-owned transaction.
type Execer interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

const SequenceBookingNumber = "booking_number"

type SequenceRepository struct {
	DB *sql.DB
}

func (r SequenceRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Next atomically increments and returns the named counter. The
// LAST_INSERT_ID trick makes the increment a single statement, so concurrent
// booking creation can never hand out the same number.
func (r SequenceRepository) Next(q Execer, name string) (int64, error) {
	if q == nil {
		q = r.db()
	}
	res, err := q.Exec(`
		INSERT INTO sequences (name, seq) VALUES (?, LAST_INSERT_ID(1))
		ON DUPLICATE KEY UPDATE seq = LAST_INSERT_ID(seq + 1)
	`, name)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
