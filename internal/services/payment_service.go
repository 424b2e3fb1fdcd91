package services

import (
	"database/sql"
	"strings"

	intconfig "backend/internal/config"
	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/repositories"

	"github.com/google/uuid"
)

// PaymentService owns the financial ledger. Every save goes through the
// repository, which recomputes balances and statuses.
type PaymentService struct {
	PaymentRepo repositories.PaymentRepository
	BookingRepo repositories.BookingRepository
	DB          *sql.DB
}

func (s PaymentService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s PaymentService) payments() repositories.PaymentRepository {
	if s.PaymentRepo.DB != nil {
		return s.PaymentRepo
	}
	return repositories.PaymentRepository{DB: s.db()}
}

func (s PaymentService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

func validPaymentType(t string) bool {
	return t == models.PaymentTypeReceivable || t == models.PaymentTypePayable
}

func validPaymentCategory(c string) bool {
	switch c {
	case models.PaymentCategoryRental, models.PaymentCategorySecurityDeposit,
		models.PaymentCategoryVendor, models.PaymentCategoryDriverSalary,
		models.PaymentCategoryReimbursement, models.PaymentCategoryOther:
		return true
	}
	return false
}

func (s PaymentService) validate(p *models.Payment) error {
	if !validPaymentType(p.Type) {
		return domain.ValidationError{Field: "type", Msg: "must be Receivable or Payable"}
	}
	if !validPaymentCategory(p.Category) {
		return domain.ValidationError{Field: "category", Msg: "unknown category"}
	}
	if p.Amount < 0 || p.PaidAmount < 0 {
		return domain.ValidationError{Field: "amount", Msg: "must not be negative"}
	}
	if p.BookingID != nil {
		if _, err := s.bookings().GetByID(*p.BookingID); err != nil {
			return err
		}
	}
	return nil
}

func (s PaymentService) Create(p *models.Payment) error {
	if err := s.validate(p); err != nil {
		return err
	}
	if strings.TrimSpace(p.ReferenceNumber) == "" {
		p.ReferenceNumber = "PAY-" + strings.ToUpper(uuid.NewString()[:8])
	}
	if err := s.payments().Insert(nil, p); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

func (s PaymentService) Update(id int64, p *models.Payment) error {
	existing, err := s.payments().GetByID(id)
	if err != nil {
		return err
	}
	p.ID = existing.ID
	if p.ReferenceNumber == "" {
		p.ReferenceNumber = existing.ReferenceNumber
	}
	if err := s.validate(p); err != nil {
		return err
	}
	if err := s.payments().Update(nil, p); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

// RecordPayment applies a received amount to an existing ledger entry.
func (s PaymentService) RecordPayment(id int64, amount float64, paymentDate string) (models.Payment, error) {
	if amount <= 0 {
		return models.Payment{}, domain.ValidationError{Field: "amount", Msg: "must be positive"}
	}
	p, err := s.payments().GetByID(id)
	if err != nil {
		return models.Payment{}, err
	}
	p.PaidAmount += amount
	if paymentDate != "" {
		p.PaymentDate = paymentDate
	}
	if err := s.payments().Update(nil, &p); err != nil {
		return models.Payment{}, domain.InternalError{Err: err}
	}
	return p, nil
}

func (s PaymentService) Get(id int64) (models.Payment, error) {
	return s.payments().GetByID(id)
}

func (s PaymentService) List(f repositories.PaymentFilter) ([]models.Payment, error) {
	return s.payments().List(f)
}

func (s PaymentService) Delete(id int64) error {
	return s.payments().Delete(id)
}

// Summary returns the receivable and payable breakdowns by status.
func (s PaymentService) Summary() (map[string][]repositories.PaymentStatusSummary, error) {
	recv, err := s.payments().SummaryByType(models.PaymentTypeReceivable)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	pay, err := s.payments().SummaryByType(models.PaymentTypePayable)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return map[string][]repositories.PaymentStatusSummary{
		"receivables": recv,
		"payables":    pay,
	}, nil
}

func (s PaymentService) CustomerBalances() ([]repositories.CustomerBalance, error) {
	out, err := s.payments().CustomerBalances()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}
