package models

// Ledger direction: money owed to the operator vs money the operator owes.
const (
	PaymentTypeReceivable = "Receivable"
	PaymentTypePayable    = "Payable"
)

// Payment ledger statuses. "unpaid" and "balance" are sticky overrides: once
// set explicitly by a caller they are never auto-corrected on save.
const (
	LedgerStatusPending = "pending"
	LedgerStatusPaid    = "paid"
	LedgerStatusUnpaid  = "unpaid"
	LedgerStatusBalance = "balance"
)

const (
	PaymentCategoryRental          = "Rental Payment"
	PaymentCategorySecurityDeposit = "Security Deposit"
	PaymentCategoryVendor          = "Vendor Payment"
	PaymentCategoryDriverSalary    = "Driver Salary"
	PaymentCategoryReimbursement   = "Expense Reimbursement"
	PaymentCategoryOther           = "Other"
)

// Payment is a financial ledger entry for a booking/customer.
// Invariant: BalanceAmount = Amount - PaidAmount after every save.
type Payment struct {
	ID              int64   `json:"id"`
	BookingID       *int64  `json:"bookingId,omitempty"`
	CustomerID      *int64  `json:"customerId,omitempty"`
	Type            string  `json:"type"`
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	Amount          float64 `json:"amount"`
	PaidAmount      float64 `json:"paidAmount"`
	BalanceAmount   float64 `json:"balanceAmount"`
	DueDate         string  `json:"dueDate,omitempty"`
	PaymentDate     string  `json:"paymentDate,omitempty"`
	PaymentMethod   string  `json:"paymentMethod"`
	ReferenceNumber string  `json:"referenceNumber,omitempty"`
	Status          string  `json:"status"`
	Notes           string  `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt,omitempty"`
	UpdatedAt       string  `json:"updatedAt,omitempty"`
}
