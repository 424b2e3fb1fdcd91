package models

const (
	ExpenseCategoryFuel        = "Fuel"
	ExpenseCategoryToll        = "Toll"
	ExpenseCategoryMaintenance = "Maintenance"
	ExpenseCategoryParking     = "Parking"
	ExpenseCategoryFood        = "Food"
	ExpenseCategoryOther       = "Other"
)

const (
	ExpenseStatusPending  = "pending"
	ExpenseStatusApproved = "approved"
	ExpenseStatusRejected = "rejected"
)

type Expense struct {
	ID            int64   `json:"id"`
	BookingID     *int64  `json:"bookingId,omitempty"`
	VehicleID     *int64  `json:"vehicleId,omitempty"`
	DriverID      *int64  `json:"driverId,omitempty"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	Date          string  `json:"date"`
	ReceiptNumber string  `json:"receiptNumber,omitempty"`
	Vendor        string  `json:"vendor,omitempty"`
	PaymentMethod string  `json:"paymentMethod"`
	Status        string  `json:"status"`
	ApprovedBy    string  `json:"approvedBy,omitempty"`
	ApprovalDate  string  `json:"approvalDate,omitempty"`
	Notes         string  `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt,omitempty"`
	UpdatedAt     string  `json:"updatedAt,omitempty"`
}
