package models

const (
	OutsourcedStatusActive   = "active"
	OutsourcedStatusReturned = "returned"
	OutsourcedStatusExtended = "extended"
)

// OutsourcedVehicle is a vehicle rented in from a vendor to fulfil customer
// bookings. Invariant: BalanceAmount = TotalPayable - PaidAmount after every
// save.
type OutsourcedVehicle struct {
	ID                 int64   `json:"id"`
	RegistrationNumber string  `json:"registrationNumber"`
	Make               string  `json:"make"`
	Model              string  `json:"model"`
	Year               int     `json:"year"`
	VendorName         string  `json:"vendorName"`
	VendorContact      Contact `json:"vendorContact"`
	DailyRate          float64 `json:"dailyRate"`
	SecurityDeposit    float64 `json:"securityDeposit"`
	ContractStartDate  string  `json:"contractStartDate"`
	ContractEndDate    string  `json:"contractEndDate,omitempty"`
	Status             string  `json:"status"`
	TotalUsageDays     int     `json:"totalUsageDays"`
	TotalPayable       float64 `json:"totalPayable"`
	PaidAmount         float64 `json:"paidAmount"`
	BalanceAmount      float64 `json:"balanceAmount"`
	Notes              string  `json:"notes,omitempty"`
	CreatedAt          string  `json:"createdAt,omitempty"`
	UpdatedAt          string  `json:"updatedAt,omitempty"`
}
