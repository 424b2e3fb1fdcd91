package models

const (
	CustomerTypeIndividual = "individual"
	CustomerTypeCompany    = "company"
)

const (
	CustomerStatusActive      = "active"
	CustomerStatusInactive    = "inactive"
	CustomerStatusBlacklisted = "blacklisted"
	CustomerStatusSuspended   = "suspended"
)

type Customer struct {
	ID                  int64            `json:"id"`
	Type                string           `json:"type"`
	Name                string           `json:"name"`
	CNIC                string           `json:"cnic,omitempty"`
	CompanyRegistration string           `json:"companyRegistration,omitempty"`
	LicenseNumber       string           `json:"licenseNumber,omitempty"`
	Contact             Contact          `json:"contact"`
	EmergencyContact    EmergencyContact `json:"emergencyContact"`
	TotalBookings       int              `json:"totalBookings"`
	TotalAmountPaid     float64          `json:"totalAmountPaid"`
	OutstandingBalance  float64          `json:"outstandingBalance"`
	CreditLimit         float64          `json:"creditLimit"`
	Status              string           `json:"status"`
	Notes               string           `json:"notes,omitempty"`
	CreatedAt           string           `json:"createdAt,omitempty"`
	UpdatedAt           string           `json:"updatedAt,omitempty"`
}
