package models

// Vehicle type literals. Outsourced-in vehicles carry a vendor daily rate
// that feeds the booking settlement.
const (
	VehicleTypeCompanyOwned  = "Company-owned"
	VehicleTypeOutsourcedIn  = "Outsourced-in"
	VehicleTypeOutsourcedOut = "Outsourced-out"
)

const (
	VehicleStatusAvailable   = "available"
	VehicleStatusBooked      = "booked"
	VehicleStatusMaintenance = "under_maintenance"
)

// VendorInfo is present only for vehicles rented in from a third party.
type VendorInfo struct {
	VendorName        string   `json:"vendorName"`
	VendorContact     string   `json:"vendorContact"`
	ContractStartDate string   `json:"contractStartDate,omitempty"`
	ContractEndDate   string   `json:"contractEndDate,omitempty"`
	DailyVendorRate   *float64 `json:"dailyVendorRate,omitempty"`
}

type Vehicle struct {
	ID                 int64       `json:"id"`
	RegistrationNumber string      `json:"registrationNumber"`
	Make               string      `json:"make"`
	Model              string      `json:"model"`
	Year               int         `json:"year"`
	Color              string      `json:"color,omitempty"`
	Mileage            float64     `json:"mileage"`
	VehicleType        string      `json:"vehicleType"`
	VendorInfo         *VendorInfo `json:"vendorInfo,omitempty"`
	Status             string      `json:"status"`
	DailyRate          float64     `json:"dailyRate"`
	CreatedAt          string      `json:"createdAt,omitempty"`
	UpdatedAt          string      `json:"updatedAt,omitempty"`
}

type MaintenanceLog struct {
	ID          int64   `json:"id"`
	VehicleID   int64   `json:"vehicleId"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
	PerformedBy string  `json:"performedBy,omitempty"`
}
