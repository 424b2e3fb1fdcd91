package models

const (
	DriverStatusActive   = "active"
	DriverStatusInactive = "inactive"
	DriverStatusOnLeave  = "on_leave"
)

// DriverRates are the settlement inputs for driver charges. They are read-only
// during a booking's lifetime.
type DriverRates struct {
	LocalDailyRate         float64 `json:"localDailyRate"`
	OutstationDailyRate    float64 `json:"outstationDailyRate"`
	OvertimeThresholdHours float64 `json:"overtimeThresholdHours"`
	OvertimeHourlyRate     float64 `json:"overtimeHourlyRate"`
}

type DriverAllowances struct {
	MonthlyParkingAllowance float64 `json:"monthlyParkingAllowance"`
	NightFoodAllowance      float64 `json:"nightFoodAllowance"`
	OutstationAllowance     float64 `json:"outstationAllowance"`
}

type Contact struct {
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

type EmergencyContact struct {
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Relation string `json:"relation,omitempty"`
}

type Driver struct {
	ID                int64            `json:"id"`
	Name              string           `json:"name"`
	CNIC              string           `json:"cnic"`
	LicenseNumber     string           `json:"licenseNumber"`
	Contact           Contact          `json:"contact"`
	EmergencyContact  EmergencyContact `json:"emergencyContact"`
	AssignedVehicleID *int64           `json:"assignedVehicleId,omitempty"`
	DriverRates       DriverRates      `json:"driverRates"`
	Allowances        DriverAllowances `json:"allowances"`
	Status            string           `json:"status"`
	JoiningDate       string           `json:"joiningDate"`
	Notes             string           `json:"notes,omitempty"`
	CreatedAt         string           `json:"createdAt,omitempty"`
	UpdatedAt         string           `json:"updatedAt,omitempty"`
}
