package models

const (
	BookingStatusConfirmed  = "confirmed"
	BookingStatusInProgress = "in_progress"
	BookingStatusCompleted  = "completed"
	BookingStatusCancelled  = "cancelled"
)

const (
	PaymentStatusUnpaid  = "unpaid"
	PaymentStatusPartial = "partial"
	PaymentStatusPaid    = "paid"
)

const (
	RentalTypeOwn                  = "Own"
	RentalTypeOutsourcedFromVendor = "Outsourced From Vendor"
	RentalTypeOutsourcedToClient   = "Outsourced To Client"
)

type DutyHours struct {
	Scheduled float64 `json:"scheduled"`
	Actual    float64 `json:"actual"`
	Overtime  float64 `json:"overtime"`
}

type Mileage struct {
	Start float64  `json:"start"`
	End   *float64 `json:"end,omitempty"`
	Total float64  `json:"total"`
}

// DriverCharges are always present on a booking; all zero when no driver
// is assigned.
type DriverCharges struct {
	DailyRate      float64 `json:"dailyRate"`
	OvertimeAmount float64 `json:"overtimeAmount"`
	TotalAmount    float64 `json:"totalAmount"`
}

// VendorCharges exist only for Outsourced-in vehicles. Absence (nil) is
// meaningful to consumers and is distinct from a zero-valued object.
type VendorCharges struct {
	DailyRate   float64 `json:"dailyRate"`
	TotalAmount float64 `json:"totalAmount"`
}

type TaxDeduction struct {
	Percentage float64 `json:"percentage"`
	Amount     float64 `json:"amount"`
}

type BookingExpenses struct {
	Fuel        float64 `json:"fuel"`
	Toll        float64 `json:"toll"`
	Maintenance float64 `json:"maintenance"`
	Other       float64 `json:"other"`
	Total       float64 `json:"total"`
}

type AllowanceEntry struct {
	Hours  float64 `json:"hours,omitempty"`
	Nights float64 `json:"nights,omitempty"`
	Amount float64 `json:"amount"`
}

type DriverAllowance struct {
	Overtime   AllowanceEntry `json:"overtime"`
	Food       AllowanceEntry `json:"food"`
	Outstation AllowanceEntry `json:"outstation"`
	Parking    float64        `json:"parking"`
	Total      float64        `json:"total"`
}

type BookingPayment struct {
	TotalAmount     float64 `json:"totalAmount"`
	ReceivedAmount  float64 `json:"receivedAmount"`
	BalanceAmount   float64 `json:"balanceAmount"`
	SecurityDeposit float64 `json:"securityDeposit"`
}

// Booking is the settlement's primary subject. The derived fields (totals,
// charges, balances, paymentStatus) are recomputed on every save and never
// trusted from caller input.
type Booking struct {
	ID                  int64           `json:"id"`
	BookingNumber       string          `json:"bookingNumber"`
	CustomerID          int64           `json:"customerId"`
	VehicleID           *int64          `json:"vehicleId,omitempty"`
	OutsourcedVehicleID *int64          `json:"outsourcedVehicleId,omitempty"`
	DriverID            *int64          `json:"driverId,omitempty"`
	RentalType          string          `json:"rentalType"`
	RouteName           string          `json:"routeName,omitempty"`
	IsOutstation        bool            `json:"isOutstation"`
	StartDate           string          `json:"startDate"`
	EndDate             string          `json:"endDate"`
	ActualReturnDate    string          `json:"actualReturnDate,omitempty"`
	DutyHours           DutyHours       `json:"dutyHours"`
	TotalDays           int             `json:"totalDays"`
	RentPerDay          float64         `json:"rentPerDay"`
	TotalRent           float64         `json:"totalRent"`
	DriverCharges       DriverCharges   `json:"driverCharges"`
	VendorCharges       *VendorCharges  `json:"vendorCharges,omitempty"`
	TaxDeduction        TaxDeduction    `json:"taxDeduction"`
	Mileage             Mileage         `json:"mileage"`
	Expenses            BookingExpenses `json:"expenses"`
	DriverAllowance     DriverAllowance `json:"driverAllowance"`
	Payment             BookingPayment  `json:"payment"`
	Status              string          `json:"status"`
	PaymentStatus       string          `json:"paymentStatus"`
	Notes               string          `json:"notes,omitempty"`
	CreatedAt           string          `json:"createdAt,omitempty"`
	UpdatedAt           string          `json:"updatedAt,omitempty"`
}
