package handlers

import (
	"net/http"

	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/outsourced-vehicles
func GetOutsourcedVehicles(c *gin.Context) {
	repo := repositories.OutsourcedVehicleRepository{}
	vehicles, err := repo.List(repositories.OutsourcedVehicleFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// GET /api/outsourced-vehicles/:id
func GetOutsourcedVehicleByID(c *gin.Context) {
	id := IDParam(c)
	if id == 0 {
		return
	}
	repo := repositories.OutsourcedVehicleRepository{}
	v, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func validateOutsourced(v *models.OutsourcedVehicle) error {
	if v.RegistrationNumber == "" || v.VendorName == "" {
		return domain.ValidationError{Field: "registrationNumber", Msg: "registrationNumber and vendorName are required"}
	}
	if v.DailyRate <= 0 {
		return domain.ValidationError{Field: "dailyRate", Msg: "must be positive"}
	}
	if v.ContractStartDate == "" {
		return domain.ValidationError{Field: "contractStartDate", Msg: "required"}
	}
	return nil
}

// POST /api/outsourced-vehicles
func CreateOutsourcedVehicle(c *gin.Context) {
	var input models.OutsourcedVehicle
	if !BindJSONOrError(c, &input) {
		return
	}
	if err := validateOutsourced(&input); err != nil {
		RespondDomainError(c, err)
		return
	}
	if input.Status == "" {
		input.Status = models.OutsourcedStatusActive
	}
	repo := repositories.OutsourcedVehicleRepository{}
	if err := repo.Insert(nil, &input); err != nil {
		RespondDomainError(c, domain.InternalError{Err: err})
		return
	}
	c.JSON(http.StatusCreated, input)
}

// PUT /api/outsourced-vehicles/:id
func UpdateOutsourcedVehicle(c *gin.Context) {
	id := IDParam(c)
	if id == 0 {
		return
	}
	var input models.OutsourcedVehicle
	if !BindJSONOrError(c, &input) {
		return
	}
	if err := validateOutsourced(&input); err != nil {
		RespondDomainError(c, err)
		return
	}
	repo := repositories.OutsourcedVehicleRepository{}
	if _, err := repo.GetByID(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	input.ID = id
	if err := repo.Update(nil, &input); err != nil {
		RespondDomainError(c, domain.InternalError{Err: err})
		return
	}
	c.JSON(http.StatusOK, input)
}

// POST /api/outsourced-vehicles/:id/payments
func RecordOutsourcedPayment(c *gin.Context) {
	id := IDParam(c)
	if id == 0 {
		return
	}
	var req struct {
		Amount float64 `json:"amount"`
	}
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Amount <= 0 {
		RespondDomainError(c, domain.ValidationError{Field: "amount", Msg: "must be positive"})
		return
	}
	repo := repositories.OutsourcedVehicleRepository{}
	v, err := repo.RecordPayment(id, req.Amount)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// DELETE /api/outsourced-vehicles/:id
func DeleteOutsourcedVehicle(c *gin.Context) {
	id := IDParam(c)
	if id == 0 {
		return
	}
	repo := repositories.OutsourcedVehicleRepository{}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "outsourced vehicle deleted"})
}
