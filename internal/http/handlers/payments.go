package handlers

import (
	"net/http"

	"backend/internal/domain/models"
	"backend/internal/repositories"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/payments
func GetPayments(c *gin.Context) {
	svc := services.PaymentService{}
	payments, err := svc.List(repositories.PaymentFilter{
		Type:     c.Query("type"),
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// GET /api/payments/:id
func GetPaymentByID(c *gin.Context) {
	id := IDParam(c)
	if id == 0 {
		return
	}
	svc := services.PaymentService{}
	p, err := svc.Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /api/payments
func CreatePayment(c *gin.Context) {
	var input models.Payment
	if !BindJSONOrError(c, &input) {
		return
	}
	svc := services.PaymentService{}
	if err := svc.Create(&input); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, input)
}

// PUT /api/payments/:id
func UpdatePayment(c *gin.Context) {
	id := IDParam(c)
	if id == 0 {
		return
	}
	var input models.Payment
	if !BindJSONOrError(c, &input) {
		return
	}
	svc := services.PaymentService{}
	if err := svc.Update(id, &input); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, input)
}

// POST /api/payments/:id/record
func RecordPayment(c *gin.Context) {
	id := IDParam(c)
	if id == 0 {
		return
	}
	var req struct {
		Amount      float64 `json:"amount"`
		PaymentDate string  `json:"paymentDate"`
	}
	if !BindJSONOrError(c, &req) {
		return
	}
	svc := services.PaymentService{}
	p, err := svc.RecordPayment(id, req.Amount, req.PaymentDate)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DELETE /api/payments/:id
func DeletePayment(c *gin.Context) {
	id := IDParam(c)
	if id == 0 {
		return
	}
	svc := services.PaymentService{}
	if err := svc.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "payment deleted"})
}

// GET /api/payments/summary
func GetPaymentSummary(c *gin.Context) {
	svc := services.PaymentService{}
	summary, err := svc.Summary()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GET /api/payments/customer-balances
func GetCustomerBalances(c *gin.Context) {
	svc := services.PaymentService{}
	balances, err := svc.CustomerBalances()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, balances)
}
